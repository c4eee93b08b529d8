package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/worktimer/internal/cli"
	"github.com/alexanderramin/worktimer/internal/clock"
	"github.com/alexanderramin/worktimer/internal/config"
	"github.com/alexanderramin/worktimer/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Loader{}.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := service.NewLogger(os.Stderr, cfg.LogLevel)

	app := &cli.App{
		Config:   cfg,
		Clock:    clock.System{},
		Location: time.Local,
		Logger:   logger,
	}
	if cfg.LogUseCases {
		app.Observer = service.NewLogUseCaseObserver(logger)
	}

	// Detect interactive terminal for the date prompt.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
