package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/worktimer/internal/cli/formatter"
	"github.com/alexanderramin/worktimer/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// errRangeCancelled is returned when the date prompt is aborted.
var errRangeCancelled = errors.New("range cancelled")

// huhTheme adapts the formatter palette to huh forms.
func huhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateDate(s string) error {
	if _, err := domain.ParseDate(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

// validateRangeEnd rejects an end date before the already entered start.
func validateRangeEnd(start *string) func(string) error {
	return func(s string) error {
		if err := validateDate(s); err != nil {
			return err
		}
		from, err := domain.ParseDate(strings.TrimSpace(*start))
		if err != nil {
			return nil
		}
		to, _ := domain.ParseDate(strings.TrimSpace(s))
		if to.Before(from) {
			return fmt.Errorf("end must not be before %s", from)
		}
		return nil
	}
}

// newRangeForm builds the start/end prompt. Both fields default to today.
func newRangeForm(today domain.Date, start, end *string) *huh.Form {
	if *start == "" {
		*start = today.String()
	}
	if *end == "" {
		*end = today.String()
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Start date (YYYY-MM-DD)").
				Placeholder(today.AddDays(-6).String()).
				Value(start).
				Validate(validateDate),
			huh.NewInput().
				Title("End date (YYYY-MM-DD)").
				Placeholder(today.String()).
				Value(end).
				Validate(validateRangeEnd(start)),
		),
	).WithTheme(huhTheme()).WithShowHelp(false)
}

func promptRange(app *App) (string, string, error) {
	var start, end string
	form := newRangeForm(domain.DateOf(app.Clock.Now(), app.Location), &start, &end)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", "", errRangeCancelled
		}
		return "", "", fmt.Errorf("date prompt: %w", err)
	}
	return strings.TrimSpace(start), strings.TrimSpace(end), nil
}
