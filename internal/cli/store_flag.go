package cli

import (
	"database/sql"
	"fmt"

	"github.com/alexanderramin/worktimer/internal/config"
	"github.com/alexanderramin/worktimer/internal/db"
	"github.com/alexanderramin/worktimer/internal/history"
	"github.com/alexanderramin/worktimer/internal/repository"
	"github.com/spf13/pflag"
)

// storeFlag is the --store value; it only accepts known backends.
type storeFlag struct {
	kind config.StoreKind
}

var _ pflag.Value = (*storeFlag)(nil)

func (f *storeFlag) String() string { return string(f.kind) }
func (f *storeFlag) Type() string   { return "store" }

func (f *storeFlag) Set(s string) error {
	k, err := config.ParseStoreKind(s)
	if err != nil {
		return err
	}
	f.kind = k
	return nil
}

// storeHandle is an open history backend plus its release function.
type storeHandle struct {
	Store history.Store
	Kind  config.StoreKind
	Where string
	db    *sql.DB
}

func (h storeHandle) Close() error {
	if h.db != nil {
		return h.db.Close()
	}
	return nil
}

// openStore opens the backend of the given kind at its configured location.
func (a *App) openStore(kind config.StoreKind) (storeHandle, error) {
	if kind == "" {
		kind = config.StoreCSV
	}
	switch kind {
	case config.StoreSQLite:
		database, path, err := a.openDB()
		if err != nil {
			return storeHandle{}, err
		}
		return storeHandle{
			Store: repository.NewSQLiteHistoryRepo(database),
			Kind:  kind,
			Where: path,
			db:    database,
		}, nil
	case config.StoreCSV:
		path, err := a.Config.HistoryPath()
		if err != nil {
			return storeHandle{}, err
		}
		return storeHandle{Store: history.NewCSVStore(path), Kind: kind, Where: path}, nil
	default:
		return storeHandle{}, fmt.Errorf("unknown store %q", kind)
	}
}

func (a *App) openDB() (*sql.DB, string, error) {
	path, err := a.Config.DatabasePath()
	if err != nil {
		return nil, "", err
	}
	database, err := db.OpenDB(path)
	if err != nil {
		return nil, "", fmt.Errorf("opening history database %s: %w", path, err)
	}
	return database, path, nil
}
