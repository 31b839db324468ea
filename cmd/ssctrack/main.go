package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/ssctools/ssctrack/internal/cli"
	"github.com/ssctools/ssctrack/internal/db"
	"github.com/ssctools/ssctrack/internal/domain"
	"github.com/ssctools/ssctrack/internal/repository"
	"github.com/ssctools/ssctrack/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// DB path: env var or default ~/.ssctrack/ssctrack.db
	dbPath := os.Getenv("SSCTRACK_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".ssctrack", "ssctrack.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	catalog := domain.DefaultCatalog()
	progress := service.NewProgressService(
		repository.NewSQLiteStateRepo(database),
		catalog,
		service.NewLogStoreObserver(os.Stderr),
	)
	if err := progress.Initialize(context.Background()); err != nil {
		return fmt.Errorf("loading tracker state: %w", err)
	}

	app := &cli.App{
		Progress: progress,
		Catalog:  catalog,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	return cli.NewRootCmd(app).Execute()
}
