package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/stint/internal/cli"
	"github.com/alexanderramin/stint/internal/config"
	"github.com/alexanderramin/stint/internal/db"
	"github.com/alexanderramin/stint/internal/repository"
	"github.com/alexanderramin/stint/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	categoryRepo := repository.NewSQLiteCategoryRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)
	requestRepo := repository.NewSQLiteRequestRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Service telemetry goes to the configured log file, if any.
	var observers []service.UseCaseObserver
	if cfg.LogPath != "" {
		logFile, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer logFile.Close()
		observers = append(observers, service.NewLogUseCaseObserver(logFile))
	}

	app := &cli.App{
		Tracker:    service.NewTrackerService(sessionRepo, settingsRepo, uow, observers...),
		History:    service.NewHistoryService(sessionRepo, categoryRepo, taskRepo, loc, observers...),
		Entries:    service.NewEntryService(sessionRepo, requestRepo, settingsRepo, uow, observers...),
		Categories: service.NewCategoryService(categoryRepo),

		Workspace: cfg.Workspace,
		Location:  loc,
	}

	// Detect interactive terminal for the form and watch surfaces.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
