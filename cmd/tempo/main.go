package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/tempo/internal/cli"
	"github.com/alexanderramin/tempo/internal/clock"
	"github.com/alexanderramin/tempo/internal/config"
	"github.com/alexanderramin/tempo/internal/db"
	"github.com/alexanderramin/tempo/internal/repository"
	"github.com/alexanderramin/tempo/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}

	// The store handle is opened once here and released on this one exit
	// path; the deferred close runs however the UI terminates.
	database, err := db.OpenDB(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogPath != "" {
		logFile, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer logFile.Close()
		observer = service.NewLogUseCaseObserver(logFile)
	}

	projectRepo := repository.NewSQLiteProjectRepo(database)
	entryRepo := repository.NewSQLiteEntryRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)
	clk := clock.System{}

	app := &cli.App{
		Projects: service.NewProjectService(projectRepo, observer),
		Tracker:  service.NewTrackerService(projectRepo, uow, clk, observer),
		Reports:  service.NewReportService(entryRepo, clk),
		Export:   service.NewExportService(entryRepo, observer),

		DefaultExportPath: cfg.ExportPath,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
