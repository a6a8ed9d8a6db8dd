package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alexanderramin/whatif/internal/cli"
	"github.com/alexanderramin/whatif/internal/db"
	"github.com/alexanderramin/whatif/internal/repository"
	"github.com/alexanderramin/whatif/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.whatif/whatif.db
	dbPath := os.Getenv("WHATIF_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".whatif", "whatif.db")
	}
	if dir := filepath.Dir(dbPath); dir != "." && dbPath != ":memory:" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
	}

	// Sweep cadence for expired scenarios.
	sweepInterval := time.Hour
	if raw := os.Getenv("WHATIF_SWEEP_INTERVAL"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("invalid WHATIF_SWEEP_INTERVAL %q: %w", raw, err)
		}
		sweepInterval = d
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	var states repository.StateStore = repository.NewSQLiteStateStore(database)

	// Optional at-rest encryption for the sensitive plan slices. People
	// carry salaries; projects carry budgets.
	if passphrase := os.Getenv("WHATIF_STATE_KEY"); passphrase != "" {
		encrypted, err := repository.NewEncryptedStateStore(states, passphrase, "people", "projects")
		if err != nil {
			return fmt.Errorf("configuring state encryption: %w", err)
		}
		states = encrypted
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	plan := service.NewPlanService(states, logger)
	templates := service.NewTemplateService(states, logger)
	scenarios := service.NewScenarioService(states, plan, templates)

	ctx := context.Background()
	if err := templates.Seed(ctx); err != nil {
		return fmt.Errorf("seeding templates: %w", err)
	}

	// One synchronous sweep at startup; CLI invocations are short-lived so
	// the ticker loop stays reserved for embedded long-running use.
	sweeper := service.NewSweeper(scenarios, sweepInterval, logger, nil)
	sweeper.Sweep(ctx)

	app := &cli.App{
		Scenarios: scenarios,
		Templates: templates,
		Contexts:  service.NewContextService(scenarios, plan),
		Plan:      plan,
		Interactive: isatty.IsTerminal(os.Stdin.Fd()) ||
			isatty.IsCygwinTerminal(os.Stdin.Fd()),
	}

	return cli.NewRootCmd(app).Execute()
}
