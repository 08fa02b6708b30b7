// Package main - entry point for the student records hub console.
//
// The system is a small in-memory record manager for students: insertion with
// uniqueness checks, lookup by ID, a top-scorer-per-subject query, and a
// console menu driving it all. Everything runs sequentially from a single
// control loop; there is no persistence and no concurrency.
//
// The layering follows Clean Architecture:
//   - Domain: the roster and the student entity, no external dependencies
//   - Application: enrollment commands and lookup queries (CQRS)
//   - Interface: the console menu, prompting, and presenters
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/campus-hub/student-records-hub/config"
	"github.com/campus-hub/student-records-hub/internal/application/command"
	"github.com/campus-hub/student-records-hub/internal/application/query"
	"github.com/campus-hub/student-records-hub/internal/domain/student"
	"github.com/campus-hub/student-records-hub/internal/interface/console"
	"github.com/campus-hub/student-records-hub/pkg/logger"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// ─────────────────────────────────────────────────────────────────────────
	// 1. CONFIGURATION
	// ─────────────────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 2. LOGGING
	// Log lines go to stderr; the menu owns stdout.
	// ─────────────────────────────────────────────────────────────────────────
	log := setupLogger(cfg)
	log.Info("starting student records hub",
		logger.String("env", string(cfg.App.Environment)),
		logger.String("version", cfg.App.Version),
		logger.Bool("debug", cfg.App.Debug),
	)

	// ─────────────────────────────────────────────────────────────────────────
	// 3. ROSTER AND USE CASES
	// ─────────────────────────────────────────────────────────────────────────
	roster := student.NewManager()

	enrollHandler := command.NewEnrollStudentHandler(roster, log)
	findHandler := query.NewFindStudentHandler(roster, log)
	listHandler := query.NewListStudentsHandler(roster, log)
	topHandler := query.NewTopScorerHandler(roster, log)

	// ─────────────────────────────────────────────────────────────────────────
	// 4. DEMO DATA
	// ─────────────────────────────────────────────────────────────────────────
	if cfg.Console.SeedDemoData {
		if err := seedDemoData(ctx, enrollHandler); err != nil {
			return fmt.Errorf("failed to seed demo data: %w", err)
		}
		log.Info("demo data seeded", logger.RosterSize(roster.Count()))
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 5. MENU LOOP
	// ─────────────────────────────────────────────────────────────────────────
	menu := console.NewMenu(
		console.NewPrompter(os.Stdin, os.Stdout, cfg.Console.MaxInputAttempts),
		os.Stdout,
		enrollHandler,
		findHandler,
		listHandler,
		topHandler,
		log,
	)

	if err := menu.Run(ctx); err != nil {
		return fmt.Errorf("menu loop: %w", err)
	}

	log.Info("shutting down")
	return nil
}

func setupLogger(cfg *config.Config) *logger.Logger {
	level := logger.ParseLevel(cfg.Observability.LogLevel)
	if cfg.App.Debug {
		level = logger.LevelDebug
	}

	return logger.New(logger.Options{
		Output:    os.Stderr,
		Level:     level,
		AddCaller: cfg.Observability.LogCaller,
	})
}

// seedDemoData enrolls the three reference students so the menu has
// something to show on a fresh start.
func seedDemoData(ctx context.Context, enroll *command.EnrollStudentHandler) error {
	seed := []command.EnrollStudentCommand{
		{Name: "Bhanu Pratap", ID: 101, Scores: []student.Score{80, 90, 85}, CorrelationID: "seed"},
		{Name: "Harsh", ID: 102, Scores: []student.Score{95, 88, 92}, CorrelationID: "seed"},
		{Name: "Badal", ID: 103, Scores: []student.Score{78, 85, 80}, CorrelationID: "seed"},
	}

	for _, cmd := range seed {
		if _, err := enroll.Handle(ctx, cmd); err != nil {
			return err
		}
	}
	return nil
}
