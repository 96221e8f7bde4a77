package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/AlphaBravo227/CrewOps360-sub001/cmd/cli/commands"
	"github.com/AlphaBravo227/CrewOps360-sub001/internal/config"
	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/postgres"
	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/utils/logging"
)

var (
	env string
	app *commands.AppContext
)

func main() {
	app = &commands.AppContext{}

	rootCmd := &cobra.Command{
		Use:   "crewops",
		Short: "CrewOps360 CLI - Validate tracks and simulate shift allocation",
		Long:  `A CLI tool for validating 42-day shift tracks and simulating seniority-based shift allocation for flight crews.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Logger != nil {
				app.Logger.Sync()
			}
			if app.Store != nil {
				app.Store.Close()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	rootCmd.AddCommand(commands.ImportRosterCmd(app))
	rootCmd.AddCommand(commands.ValidateTrackCmd(app))
	rootCmd.AddCommand(commands.SimulateScheduleCmd(app))
	rootCmd.AddCommand(commands.ViewSimulationRunsCmd(app))
	rootCmd.AddCommand(commands.StaffingCmd(app))
	rootCmd.AddCommand(commands.ListStaffCmd(app))
	rootCmd.AddCommand(commands.ShowCatalogCmd(app))
	rootCmd.AddCommand(commands.ShowCalendarCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config, and the database store
func initApp() error {
	var err error
	app.Ctx = context.Background()

	app.Logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application", zap.String("environment", env))

	app.Logger.Info("Loading configuration")
	app.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully")

	app.Logger.Info("Connecting to database")
	app.Store, err = postgres.NewDB(app.Ctx, app.Cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	app.Logger.Info("Running migrations")
	applied, err := app.Store.RunMigrations(app.Ctx)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	app.Logger.Info("Database initialized successfully", zap.Int("migrations_applied", applied))

	return nil
}
