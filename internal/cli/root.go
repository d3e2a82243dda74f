// Package cli implements the pulse command line tool.
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/daypulse/daypulse/internal/config"
	"github.com/daypulse/daypulse/internal/domain"
)

var rootCmd = &cobra.Command{
	Use:   "pulse",
	Short: "DayPulse productivity planner",
	Long: `pulse computes daily productivity plans from wellness data.

It scores recovery from sleep, HRV, and resting heart rate, projects
24 hourly productivity scores from a circadian alertness model, and
ranks deep-work blocks for the day.

Run 'pulse plan' for today's plan, 'pulse sync' to pull wellness data
from a configured feed, or 'pulse seed' to populate a demo database.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.New(color.FgRed, color.Bold).Sprint("Error:"), err)
		os.Exit(1)
	}
}

// openDatabase loads configuration and connects to the configured
// database, migrating the schema on the way.
func openDatabase() (*config.Config, *gorm.DB, error) {
	cfg := config.Load()
	db, err := config.NewDatabase(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to database: %w", err)
	}
	if err := db.AutoMigrate(&domain.WellnessSample{}, &domain.DailyReport{}); err != nil {
		return nil, nil, fmt.Errorf("migrating schema: %w", err)
	}
	return cfg, db, nil
}
