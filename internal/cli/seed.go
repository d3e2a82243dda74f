package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/daypulse/daypulse/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the database with demo wellness data",
	Long: `Generate roughly six weeks of plausible wellness samples so plans can
be computed without a configured feed. Existing dates are left alone.`,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	_, db, err := openDatabase()
	if err != nil {
		return err
	}
	if err := seed.Run(db); err != nil {
		return fmt.Errorf("seeding database: %w", err)
	}
	fmt.Printf("%s database seeded\n", color.New(color.FgGreen).Sprint("✓"))
	return nil
}
