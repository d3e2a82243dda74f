package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/daypulse/daypulse/internal/llm"
	"github.com/daypulse/daypulse/internal/repository"
	"github.com/daypulse/daypulse/internal/service"
)

var planDate string

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compute and print the productivity plan for a date",
	Long: `Compute the full productivity plan for a date: recovery score,
24 hourly productivity scores, energy flow windows, and ranked
deep-work blocks. Defaults to today.`,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVar(&planDate, "date", "", "date to plan, YYYY-MM-DD (default today)")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, db, err := openDatabase()
	if err != nil {
		return err
	}

	date := planDate
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}

	params := cfg.ScoringParams()
	if err := params.Validate(); err != nil {
		return fmt.Errorf("invalid scoring parameters: %w", err)
	}

	sampleRepo := repository.NewWellnessRepository(db)
	reportRepo := repository.NewReportRepository(db)

	var advisor llm.AdvisoryLLM
	if client := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIAdvisoryModel); client != nil {
		advisor = client
	}

	plans := service.NewPlanService(sampleRepo, reportRepo, advisor, params, cfg.CacheSize)
	plan, err := plans.Plan(cmd.Context(), date)
	if err != nil {
		return err
	}

	fmt.Print(renderPlan(plan, params.FocusThreshold))
	return nil
}
