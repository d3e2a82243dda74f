package cli

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/daypulse/daypulse/internal/collector"
	"github.com/daypulse/daypulse/internal/llm"
	"github.com/daypulse/daypulse/internal/repository"
	"github.com/daypulse/daypulse/internal/service"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the daily workflow: sync, score, and print today's plan",
	Long: `Pull the last week of wellness data from the configured feed (skipped
when no feed is configured), then compute and print today's plan.`,
	RunE: runDaily,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runDaily(cmd *cobra.Command, args []string) error {
	cfg, db, err := openDatabase()
	if err != nil {
		return err
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

	now := time.Now()
	today := now.Format("2006-01-02")

	if cfg.WellnessAPIBaseURL != "" && cfg.WellnessAPIKey != "" && cfg.WellnessAthleteID != "" {
		client := collector.NewClient(cfg.WellnessAPIBaseURL, cfg.WellnessAPIKey, cfg.WellnessAthleteID)
		sync := service.NewSyncService(client, collector.Resolve, sampleRepo, plans)
		oldest := now.AddDate(0, 0, -7).Format("2006-01-02")
		written, err := sync.Sync(cmd.Context(), oldest, today)
		if err != nil {
			return fmt.Errorf("syncing wellness data: %w", err)
		}
		log.Printf("Synced %d day(s) of wellness data", written)
	} else {
		log.Println("No wellness feed configured, planning from stored samples")
	}

	plan, err := plans.Plan(cmd.Context(), today)
	if err != nil {
		return err
	}

	fmt.Print(renderPlan(plan, params.FocusThreshold))
	return nil
}
