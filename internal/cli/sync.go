package cli

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/daypulse/daypulse/internal/collector"
	"github.com/daypulse/daypulse/internal/repository"
	"github.com/daypulse/daypulse/internal/service"
)

var (
	syncOldest string
	syncNewest string
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Pull wellness data from the configured feed",
	Long: `Fetch wellness samples from the configured external feed and upsert
them into local storage, one resolved record per day. Requires
WELLNESS_API_BASE_URL, WELLNESS_API_KEY, and WELLNESS_ATHLETE_ID.`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().StringVar(&syncOldest, "from", "", "oldest date to fetch, YYYY-MM-DD (default 7 days ago)")
	syncCmd.Flags().StringVar(&syncNewest, "to", "", "newest date to fetch, YYYY-MM-DD (default today)")
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	cfg, db, err := openDatabase()
	if err != nil {
		return err
	}
	if cfg.WellnessAPIBaseURL == "" || cfg.WellnessAPIKey == "" || cfg.WellnessAthleteID == "" {
		return fmt.Errorf("wellness feed not configured, set WELLNESS_API_BASE_URL, WELLNESS_API_KEY, and WELLNESS_ATHLETE_ID")
	}

	now := time.Now()
	oldest := syncOldest
	if oldest == "" {
		oldest = now.AddDate(0, 0, -7).Format("2006-01-02")
	}
	newest := syncNewest
	if newest == "" {
		newest = now.Format("2006-01-02")
	}
	for _, d := range []string{oldest, newest} {
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", d)
		}
	}

	client := collector.NewClient(cfg.WellnessAPIBaseURL, cfg.WellnessAPIKey, cfg.WellnessAthleteID)
	repo := repository.NewWellnessRepository(db)
	sync := service.NewSyncService(client, collector.Resolve, repo, nil)

	written, err := sync.Sync(cmd.Context(), oldest, newest)
	if err != nil {
		return err
	}

	fmt.Printf("%s synced %d day(s) from %s to %s\n",
		color.New(color.FgGreen).Sprint("✓"), written, oldest, newest)
	return nil
}
