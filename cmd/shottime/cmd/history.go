package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mediatools/shottime/internal/history"
	"github.com/mediatools/shottime/internal/report"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past runs from the journal",
	Long: `History displays past resolution runs recorded in the journal
database, newest first.

Example:
  shottime history --limit 5`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20,
		"Maximum number of runs to show")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if !cfg.History.Enabled {
		return fmt.Errorf("history journal is disabled in configuration")
	}

	store, err := history.Open(cfg.History.Path)
	if err != nil {
		return fmt.Errorf("failed to open history db: %w", err)
	}
	defer store.Close()

	runs, err := store.ListRuns(context.Background(), historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		cmd.Printf("No runs recorded in %s\n", cfg.History.Path)
		return nil
	}

	for _, r := range runs {
		mode := "fix"
		if r.DryRun {
			mode = "dry-run"
		}
		cmd.Printf("#%d  %s  (%s)\n", r.ID, r.Root, mode)
		cmd.Printf("   Started:       %s\n", report.FormatTime(&r.StartedAt))
		cmd.Printf("   Finished:      %s\n", report.FormatTime(r.FinishedAt))
		cmd.Printf("   Files:         %d (anchors %d, filled %d, skipped %d)\n",
			r.Total, r.Anchors, r.Filled, r.Skipped)
		cmd.Printf("   EXIF written:  %d\n", r.ExifWrites)
		cmd.Printf("   Times synced:  %d\n", r.TimeSyncs)
		cmd.Println()
	}

	cmd.Printf("Total: %d run(s)\n", len(runs))
	return nil
}
