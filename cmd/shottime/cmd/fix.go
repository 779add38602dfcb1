package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/mediatools/shottime/internal/fixer"
	"github.com/mediatools/shottime/internal/history"
	"github.com/mediatools/shottime/internal/logger"
	"github.com/mediatools/shottime/internal/report"
)

var fixDryRun bool

var fixCmd = &cobra.Command{
	Use:   "fix [path]",
	Short: "Resolve shot times and write them to files",
	Long: `Fix scans the given file or directory, resolves a target shot time
for every media file and applies it: missing EXIF date tags are filled
in and filesystem modification times are synced to the target.

Every run is journaled to the history database (see 'shottime history')
so past changes can be reviewed.

Example:
  shottime fix ~/Pictures/2021
  shottime fix --dry-run ~/Pictures/2021`,
	Args: cobra.ExactArgs(1),
	RunE: runFix,
}

func init() {
	fixCmd.Flags().BoolVar(&fixDryRun, "dry-run", false,
		"Resolve and journal without writing to any file")

	rootCmd.AddCommand(fixCmd)
}

func runFix(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	var store *history.Store
	if cfg.History.Enabled {
		store, err = history.Open(cfg.History.Path)
		if err != nil {
			// The journal is an audit aid, not a prerequisite.
			log.Warnw("History journal unavailable, continuing without it",
				"path", cfg.History.Path, "error", err)
		} else {
			defer store.Close()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	f := fixer.New(cfg, log, store)
	result, err := f.Run(ctx, args[0], fixDryRun)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Warn("Fix cancelled by user")
			return nil
		}
		return fmt.Errorf("fix failed: %w", err)
	}

	printer := report.NewPrinter(cmd.OutOrStdout(), color.IsSupportColor())
	printer.PrintRecords(result.Records)
	printer.PrintSummary(result.Records, result.Stats)
	if !result.DryRun {
		printer.PrintApplySummary(result.ExifWrites, result.TimeSyncs, result.VerifyFailed)
	}

	log.Infow("Run complete",
		"root", result.Root,
		"duration", result.Duration,
		"dry_run", result.DryRun,
	)

	if len(result.ApplyFailures) > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "\nFailures:\n")
		for _, e := range result.ApplyFailures {
			fmt.Fprintf(cmd.OutOrStdout(), "  - %v\n", e)
		}
		return fmt.Errorf("fix completed with %d failure(s)", len(result.ApplyFailures))
	}

	return nil
}
