package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/mediatools/shottime/internal/fixer"
	"github.com/mediatools/shottime/internal/logger"
	"github.com/mediatools/shottime/internal/report"
)

var planCmd = &cobra.Command{
	Use:   "plan [path]",
	Short: "Show what times would be assigned without changing anything",
	Long: `Plan scans the given file or directory, resolves a target shot time
for every media file and prints the result without touching any file.

Each file is reported with its status:
  [OK]    a shot time was read directly from metadata or the filename
  [FILL]  the time was inferred from neighboring files
  [SKIP]  no information was available

Example:
  shottime plan ~/Pictures/2021`,
	Args: cobra.ExactArgs(1),
	RunE: runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	f := fixer.New(cfg, log, nil)
	records, stats, err := f.Plan(ctx, args[0])
	if err != nil {
		return fmt.Errorf("plan failed: %w", err)
	}

	printer := report.NewPrinter(cmd.OutOrStdout(), color.IsSupportColor())
	printer.PrintRecords(records)
	printer.PrintSummary(records, stats)

	return nil
}
