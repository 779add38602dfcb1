package cmd

import (
	"runtime"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build information",
	Long:  `Print the shottime version along with the commit and toolchain it was built from.`,
	Run:   runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) {
	cmd.Printf("shottime %s (commit %s)\n", Version, Commit)
	cmd.Printf("  built with %s on %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
