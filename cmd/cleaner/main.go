package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/phonoprep/internal/cli"
	"codeberg.org/snonux/phonoprep/internal/processor"
)

func main() {
	flags := cli.NewFlags()
	rootCmd := cli.CreateCleanerCommand(flags)

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return processor.NewProcessor(flags, slog.Default()).Clean()
	}

	if err := rootCmd.Execute(); err != nil {
		slog.Error("Cleaning failed", slog.Any("error", err))
		os.Exit(1)
	}
}
