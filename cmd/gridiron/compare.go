package main

import (
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare <player> <player> [player...]",
	Short: "Compare players side by side",
	Long:  "Puts two or more players next to each other on season points, value over replacement, consistency, ADP, and projection.",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func runCompare(_ *cobra.Command, args []string) error {
	analyzer, _, err := newAnalyzer()
	if err != nil {
		return err
	}

	section, err := analyzer.CompareSection(args)
	if err != nil {
		return err
	}

	return emit("", section)
}
