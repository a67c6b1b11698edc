package main

import (
	"github.com/spf13/cobra"
)

var needsCmd = &cobra.Command{
	Use:   "needs",
	Short: "Analyze positional team needs",
	Long:  "Compares the roster's average value over replacement per position against the league and flags the weakest spots.",
	RunE:  runNeeds,
}

func init() {
	rootCmd.AddCommand(needsCmd)
}

func runNeeds(_ *cobra.Command, _ []string) error {
	analyzer, _, err := newAnalyzer()
	if err != nil {
		return err
	}

	section, err := analyzer.TeamNeedsSection()
	if err != nil {
		return err
	}

	return emit("", section)
}
