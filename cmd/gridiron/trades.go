package main

import (
	"github.com/spf13/cobra"
)

var tradesCmd = &cobra.Command{
	Use:   "trades",
	Short: "Find sell high and buy low trade targets",
	Long:  "Flags players whose current week diverged sharply from their season average: outperformers to sell and underperformers to buy.",
	RunE:  runTrades,
}

func init() {
	rootCmd.AddCommand(tradesCmd)
}

func runTrades(_ *cobra.Command, _ []string) error {
	analyzer, _, err := newAnalyzer()
	if err != nil {
		return err
	}

	section, err := analyzer.TradesSection()
	if err != nil {
		return err
	}

	return emit("", section)
}
