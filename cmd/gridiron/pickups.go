package main

import (
	"github.com/spf13/cobra"

	"github.com/gridironhq/gridiron/internal/analysis"
)

var pickupsCmd = &cobra.Command{
	Use:   "pickups",
	Short: "Suggest waiver wire pickups",
	Long:  "Ranks unrostered players by value over replacement, breaking ties toward steadier week to week scoring.",
	RunE:  runPickups,
}

var pickupsLimit int

func init() {
	pickupsCmd.Flags().IntVarP(&pickupsLimit, "limit", "n", analysis.DefaultPickupLimit, "Maximum number of suggestions")
	rootCmd.AddCommand(pickupsCmd)
}

func runPickups(_ *cobra.Command, _ []string) error {
	analyzer, _, err := newAnalyzer()
	if err != nil {
		return err
	}

	section, err := analyzer.PickupsSection(pickupsLimit)
	if err != nil {
		return err
	}

	return emit("", section)
}
