package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gridironhq/gridiron/internal/lineup"
)

var lineupCmd = &cobra.Command{
	Use:   "lineup",
	Short: "Solve the optimal starting lineup",
	Long:  "Assigns rostered players to starting slots to maximize total projected points, respecting position eligibility.",
	RunE:  runLineup,
}

func init() {
	rootCmd.AddCommand(lineupCmd)
}

func runLineup(_ *cobra.Command, _ []string) error {
	analyzer, _, err := newAnalyzer()
	if err != nil {
		return err
	}

	section, err := analyzer.LineupSection()
	if err != nil {
		if errors.Is(err, lineup.ErrInfeasible) {
			return fmt.Errorf("the roster cannot fill every starting slot: %w", err)
		}
		return err
	}

	return emit("", section)
}
