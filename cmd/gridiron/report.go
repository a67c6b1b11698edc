package main

import (
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Build the full weekly report",
	Long:  "Builds the weekly markdown report: team needs, optimal lineup, waiver pickups, and trade targets.",
	RunE:  runReport,
}

var reportOutputFile string

func init() {
	reportCmd.Flags().StringVarP(&reportOutputFile, "out", "o", "", "Write the report to a file instead of stdout")
	rootCmd.AddCommand(reportCmd)
}

func runReport(_ *cobra.Command, _ []string) error {
	analyzer, _, err := newAnalyzer()
	if err != nil {
		return err
	}

	rendered, err := analyzer.WeeklyReport(nil)
	if err != nil {
		return err
	}

	return emit(reportOutputFile, rendered)
}
