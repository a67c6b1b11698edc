package main

import (
	"github.com/spf13/cobra"
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Build a value based draft strategy",
	Long:  "Ranks prospects by value over the positional replacement level and simulates a snake draft from the configured seat.",
	RunE:  runDraft,
}

var draftOutputFile string

func init() {
	draftCmd.Flags().StringVarP(&draftOutputFile, "out", "o", "", "Write the strategy to a file instead of stdout")
	rootCmd.AddCommand(draftCmd)
}

func runDraft(_ *cobra.Command, _ []string) error {
	analyzer, _, err := newAnalyzer()
	if err != nil {
		return err
	}

	section, err := analyzer.DraftSection()
	if err != nil {
		return err
	}

	return emit(draftOutputFile, section)
}
