// Package main provides the gridiron CLI: fantasy football analysis reports
// from league stats, projections, and draft market data.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gridiron",
	Short: "Fantasy football analysis toolkit",
	Long:  "Gridiron scores league stats, values players over replacement, and produces weekly reports: team needs, waiver pickups, trade targets, optimal lineups, and draft strategy.",
}

var leagueFile string

func init() {
	rootCmd.PersistentFlags().StringVarP(&leagueFile, "league", "l", "league.yaml", "Path to league config file")
}

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
