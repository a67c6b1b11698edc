package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	adpapi "github.com/gridironhq/gridiron/internal/api/adp"
	"github.com/gridironhq/gridiron/internal/api/espn"
	"github.com/gridironhq/gridiron/internal/api/sleeper"
	"github.com/gridironhq/gridiron/internal/config"
	"github.com/gridironhq/gridiron/internal/repository/memory"
	"github.com/gridironhq/gridiron/internal/service"
	"github.com/gridironhq/gridiron/internal/store"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Refresh the local datasets",
	Long:  "Pulls kicker and defense stats plus free agent projections from ESPN, draft positions from Fantasy Football Calculator, and the trending adds feed from Sleeper.",
	RunE:  runFetch,
}

var fetchTrendingLimit int

func init() {
	fetchCmd.Flags().IntVar(&fetchTrendingLimit, "trending", 10, "Number of trending adds to show, 0 to skip")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(_ *cobra.Command, _ []string) error {
	league, err := loadLeague()
	if err != nil {
		return err
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	espnAPI := espn.NewAPI(espn.NewClient(cfg.ESPNAPI))
	repo := memory.NewRepository(24 * time.Hour)

	fetcher := service.NewFetcher(
		espnAPI,
		sleeper.NewClient(),
		adpapi.NewClient(),
		store.New(league.DataDir),
		repo,
		league,
		cfg.ESPNAPI.Year,
	)

	if err := fetcher.Refresh(); err != nil {
		return err
	}

	if fetchTrendingLimit > 0 {
		adds, err := fetcher.TrendingAdds(fetchTrendingLimit)
		if err != nil {
			return err
		}

		fmt.Println("Trending adds across Sleeper leagues:")
		for _, add := range adds {
			fmt.Printf("  %s (%s, %s) +%d\n", add.Name, add.Position, add.Team, add.Adds)
		}
	}

	return nil
}
