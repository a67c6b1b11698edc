package service

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	adpapi "github.com/gridironhq/gridiron/internal/api/adp"
	"github.com/gridironhq/gridiron/internal/api/espn"
	"github.com/gridironhq/gridiron/internal/api/sleeper"
	"github.com/gridironhq/gridiron/internal/config"
	"github.com/gridironhq/gridiron/internal/repository/memory"
	"github.com/gridironhq/gridiron/internal/store"
)

const freeAgentLimit = 200

// Fetcher refreshes the local datasets from the remote APIs.
type Fetcher struct {
	espn    *espn.API
	sleeper *sleeper.Client
	adp     *adpapi.Client
	store   *store.Store
	repo    *memory.Repository
	league  *config.League
	year    string
}

func NewFetcher(api *espn.API, sl *sleeper.Client, adpClient *adpapi.Client, st *store.Store, repo *memory.Repository, league *config.League, year string) *Fetcher {
	return &Fetcher{
		espn:    api,
		sleeper: sl,
		adp:     adpClient,
		store:   st,
		repo:    repo,
		league:  league,
		year:    year,
	}
}

// metadata returns the cached league metadata, refetching once the cache
// lapses.
func (f *Fetcher) metadata() (current int, err error) {
	metadata := f.repo.GetMetadata()
	if metadata == nil {
		metadata, err = f.espn.GetLeagueMetadata()
		if err != nil {
			return 0, fmt.Errorf("fetching league metadata: %w", err)
		}
		f.repo.SaveMetadata(metadata)
	}
	return metadata.CurrentWeek, nil
}

// Refresh pulls every remote dataset and writes it to the store.
func (f *Fetcher) Refresh() error {
	start := time.Now()

	week, err := f.metadata()
	if err != nil {
		return err
	}
	slog.Info("refreshing datasets", "week", week)

	if err := f.refreshKickingDefense(week); err != nil {
		return err
	}
	if err := f.refreshProjections(); err != nil {
		return err
	}
	if err := f.refreshADP(); err != nil {
		return err
	}
	if err := f.refreshByeWeeks(); err != nil {
		return err
	}

	slog.Info("datasets refreshed", "duration", time.Since(start))
	return nil
}

// refreshKickingDefense merges ESPN's kicker and defense breakdowns into the
// stat rows. Existing rows for other positions are preserved.
func (f *Fetcher) refreshKickingDefense(week int) error {
	rows, err := f.espn.GetKickingDefenseStats(1, week)
	if err != nil {
		return fmt.Errorf("fetching kicker and defense stats: %w", err)
	}

	existing, err := f.store.LoadPlayerStats()
	if err != nil && !isNoData(err) {
		return err
	}

	merged := rows[:len(rows):len(rows)]
	for _, row := range existing {
		if row.Position == "K" || row.Position == "DST" {
			continue
		}
		merged = append(merged, row)
	}

	if err := f.store.SavePlayerStats(merged); err != nil {
		return err
	}
	slog.Info("saved kicker and defense stats", "rows", len(rows))
	return nil
}

func (f *Fetcher) refreshProjections() error {
	agents, err := f.espn.GetFreeAgents(freeAgentLimit)
	if err != nil {
		return fmt.Errorf("fetching free agents: %w", err)
	}

	if err := f.store.SaveProjections(agents); err != nil {
		return err
	}
	slog.Info("saved projections", "players", len(agents))
	return nil
}

func (f *Fetcher) refreshADP() error {
	entries, err := f.adp.GetADP(f.league.LeagueSettings.NumberOfTeams, f.year)
	if err != nil {
		return fmt.Errorf("fetching adp: %w", err)
	}

	if err := f.store.SaveADP(entries); err != nil {
		return err
	}
	slog.Info("saved adp", "players", len(entries))
	return nil
}

func (f *Fetcher) refreshByeWeeks() error {
	byeWeeks, err := f.espn.GetProSchedule()
	if err != nil {
		return fmt.Errorf("fetching pro schedule: %w", err)
	}
	f.repo.SaveByeWeeks(byeWeeks)
	return nil
}

// TrendingAdds fetches the waiver players managers everywhere are adding.
func (f *Fetcher) TrendingAdds(limit int) ([]sleeper.TrendingAdd, error) {
	players, err := f.sleeper.GetPlayers()
	if err != nil {
		return nil, fmt.Errorf("fetching sleeper players: %w", err)
	}
	return f.sleeper.GetTrendingAdds(players, limit)
}

func isNoData(err error) bool {
	return errors.Is(err, store.ErrNoData)
}
