package main

import (
	"fmt"
	"os"

	"github.com/gridironhq/gridiron/internal/config"
	"github.com/gridironhq/gridiron/internal/service"
	"github.com/gridironhq/gridiron/internal/store"
)

func loadLeague() (*config.League, error) {
	league, err := config.LoadLeague(leagueFile)
	if err != nil {
		return nil, fmt.Errorf("loading league config: %w", err)
	}
	return league, nil
}

func newAnalyzer() (*service.Analyzer, *config.League, error) {
	league, err := loadLeague()
	if err != nil {
		return nil, nil, err
	}
	return service.NewAnalyzer(league, store.New(league.DataDir)), league, nil
}

// emit writes text to the given file, or stdout when path is empty.
func emit(path, text string) error {
	if path == "" {
		fmt.Println(text)
		return nil
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
