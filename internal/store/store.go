// Package store persists the analysis datasets as CSV files under a data
// directory, plus the markdown roster file. Missing optional stat columns
// load as zeros so partial datasets still score.
package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// ErrNoData reports a dataset file that has not been downloaded yet.
var ErrNoData = errors.New("store: dataset not found")

const (
	statsFile       = "player_stats.csv"
	projectionsFile = "player_projections.csv"
	adpFile         = "player_adp.csv"
	rosterFile      = "my_team.md"
)

type Store struct {
	dir string
}

func New(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

// readCSV loads a CSV file into a header index and data rows.
func (s *Store) readCSV(name string) ([]string, [][]string, error) {
	f, err := os.Open(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("%s: %w", name, ErrNoData)
		}
		return nil, nil, fmt.Errorf("opening %s: %w", name, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}
	return rows[0], rows[1:], nil
}

func (s *Store) writeCSV(name string, header []string, rows [][]string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	f, err := os.Create(s.path(name))
	if err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}

	w.Flush()
	return w.Error()
}

// row gives header indexed access to one CSV record, treating missing or
// blank numeric cells as zero.
type row struct {
	index map[string]int
	cells []string
}

func (r row) text(column string) string {
	i, ok := r.index[column]
	if !ok || i >= len(r.cells) {
		return ""
	}
	return r.cells[i]
}

func (r row) number(column string) float64 {
	cell := r.text(column)
	if cell == "" {
		return 0
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0
	}
	return v
}

func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	return index
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
