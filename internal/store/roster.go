package store

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// RosterEntry is one row of the my_team.md roster table.
type RosterEntry struct {
	Name     string
	Position string
}

// LoadRoster parses the markdown roster file. The file holds a pipe table
// whose first column is the player name and second column the position.
// Anything outside the table is ignored.
func (s *Store) LoadRoster() ([]RosterEntry, error) {
	f, err := os.Open(s.path(rosterFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", rosterFile, ErrNoData)
		}
		return nil, fmt.Errorf("opening %s: %w", rosterFile, err)
	}
	defer f.Close()

	var entries []RosterEntry
	sawHeader := false
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "|") {
			continue
		}

		cells := splitTableRow(line)
		if len(cells) == 0 || cells[0] == "" {
			continue
		}
		if isSeparatorRow(cells) {
			continue
		}
		if !sawHeader {
			sawHeader = true
			continue
		}

		entry := RosterEntry{Name: cells[0]}
		if len(cells) > 1 {
			entry.Position = cells[1]
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", rosterFile, err)
	}
	return entries, nil
}

// SaveRoster writes the roster back out as a markdown table.
func (s *Store) SaveRoster(entries []RosterEntry) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	var b strings.Builder
	b.WriteString("# My Team\n\n")
	b.WriteString("| Player | Position |\n")
	b.WriteString("| --- | --- |\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "| %s | %s |\n", e.Name, e.Position)
	}

	if err := os.WriteFile(s.path(rosterFile), []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", rosterFile, err)
	}
	return nil
}

func splitTableRow(line string) []string {
	parts := strings.Split(strings.Trim(line, "|"), "|")
	cells := make([]string, 0, len(parts))
	for _, p := range parts {
		cells = append(cells, strings.TrimSpace(p))
	}
	return cells
}

func isSeparatorRow(cells []string) bool {
	for _, c := range cells {
		if strings.Trim(c, "-: ") != "" {
			return false
		}
	}
	return true
}
