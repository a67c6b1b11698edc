// Package memory caches league state between scheduled report runs so the
// watcher does not refetch settings from ESPN on every tick.
package memory

import (
	"sync"
	"time"

	"github.com/gridironhq/gridiron/internal/models"
)

type Repository struct {
	mu       sync.RWMutex
	metadata *models.LeagueMetadata
	byeWeeks map[string]int
	fetched  time.Time
	ttl      time.Duration
}

func NewRepository(ttl time.Duration) *Repository {
	return &Repository{ttl: ttl}
}

func (r *Repository) SaveMetadata(metadata *models.LeagueMetadata) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.metadata = metadata
	r.fetched = time.Now()
}

// GetMetadata returns the cached metadata, or nil once the TTL has lapsed.
func (r *Repository) GetMetadata() *models.LeagueMetadata {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.metadata == nil || r.expired() {
		return nil
	}
	return r.metadata
}

func (r *Repository) SaveByeWeeks(byeWeeks map[string]int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byeWeeks = byeWeeks
}

// GetByeWeeks returns the cached bye week schedule. Bye weeks do not change
// during a season, so no TTL applies.
func (r *Repository) GetByeWeeks() map[string]int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byeWeeks
}

func (r *Repository) expired() bool {
	return r.ttl > 0 && time.Since(r.fetched) > r.ttl
}
