package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gridironhq/gridiron/internal/models"
)

func TestMetadataRoundTrip(t *testing.T) {
	repo := NewRepository(time.Hour)

	assert.Nil(t, repo.GetMetadata())

	metadata := &models.LeagueMetadata{LeagueID: 12345, CurrentWeek: 6}
	repo.SaveMetadata(metadata)

	assert.Equal(t, metadata, repo.GetMetadata())
}

func TestMetadataExpires(t *testing.T) {
	repo := NewRepository(time.Nanosecond)
	repo.SaveMetadata(&models.LeagueMetadata{LeagueID: 12345})

	time.Sleep(time.Millisecond)
	assert.Nil(t, repo.GetMetadata())
}

func TestByeWeeksHaveNoTTL(t *testing.T) {
	repo := NewRepository(time.Nanosecond)
	repo.SaveByeWeeks(map[string]int{"KC": 6})

	time.Sleep(time.Millisecond)
	assert.Equal(t, map[string]int{"KC": 6}, repo.GetByeWeeks())
}
