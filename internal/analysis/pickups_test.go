package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridironhq/gridiron/internal/models"
)

func TestRecommendPickupsOrdersByVOR(t *testing.T) {
	available := []models.PlayerValue{
		{Name: "A", Position: "RB", VOR: 5},
		{Name: "B", Position: "WR", VOR: -1},
		{Name: "C", Position: "RB", VOR: 3},
	}

	picks := RecommendPickups(available, nil, 0)
	require.Len(t, picks, 3)

	assert.Equal(t, "A", picks[0].Name)
	assert.Equal(t, "C", picks[1].Name)
	assert.Equal(t, "B", picks[2].Name)
}

func TestRecommendPickupsFiltersRostered(t *testing.T) {
	available := []models.PlayerValue{
		{Name: "A", VOR: 5},
		{Name: "B", VOR: 4},
	}

	picks := RecommendPickups(available, map[string]bool{"A": true}, 0)
	require.Len(t, picks, 1)
	assert.Equal(t, "B", picks[0].Name)
}

func TestRecommendPickupsTieBreaksOnConsistency(t *testing.T) {
	available := []models.PlayerValue{
		{Name: "Streaky", VOR: 5, Consistency: 8.2},
		{Name: "Steady", VOR: 5, Consistency: 1.1},
	}

	picks := RecommendPickups(available, nil, 0)
	require.Len(t, picks, 2)
	assert.Equal(t, "Steady", picks[0].Name)
}

func TestRecommendPickupsFallsBackToPoints(t *testing.T) {
	// No VOR signal anywhere: raw totals decide instead.
	available := []models.PlayerValue{
		{Name: "Low", TotalPoints: 40},
		{Name: "High", TotalPoints: 90},
	}

	picks := RecommendPickups(available, nil, 0)
	require.Len(t, picks, 2)
	assert.Equal(t, "High", picks[0].Name)
}

func TestRecommendPickupsLimit(t *testing.T) {
	available := []models.PlayerValue{
		{Name: "A", VOR: 3},
		{Name: "B", VOR: 2},
		{Name: "C", VOR: 1},
	}

	picks := RecommendPickups(available, nil, 2)
	require.Len(t, picks, 2)
	assert.Equal(t, "A", picks[0].Name)
	assert.Equal(t, "B", picks[1].Name)
}

func TestRecommendPickupsEmpty(t *testing.T) {
	assert.Empty(t, RecommendPickups(nil, nil, 0))
}
