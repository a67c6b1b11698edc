package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridironhq/gridiron/internal/models"
)

func scoredWeek(name string, weekNum int, points float64) models.PlayerWeek {
	return models.PlayerWeek{Name: name, Position: "RB", Week: weekNum, FantasyPoints: points}
}

func TestTradeTargets(t *testing.T) {
	scored := []models.PlayerWeek{
		// Averaged 10.0 before spiking to 22.0: sell high (+12).
		scoredWeek("Spike", 1, 8),
		scoredWeek("Spike", 2, 12),
		scoredWeek("Spike", 3, 22),
		// Averaged 15.0 before dipping to 9.0: buy low (-6).
		scoredWeek("Dip", 1, 14),
		scoredWeek("Dip", 2, 16),
		scoredWeek("Dip", 3, 9),
		// Steady performer triggers neither threshold.
		scoredWeek("Steady", 1, 10),
		scoredWeek("Steady", 2, 10),
		scoredWeek("Steady", 3, 11),
	}

	sellHigh, buyLow := TradeTargets(scored)

	require.Len(t, sellHigh, 1)
	assert.Equal(t, "Spike", sellHigh[0].Name)
	assert.InDelta(t, 12.0, sellHigh[0].Difference, 1e-9)
	assert.InDelta(t, 10.0, sellHigh[0].AveragePoints, 1e-9)

	require.Len(t, buyLow, 1)
	assert.Equal(t, "Dip", buyLow[0].Name)
	assert.InDelta(t, -6.0, buyLow[0].Difference, 1e-9)
}

func TestTradeTargetsSorting(t *testing.T) {
	scored := []models.PlayerWeek{
		scoredWeek("Big", 1, 10),
		scoredWeek("Big", 2, 40),
		scoredWeek("Small", 1, 10),
		scoredWeek("Small", 2, 21),
		scoredWeek("Worst", 1, 20),
		scoredWeek("Worst", 2, 5),
		scoredWeek("Mild", 1, 20),
		scoredWeek("Mild", 2, 14),
	}

	sellHigh, buyLow := TradeTargets(scored)

	require.Len(t, sellHigh, 2)
	assert.Equal(t, "Big", sellHigh[0].Name)
	assert.Equal(t, "Small", sellHigh[1].Name)

	require.Len(t, buyLow, 2)
	assert.Equal(t, "Worst", buyLow[0].Name)
	assert.Equal(t, "Mild", buyLow[1].Name)
}

func TestTradeTargetsSingleWeek(t *testing.T) {
	sellHigh, buyLow := TradeTargets([]models.PlayerWeek{
		scoredWeek("Solo", 1, 30),
	})

	assert.Empty(t, sellHigh)
	assert.Empty(t, buyLow)
}

func TestTradeTargetsAbsentFromCurrentWeek(t *testing.T) {
	// A player with history but no current week line is not a candidate.
	sellHigh, buyLow := TradeTargets([]models.PlayerWeek{
		scoredWeek("Ghost", 1, 30),
		scoredWeek("Ghost", 2, 28),
		scoredWeek("Active", 1, 10),
		scoredWeek("Active", 2, 10),
		scoredWeek("Active", 3, 10),
	})

	assert.Empty(t, sellHigh)
	assert.Empty(t, buyLow)
}

func TestTradeTargetsEmpty(t *testing.T) {
	sellHigh, buyLow := TradeTargets(nil)
	assert.Empty(t, sellHigh)
	assert.Empty(t, buyLow)
}
