package edgefinder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cypherlabdev/edge-finder-service/internal/models"
)

// TestFindCrossoverEdges tests european handicap offers priced against the reference asian handicap
func TestFindCrossoverEdges(t *testing.T) {
	f := NewFinder(testParams(), testLogger())
	match := testMatch()

	edges := f.findCrossoverEdges(&match, offerPtrs(
		offer("eh-cold", otherBook, models.OddsTypeEuropeanHandicap, 1.95, 3.50, 4.00, 0),
		offer("ah-ref", refBook, models.OddsTypeAsianHandicap, 2.00, 2.00, -0.5, 0),
		offer("eh-home", otherBook, models.OddsTypeEuropeanHandicap, 2.10, 3.50, 4.00, 0),
		offer("eh-away", thirdBook, models.OddsTypeEuropeanHandicap, 1.50, 4.00, 2.05, -1.0),
		offer("eh-far", thirdBook, models.OddsTypeEuropeanHandicap, 3.00, 4.00, 3.00, 1.0),
	))

	require.Len(t, edges, 2)

	home := edges["eh-home_o1"]
	assert.Equal(t, 5.0, home.Edge)
	assert.Equal(t, 2.0, home.Yardstick)
	assert.Equal(t, models.OutputO1, home.Output)
	assert.Equal(t, 2.10, home.Odds)
	assert.Equal(t, "ah-ref", home.BaselineOffer)
	assert.Equal(t, models.OddsTypeEuropeanHandicap, home.OddsType)
	require.NotNil(t, home.OddsTypeCondition)
	assert.Equal(t, 0.0, *home.OddsTypeCondition)
	assert.InDelta(t, 0.0455, home.Kelly, 1e-9)

	away := edges["eh-away_o3"]
	assert.Equal(t, 2.5, away.Edge)
	assert.Equal(t, models.OutputO3, away.Output)
	require.NotNil(t, away.OddsTypeCondition)
	assert.Equal(t, -1.0, *away.OddsTypeCondition)
}

// TestFindCrossoverEdges_NoReference tests that only the reference bookmaker's
// asian handicap acts as yardstick
func TestFindCrossoverEdges_NoReference(t *testing.T) {
	f := NewFinder(testParams(), testLogger())
	match := testMatch()

	edges := f.findCrossoverEdges(&match, offerPtrs(
		offer("ah-x", otherBook, models.OddsTypeAsianHandicap, 2.00, 2.00, -0.5, 0),
		offer("eh-home", thirdBook, models.OddsTypeEuropeanHandicap, 2.10, 3.50, 4.00, 0),
		offer("eh-ref", refBook, models.OddsTypeEuropeanHandicap, 1.90, 3.50, 4.00, 0),
	))

	assert.Empty(t, edges)
}

// TestCrossoverSides tests the translation between handicap encodings
func TestCrossoverSides(t *testing.T) {
	const line = -1.25

	require.Len(t, crossoverSides, 2)
	assert.Equal(t, line+0.5, line+crossoverSides[0].offset)
	assert.Equal(t, models.OutputO1, crossoverSides[0].european)
	assert.Equal(t, line-0.5, line+crossoverSides[1].offset)
	assert.Equal(t, models.OutputO3, crossoverSides[1].european)

	// A margin-free reference translates to its own price
	assert.Equal(t, 2.00, crossYardstick(2.00, 2.00, 2.00))
	assert.InDelta(t, 2.00, crossYardstick(1.90, 1.90, 1.90), 1e-9)
}

// TestFindEdges_CrossoverOverwritesShapeEdges tests that crossover results win on equal keys
func TestFindEdges_CrossoverOverwritesShapeEdges(t *testing.T) {
	report := findEdges(t, testParams(), snapshotOf(
		offer("ah-ref", refBook, models.OddsTypeAsianHandicap, 2.00, 2.00, -0.5, 0),
		offer("eh-ref", refBook, models.OddsTypeEuropeanHandicap, 2.00, 3.40, 4.20, 0),
		offer("eh-home", otherBook, models.OddsTypeEuropeanHandicap, 2.10, 3.30, 4.00, 0),
	))

	require.Contains(t, report.Edges, "eh-home_o1")
	e := report.Edges["eh-home_o1"]
	assert.Equal(t, "ah-ref", e.BaselineOffer)
	assert.Equal(t, 2.0, e.Yardstick)
}

// TestSameLine tests line comparison tolerance
func TestSameLine(t *testing.T) {
	assert.True(t, sameLine(0.25, -0.25+0.5))
	assert.True(t, sameLine(0.1+0.2, 0.3))
	assert.False(t, sameLine(0.25, 0.5))
}
