package edgefinder

import (
	"math"

	"github.com/cypherlabdev/edge-finder-service/internal/models"
)

// lines closer than this are the same line
const lineTolerance = 1e-9

// crossoverSides maps each side of an asian handicap to the european handicap
// outcome and line offset that settle on the same scores
var crossoverSides = []struct {
	asian    models.Output
	european models.Output
	offset   float64
}{
	{asian: models.OutputO1, european: models.OutputO1, offset: 0.5},
	{asian: models.OutputO2, european: models.OutputO3, offset: -0.5},
}

// isCrossover reports whether the offer takes part in the asian/european
// handicap comparison
func isCrossover(o *models.Offer) bool {
	return o.OddsType == models.OddsTypeAsianHandicap || o.OddsType == models.OddsTypeEuropeanHandicap
}

// findCrossoverEdges compares european handicap offers against the reference
// bookmaker's asian handicap on the adjacent line. Every matching offer is
// evaluated on its own; there is no ranking here.
func (f *Finder) findCrossoverEdges(match *models.Match, offers []*models.Offer) models.Edges {
	edges := make(models.Edges)

	for _, baseline := range offers {
		if baseline.Bookmaker != f.params.ReferenceBookmaker || baseline.OddsType != models.OddsTypeAsianHandicap {
			continue
		}

		for _, side := range crossoverSides {
			yardstick := crossYardstick(baseline.Odds.Price(side.asian), baseline.Odds.O1, baseline.Odds.O2)
			condition := baseline.Odds.O3 + side.offset

			for _, offer := range offers {
				if offer.OddsType != models.OddsTypeEuropeanHandicap || !sameLine(offer.Odds.O4, condition) {
					continue
				}

				line := offer.Odds.O4
				edge, v := f.compare(match, comparison{
					offer:     offer,
					output:    side.european,
					yardstick: yardstick,
					baseline:  baseline,
					condition: &line,
				})
				if v == accepted {
					edges[edge.ID] = edge
				}
			}
		}
	}

	return edges
}

func sameLine(a, b float64) bool {
	return math.Abs(a-b) < lineTolerance
}
