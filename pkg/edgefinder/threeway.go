package edgefinder

import (
	"github.com/cypherlabdev/edge-finder-service/internal/models"
)

var threeWayOutputs = []models.Output{models.OutputO1, models.OutputO2, models.OutputO3}

// findThreeWayEdges finds edges in a market with three exclusive outcomes.
// Only offers ranked strictly above the reference offer are compared.
func (f *Finder) findThreeWayEdges(match *models.Match, offers []*models.Offer) models.Edges {
	return f.scanRanked(match, offers, threeWayOutputs, false)
}
