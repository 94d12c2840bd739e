package edgefinder

import (
	"github.com/cypherlabdev/edge-finder-service/internal/models"
)

var twoWayOutputs = []models.Output{models.OutputO1, models.OutputO2}

// findTwoWayEdges finds edges in a market with two exclusive outcomes.
// With TwoWayInclusiveScan the reference offer is also compared against its
// own fair price; that only yields an edge when the reference book prices the
// market below 100% overround.
func (f *Finder) findTwoWayEdges(match *models.Match, offers []*models.Offer) models.Edges {
	return f.scanRanked(match, offers, twoWayOutputs, f.params.TwoWayInclusiveScan)
}
