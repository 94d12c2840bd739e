// Package edgefinder detects priced edges between bookmaker offers and a
// reference bookmaker's vig-free price.
package edgefinder

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/cypherlabdev/edge-finder-service/internal/models"
)

// Finder compares offers against a reference bookmaker and sizes the edges it finds
type Finder struct {
	params models.FinderParams
	logger zerolog.Logger
}

// NewFinder creates a new edge finder
func NewFinder(params models.FinderParams, logger zerolog.Logger) *Finder {
	return &Finder{
		params: params,
		logger: logger.With().Str("component", "edge_finder").Logger(),
	}
}

// FindEdges runs one full computation pass over the snapshot.
// The snapshot is read only; the returned report is freshly allocated.
func (f *Finder) FindEdges(snapshot *models.OfferSnapshot) (*models.EdgeReport, error) {
	if snapshot == nil {
		return nil, fmt.Errorf("offer snapshot is nil")
	}

	matches := make(map[string]*models.Match, len(snapshot.Matches))
	for i := range snapshot.Matches {
		if _, ok := matches[snapshot.Matches[i].ID]; !ok {
			matches[snapshot.Matches[i].ID] = &snapshot.Matches[i]
		}
	}

	offers, rejected := f.validate(snapshot.Offers, matches)

	edges := make(models.Edges)
	for _, group := range groupByMatch(offers) {
		if len(group.offers) < 2 {
			continue
		}
		edges.Merge(f.findGroupEdges(matches[group.key], group.offers))
	}

	f.logger.Debug().
		Str("batch_id", snapshot.BatchID).
		Int("offer_count", len(snapshot.Offers)).
		Int("rejected_count", len(rejected)).
		Int("edge_count", len(edges)).
		Msg("edge search complete")

	return &models.EdgeReport{
		BatchID:  snapshot.BatchID,
		Edges:    edges,
		Rejected: rejected,
	}, nil
}

// findGroupEdges routes each market of one match to the finder for its shape
func (f *Finder) findGroupEdges(match *models.Match, offers []*models.Offer) models.Edges {
	edges := make(models.Edges)

	for _, oddsType := range models.AllOddsTypes {
		subOffers := filterOffers(offers, func(o *models.Offer) bool {
			return o.OddsType == oddsType
		})
		if len(subOffers) < 2 {
			continue
		}

		switch shape := oddsType.Shape(); shape {
		case models.ShapeThreeWay:
			edges.Merge(f.findThreeWayEdges(match, subOffers))
		case models.ShapeTwoWay:
			edges.Merge(f.findTwoWayEdges(match, subOffers))
		case models.ShapeTwoWayLine, models.ShapeThreeWayLine:
			for _, line := range groupByLine(subOffers) {
				if len(line.offers) < 2 {
					continue
				}
				if shape == models.ShapeTwoWayLine {
					edges.Merge(f.findTwoWayEdges(match, line.offers))
				} else {
					edges.Merge(f.findThreeWayEdges(match, line.offers))
				}
			}
		case models.ShapeUnknown:
			// validate drops offers without a known shape
		}
	}

	crossover := filterOffers(offers, isCrossover)
	if len(crossover) > 1 {
		edges.Merge(f.findCrossoverEdges(match, crossover))
	}

	return edges
}

// filterOffers returns the offers matching keep, in input order
func filterOffers(offers []*models.Offer, keep func(*models.Offer) bool) []*models.Offer {
	var out []*models.Offer
	for _, o := range offers {
		if keep(o) {
			out = append(out, o)
		}
	}
	return out
}
