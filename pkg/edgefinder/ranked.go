package edgefinder

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/cypherlabdev/edge-finder-service/internal/models"
)

type verdict int

const (
	outOfWindow verdict = iota
	belowKellyThreshold
	accepted
)

// comparison is one candidate price measured against a yardstick
type comparison struct {
	offer     *models.Offer
	output    models.Output
	yardstick float64
	baseline  *models.Offer
	condition *float64
}

// compare prices the candidate and builds its edge record
func (f *Finder) compare(match *models.Match, c comparison) (models.Edge, verdict) {
	quoted := c.offer.Odds.Price(c.output)
	edge := edgePercent(quoted, c.yardstick)
	if !f.withinWindow(edge) {
		return models.Edge{}, outOfWindow
	}

	kelly := kellyFraction(quoted, c.yardstick)
	if !f.passesKellyGate(kelly) {
		return models.Edge{}, belowKellyThreshold
	}

	return newEdge(match, c, quoted, edge, kelly), accepted
}

func newEdge(match *models.Match, c comparison, quoted float64, edge, kelly decimal.Decimal) models.Edge {
	return models.Edge{
		ID:        models.EdgeID(c.offer.ID, c.output),
		Offer:     c.offer.ID,
		Edge:      edge.InexactFloat64(),
		Kelly:     kelly.InexactFloat64(),
		Bookmaker: c.offer.Bookmaker,
		OddsType:  c.offer.OddsType,
		MatchID:   match.ID,
		HomeTeam:  match.HomeTeam,
		AwayTeam:  match.AwayTeam,
		Competition: models.EdgeCompetition{
			UID:  match.Competition.ID,
			Name: match.Competition.Name,
		},
		StartTime:         match.StartTime,
		SportID:           match.SportID,
		Country:           match.Country,
		Output:            c.output,
		Odds:              quoted,
		OddsTypeCondition: c.condition,
		Yardstick:         c.yardstick,
		BaselineOffer:     c.baseline.ID,
	}
}

// scanRanked runs the sort-and-walk comparison for one market. For every
// output the offers are ranked best price first and each offer ranked above
// the reference is compared against the reference's fair price. The walk for
// an output ends at the first candidate outside the acceptance window.
func (f *Finder) scanRanked(match *models.Match, offers []*models.Offer, outputs []models.Output, inclusive bool) models.Edges {
	edges := make(models.Edges)

	for _, output := range outputs {
		ranked := rankByPrice(offers, output)

		ref := f.referenceIndex(ranked)
		if ref < 0 {
			continue
		}
		baseline := ranked[ref]

		market := make([]float64, len(outputs))
		for i, o := range outputs {
			market[i] = baseline.Odds.Price(o)
		}
		yardstick := fairPrice(baseline.Odds.Price(output), market...)

		end := ref
		if inclusive {
			end = ref + 1
		}

	scan:
		for _, candidate := range ranked[:end] {
			edge, v := f.compare(match, comparison{
				offer:     candidate,
				output:    output,
				yardstick: yardstick,
				baseline:  baseline,
				condition: lineCondition(candidate),
			})
			switch v {
			case outOfWindow:
				break scan
			case accepted:
				edges[edge.ID] = edge
			}
		}
	}

	return edges
}

// rankByPrice returns a copy of offers sorted by the output's price, best first.
// Equal prices keep input order.
func rankByPrice(offers []*models.Offer, output models.Output) []*models.Offer {
	ranked := make([]*models.Offer, len(offers))
	copy(ranked, offers)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Odds.Price(output) > ranked[j].Odds.Price(output)
	})
	return ranked
}

// referenceIndex returns the position of the first reference offer, or -1
func (f *Finder) referenceIndex(ranked []*models.Offer) int {
	for i, o := range ranked {
		if o.Bookmaker == f.params.ReferenceBookmaker {
			return i
		}
	}
	return -1
}

func lineCondition(o *models.Offer) *float64 {
	if line, ok := o.Line(); ok {
		return &line
	}
	return nil
}
