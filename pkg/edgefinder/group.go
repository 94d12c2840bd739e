package edgefinder

import (
	"github.com/cypherlabdev/edge-finder-service/internal/models"
)

type offerGroup[K comparable] struct {
	key    K
	offers []*models.Offer
}

// groupBy partitions offers by key. Groups and their members keep first-seen order.
func groupBy[K comparable](offers []*models.Offer, key func(*models.Offer) K) []offerGroup[K] {
	index := make(map[K]int)
	var groups []offerGroup[K]

	for _, o := range offers {
		k := key(o)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, offerGroup[K]{key: k})
		}
		groups[i].offers = append(groups[i].offers, o)
	}

	return groups
}

func groupByMatch(offers []*models.Offer) []offerGroup[string] {
	return groupBy(offers, func(o *models.Offer) string {
		return o.MatchID
	})
}

func groupByLine(offers []*models.Offer) []offerGroup[float64] {
	return groupBy(offers, func(o *models.Offer) float64 {
		line, _ := o.Line()
		return line
	})
}
