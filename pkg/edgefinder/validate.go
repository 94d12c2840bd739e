package edgefinder

import (
	"fmt"
	"math"
	"strings"

	"github.com/cypherlabdev/edge-finder-service/internal/models"
)

// validate drops offers the comparison math cannot handle. Accepted offers
// keep input order; the input slice is not modified.
func (f *Finder) validate(offers []models.Offer, matches map[string]*models.Match) ([]*models.Offer, []models.RejectedOffer) {
	valid := make([]*models.Offer, 0, len(offers))
	seen := make(map[string]struct{}, len(offers))
	var rejected []models.RejectedOffer

	for i := range offers {
		offer := &offers[i]

		if reason, detail := checkOffer(offer, matches, seen); reason != "" {
			rejected = append(rejected, models.RejectedOffer{
				OfferID: offer.ID,
				Reason:  reason,
				Detail:  detail,
			})
			continue
		}

		seen[offer.ID] = struct{}{}
		valid = append(valid, offer)
	}

	return valid, rejected
}

func checkOffer(offer *models.Offer, matches map[string]*models.Match, seen map[string]struct{}) (models.RejectReason, string) {
	if strings.TrimSpace(offer.ID) == "" {
		return models.RejectMissingID, "offer id is empty"
	}
	if _, dup := seen[offer.ID]; dup {
		return models.RejectDuplicateID, fmt.Sprintf("offer id %q already seen", offer.ID)
	}

	shape := offer.OddsType.Shape()
	if shape == models.ShapeUnknown {
		return models.RejectUnknownOddsType, fmt.Sprintf("odds type %q", offer.OddsType)
	}
	if _, ok := matches[offer.MatchID]; !ok {
		return models.RejectUnknownMatch, fmt.Sprintf("match %q not in snapshot", offer.MatchID)
	}

	for _, output := range shape.Outputs() {
		if p := offer.Odds.Price(output); !validPrice(p) {
			return models.RejectInvalidPrice, fmt.Sprintf("%s=%v", output, p)
		}
	}

	if line, ok := offer.Line(); ok && (math.IsNaN(line) || math.IsInf(line, 0)) {
		return models.RejectInvalidLine, fmt.Sprintf("line=%v", line)
	}

	return "", ""
}

// validPrice reports whether p is a usable decimal price
func validPrice(p float64) bool {
	return p > 1 && !math.IsInf(p, 1)
}
