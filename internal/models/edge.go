package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrEdgeNotFound is returned when an edge is not present in the cache
var ErrEdgeNotFound = errors.New("edge not found")

// EdgeCompetition is the competition denormalized onto an edge
type EdgeCompetition struct {
	UID  string `json:"uid"`
	Name string `json:"name"`
}

// Edge is a priced opportunity against the reference bookmaker
type Edge struct {
	ID                string          `json:"id"`     // <offer id>_<output>
	Offer             string          `json:"offer"`  // offer the edge was found on
	Edge              float64         `json:"edge"`   // percent, one decimal
	Kelly             float64         `json:"kelly"`  // full Kelly bankroll fraction
	Bookmaker         string          `json:"bookmaker"`
	OddsType          OddsType        `json:"odds_type"`
	MatchID           string          `json:"match_id"`
	HomeTeam          string          `json:"home_team"`
	AwayTeam          string          `json:"away_team"`
	Competition       EdgeCompetition `json:"competition"`
	StartTime         time.Time       `json:"start_time"`
	SportID           string          `json:"sport_id"`
	Country           string          `json:"country"`
	Output            Output          `json:"output"`
	Odds              float64         `json:"odds"`
	OddsTypeCondition *float64        `json:"odds_type_condition,omitempty"`
	Yardstick         float64         `json:"yardstick"`
	BaselineOffer     string          `json:"baseline_offer"`
}

// EdgeID builds the deterministic edge key for an offer and output
func EdgeID(offerID string, output Output) string {
	return offerID + "_" + string(output)
}

// Edges maps edge id to edge
type Edges map[string]Edge

// Merge copies every edge from other into e, overwriting equal keys
func (e Edges) Merge(other Edges) {
	for id, edge := range other {
		e[id] = edge
	}
}

// RejectReason classifies why an offer was dropped before comparison
type RejectReason string

const (
	RejectMissingID       RejectReason = "missing_id"
	RejectDuplicateID     RejectReason = "duplicate_id"
	RejectUnknownOddsType RejectReason = "unknown_odds_type"
	RejectUnknownMatch    RejectReason = "unknown_match"
	RejectInvalidPrice    RejectReason = "invalid_price"
	RejectInvalidLine     RejectReason = "invalid_line"
)

// RejectedOffer records an offer dropped by validation
type RejectedOffer struct {
	OfferID string       `json:"offer_id"`
	Reason  RejectReason `json:"reason"`
	Detail  string       `json:"detail"`
}

// EdgeReport is the result of one computation pass
type EdgeReport struct {
	BatchID  string          `json:"batch_id"`
	Edges    Edges           `json:"edges"`
	Rejected []RejectedOffer `json:"rejected,omitempty"`
}

// FinderParams holds parameters for edge detection
type FinderParams struct {
	ReferenceBookmaker    string          // Bookmaker whose vig-free price is the yardstick
	MinEdge               decimal.Decimal // Smallest accepted edge in percent (inclusive)
	MaxEdge               decimal.Decimal // Edges at or above this are treated as bad data
	KellyThreshold        decimal.Decimal // Minimum Kelly fraction when the gate is enforced
	EnforceKellyThreshold bool
	TwoWayInclusiveScan   bool // Evaluate the reference offer against its own yardstick
}
