package models

import (
	"math"
	"time"
)

// OddsType identifies the market an offer quotes
type OddsType string

const (
	OddsTypeThreeWay         OddsType = "threeway"
	OddsTypeMoneyline        OddsType = "moneyline"
	OddsTypeDrawNoBet        OddsType = "dnb"
	OddsTypeAsianHandicap    OddsType = "asian_handicap"
	OddsTypeOverUnder        OddsType = "over_under"
	OddsTypeEuropeanHandicap OddsType = "european_handicap"
)

// AllOddsTypes lists every supported odds type in classification order
var AllOddsTypes = []OddsType{
	OddsTypeThreeWay,
	OddsTypeMoneyline,
	OddsTypeDrawNoBet,
	OddsTypeAsianHandicap,
	OddsTypeOverUnder,
	OddsTypeEuropeanHandicap,
}

// Shape describes how an offer's odds fields are laid out
type Shape int

const (
	ShapeUnknown      Shape = iota
	ShapeThreeWay           // o1, o2, o3 prices
	ShapeTwoWay             // o1, o2 prices
	ShapeTwoWayLine         // o1, o2 prices, line in o3
	ShapeThreeWayLine       // o1, o2, o3 prices, line in o4
)

// Shape returns the market shape for the odds type
func (t OddsType) Shape() Shape {
	switch t {
	case OddsTypeThreeWay:
		return ShapeThreeWay
	case OddsTypeMoneyline, OddsTypeDrawNoBet:
		return ShapeTwoWay
	case OddsTypeAsianHandicap, OddsTypeOverUnder:
		return ShapeTwoWayLine
	case OddsTypeEuropeanHandicap:
		return ShapeThreeWayLine
	default:
		return ShapeUnknown
	}
}

// Outputs returns the outcome labels priced by the shape
func (s Shape) Outputs() []Output {
	switch s {
	case ShapeThreeWay, ShapeThreeWayLine:
		return []Output{OutputO1, OutputO2, OutputO3}
	case ShapeTwoWay, ShapeTwoWayLine:
		return []Output{OutputO1, OutputO2}
	default:
		return nil
	}
}

// HasLine reports whether the shape is split into sub-markets by line
func (s Shape) HasLine() bool {
	return s == ShapeTwoWayLine || s == ShapeThreeWayLine
}

// Output labels a single outcome of a market
type Output string

const (
	OutputO1 Output = "o1"
	OutputO2 Output = "o2"
	OutputO3 Output = "o3"
)

// Odds holds the raw numeric fields of an offer; their meaning depends on Shape
type Odds struct {
	O1 float64 `json:"o1"`
	O2 float64 `json:"o2"`
	O3 float64 `json:"o3,omitempty"`
	O4 float64 `json:"o4,omitempty"`
}

// Price returns the decimal price quoted for the output
func (o Odds) Price(output Output) float64 {
	switch output {
	case OutputO1:
		return o.O1
	case OutputO2:
		return o.O2
	case OutputO3:
		return o.O3
	default:
		return math.NaN()
	}
}

// Offer is one bookmaker's quote for one market on one match
type Offer struct {
	ID        string   `json:"id"`
	Bookmaker string   `json:"bookmaker"`
	OddsType  OddsType `json:"odds_type"`
	Odds      Odds     `json:"odds"`
	MatchID   string   `json:"match_id"`
}

// Line returns the handicap or total that identifies the offer's sub-market.
// The second value is false for shapes without a line.
func (o *Offer) Line() (float64, bool) {
	switch o.OddsType.Shape() {
	case ShapeTwoWayLine:
		return o.Odds.O3, true
	case ShapeThreeWayLine:
		return o.Odds.O4, true
	default:
		return 0, false
	}
}

// Competition identifies the league or tournament of a match
type Competition struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Match is the fixture offers are quoted on
type Match struct {
	ID          string      `json:"id"`
	HomeTeam    string      `json:"home_team"`
	AwayTeam    string      `json:"away_team"`
	Competition Competition `json:"competition"`
	StartTime   time.Time   `json:"start_time"`
	SportID     string      `json:"sport_id"`
	Country     string      `json:"country"`
}

// OfferSnapshot is the full input of one computation pass
type OfferSnapshot struct {
	BatchID   string    `json:"batch_id"`
	Timestamp time.Time `json:"timestamp"`
	Matches   []Match   `json:"matches"`
	Offers    []Offer   `json:"offers"`
}
