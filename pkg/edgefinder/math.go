package edgefinder

import (
	"github.com/shopspring/decimal"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// fairPrice removes the bookmaker margin from price, given every price the
// bookmaker quotes in the same market. Rounded to three decimals.
func fairPrice(price float64, market ...float64) float64 {
	var overround float64
	for _, p := range market {
		overround += 1 / p
	}
	return decimal.NewFromFloat(price / (1 / overround)).Round(3).InexactFloat64()
}

// crossYardstick is the vig-free price of one side of a two-outcome market
func crossYardstick(price, o1, o2 float64) float64 {
	return price / (1 / (1/o1 + 1/o2))
}

// edgePercent returns how far quoted exceeds yardstick, in percent to one decimal
func edgePercent(quoted, yardstick float64) decimal.Decimal {
	return decimal.NewFromFloat(quoted).
		Div(decimal.NewFromFloat(yardstick)).
		Sub(one).
		Mul(hundred).
		Round(1)
}

// kellyFraction returns the full Kelly bankroll fraction for backing quoted
// when the fair price is yardstick: (quoted/yardstick - 1) / (quoted - 1).
func kellyFraction(quoted, yardstick float64) decimal.Decimal {
	if quoted <= 1 || yardstick <= 0 {
		return decimal.Zero
	}

	q := decimal.NewFromFloat(quoted)
	f := q.Div(decimal.NewFromFloat(yardstick)).Sub(one).Div(q.Sub(one))

	if f.IsNegative() {
		return decimal.Zero
	}
	if f.GreaterThan(one) {
		return one
	}
	return f.Round(4)
}

// withinWindow reports whether edge lies in [MinEdge, MaxEdge)
func (f *Finder) withinWindow(edge decimal.Decimal) bool {
	return edge.GreaterThanOrEqual(f.params.MinEdge) && edge.LessThan(f.params.MaxEdge)
}

// passesKellyGate reports whether kelly clears the configured threshold
func (f *Finder) passesKellyGate(kelly decimal.Decimal) bool {
	return !f.params.EnforceKellyThreshold || kelly.GreaterThanOrEqual(f.params.KellyThreshold)
}
