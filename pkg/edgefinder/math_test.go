package edgefinder

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestFairPrice tests margin removal from reference prices
func TestFairPrice(t *testing.T) {
	tests := []struct {
		name   string
		price  float64
		market []float64
		want   float64
	}{
		{
			name:   "three outcome market",
			price:  2.00,
			market: []float64{2.00, 3.40, 4.20},
			want:   2.064,
		},
		{
			name:   "two outcome market with margin",
			price:  1.90,
			market: []float64{1.90, 1.90},
			want:   2.00,
		},
		{
			name:   "two outcome market without margin",
			price:  2.00,
			market: []float64{2.00, 2.00},
			want:   2.00,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fairPrice(tt.price, tt.market...))
		})
	}
}

// TestCrossYardstick tests the two-outcome yardstick used by the crossover finder
func TestCrossYardstick(t *testing.T) {
	assert.Equal(t, 2.00, crossYardstick(2.00, 2.00, 2.00))
	assert.InDelta(t, 2.00, crossYardstick(1.90, 1.90, 1.90), 1e-9)
	assert.InDelta(t, 1.6*(1/1.6+1/2.5), crossYardstick(1.6, 1.6, 2.5), 1e-12)
}

// TestEdgePercent tests edge rounding to one decimal
func TestEdgePercent(t *testing.T) {
	tests := []struct {
		quoted    float64
		yardstick float64
		want      string
	}{
		{quoted: 2.15, yardstick: 2.064, want: "4.2"},
		{quoted: 2.30, yardstick: 2.064, want: "11.4"},
		{quoted: 2.01, yardstick: 2.00, want: "0.5"},
		{quoted: 2.80, yardstick: 2.00, want: "40"},
		{quoted: 1.95, yardstick: 2.00, want: "-2.5"},
	}

	for _, tt := range tests {
		got := edgePercent(tt.quoted, tt.yardstick)
		assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
			"edgePercent(%v, %v) = %s, want %s", tt.quoted, tt.yardstick, got, tt.want)
	}
}

// TestKellyFraction tests full Kelly sizing
func TestKellyFraction(t *testing.T) {
	tests := []struct {
		name      string
		quoted    float64
		yardstick float64
		want      float64
	}{
		{name: "positive edge", quoted: 2.30, yardstick: 2.064, want: 0.088},
		{name: "small edge", quoted: 2.15, yardstick: 2.064, want: 0.0362},
		{name: "negative edge", quoted: 2.00, yardstick: 2.064, want: 0},
		{name: "price of one", quoted: 1.0, yardstick: 2.0, want: 0},
		{name: "zero yardstick", quoted: 2.0, yardstick: 0, want: 0},
		{name: "capped at whole bankroll", quoted: 2.0, yardstick: 0.5, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, kellyFraction(tt.quoted, tt.yardstick).InexactFloat64(), 1e-9)
		})
	}
}

// TestWithinWindow tests the acceptance window boundaries
func TestWithinWindow(t *testing.T) {
	f := NewFinder(testParams(), testLogger())

	tests := []struct {
		edge string
		want bool
	}{
		{edge: "0.5", want: true},
		{edge: "0.4999", want: false},
		{edge: "0.4", want: false},
		{edge: "39.9", want: true},
		{edge: "40", want: false},
		{edge: "40.1", want: false},
		{edge: "-3", want: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, f.withinWindow(decimal.RequireFromString(tt.edge)), "edge %s", tt.edge)
	}
}

// TestPassesKellyGate tests the optional Kelly threshold
func TestPassesKellyGate(t *testing.T) {
	params := testParams()
	f := NewFinder(params, testLogger())
	assert.True(t, f.passesKellyGate(decimal.Zero), "gate is off by default")

	params.EnforceKellyThreshold = true
	f = NewFinder(params, testLogger())
	assert.False(t, f.passesKellyGate(decimal.RequireFromString("0.0099")))
	assert.True(t, f.passesKellyGate(decimal.RequireFromString("0.01")))
}
