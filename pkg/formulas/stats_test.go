package formulas

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		data     []float64
		expected float64
	}{
		{name: "empty", data: nil, expected: 0},
		{name: "single value", data: []float64{42}, expected: 42},
		{name: "several values", data: []float64{1, 2, 3, 4}, expected: 2.5},
		{name: "negative values", data: []float64{-2, 2, -4, 4}, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Mean(tt.data), 1e-12)
		})
	}
}

func TestTrailingAverages(t *testing.T) {
	t.Run("not enough data", func(t *testing.T) {
		_, _, ok := TrailingAverages([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, 5)
		assert.False(t, ok)
	})

	t.Run("exactly two windows", func(t *testing.T) {
		closes := []float64{10, 10, 10, 10, 10, 20, 20, 20, 20, 20}
		recent, prior, ok := TrailingAverages(closes, 5)
		assert.True(t, ok)
		assert.InDelta(t, 20.0, recent, 1e-9)
		assert.InDelta(t, 10.0, prior, 1e-9)
	})

	t.Run("ignores a large early price", func(t *testing.T) {
		closes := []float64{1e17, 101, 101, 101, 101, 102, 100, 101, 101, 101, 101}
		recent, prior, ok := TrailingAverages(closes, 5)
		assert.True(t, ok)
		assert.InDelta(t, 100.8, recent, 1e-9)
		assert.InDelta(t, 101.2, prior, 1e-9)
	})

	t.Run("windows are plain means over long histories", func(t *testing.T) {
		closes := make([]float64, 300)
		for i := range closes {
			closes[i] = 100 + math.Sin(float64(i)/7)*12.34567
		}
		recent, prior, ok := TrailingAverages(closes, 5)
		assert.True(t, ok)
		assert.Equal(t, Mean(closes[295:]), recent)
		assert.Equal(t, Mean(closes[290:295]), prior)
	})

	t.Run("uses only the trailing windows", func(t *testing.T) {
		closes := []float64{999, 100, 100, 100, 100, 110, 110, 110, 110, 110, 110}
		recent, prior, ok := TrailingAverages(closes, 5)
		assert.True(t, ok)
		assert.InDelta(t, 110.0, recent, 1e-9)
		assert.InDelta(t, 102.0, prior, 1e-9)
	})
}

func TestRound2(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{name: "already rounded", input: 10.1, expected: 10.1},
		{name: "rounds down", input: 134.251875, expected: 134.25},
		{name: "rounds up", input: 128.0061, expected: 128.01},
		{name: "negative", input: -3.14159, expected: -3.14},
		{name: "float noise", input: 104.60000000000001, expected: 104.6},
		{name: "binary value below the tie", input: 2.675, expected: 2.67},
		{name: "binary value below the tie at 1.005", input: 1.005, expected: 1.0},
		{name: "exact tie rounds to even down", input: 0.125, expected: 0.12},
		{name: "exact tie rounds to even up", input: 0.375, expected: 0.38},
		{name: "negative exact tie", input: -0.125, expected: -0.12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Round2(tt.input))
		})
	}
}

func TestRoundTo_NonFinite(t *testing.T) {
	assert.True(t, math.IsNaN(RoundTo(math.NaN(), 2)))
	assert.True(t, math.IsInf(RoundTo(math.Inf(1), 2), 1))
	assert.False(t, IsFinite(math.Inf(-1)))
	assert.True(t, IsFinite(1.5))
}

func TestExactDecimal(t *testing.T) {
	assert.Equal(t, "0.125", ExactDecimal(0.125).String())
	assert.Equal(t, "2.67499999999999982236431605997495353221893310546875", ExactDecimal(2.675).String())
	assert.Equal(t, "-3", ExactDecimal(-3).String())
}
