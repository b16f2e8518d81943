package validation_test

import (
	"math"
	"testing"

	"grubdash/internal/validation"

	"github.com/stretchr/testify/assert"
)

func TestField(t *testing.T) {
	assert.NoError(t, validation.Field("spaghetti", "required", "Dish must include a name"))
	assert.EqualError(t, validation.Field("", "required", "Dish must include a name"), "Dish must include a name")
	assert.NoError(t, validation.Field("preparing", "oneof=pending preparing", "bad status"))
	assert.EqualError(t, validation.Field("invalid", "oneof=pending preparing", "bad status"), "bad status")
}

func TestPositiveInteger(t *testing.T) {
	tests := []struct {
		in       any
		expected int
		ok       bool
	}{
		{in: float64(12), expected: 12, ok: true},
		{in: 3, expected: 3, ok: true},
		{in: float64(3e9), expected: 3000000000, ok: true},
		{in: float64(1 << 53), expected: 1 << 53, ok: true},
		{in: float64(1 << 54)},
		{in: math.Inf(1)},
		{in: math.NaN()},
		{in: float64(0)},
		{in: float64(-5)},
		{in: 2.5},
		{in: "17"},
		{in: nil},
		{in: true},
	}

	for _, tc := range tests {
		n, ok := validation.PositiveInteger(tc.in)
		assert.Equal(t, tc.ok, ok, "input %v", tc.in)
		assert.Equal(t, tc.expected, n, "input %v", tc.in)
	}
}
