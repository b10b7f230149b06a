package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentIndex(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{100, 5},
		{90, 4},
		{81, 4},
		{80, 3},
		{61, 3},
		{60, 2},
		{41, 2},
		{40, 1},
		{21, 1},
		{20, 0},
		{0, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PercentIndex(tt.in), "PercentIndex(%d)", tt.in)
	}
}

func TestAmountIndex(t *testing.T) {
	assert.Equal(t, 0, AmountIndex(-1))
	assert.Equal(t, 3, AmountIndex(3))
	assert.Equal(t, 5, AmountIndex(5))
	assert.Equal(t, 5, AmountIndex(11))
}

func TestStatusBar_Set(t *testing.T) {
	frames := Animation{"0", "20", "40", "60", "80", "100"}

	health := NewStatusBar(20, 0, 200, 60, BarPercent, frames)
	health.Set(70)
	assert.Equal(t, 70, health.Value())
	assert.Equal(t, 3, health.Index())
	assert.Equal(t, "60", health.Frame())

	coins := NewStatusBar(20, 50, 200, 60, BarAmount, nil)
	coins.Set(8)
	assert.Equal(t, 5, coins.Index())
	assert.Equal(t, "", coins.Frame())
}
