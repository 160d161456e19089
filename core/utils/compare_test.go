package utils_test

import (
	"testing"
	"time"

	"github.com/MoraStok/apareo-con-actualizaciones/core/utils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	jan := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		a, b any
		want int
	}{
		{"IntLess", int64(1), int64(2), -1},
		{"IntEqual", int64(7), int64(7), 0},
		{"MixedIntKinds", 3, int64(2), 1},
		{"StringLess", "Fox", "Lee", -1},
		{"StringEqual", "Kim", "Kim", 0},
		{"TimeGreater", feb, jan, 1},
		{"DecimalVsInt", decimal.RequireFromString("10.5"), 10, 1},
		{"NegativeDecimal", decimal.NewFromInt(-20), decimal.Zero, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := utils.Compare(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompare_Incomparable(t *testing.T) {
	_, err := utils.Compare("1", 1)
	assert.ErrorIs(t, err, utils.ErrIncomparable)

	_, err = utils.Compare(time.Now(), "2024-01-01")
	assert.ErrorIs(t, err, utils.ErrIncomparable)

	_, err = utils.Compare(struct{}{}, struct{}{})
	assert.ErrorIs(t, err, utils.ErrIncomparable)
}

func TestToDecimal(t *testing.T) {
	d, ok := utils.ToDecimal(uint16(12))
	assert.True(t, ok)
	assert.True(t, d.Equal(decimal.NewFromInt(12)))

	_, ok = utils.ToDecimal("12")
	assert.False(t, ok)
}
