package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmount_Arithmetic(t *testing.T) {
	a := NewAmount(349, DefaultCurrency)

	assert.Equal(t, int64(34900), a.Units)
	assert.Equal(t, int64(349), a.Major())
	assert.Equal(t, NewAmount(698, DefaultCurrency), a.Mul(2))
	assert.Equal(t, NewAmount(478, DefaultCurrency), a.Add(NewAmount(129, DefaultCurrency)))
}

func TestAmount_ZeroValueAdoptsCurrency(t *testing.T) {
	var zero Amount
	sum := zero.Add(NewAmount(45, DefaultCurrency))

	assert.Equal(t, DefaultCurrency, sum.Currency)
	assert.Equal(t, int64(45), sum.Major())
}

func TestRoundToAmount(t *testing.T) {
	tests := []struct {
		name  string
		major float64
		want  int64
	}{
		{name: "exact", major: 349, want: 349},
		{name: "rounds up from two thirds", major: 99.666, want: 100},
		{name: "rounds down below half", major: 99.4, want: 99},
		{name: "half rounds away from zero", major: 99.5, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoundToAmount(tt.major, DefaultCurrency)
			assert.Equal(t, tt.want, got.Major())
		})
	}
}

func TestAmount_String(t *testing.T) {
	assert.Equal(t, "349 SAR", NewAmount(349, DefaultCurrency).String())
	assert.Equal(t, "348.50 SAR", NewAmountFromMinor(34850, DefaultCurrency).String())
}

func TestAmount_IsNegative(t *testing.T) {
	assert.True(t, NewAmount(-1, DefaultCurrency).IsNegative())
	assert.False(t, NewAmount(0, DefaultCurrency).IsNegative())
}
