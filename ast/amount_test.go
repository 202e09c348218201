package ast

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"
)

func TestAmount_AddPreservesInsertionOrder(t *testing.T) {
	a := NewAmount()
	a.Add("STOCK", decimal.NewFromInt(100))
	a.Add("EUR", decimal.NewFromInt(5))
	a.Add("USD", decimal.NewFromInt(1))

	assert.Equal(t, []string{"STOCK", "EUR", "USD"}, a.Commodities())
}

func TestAmount_AddMergesSameCommodity(t *testing.T) {
	a := NewAmount()
	a.Add("EUR", decimal.RequireFromString("5.00"))
	a.Add("EUR", decimal.RequireFromString("2.50"))

	assert.Equal(t, 1, a.Len())
	assert.Equal(t, "7.5", a.Get("EUR").String())
}

func TestAmount_GetMissingCommodityIsZero(t *testing.T) {
	a := MustAmount("5.00", "EUR")

	assert.True(t, a.Get("USD").IsZero())
	assert.False(t, a.Has("USD"))
	assert.True(t, a.Has("EUR"))
}

func TestAmount_MergeIsCommodityWise(t *testing.T) {
	a := MustAmount("5.00", "EUR")
	b := NewAmount()
	b.Add("EUR", decimal.RequireFromString("-2.00"))
	b.Add("USD", decimal.RequireFromString("3.00"))

	a.Merge(b)

	assert.Equal(t, "3", a.Get("EUR").String())
	assert.Equal(t, "3", a.Get("USD").String())
	assert.Equal(t, []string{"EUR", "USD"}, a.Commodities())
}

func TestAmount_MergeNilIsNoop(t *testing.T) {
	a := MustAmount("5.00", "EUR")
	a.Merge(nil)

	assert.Equal(t, 1, a.Len())
}

func TestAmount_String(t *testing.T) {
	tests := []struct {
		name     string
		amount   *Amount
		expected string
	}{
		{"empty", NewAmount(), ""},
		{"single", MustAmount("5.00", "EUR"), "5 EUR"},
		{"negative", MustAmount("-5.00", "EUR"), "-5 EUR"},
		{"fractional", MustAmount("3.50", "EUR"), "3.5 EUR"},
		{"multi keeps insertion order", func() *Amount {
			a := MustAmount("100.00", "STOCK")
			a.Add("EUR", decimal.NewFromInt(1))
			return a
		}(), "100 STOCK, 1 EUR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.amount.String())
		})
	}
}

func TestAmount_IsZero(t *testing.T) {
	assert.True(t, NewAmount().IsZero())
	assert.True(t, MustAmount("0", "EUR").IsZero())
	assert.False(t, MustAmount("0.01", "EUR").IsZero())
}

func TestAmount_CopyIsIndependent(t *testing.T) {
	a := MustAmount("5.00", "EUR")
	b := a.Copy()
	b.Add("EUR", decimal.NewFromInt(1))

	assert.Equal(t, "5", a.Get("EUR").String())
	assert.Equal(t, "6", b.Get("EUR").String())
}

func TestAmount_ExactDecimalArithmetic(t *testing.T) {
	// 0.1 + 0.2 must be exactly 0.3, not a binary float approximation.
	a := MustAmount("0.1", "EUR")
	a.Add("EUR", decimal.RequireFromString("0.2"))

	assert.Equal(t, "0.3", a.Get("EUR").String())
}
