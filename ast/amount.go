package ast

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Amount represents a quantity of one or more commodities. It stores entries
// in insertion order so that repeated renderings of the same journal are
// deterministic, and so that summed amounts list commodities in the order
// they were first seen.
//
// All arithmetic is exact decimal arithmetic; quantities in different
// commodities are never merged into one number.
type Amount struct {
	entries []CommodityAmount
}

// CommodityAmount represents a quantity in a specific commodity.
type CommodityAmount struct {
	Commodity string
	Quantity  decimal.Decimal
}

// NewAmount creates an empty amount.
func NewAmount() *Amount {
	return &Amount{}
}

// AmountOf creates an amount holding a single commodity quantity.
func AmountOf(commodity string, quantity decimal.Decimal) *Amount {
	return &Amount{entries: []CommodityAmount{{Commodity: commodity, Quantity: quantity}}}
}

// MustAmount creates an amount from a decimal string and commodity code.
// It panics on an invalid decimal and is intended for tests.
func MustAmount(value, commodity string) *Amount {
	return AmountOf(commodity, decimal.RequireFromString(value))
}

// Get returns the quantity for a commodity, or zero if not present.
func (a *Amount) Get(commodity string) decimal.Decimal {
	for _, e := range a.entries {
		if e.Commodity == commodity {
			return e.Quantity
		}
	}
	return decimal.Zero
}

// Has reports whether the amount carries an entry for the commodity.
func (a *Amount) Has(commodity string) bool {
	for _, e := range a.entries {
		if e.Commodity == commodity {
			return true
		}
	}
	return false
}

// Add adds a quantity to the commodity's entry, appending a new entry when
// the commodity has not been seen before. Insertion order is preserved.
func (a *Amount) Add(commodity string, quantity decimal.Decimal) {
	for i, e := range a.entries {
		if e.Commodity == commodity {
			a.entries[i].Quantity = e.Quantity.Add(quantity)
			return
		}
	}
	a.entries = append(a.entries, CommodityAmount{Commodity: commodity, Quantity: quantity})
}

// Merge combines another amount into this one by commodity-wise addition.
// Commodities absent from one operand contribute only from the other.
func (a *Amount) Merge(other *Amount) {
	if other == nil {
		return
	}
	for _, e := range other.entries {
		a.Add(e.Commodity, e.Quantity)
	}
}

// Commodities returns all commodity codes in insertion order.
func (a *Amount) Commodities() []string {
	commodities := make([]string, len(a.entries))
	for i, e := range a.entries {
		commodities[i] = e.Commodity
	}
	return commodities
}

// Entries returns the underlying entries in insertion order.
func (a *Amount) Entries() []CommodityAmount {
	return a.entries
}

// Len returns the number of distinct commodities.
func (a *Amount) Len() int {
	return len(a.entries)
}

// IsZero returns true if all quantities are zero or the amount is empty.
func (a *Amount) IsZero() bool {
	for _, e := range a.entries {
		if !e.Quantity.IsZero() {
			return false
		}
	}
	return true
}

// Copy creates a deep copy of this amount.
func (a *Amount) Copy() *Amount {
	if a == nil {
		return NewAmount()
	}
	entries := make([]CommodityAmount, len(a.entries))
	copy(entries, a.entries)
	return &Amount{entries: entries}
}

// ToMap converts the amount to a map keyed by commodity code. The map loses
// insertion order and is meant for JSON serialization.
func (a *Amount) ToMap() map[string]decimal.Decimal {
	m := make(map[string]decimal.Decimal, len(a.entries))
	for _, e := range a.entries {
		m[e.Commodity] = e.Quantity
	}
	return m
}

// String renders the amount as "<quantity> <commodity>" pairs joined by
// ", " in commodity insertion order.
func (a *Amount) String() string {
	if a == nil || len(a.entries) == 0 {
		return ""
	}

	var parts []string
	for _, e := range a.entries {
		parts = append(parts, e.Quantity.String()+" "+e.Commodity)
	}
	return strings.Join(parts, ", ")
}
