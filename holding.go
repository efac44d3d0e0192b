package rebalance

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Holding is a single tracked position.
type Holding struct {
	ID       string
	Ticker   string
	Name     string
	Category Category
	Quantity Quantity
	// Price is the unit price in the holding's native currency: the foreign
	// currency for foreign categories, the reporting currency otherwise.
	Price decimal.Decimal
	// Target is the holding's share of its category target. Targets within a
	// category are not required to sum to 100.
	Target Percent
}

// HoldingSpec is everything needed to create a Holding, except its id.
type HoldingSpec struct {
	Ticker   string
	Name     string
	Category Category
	Quantity Quantity
	Price    decimal.Decimal
	Target   Percent
}

// HoldingUpdate is a partial Holding: nil fields are left untouched.
type HoldingUpdate struct {
	Ticker   *string
	Name     *string
	Category *Category
	Quantity *Quantity
	Price    *decimal.Decimal
	Target   *Percent
}

// IsEmpty reports whether the update changes nothing.
func (u HoldingUpdate) IsEmpty() bool {
	return u.Ticker == nil && u.Name == nil && u.Category == nil &&
		u.Quantity == nil && u.Price == nil && u.Target == nil
}

// NormalizeTicker returns the canonical form of a ticker symbol.
func NormalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}

func newHolding(id string, spec HoldingSpec) Holding {
	return Holding{
		ID:       id,
		Ticker:   NormalizeTicker(spec.Ticker),
		Name:     spec.Name,
		Category: spec.Category,
		Quantity: spec.Quantity,
		Price:    spec.Price,
		Target:   spec.Target,
	}
}

// apply returns a copy of h with u merged in.
func (h Holding) apply(u HoldingUpdate) Holding {
	if u.Ticker != nil {
		h.Ticker = NormalizeTicker(*u.Ticker)
	}
	if u.Name != nil {
		h.Name = *u.Name
	}
	if u.Category != nil {
		h.Category = *u.Category
	}
	if u.Quantity != nil {
		h.Quantity = *u.Quantity
	}
	if u.Price != nil {
		h.Price = *u.Price
	}
	if u.Target != nil {
		h.Target = *u.Target
	}
	return h
}
