package rebalance

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Category is one of the four variable-income asset classes.
type Category int

const (
	DomesticEquity Category = iota
	DomesticFund
	ForeignEquity
	ForeignFund
)

// numCategories is the size of the closed category set.
const numCategories = 4

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{DomesticEquity, DomesticFund, ForeignEquity, ForeignFund}
}

func (c Category) String() string {
	switch c {
	case DomesticEquity:
		return "domestic-equity"
	case DomesticFund:
		return "domestic-fund"
	case ForeignEquity:
		return "foreign-equity"
	case ForeignFund:
		return "foreign-fund"
	default:
		return "unknown"
	}
}

// Label is the human readable name of the category.
func (c Category) Label() string {
	switch c {
	case DomesticEquity:
		return "Domestic Equities"
	case DomesticFund:
		return "Domestic Funds"
	case ForeignEquity:
		return "Foreign Equities"
	case ForeignFund:
		return "Foreign Funds"
	default:
		return "Unknown"
	}
}

// IsForeign reports whether holdings of this category are priced in the foreign currency.
func (c Category) IsForeign() bool { return c == ForeignEquity || c == ForeignFund }

func (c Category) valid() bool { return c >= DomesticEquity && c <= ForeignFund }

// ParseCategory parses a category name. Legacy names (acoes, fiis, stocks, reits)
// are accepted too.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "domestic-equity", "acoes":
		return DomesticEquity, nil
	case "domestic-fund", "fiis":
		return DomesticFund, nil
	case "foreign-equity", "stocks":
		return ForeignEquity, nil
	case "foreign-fund", "reits":
		return ForeignFund, nil
	default:
		return 0, fmt.Errorf("unknown category: %q", s)
	}
}

func (c Category) MarshalText() ([]byte, error) {
	if !c.valid() {
		return nil, fmt.Errorf("invalid category %d", int(c))
	}
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(b []byte) error {
	v, err := ParseCategory(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// CategoryTargets holds, for each category, its target share of variable income.
type CategoryTargets [numCategories]Percent

func (t CategoryTargets) Get(c Category) Percent { return t[c] }

func (t *CategoryTargets) Set(c Category, p Percent) { t[c] = p }

// Sum returns the sum of all category targets. It is informational only: nothing
// requires it to be 100.
func (t CategoryTargets) Sum() Percent {
	var sum Percent
	for _, p := range t {
		sum += p
	}
	return sum
}

func (t CategoryTargets) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	for _, c := range Categories() {
		w.Append(c.String(), t[c])
	}
	return w.MarshalJSON()
}

func (t *CategoryTargets) UnmarshalJSON(data []byte) error {
	var m map[string]Percent
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	return t.fromMap(m)
}

// MarshalYAML and UnmarshalYAML keep the same keyed layout as JSON.
func (t CategoryTargets) MarshalYAML() (any, error) {
	m := make(map[string]Percent, numCategories)
	for _, c := range Categories() {
		m[c.String()] = t[c]
	}
	return m, nil
}

func (t *CategoryTargets) UnmarshalYAML(unmarshal func(any) error) error {
	var m map[string]Percent
	if err := unmarshal(&m); err != nil {
		return err
	}
	return t.fromMap(m)
}

// fromMap sets the targets named in m. Categories missing from m keep their
// current target.
func (t *CategoryTargets) fromMap(m map[string]Percent) error {
	res := *t
	for k, v := range m {
		c, err := ParseCategory(k)
		if err != nil {
			return fmt.Errorf("category targets: %w", err)
		}
		res[c] = v
	}
	*t = res
	return nil
}
