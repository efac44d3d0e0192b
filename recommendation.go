package rebalance

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

// Priority classifies how far a holding is from its target value.
type Priority int

const (
	Low Priority = iota
	Medium
	High
)

func (p Priority) String() string {
	switch p {
	case Low:
		return "low"
	case Medium:
		return "medium"
	case High:
		return "high"
	default:
		return "unknown"
	}
}

// ParsePriority parses the String form of a Priority.
func ParsePriority(s string) (Priority, error) {
	switch s {
	case "low":
		return Low, nil
	case "medium":
		return Medium, nil
	case "high":
		return High, nil
	default:
		return 0, fmt.Errorf("unknown priority: %q", s)
	}
}

func (p Priority) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *Priority) UnmarshalText(b []byte) error {
	v, err := ParsePriority(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Priority thresholds on |gap| / target.
var (
	highThreshold   = decimal.RequireFromString("0.20")
	mediumThreshold = decimal.RequireFromString("0.10")
)

// Recommendation compares a holding's value to its nested target value.
type Recommendation struct {
	HoldingID    string   `json:"id"`
	Ticker       string   `json:"ticker"`
	Category     Category `json:"category"`
	CurrentValue Money    `json:"currentValue"`
	TargetValue  Money    `json:"targetValue"`
	// Difference is the funding gap: target minus current value. Positive
	// means the holding is underfunded.
	Difference Money    `json:"difference"`
	Priority   Priority `json:"priority"`
}

// Recommend computes a Recommendation for every holding, sorted by funding gap,
// largest first. Holdings with equal gaps keep their relative order.
//
// The target value of a holding is the total portfolio value multiplied by the
// variable income target, its category target, and its in-category target.
func Recommend(snap Snapshot) []Recommendation {
	cfg := snap.Config
	fx := cfg.FX()
	total := TotalPortfolioValue(cfg.FixedIncomeValue, snap.Holdings, fx)
	variableTarget := total.MulPercent(cfg.VariableIncomeTarget)

	recs := make([]Recommendation, 0, len(snap.Holdings))
	for _, h := range snap.Holdings {
		current := AssetValue(h, fx)
		target := variableTarget.
			MulPercent(cfg.CategoryTargets.Get(h.Category)).
			MulPercent(h.Target)
		gap := target.Sub(current)

		recs = append(recs, Recommendation{
			HoldingID:    h.ID,
			Ticker:       h.Ticker,
			Category:     h.Category,
			CurrentValue: current,
			TargetValue:  target,
			Difference:   gap,
			Priority:     classify(gap, target),
		})
	}

	slices.SortStableFunc(recs, func(a, b Recommendation) int {
		return b.Difference.Cmp(a.Difference)
	})
	return recs
}

// classify returns the priority for a gap relative to its target. A zero
// target is treated as a target of 1.
func classify(gap, target Money) Priority {
	denominator := target.Decimal()
	if denominator.IsZero() {
		denominator = decimal.NewFromInt(1)
	}
	ratio := gap.Decimal().Abs().Div(denominator)
	switch {
	case ratio.GreaterThan(highThreshold):
		return High
	case ratio.GreaterThan(mediumThreshold):
		return Medium
	default:
		return Low
	}
}

// BestBuy returns the first recommendation with a positive gap. recs must be
// sorted as returned by Recommend.
func BestBuy(recs []Recommendation) (Recommendation, bool) {
	for _, r := range recs {
		if r.Difference.IsPositive() {
			return r, true
		}
	}
	return Recommendation{}, false
}
