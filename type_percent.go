package rebalance

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Percent is a percentage expressed in points: 25 means 25%.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" || res == "-0.00%" {
		return "-"
	}
	return res
}

// ratio returns p as an exact decimal fraction: 25 gives 0.25.
func (p Percent) ratio() decimal.Decimal {
	return decimal.NewFromFloat(float64(p)).Shift(-2)
}

// PercentOf returns part/whole in percent. A zero whole gives exactly 0.
func PercentOf(part, whole Money) Percent {
	if whole.IsZero() {
		return 0
	}
	return Percent(part.Ratio(whole).Shift(2).InexactFloat64())
}
