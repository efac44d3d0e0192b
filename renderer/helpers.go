package renderer

import (
	"fmt"

	"github.com/etnz/rebalance"
)

// neutralBand is the distance to target, in points, under which a holding is
// considered on target.
const neutralBand = 2

// weight describes a signed difference to target in words.
func weight(diff rebalance.Percent) string {
	switch {
	case diff > neutralBand:
		return fmt.Sprintf("%s over", diff.SignedString())
	case diff < -neutralBand:
		return fmt.Sprintf("%s under", diff.SignedString())
	default:
		return "on target"
	}
}

// targetPercent formats a target percentage without decimals when it is whole.
func targetPercent(p rebalance.Percent) string {
	if float64(p) == float64(int64(p)) {
		return fmt.Sprintf("%d%%", int64(p))
	}
	return p.String()
}

// status describes an allocation difference in words.
func status(diff rebalance.Percent, overweight bool) string {
	switch {
	case diff.Equal(0):
		return "on target"
	case overweight:
		return "overweight"
	default:
		return "underweight"
	}
}
