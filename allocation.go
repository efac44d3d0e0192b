package rebalance

// Allocation compares one side of the fixed/variable split to its target.
type Allocation struct {
	Value             Money   `json:"value"`
	CurrentPercentage Percent `json:"currentPercentage"`
	TargetPercentage  Percent `json:"targetPercentage"`
	Difference        Percent `json:"difference"`
}

// CategoryAllocation compares a category's share of variable income to its target.
type CategoryAllocation struct {
	Category          Category `json:"category"`
	Label             string   `json:"label"`
	TargetPercentage  Percent  `json:"targetPercentage"`
	CurrentValue      Money    `json:"currentValue"`
	CurrentPercentage Percent  `json:"currentPercentage"`
	Difference        Percent  `json:"difference"`
	// HoldingTargetsSum is the sum of in-category targets of the category's
	// holdings, for information only.
	HoldingTargetsSum Percent `json:"holdingTargetsSum"`
}

// IsOverweight reports whether the current share is above target.
func (a Allocation) IsOverweight() bool { return a.Difference > 0 }

// IsOverweight reports whether the category's share is above target.
func (a CategoryAllocation) IsOverweight() bool { return a.Difference > 0 }

// MacroAllocations returns the fixed and variable income allocations, both as a
// share of the total portfolio value.
func MacroAllocations(snap Snapshot) (fixed, variable Allocation) {
	fx := snap.Config.FX()
	fixedValue := snap.Config.FixedIncomeValue.In(fx.To)
	variableValue := TotalVariableValue(snap.Holdings, fx)
	total := fixedValue.Add(variableValue)

	fixed = newAllocation(fixedValue, total, snap.Config.FixedIncomeTarget)
	variable = newAllocation(variableValue, total, snap.Config.VariableIncomeTarget)
	return fixed, variable
}

func newAllocation(value, total Money, target Percent) Allocation {
	current := PercentOf(value, total)
	return Allocation{
		Value:             value,
		CurrentPercentage: current,
		TargetPercentage:  target,
		Difference:        current - target,
	}
}

// CategoryAllocations returns one entry per category, in display order, even for
// categories without holdings.
func CategoryAllocations(snap Snapshot) []CategoryAllocation {
	fx := snap.Config.FX()
	totalVariable := TotalVariableValue(snap.Holdings, fx)

	res := make([]CategoryAllocation, 0, numCategories)
	for _, c := range Categories() {
		value := CategoryValue(snap.Holdings, c, fx)
		current := PercentOf(value, totalVariable)
		target := snap.Config.CategoryTargets.Get(c)

		var holdingTargets Percent
		for _, h := range snap.Holdings {
			if h.Category == c {
				holdingTargets += h.Target
			}
		}

		res = append(res, CategoryAllocation{
			Category:          c,
			Label:             c.Label(),
			TargetPercentage:  target,
			CurrentValue:      value,
			CurrentPercentage: current,
			Difference:        current - target,
			HoldingTargetsSum: holdingTargets,
		})
	}
	return res
}
