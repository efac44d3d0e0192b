package rebalance

// ContributionPlan splits the monthly contribution and sizes the next buy.
type ContributionPlan struct {
	Amount         Money `json:"amount"`
	FixedIncome    Money `json:"fixedIncome"`
	VariableIncome Money `json:"variableIncome"`
	// Units is the number of whole units of the best buy the full amount can
	// pay for, at the unit price converted into the reporting currency.
	Units Quantity `json:"units"`
	// Cost is the price of Units in the reporting currency.
	Cost Money `json:"cost"`
}

// PlanContribution splits the monthly contribution between fixed and variable
// income targets, and sizes the purchase of best when it is not nil.
func PlanContribution(snap Snapshot, best *Recommendation) ContributionPlan {
	cfg := snap.Config
	amount := cfg.MonthlyContribution.In(cfg.Currency)
	plan := ContributionPlan{
		Amount:         amount,
		FixedIncome:    amount.MulPercent(cfg.FixedIncomeTarget),
		VariableIncome: amount.MulPercent(cfg.VariableIncomeTarget),
		Units:          Q(0),
		Cost:           M(0, cfg.Currency),
	}
	if best == nil {
		return plan
	}

	for _, h := range snap.Holdings {
		if h.ID != best.HoldingID {
			continue
		}
		unit := AssetValue(Holding{Category: h.Category, Quantity: Q(1), Price: h.Price}, cfg.FX())
		if !unit.IsPositive() || amount.IsNegative() {
			return plan
		}
		plan.Units = amount.DivPrice(unit).Floor()
		plan.Cost = unit.Mul(plan.Units.Decimal())
		return plan
	}
	return plan
}
