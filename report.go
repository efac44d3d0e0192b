package rebalance

// Report gathers every value derived from a Snapshot.
type Report struct {
	Currency                 string               `json:"currency"`
	TotalPortfolioValue      Money                `json:"totalPortfolioValue"`
	FixedIncomeAllocation    Allocation           `json:"fixedIncomeAllocation"`
	VariableIncomeAllocation Allocation           `json:"variableIncomeAllocation"`
	CategoryAllocations      []CategoryAllocation `json:"categoryAllocations"`
	CategoryTargetsSum       Percent              `json:"categoryTargetsSum"`
	Recommendations          []Recommendation     `json:"recommendations"`
	BestBuy                  *Recommendation      `json:"bestBuy"`
	Contribution             ContributionPlan     `json:"contribution"`
}

// Analyze computes the full report from snap. It never modifies snap.
func Analyze(snap Snapshot) *Report {
	cfg := snap.Config
	fx := cfg.FX()

	r := &Report{
		Currency:            cfg.Currency,
		TotalPortfolioValue: TotalPortfolioValue(cfg.FixedIncomeValue, snap.Holdings, fx),
		CategoryAllocations: CategoryAllocations(snap),
		CategoryTargetsSum:  cfg.CategoryTargets.Sum(),
		Recommendations:     Recommend(snap),
	}
	r.FixedIncomeAllocation, r.VariableIncomeAllocation = MacroAllocations(snap)
	if best, ok := BestBuy(r.Recommendations); ok {
		r.BestBuy = &best
	}
	r.Contribution = PlanContribution(snap, r.BestBuy)
	return r
}

// IsBalanced reports whether no holding is underfunded.
func (r *Report) IsBalanced() bool { return r.BestBuy == nil }
