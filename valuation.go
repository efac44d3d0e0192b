package rebalance

// AssetValue returns the market value of h in the reporting currency fx.To.
// Foreign holdings are converted with fx; domestic ones are not.
func AssetValue(h Holding, fx ExchangeRate) Money {
	value := h.Quantity.Decimal().Mul(h.Price)
	if h.Category.IsForeign() {
		return fx.Convert(value)
	}
	return M(value, fx.To)
}

// CategoryValue returns the total value of the holdings in category c.
func CategoryValue(holdings []Holding, c Category, fx ExchangeRate) Money {
	total := M(0, fx.To)
	for _, h := range holdings {
		if h.Category == c {
			total = total.Add(AssetValue(h, fx))
		}
	}
	return total
}

// TotalVariableValue returns the total value of all holdings.
func TotalVariableValue(holdings []Holding, fx ExchangeRate) Money {
	total := M(0, fx.To)
	for _, h := range holdings {
		total = total.Add(AssetValue(h, fx))
	}
	return total
}

// TotalPortfolioValue returns the fixed income value plus all holdings.
func TotalPortfolioValue(fixedIncome Money, holdings []Holding, fx ExchangeRate) Money {
	return fixedIncome.In(fx.To).Add(TotalVariableValue(holdings, fx))
}
