package rebalance

import "github.com/shopspring/decimal"

// BRL is a helper for test to create reais from const
func BRL(v float64) Money { return M(v, "BRL") }

// dec is a helper for test to create exact decimals from strings.
func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// testConfig returns a configuration with an explicit exchange rate and targets.
func testConfig(fixedIncome float64) Config {
	cfg := DefaultConfig()
	cfg.FixedIncomeValue = BRL(fixedIncome)
	return cfg
}

// holding is a compact constructor for test holdings.
func holding(id, ticker string, c Category, quantity float64, price string, target Percent) Holding {
	return Holding{ID: id, Ticker: ticker, Name: ticker, Category: c, Quantity: Q(quantity), Price: dec(price), Target: target}
}
