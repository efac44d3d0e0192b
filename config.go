package rebalance

import "github.com/shopspring/decimal"

// Config holds the user's allocation settings.
type Config struct {
	// Currency is the reporting currency. Domestic holdings are priced in it.
	Currency string
	// ForeignCurrency is the native currency of foreign holdings.
	ForeignCurrency string
	// ExchangeRate converts one unit of ForeignCurrency into Currency.
	ExchangeRate decimal.Decimal

	MonthlyContribution Money
	FixedIncomeValue    Money

	FixedIncomeTarget    Percent
	VariableIncomeTarget Percent
	CategoryTargets      CategoryTargets
}

// ConfigUpdate is a partial Config: nil fields are left untouched.
type ConfigUpdate struct {
	Currency             *string
	ForeignCurrency      *string
	ExchangeRate         *decimal.Decimal
	MonthlyContribution  *decimal.Decimal
	FixedIncomeValue     *decimal.Decimal
	FixedIncomeTarget    *Percent
	VariableIncomeTarget *Percent
	CategoryTargets      *CategoryTargets
}

// DefaultConfig returns the settings a new portfolio starts with.
func DefaultConfig() Config {
	return Config{
		Currency:             "BRL",
		ForeignCurrency:      "USD",
		ExchangeRate:         decimal.RequireFromString("4.93"),
		MonthlyContribution:  M(2000, "BRL"),
		FixedIncomeValue:     M(8000, "BRL"),
		FixedIncomeTarget:    25,
		VariableIncomeTarget: 75,
		CategoryTargets:      CategoryTargets{60, 40, 0, 0},
	}
}

// FX returns the exchange rate from the foreign to the reporting currency.
func (c Config) FX() ExchangeRate {
	return ExchangeRate{From: c.ForeignCurrency, To: c.Currency, Rate: c.ExchangeRate}
}

// NativeCurrency returns the currency holdings of category cat are priced in.
func (c Config) NativeCurrency(cat Category) string {
	if cat.IsForeign() {
		return c.ForeignCurrency
	}
	return c.Currency
}

// Merge returns a copy of c with u merged in. Amounts are always expressed in
// the (possibly updated) reporting currency.
func (c Config) Merge(u ConfigUpdate) Config {
	if u.Currency != nil {
		c.Currency = *u.Currency
		c.MonthlyContribution = c.MonthlyContribution.In(c.Currency)
		c.FixedIncomeValue = c.FixedIncomeValue.In(c.Currency)
	}
	if u.ForeignCurrency != nil {
		c.ForeignCurrency = *u.ForeignCurrency
	}
	if u.ExchangeRate != nil {
		c.ExchangeRate = *u.ExchangeRate
	}
	if u.MonthlyContribution != nil {
		c.MonthlyContribution = M(*u.MonthlyContribution, c.Currency)
	}
	if u.FixedIncomeValue != nil {
		c.FixedIncomeValue = M(*u.FixedIncomeValue, c.Currency)
	}
	if u.FixedIncomeTarget != nil {
		c.FixedIncomeTarget = *u.FixedIncomeTarget
	}
	if u.VariableIncomeTarget != nil {
		c.VariableIncomeTarget = *u.VariableIncomeTarget
	}
	if u.CategoryTargets != nil {
		c.CategoryTargets = *u.CategoryTargets
	}
	return c
}

// ExchangeRate converts amounts from one currency into another.
type ExchangeRate struct {
	From, To string
	Rate     decimal.Decimal
}

// Convert applies the rate to an amount in x.From and returns it in x.To.
func (x ExchangeRate) Convert(amount decimal.Decimal) Money {
	return M(amount.Mul(x.Rate), x.To)
}
