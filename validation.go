package rebalance

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a user supplied number. Both '.' and ',' are accepted as
// the decimal separator.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid number %q", s)
	}
	return d, nil
}

// ParsePercent parses a user supplied percentage, with or without a trailing '%'.
func ParsePercent(s string) (Percent, error) {
	d, err := ParseAmount(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	if err != nil {
		return 0, err
	}
	return Percent(d.InexactFloat64()), nil
}

// Validate checks a holding before it enters the store.
func (s HoldingSpec) Validate() error {
	var errs []error
	if NormalizeTicker(s.Ticker) == "" {
		errs = append(errs, errors.New("ticker is required"))
	}
	if strings.TrimSpace(s.Name) == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if !s.Category.valid() {
		errs = append(errs, fmt.Errorf("invalid category %d", int(s.Category)))
	}
	errs = append(errs,
		validateQuantity(s.Quantity),
		validatePrice(s.Price),
		validatePercent("target", s.Target),
	)
	return errors.Join(errs...)
}

// Validate checks the fields set by u.
func (u HoldingUpdate) Validate() error {
	var errs []error
	if u.Ticker != nil && NormalizeTicker(*u.Ticker) == "" {
		errs = append(errs, errors.New("ticker cannot be empty"))
	}
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		errs = append(errs, errors.New("name cannot be empty"))
	}
	if u.Category != nil && !u.Category.valid() {
		errs = append(errs, fmt.Errorf("invalid category %d", int(*u.Category)))
	}
	if u.Quantity != nil {
		errs = append(errs, validateQuantity(*u.Quantity))
	}
	if u.Price != nil {
		errs = append(errs, validatePrice(*u.Price))
	}
	if u.Target != nil {
		errs = append(errs, validatePercent("target", *u.Target))
	}
	return errors.Join(errs...)
}

// Validate checks the configuration. A non positive exchange rate is an error;
// target sums are not checked.
func (c Config) Validate() error {
	var errs []error
	if !knownCurrency(c.Currency) {
		errs = append(errs, fmt.Errorf("unknown reporting currency %q", c.Currency))
	}
	if !knownCurrency(c.ForeignCurrency) {
		errs = append(errs, fmt.Errorf("unknown foreign currency %q", c.ForeignCurrency))
	}
	if !c.ExchangeRate.IsPositive() {
		errs = append(errs, fmt.Errorf("exchange rate must be positive, got %s", c.ExchangeRate))
	}
	if c.MonthlyContribution.IsNegative() {
		errs = append(errs, errors.New("monthly contribution cannot be negative"))
	}
	if c.FixedIncomeValue.IsNegative() {
		errs = append(errs, errors.New("fixed income value cannot be negative"))
	}
	errs = append(errs,
		validatePercent("fixed income target", c.FixedIncomeTarget),
		validatePercent("variable income target", c.VariableIncomeTarget),
	)
	for _, cat := range Categories() {
		errs = append(errs, validatePercent(cat.String()+" target", c.CategoryTargets.Get(cat)))
	}
	return errors.Join(errs...)
}

func validateQuantity(q Quantity) error {
	if q.IsNegative() {
		return fmt.Errorf("quantity cannot be negative, got %s", q)
	}
	return nil
}

func validatePrice(p decimal.Decimal) error {
	if p.IsNegative() {
		return fmt.Errorf("price cannot be negative, got %s", p)
	}
	return nil
}

func validatePercent(name string, p Percent) error {
	if p < 0 || p > 100 {
		return fmt.Errorf("%s must be between 0 and 100, got %v", name, float64(p))
	}
	return nil
}
