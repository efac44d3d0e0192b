package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/rebalance"
	"github.com/etnz/rebalance/renderer"
	"github.com/google/subcommands"
)

// configCmd holds the flags for the 'config' subcommand.
type configCmd struct {
	currency        string
	foreignCurrency string
	rate            string
	contribution    string
	fixedIncome     string
	fixedTarget     string
	variableTarget  string
}

func (*configCmd) Name() string     { return "config" }
func (*configCmd) Synopsis() string { return "show or change the portfolio configuration" }
func (*configCmd) Usage() string {
	return `rbl config [-currency <code>] [-foreign-currency <code>] [-rate <rate>]
           [-contribution <amount>] [-fixed-income <amount>]
           [-fixed-target <percent>] [-variable-target <percent>]

  Without flags, prints the configuration. Otherwise changes the given fields.
  Amounts are in the reporting currency. The rate converts one unit of the
  foreign currency into the reporting currency. Setting only one of the fixed
  and variable income targets sets the other to its complement to 100%.
`
}

func (c *configCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "currency", "", "reporting currency")
	f.StringVar(&c.foreignCurrency, "foreign-currency", "", "currency of foreign holdings")
	f.StringVar(&c.rate, "rate", "", "exchange rate from the foreign to the reporting currency")
	f.StringVar(&c.contribution, "contribution", "", "monthly contribution")
	f.StringVar(&c.fixedIncome, "fixed-income", "", "current fixed income value")
	f.StringVar(&c.fixedTarget, "fixed-target", "", "fixed income target, in percent of the portfolio")
	f.StringVar(&c.variableTarget, "variable-target", "", "variable income target, in percent of the portfolio")
}

// update parses the flags actually set on f into a ConfigUpdate.
func (c *configCmd) update(f *flag.FlagSet) (rebalance.ConfigUpdate, error) {
	var u rebalance.ConfigUpdate
	var errs []string
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "currency":
			cur := strings.ToUpper(c.currency)
			u.Currency = &cur
		case "foreign-currency":
			cur := strings.ToUpper(c.foreignCurrency)
			u.ForeignCurrency = &cur
		case "rate", "contribution", "fixed-income":
			d, err := rebalance.ParseAmount(fl.Value.String())
			if err != nil {
				errs = append(errs, fmt.Sprintf("%s: %v", fl.Name, err))
				return
			}
			switch fl.Name {
			case "rate":
				u.ExchangeRate = &d
			case "contribution":
				u.MonthlyContribution = &d
			case "fixed-income":
				u.FixedIncomeValue = &d
			}
		case "fixed-target", "variable-target":
			p, err := rebalance.ParsePercent(fl.Value.String())
			if err != nil {
				errs = append(errs, fmt.Sprintf("%s: %v", fl.Name, err))
				return
			}
			if fl.Name == "fixed-target" {
				u.FixedIncomeTarget = &p
			} else {
				u.VariableIncomeTarget = &p
			}
		}
	})
	if len(errs) > 0 {
		return u, errors.New(strings.Join(errs, "; "))
	}
	// A single macro target implies its complement.
	switch {
	case u.FixedIncomeTarget != nil && u.VariableIncomeTarget == nil:
		v := 100 - *u.FixedIncomeTarget
		u.VariableIncomeTarget = &v
	case u.VariableIncomeTarget != nil && u.FixedIncomeTarget == nil:
		v := 100 - *u.VariableIncomeTarget
		u.FixedIncomeTarget = &v
	}
	return u, nil
}

func (c *configCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	u, err := c.update(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		return subcommands.ExitUsageError
	}

	s, status := openSession(true)
	if s == nil {
		return status
	}
	if f.NFlag() == 0 {
		printMarkdown(renderer.ConfigMarkdown(s.store.Snapshot().Config))
		return subcommands.ExitSuccess
	}

	if err := s.store.Snapshot().Config.Merge(u).Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	s.store.UpdateConfig(u)
	printMarkdown(renderer.ConfigMarkdown(s.store.Snapshot().Config))
	return commit(s)
}

type targetCmd struct{}

func (*targetCmd) Name() string     { return "target" }
func (*targetCmd) Synopsis() string { return "set category targets" }
func (*targetCmd) Usage() string {
	return `rbl target <category> <percent> [<category> <percent>...]

  Sets the target share of variable income for each given category.
  Targets are not required to add up to 100%; the status report shows the sum.

  Categories: domestic-equity, domestic-fund, foreign-equity, foreign-fund.
`
}

func (*targetCmd) SetFlags(f *flag.FlagSet) {}

// parseTargets parses category/percent pairs.
func parseTargets(args []string) (map[rebalance.Category]rebalance.Percent, error) {
	if len(args) == 0 || len(args)%2 != 0 {
		return nil, fmt.Errorf("expected category and percent pairs, got %d arguments", len(args))
	}
	targets := make(map[rebalance.Category]rebalance.Percent)
	for i := 0; i < len(args); i += 2 {
		c, err := rebalance.ParseCategory(args[i])
		if err != nil {
			return nil, err
		}
		p, err := rebalance.ParsePercent(args[i+1])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c, err)
		}
		if p < 0 || p > 100 {
			return nil, fmt.Errorf("%s: target must be between 0 and 100, got %s", c, p)
		}
		targets[c] = p
	}
	return targets, nil
}

func (*targetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	targets, err := parseTargets(f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	s, status := openSession(true)
	if s == nil {
		return status
	}
	for _, c := range rebalance.Categories() {
		if p, ok := targets[c]; ok {
			s.store.SetCategoryTarget(c, p)
		}
	}
	printMarkdown(renderer.ConfigMarkdown(s.store.Snapshot().Config))
	return commit(s)
}
