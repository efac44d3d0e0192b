package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/rebalance"
	"github.com/etnz/rebalance/renderer"
	"github.com/google/subcommands"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	ticker   string
	name     string
	category string
	quantity string
	price    string
	target   string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a holding to the portfolio" }
func (*addCmd) Usage() string {
	return `rbl add -t <ticker> -n <name> -c <category> -q <quantity> -p <price> -target <percent>

  Adds a holding. The price is in the holding's native currency: the foreign
  currency for foreign categories, the reporting currency otherwise.
  The target is the holding's share of its category.

  Categories: domestic-equity, domestic-fund, foreign-equity, foreign-fund.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "ticker symbol")
	f.StringVar(&c.name, "n", "", "display name")
	f.StringVar(&c.category, "c", "domestic-equity", "category")
	f.StringVar(&c.quantity, "q", "0", "quantity held")
	f.StringVar(&c.price, "p", "0", "unit price in the native currency")
	f.StringVar(&c.target, "target", "0", "target share of the category, in percent")
}

// spec parses the flags into a validated HoldingSpec.
func (c *addCmd) spec() (rebalance.HoldingSpec, error) {
	var spec rebalance.HoldingSpec
	var err error
	spec.Ticker = c.ticker
	spec.Name = c.name
	if spec.Name == "" {
		spec.Name = rebalance.NormalizeTicker(c.ticker)
	}
	if spec.Category, err = rebalance.ParseCategory(c.category); err != nil {
		return spec, err
	}
	q, err := rebalance.ParseAmount(c.quantity)
	if err != nil {
		return spec, fmt.Errorf("quantity: %w", err)
	}
	spec.Quantity = rebalance.Q(q)
	if spec.Price, err = rebalance.ParseAmount(c.price); err != nil {
		return spec, fmt.Errorf("price: %w", err)
	}
	if spec.Target, err = rebalance.ParsePercent(c.target); err != nil {
		return spec, fmt.Errorf("target: %w", err)
	}
	return spec, spec.Validate()
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	spec, err := c.spec()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid holding: %v\n", err)
		return subcommands.ExitUsageError
	}

	s, status := openSession(false)
	if s == nil {
		return status
	}
	h := s.store.AddHolding(spec)
	fmt.Fprintf(stdout, "Added %s with id %s\n", h.Ticker, h.ID)
	return commit(s)
}

// updateCmd holds the flags for the 'update' subcommand.
type updateCmd struct {
	addCmd
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "change fields of a holding" }
func (*updateCmd) Usage() string {
	return `rbl update [-t <ticker>] [-n <name>] [-c <category>] [-q <quantity>] [-p <price>] [-target <percent>] <id>

  Changes only the fields given on the command line.
`
}

// update parses the flags actually set on f into a validated HoldingUpdate.
func (c *updateCmd) update(f *flag.FlagSet) (rebalance.HoldingUpdate, error) {
	var u rebalance.HoldingUpdate
	var err error
	f.Visit(func(fl *flag.Flag) {
		if err != nil {
			return
		}
		switch fl.Name {
		case "t":
			u.Ticker = &c.ticker
		case "n":
			u.Name = &c.name
		case "c":
			var cat rebalance.Category
			if cat, err = rebalance.ParseCategory(c.category); err == nil {
				u.Category = &cat
			}
		case "q":
			d, perr := rebalance.ParseAmount(c.quantity)
			if perr != nil {
				err = fmt.Errorf("quantity: %w", perr)
				return
			}
			q := rebalance.Q(d)
			u.Quantity = &q
		case "p":
			d, perr := rebalance.ParseAmount(c.price)
			if perr != nil {
				err = fmt.Errorf("price: %w", perr)
				return
			}
			u.Price = &d
		case "target":
			p, perr := rebalance.ParsePercent(c.target)
			if perr != nil {
				err = fmt.Errorf("target: %w", perr)
				return
			}
			u.Target = &p
		}
	})
	if err != nil {
		return u, err
	}
	return u, u.Validate()
}

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: update requires exactly one holding id")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)
	u, err := c.update(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid update: %v\n", err)
		return subcommands.ExitUsageError
	}
	if u.IsEmpty() {
		fmt.Fprintln(os.Stderr, "Nothing to update")
		return subcommands.ExitUsageError
	}

	s, status := openSession(false)
	if s == nil {
		return status
	}
	if !s.store.UpdateHolding(id, u) {
		fmt.Fprintf(os.Stderr, "No holding with id %q\n", id)
		return subcommands.ExitFailure
	}
	h, _ := s.store.Holding(id)
	fmt.Fprintf(stdout, "Updated %s (%s)\n", h.Ticker, h.ID)
	return commit(s)
}

type removeCmd struct{}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove holdings from the portfolio" }
func (*removeCmd) Usage() string {
	return `rbl remove <id>...

  Removes the holdings with the given ids.
`
}

func (*removeCmd) SetFlags(f *flag.FlagSet) {}

func (*removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: remove requires at least one holding id")
		return subcommands.ExitUsageError
	}

	s, status := openSession(false)
	if s == nil {
		return status
	}
	var missing []string
	for _, id := range f.Args() {
		if !s.store.RemoveHolding(id) {
			missing = append(missing, id)
			continue
		}
		fmt.Fprintf(stdout, "Removed %s\n", id)
	}
	if status := commit(s); status != subcommands.ExitSuccess {
		return status
	}
	if len(missing) > 0 {
		fmt.Fprintf(os.Stderr, "No holding with id %s\n", strings.Join(missing, ", "))
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type holdingsCmd struct{}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "list holdings by category" }
func (*holdingsCmd) Usage() string {
	return `rbl holdings

  Lists holdings grouped by category, with their share of the category
  compared to their target.
`
}

func (*holdingsCmd) SetFlags(f *flag.FlagSet) {}

func (*holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, status := openSession(false)
	if s == nil {
		return status
	}
	printMarkdown(renderer.HoldingsMarkdown(s.store.Snapshot()))
	return subcommands.ExitSuccess
}
