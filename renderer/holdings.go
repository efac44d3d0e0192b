package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/rebalance"
	md "github.com/nao1215/markdown"
)

// HoldingAllocation is a holding's share of its own category.
type HoldingAllocation struct {
	Holding    rebalance.Holding
	Value      rebalance.Money
	Current    rebalance.Percent
	Difference rebalance.Percent
}

// HoldingAllocations returns, for category c, each holding's share of the
// category value compared to its in-category target.
func HoldingAllocations(snap rebalance.Snapshot, c rebalance.Category) []HoldingAllocation {
	fx := snap.Config.FX()
	total := rebalance.CategoryValue(snap.Holdings, c, fx)

	var res []HoldingAllocation
	for _, h := range snap.Holdings {
		if h.Category != c {
			continue
		}
		value := rebalance.AssetValue(h, fx)
		current := rebalance.PercentOf(value, total)
		res = append(res, HoldingAllocation{
			Holding:    h,
			Value:      value,
			Current:    current,
			Difference: current - h.Target,
		})
	}
	return res
}

// HoldingsMarkdown renders the holdings grouped by category.
func HoldingsMarkdown(snap rebalance.Snapshot) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	cfg := snap.Config

	doc.H1("Holdings")
	for _, c := range rebalance.Categories() {
		doc.H2(c.Label())
		rows := HoldingAllocations(snap, c)
		if len(rows) == 0 {
			doc.PlainText(fmt.Sprintf("No holdings in %s.", c.Label()))
			continue
		}
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight,
				md.AlignRight, md.AlignRight, md.AlignRight, md.AlignLeft,
			},
			Header: []string{"ID", "Ticker", "Name", "Quantity", "Price", "Value", "Allocation", "Target", "Difference"},
		}
		var targets rebalance.Percent
		for _, row := range rows {
			h := row.Holding
			targets += h.Target
			table.Rows = append(table.Rows, []string{
				h.ID,
				h.Ticker,
				h.Name,
				h.Quantity.String(),
				rebalance.M(h.Price, cfg.NativeCurrency(c)).String(),
				row.Value.String(),
				row.Current.String(),
				targetPercent(h.Target),
				weight(row.Difference),
			})
		}
		doc.Table(table)
		if !targets.Equal(100) {
			doc.PlainText(fmt.Sprintf("Note: holding targets in %s add up to %s.", c.Label(), targets))
		}
	}
	return doc.String()
}

// ConfigMarkdown renders the configuration.
func ConfigMarkdown(cfg rebalance.Config) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Configuration")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Setting", "Value"},
		Rows: [][]string{
			{"Monthly Contribution", cfg.MonthlyContribution.String()},
			{"Fixed Income Value", cfg.FixedIncomeValue.String()},
			{"Fixed Income Target", targetPercent(cfg.FixedIncomeTarget)},
			{"Variable Income Target", targetPercent(cfg.VariableIncomeTarget)},
			{fmt.Sprintf("%s/%s", cfg.ForeignCurrency, cfg.Currency), cfg.ExchangeRate.String()},
		},
	})

	if sum := cfg.FixedIncomeTarget + cfg.VariableIncomeTarget; !sum.Equal(100) {
		doc.PlainText(fmt.Sprintf("Note: fixed and variable income targets add up to %s, not 100%%.", sum))
	}

	doc.H2("Category Targets")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Category", "Target"},
	}
	for _, c := range rebalance.Categories() {
		table.Rows = append(table.Rows, []string{c.Label(), targetPercent(cfg.CategoryTargets.Get(c))})
	}
	table.Rows = append(table.Rows, []string{md.Bold("Total"), md.Bold(targetPercent(cfg.CategoryTargets.Sum()))})
	doc.Table(table)
	return doc.String()
}
