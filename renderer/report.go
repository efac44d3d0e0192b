package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/rebalance"
	md "github.com/nao1215/markdown"
)

// ReportMarkdown renders the full rebalancing report.
func ReportMarkdown(r *rebalance.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio Rebalance")
	doc.PlainText(fmt.Sprintf("Total Portfolio Value: %s", md.Bold(r.TotalPortfolioValue.String())))

	doc.H2("Macro Allocation")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignLeft},
		Header:    []string{"Class", "Value", "Current", "Target", "Difference", "Status"},
		Rows: [][]string{
			allocationRow("Fixed Income", r.FixedIncomeAllocation),
			allocationRow("Variable Income", r.VariableIncomeAllocation),
		},
	})

	if sum := r.FixedIncomeAllocation.TargetPercentage + r.VariableIncomeAllocation.TargetPercentage; !sum.Equal(100) {
		doc.PlainText(fmt.Sprintf("Note: fixed and variable income targets add up to %s, not 100%%.", sum))
	}

	doc.H2("Variable Income by Category")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignLeft},
		Header:    []string{"Category", "Value", "Current", "Target", "Difference", "Status"},
	}
	for _, a := range r.CategoryAllocations {
		table.Rows = append(table.Rows, []string{
			a.Label,
			a.CurrentValue.String(),
			a.CurrentPercentage.String(),
			targetPercent(a.TargetPercentage),
			a.Difference.SignedString(),
			status(a.Difference, a.IsOverweight()),
		})
	}
	doc.Table(table)
	if !r.CategoryTargetsSum.Equal(100) {
		doc.PlainText(fmt.Sprintf("Note: category targets add up to %s, not 100%%.", r.CategoryTargetsSum))
	}

	doc.H2("Next Buy")
	doc.PlainText(NextBuyMarkdown(r))

	if len(r.Recommendations) > 0 {
		doc.H2("Recommendations")
		doc.Table(RecommendationsTable(r.Recommendations))
	}

	return doc.String()
}

func allocationRow(name string, a rebalance.Allocation) []string {
	return []string{
		name,
		a.Value.String(),
		a.CurrentPercentage.String(),
		targetPercent(a.TargetPercentage),
		a.Difference.SignedString(),
		status(a.Difference, a.IsOverweight()),
	}
}

// NextBuyMarkdown renders the best buy and how the monthly contribution pays for it.
func NextBuyMarkdown(r *rebalance.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	c := r.Contribution

	if r.BestBuy == nil {
		doc.PlainText("The portfolio is balanced: no holding is below its target value.")
	} else {
		b := r.BestBuy
		doc.PlainText(fmt.Sprintf("Buy %s (%s), %s priority.", md.Bold(b.Ticker), b.Category.Label(), b.Priority))
		doc.Table(md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Current Value", b.CurrentValue.String()},
			Rows: [][]string{
				{"Target Value", b.TargetValue.String()},
				{"Gap", b.Difference.SignedString()},
			},
		})
		if !c.Units.IsZero() {
			doc.PlainText(fmt.Sprintf("The monthly contribution of %s buys %s units for %s.", c.Amount, c.Units, c.Cost))
		}
	}
	doc.PlainText(fmt.Sprintf("Contribution split: %s to fixed income, %s to variable income.", c.FixedIncome, c.VariableIncome))
	return doc.String()
}

// RecommendationsTable lists every holding by funding gap.
func RecommendationsTable(recs []rebalance.Recommendation) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignLeft},
		Header:    []string{"Ticker", "Category", "Current", "Target", "Gap", "Priority"},
	}
	for _, rec := range recs {
		table.Rows = append(table.Rows, []string{
			rec.Ticker,
			rec.Category.Label(),
			rec.CurrentValue.String(),
			rec.TargetValue.String(),
			rec.Difference.SignedString(),
			rec.Priority.String(),
		})
	}
	return table
}

// RecommendationsMarkdown renders only the ranked recommendations.
func RecommendationsMarkdown(r *rebalance.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Recommendations")
	if len(r.Recommendations) == 0 {
		doc.PlainText("No holdings.")
		return doc.String()
	}
	doc.Table(RecommendationsTable(r.Recommendations))
	doc.H2("Next Buy")
	doc.PlainText(NextBuyMarkdown(r))
	return doc.String()
}
