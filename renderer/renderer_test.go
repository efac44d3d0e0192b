package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/rebalance"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// outline counts the headings per level and the tables of a markdown document.
type outline struct {
	headings map[int]int
	tables   int
	rows     int
}

func parse(t *testing.T, content string) outline {
	t.Helper()
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	root := md.Parser().Parse(text.NewReader([]byte(content)))

	o := outline{headings: map[int]int{}}
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Heading:
			o.headings[n.Level]++
		case *extast.Table:
			o.tables++
		case *extast.TableRow:
			o.rows++
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("ast.Walk() failed: %v", err)
	}
	return o
}

func TestReportMarkdown(t *testing.T) {
	r := rebalance.Analyze(rebalance.DemoSnapshot())
	got := ReportMarkdown(r)

	o := parse(t, got)
	if o.headings[1] != 1 {
		t.Errorf("H1 count = %d, want 1", o.headings[1])
	}
	if o.headings[2] != 4 {
		t.Errorf("H2 count = %d, want 4", o.headings[2])
	}
	// macro, categories, next buy and recommendations.
	if o.tables != 4 {
		t.Errorf("table count = %d, want 4\n%s", o.tables, got)
	}

	for _, want := range []string{"MXRF11", "Domestic Funds", "198", "high"} {
		if !strings.Contains(got, want) {
			t.Errorf("ReportMarkdown() does not contain %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Note:") {
		t.Errorf("ReportMarkdown() has a target sum note, want none:\n%s", got)
	}
}

func TestReportMarkdown_Balanced(t *testing.T) {
	r := rebalance.Analyze(rebalance.EmptySnapshot())
	got := ReportMarkdown(r)

	if !strings.Contains(got, "The portfolio is balanced") {
		t.Errorf("ReportMarkdown() does not report a balanced portfolio:\n%s", got)
	}
	o := parse(t, got)
	if o.headings[2] != 3 {
		t.Errorf("H2 count = %d, want 3 (no recommendations section)", o.headings[2])
	}
}

func TestReportMarkdown_TargetSumNote(t *testing.T) {
	snap := rebalance.DemoSnapshot()
	snap.Config.CategoryTargets = rebalance.CategoryTargets{50, 30, 0, 0}
	got := ReportMarkdown(rebalance.Analyze(snap))

	if !strings.Contains(got, "Note: category targets add up to 80.00%") {
		t.Errorf("ReportMarkdown() misses the target sum note:\n%s", got)
	}
}

func TestReportMarkdown_Status(t *testing.T) {
	got := ReportMarkdown(rebalance.Analyze(rebalance.DemoSnapshot()))

	// fixed income is 34.55% against 25%, foreign categories are empty with a 0% target.
	for _, want := range []string{"overweight", "underweight", "on target"} {
		if !strings.Contains(got, want) {
			t.Errorf("ReportMarkdown() does not contain %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "income targets add up") {
		t.Errorf("ReportMarkdown() has a fixed/variable note for 25/75:\n%s", got)
	}

	snap := rebalance.DemoSnapshot()
	snap.Config.VariableIncomeTarget = 80
	got = ReportMarkdown(rebalance.Analyze(snap))
	if !strings.Contains(got, "Note: fixed and variable income targets add up to 105.00%") {
		t.Errorf("ReportMarkdown() misses the fixed/variable note:\n%s", got)
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		diff       rebalance.Percent
		overweight bool
		want       string
	}{
		{0, false, "on target"},
		{9.55, true, "overweight"},
		{-9.55, false, "underweight"},
	}
	for _, tc := range tests {
		if got := status(tc.diff, tc.overweight); got != tc.want {
			t.Errorf("status(%v, %v) = %q, want %q", tc.diff, tc.overweight, got, tc.want)
		}
	}
}

func TestHoldingsMarkdown(t *testing.T) {
	got := HoldingsMarkdown(rebalance.DemoSnapshot())

	o := parse(t, got)
	if o.headings[2] != 4 {
		t.Errorf("H2 count = %d, want one per category", o.headings[2])
	}
	if o.tables != 2 {
		t.Errorf("table count = %d, want 2", o.tables)
	}
	// 3 equities and 1 fund.
	if o.rows != 4 {
		t.Errorf("row count = %d, want 4", o.rows)
	}
	for _, want := range []string{"AESB3", "BBAS3", "BBSE3", "MXRF11", "No holdings in Foreign Equities."} {
		if !strings.Contains(got, want) {
			t.Errorf("HoldingsMarkdown() does not contain %q:\n%s", want, got)
		}
	}
}

func TestHoldingAllocations(t *testing.T) {
	snap := rebalance.DemoSnapshot()

	funds := HoldingAllocations(snap, rebalance.DomesticFund)
	if len(funds) != 1 {
		t.Fatalf("len(HoldingAllocations()) = %d, want 1", len(funds))
	}
	if !funds[0].Current.Equal(100) {
		t.Errorf("MXRF11 share = %v, want 100%%", funds[0].Current)
	}
	if !funds[0].Difference.Equal(0) {
		t.Errorf("MXRF11 difference = %v, want 0", funds[0].Difference)
	}

	var sum rebalance.Percent
	for _, a := range HoldingAllocations(snap, rebalance.DomesticEquity) {
		sum += a.Current
	}
	if !sum.Equal(100) {
		t.Errorf("sum of equity shares = %v, want 100%%", sum)
	}

	if got := HoldingAllocations(snap, rebalance.ForeignFund); len(got) != 0 {
		t.Errorf("HoldingAllocations(ForeignFund) = %v, want empty", got)
	}
}

func TestWeight(t *testing.T) {
	tests := []struct {
		diff rebalance.Percent
		want string
	}{
		{0, "on target"},
		{2, "on target"},
		{-2, "on target"},
		{2.5, "+2.50% over"},
		{-10, "-10.00% under"},
	}
	for _, tc := range tests {
		if got := weight(tc.diff); got != tc.want {
			t.Errorf("weight(%v) = %q, want %q", tc.diff, got, tc.want)
		}
	}
}

func TestConfigMarkdown(t *testing.T) {
	got := ConfigMarkdown(rebalance.DefaultConfig())
	for _, want := range []string{"USD/BRL", "4.93", "Domestic Equities", "60%", "**100%**"} {
		if !strings.Contains(got, want) {
			t.Errorf("ConfigMarkdown() does not contain %q:\n%s", want, got)
		}
	}
}
