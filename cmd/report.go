package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/rebalance"
	"github.com/etnz/rebalance/advisor"
	"github.com/etnz/rebalance/renderer"
	"github.com/google/subcommands"
)

// statusCmd holds the flags for the 'status' subcommand.
type statusCmd struct {
	json bool
}

func (*statusCmd) Name() string     { return "status" }
func (*statusCmd) Synopsis() string { return "show allocations and what to buy next" }
func (*statusCmd) Usage() string {
	return `rbl status [-json]

  Shows the total portfolio value, the fixed/variable income split, the
  category allocations, the next buy and the ranked recommendations.
`
}

func (c *statusCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "print the report as JSON")
}

func (c *statusCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, status := openSession(false)
	if s == nil {
		return status
	}
	r := s.store.Analyze()
	if c.json {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding report: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.ReportMarkdown(r))
	return subcommands.ExitSuccess
}

type recommendCmd struct{}

func (*recommendCmd) Name() string     { return "recommend" }
func (*recommendCmd) Synopsis() string { return "rank holdings by funding gap" }
func (*recommendCmd) Usage() string {
	return `rbl recommend

  Lists every holding by funding gap, largest first, and the next buy.
`
}

func (*recommendCmd) SetFlags(f *flag.FlagSet) {}

func (*recommendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, status := openSession(false)
	if s == nil {
		return status
	}
	printMarkdown(renderer.RecommendationsMarkdown(s.store.Analyze()))
	return subcommands.ExitSuccess
}

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "extract values from the report with a JSONPath" }
func (*queryCmd) Usage() string {
	return `rbl query <jsonpath>

  Evaluates a JSONPath expression over the JSON report (see status -json).
  Strings are printed as is, other values as JSON.

  Example: rbl query '$.bestBuy.ticker'
`
}

func (*queryCmd) SetFlags(f *flag.FlagSet) {}

// query evaluates path over the JSON form of r.
func query(r *rebalance.Report, path string) (any, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("cannot encode report: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("cannot decode report: %w", err)
	}
	return jsonpath.Get(path, v)
}

func (*queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: query requires exactly one JSONPath expression")
		return subcommands.ExitUsageError
	}

	s, status := openSession(false)
	if s == nil {
		return status
	}
	res, err := query(s.store.Analyze(), f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error evaluating %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	if str, ok := res.(string); ok {
		fmt.Fprintln(stdout, str)
		return subcommands.ExitSuccess
	}
	out, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(stdout, string(out))
	return subcommands.ExitSuccess
}

// adviseCmd holds the flags for the 'advise' subcommand.
type adviseCmd struct {
	model string
}

func (*adviseCmd) Name() string     { return "advise" }
func (*adviseCmd) Synopsis() string { return "ask Gemini to explain the rebalancing report" }
func (*adviseCmd) Usage() string {
	return `rbl advise [-model <model>] [question...]

  Sends the report to Gemini and prints its explanation. Requires an API key
  in GEMINI_API_KEY or in the [advisor] section of the settings file.
`
}

func (c *adviseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.model, "model", "", "Gemini model, overrides the settings")
}

func (c *adviseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, status := openSession(false)
	if s == nil {
		return status
	}
	model := s.settings.Advisor.Model
	if c.model != "" {
		model = c.model
	}
	g, err := advisor.NewGemini(ctx, s.settings.Advisor.APIKey, advisor.WithModel(model), advisor.WithLogger(s.log))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	answer, err := advisor.Advise(ctx, g, s.store.Analyze(), strings.Join(f.Args(), " "))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(answer)
	return subcommands.ExitSuccess
}
