package cmd

import (
	"flag"

	"github.com/etnz/rebalance"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// categoryNames predicts category names.
func categoryNames() predict.Set {
	var names predict.Set
	for _, c := range rebalance.Categories() {
		names = append(names, c.String())
	}
	return names
}

// Completion returns the shell completion tree of the rbl command.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub: make(map[string]*complete.Command),
		Flags: map[string]complete.Predictor{
			"config":         predict.Files("*.toml"),
			"portfolio-file": predict.Files("*"),
			"v":              predict.Nothing,
			"raw":            predict.Nothing,
		},
	}

	for _, e := range Commands {
		sub := &complete.Command{Flags: make(map[string]complete.Predictor)}
		fs := flag.NewFlagSet(e.Command.Name(), flag.ContinueOnError)
		e.Command.SetFlags(fs)
		fs.VisitAll(func(f *flag.Flag) {
			sub.Flags[f.Name] = predict.Something
		})
		root.Sub[e.Command.Name()] = sub
	}

	root.Sub["add"].Flags["c"] = categoryNames()
	root.Sub["update"].Flags["c"] = categoryNames()
	root.Sub["target"].Args = categoryNames()
	root.Sub["topic"].Args = predict.Set{"readme", "allocation", "recommendation", "configuration"}
	root.Sub["init"].Flags["demo"] = predict.Nothing
	root.Sub["init"].Flags["force"] = predict.Nothing
	root.Sub["status"].Flags["json"] = predict.Nothing
	root.Sub["topic"].Flags["l"] = predict.Nothing
	return root
}
