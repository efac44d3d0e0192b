package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/etnz/rebalance"
	"github.com/google/subcommands"
)

type initCmd struct {
	demo  bool
	force bool
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create a new portfolio file" }
func (*initCmd) Usage() string {
	return `rbl init [-demo] [-force]

  Creates the portfolio file with the default configuration. With -demo, a few
  sample holdings are added.
`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.demo, "demo", false, "add sample holdings")
	f.BoolVar(&c.force, "force", false, "overwrite an existing portfolio file")
}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := loadApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		return subcommands.ExitFailure
	}

	if _, err := os.Stat(a.path); !c.force && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Portfolio file %q already exists, use -force to overwrite it\n", a.path)
		return subcommands.ExitFailure
	}

	snap := a.newSnapshot(c.demo)
	if err := snap.Config.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := rebalance.SaveSnapshot(a.path, snap); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Created %s with %d holdings\n", a.path, len(snap.Holdings))
	return subcommands.ExitSuccess
}
