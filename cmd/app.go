// Package cmd implements the rbl command-line application.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/etnz/rebalance"
	"github.com/etnz/rebalance/settings"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFile    = flag.String("config", settings.DefaultFile, "Path to the TOML settings file")
	portfolioFile = flag.String("portfolio-file", "", "Path to the portfolio file (JSON, or YAML with a .yaml extension). Overrides the settings")
	verbose       = flag.Bool("v", false, "Log debug messages")
	raw           = flag.Bool("raw", false, "Print markdown as is, without terminal rendering")
)

// stdout is where commands print their results.
var stdout io.Writer = os.Stdout

// Commands lists every subcommand with its group.
var Commands = []struct {
	Command subcommands.Command
	Group   string
}{
	{&initCmd{}, "portfolio"},
	{&addCmd{}, "portfolio"},
	{&updateCmd{}, "portfolio"},
	{&removeCmd{}, "portfolio"},
	{&holdingsCmd{}, "portfolio"},
	{&configCmd{}, "allocation"},
	{&targetCmd{}, "allocation"},
	{&statusCmd{}, "reports"},
	{&recommendCmd{}, "reports"},
	{&queryCmd{}, "reports"},
	{&adviseCmd{}, "reports"},
	{&topicCmd{}, "help"},
}

// Register the subcommands.
func Register(c *subcommands.Commander) {
	for _, e := range Commands {
		c.Register(e.Command, e.Group)
	}
}

// IsCommand reports whether name is a registered subcommand.
func IsCommand(name string) bool {
	for _, e := range Commands {
		if e.Command.Name() == name {
			return true
		}
	}
	return false
}

// app gathers what every command needs: settings, logger and portfolio path.
type app struct {
	settings settings.Settings
	log      zerolog.Logger
	path     string
}

// loadApp reads the settings file and applies the global flags.
func loadApp() (*app, error) {
	s, err := settings.Load(*configFile)
	if err != nil {
		return nil, err
	}
	if *verbose {
		s.Logging.Level = "debug"
	}
	if *portfolioFile != "" {
		s.PortfolioFile = *portfolioFile
	}
	a := &app{
		settings: s,
		log:      settings.NewLogger(s.Logging.Level),
		path:     s.PortfolioFile,
	}
	a.log.Debug().Str("config", *configFile).Str("portfolio", a.path).Msg("settings loaded")
	return a, nil
}

// newSnapshot returns an empty portfolio, or the demo one, using the
// configured currencies.
func (a *app) newSnapshot(demo bool) rebalance.Snapshot {
	snap := rebalance.EmptySnapshot()
	if demo {
		snap = rebalance.DemoSnapshot()
	}
	snap.Config = snap.Config.Merge(rebalance.ConfigUpdate{
		Currency:        &a.settings.Currency.Reporting,
		ForeignCurrency: &a.settings.Currency.Foreign,
	})
	return snap
}

// session is an opened portfolio. Changes made to its store are written back
// by Commit.
type session struct {
	*app
	store   *rebalance.Store
	changed bool
	last    rebalance.Snapshot
}

// open loads the portfolio file. A missing file is an empty portfolio.
func (a *app) open() (*session, error) {
	snap, err := rebalance.LoadSnapshot(a.path)
	if errors.Is(err, fs.ErrNotExist) {
		a.log.Warn().Str("file", a.path).Msg("portfolio file does not exist, starting from an empty portfolio")
		snap, err = a.newSnapshot(false), nil
	}
	if err != nil {
		return nil, err
	}

	s := &session{app: a}
	s.store = rebalance.NewStore(snap, rebalance.WithLogger(a.log))
	s.store.OnChange(func(snap rebalance.Snapshot) {
		s.changed = true
		s.last = snap
	})
	return s, nil
}

// Commit saves the portfolio if it changed since open.
func (s *session) Commit() error {
	if !s.changed {
		return nil
	}
	if err := rebalance.SaveSnapshot(s.path, s.last); err != nil {
		return err
	}
	s.log.Info().Str("file", s.path).Int("holdings", len(s.last.Holdings)).Msg("portfolio saved")
	return nil
}

// openSession is the common prologue of commands reading the portfolio.
//
// An invalid configuration fails the command, unless lenient is set: commands
// able to fix the configuration only log it.
func openSession(lenient bool) (*session, subcommands.ExitStatus) {
	a, err := loadApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	s, err := a.open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	if err := s.store.Snapshot().Config.Validate(); err != nil {
		if !lenient {
			fmt.Fprintf(os.Stderr, "Invalid configuration in %q: %v\n", a.path, err)
			return nil, subcommands.ExitFailure
		}
		a.log.Warn().Err(err).Str("file", a.path).Msg("invalid configuration")
	}
	return s, subcommands.ExitSuccess
}

// commit is the common epilogue of commands changing the portfolio.
func commit(s *session) subcommands.ExitStatus {
	if err := s.Commit(); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
