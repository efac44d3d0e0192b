package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// Environment variables passed to extensions.
const (
	EnvPortfolioFile = "REBALANCE_PORTFOLIO_FILE"
	EnvConfigFile    = "REBALANCE_CONFIG_FILE"
	EnvVerbose       = "REBALANCE_VERBOSE"
)

// extensionEnv returns the environment given to an extension: the current one
// plus the global flags.
func extensionEnv() []string {
	env := os.Environ()
	if *portfolioFile != "" {
		env = append(env, EnvPortfolioFile+"="+*portfolioFile)
	}
	env = append(env, EnvConfigFile+"="+*configFile)
	env = append(env, EnvVerbose+"="+strconv.FormatBool(*verbose))
	return env
}

// RunExtension attempts to find and execute an external rbl-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := "rbl-" + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = extensionEnv()

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return true, exitErr.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}
