// Package settings loads the rbl configuration file and builds its logger.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// DefaultFile is the configuration file read when none is given.
const DefaultFile = "rebalance.toml"

// Settings holds all configuration for rbl.
type Settings struct {
	PortfolioFile string         `toml:"portfolio_file"`
	Currency      CurrencyConfig `toml:"currency"`
	Logging       LoggingConfig  `toml:"logging"`
	Advisor       AdvisorConfig  `toml:"advisor"`
}

// CurrencyConfig holds the currencies used for new portfolios.
type CurrencyConfig struct {
	Reporting string `toml:"reporting"`
	Foreign   string `toml:"foreign"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `toml:"level"` // debug, info, warn or error
}

// AdvisorConfig holds the Gemini configuration.
type AdvisorConfig struct {
	Model  string `toml:"model"`
	APIKey string `toml:"api_key"`
}

// Default returns the settings used when no file exists.
func Default() Settings {
	return Settings{
		PortfolioFile: "portfolio.json",
		Currency:      CurrencyConfig{Reporting: "BRL", Foreign: "USD"},
		Logging:       LoggingConfig{Level: "warn"},
		Advisor:       AdvisorConfig{Model: "gemini-2.5-flash"},
	}
}

// Load reads the settings from path, on top of the defaults. A missing file is
// not an error. Environment variables override the file.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return s, fmt.Errorf("cannot read settings %q: %w", path, err)
	default:
		if err := toml.Unmarshal(data, &s); err != nil {
			return s, fmt.Errorf("format error in %q: %w", path, err)
		}
	}
	s.applyEnv(os.Getenv)
	return s, nil
}

// applyEnv overrides s with REBALANCE_* and GEMINI_API_KEY variables.
func (s *Settings) applyEnv(getenv func(string) string) {
	if v := getenv("REBALANCE_PORTFOLIO_FILE"); v != "" {
		s.PortfolioFile = v
	}
	if v := getenv("REBALANCE_LOG_LEVEL"); v != "" {
		s.Logging.Level = strings.ToLower(v)
	}
	if v := getenv("GEMINI_API_KEY"); v != "" {
		s.Advisor.APIKey = v
	}
}

// Encode returns s in TOML form.
func (s Settings) Encode() ([]byte, error) {
	return toml.Marshal(s)
}
