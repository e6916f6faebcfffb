// Package config defines the command-line configuration of coincalc: flag
// parsing, environment overrides and validation.
package config

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/agbru/coincalc/internal/coinchange"
	apperrors "github.com/agbru/coincalc/internal/errors"
)

// EnvPrefix is prepended to every environment override (COINCALC_AMOUNT, ...).
const EnvPrefix = "COINCALC_"

const (
	// DefaultAlgo runs every registered counter.
	DefaultAlgo = "all"
	// DefaultTimeout bounds each counter run.
	DefaultTimeout = time.Minute
)

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// AmountText and CoinsText hold the raw -amount and -coins values.
	// An empty AmountText selects the demonstration mode.
	AmountText string
	CoinsText  string
	// Amount and Coins are filled by Validate from the raw values.
	Amount int
	Coins  []int

	// Algo selects a single counter by key, or "all".
	Algo string
	// Timeout bounds each counter run. Zero disables the deadline.
	Timeout time.Duration
	// NaiveLimit skips the naive counter above this amount. Zero disables it.
	NaiveLimit int

	Verbose    bool
	Quiet      bool
	Details    bool
	Metrics    bool
	NoColor    bool
	Version    bool
	Completion string
}

// DemoMode reports whether no amount was given.
func (c AppConfig) DemoMode() bool {
	return strings.TrimSpace(c.AmountText) == ""
}

// ParseConfig parses command-line arguments into an AppConfig, applies
// environment overrides for flags that were not set, and validates the
// result.
//
// Parameters:
//   - programName: The name used in usage messages.
//   - args: The arguments without the program name.
//   - errWriter: Destination for usage and flag errors.
//   - availableAlgos: Registered counter keys, for validation and help.
//
// Returns:
//   - AppConfig: The parsed configuration.
//   - error: flag.ErrHelp when -h was given, or a ConfigError.
func ParseConfig(programName string, args []string, errWriter io.Writer, availableAlgos []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	config := AppConfig{}
	algoHelp := fmt.Sprintf("Counter to run: 'all' or one of [%s].", strings.Join(availableAlgos, ", "))

	fs.StringVar(&config.AmountText, "amount", "", "Target amount M (>= 0). Without it, the demonstration runs.")
	fs.StringVar(&config.CoinsText, "coins", "", "Denominations, e.g. \"1,5,7\" or \"1 5 7\".")
	fs.StringVar(&config.Algo, "algo", DefaultAlgo, algoHelp)
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum duration of each counter run (0 disables).")
	fs.IntVar(&config.NaiveLimit, "naive-limit", 0, "Skip the naive counter above this amount (0 disables).")
	fs.BoolVar(&config.Verbose, "v", false, "Shorthand for -verbose.")
	fs.BoolVar(&config.Verbose, "verbose", false, "Write debug logs to stderr.")
	fs.BoolVar(&config.Quiet, "q", false, "Shorthand for -quiet.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Print only the optimal count.")
	fs.BoolVar(&config.Details, "d", false, "Shorthand for -details.")
	fs.BoolVar(&config.Details, "details", false, "Show work statistics and resource usage.")
	fs.BoolVar(&config.Metrics, "metrics", false, "Print Prometheus metrics after the run.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")
	fs.StringVar(&config.Completion, "completion", "", "Print a completion script for bash, zsh or fish.")
	fs.BoolVar(&config.Version, "version", false, "Print version information.")
	fs.BoolVar(&config.Version, "V", false, "Shorthand for -version.")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected argument %q", fs.Arg(0))
	}

	applyEnvOverrides(&config, fs)

	if config.Version || config.Completion != "" {
		return config, nil
	}
	if err := config.Validate(availableAlgos); err != nil {
		fmt.Fprintln(errWriter, "Configuration error:", err)
		return AppConfig{}, err
	}
	return config, nil
}

// Validate checks the configuration and parses the amount and coins.
// Text that is not a valid amount or denomination list is reported as a
// ConfigError carrying the validator's message.
func (c *AppConfig) Validate(availableAlgos []string) error {
	if c.Timeout < 0 {
		return apperrors.NewConfigError("timeout must not be negative, got %s", c.Timeout)
	}
	if c.NaiveLimit < 0 {
		return apperrors.NewConfigError("naive-limit must not be negative, got %d", c.NaiveLimit)
	}
	if c.Algo != DefaultAlgo && !slices.Contains(availableAlgos, c.Algo) {
		return apperrors.NewConfigError("unknown algorithm %q (available: all, %s)", c.Algo, strings.Join(availableAlgos, ", "))
	}
	if c.Quiet && c.Verbose {
		return apperrors.NewConfigError("-quiet and -verbose cannot be combined")
	}

	if c.DemoMode() {
		if strings.TrimSpace(c.CoinsText) != "" {
			return apperrors.NewConfigError("-coins requires -amount")
		}
		return nil
	}
	if strings.TrimSpace(c.CoinsText) == "" {
		return apperrors.NewConfigError("-coins is required when -amount is given")
	}

	amount, err := coinchange.ParseAmount(c.AmountText)
	if err != nil {
		return apperrors.WrapConfigError(err, "invalid -amount")
	}
	coins, err := coinchange.ParseDenominations(c.CoinsText)
	if err != nil {
		return apperrors.WrapConfigError(err, "invalid -coins")
	}
	c.Amount, c.Coins = amount, coins
	return nil
}
