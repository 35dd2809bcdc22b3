// Package config loads lvbalance settings.
//
// Settings come from three layers, later ones winning:
//
//  1. built-in defaults (Default),
//  2. a TOML file (Load), by default ./lvbalance.toml when present,
//  3. environment variables, optionally seeded from a .env file (ApplyEnv).
//
// Unknown TOML keys are rejected so that typos do not silently fall back to
// defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/katalvlaran/lvbalance/balance"
	"github.com/katalvlaran/lvbalance/cycle"
)

// DefaultFile is read by Load when no explicit path is given and it exists.
const DefaultFile = "lvbalance.toml"

// Environment variables consulted by ApplyEnv.
const (
	EnvLogLevel      = "LVBALANCE_LOG_LEVEL"
	EnvMaxCycleNodes = "LVBALANCE_MAX_CYCLE_NODES"
	EnvMaxCycles     = "LVBALANCE_MAX_CYCLES"
	EnvWorkers       = "LVBALANCE_WORKERS"
)

// ErrInvalidConfig wraps every load, parse and validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full settings tree.
type Config struct {
	Log      LogConfig      `toml:"log"`
	Cycles   CycleConfig    `toml:"cycles"`
	Analysis AnalysisConfig `toml:"analysis"`
}

// LogConfig controls the CLI logger.
type LogConfig struct {
	Level string `toml:"level"` // debug|info|warn|error
}

// CycleConfig bounds the exhaustive cycle search. Zero disables a guard.
type CycleConfig struct {
	MaxNodes  int `toml:"max_nodes"`
	MaxCycles int `toml:"max_cycles"`
}

// AnalysisConfig selects strategies and parallelism for batch checks.
type AnalysisConfig struct {
	Workers    int      `toml:"workers"`
	Strategies []string `toml:"strategies"`
}

var levels = []string{"debug", "info", "warn", "error"}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Log:    LogConfig{Level: "info"},
		Cycles: CycleConfig{MaxNodes: 40, MaxCycles: 1_000_000},
		Analysis: AnalysisConfig{
			Workers:    4,
			Strategies: []string{balance.TriangleName, balance.CycleName, balance.SuperNodeName},
		},
	}
}

// Load reads path over the defaults. An empty path falls back to DefaultFile
// when it exists, and to plain defaults otherwise.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		if _, err := os.Stat(DefaultFile); err != nil {
			return cfg, nil
		}
		path = DefaultFile
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("Load: %s: %w: %w", path, ErrInvalidConfig, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("Load: %s: unknown keys %s: %w", path, strings.Join(keys, ", "), ErrInvalidConfig)
	}

	return cfg, nil
}

// ApplyEnv overrides c from the environment. Variables missing from the
// process environment are looked up in the given .env files (default
// ".env"); missing files are skipped and the process environment wins.
func (c *Config) ApplyEnv(envFiles ...string) error {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	dotenv := map[string]string{}
	for _, f := range envFiles {
		vals, err := godotenv.Read(f)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("ApplyEnv: %s: %w: %w", f, ErrInvalidConfig, err)
		}
		for k, v := range vals {
			if _, seen := dotenv[k]; !seen {
				dotenv[k] = v
			}
		}
	}
	lookup := func(key string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return dotenv[key]
	}

	if v := lookup(EnvLogLevel); v != "" {
		c.Log.Level = strings.ToLower(v)
	}
	ints := []struct {
		key string
		dst *int
	}{
		{EnvMaxCycleNodes, &c.Cycles.MaxNodes},
		{EnvMaxCycles, &c.Cycles.MaxCycles},
		{EnvWorkers, &c.Analysis.Workers},
	}
	for _, e := range ints {
		v := lookup(e.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("ApplyEnv: %s=%q: %w", e.key, v, ErrInvalidConfig)
		}
		*e.dst = n
	}

	return nil
}

// Validate checks ranges and names.
func (c *Config) Validate() error {
	var errs []error
	if !slices.Contains(levels, c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level %q not one of %v", c.Log.Level, levels))
	}
	if c.Cycles.MaxNodes < 0 {
		errs = append(errs, fmt.Errorf("cycles.max_nodes %d < 0", c.Cycles.MaxNodes))
	}
	if c.Cycles.MaxCycles < 0 {
		errs = append(errs, fmt.Errorf("cycles.max_cycles %d < 0", c.Cycles.MaxCycles))
	}
	if c.Analysis.Workers < 1 {
		errs = append(errs, fmt.Errorf("analysis.workers %d < 1", c.Analysis.Workers))
	}
	if len(c.Analysis.Strategies) == 0 {
		errs = append(errs, errors.New("analysis.strategies is empty"))
	}
	for _, name := range c.Analysis.Strategies {
		if _, err := balance.StrategyByName(name); err != nil {
			errs = append(errs, fmt.Errorf("analysis.strategies: %q unknown", name))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("Validate: %w: %w", ErrInvalidConfig, errors.Join(errs...))
	}

	return nil
}

// LogLevel returns the parsed log level.
func (c *Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// CycleOptions turns the cycle guards into search options.
func (c *Config) CycleOptions() []cycle.Option {
	return []cycle.Option{
		cycle.WithMaxNodes(c.Cycles.MaxNodes),
		cycle.WithMaxCycles(c.Cycles.MaxCycles),
	}
}

// Strategies resolves the configured strategy names, with the cycle guards
// applied to the cycle strategy.
func (c *Config) Strategies() ([]balance.Strategy, error) {
	out := make([]balance.Strategy, 0, len(c.Analysis.Strategies))
	for _, name := range c.Analysis.Strategies {
		s, err := balance.StrategyByName(name, c.CycleOptions()...)
		if err != nil {
			return nil, fmt.Errorf("Strategies: %w", err)
		}
		out = append(out, s)
	}

	return out, nil
}
