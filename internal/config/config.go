package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/numkit/internal/calculus"
	"github.com/san-kum/numkit/internal/numeric"
)

const (
	DefaultPrecision  = numeric.DefaultPrecision
	DefaultStep       = "1e-25"
	DefaultIterations = 10
	DefaultDataDir    = ".numkit"
	DefaultLogLevel   = "info"
)

type Config struct {
	Precision  int    `yaml:"precision"`
	Step       string `yaml:"step"`
	Round      bool   `yaml:"round"`
	Iterations int    `yaml:"iterations"`
	DataDir    string `yaml:"data_dir"`
	LogLevel   string `yaml:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		Precision:  DefaultPrecision,
		Step:       DefaultStep,
		Round:      true,
		Iterations: DefaultIterations,
		DataDir:    DefaultDataDir,
		LogLevel:   DefaultLogLevel,
	}
}

// Load reads a YAML file over the defaults, so omitted keys keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if _, err := c.DerivativeOptions(); err != nil {
		return err
	}
	if c.Iterations < 0 {
		return fmt.Errorf("%w: iterations must be non-negative, got %d", numeric.ErrInvalidArgument, c.Iterations)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// DerivativeOptions converts the numeric settings into calculus options.
func (c *Config) DerivativeOptions() (calculus.Options, error) {
	step, err := numeric.Parse(c.Step)
	if err != nil {
		return calculus.Options{}, fmt.Errorf("step: %w", err)
	}
	opts := calculus.Options{Step: step, Precision: c.Precision, Round: c.Round}
	if err := opts.Validate(); err != nil {
		return calculus.Options{}, err
	}
	return opts, nil
}

func (c *Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: log level %q", numeric.ErrInvalidArgument, c.LogLevel)
	}
	return lvl, nil
}
