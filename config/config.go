// Package config loads longhorn settings from defaults, an optional YAML
// file and LONGHORN_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Environment variable names.
const (
	EnvLogLevel      = "LONGHORN_LOG_LEVEL"
	EnvLogFormat     = "LONGHORN_LOG_FORMAT"
	EnvData          = "LONGHORN_DATA"
	EnvCase          = "LONGHORN_CASE"
	EnvPodSize       = "LONGHORN_POD_SIZE"
	EnvSocialWorkers = "LONGHORN_SOCIAL_WORKERS"
	EnvCostBase      = "LONGHORN_COST_BASE"
)

// Config contains all longhorn settings.
type Config struct {
	// Logging controls the zap logger built by the logging package.
	Logging Logging `json:"logging" yaml:"logging"`

	// Data is a population file to load. Empty means use a built-in case.
	Data string `json:"data" yaml:"data"`

	// Case is the built-in test case loaded when Data is empty (1-based).
	Case int `json:"case" yaml:"case"`

	// PodSize is the default pod size for the pods command.
	PodSize int `json:"pod_size" yaml:"pod_size"`

	// SocialWorkers bounds the goroutines running friend and chat tasks.
	SocialWorkers int `json:"social_workers" yaml:"social_workers"`

	// CostBase is the value referral edge costs are derived from.
	CostBase int64 `json:"cost_base" yaml:"cost_base"`
}

// Logging configures the process logger.
type Logging struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level" yaml:"level"`

	// Format is "json" or "console".
	Format string `json:"format" yaml:"format"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Logging: Logging{
			Level:  "info",
			Format: "console",
		},
		Case:          1,
		PodSize:       3,
		SocialWorkers: 4,
		CostBase:      10,
	}
}

// Load builds the configuration: defaults, then path (if non-empty), then
// environment overrides. The result is validated.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromFile reads a YAML file over the defaults. It does not validate.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs error
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = multierr.Append(errs, fmt.Errorf("%w: log level %q (valid: debug, info, warn, error)", ErrInvalid, c.Logging.Level))
	}
	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		errs = multierr.Append(errs, fmt.Errorf("%w: log format %q (valid: json, console)", ErrInvalid, c.Logging.Format))
	}
	if c.Case < 1 {
		errs = multierr.Append(errs, fmt.Errorf("%w: case must be at least 1, got %d", ErrInvalid, c.Case))
	}
	if c.PodSize < 1 {
		errs = multierr.Append(errs, fmt.Errorf("%w: pod_size must be at least 1, got %d", ErrInvalid, c.PodSize))
	}
	if c.SocialWorkers < 1 {
		errs = multierr.Append(errs, fmt.Errorf("%w: social_workers must be at least 1, got %d", ErrInvalid, c.SocialWorkers))
	}
	if c.CostBase < 1 {
		errs = multierr.Append(errs, fmt.Errorf("%w: cost_base must be at least 1, got %d", ErrInvalid, c.CostBase))
	}

	return errs
}

var validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

func applyEnvOverrides(c *Config) error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv(EnvData); v != "" {
		c.Data = v
	}

	var errs error
	errs = multierr.Append(errs, envInt(EnvCase, &c.Case))
	errs = multierr.Append(errs, envInt(EnvPodSize, &c.PodSize))
	errs = multierr.Append(errs, envInt(EnvSocialWorkers, &c.SocialWorkers))
	if v := os.Getenv(EnvCostBase); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalid, EnvCostBase, v))
		} else {
			c.CostBase = n
		}
	}

	return errs
}

func envInt(name string, dst *int) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalid, name, v)
	}
	*dst = n

	return nil
}
