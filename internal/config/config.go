// Package config resolves command defaults from an optional TOML file and
// CONTRACTDIFF_* environment variables. Command line flags are applied on
// top by the caller.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/erraggy/contractdiff/oaserrors"
	"github.com/erraggy/contractdiff/report"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap/zapcore"
)

const (
	// DefaultFileName is read from the working directory when no path is given.
	DefaultFileName = ".contractdiff.toml"
	// DefaultOldSpec is the baseline contract used when none is configured.
	DefaultOldSpec = "contracts/openapi/public-v1.json"
	// DefaultLogLevel keeps reports on stdout free of log noise.
	DefaultLogLevel = "warn"

	envPrefix = "CONTRACTDIFF_"
)

// Config holds the defaults for a diff run.
type Config struct {
	OldSpec  string `toml:"old_spec"`
	Format   string `toml:"format"`
	Strict   bool   `toml:"strict"`
	Validate bool   `toml:"validate"`
	LogLevel string `toml:"log_level"`

	// Source is the file the configuration was read from, or "" for defaults.
	Source string `toml:"-"`
	// Warnings lists ignored environment values. They are reported once a
	// logger exists.
	Warnings []string `toml:"-"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		OldSpec:  DefaultOldSpec,
		Format:   report.FormatText,
		LogLevel: DefaultLogLevel,
	}
}

// Load reads path (or DefaultFileName when path is empty) and applies
// environment overrides read through getenv. A missing default file is not an
// error; a missing explicit file is. getenv defaults to os.Getenv.
func Load(path string, getenv func(string) string) (*Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}

	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		cfg = Default()
	}

	cfg.applyEnv(getenv)
	return cfg, nil
}

// LoadFromFile parses a TOML configuration file. Unset keys keep their
// defaults and unknown keys are rejected.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: config path is chosen by the user
	if err != nil {
		return nil, &oaserrors.ConfigError{Option: "config", Value: path, Message: "cannot read config file", Cause: err}
	}

	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, &oaserrors.ConfigError{Option: "config", Value: path, Message: "invalid TOML", Cause: err}
	}
	cfg.Source = path

	if err := cfg.Check(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Check verifies the format, log level and baseline path values.
func (c *Config) Check() error {
	if err := report.ValidateFormat(c.Format); err != nil {
		return &oaserrors.ConfigError{Option: "format", Value: c.Format, Cause: err}
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return &oaserrors.ConfigError{Option: "log_level", Value: c.LogLevel, Cause: err}
	}
	if strings.TrimSpace(c.OldSpec) == "" {
		return &oaserrors.ConfigError{Option: "old_spec", Message: "must not be empty"}
	}
	return nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	if v := getenv(envPrefix + "OLD_SPEC"); v != "" {
		c.OldSpec = v
	}
	c.Format = c.envChoice(getenv, "FORMAT", c.Format, func(v string) bool {
		return report.ValidateFormat(v) == nil
	})
	c.LogLevel = c.envChoice(getenv, "LOG_LEVEL", c.LogLevel, func(v string) bool {
		_, err := zapcore.ParseLevel(v)
		return err == nil
	})
	c.Strict = c.envBool(getenv, "STRICT", c.Strict)
	c.Validate = c.envBool(getenv, "VALIDATE", c.Validate)
}

func (c *Config) envBool(getenv func(string) string, name string, fallback bool) bool {
	key := envPrefix + name
	v := getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		c.warnf("invalid bool %s=%q, using %t", key, v, fallback)
		return fallback
	}
	return b
}

func (c *Config) envChoice(getenv func(string) string, name, fallback string, valid func(string) bool) string {
	key := envPrefix + name
	v := getenv(key)
	if v == "" {
		return fallback
	}
	if !valid(v) {
		c.warnf("invalid value %s=%q, using %q", key, v, fallback)
		return fallback
	}
	return v
}

func (c *Config) warnf(format string, args ...any) {
	c.Warnings = append(c.Warnings, fmt.Sprintf(format, args...))
}
