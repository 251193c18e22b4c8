// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Environment represents the deployment environment.
type Environment string

const (
	// Development is for local development machines.
	Development Environment = "development"
	// Staging is for pre-production testing.
	Staging Environment = "staging"
	// Production is for production deployments.
	Production Environment = "production"
)

// Config is the master configuration for the paramkit tool.
type Config struct {
	// Environment identifies the deployment type (development, staging, production).
	Environment Environment `yaml:"environment"`

	// Paths configures directory locations.
	Paths PathsConfig `yaml:"paths"`

	// Log configures the command logger.
	Log LogConfig `yaml:"log"`

	// Output configures how inspection commands render results.
	Output OutputConfig `yaml:"output"`

	// Tracing configures span export for command executions.
	Tracing TracingConfig `yaml:"tracing"`

	// EnvironmentOverrides contains per-environment overrides.
	// These are applied after the base config is loaded.
	Development *ConfigOverrides `yaml:"development,omitempty"`
	Staging     *ConfigOverrides `yaml:"staging,omitempty"`
	Production  *ConfigOverrides `yaml:"production,omitempty"`
}

// ConfigOverrides contains fields that can be overridden per environment.
type ConfigOverrides struct {
	Paths   *PathsConfig   `yaml:"paths,omitempty"`
	Log     *LogConfig     `yaml:"log,omitempty"`
	Output  *OutputConfig  `yaml:"output,omitempty"`
	Tracing *TracingConfig `yaml:"tracing,omitempty"`
}

// PathsConfig configures directory locations.
type PathsConfig struct {
	// Root is the base directory for paramkit data.
	Root string `yaml:"root"`

	// Manifests is where "paramkit manifest" writes catalog exports
	// when --output names a bare file.
	Manifests string `yaml:"manifests"`
}

// LogConfig configures the command logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`

	// Format is auto, text, or json. Auto picks text on a terminal and
	// json otherwise.
	Format string `yaml:"format"`

	// File, when set, receives log records instead of stderr. The file
	// is rotated by size.
	File string `yaml:"file"`

	MaxSizeMB  int  `yaml:"max_size_mb"`
	MaxBackups int  `yaml:"max_backups"`
	MaxAgeDays int  `yaml:"max_age_days"`
	Compress   bool `yaml:"compress"`
}

// OutputConfig configures result rendering.
type OutputConfig struct {
	// Format is text, json, yaml, cbor, or diag.
	Format string `yaml:"format"`

	// Color is auto, always, or never.
	Color string `yaml:"color"`
}

// TracingConfig configures span export.
type TracingConfig struct {
	// Enabled installs a tracer provider that logs finished spans at
	// debug level.
	Enabled bool `yaml:"enabled"`
}

// environmentVariables is the process-environment overlay. Unset
// variables leave the loaded value alone.
type environmentVariables struct {
	Environment  string `env:"PARAMKIT_ENVIRONMENT"`
	Root         string `env:"PARAMKIT_ROOT"`
	LogLevel     string `env:"PARAMKIT_LOG_LEVEL"`
	LogFormat    string `env:"PARAMKIT_LOG_FORMAT"`
	LogFile      string `env:"PARAMKIT_LOG_FILE"`
	OutputFormat string `env:"PARAMKIT_OUTPUT_FORMAT"`
	OutputColor  string `env:"PARAMKIT_COLOR"`
	Tracing      *bool  `env:"PARAMKIT_TRACING"`
}

var (
	logLevels     = []string{"debug", "info", "warn", "error"}
	logFormats    = []string{"auto", "text", "json"}
	outputFormats = []string{"text", "json", "yaml", "cbor", "diag"}
	colorModes    = []string{"auto", "always", "never"}
)

// Default returns the default configuration.
// These defaults are used as a base before loading the config file.
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultRoot := filepath.Join(homeDir, ".cache", "paramkit")

	return &Config{
		Environment: Development,
		Paths: PathsConfig{
			Root:      defaultRoot,
			Manifests: filepath.Join(defaultRoot, "manifests"),
		},
		Log: LogConfig{
			Level:      "info",
			Format:     "auto",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		Output: OutputConfig{
			Format: "text",
			Color:  "auto",
		},
	}
}

// Load loads configuration from the file named by PARAMKIT_CONFIG.
//
// When PARAMKIT_CONFIG is unset the defaults are used, still subject to
// environment overrides and PARAMKIT_* variables.
func Load() (*Config, error) {
	configPath := os.Getenv("PARAMKIT_CONFIG")
	if configPath == "" {
		cfg := Default()
		if err := cfg.finish(); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path.
//
// Files ending in .json or .jsonc may carry comments and trailing
// commas; everything else is parsed as YAML. After the file, the
// section for the active environment is applied, then PARAMKIT_*
// variables, then ${VAR} expansion in paths.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}
	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile loads a single configuration file, merging into the current config.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		data = jsonc.ToJSON(data)
	}

	// JSON is a subset of YAML, so one decoder serves both.
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

func (c *Config) finish() error {
	var variables environmentVariables
	if err := env.Parse(&variables); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	// The environment must be final before its section is chosen.
	if variables.Environment != "" {
		c.Environment = Environment(variables.Environment)
	}
	c.applyEnvironmentOverrides()
	c.applyVariables(variables)
	c.expandVariables()
	return nil
}

// applyEnvironmentOverrides applies the environment-specific overrides.
func (c *Config) applyEnvironmentOverrides() {
	var overrides *ConfigOverrides

	switch c.Environment {
	case Development:
		overrides = c.Development
	case Staging:
		overrides = c.Staging
	case Production:
		overrides = c.Production
		// Production defaults: machine-readable logs.
		if overrides == nil {
			overrides = &ConfigOverrides{
				Log: &LogConfig{Format: "json"},
			}
		}
	}

	if overrides == nil {
		return
	}

	if overrides.Paths != nil {
		if overrides.Paths.Root != "" {
			c.Paths.Root = overrides.Paths.Root
		}
		if overrides.Paths.Manifests != "" {
			c.Paths.Manifests = overrides.Paths.Manifests
		}
	}

	if overrides.Log != nil {
		if overrides.Log.Level != "" {
			c.Log.Level = overrides.Log.Level
		}
		if overrides.Log.Format != "" {
			c.Log.Format = overrides.Log.Format
		}
		if overrides.Log.File != "" {
			c.Log.File = overrides.Log.File
		}
		if overrides.Log.MaxSizeMB != 0 {
			c.Log.MaxSizeMB = overrides.Log.MaxSizeMB
		}
		if overrides.Log.MaxBackups != 0 {
			c.Log.MaxBackups = overrides.Log.MaxBackups
		}
		if overrides.Log.MaxAgeDays != 0 {
			c.Log.MaxAgeDays = overrides.Log.MaxAgeDays
		}
		c.Log.Compress = c.Log.Compress || overrides.Log.Compress
	}

	if overrides.Output != nil {
		if overrides.Output.Format != "" {
			c.Output.Format = overrides.Output.Format
		}
		if overrides.Output.Color != "" {
			c.Output.Color = overrides.Output.Color
		}
	}

	// Enabled is a bool, so we always apply it from overrides.
	if overrides.Tracing != nil {
		c.Tracing.Enabled = overrides.Tracing.Enabled
	}
}

func (c *Config) applyVariables(variables environmentVariables) {
	if variables.Root != "" {
		c.Paths.Root = variables.Root
	}
	if variables.LogLevel != "" {
		c.Log.Level = variables.LogLevel
	}
	if variables.LogFormat != "" {
		c.Log.Format = variables.LogFormat
	}
	if variables.LogFile != "" {
		c.Log.File = variables.LogFile
	}
	if variables.OutputFormat != "" {
		c.Output.Format = variables.OutputFormat
	}
	if variables.OutputColor != "" {
		c.Output.Color = variables.OutputColor
	}
	if variables.Tracing != nil {
		c.Tracing.Enabled = *variables.Tracing
	}
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in paths.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"PARAMKIT_ROOT": c.Paths.Root,
		"HOME":          os.Getenv("HOME"),
	}

	c.Paths.Root = expandVars(c.Paths.Root, vars)
	vars["PARAMKIT_ROOT"] = c.Paths.Root // Update for dependent paths.

	c.Paths.Manifests = expandVars(c.Paths.Manifests, vars)
	c.Log.File = expandVars(c.Log.File, vars)
}

// expandVars expands ${VAR} and ${VAR:-default} patterns.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Check provided vars first, then environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors. Every problem is
// reported, not just the first.
func (c *Config) Validate() error {
	var errs []error

	if c.Environment != Development && c.Environment != Staging && c.Environment != Production {
		errs = append(errs, fmt.Errorf("invalid environment: %s", c.Environment))
	}

	if c.Paths.Root == "" {
		errs = append(errs, fmt.Errorf("paths.root is required"))
	}

	if !slices.Contains(logLevels, c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level must be one of: %v", logLevels))
	}
	if !slices.Contains(logFormats, c.Log.Format) {
		errs = append(errs, fmt.Errorf("log.format must be one of: %v", logFormats))
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		errs = append(errs, fmt.Errorf("log rotation limits must not be negative"))
	}

	if !slices.Contains(outputFormats, c.Output.Format) {
		errs = append(errs, fmt.Errorf("output.format must be one of: %v", outputFormats))
	}
	if !slices.Contains(colorModes, c.Output.Color) {
		errs = append(errs, fmt.Errorf("output.color must be one of: %v", colorModes))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// SlogLevel returns the configured log level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

// EnsurePaths creates all configured directories if they don't exist.
func (c *Config) EnsurePaths() error {
	paths := []string{
		c.Paths.Root,
		c.Paths.Manifests,
	}
	if c.Log.File != "" {
		paths = append(paths, filepath.Dir(c.Log.File))
	}

	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := os.MkdirAll(path, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
	}

	return nil
}
