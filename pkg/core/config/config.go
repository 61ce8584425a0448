// ============================================================================
// mcalc - Console Calculator
// ============================================================================
//
// Package:     config
// Description: TOML/YAML configuration loading with defaults and validation
// Author:      Mike Stoffels
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/msto63/mcalc/internal/calculator"
	"github.com/msto63/mcalc/pkg/core/logging"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable pointing at a config file
const EnvConfigPath = "MCALC_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General    GeneralConfig    `toml:"general" yaml:"general"`
	Calculator CalculatorConfig `toml:"calculator" yaml:"calculator"`
	UI         UIConfig         `toml:"ui" yaml:"ui"`

	// path the config was loaded from, empty for defaults
	source string
}

// GeneralConfig holds logging settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
	LogFile   string `toml:"log_file" yaml:"log_file"`
}

// CalculatorConfig holds calculator defaults
type CalculatorConfig struct {
	Variant   string `toml:"variant" yaml:"variant"`
	AngleMode string `toml:"angle_mode" yaml:"angle_mode"`
}

// UIConfig holds rendering settings
type UIConfig struct {
	Color  *bool  `toml:"color" yaml:"color"`
	Prompt string `toml:"prompt" yaml:"prompt"`
}

// Default returns the configuration used when no file is found
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a file on the OS filesystem
func Load(path string) (*Config, error) {
	return LoadFs(afero.NewOsFs(), path)
}

// LoadFs loads configuration from path on fs. The format follows the file
// extension: .yaml/.yml use YAML, everything else TOML.
func LoadFs(fs afero.Fs, path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	cfg.source = path

	return &cfg, nil
}

// Discover loads the explicit path if given, otherwise the first existing
// file among $MCALC_CONFIG and the default locations. Without any file
// the defaults are returned.
func Discover(fs afero.Fs, explicit string) (*Config, error) {
	if explicit != "" {
		return LoadFs(fs, explicit)
	}

	if path := os.Getenv(EnvConfigPath); path != "" {
		return LoadFs(fs, path)
	}

	for _, p := range DefaultPaths() {
		if ok, _ := afero.Exists(fs, p); ok {
			return LoadFs(fs, p)
		}
	}

	return Default(), nil
}

// DefaultPaths lists the locations searched by Discover
func DefaultPaths() []string {
	paths := []string{
		"./configs/mcalc.toml",
		"./mcalc.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "mcalc", "config.toml"))
	}
	return paths
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}
	if c.Calculator.Variant == "" {
		c.Calculator.Variant = calculator.Advanced.String()
	}
	if c.Calculator.AngleMode == "" {
		c.Calculator.AngleMode = "degrees"
	}
	if c.UI.Color == nil {
		color := true
		c.UI.Color = &color
	}
}

// Validate checks the enumerated settings
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.General.LogLevel); err != nil {
		return err
	}
	switch c.General.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format: %q", c.General.LogFormat)
	}
	if _, err := calculator.ParseVariant(c.Calculator.Variant); err != nil {
		return err
	}
	if _, err := calculator.ParseAngleMode(c.Calculator.AngleMode); err != nil {
		return err
	}
	return nil
}

// Variant returns the configured calculator variant
func (c *Config) Variant() calculator.Variant {
	v, _ := calculator.ParseVariant(c.Calculator.Variant)
	return v
}

// AngleMode returns the configured initial angle mode
func (c *Config) AngleMode() calculator.AngleMode {
	m, _ := calculator.ParseAngleMode(c.Calculator.AngleMode)
	return m
}

// ColorEnabled reports whether styled output is allowed
func (c *Config) ColorEnabled() bool {
	return c.UI.Color == nil || *c.UI.Color
}

// Source returns the file the config was loaded from, or ""
func (c *Config) Source() string {
	return c.source
}

// LoggerConfig derives the logger configuration for a component
func (c *Config) LoggerConfig(serviceName string) logging.LoggerConfig {
	cfg := logging.DefaultLoggerConfig(serviceName)
	cfg.Level = c.General.LogLevel
	cfg.Format = c.General.LogFormat
	return cfg
}
