// Package config handles loading and validation of the dateutil CLI configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sgaunet/dateutil/pkg/dateutil"
	"github.com/sgaunet/dateutil/pkg/locale"
	"github.com/sgaunet/dateutil/pkg/pattern"
	"gopkg.in/yaml.v3"
)

// Default values applied to fields missing from the configuration file.
const (
	DefaultLocale = "en-US"
	DefaultStyle  = "medium"
	DefaultUnit   = "hours"
)

// Environment variables overriding the configuration file.
const (
	EnvLocale  = "DATEUTIL_LOCALE"
	EnvStyle   = "DATEUTIL_STYLE"
	EnvUnit    = "DATEUTIL_UNIT"
	EnvPattern = "DATEUTIL_PATTERN"
)

var (
	// ErrConfigNotFound is returned when an explicitly requested file does not exist.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrInvalidLocale is returned when locale is not a BCP 47 tag.
	ErrInvalidLocale = errors.New("locale is not a valid language tag")

	// ErrInvalidStyle is returned when style is not short, medium, long or full.
	ErrInvalidStyle = errors.New("style must be one of short, medium, long, full")

	// ErrInvalidUnit is returned when unit is not days, hours, minutes or seconds.
	ErrInvalidUnit = errors.New("unit must be one of days, hours, minutes, seconds")

	// ErrInvalidPattern is returned when pattern does not compile.
	ErrInvalidPattern = errors.New("pattern is not a valid date-time pattern")
)

// Config represents the complete configuration for dateutil.
type Config struct {
	Locale  string `yaml:"locale"`
	Style   string `yaml:"style"`
	Unit    string `yaml:"unit"`
	Pattern string `yaml:"pattern"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Locale:  DefaultLocale,
		Style:   DefaultStyle,
		Unit:    DefaultUnit,
		Pattern: dateutil.DefaultPattern,
	}
}

// DefaultPath returns ~/.config/dateutil/config.yml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "dateutil", "config.yml"), nil
}

// Load reads the configuration file from the user's home directory.
// A missing file is not an error: the defaults are used. DATEUTIL_*
// environment variables override both.
func Load() (*Config, error) {
	configPath, err := DefaultPath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		config := Default()
		config.ApplyEnv()
		if err := config.Validate(); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
		return config, nil
	}
	return LoadFile(configPath)
}

// LoadFile reads and validates the configuration file at configPath.
// Fields absent from the file keep their default values.
func LoadFile(configPath string) (*Config, error) {
	// #nosec G304 - the path comes from the user's own flag or home directory
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	config.ApplyEnv()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// LoadDotEnv adds the variables of a .env file to the environment.
// Variables already set are kept. A missing file is ignored.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields with the non-empty DATEUTIL_* variables.
func (c *Config) ApplyEnv() {
	for name, field := range map[string]*string{
		EnvLocale:  &c.Locale,
		EnvStyle:   &c.Style,
		EnvUnit:    &c.Unit,
		EnvPattern: &c.Pattern,
	} {
		if v := os.Getenv(name); v != "" {
			*field = v
		}
	}
}

// Validate checks that every field holds a usable value.
func (c *Config) Validate() error {
	if _, err := c.ResolveLocale(); err != nil {
		return err
	}
	if _, err := c.ResolveStyle(); err != nil {
		return err
	}
	if _, err := c.ResolveUnit(); err != nil {
		return err
	}
	if _, err := c.Formatter(); err != nil {
		return err
	}
	return nil
}

// ResolveLocale returns the supported locale closest to c.Locale.
func (c *Config) ResolveLocale() (*locale.Locale, error) {
	loc, err := locale.Parse(c.Locale)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLocale, c.Locale)
	}
	return loc, nil
}

// ResolveStyle returns the configured style.
func (c *Config) ResolveStyle() (locale.Style, error) {
	style, err := locale.ParseStyle(c.Style)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidStyle, c.Style)
	}
	return style, nil
}

// ResolveUnit returns the configured difference unit.
func (c *Config) ResolveUnit() (dateutil.Unit, error) {
	unit, err := dateutil.ParseUnit(c.Unit)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidUnit, c.Unit)
	}
	return unit, nil
}

// Formatter compiles the configured output pattern.
func (c *Config) Formatter() (*pattern.Formatter, error) {
	if strings.TrimSpace(c.Pattern) == "" {
		return nil, fmt.Errorf("%w: empty pattern", ErrInvalidPattern)
	}
	f, err := pattern.Compile(c.Pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}
	return f, nil
}
