// Package config loads batch badge definitions from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/UnitVectorY-Labs/badgegenerator/internal/badge"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoBadges is returned when a file defines no badges.
	ErrNoBadges = errors.New("no badges defined")
	// ErrMissingField is returned when a badge lacks a required field.
	ErrMissingField = errors.New("missing required field")
)

// Config is a batch of badges.
type Config struct {
	Defaults Defaults `yaml:"defaults"`
	Badges   []Badge  `yaml:"badges"`
}

// Defaults apply to every badge that does not set the field itself.
type Defaults struct {
	Large       *bool  `yaml:"large"`
	QueryParams *bool  `yaml:"queryParams"`
	Strategy    string `yaml:"strategy"`
	Color       string `yaml:"color"`
	LogoColor   string `yaml:"logoColor"`
}

// Badge is one entry of the batch file.
type Badge struct {
	Label       string `yaml:"label"`
	Message     string `yaml:"message"`
	Color       string `yaml:"color"`
	Large       *bool  `yaml:"large"`
	Target      string `yaml:"target"`
	Logo        string `yaml:"logo"`
	LogoColor   string `yaml:"logoColor"`
	QueryParams *bool  `yaml:"queryParams"`
	Strategy    string `yaml:"strategy"` // "dash" or "query"; wins over queryParams
}

// Load reads and validates a batch file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates YAML batch content.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every badge has a message and, after defaults, a color.
func (c *Config) Validate() error {
	if len(c.Badges) == 0 {
		return ErrNoBadges
	}
	if _, err := badge.ParseStrategy(c.Defaults.Strategy); err != nil {
		return fmt.Errorf("defaults: %w", err)
	}
	for i, b := range c.Badges {
		if _, err := badge.ParseStrategy(b.Strategy); err != nil {
			return fmt.Errorf("badge %d: %w", i, err)
		}
		if b.Message == "" {
			return fmt.Errorf("badge %d: %w: message", i, ErrMissingField)
		}
		if b.Color == "" && c.Defaults.Color == "" {
			return fmt.Errorf("badge %d: %w: color", i, ErrMissingField)
		}
	}
	return nil
}

// Options converts the batch into badge options, in file order.
func (c *Config) Options() []badge.Options {
	opts := make([]badge.Options, 0, len(c.Badges))
	for _, b := range c.Badges {
		o := badge.Options{
			Label:           b.Label,
			Message:         b.Message,
			Color:           firstNonEmpty(b.Color, c.Defaults.Color),
			IsLarge:         boolOr(b.Large, c.Defaults.Large),
			Target:          b.Target,
			Logo:            b.Logo,
			LogoColor:       firstNonEmpty(b.LogoColor, c.Defaults.LogoColor),
			OnlyQueryParams: c.strategy(b) == badge.QueryParams,
		}
		opts = append(opts, o)
	}
	return opts
}

// strategy resolves the badge's URL strategy. A strategy name beats the
// queryParams flag, and a badge's own setting beats the defaults.
func (c *Config) strategy(b Badge) badge.Strategy {
	if b.Strategy != "" {
		s, _ := badge.ParseStrategy(b.Strategy)
		return s
	}
	if b.QueryParams != nil {
		return strategyOf(*b.QueryParams)
	}
	if c.Defaults.Strategy != "" {
		s, _ := badge.ParseStrategy(c.Defaults.Strategy)
		return s
	}
	return strategyOf(boolOr(nil, c.Defaults.QueryParams))
}

func strategyOf(queryParams bool) badge.Strategy {
	if queryParams {
		return badge.QueryParams
	}
	return badge.DashPath
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func boolOr(v, fallback *bool) bool {
	if v != nil {
		return *v
	}
	if fallback != nil {
		return *fallback
	}
	return false
}
