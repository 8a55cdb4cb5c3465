package cliconfig

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bft-labs/bulbplot/internal/domain"
	"github.com/bft-labs/bulbplot/pkg/bulbplot"
)

// Config holds CLI configuration for bulbplot.
type Config struct {
	BoundingSize    float64
	Resolution      int
	MaxIterations   int
	EscapeThreshold float64
	Offset          float64
	SamplesPerYield int
	RenderBatchSize int
	TickInterval    time.Duration

	HTMLOut  string
	PNGOut   string
	DBPath   string
	LogLevel string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	lib := bulbplot.DefaultConfig()
	return Config{
		BoundingSize:    lib.BoundingSize,
		Resolution:      lib.Resolution,
		MaxIterations:   lib.MaxIterations,
		EscapeThreshold: lib.EscapeThreshold,
		Offset:          lib.Offset,
		SamplesPerYield: lib.SamplesPerYield,
		RenderBatchSize: lib.RenderBatchSize,
		TickInterval:    lib.TickInterval,
		LogLevel:        "info",
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if err := c.Library().Validate(); err != nil {
		return err
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return fmt.Errorf("%w: log level %q", domain.ErrInvalidConfig, c.LogLevel)
	}
	return nil
}

// Library converts the CLI configuration to the bulbplot library configuration.
func (c *Config) Library() bulbplot.Config {
	return bulbplot.Config{
		BoundingSize:    c.BoundingSize,
		Resolution:      c.Resolution,
		MaxIterations:   c.MaxIterations,
		EscapeThreshold: c.EscapeThreshold,
		Offset:          c.Offset,
		SamplesPerYield: c.SamplesPerYield,
		RenderBatchSize: c.RenderBatchSize,
		TickInterval:    c.TickInterval,
	}
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if present and flag not changed. Unlike the
// duration and float setters, zero is a meaningful value for some fields
// (iterations), so presence is signalled with a pointer.
func (s *configSetter) setInt(flag string, value *int, dst *int) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setFloat sets a float64 value if present and flag not changed.
func (s *configSetter) setFloat(flag string, value *float64, dst *float64) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = i
	return nil
}

// setFloatFromString parses a string to float64 and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setFloatFromString(flag, value string, dst *float64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = f
	return nil
}
