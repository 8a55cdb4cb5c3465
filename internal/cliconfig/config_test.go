package cliconfig

import (
	"errors"
	"testing"
	"time"

	"github.com/bft-labs/bulbplot/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.BoundingSize != 4 {
		t.Errorf("BoundingSize = %v, want 4", cfg.BoundingSize)
	}
	if cfg.Resolution != 10 {
		t.Errorf("Resolution = %v, want 10", cfg.Resolution)
	}
	if cfg.MaxIterations != 8 {
		t.Errorf("MaxIterations = %v, want 8", cfg.MaxIterations)
	}
	if cfg.EscapeThreshold != 20 {
		t.Errorf("EscapeThreshold = %v, want 20", cfg.EscapeThreshold)
	}
	if cfg.Offset != 1.2 {
		t.Errorf("Offset = %v, want 1.2", cfg.Offset)
	}
	if cfg.SamplesPerYield != 30 {
		t.Errorf("SamplesPerYield = %v, want 30", cfg.SamplesPerYield)
	}
	if cfg.RenderBatchSize != 10000 {
		t.Errorf("RenderBatchSize = %v, want 10000", cfg.RenderBatchSize)
	}
	if cfg.TickInterval != 16*time.Millisecond {
		t.Errorf("TickInterval = %v, want 16ms", cfg.TickInterval)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero iterations allowed", func(c *Config) { c.MaxIterations = 0 }, false},
		{"negative offset allowed", func(c *Config) { c.Offset = -0.5 }, false},
		{"zero tick allowed", func(c *Config) { c.TickInterval = 0 }, false},
		{"debug level", func(c *Config) { c.LogLevel = "DEBUG" }, false},
		{"zero resolution", func(c *Config) { c.Resolution = 0 }, true},
		{"zero bounding size", func(c *Config) { c.BoundingSize = 0 }, true},
		{"zero samples per yield", func(c *Config) { c.SamplesPerYield = 0 }, true},
		{"negative threshold", func(c *Config) { c.EscapeThreshold = -1 }, true},
		{"zero render batch", func(c *Config) { c.RenderBatchSize = 0 }, true},
		{"unknown log level", func(c *Config) { c.LogLevel = "loud" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, domain.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfig_Library(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Resolution = 64
	cfg.Offset = 0.9
	cfg.TickInterval = time.Second

	lib := cfg.Library()
	if lib.Resolution != 64 || lib.Offset != 0.9 || lib.TickInterval != time.Second {
		t.Errorf("Library() = %+v, fields not carried over", lib)
	}
	if err := lib.Validate(); err != nil {
		t.Errorf("Library().Validate() = %v", err)
	}
}

func TestLogger_FallsBackToInfo(t *testing.T) {
	if got := Logger("nonsense").GetLevel(); got.String() != "info" {
		t.Errorf("level = %v, want info", got)
	}
	if got := Logger("warn").GetLevel(); got.String() != "warn" {
		t.Errorf("level = %v, want warn", got)
	}
}
