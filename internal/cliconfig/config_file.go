package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config for TOML. Numeric fields are pointers so that an
// explicit zero (e.g. max_iterations = 0) is distinguishable from absence.
type FileConfig struct {
	BoundingSize    *float64 `toml:"bounding_size"`
	Resolution      *int     `toml:"resolution"`
	MaxIterations   *int     `toml:"max_iterations"`
	EscapeThreshold *float64 `toml:"escape_threshold"`
	Offset          *float64 `toml:"offset"`
	SamplesPerYield *int     `toml:"samples_per_yield"`
	RenderBatchSize *int     `toml:"render_batch_size"`
	TickInterval    string   `toml:"tick_interval"`
	HTMLOut         string   `toml:"html_out"`
	PNGOut          string   `toml:"png_out"`
	DBPath          string   `toml:"db_path"`
	LogLevel        string   `toml:"log_level"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.bulbplot/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".bulbplot", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setFloat("bounding-size", fc.BoundingSize, &cfg.BoundingSize)
	s.setInt("resolution", fc.Resolution, &cfg.Resolution)
	s.setInt("iterations", fc.MaxIterations, &cfg.MaxIterations)
	s.setFloat("threshold", fc.EscapeThreshold, &cfg.EscapeThreshold)
	s.setFloat("offset", fc.Offset, &cfg.Offset)
	s.setInt("samples-per-yield", fc.SamplesPerYield, &cfg.SamplesPerYield)
	s.setInt("render-batch-size", fc.RenderBatchSize, &cfg.RenderBatchSize)

	if err := s.setDuration("tick", fc.TickInterval, &cfg.TickInterval); err != nil {
		return err
	}

	s.setString("html-out", fc.HTMLOut, &cfg.HTMLOut)
	s.setString("png-out", fc.PNGOut, &cfg.PNGOut)
	s.setString("db-path", fc.DBPath, &cfg.DBPath)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
