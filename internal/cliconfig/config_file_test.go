package cliconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func ptr[T any](v T) *T { return &v }

func TestApplyFileConfig(t *testing.T) {
	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
		wantErr    bool
	}{
		{
			name: "applies all config values",
			fileConfig: FileConfig{
				BoundingSize:    ptr(3.0),
				Resolution:      ptr(50),
				MaxIterations:   ptr(12),
				EscapeThreshold: ptr(4.0),
				Offset:          ptr(-0.3),
				SamplesPerYield: ptr(500),
				RenderBatchSize: ptr(2048),
				TickInterval:    "5ms",
				HTMLOut:         "bulb.html",
				PNGOut:          "bulb.png",
				DBPath:          "runs.db",
				LogLevel:        "debug",
			},
			changed: map[string]bool{},
			initial: DefaultConfig(),
			expected: Config{
				BoundingSize:    3,
				Resolution:      50,
				MaxIterations:   12,
				EscapeThreshold: 4,
				Offset:          -0.3,
				SamplesPerYield: 500,
				RenderBatchSize: 2048,
				TickInterval:    5 * time.Millisecond,
				HTMLOut:         "bulb.html",
				PNGOut:          "bulb.png",
				DBPath:          "runs.db",
				LogLevel:        "debug",
			},
		},
		{
			name:       "explicit zero iterations is applied",
			fileConfig: FileConfig{MaxIterations: ptr(0)},
			changed:    map[string]bool{},
			initial:    DefaultConfig(),
			expected: func() Config {
				c := DefaultConfig()
				c.MaxIterations = 0
				return c
			}(),
		},
		{
			name:       "absent fields keep defaults",
			fileConfig: FileConfig{},
			changed:    map[string]bool{},
			initial:    DefaultConfig(),
			expected:   DefaultConfig(),
		},
		{
			name: "respects changed flags",
			fileConfig: FileConfig{
				Resolution: ptr(200),
				Offset:     ptr(2.0),
				HTMLOut:    "file.html",
			},
			changed: map[string]bool{"resolution": true, "html-out": true},
			initial: func() Config {
				c := DefaultConfig()
				c.Resolution = 16
				c.HTMLOut = "flag.html"
				return c
			}(),
			expected: func() Config {
				c := DefaultConfig()
				c.Resolution = 16 // unchanged because flag was set
				c.HTMLOut = "flag.html"
				c.Offset = 2.0
				return c
			}(),
		},
		{
			name:       "returns error for invalid duration",
			fileConfig: FileConfig{TickInterval: "soon"},
			changed:    map[string]bool{},
			initial:    DefaultConfig(),
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			err := ApplyFileConfig(&cfg, tt.fileConfig, tt.changed)

			if tt.wantErr {
				if err == nil {
					t.Error("ApplyFileConfig() expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyFileConfig() unexpected error: %v", err)
			}
			if cfg != tt.expected {
				t.Errorf("ApplyFileConfig() = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	tomlContent := `
resolution = 40
max_iterations = 0
escape_threshold = 8.5
tick_interval = "1ms"
html_out = "/tmp/bulb.html"
`

	if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	fc, err := LoadFileConfig(configPath)
	if err != nil {
		t.Fatalf("LoadFileConfig() error = %v", err)
	}

	if fc.Resolution == nil || *fc.Resolution != 40 {
		t.Errorf("Resolution = %v, want 40", fc.Resolution)
	}
	if fc.MaxIterations == nil || *fc.MaxIterations != 0 {
		t.Errorf("MaxIterations = %v, want explicit 0", fc.MaxIterations)
	}
	if fc.EscapeThreshold == nil || *fc.EscapeThreshold != 8.5 {
		t.Errorf("EscapeThreshold = %v, want 8.5", fc.EscapeThreshold)
	}
	if fc.BoundingSize != nil {
		t.Errorf("BoundingSize = %v, want nil", *fc.BoundingSize)
	}
	if fc.TickInterval != "1ms" {
		t.Errorf("TickInterval = %v, want 1ms", fc.TickInterval)
	}
	if fc.HTMLOut != "/tmp/bulb.html" {
		t.Errorf("HTMLOut = %v, want /tmp/bulb.html", fc.HTMLOut)
	}
}

func TestLoadFileConfig_Errors(t *testing.T) {
	if _, err := LoadFileConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("LoadFileConfig() on missing file should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(bad, []byte("resolution = [oops"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFileConfig(bad); err == nil {
		t.Error("LoadFileConfig() on malformed TOML should fail")
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "x.toml")

	if FileExists(p) {
		t.Errorf("FileExists(%s) = true before creation", p)
	}
	if err := os.WriteFile(p, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if !FileExists(p) {
		t.Errorf("FileExists(%s) = false after creation", p)
	}
}
