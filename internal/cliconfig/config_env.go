package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (BULBPLOT_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	if err := s.setFloatFromString("bounding-size", os.Getenv("BULBPLOT_BOUNDING_SIZE"), &cfg.BoundingSize); err != nil {
		return err
	}
	if err := s.setIntFromString("resolution", os.Getenv("BULBPLOT_RESOLUTION"), &cfg.Resolution); err != nil {
		return err
	}
	if err := s.setIntFromString("iterations", os.Getenv("BULBPLOT_MAX_ITERATIONS"), &cfg.MaxIterations); err != nil {
		return err
	}
	if err := s.setFloatFromString("threshold", os.Getenv("BULBPLOT_ESCAPE_THRESHOLD"), &cfg.EscapeThreshold); err != nil {
		return err
	}
	if err := s.setFloatFromString("offset", os.Getenv("BULBPLOT_OFFSET"), &cfg.Offset); err != nil {
		return err
	}
	if err := s.setIntFromString("samples-per-yield", os.Getenv("BULBPLOT_SAMPLES_PER_YIELD"), &cfg.SamplesPerYield); err != nil {
		return err
	}
	if err := s.setIntFromString("render-batch-size", os.Getenv("BULBPLOT_RENDER_BATCH_SIZE"), &cfg.RenderBatchSize); err != nil {
		return err
	}
	if err := s.setDuration("tick", os.Getenv("BULBPLOT_TICK_INTERVAL"), &cfg.TickInterval); err != nil {
		return err
	}

	s.setString("html-out", os.Getenv("BULBPLOT_HTML_OUT"), &cfg.HTMLOut)
	s.setString("png-out", os.Getenv("BULBPLOT_PNG_OUT"), &cfg.PNGOut)
	s.setString("db-path", os.Getenv("BULBPLOT_DB_PATH"), &cfg.DBPath)
	s.setString("log-level", os.Getenv("BULBPLOT_LOG_LEVEL"), &cfg.LogLevel)

	return nil
}
