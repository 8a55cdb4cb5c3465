// Package log provides the logging abstraction used by the bulbplot packages.
//
// Library packages log through the [Logger] interface and default to
// [NoopLogger]. Binaries wire in [ZerologAdapter].
//
//	logger := log.NewZerologAdapterWithLogger(zerolog.New(os.Stderr))
//	logger = log.With(logger, log.String("run_id", id))
//
// # Version
//
// Current version: 1.1.0
// Minimum compatible version: 1.0.0
package log
