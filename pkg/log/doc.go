// Package log provides the logging abstraction used by motioncalc.
//
// Calculation code depends only on the Logger interface. The CLI wires in
// the zerolog adapter; tests use the no-op logger:
//
//	logger := log.NewZerologAdapterWithLogger(zerolog.New(os.Stderr))
//	logger := log.NewNoopLogger()
package log
