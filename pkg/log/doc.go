// Package log provides the logging abstraction used by tenpin.
//
// A [Logger] only needs four leveled methods taking a message and
// structured fields. The bowling package logs through it and never imports
// a logging library directly.
//
// Wrap zerolog:
//
//	logger := log.NewZerologAdapterWithLogger(zerolog.New(os.Stderr))
//
// Or discard everything:
//
//	logger := log.NewNoopLogger()
//
// # Version
//
// Current version: 1.0.0
package log
