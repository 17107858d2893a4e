// Package log provides structured conversion trace logging.
//
// This package defines the Logger interface and Event type for capturing
// conversions, arithmetic and channel reads performed by a catalog.Converter.
// It is separate from operational logging (slog) - a trace is a complete
// machine-readable record of what was converted, from which unit, into which
// unit, and why an operation failed.
//
// # Basic Usage
//
// Applications configure tracing by providing a Logger implementation:
//
//	// For development: log to console via slog
//	conv := catalog.NewConverter(cat, log.NewSlogAdapter(slog.Default()))
//
//	// For production: write to binary file
//	trace, _ := log.NewFileLogger("/var/log/engunit/plant.elog")
//	conv := catalog.NewConverter(cat, trace)
//
//	// Both: use MultiLogger
//	conv := catalog.NewConverter(cat, log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    trace,
//	))
//
// # Event Types
//
// Every event carries the operation (convert, add, sub, read), the domain,
// the input quantity and either the output quantity or the error.
//
// # File Format
//
// Trace files use CBOR encoding with .elog extension. The engunit CLI's log
// command provides viewing and filtering.
package log
