// Package log provides structured observer event logging for cellwatch.
//
// This package defines the Logger interface and Event types for capturing
// what the connectivity observer does: lifecycle transitions, subscription
// rebinding, override and capability updates, and every published status.
// It is separate from operational logging (slog) - event capture provides
// a complete machine-readable trace for debugging and analysis.
//
// # Basic Usage
//
// Applications configure logging by providing a Logger implementation:
//
//	// For development: log to console via slog
//	cfg.EventLogger = log.NewSlogAdapter(slog.Default())
//
//	// For field traces: write to binary file
//	cfg.EventLogger, _ = log.NewFileLogger("/tmp/cellwatch.clog")
//
//	// Both: use MultiLogger
//	cfg.EventLogger = log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # Event Types
//
// Events carry a Source (which watcher or the host produced it) and a
// Category. Exactly one payload is set per event: LifecycleEvent,
// BindingEvent, OverrideEvent, CapabilitiesEvent, StatusEvent or
// ErrorEventData.
//
// # File Format
//
// Log files use CBOR encoding with .clog extension. The cellwatch-log CLI
// tool provides viewing, statistics and export.
package log
