// Package logging assembles structured slog loggers used across reelpub.
//
// It owns the console and JSON handlers, level parsing, and output routing
// (stderr plus an optional log file), and exposes context-aware helpers so
// pipeline code can tag lines with the run ID, stage, and asset filename.
// A no-op logger is provided for tests and wiring code that cannot fail.
package logging
