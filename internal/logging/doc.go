// Package logging assembles the structured slog loggers used across spdxer.
//
// It owns the console (tint) and JSON handler construction, centralizes level
// parsing, and provides a no-op logger for tests and wiring code that cannot
// fail. Prefer these constructors over hand-rolled slog setup so every
// component emits data with the same shape.
package logging
