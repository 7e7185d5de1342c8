// Package logging assembles the structured slog loggers used across mtag.
//
// It owns the console and JSON handler setup, centralizes level and output
// plumbing, and exposes attr helpers so importer code tags log lines with
// file paths, entry indexes, and run IDs in a consistent shape. A no-op
// logger is provided for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits data with the same shape and routing.
package logging
