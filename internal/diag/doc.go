// Package diag defines the diagnostic model shared by the lexer, parser and
// formatter.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity: tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code: compact numeric identifier (see codes.go) with stable string form.
//   - Message: human oriented text; keep it short and actionable.
//   - Primary span: the canonical source.Span pointing to the issue.
//   - Notes: optional secondary spans/messages for additional context.
//
// # Emitting diagnostics
//
// Phases report through a diag.Reporter so emission is decoupled from storage.
// BagReporter aggregates into a Bag, which supports sorting and deduplication.
// Rendering lives in internal/diagfmt.
//
// A file with any SevError diagnostic is never formatted: the driver reports
// the bag and leaves the file untouched.
package diag
