// Package diag defines the diagnostic model for the translation pipeline.
//
// Every non-fatal issue the translator finds (unknown directive, malformed
// directive body, conflicting pass/fail expectations, correlation failure)
// becomes a Diagnostic collected into a Bag. The translated output never
// carries these; they flow to the warning channel (stderr) so lossy
// translations stay auditable.
//
// Diagnostic is the central record:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//   - Message – human oriented text; keep it short and actionable.
//   - Primary span – the canonical source.Span pointing to the issue.
//   - Notes – optional secondary spans/messages for additional context.
//
// Producers emit through a Reporter to stay decoupled from storage;
// BagReporter aggregates into a Bag, which supports capacity limiting,
// deterministic sorting, and deduplication.
//
// Rendering lives in internal/diagfmt; this package performs no IO.
package diag
