// Package diag defines the core diagnostic model shared by all pipeline phases.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures that capture findings
//     produced by the lexer, the parser and the driver.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to concrete storage or formatting layers.
//
// # Scope
//
// Package diag does not perform any formatting or IO. Rendering lives in
// internal/diagfmt; collection per file and caching live in internal/driver.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//   - Message – human oriented text; keep it short and actionable.
//   - File and Primary – the file and the span (line/column bounds) of the issue.
//   - Notes – optional secondary spans/messages for additional context.
//
// The parser is fail-fast, so a parse produces at most one syntax
// diagnostic per file. Bag still supports many entries because directory runs
// and I/O failures aggregate into one place.
//
// Keep the data model deterministic: the disk cache serialises Diagnostic
// values with msgpack, so new fields must stay exported and plain.
package diag
