// Package trace records what fern does while it works: the command being run,
// every source file of a directory run, and the load, cache, lex and parse
// phases inside each file.
//
// Tracing is off unless --trace or --trace-level is given:
//
//	fern diag --trace=- --trace-level=file src/
//	fern diag --trace=diag.ndjson --trace-mode=ring src/
//
// In stream mode every event is written as it happens. Ring mode keeps the
// latest events in memory and writes them only if the command fails.
//
// Spans nest through the context:
//
//	span, ctx := trace.Start(ctx, trace.ScopePhase, "parse")
//	defer span.End("")
package trace
