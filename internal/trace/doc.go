// Package trace records phase boundaries of the tag-attribute pipeline.
//
// Spans are emitted for the driver (one per command), for passes
// (lex, parse, build) and for individual files when a template tree
// is checked in batch.
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "parse", 0)
//	defer span.End("")
//
// Levels select how deep events are kept: phase keeps driver and pass
// spans, detail adds per-file spans, debug keeps everything.
package trace
