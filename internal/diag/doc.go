// Package diag defines the diagnostic model shared by the lexer, the parser
// and the tree-to-AST builder.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with a stable string
//     form: LEX1xxx for the lexer, SYN2xxx for the parser, SEM3xxx for the
//     builder and IO4xxx for the batch checker.
//   - Message – human oriented text, deterministic for a given input.
//   - Primary span – the source.Span pointing to the issue.
//   - Notes and Fixes – optional extra context.
//
// # Emitting diagnostics
//
// Phases report through a diag.Reporter so that emission is decoupled from
// storage. The parser builds a ReportBuilder via ReportError and calls Emit;
// BagReporter collects into a Bag, which supports sorting and deduplication.
//
// Package diag does no IO. Rendering lives in internal/diagfmt; the public
// tagattr.ParseError is produced from the first error in the bag.
package diag
