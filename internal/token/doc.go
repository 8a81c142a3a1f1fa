// Package token defines lexical token kinds and trivia for tag attribute lists.
// Invariants:
//   - Token.Text is a slice of the original input (no copies).
//   - Token.Span matches Text exactly (Start..End).
//   - Whitespace and {# comments #} are leading Trivia of the next token and
//     never appear in the main token stream.
//   - Spread markers ('...', '*', '**') are separate tokens; the parser decides
//     where they are allowed.
package token
