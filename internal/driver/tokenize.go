package driver

import (
	"context"
	"strconv"

	"tagattr/internal/diag"
	"tagattr/internal/lexer"
	"tagattr/internal/source"
	"tagattr/internal/token"
	"tagattr/internal/trace"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token // всегда заканчивается EOF
	Bag     *diag.Bag
}

// TokenizeText lexes an in-memory attribute list.
func TokenizeText(ctx context.Context, name, text string, maxDiagnostics int) *TokenizeResult {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, []byte(text))
	return TokenizeSource(ctx, fs, id, maxDiagnostics)
}

// TokenizeSource runs only the lexer. Unlike parsing it does not stop at
// the first bad token, so every lexical error of the input is reported.
func TokenizeSource(ctx context.Context, fs *source.FileSet, id source.FileID, maxDiagnostics int) *TokenizeResult {
	if maxDiagnostics <= 0 {
		maxDiagnostics = DefaultMaxDiagnostics
	}
	file := fs.Get(id)
	bag := diag.NewBag(maxDiagnostics)

	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "lex", trace.ParentID(ctx))
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	tokens := lx.All()
	span.WithExtra("tokens", strconv.Itoa(len(tokens))).End("")

	return &TokenizeResult{FileSet: fs, File: file, Tokens: tokens, Bag: bag}
}
