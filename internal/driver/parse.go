package driver

import (
	"context"
	"fmt"
	"strconv"

	"tagattr/internal/ast"
	"tagattr/internal/build"
	"tagattr/internal/cst"
	"tagattr/internal/diag"
	"tagattr/internal/lexer"
	"tagattr/internal/parser"
	"tagattr/internal/source"
	"tagattr/internal/trace"
)

// DefaultMaxDiagnostics: разбор останавливается на первой ошибке,
// так что в bag попадает одна ошибка плюс служебные info.
const DefaultMaxDiagnostics = 16

// Options configure a single parse.
type Options struct {
	MaxDepth       int // 0 → parser.DefaultMaxDepth
	MaxDiagnostics int // 0 → DefaultMaxDiagnostics
	Timings        bool
	Observer       PhaseObserver
}

// ParseResult holds everything one parse produced.
type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tree    *cst.Node // nil if the grammar rejected the input
	Attrs   []ast.Attribute
	Bag     *diag.Bag
}

// OK reports whether the input parsed without errors.
func (r *ParseResult) OK() bool {
	return r != nil && !r.Bag.HasErrors()
}

// FirstError returns the diagnostic that stopped the parse.
func (r *ParseResult) FirstError() (diag.Diagnostic, bool) {
	if r == nil || r.Bag == nil {
		return diag.Diagnostic{}, false
	}
	return r.Bag.FirstError()
}

// ParseText parses an in-memory attribute list. The text is used as is:
// no BOM stripping and no CRLF normalization.
func ParseText(ctx context.Context, name, text string, opts Options) *ParseResult {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, []byte(text))
	return ParseSource(ctx, fs, id, opts)
}

// ParseFile loads path and parses its whole content as one attribute list.
func ParseFile(ctx context.Context, path string, opts Options) (*ParseResult, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return ParseSource(ctx, fs, id, opts), nil
}

// ParseSource runs lexer, parser and builder over a file already in fs.
// It never returns nil; failures are reported through Bag.
func ParseSource(ctx context.Context, fs *source.FileSet, id source.FileID, opts Options) *ParseResult {
	if opts.MaxDiagnostics <= 0 {
		opts.MaxDiagnostics = DefaultMaxDiagnostics
	}
	file := fs.Get(id)
	bag := diag.NewBag(opts.MaxDiagnostics)
	rep := diag.BagReporter{Bag: bag}
	res := &ParseResult{FileSet: fs, File: file, Bag: bag}

	tracer := trace.FromContext(ctx)
	parent := trace.ParentID(ctx)
	ph := newPhases(opts)

	// лексер ленивый: токены тянет парсер, поэтому lex входит в parse
	span := trace.Begin(tracer, trace.ScopePass, "parse", parent)
	ph.begin("parse")
	lx := lexer.New(file, lexer.Options{Reporter: rep})
	parsed := parser.ParseTag(file, lx, parser.Options{MaxDepth: opts.MaxDepth, Reporter: rep})
	ph.end("parse", okNote(parsed.OK))
	span.End(okNote(parsed.OK))

	if !parsed.OK {
		ph.flush(bag, file.Path)
		return res
	}
	res.Tree = parsed.Tree

	span = trace.Begin(tracer, trace.ScopePass, "build", parent)
	ph.begin("build")
	attrs, ok := build.Attributes(parsed.Tree, file, rep)
	ph.end("build", strconv.Itoa(len(attrs))+" attrs")
	span.WithExtra("attrs", strconv.Itoa(len(attrs))).End(okNote(ok))

	if ok {
		res.Attrs = attrs
	}
	ph.flush(bag, file.Path)
	return res
}

func okNote(ok bool) string {
	if ok {
		return "ok"
	}
	return "error"
}
