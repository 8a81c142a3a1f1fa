package tagattr

import (
	"context"

	"tagattr/internal/ast"
	"tagattr/internal/build"
	"tagattr/internal/driver"
	"tagattr/internal/source"
)

type (
	Attribute = ast.Attribute
	Value     = ast.Value
	Filter    = ast.Filter
	Token     = ast.Token
	Entry     = ast.Entry
	ValueKind = ast.ValueKind
	Spread    = ast.Spread
	Span      = source.Span
	LineCol   = source.LineCol
)

const (
	KindList        = ast.KindList
	KindDict        = ast.KindDict
	KindInt         = ast.KindInt
	KindFloat       = ast.KindFloat
	KindVariable    = ast.KindVariable
	KindExpression  = ast.KindExpression
	KindTranslation = ast.KindTranslation
	KindString      = ast.KindString
)

const (
	SpreadNone = ast.SpreadNone
	SpreadAttr = ast.SpreadAttr
	SpreadList = ast.SpreadList
	SpreadDict = ast.SpreadDict
)

// DefaultMaxDepth is the nesting limit used when Options.MaxDepth is zero.
const DefaultMaxDepth = 128

// Options tune a parse. The zero value is ready to use.
type Options struct {
	// MaxDepth bounds nesting of lists, dicts, translations and filter
	// arguments. Deeper input fails with a semantic error.
	MaxDepth int
}

// inputName is what the input is called in file-less diagnostics.
const inputName = "<input>"

// ParseTag parses input with default options.
func ParseTag(input string) ([]Attribute, error) {
	return Parse(context.Background(), input, Options{})
}

// Parse parses input. ctx only carries an optional tracer (see
// internal/trace); parsing is synchronous and is not cancelled.
func Parse(ctx context.Context, input string, opts Options) ([]Attribute, error) {
	depth := opts.MaxDepth
	if depth <= 0 {
		depth = DefaultMaxDepth
	}
	res := driver.ParseText(ctx, inputName, input, driver.Options{MaxDepth: depth})
	if d, failed := res.FirstError(); failed {
		return nil, newParseError(res.File, d)
	}
	if res.Attrs == nil {
		return []Attribute{}, nil
	}
	return res.Attrs, nil
}

// Serialize renders attributes back into normalised tag syntax.
// Parsing the result yields the same attributes up to positions.
func Serialize(attrs []Attribute) string {
	return ast.Serialize(attrs)
}

// IsDynamicExpression reports whether a string literal (quotes included)
// contains template markup: {{ }}, {% %} or {# #} on a single line.
func IsDynamicExpression(s string) bool {
	return build.IsDynamicExpression(s)
}
