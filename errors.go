package tagattr

import (
	"fmt"

	"tagattr/internal/diag"
	"tagattr/internal/source"
)

// ErrorKind separates input the grammar rejects from input the grammar
// accepts but that makes no sense as attributes.
type ErrorKind uint8

const (
	KindGrammar ErrorKind = iota + 1
	KindSemantic
)

func (k ErrorKind) String() string {
	switch k {
	case KindGrammar:
		return "grammar"
	case KindSemantic:
		return "semantic"
	default:
		return "unknown"
	}
}

// ParseError is the single failure a parse can produce.
type ParseError struct {
	Kind    ErrorKind
	Code    string // LEX1001, SYN2002, SEM3001...
	Message string
	Span    Span
	Pos     LineCol
	Notes   []ErrorNote
}

// ErrorNote points at a related location, e.g. the bracket left open.
type ErrorNote struct {
	Message string
	Span    Span
	Pos     LineCol
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s error at %d:%d: %s", e.Kind, e.Pos.Line, e.Pos.Col, e.Message)
}

func newParseError(file *source.File, d diag.Diagnostic) *ParseError {
	kind := KindGrammar
	if d.Code.IsSemantic() {
		kind = KindSemantic
	}
	e := &ParseError{
		Kind:    kind,
		Code:    d.Code.ID(),
		Message: d.Message,
		Span:    d.Primary,
		Pos:     file.LineCol(d.Primary.Start),
	}
	for _, n := range d.Notes {
		e.Notes = append(e.Notes, ErrorNote{Message: n.Msg, Span: n.Span, Pos: file.LineCol(n.Span.Start)})
	}
	return e
}
