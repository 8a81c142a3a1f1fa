// Package build turns the concrete tree into []ast.Attribute.
//
// The builder is the semantic half of parsing: it checks what the grammar
// lets through (a key without a value, a list used as a dict key), records
// spans and positions, and classifies string literals. It stops at the
// first error.
package build

import (
	"fmt"

	"tagattr/internal/ast"
	"tagattr/internal/cst"
	"tagattr/internal/diag"
	"tagattr/internal/source"
)

type builder struct {
	file *source.File
	rep  diag.Reporter
}

// Attributes converts a RuleTag tree. ok is false when a semantic error was reported.
func Attributes(tree *cst.Node, file *source.File, rep diag.Reporter) (attrs []ast.Attribute, ok bool) {
	b := builder{file: file, rep: rep}
	if tree == nil || tree.Rule != cst.RuleTag {
		return nil, b.unexpected(tree, "tag")
	}
	inner := tree.Inner()
	attrs = make([]ast.Attribute, 0, len(inner))
	for _, n := range inner {
		attr, ok := b.attribute(n)
		if !ok {
			return nil, false
		}
		attrs = append(attrs, attr)
	}
	return attrs, true
}

func (b *builder) pos(off uint32) source.LineCol {
	return b.file.LineCol(off)
}

func (b *builder) token(n *cst.Node) ast.Token {
	return ast.Token{Text: n.Text, Span: n.Span, Pos: b.pos(n.Span.Start)}
}

func (b *builder) fail(code diag.Code, sp source.Span, msg string) bool {
	if b.rep != nil {
		diag.ReportError(b.rep, code, sp, msg).Emit()
	}
	return false
}

func (b *builder) unexpected(n *cst.Node, want string) bool {
	if n == nil {
		return b.fail(diag.SemUnexpectedRule, source.Span{File: b.file.ID}, fmt.Sprintf("Expected %s, got nothing", want))
	}
	return b.fail(diag.SemUnexpectedRule, n.Span, fmt.Sprintf("Expected %s, got %s", want, n.Rule))
}
