package build

import (
	"fmt"

	"tagattr/internal/ast"
	"tagattr/internal/cst"
	"tagattr/internal/diag"
)

// attribute:
//   - key present: key token plus the first filtered value;
//   - spread: '...' marker moves the value start back to the marker;
//   - otherwise a bare filtered value.
func (b *builder) attribute(n *cst.Node) (ast.Attribute, bool) {
	if n.Rule != cst.RuleAttribute {
		return ast.Attribute{}, b.unexpected(n, "attribute")
	}
	attr := ast.Attribute{Pos: b.pos(n.Span.Start)}
	inner := n.Inner()
	if len(inner) == 0 {
		return attr, b.unexpected(n, "attribute value")
	}

	first := inner[0]
	switch first.Rule {
	case cst.RuleKey:
		key := ast.Token{Text: first.Text, Span: first.Span, Pos: attr.Pos}
		attr.Key = &key
		if len(inner) < 2 {
			return attr, b.fail(diag.SemMissingValue, first.Span, fmt.Sprintf("Missing value for key: %s", key.Text))
		}
		v, ok := b.filteredValue(inner[1])
		if !ok {
			return attr, false
		}
		attr.Value = v

	case cst.RuleSpreadValue:
		v, ok := b.spreadValue(first, ast.SpreadAttr)
		if !ok {
			return attr, false
		}
		attr.Value = v

	default:
		v, ok := b.filteredValue(first)
		if !ok {
			return attr, false
		}
		attr.Value = v
	}

	attr.Span = n.Span
	attr.Span.End = attr.Value.Span.End
	return attr, true
}

// spreadValue handles [marker, filtered_value] pairs of attributes, list items and dict items.
func (b *builder) spreadValue(n *cst.Node, spread ast.Spread) (ast.Value, bool) {
	inner := n.Inner()
	if len(inner) != 2 || inner[0].Rule != cst.RuleSpread {
		return ast.Value{}, b.unexpected(n, "spread value")
	}
	marker := inner[0]
	v, ok := b.filteredValue(inner[1])
	if !ok {
		return v, false
	}
	v.Spread = spread
	v.Span.Start = marker.Span.Start
	v.Pos = b.pos(marker.Span.Start)
	return v, true
}
