package build

import (
	"strings"

	"tagattr/internal/ast"
	"tagattr/internal/cst"
	"tagattr/internal/diag"
)

// filteredValue builds value + optional filter chain. The outer span is the
// total span of the node; for basic values it becomes the token span too
// when there are no filters.
func (b *builder) filteredValue(n *cst.Node) (ast.Value, bool) {
	if n.Rule != cst.RuleFilteredValue && n.Rule != cst.RuleFilteredBasicValue {
		return ast.Value{}, b.unexpected(n, "value")
	}
	inner := n.Inner()
	if len(inner) == 0 {
		return ast.Value{}, b.unexpected(n, "value")
	}

	v, ok := b.value(inner[0])
	if !ok {
		return v, false
	}
	if len(inner) > 1 {
		filters, ok := b.filterChain(inner[1])
		if !ok {
			return v, false
		}
		v.Filters = filters
	}
	v.Span = n.Span
	v.Pos = b.pos(n.Span.Start)
	return v, true
}

func (b *builder) value(n *cst.Node) (ast.Value, bool) {
	v := ast.Value{Token: b.token(n)}
	switch n.Rule {
	case cst.RuleList:
		v.Kind = ast.KindList
		return v, b.listItems(n, &v)
	case cst.RuleDict:
		v.Kind = ast.KindDict
		return v, b.dictItems(n, &v)
	case cst.RuleI18nString:
		v.Kind = ast.KindTranslation
		text, ok := b.translation(n)
		v.Token.Text = text
		return v, ok
	case cst.RuleStringLiteral:
		v.Kind = ast.KindString
		if IsDynamicExpression(n.Text) {
			v.Kind = ast.KindExpression
		}
	case cst.RuleInt:
		v.Kind = ast.KindInt
	case cst.RuleFloat:
		v.Kind = ast.KindFloat
	case cst.RuleVariable:
		v.Kind = ast.KindVariable
	default:
		return v, b.unexpected(n, "value")
	}
	return v, true
}

func (b *builder) listItems(n *cst.Node, v *ast.Value) bool {
	for _, item := range n.Inner() {
		if item.Rule != cst.RuleListItem {
			return b.unexpected(item, "list item")
		}
		var (
			child ast.Value
			ok    bool
		)
		if item.Find(cst.RuleSpread) != nil {
			child, ok = b.spreadValue(item, ast.SpreadList)
		} else {
			inner := item.Inner()
			if len(inner) != 1 {
				return b.unexpected(item, "list item")
			}
			child, ok = b.filteredValue(inner[0])
		}
		if !ok {
			return false
		}
		v.Children = append(v.Children, child)
	}
	return true
}

// dictItems flattens pairs into key, value, key, value; a '**' item adds one child.
func (b *builder) dictItems(n *cst.Node, v *ast.Value) bool {
	for _, item := range n.Inner() {
		switch item.Rule {
		case cst.RuleDictItemSpread:
			child, ok := b.spreadValue(item, ast.SpreadDict)
			if !ok {
				return false
			}
			v.Children = append(v.Children, child)

		case cst.RuleDictItemPair:
			inner := item.Inner()
			if len(inner) != 2 {
				return b.unexpected(item, "dictionary key and value")
			}
			key, ok := b.filteredValue(inner[0])
			if !ok {
				return false
			}
			if key.Kind == ast.KindList || key.Kind == ast.KindDict {
				return b.fail(diag.SemInvalidDictKey, key.Span, "Dictionary keys cannot be lists or dictionaries")
			}
			val, ok := b.filteredValue(inner[1])
			if !ok {
				return false
			}
			v.Children = append(v.Children, key, val)

		default:
			return b.unexpected(item, "dictionary item")
		}
	}
	return true
}

// translation normalises `_( 'text' )` to `_('text')`: the quote that appears
// first wins and the quoted part runs from its first to its last occurrence.
// Comments inside the parentheses are ignored.
func (b *builder) translation(n *cst.Node) (string, bool) {
	text := stripComments(n)
	single := strings.IndexByte(text, '\'')
	double := strings.IndexByte(text, '"')

	quote := byte('\'')
	first := single
	if single < 0 || (double >= 0 && double < single) {
		quote, first = '"', double
	}
	if first < 0 {
		return "", b.fail(diag.SemI18nQuotes, n.Span, "No quotes found in i18n string")
	}
	last := strings.LastIndexByte(text, quote)
	return "_(" + text[first:last+1] + ")", true
}

// stripComments returns the node text without its comment children.
func stripComments(n *cst.Node) string {
	var sb strings.Builder
	cur := n.Span.Start
	for _, c := range n.Children {
		if c.Rule != cst.RuleComment {
			continue
		}
		sb.WriteString(sliceText(n, cur, c.Span.Start))
		cur = c.Span.End
	}
	sb.WriteString(sliceText(n, cur, n.Span.End))
	return sb.String()
}

func sliceText(n *cst.Node, start, end uint32) string {
	base := n.Span.Start
	if start < base || end < start || int(end-base) > len(n.Text) {
		return ""
	}
	return n.Text[start-base : end-base]
}
