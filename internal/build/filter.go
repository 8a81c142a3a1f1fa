package build

import (
	"tagattr/internal/ast"
	"tagattr/internal/cst"
)

// filterChain builds filters in source order. A filter spans from its pipe
// to its end; the argument's outer span starts where the filter name ends.
func (b *builder) filterChain(n *cst.Node) ([]ast.Filter, bool) {
	if n.Rule != cst.RuleFilterChain && n.Rule != cst.RuleFilterChainNoArg {
		return nil, b.unexpected(n, "filter")
	}
	inner := n.Inner()
	filters := make([]ast.Filter, 0, len(inner))
	for _, f := range inner {
		filter, ok := b.filter(f)
		if !ok {
			return nil, false
		}
		filters = append(filters, filter)
	}
	return filters, true
}

func (b *builder) filter(n *cst.Node) (ast.Filter, bool) {
	if n.Rule != cst.RuleFilter && n.Rule != cst.RuleFilterNoArg {
		return ast.Filter{}, b.unexpected(n, "filter")
	}
	name := n.Find(cst.RuleFilterName)
	if name == nil {
		return ast.Filter{}, b.unexpected(n, "filter name")
	}
	f := ast.Filter{
		Name: b.token(name),
		Span: n.Span,
		Pos:  b.pos(n.Span.Start),
	}

	argNode := n.Find(cst.RuleFilterArg)
	if argNode == nil {
		return f, true
	}
	inner := argNode.Inner()
	if len(inner) != 1 {
		return f, b.unexpected(argNode, "filter argument")
	}
	arg, ok := b.filteredValue(inner[0])
	if !ok {
		return f, false
	}
	arg.Span = argNode.Span
	arg.Pos = b.pos(argNode.Span.Start)
	f.Arg = &arg
	return f, true
}
