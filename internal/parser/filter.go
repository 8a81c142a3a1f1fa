package parser

import (
	"fmt"

	"tagattr/internal/cst"
	"tagattr/internal/diag"
	"tagattr/internal/token"
)

// parseFilterChain:
//
//	filter_chain       := ('|' filter_name (':' filtered_value)?)*
//	filter_chain_noarg := ('|' filter_name)*
//
// Аргумент фильтра: полный filtered_value, поэтому в `x|f:a|g` фильтр g
// относится к аргументу a.
func (p *Parser) parseFilterChain(withArgs bool) bool {
	chainRule, filterRule := cst.RuleFilterChain, cst.RuleFilter
	if !withArgs {
		chainRule, filterRule = cst.RuleFilterChainNoArg, cst.RuleFilterNoArg
	}

	chain := p.open(chainRule)
	for p.at(token.Pipe) {
		f := p.open(filterRule)
		p.advance()

		if p.tok.IsSpread() {
			return p.fail(diag.SynSpreadInFilter, p.tok.Span, msgSpreadInFilter)
		}
		if !p.at(token.Ident) {
			return p.fail(diag.SynExpectFilterName, p.diagSpan(),
				fmt.Sprintf("Expected filter, got %s", describe(p.tok)))
		}
		p.leaf(cst.RuleFilterName)
		nameEnd := p.lastEnd

		if withArgs && p.at(token.Colon) {
			arg := p.open(cst.RuleFilterArg)
			p.advance()
			if !p.parseFilteredValue(ctxFilterArg) {
				return false
			}
			p.closeFrom(arg, nameEnd)
		}
		p.close(f)
	}
	p.close(chain)
	return true
}
