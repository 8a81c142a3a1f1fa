package parser

import (
	"fmt"

	"tagattr/internal/cst"
	"tagattr/internal/diag"
	"tagattr/internal/token"
)

// parseFilteredValue:
//
//	filtered_value := value filter_chain?
func (p *Parser) parseFilteredValue(ctx valueCtx) bool {
	if !p.enter() {
		return false
	}
	defer p.leave()

	fv := p.open(cst.RuleFilteredValue)
	if !p.parseValue(ctx) {
		return false
	}
	if p.at(token.Pipe) && !p.parseFilterChain(true) {
		return false
	}
	p.close(fv)

	if p.at(token.Colon) {
		return p.colonAfterValue(ctx)
	}
	return true
}

// parseFilteredBasicValue разбирает ключ словаря: фильтры без аргументов,
// ':' после имени фильтра закрывает ключ.
//
//	filtered_basic_value := value filter_chain_noarg?
func (p *Parser) parseFilteredBasicValue() bool {
	if !p.enter() {
		return false
	}
	defer p.leave()

	fv := p.open(cst.RuleFilteredBasicValue)
	if !p.parseValue(ctxDictKey) {
		return false
	}
	if p.at(token.Pipe) && !p.parseFilterChain(false) {
		return false
	}
	p.close(fv)
	return true
}

// parseValue:
//
//	value := list | dict | i18n_string | string_literal | float | int | variable
func (p *Parser) parseValue(ctx valueCtx) bool {
	switch p.tok.Kind {
	case token.LBracket:
		return p.parseList()
	case token.LBrace:
		return p.parseDict()
	case token.I18nOpen:
		return p.parseI18n()
	case token.StringLit:
		p.leaf(cst.RuleStringLiteral)
	case token.IntLit:
		p.leaf(cst.RuleInt)
	case token.FloatLit:
		p.leaf(cst.RuleFloat)
	case token.Ident:
		p.leaf(cst.RuleVariable)
	case token.Ellipsis, token.Star, token.StarStar:
		return p.spreadMisplaced(ctx)
	case token.Colon:
		return p.fail(diag.SynUnexpectedColon, p.tok.Span, msgUnexpectedColon)
	case token.Key:
		return p.fail(diag.SynUnexpectedToken, p.tok.Span,
			fmt.Sprintf("Unexpected key '%s=': keys are only allowed on tag attributes", p.tok.Text))
	default:
		return p.fail(diag.SynExpectValue, p.diagSpan(), fmt.Sprintf("Expected value, got %s", describe(p.tok)))
	}
	return true
}

// parseI18n:
//
//	i18n_string := '_(' string_literal ')'
func (p *Parser) parseI18n() bool {
	if !p.enter() {
		return false
	}
	defer p.leave()

	n := p.open(cst.RuleI18nString)
	open := p.advance()
	if !p.at(token.StringLit) {
		return p.fail(diag.SynExpectString, p.diagSpan(),
			fmt.Sprintf("Expected string literal after '_(', got %s", describe(p.tok)))
	}
	p.leaf(cst.RuleStringLiteral)
	if !p.at(token.RParen) {
		if p.opts.Reporter != nil && !p.at(token.Invalid) {
			diag.ReportError(p.opts.Reporter, diag.SynUnclosedParen, p.diagSpan(),
				fmt.Sprintf("Expected ')' to close translation, got %s", describe(p.tok))).
				WithNote(open.Span, "translation starts here").
				Emit()
		}
		return false
	}
	p.advance()
	p.close(n)
	return true
}
