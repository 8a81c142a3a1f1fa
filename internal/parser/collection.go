package parser

import (
	"fmt"

	"tagattr/internal/cst"
	"tagattr/internal/diag"
	"tagattr/internal/source"
	"tagattr/internal/token"
)

// parseList:
//
//	list      := '[' (list_item (',' list_item)* ','?)? ']'
//	list_item := '*'? filtered_value
func (p *Parser) parseList() bool {
	if !p.enter() {
		return false
	}
	defer p.leave()

	list := p.open(cst.RuleList)
	open := p.advance()

	for !p.at(token.RBracket) {
		if p.at(token.EOF) {
			return p.failUnclosed(diag.SynUnclosedBracket, open.Span, "']'")
		}
		item := p.open(cst.RuleListItem)
		if p.at(token.Star) {
			p.leaf(cst.RuleSpread)
			if p.tok.HasLeadingSpace() || p.at(token.EOF) {
				return p.fail(diag.SynSpreadMissingValue, p.spanBefore(), "Spread syntax '*' is missing a value")
			}
		}
		if !p.parseFilteredValue(ctxList) {
			return false
		}
		p.close(item)

		if p.at(token.Comma) {
			p.advance()
			continue
		}
		if !p.at(token.RBracket) {
			return p.failUnclosed(diag.SynUnclosedBracket, open.Span, "']'")
		}
	}
	p.advance()
	p.close(list)
	return true
}

// parseDict:
//
//	dict      := '{' (dict_item (',' dict_item)* ','?)? '}'
//	dict_item := filtered_basic_value ':' filtered_value | '**' filtered_value
func (p *Parser) parseDict() bool {
	if !p.enter() {
		return false
	}
	defer p.leave()

	dict := p.open(cst.RuleDict)
	open := p.advance()

	for !p.at(token.RBrace) {
		if p.at(token.EOF) {
			return p.failUnclosed(diag.SynUnclosedBrace, open.Span, "'}'")
		}
		var ok bool
		switch p.tok.Kind {
		case token.StarStar:
			ok = p.parseDictSpread()
		case token.Ellipsis, token.Star:
			return p.spreadMisplaced(ctxDictKey)
		case token.Colon:
			return p.fail(diag.SynUnexpectedColon, p.tok.Span, msgUnexpectedColon)
		default:
			ok = p.parseDictPair()
		}
		if !ok {
			return false
		}

		if p.at(token.Comma) {
			p.advance()
			continue
		}
		if !p.at(token.RBrace) {
			return p.failUnclosed(diag.SynUnclosedBrace, open.Span, "'}'")
		}
	}
	p.advance()
	p.close(dict)
	return true
}

func (p *Parser) parseDictSpread() bool {
	item := p.open(cst.RuleDictItemSpread)
	p.leaf(cst.RuleSpread)
	if p.tok.HasLeadingSpace() || p.at(token.EOF) {
		return p.fail(diag.SynSpreadMissingValue, p.spanBefore(), "Spread syntax '**' is missing a value")
	}
	if !p.parseFilteredValue(ctxDictSpread) {
		return false
	}
	p.close(item)
	return true
}

func (p *Parser) parseDictPair() bool {
	item := p.open(cst.RuleDictItemPair)
	if !p.parseFilteredBasicValue() {
		return false
	}
	if !p.at(token.Colon) {
		return p.fail(diag.SynDictKeyMissingValue, p.diagSpan(), msgDictKeyMissingValue)
	}
	p.advance()
	if p.atAny(token.Comma, token.RBrace, token.EOF) {
		return p.fail(diag.SynDictKeyMissingValue, p.diagSpan(), msgDictKeyMissingValue)
	}
	if !p.parseFilteredValue(ctxDictValue) {
		return false
	}
	p.close(item)
	return true
}

func (p *Parser) failUnclosed(code diag.Code, open source.Span, closer string) bool {
	if p.at(token.Invalid) {
		return false
	}
	msg := fmt.Sprintf("Expected ',' or %s, got %s", closer, describe(p.tok))
	if p.at(token.EOF) {
		msg = fmt.Sprintf("Unclosed %s, expected %s", p.file.Text(open), closer)
	}
	if p.opts.Reporter != nil {
		diag.ReportError(p.opts.Reporter, code, p.diagSpan(), msg).
			WithNote(open, "opened here").
			Emit()
	}
	return false
}
