package parser

import (
	"tagattr/internal/cst"
	"tagattr/internal/diag"
	"tagattr/internal/lexer"
	"tagattr/internal/source"
	"tagattr/internal/token"
)

// DefaultMaxDepth bounds nesting of lists, dicts, translations and filter arguments.
const DefaultMaxDepth = 128

type Options struct {
	MaxDepth int // 0 → DefaultMaxDepth
	Reporter diag.Reporter
}

type Result struct {
	Tree *cst.Node // nil when parsing failed
	OK   bool
}

// Parser: состояние парсера на один список атрибутов.
// Разбор останавливается на первой ошибке: частичного дерева нет.
type Parser struct {
	lx      *lexer.Lexer
	file    *source.File
	opts    Options
	tok     token.Token // текущий lookahead
	flushed bool        // комментарии tok уже положены в дерево
	lastEnd uint32      // конец последнего съеденного токена
	stack   []*cst.Node // открытые узлы
	depth   int
}

// ParseTag разбирает весь файл как список атрибутов.
// Лексер должен быть создан над тем же file.
func ParseTag(file *source.File, lx *lexer.Lexer, opts Options) Result {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	root := &cst.Node{
		Rule: cst.RuleTag,
		Span: source.Span{File: file.ID, Start: 0, End: uint32(len(file.Content))}, // #nosec G115 -- checked by FileSet.Add
		Text: string(file.Content),
	}
	p := Parser{
		lx:    lx,
		file:  file,
		opts:  opts,
		stack: []*cst.Node{root},
	}
	p.tok = lx.Next()

	for !p.at(token.EOF) {
		if !p.parseAttribute() {
			return Result{}
		}
	}
	p.flushComments()
	return Result{Tree: root, OK: true}
}

func (p *Parser) at(k token.Kind) bool {
	return p.tok.Kind == k
}

func (p *Parser) atAny(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.tok.Kind == k {
			return true
		}
	}
	return false
}

// parseAttribute:
//
//	attribute := key '=' filtered_value | '...' filtered_value | filtered_value
func (p *Parser) parseAttribute() bool {
	switch p.tok.Kind {
	case token.Key:
		return p.parseKeyAttribute()

	case token.Ellipsis:
		attr := p.open(cst.RuleAttribute)
		if !p.parseSpreadValue() {
			return false
		}
		p.close(attr)
		return p.expectAttributeEnd()

	case token.Star, token.StarStar:
		return p.spreadMisplaced(ctxAttr)

	case token.Colon:
		return p.fail(diag.SynUnexpectedColon, p.tok.Span, msgUnexpectedColon)
	}

	if !p.tok.StartsValue() {
		return p.failUnexpected()
	}
	attr := p.open(cst.RuleAttribute)
	if !p.parseFilteredValue(ctxAttr) {
		return false
	}
	p.close(attr)
	return p.expectAttributeEnd()
}

func (p *Parser) parseKeyAttribute() bool {
	attr := p.open(cst.RuleAttribute)
	p.leaf(cst.RuleKey)
	p.advance() // '=': лексер выдаёт Key только перед '='

	switch {
	case p.at(token.EOF):
		// "key=" в конце: значение отсутствует; это ловит builder
		p.close(attr)
		return true
	case p.tok.HasLeading():
		return p.failSpacing(p.tok.Span, "Unexpected whitespace or comment after '='")
	case p.at(token.Ellipsis):
		return p.fail(diag.SynSpreadAfterKey, p.tok.Span, msgSpreadAfterKey)
	}

	if !p.parseFilteredValue(ctxAfterKey) {
		return false
	}
	p.close(attr)
	return p.expectAttributeEnd()
}

// parseSpreadValue: '...' filtered_value, без пробелов между ними.
func (p *Parser) parseSpreadValue() bool {
	sv := p.open(cst.RuleSpreadValue)
	p.leaf(cst.RuleSpread)
	if p.at(token.EOF) || p.tok.HasLeadingSpace() {
		return p.fail(diag.SynSpreadMissingValue, p.spanBefore(), msgSpreadMissingValue)
	}
	if !p.parseFilteredValue(ctxAttr) {
		return false
	}
	p.close(sv)
	return true
}

// After a top-level attribute only another attribute or the end may follow.
func (p *Parser) expectAttributeEnd() bool {
	switch p.tok.Kind {
	case token.Assign:
		if p.tok.HasLeading() {
			return p.failSpacing(p.tok.Span, "Unexpected whitespace or comment before '='")
		}
		return p.fail(diag.SynUnexpectedToken, p.tok.Span, "Unexpected '=': attribute key must be a name directly followed by '='")
	case token.Comma, token.RBracket, token.RBrace, token.RParen:
		return p.failUnexpected()
	}
	return true
}

// failSpacing репортит SynAssignSpacing с исправлением "убрать всё между прошлым токеном и текущим".
func (p *Parser) failSpacing(sp source.Span, msg string) bool {
	if p.opts.Reporter == nil {
		return false
	}
	gap := source.Span{File: p.file.ID, Start: p.lastEnd, End: p.tok.Span.Start}
	diag.ReportError(p.opts.Reporter, diag.SynAssignSpacing, sp, msg).
		WithFix("remove the gap around '='", diag.FixEdit{Span: gap}).
		Emit()
	return false
}
