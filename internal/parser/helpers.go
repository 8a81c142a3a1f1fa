package parser

import (
	"fmt"

	"tagattr/internal/cst"
	"tagattr/internal/diag"
	"tagattr/internal/source"
	"tagattr/internal/token"
)

// advance: съедает текущий токен, его комментарии уходят в открытый узел.
func (p *Parser) advance() token.Token {
	p.flushComments()
	tok := p.tok
	p.lastEnd = tok.Span.End
	p.tok = p.lx.Next()
	p.flushed = false
	return tok
}

func (p *Parser) top() *cst.Node {
	return p.stack[len(p.stack)-1]
}

// flushComments кладёт комментарии перед текущим токеном в верхний открытый узел.
// Вызывается до открытия нового узла, поэтому комментарий оказывается внутри родителя.
func (p *Parser) flushComments() {
	if p.flushed {
		return
	}
	p.flushed = true
	parent := p.top()
	for _, c := range p.tok.Comments() {
		parent.Children = append(parent.Children, &cst.Node{Rule: cst.RuleComment, Span: c.Span, Text: c.Text})
	}
}

// open начинает узел с текущего токена.
func (p *Parser) open(rule cst.Rule) *cst.Node {
	p.flushComments()
	start := p.tok.Span.Start
	n := &cst.Node{Rule: rule, Span: source.Span{File: p.file.ID, Start: start, End: start}}
	p.stack = append(p.stack, n)
	return n
}

// close заканчивает узел на последнем съеденном токене и цепляет его к родителю.
func (p *Parser) close(n *cst.Node) *cst.Node {
	return p.closeFrom(n, n.Span.Start)
}

// closeFrom: как close, но с явным началом (аргумент фильтра начинается после имени).
func (p *Parser) closeFrom(n *cst.Node, start uint32) *cst.Node {
	p.stack = p.stack[:len(p.stack)-1]
	n.Span.Start = start
	n.Span.End = max(p.lastEnd, start)
	n.Text = p.file.Text(n.Span)
	parent := p.top()
	parent.Children = append(parent.Children, n)
	return n
}

// leaf: узел из одного токена.
func (p *Parser) leaf(rule cst.Rule) *cst.Node {
	n := p.open(rule)
	p.advance()
	return p.close(n)
}

// spanBefore: пустой span сразу после последнего съеденного токена.
func (p *Parser) spanBefore() source.Span {
	return source.Span{File: p.file.ID, Start: p.lastEnd, End: p.lastEnd}
}

// diagSpan: текущий токен, а на EOF позиция после последнего токена.
func (p *Parser) diagSpan() source.Span {
	if p.at(token.EOF) {
		return p.spanBefore()
	}
	return p.tok.Span
}

// fail репортит ошибку и всегда возвращает false, чтобы писать `return p.fail(...)`.
// Invalid-токен уже отрепорчен лексером: второй диагностики не будет.
func (p *Parser) fail(code diag.Code, sp source.Span, msg string) bool {
	if p.at(token.Invalid) {
		return false
	}
	if p.opts.Reporter != nil {
		diag.ReportError(p.opts.Reporter, code, sp, msg).Emit()
	}
	return false
}

func (p *Parser) failUnexpected() bool {
	return p.fail(diag.SynUnexpectedToken, p.diagSpan(), fmt.Sprintf("Unexpected %s", describe(p.tok)))
}

// describe: как токен выглядит в сообщении.
func describe(tok token.Token) string {
	switch tok.Kind {
	case token.EOF:
		return "end of input"
	case token.Ident, token.Key, token.IntLit, token.FloatLit, token.StringLit, token.Invalid:
		return fmt.Sprintf("%s '%s'", kindWord(tok.Kind), tok.Text)
	default:
		return tok.Kind.Describe()
	}
}

func kindWord(k token.Kind) string {
	switch k {
	case token.Ident:
		return "name"
	case token.Key:
		return "key"
	case token.IntLit, token.FloatLit:
		return "number"
	case token.StringLit:
		return "string"
	default:
		return "token"
	}
}

// enter/leave считают глубину вложенности значений.
func (p *Parser) enter() bool {
	p.depth++
	if p.depth > p.opts.MaxDepth {
		return p.fail(diag.SemMaxDepth, p.diagSpan(), fmt.Sprintf("maximum nesting depth of %d exceeded", p.opts.MaxDepth))
	}
	return true
}

func (p *Parser) leave() {
	p.depth--
}
