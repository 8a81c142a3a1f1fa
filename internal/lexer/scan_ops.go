package lexer

import (
	"fmt"

	"tagattr/internal/diag"
	"tagattr/internal/token"
)

// Жадность: сначала 3-символьные, затем 2-символьные, затем 1-символьные.
func (lx *Lexer) scanPunct() token.Token {
	start := lx.cursor.Mark()

	switch {
	case lx.try3('.', '.', '.'):
		return lx.emit(token.Ellipsis, start)
	case lx.try2('*', '*'):
		return lx.emit(token.StarStar, start)
	case lx.try2('_', '('):
		return lx.emit(token.I18nOpen, start)
	}

	var kind token.Kind
	switch lx.cursor.Peek() {
	case '=':
		kind = token.Assign
	case '|':
		kind = token.Pipe
	case ':':
		kind = token.Colon
	case ',':
		kind = token.Comma
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case ')':
		kind = token.RParen
	case '*':
		kind = token.Star
	default:
		r, _ := lx.peekRune()
		lx.bumpRune()
		tok := lx.emit(token.Invalid, start)
		lx.errLex(diag.LexUnknownChar, tok.Span, fmt.Sprintf("unexpected character %q", r))
		return tok
	}
	lx.cursor.Bump()
	return lx.emit(kind, start)
}
