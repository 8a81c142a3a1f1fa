package lexer

import (
	"fmt"

	"tagattr/internal/diag"
	"tagattr/internal/token"
)

// scanKeyOrIdent сканирует ключ атрибута или идентификатор.
// Ключ ([A-Za-z_@][A-Za-z0-9_.:@]*) получается только если сразу за ним стоит '=';
// иначе откатываемся и читаем обычный идентификатор ([A-Za-z_][A-Za-z0-9_.]*).
func (lx *Lexer) scanKeyOrIdent() token.Token {
	start := lx.cursor.Mark()

	lx.cursor.Bump()
	for isKeyContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if lx.cursor.Peek() == '=' {
		return lx.emit(token.Key, start)
	}

	lx.cursor.Reset(start)
	if lx.cursor.Peek() == '@' {
		lx.cursor.Bump()
		for isKeyContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		tok := lx.emit(token.Invalid, start)
		lx.errLex(diag.LexUnknownChar, tok.Span, fmt.Sprintf("'%s' looks like a key but is not followed by '='", tok.Text))
		return tok
	}

	lx.cursor.Bump()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	return lx.emit(token.Ident, start)
}
