package lexer

import (
	"fmt"

	"tagattr/internal/diag"
	"tagattr/internal/token"
)

// Поддержка: 42, 001, -1, -1.5, +2., .3, -1.2e2, .2e-02, 20.e+02.
// int   := [+-]? [0-9]+
// float := [+-]? ([0-9]+ '.' [0-9]* | '.' [0-9]+) exp? | [+-]? [0-9]+ exp
// Число, за которым сразу идёт буква, '_' или '.',: ошибка (LexBadNumber).
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	if b := lx.cursor.Peek(); b == '+' || b == '-' {
		lx.cursor.Bump()
	}

	// ".digits"
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		kind = token.FloatLit
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		goto exponent
	}

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	// дробная часть
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		kind = token.FloatLit
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

exponent:
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		mark := lx.cursor.Mark()
		lx.cursor.Bump()
		if b := lx.cursor.Peek(); b == '+' || b == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			// "1e" / "1e+": не экспонента, пусть упадёт как мусор после числа
			lx.cursor.Reset(mark)
			goto tail
		}
		kind = token.FloatLit
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

tail:
	if isIdentContinueByte(lx.cursor.Peek()) {
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		tok := lx.emit(token.Invalid, start)
		lx.errLex(diag.LexBadNumber, tok.Span, fmt.Sprintf("malformed number '%s'", tok.Text))
		return tok
	}
	return lx.emit(kind, start)
}
