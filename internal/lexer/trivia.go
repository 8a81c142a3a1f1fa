package lexer

import (
	"tagattr/internal/diag"
	"tagattr/internal/token"
)

// collectLeadingTrivia собирает подряд идущие trivia перед значимым токеном.
//   - ' ', '\t' и '\r' коалесцируются в один TriviaSpace
//   - последовательные '\n' коалесцируются в один TriviaNewline
//   - {# ... #} -> TriviaComment (не вложенный; если не закрыт: репорт и обрезаем на EOF)
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		switch {
		case isSpace(b):
			for isSpace(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaSpace, start)
			continue

		case b == '\n':
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaNewline, start)
			continue

		case b == '{' && lx.cursor.PeekAt(1) == '#':
			lx.scanComment(start)
			continue
		}
		break
	}
}

func (lx *Lexer) scanComment(start Mark) {
	lx.cursor.Bump() // '{'
	lx.cursor.Bump() // '#'
	for !lx.cursor.EOF() {
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '#' && b1 == '}' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			lx.pushTrivia(token.TriviaComment, start)
			return
		}
		lx.cursor.Bump()
	}
	lx.errLex(diag.LexUnterminatedComment, lx.cursor.SpanFrom(start), "unterminated comment, expected '#}'")
	lx.pushTrivia(token.TriviaComment, start)
}

func (lx *Lexer) pushTrivia(kind token.TriviaKind, start Mark) {
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{Kind: kind, Span: sp, Text: lx.text(sp)})
}
