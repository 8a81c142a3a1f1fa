package lexer

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"
)

// peekRune читает текущую руну
func (lx *Lexer) peekRune() (r rune, size int) {
	if lx.cursor.EOF() {
		return utf8.RuneError, 0
	}
	b := lx.cursor.Peek()
	if b < utf8.RuneSelf {
		return rune(b), 1
	}
	return utf8.DecodeRune(lx.file.Content[lx.cursor.Off:lx.cursor.Limit])
}

// bumpRune перемещает курсор на размер текущей руны
func (lx *Lexer) bumpRune() {
	_, sz := lx.peekRune()
	if sz == 0 {
		return
	}
	usz, err := safecast.Conv[uint32](sz)
	if err != nil {
		panic(fmt.Errorf("bumpRune overflow: %w", err))
	}
	lx.cursor.Off += usz
}

// ===== Классификаторы =====

func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\r' }

func isAlpha(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

// variable := [A-Za-z_][A-Za-z0-9_.]*
func isIdentStartByte(b byte) bool    { return b == '_' || isAlpha(b) }
func isIdentContinueByte(b byte) bool { return isIdentStartByte(b) || isDec(b) || b == '.' }

// key := [A-Za-z_@][A-Za-z0-9_.:@]*
func isKeyStartByte(b byte) bool    { return isIdentStartByte(b) || b == '@' }
func isKeyContinueByte(b byte) bool { return isIdentContinueByte(b) || b == ':' || b == '@' }

// Проверка для кейса ".5": текущая точка, дальше цифра?
func (lx *Lexer) isNumberAfterDot() bool {
	b0, b1, ok := lx.cursor.Peek2()
	return ok && b0 == '.' && isDec(b1)
}

// "+1", "-.5"
func (lx *Lexer) isSignedNumber() bool {
	b0 := lx.cursor.Peek()
	if b0 != '+' && b0 != '-' {
		return false
	}
	b1 := lx.cursor.PeekAt(1)
	return isDec(b1) || (b1 == '.' && isDec(lx.cursor.PeekAt(2)))
}

// try2/try3 пробуют "съесть" 2/3 байта, если совпадает.
func (lx *Lexer) try3(a, b, c byte) bool {
	b0, b1, b2, ok := lx.cursor.Peek3()
	if !ok || b0 != a || b1 != b || b2 != c {
		return false
	}
	lx.cursor.Off += 3
	return true
}

func (lx *Lexer) try2(a, b byte) bool {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != a || b1 != b {
		return false
	}
	lx.cursor.Off += 2
	return true
}
