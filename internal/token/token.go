package token

import (
	"tagattr/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a number or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit:
		return true
	default:
		return false
	}
}

// IsSpread reports whether the token is one of the spread markers.
func (t Token) IsSpread() bool {
	switch t.Kind {
	case Ellipsis, Star, StarStar:
		return true
	default:
		return false
	}
}

// StartsValue reports whether a value may begin with this token.
func (t Token) StartsValue() bool {
	switch t.Kind {
	case Ident, IntLit, FloatLit, StringLit, I18nOpen, LBracket, LBrace:
		return true
	default:
		return false
	}
}

// HasLeading reports whether any trivia precedes the token.
func (t Token) HasLeading() bool { return len(t.Leading) > 0 }

// HasLeadingSpace reports whether whitespace (not only comments) precedes the token.
func (t Token) HasLeadingSpace() bool {
	for _, tv := range t.Leading {
		if tv.Kind != TriviaComment {
			return true
		}
	}
	return false
}

// Comments returns the comment trivia preceding the token.
func (t Token) Comments() []Trivia {
	var out []Trivia
	for _, tv := range t.Leading {
		if tv.Kind == TriviaComment {
			out = append(out, tv)
		}
	}
	return out
}
