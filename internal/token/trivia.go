package token

import "tagattr/internal/source"

type TriviaKind uint8

const (
	TriviaSpace   TriviaKind = iota // ' ', '\t', '\r'
	TriviaNewline                   // '\n'
	TriviaComment                   // {# ... #}
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	case TriviaComment:
		return "Comment"
	default:
		return "TriviaKind(?)"
	}
}

type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
