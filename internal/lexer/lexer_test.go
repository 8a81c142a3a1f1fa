package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"tagattr/internal/diag"
	"tagattr/internal/lexer"
	"tagattr/internal/source"
	"tagattr/internal/token"
)

// makeTestLexer создаёт лексер для тестовой строки
func makeTestLexer(input string) (*lexer.Lexer, *diag.Bag) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test", []byte(input))
	bag := diag.NewBag(16)
	lx := lexer.New(fs.Get(fileID), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	return lx, bag
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func bagMessages(bag *diag.Bag) []string {
	out := make([]string, 0, bag.Len())
	for _, d := range bag.Items() {
		out = append(out, fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message))
	}
	return out
}

// expectTokens проверяет последовательность токенов (без EOF)
func expectTokens(t *testing.T, input string, expected []token.Kind) []token.Token {
	t.Helper()
	lx, bag := makeTestLexer(input)
	tokens := lx.All()
	tokens = tokens[:len(tokens)-1]

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d\ninput: %q\ntokens: %v\nerrors: %v",
			len(expected), len(tokens), input, tokensToString(tokens), bagMessages(bag))
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Fatalf("token %d of %q: expected %v, got %v (text: %q)", i, input, expected[i], tok.Kind, tok.Text)
		}
	}
	return tokens
}

func expectSingleToken(t *testing.T, input string, kind token.Kind, text string) {
	t.Helper()
	lx, bag := makeTestLexer(input)
	tok := lx.Next()
	if tok.Kind != kind || tok.Text != text {
		t.Fatalf("%q: got %v(%q), want %v(%q); errors: %v", input, tok.Kind, tok.Text, kind, text, bagMessages(bag))
	}
	if next := lx.Next(); next.Kind != token.EOF {
		t.Fatalf("%q: expected EOF after single token, got %v(%q)", input, next.Kind, next.Text)
	}
	if kind != token.Invalid && bag.HasErrors() {
		t.Fatalf("%q: unexpected errors %v", input, bagMessages(bag))
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"42", token.IntLit},
		{"001", token.IntLit},
		{"-1", token.IntLit},
		{"+7", token.IntLit},
		{"-1.5", token.FloatLit},
		{"+2.", token.FloatLit},
		{".3", token.FloatLit},
		{"-1.2e2", token.FloatLit},
		{".2e-02", token.FloatLit},
		{"20.e+02", token.FloatLit},
		{"1E5", token.FloatLit},
		{"-.5", token.FloatLit},
	}
	for _, tt := range tests {
		expectSingleToken(t, tt.input, tt.kind, tt.input)
	}
}

func TestBadNumbers(t *testing.T) {
	for _, input := range []string{"1abc", "1e", "1.2.3", "2_000", "3.x"} {
		lx, bag := makeTestLexer(input)
		tok := lx.Next()
		if tok.Kind != token.Invalid || tok.Text != input {
			t.Fatalf("%q: got %v(%q), want Invalid covering the input", input, tok.Kind, tok.Text)
		}
		first, ok := bag.FirstError()
		if !ok || first.Code != diag.LexBadNumber {
			t.Fatalf("%q: expected LexBadNumber, got %v", input, bagMessages(bag))
		}
	}
}

func TestIdentifiersAndKeys(t *testing.T) {
	tests := []struct {
		input string
		kinds []token.Kind
		texts []string
	}{
		{"val", []token.Kind{token.Ident}, []string{"val"}},
		{"my.nested.value", []token.Kind{token.Ident}, []string{"my.nested.value"}},
		{"key=val", []token.Kind{token.Key, token.Assign, token.Ident}, []string{"key", "=", "val"}},
		{"@click.stop=handler", []token.Kind{token.Key, token.Assign, token.Ident}, []string{"@click.stop", "=", "handler"}},
		{"attr:key=val", []token.Kind{token.Key, token.Assign, token.Ident}, []string{"attr:key", "=", "val"}},
		{"x|default:arg", []token.Kind{token.Ident, token.Pipe, token.Ident, token.Colon, token.Ident}, []string{"x", "|", "default", ":", "arg"}},
		{"key =val", []token.Kind{token.Ident, token.Assign, token.Ident}, []string{"key", "=", "val"}},
		{"_x", []token.Kind{token.Ident}, []string{"_x"}},
	}
	for _, tt := range tests {
		tokens := expectTokens(t, tt.input, tt.kinds)
		for i, tok := range tokens {
			if tok.Text != tt.texts[i] {
				t.Fatalf("%q token %d: text %q, want %q", tt.input, i, tok.Text, tt.texts[i])
			}
		}
	}
}

func TestAtWithoutAssignIsInvalid(t *testing.T) {
	lx, bag := makeTestLexer("@click")
	tok := lx.Next()
	if tok.Kind != token.Invalid || tok.Text != "@click" {
		t.Fatalf("got %v(%q)", tok.Kind, tok.Text)
	}
	if first, ok := bag.FirstError(); !ok || first.Code != diag.LexUnknownChar {
		t.Fatalf("expected LexUnknownChar, got %v", bagMessages(bag))
	}
}

func TestStrings(t *testing.T) {
	tests := []string{
		`'hello world'`,
		`"hello world"`,
		`"it's"`,
		`'say "hi"'`,
		`"esc \" quote"`,
		"'multi\nline'",
		`'ünïcödé'`,
	}
	for _, input := range tests {
		expectSingleToken(t, input, token.StringLit, input)
	}
}

func TestUnterminatedString(t *testing.T) {
	lx, bag := makeTestLexer(`"abc`)
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Fatalf("expected Invalid, got %v", tok.Kind)
	}
	if first, ok := bag.FirstError(); !ok || first.Code != diag.LexUnterminatedString {
		t.Fatalf("expected LexUnterminatedString, got %v", bagMessages(bag))
	}
}

func TestPunctuation(t *testing.T) {
	expectTokens(t, "= | : , [ ] { } ) ... * ** _(", []token.Kind{
		token.Assign, token.Pipe, token.Colon, token.Comma,
		token.LBracket, token.RBracket, token.LBrace, token.RBrace, token.RParen,
		token.Ellipsis, token.Star, token.StarStar, token.I18nOpen,
	})
	expectTokens(t, "...dict", []token.Kind{token.Ellipsis, token.Ident})
	expectTokens(t, "**spread", []token.Kind{token.StarStar, token.Ident})
	expectTokens(t, `_("hi")`, []token.Kind{token.I18nOpen, token.StringLit, token.RParen})
}

func TestUnknownChar(t *testing.T) {
	for _, input := range []string{"-", "..", "?", "é"} {
		lx, bag := makeTestLexer(input)
		tokens := lx.All()
		if tokens[0].Kind != token.Invalid {
			t.Fatalf("%q: expected Invalid first token, got %v", input, tokensToString(tokens))
		}
		if first, ok := bag.FirstError(); !ok || first.Code != diag.LexUnknownChar {
			t.Fatalf("%q: expected LexUnknownChar, got %v", input, bagMessages(bag))
		}
	}
}

func TestCommentsAreTrivia(t *testing.T) {
	tokens := expectTokens(t, "{# c1 #}key1=val1{# c2 #} key2=val2", []token.Kind{
		token.Key, token.Assign, token.Ident, token.Key, token.Assign, token.Ident,
	})
	if got := tokens[0].Leading; len(got) != 1 || got[0].Kind != token.TriviaComment || got[0].Text != "{# c1 #}" {
		t.Fatalf("leading of first key: %+v", got)
	}
	lead := tokens[3].Leading
	if len(lead) != 2 || lead[0].Kind != token.TriviaComment || lead[1].Kind != token.TriviaSpace {
		t.Fatalf("leading of second key: %+v", lead)
	}
	if tokens[3].HasLeadingSpace() != true || tokens[0].HasLeadingSpace() {
		t.Fatal("HasLeadingSpace mismatch")
	}
}

func TestBraceFollowedByComment(t *testing.T) {
	tokens := expectTokens(t, "{{# c #}", []token.Kind{token.LBrace})
	lx, _ := makeTestLexer("{{# c #}")
	all := lx.All()
	eof := all[len(all)-1]
	if len(eof.Leading) != 1 || eof.Leading[0].Text != "{# c #}" {
		t.Fatalf("expected comment before EOF, got %+v", eof.Leading)
	}
	if tokens[0].Span.Start != 0 || tokens[0].Span.End != 1 {
		t.Fatalf("brace span = %v", tokens[0].Span)
	}
}

func TestUnterminatedComment(t *testing.T) {
	lx, bag := makeTestLexer("val {# open")
	tokens := lx.All()
	if len(tokens) != 2 || tokens[1].Kind != token.EOF {
		t.Fatalf("tokens: %v", tokensToString(tokens))
	}
	if first, ok := bag.FirstError(); !ok || first.Code != diag.LexUnterminatedComment {
		t.Fatalf("expected LexUnterminatedComment, got %v", bagMessages(bag))
	}
}

func TestWhitespaceKinds(t *testing.T) {
	tokens := expectTokens(t, "a \t\r\n\nb", []token.Kind{token.Ident, token.Ident})
	lead := tokens[1].Leading
	if len(lead) != 2 || lead[0].Kind != token.TriviaSpace || lead[1].Kind != token.TriviaNewline {
		t.Fatalf("leading: %+v", lead)
	}
	if lead[1].Text != "\n\n" {
		t.Fatalf("newlines must coalesce, got %q", lead[1].Text)
	}
}

func TestSpansMatchText(t *testing.T) {
	input := `key=[1, *x|f:'a', {"k": _("v")}] ...rest {# c #}`
	lx, bag := makeTestLexer(input)
	for _, tok := range lx.All() {
		if got := input[tok.Span.Start:tok.Span.End]; got != tok.Text {
			t.Fatalf("span %v covers %q, token text %q", tok.Span, got, tok.Text)
		}
	}
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bagMessages(bag))
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("a b")
	if p := lx.Peek(); p.Text != "a" {
		t.Fatalf("Peek = %q", p.Text)
	}
	if p := lx.Peek(); p.Text != "a" {
		t.Fatalf("second Peek = %q", p.Text)
	}
	if n := lx.Next(); n.Text != "a" {
		t.Fatalf("Next = %q", n.Text)
	}
	if n := lx.Next(); n.Text != "b" {
		t.Fatalf("Next = %q", n.Text)
	}
	if n := lx.Next(); n.Kind != token.EOF {
		t.Fatalf("expected EOF, got %v", n.Kind)
	}
	if n := lx.Next(); n.Kind != token.EOF {
		t.Fatalf("EOF must repeat, got %v", n.Kind)
	}
}
