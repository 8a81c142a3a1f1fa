package tagattr_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"tagattr"
)

func tok(text string, start, end, line, col uint32) tagattr.Token {
	return tagattr.Token{
		Text: text,
		Span: tagattr.Span{Start: start, End: end},
		Pos:  tagattr.LineCol{Line: line, Col: col},
	}
}

// basic builds a value without filters or spread: outer span == token span.
func basic(kind tagattr.ValueKind, t tagattr.Token) tagattr.Value {
	return tagattr.Value{Kind: kind, Token: t, Span: t.Span, Pos: t.Pos}
}

func span(start, end uint32) tagattr.Span {
	return tagattr.Span{Start: start, End: end}
}

func pos(line, col uint32) tagattr.LineCol {
	return tagattr.LineCol{Line: line, Col: col}
}

func mustParse(t *testing.T, input string) []tagattr.Attribute {
	t.Helper()
	attrs, err := tagattr.ParseTag(input)
	if err != nil {
		t.Fatalf("ParseTag(%q): %v", input, err)
	}
	return attrs
}

func TestKeyValue(t *testing.T) {
	key := tok("key", 0, 3, 1, 1)
	want := []tagattr.Attribute{{
		Key:   &key,
		Value: basic(tagattr.KindVariable, tok("val", 4, 7, 1, 5)),
		Span:  span(0, 7),
		Pos:   pos(1, 1),
	}}
	if diff := cmp.Diff(want, mustParse(t, "key=val")); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSpreadDictAttribute(t *testing.T) {
	want := []tagattr.Attribute{{
		Value: tagattr.Value{
			Kind:  tagattr.KindDict,
			Token: tok(`{"key": "value"}`, 3, 19, 1, 4),
			Children: []tagattr.Value{
				basic(tagattr.KindString, tok(`"key"`, 4, 9, 1, 5)),
				basic(tagattr.KindString, tok(`"value"`, 11, 18, 1, 12)),
			},
			Spread: tagattr.SpreadAttr,
			Span:   span(0, 19),
			Pos:    pos(1, 1),
		},
		Span: span(0, 19),
		Pos:  pos(1, 1),
	}}
	got := mustParse(t, `...{"key": "value"}`)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if !got[0].IsSpread() {
		t.Fatalf("IsSpread() = false")
	}
}

func TestFilterWithArgument(t *testing.T) {
	arg := basic(tagattr.KindString, tok("'hello'", 14, 21, 1, 15))
	arg.Span = span(13, 21)
	arg.Pos = pos(1, 14)
	want := []tagattr.Attribute{{
		Value: tagattr.Value{
			Kind:  tagattr.KindVariable,
			Token: tok("value", 0, 5, 1, 1),
			Filters: []tagattr.Filter{{
				Name: tok("default", 6, 13, 1, 7),
				Arg:  &arg,
				Span: span(5, 21),
				Pos:  pos(1, 6),
			}},
			Span: span(0, 21),
			Pos:  pos(1, 1),
		},
		Span: span(0, 21),
		Pos:  pos(1, 1),
	}}
	if diff := cmp.Diff(want, mustParse(t, "value|default:'hello'")); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterArgumentWithWhitespace(t *testing.T) {
	attrs := mustParse(t, "value|default : 'hello'")
	f := attrs[0].Value.Filters[0]
	if f.Arg == nil {
		t.Fatalf("argument missing")
	}
	if f.Arg.Span != span(13, 23) || f.Arg.Pos != pos(1, 14) {
		t.Fatalf("arg span = %v at %v, want 13..23 at 1:14", f.Arg.Span, f.Arg.Pos)
	}
	if f.Arg.Token.Span != span(16, 23) {
		t.Fatalf("arg token span = %v, want 16..23", f.Arg.Token.Span)
	}
	if f.Span != span(5, 23) {
		t.Fatalf("filter span = %v, want 5..23", f.Span)
	}
}

func TestListWithSpreadItem(t *testing.T) {
	inner := tagattr.Value{
		Kind:  tagattr.KindList,
		Token: tok("[2, 3]", 5, 11, 1, 6),
		Children: []tagattr.Value{
			basic(tagattr.KindInt, tok("2", 6, 7, 1, 7)),
			basic(tagattr.KindInt, tok("3", 9, 10, 1, 10)),
		},
		Spread: tagattr.SpreadList,
		Span:   span(4, 11),
		Pos:    pos(1, 5),
	}
	want := []tagattr.Attribute{{
		Value: tagattr.Value{
			Kind:  tagattr.KindList,
			Token: tok("[1, *[2, 3], 4]", 0, 15, 1, 1),
			Children: []tagattr.Value{
				basic(tagattr.KindInt, tok("1", 1, 2, 1, 2)),
				inner,
				basic(tagattr.KindInt, tok("4", 13, 14, 1, 14)),
			},
			Span: span(0, 15),
			Pos:  pos(1, 1),
		},
		Span: span(0, 15),
		Pos:  pos(1, 1),
	}}
	if diff := cmp.Diff(want, mustParse(t, "[1, *[2, 3], 4]")); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSpecialKeys(t *testing.T) {
	attrs := mustParse(t, "@click.stop=handler attr:key=val")
	if len(attrs) != 2 {
		t.Fatalf("got %d attrs, want 2", len(attrs))
	}
	k0, k1 := attrs[0].Key, attrs[1].Key
	if k0 == nil || *k0 != tok("@click.stop", 0, 11, 1, 1) {
		t.Fatalf("first key = %+v", k0)
	}
	if k1 == nil || *k1 != tok("attr:key", 20, 28, 1, 21) {
		t.Fatalf("second key = %+v", k1)
	}
	if attrs[1].Span != span(20, 32) || attrs[1].Value.Token != tok("val", 29, 32, 1, 30) {
		t.Fatalf("second attribute = %+v", attrs[1])
	}
}

func TestCommentWithNewlines(t *testing.T) {
	attrs := mustParse(t, "key1=val1 {# multi\nline\ncomment #} key2=val2")
	if len(attrs) != 2 {
		t.Fatalf("got %d attrs, want 2", len(attrs))
	}
	second := attrs[1]
	if *second.Key != tok("key2", 35, 39, 3, 12) {
		t.Fatalf("key2 = %+v", *second.Key)
	}
	if second.Value.Token != tok("val2", 40, 44, 3, 17) {
		t.Fatalf("val2 = %+v", second.Value.Token)
	}
	if second.Span != span(35, 44) || second.Pos != pos(3, 12) {
		t.Fatalf("attribute span = %v at %v", second.Span, second.Pos)
	}
}

func TestDictCommentsAroundColonsAndCommas(t *testing.T) {
	input := `{
            "key1" {# comment before colon #}: {# comment after colon #} "value1" {# comment before comma #}, {# comment after comma #}
            "key2": "value2"
        }`
	attrs := mustParse(t, input)
	if len(attrs) != 1 {
		t.Fatalf("got %d attrs, want 1", len(attrs))
	}
	dict := attrs[0].Value
	if dict.Kind != tagattr.KindDict || dict.Token.Span != span(0, 176) || dict.Span != span(0, 176) {
		t.Fatalf("dict = %s %v / %v", dict.Kind, dict.Token.Span, dict.Span)
	}
	want := []tagattr.Value{
		basic(tagattr.KindString, tok(`"key1"`, 14, 20, 2, 13)),
		basic(tagattr.KindString, tok(`"value1"`, 75, 83, 2, 74)),
		basic(tagattr.KindString, tok(`"key2"`, 150, 156, 3, 13)),
		basic(tagattr.KindString, tok(`"value2"`, 158, 166, 3, 21)),
	}
	if diff := cmp.Diff(want, dict.Children); diff != "" {
		t.Fatalf("children mismatch (-want +got):\n%s", diff)
	}
	entries := dict.Entries()
	if len(entries) != 2 || entries[1].Key.Token.Text != `"key2"` || entries[1].Value.Token.Text != `"value2"` {
		t.Fatalf("entries = %+v", entries)
	}
}

func TestDictSpreadEntries(t *testing.T) {
	attrs := mustParse(t, `{"a": 1, **rest, "b": x|upper}`)
	dict := attrs[0].Value
	if len(dict.Children) != 5 {
		t.Fatalf("got %d children, want 5 (2 pairs + 1 spread)", len(dict.Children))
	}
	spread := dict.Children[2]
	if spread.Spread != tagattr.SpreadDict || spread.Token.Text != "rest" {
		t.Fatalf("spread child = %+v", spread)
	}
	// "**" moves the outer start two bytes back
	if spread.Span.Start+2 != spread.Token.Span.Start {
		t.Fatalf("spread span %v vs token span %v", spread.Span, spread.Token.Span)
	}
	entries := dict.Entries()
	if len(entries) != 3 || entries[1].Key != nil || entries[1].Value.Token.Text != "rest" {
		t.Fatalf("entries = %+v", entries)
	}
	if entries[2].Value.Filters[0].Name.Text != "upper" {
		t.Fatalf("value filter lost: %+v", entries[2].Value)
	}
}

func TestDictKeyFilters(t *testing.T) {
	attrs := mustParse(t, `{"key"|upper|lower: "value"|default:"x"}`)
	key := attrs[0].Value.Children[0]
	if len(key.Filters) != 2 || key.Filters[0].Name.Text != "upper" || key.Filters[1].Name.Text != "lower" {
		t.Fatalf("key filters = %+v", key.Filters)
	}
	if key.Filters[1].Arg != nil {
		t.Fatalf("dict key filters take no argument")
	}
	val := attrs[0].Value.Children[1]
	if len(val.Filters) != 1 || val.Filters[0].Arg == nil || val.Filters[0].Arg.Token.Text != `"x"` {
		t.Fatalf("value filters = %+v", val.Filters)
	}
}

func TestSpreadFilterInsideDict(t *testing.T) {
	// the colon after a filter of a '**' value starts the filter argument
	attrs := mustParse(t, `{**spread|abc: 123}`)
	child := attrs[0].Value.Children
	if len(child) != 1 || child[0].Spread != tagattr.SpreadDict {
		t.Fatalf("children = %+v", child)
	}
	f := child[0].Filters[0]
	if f.Name.Text != "abc" || f.Arg == nil || f.Arg.Kind != tagattr.KindInt || f.Arg.Token.Text != "123" {
		t.Fatalf("filter = %+v", f)
	}
}

func TestFilterArgumentIsGreedy(t *testing.T) {
	attrs := mustParse(t, `x|f:a|g`)
	filters := attrs[0].Value.Filters
	if len(filters) != 1 {
		t.Fatalf("got %d filters on x, want 1", len(filters))
	}
	arg := filters[0].Arg
	if arg == nil || arg.Token.Text != "a" || len(arg.Filters) != 1 || arg.Filters[0].Name.Text != "g" {
		t.Fatalf("argument = %+v", arg)
	}
}

func TestFilterOrderAndWhitespace(t *testing.T) {
	attrs := mustParse(t, "value  |  lower    key=val  |  upper  |  title    key2=val2")
	if len(attrs) != 3 {
		t.Fatalf("got %d attrs, want 3", len(attrs))
	}
	var names []string
	for _, f := range attrs[1].Value.Filters {
		names = append(names, f.Name.Text)
	}
	if strings.Join(names, ",") != "upper,title" {
		t.Fatalf("filters = %v", names)
	}
	if attrs[1].Pos != pos(1, 20) || attrs[2].Key.Span.Start != 50 {
		t.Fatalf("positions: %v, %v", attrs[1].Pos, attrs[2].Key.Span)
	}
}

func TestTranslation(t *testing.T) {
	cases := []struct {
		input string
		text  string
		end   uint32
	}{
		{`_("one")`, `_("one")`, 8},
		{`_('one')`, `_('one')`, 8},
		{`_(  "test"  )`, `_("test")`, 13},
		{`_( {# c #} 'it"s' )`, `_('it"s')`, 19},
		{"_(\n'x'\n)", `_('x')`, 8},
	}
	for _, tc := range cases {
		attrs := mustParse(t, tc.input)
		v := attrs[0].Value
		if v.Kind != tagattr.KindTranslation {
			t.Fatalf("%q: kind = %s", tc.input, v.Kind)
		}
		if v.Token.Text != tc.text {
			t.Fatalf("%q: text = %q, want %q", tc.input, v.Token.Text, tc.text)
		}
		if v.Token.Span != span(0, tc.end) || v.Span != v.Token.Span {
			t.Fatalf("%q: spans = %v / %v", tc.input, v.Token.Span, v.Span)
		}
	}
}

func TestStringKinds(t *testing.T) {
	cases := []struct {
		input string
		want  tagattr.ValueKind
	}{
		{`"plain"`, tagattr.KindString},
		{`'{{ var }}'`, tagattr.KindExpression},
		{`"{% lorem w 4 %}"`, tagattr.KindExpression},
		{`"{# note #}"`, tagattr.KindExpression},
		{`"text {{ a }} more"`, tagattr.KindExpression},
		{`"{{ unclosed"`, tagattr.KindString},
		{"\"{{ across\n}}\"", tagattr.KindString},
		{`_("{{ var }}")`, tagattr.KindTranslation},
		{`42`, tagattr.KindInt},
		{`-1.5`, tagattr.KindFloat},
		{`1e10`, tagattr.KindFloat},
		{`my.var`, tagattr.KindVariable},
	}
	for _, tc := range cases {
		attrs := mustParse(t, tc.input)
		if got := attrs[0].Value.Kind; got != tc.want {
			t.Fatalf("%q: kind = %s, want %s", tc.input, got, tc.want)
		}
	}
}

func TestUnicodeColumns(t *testing.T) {
	attrs := mustParse(t, `title="héllo" x`)
	x := attrs[1].Value.Token
	if x.Span != span(15, 16) {
		t.Fatalf("span = %v, want byte offsets 15..16", x.Span)
	}
	if x.Pos != pos(1, 15) {
		t.Fatalf("pos = %v, want column 15 counted in runes", x.Pos)
	}
}

func TestMultilinePositions(t *testing.T) {
	attrs := mustParse(t, "a\n  b=[1,\n 2]")
	b := attrs[1]
	if b.Pos != pos(2, 3) {
		t.Fatalf("b pos = %v", b.Pos)
	}
	two := b.Value.Children[1]
	if two.Token != tok("2", 11, 12, 3, 2) {
		t.Fatalf("2 = %+v", two.Token)
	}
}

func TestEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "{# only a comment #}", "\n\t"} {
		attrs, err := tagattr.ParseTag(input)
		if err != nil {
			t.Fatalf("%q: %v", input, err)
		}
		if attrs == nil || len(attrs) != 0 {
			t.Fatalf("%q: attrs = %#v, want empty non-nil", input, attrs)
		}
	}
}

func TestTrailingCommas(t *testing.T) {
	attrs := mustParse(t, `[1, 2,] {"a": 1,} [] {}`)
	if n := len(attrs[0].Value.Children); n != 2 {
		t.Fatalf("list children = %d", n)
	}
	if n := len(attrs[1].Value.Children); n != 2 {
		t.Fatalf("dict children = %d", n)
	}
	if len(attrs[2].Value.Children) != 0 || len(attrs[3].Value.Children) != 0 {
		t.Fatalf("empty containers have children")
	}
}

func TestRejected(t *testing.T) {
	cases := []struct {
		input string
		kind  tagattr.ErrorKind
		code  string
		msg   string
	}{
		{"key= val", tagattr.KindGrammar, "SYN2008", "Unexpected whitespace or comment after '='"},
		{"key =val", tagattr.KindGrammar, "SYN2008", "Unexpected whitespace or comment before '='"},
		{"key = val", tagattr.KindGrammar, "SYN2008", "Unexpected whitespace or comment before '='"},
		{"key{# c #}=val", tagattr.KindGrammar, "SYN2008", "Unexpected whitespace or comment before '='"},
		{"key={# c #}val", tagattr.KindGrammar, "SYN2008", "Unexpected whitespace or comment after '='"},
		{`{[1, 2]: "value"}`, tagattr.KindSemantic, "SEM3002", "Dictionary keys cannot be lists or dictionaries"},
		{`{{"a": 1}: "value"}`, tagattr.KindSemantic, "SEM3002", "Dictionary keys cannot be lists or dictionaries"},
		{"key=", tagattr.KindSemantic, "SEM3001", "Missing value for key: key"},
		{":key=val", tagattr.KindGrammar, "SYN2010", "Unexpected colon"},
		{"...key=val", tagattr.KindGrammar, "SYN2001", "Unexpected key 'key=': keys are only allowed on tag attributes"},
		{"_('hello')=val", tagattr.KindGrammar, "SYN2001", "Unexpected '=': attribute key must be a name directly followed by '='"},
		{`"key"=val`, tagattr.KindGrammar, "SYN2001", "Unexpected '=': attribute key must be a name directly followed by '='"},
		{"key[0]=val", tagattr.KindGrammar, "SYN2001", "Unexpected '=': attribute key must be a name directly followed by '='"},
		{`value=val|yesno:"yes,no":arg`, tagattr.KindGrammar, "SYN2011", "Filter argument (':arg') must follow a filter ('|filter')"},
		{"x:y", tagattr.KindGrammar, "SYN2011", "Filter argument (':arg') must follow a filter ('|filter')"},
		{`{"a" "b"}`, tagattr.KindGrammar, "SYN2012", "Dictionary key is missing a value"},
		{`{"a":}`, tagattr.KindGrammar, "SYN2012", "Dictionary key is missing a value"},
		{`{"a": 1 "b": 2}`, tagattr.KindGrammar, "SYN2006", "Expected ',' or '}', got string '\"b\"'"},
		{"[1 2]", tagattr.KindGrammar, "SYN2005", "Expected ',' or ']', got number '2'"},
		{"[1, 2", tagattr.KindGrammar, "SYN2005", "Unclosed [, expected ']'"},
		{"x|", tagattr.KindGrammar, "SYN2003", "Expected filter, got end of input"},
		{"x|'f'", tagattr.KindGrammar, "SYN2003", "Expected filter, got string ''f''"},
		{"_(x)", tagattr.KindGrammar, "SYN2004", "Expected string literal after '_(', got name 'x'"},
		{"_('x' 'y')", tagattr.KindGrammar, "SYN2007", "Expected ')' to close translation, got string ''y''"},
		{"$", tagattr.KindGrammar, "LEX1001", "unexpected character '$'"},
		{`"open`, tagattr.KindGrammar, "LEX1002", ""},
		{"1abc", tagattr.KindGrammar, "LEX1004", ""},
	}
	for _, tc := range cases {
		_, err := tagattr.ParseTag(tc.input)
		var pe *tagattr.ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("%q: error = %v, want *ParseError", tc.input, err)
		}
		if pe.Kind != tc.kind || pe.Code != tc.code {
			t.Fatalf("%q: got %s %s (%s), want %s %s", tc.input, pe.Kind, pe.Code, pe.Message, tc.kind, tc.code)
		}
		if tc.msg != "" && pe.Message != tc.msg {
			t.Fatalf("%q: message = %q, want %q", tc.input, pe.Message, tc.msg)
		}
	}
}

func TestSpreadErrors(t *testing.T) {
	cases := []struct {
		input string
		code  string
		msg   string
	}{
		{"...", "SYN2100", "Spread syntax '...' is missing a value"},
		{"... x", "SYN2100", "Spread syntax '...' is missing a value"},
		{"...*x", "SYN2107", "Spread syntax '*' found outside of a list"},
		{"...**x", "SYN2108", "Spread syntax '**' found outside of a dictionary"},
		{"......x", "SYN2100", "Spread syntax '...' is missing a value"},
		{"[...x]", "SYN2102", "Spread syntax '...' found in list. It must be used on tag attributes only"},
		{"{...x}", "SYN2103", "Spread syntax '...' found in dict. It must be used on tag attributes only"},
		{"key=...x", "SYN2104", "Spread syntax '...' cannot follow a key ('key=...attrs')"},
		{"x|...f", "SYN2105", "Spread syntax cannot be used inside of a filter"},
		{"x|f:...y", "SYN2105", "Spread syntax cannot be used inside of a filter"},
		{`{"a": **x}`, "SYN2106", "Spread syntax cannot be used in place of a dictionary value"},
		{`{"a": ...x}`, "SYN2106", "Spread syntax cannot be used in place of a dictionary value"},
		{"*x", "SYN2107", "Spread syntax '*' found outside of a list"},
		{"key=*x", "SYN2107", "Spread syntax '*' found outside of a list"},
		{"{*x}", "SYN2107", "Spread syntax '*' found outside of a list"},
		{"**x", "SYN2108", "Spread syntax '**' found outside of a dictionary"},
		{"[**x]", "SYN2108", "Spread syntax '**' found outside of a dictionary"},
		{"[* x]", "SYN2100", "Spread syntax '*' is missing a value"},
		{"{** x}", "SYN2100", "Spread syntax '**' is missing a value"},
		{"{**x: 1}", "SYN2109", "Spread syntax cannot be used in place of a dictionary key"},
	}
	for _, tc := range cases {
		_, err := tagattr.ParseTag(tc.input)
		var pe *tagattr.ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("%q: error = %v, want *ParseError", tc.input, err)
		}
		if pe.Code != tc.code || pe.Message != tc.msg {
			t.Fatalf("%q: got %s %q, want %s %q", tc.input, pe.Code, pe.Message, tc.code, tc.msg)
		}
		if pe.Kind != tagattr.KindGrammar {
			t.Fatalf("%q: kind = %s", tc.input, pe.Kind)
		}
	}
}

func TestSpreadWithCommentBeforeValue(t *testing.T) {
	attrs := mustParse(t, "...{# c #}attrs [*{# c #}xs]")
	if attrs[0].Value.Spread != tagattr.SpreadAttr || attrs[0].Value.Span.Start != 0 {
		t.Fatalf("attr spread = %+v", attrs[0].Value)
	}
	if attrs[0].Value.Token.Span != span(10, 15) {
		t.Fatalf("token span = %v", attrs[0].Value.Token.Span)
	}
	item := attrs[1].Value.Children[0]
	if item.Spread != tagattr.SpreadList || item.Token.Text != "xs" {
		t.Fatalf("list item = %+v", item)
	}
}

func TestErrorPosition(t *testing.T) {
	_, err := tagattr.ParseTag("a=1\nkey= val")
	var pe *tagattr.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v", err)
	}
	if pe.Span != span(9, 12) || pe.Pos != pos(2, 6) {
		t.Fatalf("span %v at %v, want 9..12 at 2:6", pe.Span, pe.Pos)
	}
	if got, want := pe.Error(), "grammar error at 2:6: Unexpected whitespace or comment after '='"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestUnclosedNote(t *testing.T) {
	_, err := tagattr.ParseTag("x [1, 2")
	var pe *tagattr.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v", err)
	}
	if len(pe.Notes) != 1 || pe.Notes[0].Message != "opened here" || pe.Notes[0].Span != span(2, 3) {
		t.Fatalf("notes = %+v", pe.Notes)
	}
}

func TestMaxDepth(t *testing.T) {
	ctx := context.Background()
	if _, err := tagattr.Parse(ctx, "[1]", tagattr.Options{MaxDepth: 3}); err != nil {
		t.Fatalf("[1] at depth 3: %v", err)
	}
	_, err := tagattr.Parse(ctx, "[[1]]", tagattr.Options{MaxDepth: 3})
	var pe *tagattr.ParseError
	if !errors.As(err, &pe) || pe.Code != "SEM3005" || pe.Kind != tagattr.KindSemantic {
		t.Fatalf("error = %v", err)
	}

	deep := strings.Repeat("[", 10000) + strings.Repeat("]", 10000)
	_, err = tagattr.ParseTag(deep)
	if !errors.As(err, &pe) || pe.Message != fmt.Sprintf("maximum nesting depth of %d exceeded", tagattr.DefaultMaxDepth) {
		t.Fatalf("deep input: %v", err)
	}
}

func TestDeterministicFailure(t *testing.T) {
	_, err1 := tagattr.ParseTag("{[1]: 2}")
	_, err2 := tagattr.ParseTag("{[1]: 2}")
	if err1 == nil || err1.Error() != err2.Error() {
		t.Fatalf("errors differ: %v / %v", err1, err2)
	}
}

func TestIsDynamicExpression(t *testing.T) {
	if !tagattr.IsDynamicExpression(`"{{ x }}"`) || tagattr.IsDynamicExpression(`"{{ x"`) {
		t.Fatalf("classifier mismatch")
	}
}
