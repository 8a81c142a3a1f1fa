package lexer

import (
	"testing"

	"tagattr/internal/source"
)

// helper function to create a file
func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test", []byte(content))
	return fs.Get(id)
}

func TestSequentialReading(t *testing.T) {
	cursor := NewCursor(createFile("a\nb"))

	for i, want := range []byte{'a', '\n', 'b'} {
		if cursor.EOF() {
			t.Fatalf("unexpected EOF at %d", i)
		}
		if got := cursor.Peek(); got != want {
			t.Fatalf("Peek() at %d = %q, want %q", i, got, want)
		}
		if got := cursor.Bump(); got != want {
			t.Fatalf("Bump() at %d = %q, want %q", i, got, want)
		}
	}
	if !cursor.EOF() {
		t.Fatal("expected EOF")
	}
	if cursor.Peek() != 0 || cursor.Bump() != 0 {
		t.Fatal("reads past EOF must return 0")
	}
}

func TestMarkResetAndSpan(t *testing.T) {
	cursor := NewCursor(createFile("key=val"))
	m := cursor.Mark()
	for range 3 {
		cursor.Bump()
	}
	sp := cursor.SpanFrom(m)
	if sp.Start != 0 || sp.End != 3 {
		t.Fatalf("SpanFrom = %v", sp)
	}
	if !cursor.Eat('=') || cursor.Eat('=') {
		t.Fatal("Eat must consume exactly one '='")
	}
	cursor.Reset(m)
	if cursor.Off != 0 {
		t.Fatalf("Reset left Off = %d", cursor.Off)
	}
}

func TestPeekHelpers(t *testing.T) {
	cursor := NewCursor(createFile("**x"))
	if b0, b1, ok := cursor.Peek2(); !ok || b0 != '*' || b1 != '*' {
		t.Fatalf("Peek2 = %q %q %v", b0, b1, ok)
	}
	if _, _, _, ok := cursor.Peek3(); !ok {
		t.Fatal("Peek3 should succeed on 3 bytes")
	}
	if cursor.PeekAt(2) != 'x' || cursor.PeekAt(3) != 0 {
		t.Fatal("PeekAt out of expectations")
	}
	cursor.Bump()
	if _, _, _, ok := cursor.Peek3(); ok {
		t.Fatal("Peek3 must fail with 2 bytes left")
	}
}
