package diagfmt_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"tagattr/internal/diag"
	"tagattr/internal/diagfmt"
	"tagattr/internal/driver"
	"tagattr/internal/source"
)

func TestPrettyWithFixPreview(t *testing.T) {
	res := driver.ParseText(context.Background(), "test.txt", "key= value", driver.Options{})
	if res.OK() {
		t.Fatal("expected a spacing error")
	}

	var buf bytes.Buffer
	diagfmt.Pretty(&buf, res.Bag, res.FileSet, diagfmt.PrettyOpts{
		PathMode:    diagfmt.PathModeBasename,
		ShowFixes:   true,
		ShowPreview: true,
	})

	want := strings.Join([]string{
		"test.txt:1:6: ERROR SYN2008: Unexpected whitespace or comment after '='",
		"1 | key= value",
		"  |      ^~~~~",
		"  fix: remove the gap around '='",
		"    - key= value",
		"    + key=value",
	}, "\n") + "\n"
	if got := buf.String(); got != want {
		t.Fatalf("pretty output mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyNotesAndContext(t *testing.T) {
	res := driver.ParseText(context.Background(), "test.txt", "a\n[1,\n2", driver.Options{})
	if res.OK() {
		t.Fatal("expected unclosed bracket")
	}

	var buf bytes.Buffer
	diagfmt.Pretty(&buf, res.Bag, res.FileSet, diagfmt.PrettyOpts{
		Context:   1,
		PathMode:  diagfmt.PathModeBasename,
		ShowNotes: true,
	})
	out := buf.String()

	for _, want := range []string{
		"test.txt:3:2: ERROR SYN2005: Unclosed [, expected ']'",
		"2 | [1,",
		"3 | 2",
		"note: test.txt:2:1: opened here",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output lacks %q:\n%s", want, out)
		}
	}
}

func TestPrettyWideCharacters(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("wide.txt", []byte("a='日本' $"))
	bag := diag.NewBag(4)
	bag.Add(diag.NewError(diag.LexUnknownChar, source.Span{File: id, Start: 11, End: 12}, "unexpected character '$'"))

	var buf bytes.Buffer
	diagfmt.Pretty(&buf, bag, fs, diagfmt.PrettyOpts{PathMode: diagfmt.PathModeBasename})
	lines := strings.Split(buf.String(), "\n")
	if len(lines) < 3 {
		t.Fatalf("short output:\n%s", buf.String())
	}
	// 日本 занимают по две колонки
	if want := "  |          ^"; lines[2] != want {
		t.Fatalf("caret line = %q, want %q", lines[2], want)
	}
}

func TestPathModes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("/home/user/project/templates/page.html", []byte("x"))
	fs.SetBaseDir("/home/user/project")
	bag := diag.NewBag(4)
	bag.Add(diag.NewError(diag.SynUnexpectedToken, source.Span{File: id, Start: 0, End: 1}, "Unexpected name 'x'"))

	tests := []struct {
		mode diagfmt.PathMode
		want string
	}{
		{diagfmt.PathModeAbsolute, "/home/user/project/templates/page.html:1:1"},
		{diagfmt.PathModeRelative, "templates/page.html:1:1"},
		{diagfmt.PathModeBasename, "page.html:1:1"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		diagfmt.Pretty(&buf, bag, fs, diagfmt.PrettyOpts{PathMode: tt.mode})
		if !strings.HasPrefix(buf.String(), tt.want) {
			t.Fatalf("mode %d: output %q does not start with %q", tt.mode, buf.String(), tt.want)
		}
	}
}

func TestPrettyTimings(t *testing.T) {
	res := driver.ParseText(context.Background(), "t", "a=1", driver.Options{Timings: true})
	var buf bytes.Buffer
	diagfmt.Pretty(&buf, res.Bag, res.FileSet, diagfmt.PrettyOpts{})
	out := buf.String()
	if !strings.HasPrefix(out, "INFO OBS5001: timings (parse)") {
		t.Fatalf("unexpected timing header:\n%s", out)
	}
	if !strings.Contains(out, "  parse ") || !strings.Contains(out, "  build ") {
		t.Fatalf("phases missing:\n%s", out)
	}
}
