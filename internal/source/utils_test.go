package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestToLineCol(t *testing.T) {
	tests := []struct {
		name    string
		content string
		off     uint32
		want    LineCol
	}{
		{"start of file", "key=val", 0, LineCol{1, 1}},
		{"middle of first line", "key=val", 4, LineCol{1, 5}},
		{"end of file", "key=val", 7, LineCol{1, 8}},
		{"newline belongs to its line", "a\nb", 1, LineCol{1, 2}},
		{"after newline", "a\nb", 2, LineCol{2, 1}},
		{"third line", "a\n\nccc", 5, LineCol{3, 3}},
		{"columns count code points", "ключ=знач", 9, LineCol{1, 6}},
		{"multibyte on second line", "x\nяя=1", 6, LineCol{2, 3}},
		{"past the end clamps", "ab", 99, LineCol{1, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := []byte(tt.content)
			got := toLineCol(content, buildLineIndex(content), tt.off)
			if got != tt.want {
				t.Fatalf("toLineCol(%q, %d) = %+v, want %+v", tt.content, tt.off, got, tt.want)
			}
		})
	}
}

func TestNormalizeCRLF(t *testing.T) {
	got, changed := normalizeCRLF([]byte("a\r\nb\rc\r\n"))
	if !changed {
		t.Fatal("expected CRLF to be reported")
	}
	if string(got) != "a\nb\rc\n" {
		t.Fatalf("normalizeCRLF = %q", got)
	}

	same, changed := normalizeCRLF([]byte("plain"))
	if changed || string(same) != "plain" {
		t.Fatalf("unexpected change: %q %v", same, changed)
	}
}

func TestRelativePathOutsideBaseFallsBackToAbsolute(t *testing.T) {
	tmp := t.TempDir()

	baseDir := filepath.Join(tmp, "base")
	otherDir := filepath.Join(tmp, "other")
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		t.Fatalf("failed to create base dir: %v", err)
	}
	if err := os.MkdirAll(otherDir, 0o755); err != nil {
		t.Fatalf("failed to create other dir: %v", err)
	}

	target := filepath.Join(otherDir, "page.html")
	got, err := RelativePath(target, baseDir)
	if err != nil {
		t.Fatalf("RelativePath returned error: %v", err)
	}
	if want := normalizePath(target); got != want {
		t.Fatalf("expected absolute fallback %q, got %q", want, got)
	}
}

func TestRelativePathInsideBaseStaysRelative(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, "templates", "page.html")

	got, err := RelativePath(target, tmp)
	if err != nil {
		t.Fatalf("RelativePath returned error: %v", err)
	}
	if got != "templates/page.html" {
		t.Fatalf("expected relative path, got %q", got)
	}
}
