package driver

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"tagattr/internal/diag"
	"tagattr/internal/source"
)

func TestDiskCacheRoundTrip(t *testing.T) {
	c, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	key := CheckKey([32]byte{1}, 128, []string{"component"})

	var got CheckPayload
	if hit, err := c.Get(key, &got); err != nil || hit {
		t.Fatalf("empty cache: hit=%v err=%v", hit, err)
	}

	diags := []diag.Diagnostic{
		diag.NewError(diag.SynUnclosedBracket, source.Span{File: 3, Start: 10, End: 11}, "Unclosed list, expected ']'").
			WithNote(source.Span{File: 3, Start: 4, End: 5}, "opened here"),
	}
	want := CheckPayload{Path: "a.html", Tags: 2, Attrs: 5, Diagnostics: PackDiagnostics(diags)}
	if err := c.Put(key, &want); err != nil {
		t.Fatalf("put: %v", err)
	}
	hit, err := c.Get(key, &got)
	if err != nil || !hit {
		t.Fatalf("get: hit=%v err=%v", hit, err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}

	restored := UnpackDiagnostics(7, got.Diagnostics)
	if restored[0].Primary != (source.Span{File: 7, Start: 10, End: 11}) {
		t.Fatalf("primary = %+v", restored[0].Primary)
	}
	if restored[0].Notes[0].Span.File != 7 || restored[0].Notes[0].Msg != "opened here" {
		t.Fatalf("note = %+v", restored[0].Notes[0])
	}

	if err := c.DropAll(); err != nil {
		t.Fatalf("drop: %v", err)
	}
	if hit, _ := c.Get(key, &got); hit {
		t.Fatalf("entry survived DropAll")
	}
}

func TestNilDiskCache(t *testing.T) {
	var c *DiskCache
	if err := c.Put(Digest{}, &CheckPayload{}); err != nil {
		t.Fatalf("nil put: %v", err)
	}
	if hit, err := c.Get(Digest{}, &CheckPayload{}); hit || err != nil {
		t.Fatalf("nil get: hit=%v err=%v", hit, err)
	}
}

func TestCheckKey(t *testing.T) {
	base := CheckKey([32]byte{1}, 128, []string{"a", "b"})
	if base.IsZero() {
		t.Fatalf("zero digest")
	}
	if CheckKey([32]byte{1}, 128, []string{"b", "a"}) != base {
		t.Fatalf("tag order must not change the key")
	}
	if CheckKey([32]byte{2}, 128, []string{"a", "b"}) == base {
		t.Fatalf("content must change the key")
	}
	if CheckKey([32]byte{1}, 64, []string{"a", "b"}) == base {
		t.Fatalf("max depth must change the key")
	}
	if CheckKey([32]byte{1}, 128, []string{"ab"}) == CheckKey([32]byte{1}, 128, []string{"a", "b"}) {
		t.Fatalf("tag boundaries must be part of the key")
	}
}

func TestMemCache(t *testing.T) {
	c := NewMemCache(1)
	k1 := CheckKey([32]byte{1}, 0, nil)
	k2 := CheckKey([32]byte{2}, 0, nil)
	c.Put("a.html", k1, CheckPayload{Tags: 3})
	if p, ok := c.Get("a.html", k1); !ok || p.Tags != 3 {
		t.Fatalf("hit expected, got ok=%v payload=%+v", ok, p)
	}
	if _, ok := c.Get("a.html", k2); ok {
		t.Fatalf("stale key must miss")
	}
	c.Forget("a.html")
	if c.Len() != 0 {
		t.Fatalf("len = %d after Forget", c.Len())
	}
}
