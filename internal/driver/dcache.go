package driver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"tagattr/internal/diag"
	"tagattr/internal/source"
)

// diskCacheSchemaVersion: увеличивать при изменении CheckPayload.
const diskCacheSchemaVersion uint16 = 1

// DiskCache stores check results of template files keyed by CheckKey.
// Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// CheckPayload is the cached outcome of checking one template file.
// Spans are stored as offsets into the template; the file id is
// reassigned on load.
type CheckPayload struct {
	Schema      uint16
	Path        string
	Tags        int // сколько вызовов тегов найдено
	Attrs       int // сколько атрибутов разобрано
	Diagnostics []CachedDiagnostic
}

type CachedDiagnostic struct {
	Severity diag.Severity
	Code     diag.Code
	Message  string
	Start    uint32
	End      uint32
	Notes    []CachedNote `msgpack:",omitempty"`
	Fixes    []CachedFix  `msgpack:",omitempty"`
}

type CachedNote struct {
	Start uint32
	End   uint32
	Msg   string
}

type CachedFix struct {
	Title string
	Edits []CachedEdit
}

type CachedEdit struct {
	Start   uint32
	End     uint32
	NewText string
}

// OpenDiskCache opens (creating if needed) $XDG_CACHE_HOME/<app>.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenDiskCacheAt(filepath.Join(base, app))
}

// OpenDiskCacheAt opens a cache rooted at dir.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	return &DiskCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *DiskCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := key.String()
	// подкаталог по первому байту, чтобы не складывать всё в одну папку
	return filepath.Join(c.dir, "checks", hexKey[:2], hexKey+".mp")
}

// Put writes payload atomically (temp file + rename).
func (c *DiskCache) Put(key Digest, payload *CheckPayload) (err error) {
	if c == nil || payload == nil {
		return nil
	}
	payload.Schema = diskCacheSchemaVersion

	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err = os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		// после успешного Rename временного файла уже нет
		if rmErr := os.Remove(f.Name()); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) && err == nil {
			err = rmErr
		}
	}()

	if err = msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads the payload for key. A missing entry or a payload written by
// another schema version is reported as a miss.
func (c *DiskCache) Get(key Digest, out *CheckPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	var payload CheckPayload
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		return false, fmt.Errorf("decode cache entry %s: %w", key, err)
	}
	if payload.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	*out = payload
	return true, nil
}

// DropAll removes every cached entry.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// переименовываем, чтобы параллельный Get не увидел полуудалённый каталог
	old := c.dir + ".old-" + time.Now().Format("20060102150405.000000")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return os.MkdirAll(c.dir, 0o755)
		}
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}

// PackDiagnostics converts diagnostics of one template into cache form.
func PackDiagnostics(diags []diag.Diagnostic) []CachedDiagnostic {
	if len(diags) == 0 {
		return nil
	}
	out := make([]CachedDiagnostic, 0, len(diags))
	for _, d := range diags {
		cd := CachedDiagnostic{
			Severity: d.Severity,
			Code:     d.Code,
			Message:  d.Message,
			Start:    d.Primary.Start,
			End:      d.Primary.End,
		}
		for _, n := range d.Notes {
			cd.Notes = append(cd.Notes, CachedNote{Start: n.Span.Start, End: n.Span.End, Msg: n.Msg})
		}
		for _, f := range d.Fixes {
			cf := CachedFix{Title: f.Title}
			for _, e := range f.Edits {
				cf.Edits = append(cf.Edits, CachedEdit{Start: e.Span.Start, End: e.Span.End, NewText: e.NewText})
			}
			cd.Fixes = append(cd.Fixes, cf)
		}
		out = append(out, cd)
	}
	return out
}

// UnpackDiagnostics restores cached diagnostics against file.
func UnpackDiagnostics(file source.FileID, cached []CachedDiagnostic) []diag.Diagnostic {
	if len(cached) == 0 {
		return nil
	}
	out := make([]diag.Diagnostic, 0, len(cached))
	for _, cd := range cached {
		d := diag.New(cd.Severity, cd.Code, source.Span{File: file, Start: cd.Start, End: cd.End}, cd.Message)
		for _, n := range cd.Notes {
			d = d.WithNote(source.Span{File: file, Start: n.Start, End: n.End}, n.Msg)
		}
		for _, f := range cd.Fixes {
			edits := make([]diag.FixEdit, 0, len(f.Edits))
			for _, e := range f.Edits {
				edits = append(edits, diag.FixEdit{Span: source.Span{File: file, Start: e.Start, End: e.End}, NewText: e.NewText})
			}
			d = d.WithFix(f.Title, edits...)
		}
		out = append(out, d)
	}
	return out
}
