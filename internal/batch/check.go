package batch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"tagattr/internal/diag"
	"tagattr/internal/driver"
	"tagattr/internal/observ"
	"tagattr/internal/parser"
	"tagattr/internal/source"
	"tagattr/internal/trace"
)

type Options struct {
	Tags           []string
	MaxDepth       int
	MaxDiagnostics int // на один вызов тега
	Jobs           int
	Timings        bool

	Disk   *driver.DiskCache // nil → без дискового кэша
	Memory *driver.MemCache  // nil → без кэша в памяти

	// Events получает прогресс для UI. Check не закрывает канал.
	Events chan<- Event
}

// FileResult is the outcome for one template.
type FileResult struct {
	Path        string
	FileID      source.FileID
	Tags        int
	Attrs       int
	Diagnostics []diag.Diagnostic
	Cached      bool
	Unreadable  bool

	key      driver.Digest
	snippets []snippet
}

type snippet struct {
	id   source.FileID
	base uint32
}

// HasErrors reports whether any diagnostic of the file is an error.
func (r *FileResult) HasErrors() bool {
	for i := range r.Diagnostics {
		if r.Diagnostics[i].Severity >= diag.SevError {
			return true
		}
	}
	return false
}

type Result struct {
	FileSet *source.FileSet
	Files   []FileResult
	// Bag holds all diagnostics positioned in the templates, plus timings.
	Bag *diag.Bag
}

// Summary counts what was checked.
type Summary struct {
	Files, Tags, Attrs, Errors, Cached int
}

func (r *Result) Summary() Summary {
	var s Summary
	for i := range r.Files {
		f := &r.Files[i]
		s.Files++
		s.Tags += f.Tags
		s.Attrs += f.Attrs
		if f.HasErrors() {
			s.Errors++
		}
		if f.Cached {
			s.Cached++
		}
	}
	return s
}

// Collect expands directories into the files with one of exts, sorted.
// Explicit file arguments are kept whatever their extension.
func Collect(paths, exts []string) ([]string, error) {
	var out []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			out = append(out, p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if d.IsDir() {
				if path != p && len(d.Name()) > 1 && d.Name()[0] == '.' {
					return filepath.SkipDir
				}
				return nil
			}
			if slices.Contains(exts, filepath.Ext(path)) {
				out = append(out, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", p, err)
		}
	}
	slices.Sort(out)
	return slices.Compact(out), nil
}

// Check parses every tag invocation of every file in paths.
// The returned error is only context cancellation; unreadable files become
// IO diagnostics.
func Check(ctx context.Context, paths []string, opts Options) (*Result, error) {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = parser.DefaultMaxDepth
	}
	tracer := trace.FromContext(ctx)
	parent := trace.ParentID(ctx)
	timer := observ.NewTimer()

	fset := source.NewFileSet()
	res := &Result{FileSet: fset, Files: make([]FileResult, 0, len(paths))}

	// 1. загрузка, кэш, нарезка на сниппеты: последовательно
	span := trace.Begin(tracer, trace.ScopePass, "scan", parent)
	idx := timer.Begin("scan")
	var ids []source.FileID
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		fr := loadFile(fset, path, &opts)
		emit(ctx, opts.Events, Event{File: path, Stage: StageScan, Status: StatusWorking})
		if fr.Cached || fr.Unreadable {
			emit(ctx, opts.Events, Event{File: path, Stage: StageScan, Status: statusOf(&fr), Errors: countErrors(&fr)})
		}
		for _, sn := range fr.snippets {
			ids = append(ids, sn.id)
		}
		res.Files = append(res.Files, fr)
	}
	timer.End(idx, fmt.Sprintf("%d files", len(paths)))
	span.WithExtra("files", strconv.Itoa(len(paths))).WithExtra("snippets", strconv.Itoa(len(ids))).End("")

	// 2. разбор всех сниппетов параллельно
	emit(ctx, opts.Events, Event{Stage: StageParse, Status: StatusWorking})
	span = trace.Begin(tracer, trace.ScopePass, "parse", parent)
	idx = timer.Begin("parse")
	popts := driver.Options{MaxDepth: opts.MaxDepth, MaxDiagnostics: opts.MaxDiagnostics}
	parsed, err := driver.ParseMany(trace.WithSpan(ctx, span), fset, ids, popts, opts.Jobs)
	timer.End(idx, fmt.Sprintf("%d snippets", len(ids)))
	span.End("")
	if err != nil {
		return nil, err
	}

	// 3. перенос диагностик на шаблоны, запись в кэш
	span = trace.Begin(tracer, trace.ScopePass, "collect", parent)
	idx = timer.Begin("collect")
	next := 0
	for i := range res.Files {
		fr := &res.Files[i]
		if fr.Cached || fr.Unreadable {
			continue
		}
		fspan := trace.Begin(tracer, trace.ScopeFile, "file", span.ID()).WithExtra("path", fr.Path)
		for _, sn := range fr.snippets {
			pr := parsed[next]
			next++
			fr.Attrs += len(pr.Attrs)
			for _, d := range pr.Bag.Items() {
				fr.Diagnostics = append(fr.Diagnostics, d.Rebase(fr.FileID, sn.base))
			}
		}
		storeCache(fr, &opts)
		fspan.WithExtra("tags", strconv.Itoa(fr.Tags)).End(okNote(!fr.HasErrors()))
		emit(ctx, opts.Events, Event{File: fr.Path, Stage: StageCollect, Status: statusOf(fr), Errors: countErrors(fr)})
	}
	timer.End(idx, "")
	span.End("")

	res.Bag = collectBag(res)
	if opts.Timings && fset.Len() > 0 {
		if d, ok := driver.TimingNote("check", "", timer.Report()); ok {
			res.Bag.Add(d)
		}
	}
	return res, nil
}

// loadFile читает файл, проверяет кэши и, если промах, режет его на сниппеты.
func loadFile(fset *source.FileSet, path string, opts *Options) FileResult {
	id, err := fset.Load(path)
	if err != nil {
		// пустой виртуальный файл, чтобы у диагностики было место
		id = fset.AddVirtual(path, nil)
		d := diag.NewError(diag.IOLoadFileError, source.Span{File: id}, fmt.Sprintf("cannot read file: %v", err))
		return FileResult{Path: path, FileID: id, Diagnostics: []diag.Diagnostic{d}, Unreadable: true}
	}
	file := fset.Get(id)
	fr := FileResult{Path: path, FileID: id, key: driver.CheckKey(file.Hash, opts.MaxDepth, opts.Tags)}

	if payload, ok := lookupCache(path, fr.key, opts, &fr); ok {
		fr.Cached = true
		fr.Tags = payload.Tags
		fr.Attrs = payload.Attrs
		fr.Diagnostics = driver.UnpackDiagnostics(id, payload.Diagnostics)
		return fr
	}

	invs := Scan(file.Content, opts.Tags)
	fr.Tags = len(invs)
	fr.snippets = make([]snippet, 0, len(invs))
	for _, inv := range invs {
		sid := fset.AddSnippet(id, inv.Start, file.Content[inv.Start:inv.End])
		fr.snippets = append(fr.snippets, snippet{id: sid, base: inv.Start})
	}
	return fr
}

func lookupCache(path string, key driver.Digest, opts *Options, fr *FileResult) (driver.CheckPayload, bool) {
	if opts.Memory != nil {
		if payload, ok := opts.Memory.Get(path, key); ok {
			return payload, true
		}
	}
	if opts.Disk == nil {
		return driver.CheckPayload{}, false
	}
	var payload driver.CheckPayload
	ok, err := opts.Disk.Get(key, &payload)
	if err != nil {
		fr.Diagnostics = append(fr.Diagnostics, cacheWarning(fr.FileID, err))
		return driver.CheckPayload{}, false
	}
	if ok && opts.Memory != nil {
		opts.Memory.Put(path, key, payload)
	}
	return payload, ok
}

func storeCache(fr *FileResult, opts *Options) {
	if opts.Disk == nil && opts.Memory == nil {
		return
	}
	// предупреждения кэша в кэш не пишем
	diags := slices.DeleteFunc(slices.Clone(fr.Diagnostics), func(d diag.Diagnostic) bool {
		return d.Code == diag.IOCacheError
	})
	payload := driver.CheckPayload{
		Path:        fr.Path,
		Tags:        fr.Tags,
		Attrs:       fr.Attrs,
		Diagnostics: driver.PackDiagnostics(diags),
	}
	if opts.Memory != nil {
		opts.Memory.Put(fr.Path, fr.key, payload)
	}
	if opts.Disk != nil {
		if err := opts.Disk.Put(fr.key, &payload); err != nil {
			fr.Diagnostics = append(fr.Diagnostics, cacheWarning(fr.FileID, err))
		}
	}
}

func cacheWarning(id source.FileID, err error) diag.Diagnostic {
	return diag.New(diag.SevWarning, diag.IOCacheError, source.Span{File: id}, fmt.Sprintf("result cache: %v", err))
}

func collectBag(res *Result) *diag.Bag {
	total := 1
	for i := range res.Files {
		total += len(res.Files[i].Diagnostics)
	}
	bag := diag.NewBag(total)
	for i := range res.Files {
		for _, d := range res.Files[i].Diagnostics {
			bag.Add(d)
		}
	}
	bag.Sort()
	return bag
}

func countErrors(fr *FileResult) int {
	n := 0
	for i := range fr.Diagnostics {
		if fr.Diagnostics[i].Severity >= diag.SevError {
			n++
		}
	}
	return n
}

func okNote(ok bool) string {
	if ok {
		return "ok"
	}
	return "errors"
}

// IsCancelled reports whether err came from context cancellation.
func IsCancelled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
