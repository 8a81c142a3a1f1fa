package batch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce: пауза после последнего события перед повторной проверкой.
const DefaultDebounce = 150 * time.Millisecond

type WatchOptions struct {
	Check      Options
	Extensions []string
	Debounce   time.Duration
	// OnResult вызывается после первой проверки и после каждой пачки изменений.
	OnResult func(*Result)
	// OnError получает ошибки watcher'а; nil: игнорировать.
	OnError func(error)
}

// Watch checks paths once and then again whenever a matching file under
// them changes, until ctx is cancelled. Unchanged files come from
// opts.Check.Memory when it is set.
func Watch(ctx context.Context, paths []string, opts WatchOptions) error {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Close()

	for _, p := range paths {
		if err := addWatchDirs(w, p); err != nil {
			return err
		}
	}

	run := func() error {
		files, err := Collect(paths, opts.Extensions)
		if err != nil {
			return err
		}
		res, err := Check(ctx, files, opts.Check)
		if err != nil {
			return err
		}
		if opts.OnResult != nil {
			opts.OnResult(res)
		}
		return nil
	}
	if err := run(); err != nil {
		return err
	}

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !relevant(ev, opts.Extensions) {
				continue
			}
			// новый каталог тоже надо слушать
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					_ = addWatchDirs(w, ev.Name)
				}
			}
			if timer == nil {
				timer = time.NewTimer(opts.Debounce)
			} else {
				timer.Reset(opts.Debounce)
			}
			pending = timer.C

		case <-pending:
			pending = nil
			if err := run(); err != nil {
				if IsCancelled(err) {
					return nil
				}
				return err
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			if opts.OnError != nil {
				opts.OnError(err)
			}
		}
	}
}

// addWatchDirs подписывается на p и все его подкаталоги (fsnotify не рекурсивен).
func addWatchDirs(w *fsnotify.Watcher, p string) error {
	info, err := os.Stat(p)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return w.Add(filepath.Dir(p))
	}
	return filepath.WalkDir(p, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || !d.IsDir() {
			return walkErr
		}
		if path != p && len(d.Name()) > 1 && d.Name()[0] == '.' {
			return filepath.SkipDir
		}
		if err := w.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}

func relevant(ev fsnotify.Event, exts []string) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return false
	}
	if ev.Has(fsnotify.Create) {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			return true
		}
	}
	return slices.Contains(exts, filepath.Ext(ev.Name))
}
