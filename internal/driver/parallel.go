package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"tagattr/internal/source"
	"tagattr/internal/trace"
)

// ParseMany parses every file of ids concurrently. All files must already
// be in fs: FileSet is not safe for concurrent Add, so callers load and
// cut snippets first and parse afterwards.
//
// results[i] belongs to ids[i]. The only error is context cancellation.
func ParseMany(ctx context.Context, fs *source.FileSet, ids []source.FileID, opts Options, jobs int) ([]*ParseResult, error) {
	results := make([]*ParseResult, len(ids))
	if len(ids) == 0 {
		return results, nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(ids)))

	for i, id := range ids {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			// индекс i уникален для горутины, мьютекс не нужен
			results[i] = ParseSource(gctx, fs, id, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	trace.Point(trace.FromContext(ctx), trace.ScopePass, "parse-many", "done", trace.ParentID(ctx))
	return results, nil
}
