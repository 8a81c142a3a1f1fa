// Package batch checks template files: it finds `{% tag ... %}` invocations
// of the configured tags, parses every attribute list and maps the
// diagnostics back onto the template.
//
// Files are loaded and cut into snippets serially (source.FileSet is not
// safe for concurrent writes), then all snippets are parsed in parallel.
// Results are cached in memory and on disk by content hash.
package batch
