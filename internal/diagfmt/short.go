package diagfmt

import (
	"fmt"
	"io"

	"tagattr/internal/diag"
	"tagattr/internal/source"
)

// Short печатает по одной строке на диагностику, без фрагментов кода.
// max > 0 обрезает вывод.
func Short(w io.Writer, bag *diag.Bag, fs *source.FileSet, mode PathMode, max int, notes bool) error {
	items := bag.Items()
	if max > 0 && max < len(items) {
		items = items[:max]
	}
	text := diag.FormatShortDiagnostics(items, fs, mode.name(), notes)
	if text == "" {
		return nil
	}
	_, err := fmt.Fprintln(w, text)
	return err
}
