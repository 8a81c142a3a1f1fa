package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"tagattr/internal/diag"
	"tagattr/internal/observ"
	"tagattr/internal/source"
)

const tabWidth = 4

type palette struct {
	err, warn, info *color.Color
	code, path      *color.Color
	caret, note     *color.Color
	gutter          *color.Color
	added, removed  *color.Color
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return palette{
		err:     mk(color.FgRed, color.Bold),
		warn:    mk(color.FgYellow, color.Bold),
		info:    mk(color.FgCyan, color.Bold),
		code:    mk(color.Bold),
		path:    mk(color.FgWhite, color.Bold),
		caret:   mk(color.FgRed, color.Bold),
		note:    mk(color.FgBlue, color.Bold),
		gutter:  mk(color.FgBlue),
		added:   mk(color.FgGreen),
		removed: mk(color.FgRed),
	}
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes и Fixes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	pal := newPalette(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if d.Code == diag.ObsTimings {
			prettyTimings(w, &d, pal)
			continue
		}
		f := fs.Get(d.Primary.File)
		start, _ := fs.Resolve(d.Primary)
		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
			pal.path.Sprint(formatPath(f, fs, opts.PathMode)), start.Line, start.Col,
			pal.severity(d.Severity).Sprint(d.Severity.String()),
			pal.code.Sprint(d.Code.ID()),
			d.Message)
		writeSnippet(w, fs, d.Primary, opts, pal, pal.caret)

		if opts.ShowNotes {
			for _, n := range d.Notes {
				nf := fs.Get(n.Span.File)
				npos, _ := fs.Resolve(n.Span)
				fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", pal.note.Sprint("note:"),
					formatPath(nf, fs, opts.PathMode), npos.Line, npos.Col, n.Msg)
				writeSnippet(w, fs, n.Span, PrettyOpts{Width: opts.Width}, pal, pal.note)
			}
		}
		if opts.ShowFixes {
			for _, fix := range d.Fixes {
				fmt.Fprintf(w, "  %s %s\n", pal.note.Sprint("fix:"), fix.Title)
				if !opts.ShowPreview {
					continue
				}
				for _, edit := range fix.Edits {
					preview, err := buildFixEditPreview(fs, edit)
					if err != nil {
						continue
					}
					for _, line := range preview.before {
						fmt.Fprintf(w, "    %s\n", pal.removed.Sprint("- "+expandTabs(line)))
					}
					for _, line := range preview.after {
						fmt.Fprintf(w, "    %s\n", pal.added.Sprint("+ "+expandTabs(line)))
					}
				}
			}
		}
	}
}

// writeSnippet печатает строки вокруг span и подчёркивание под первой строкой span.
func writeSnippet(w io.Writer, fs *source.FileSet, span source.Span, opts PrettyOpts, pal palette, mark *color.Color) {
	f := fs.Get(span.File)
	start, end := fs.Resolve(span)
	if start.Line == 0 {
		return
	}
	ctx := uint32(max(opts.Context, 0)) // #nosec G115 -- non-negative int8
	first := start.Line - min(ctx, start.Line-1)
	last := min(start.Line+ctx, uint32(len(f.LineIdx))+1) // #nosec G115 -- line count fits uint32
	gutterWidth := len(fmt.Sprint(last))

	for ln := first; ln <= last; ln++ {
		line := f.GetLine(ln)
		fmt.Fprintf(w, "%s %s\n", pal.gutter.Sprintf("%*d |", gutterWidth, ln), clip(expandTabs(line), opts.Width))
		if ln != start.Line {
			continue
		}
		runes := []rune(line)
		col := min(int(start.Col)-1, len(runes))
		stop := len(runes)
		if end.Line == start.Line {
			stop = min(int(end.Col)-1, len(runes))
		}
		pad := runewidth.StringWidth(expandTabs(string(runes[:col])))
		width := max(runewidth.StringWidth(expandTabs(string(runes[col:max(stop, col)]))), 1)
		underline := "^" + strings.Repeat("~", width-1)
		fmt.Fprintf(w, "%s %s%s\n", pal.gutter.Sprintf("%*s |", gutterWidth, ""), strings.Repeat(" ", pad), mark.Sprint(underline))
	}
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}

func clip(s string, width uint8) string {
	if width == 0 || runewidth.StringWidth(s) <= int(width) {
		return s
	}
	return runewidth.Truncate(s, int(width), "…")
}

type timingView struct {
	Kind    string               `json:"kind"`
	Path    string               `json:"path"`
	TotalMS float64              `json:"total_ms"`
	Phases  []observ.PhaseReport `json:"phases"`
}

// prettyTimings раскладывает JSON-заметку таймингов по фазам.
func prettyTimings(w io.Writer, d *diag.Diagnostic, pal palette) {
	fmt.Fprintf(w, "%s %s: %s\n", pal.info.Sprint(d.Severity.String()), pal.code.Sprint(d.Code.ID()), d.Message)
	if len(d.Notes) == 0 {
		return
	}
	var view timingView
	if err := json.Unmarshal([]byte(d.Notes[0].Msg), &view); err != nil {
		return
	}
	for _, ph := range view.Phases {
		line := fmt.Sprintf("  %-10s %10.3f ms", ph.Name, ph.DurationMS)
		if ph.Count > 1 {
			line += fmt.Sprintf("  x%d", ph.Count)
		}
		if ph.Note != "" {
			line += "  " + ph.Note
		}
		fmt.Fprintln(w, line)
	}
}
