package diag

import "tagattr/internal/source"

func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
	}
}

func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}

func (d Diagnostic) WithFix(title string, edits ...FixEdit) Diagnostic {
	d.Fixes = append(d.Fixes, Fix{Title: title, Edits: edits})
	return d
}

// Rebase moves every span of the diagnostic into file at base.
// Used when an attribute list was parsed as a snippet of a larger template.
func (d Diagnostic) Rebase(file source.FileID, base uint32) Diagnostic {
	d.Primary = d.Primary.Rebase(file, base)
	if len(d.Notes) > 0 {
		notes := make([]Note, len(d.Notes))
		for i, n := range d.Notes {
			notes[i] = Note{Span: n.Span.Rebase(file, base), Msg: n.Msg}
		}
		d.Notes = notes
	}
	if len(d.Fixes) > 0 {
		fixes := make([]Fix, len(d.Fixes))
		for i, f := range d.Fixes {
			edits := make([]FixEdit, len(f.Edits))
			for j, e := range f.Edits {
				edits[j] = FixEdit{Span: e.Span.Rebase(file, base), NewText: e.NewText}
			}
			fixes[i] = Fix{Title: f.Title, Edits: edits}
		}
		d.Fixes = fixes
	}
	return d
}
