package diag

import (
	"testing"

	"tagattr/internal/source"
)

func TestFormatShortDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	fs.SetBaseDir("/workspace")

	page := fs.Add("/workspace/templates/page.html", []byte("{% c a=1 %}\n{% c b= 2 %}\n"), 0)
	arg := fs.AddVirtual("<arg>", []byte("key= val"))

	diags := []Diagnostic{
		NewError(SynAssignSpacing, source.Span{File: page, Start: 19, End: 20}, "Unexpected whitespace\nafter '='").
			WithNote(source.Span{File: page, Start: 17, End: 19}, "key starts here"),
		NewError(SynAssignSpacing, source.Span{File: arg, Start: 4, End: 5}, "Unexpected whitespace after '='"),
		New(SevWarning, SemInfo, source.Span{File: page, Start: 3, End: 4}, "first"),
	}

	expected := "error SYN2008 <arg>:1:5 Unexpected whitespace after '='\n" +
		"warning SEM3000 templates/page.html:1:4 first\n" +
		"note SYN2008 templates/page.html:2:6 key starts here\n" +
		"error SYN2008 templates/page.html:2:8 Unexpected whitespace after '='"

	if got := FormatShortDiagnostics(diags, fs, "relative", true); got != expected {
		t.Fatalf("unexpected short diagnostics:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
}

func TestFormatShortDiagnosticsSkipsUnknownFile(t *testing.T) {
	fs := source.NewFileSet()
	diags := []Diagnostic{NewError(LexUnknownChar, source.Span{File: 7}, "lost")}
	if got := FormatShortDiagnostics(diags, fs, "relative", false); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}
