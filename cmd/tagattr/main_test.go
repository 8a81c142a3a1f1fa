package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// resetFlags возвращает флаги к значениям по умолчанию: cobra не сбрасывает
// их между вызовами Execute.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// run executes the CLI with a config file from dir, so the test does not
// depend on tagattr.toml files around the checkout.
func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Cleanup(cleanupRun)

	cfg := filepath.Join(t.TempDir(), "tagattr.toml")
	if err := os.WriteFile(cfg, []byte("[output]\ncolor = \"off\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"--config", cfg}, args...))
	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestParseJSON(t *testing.T) {
	out, stderr, err := run(t, "", "parse", "--format", "json", "key=val [1, *xs]")
	if err != nil {
		t.Fatalf("parse: %v\n%s", err, stderr)
	}
	var doc struct {
		Count      int `json:"count"`
		Attributes []struct {
			Key *struct {
				Text string `json:"text"`
			} `json:"key"`
		} `json:"attributes"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if doc.Count != 2 || doc.Attributes[0].Key == nil || doc.Attributes[0].Key.Text != "key" {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestParseFromStdinReportsErrors(t *testing.T) {
	out, stderr, err := run(t, "[1,", "parse")
	if !errors.Is(err, errReported) {
		t.Fatalf("err = %v, want errReported", err)
	}
	if out != "" {
		t.Fatalf("stdout = %q, want empty", out)
	}
	if !strings.Contains(stderr, "<stdin>:1:4: ERROR SYN2005: Unclosed [, expected ']'") {
		t.Fatalf("stderr lacks diagnostic:\n%s", stderr)
	}
}

func TestFmt(t *testing.T) {
	out, stderr, err := run(t, "", "fmt", "{# c #} _( 'Hi' )   a=1|f:'x'")
	if err != nil {
		t.Fatalf("fmt: %v\n%s", err, stderr)
	}
	if want := "_('Hi') a=1|f:'x'\n"; out != want {
		t.Fatalf("fmt = %q, want %q", out, want)
	}
}

func TestFmtError(t *testing.T) {
	_, stderr, err := run(t, "", "fmt", "{[1]: 2}")
	if !errors.Is(err, errReported) {
		t.Fatalf("err = %v, want errReported", err)
	}
	if want := "<input>:1:2: SEM3002 Dictionary keys cannot be lists or dictionaries"; !strings.Contains(stderr, want) {
		t.Fatalf("stderr = %q, want %q", stderr, want)
	}
}

func TestTokenizeJSON(t *testing.T) {
	out, stderr, err := run(t, "", "tokenize", "--format", "json", "a=1")
	if err != nil {
		t.Fatalf("tokenize: %v\n%s", err, stderr)
	}
	if !strings.Contains(out, `"Key"`) || !strings.Contains(out, `"EOF"`) {
		t.Fatalf("tokens output lacks Key/EOF:\n%s", out)
	}
}

func TestCheckShort(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	write("ok.html", `{% component "card" title=_("Hi") %}`)
	write("bad.html", `<div>{% component "x" a= 1 %}</div>`)
	write("skip.css", `{% component a= 1 %}`)

	out, stderr, err := run(t, "", "check", "--no-cache", "--format", "short", "--path-mode", "basename", dir)
	if !errors.Is(err, errReported) {
		t.Fatalf("err = %v, want errReported\n%s", err, stderr)
	}
	want := "error SYN2008 bad.html:1:26 Unexpected whitespace or comment after '='\n"
	if out != want {
		t.Fatalf("check output:\ngot:  %q\nwant: %q", out, want)
	}
	if !strings.Contains(stderr, "checked 2 files: 2 tags, 2 attributes; 1 with errors") {
		t.Fatalf("summary missing:\n%s", stderr)
	}
}

func TestVersionJSON(t *testing.T) {
	out, _, err := run(t, "", "version", "--format", "json")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	var payload versionPayload
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Tool != "tagattr" || payload.Version == "" {
		t.Fatalf("payload = %+v", payload)
	}
}

func TestConfigPrintsEffectiveValues(t *testing.T) {
	out, _, err := run(t, "", "config")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	for _, want := range []string{"tagattr.toml", "max_depth = 128", `color = "off"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("config output lacks %q:\n%s", want, out)
		}
	}
}

func TestBadFormat(t *testing.T) {
	_, _, err := run(t, "", "parse", "--format", "xml", "a")
	if err == nil || !strings.Contains(err.Error(), `unknown format "xml"`) {
		t.Fatalf("err = %v, want unknown format", err)
	}
}
