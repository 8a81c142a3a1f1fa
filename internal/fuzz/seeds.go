package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"tagattr/internal/batch"
)

const maxSeedBytes = 64 << 10 // 64 KiB: ограничение для тестового корпуса

var builtinSeeds = []string{
	"",
	"key=value",
	`class="btn" disabled`,
	"...attrs",
	"x|default:'none'|upper",
	"[1, 2.5, *rest]|join:', '",
	"{'a': 1, 'b': [2, 3], **extra}",
	"{k|lower: v}",
	`_("Hello") _( 'it''s' )`,
	"'{{ user.name }}'",
	"{# note #} a {# tail #}",
	"a = 1",
	"[[[[[[[[1]]]]]]]]",
	"{'a': {'b': {'c': {}}}}",
	"x|f:a|g:b|h",
	"$ @ ` ~",
	"'unterminated",
	"{# unterminated",
	"[1,",
	"{**}",
	"key=\r\nvalue",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range builtinSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

// addTestdataSeeds добавляет *.attrs целиком и вызовы тегов из шаблонов.
func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		ext := filepath.Ext(path)
		if ext != ".attrs" && ext != ".html" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		if ext == ".attrs" {
			f.Add(clampSeed(src))
			return nil
		}
		for _, inv := range batch.Scan(src, []string{"component", "fill", "slot", "provide", "html_attrs"}) {
			f.Add(clampSeed(src[inv.Start:inv.End]))
		}
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) > maxSeedBytes {
		src = src[:maxSeedBytes]
	}
	return append([]byte(nil), src...)
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		input = input[:maxFuzzInput]
	}
	return append([]byte(nil), input...)
}
