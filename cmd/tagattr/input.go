package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"tagattr/internal/diag"
	"tagattr/internal/diagfmt"
	"tagattr/internal/source"
)

// inputSource описывает, откуда брать текст атрибутов (аргумент, --file или stdin).
type inputSource struct {
	text string
	path string
	name string
}

const (
	argInputName   = "<input>"
	stdinInputName = "<stdin>"
)

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("file", "f", "", "read the attribute list from a file")
}

func readInput(cmd *cobra.Command, args []string) (inputSource, error) {
	path, err := cmd.Flags().GetString("file")
	if err != nil {
		return inputSource{}, fmt.Errorf("failed to get file flag: %w", err)
	}
	switch {
	case path != "" && len(args) > 0:
		return inputSource{}, fmt.Errorf("pass either text or --file, not both")
	case path != "":
		return inputSource{path: path, name: path}, nil
	case len(args) > 0:
		return inputSource{text: args[0], name: argInputName}, nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return inputSource{}, fmt.Errorf("read stdin: %w", err)
	}
	return inputSource{text: string(data), name: stdinInputName}, nil
}

// load кладёт вход в новый FileSet. Файл читается с нормализацией
// (BOM, CRLF), текст из аргумента и stdin берётся как есть.
func (in inputSource) load() (*source.FileSet, source.FileID, error) {
	fs := source.NewFileSet()
	if in.path != "" {
		id, err := fs.Load(in.path)
		if err != nil {
			return nil, 0, fmt.Errorf("load %s: %w", in.path, err)
		}
		return fs, id, nil
	}
	return fs, fs.AddVirtual(in.name, []byte(in.text)), nil
}

// reportBag печатает диагностики в stderr. Ошибки печатаются всегда,
// остальное подавляет --quiet.
func reportBag(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) {
	if bag == nil || bag.Len() == 0 {
		return
	}
	if global.quiet && !bag.HasErrors() {
		return
	}
	bag.Sort()
	diagfmt.Pretty(cmd.ErrOrStderr(), bag, fs, global.prettyOpts())
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func exitIfErrors(bag *diag.Bag) error {
	if bag != nil && bag.HasErrors() {
		return errReported
	}
	return nil
}

