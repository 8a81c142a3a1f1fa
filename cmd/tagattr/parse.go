package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"tagattr/internal/diagfmt"
	"tagattr/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] [text]",
	Short: "Parse a tag attribute list and print it",
	Long: `Parse reads an attribute list from the argument, --file or stdin and
prints the resulting attributes. Diagnostics go to stderr.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	addInputFlags(parseCmd)
	parseCmd.Flags().String("format", "", "output format (pretty|json|yaml|msgpack); default from config")
	parseCmd.Flags().Bool("tree", false, "print the concrete syntax tree instead of attributes")
	parseCmd.Flags().Bool("graph", false, "print the concrete syntax tree as a top-down graph")
	parseCmd.Flags().Int("max-depth", 0, "nesting limit (0 = from config)")
}

func runParse(cmd *cobra.Command, args []string) error {
	defer dumpTraceOnPanic()

	in, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	format, err := outputFormat(cmd, "pretty", "json", "yaml", "msgpack")
	if err != nil {
		return err
	}
	tree, err := cmd.Flags().GetBool("tree")
	if err != nil {
		return fmt.Errorf("failed to get tree flag: %w", err)
	}
	graph, err := cmd.Flags().GetBool("graph")
	if err != nil {
		return fmt.Errorf("failed to get graph flag: %w", err)
	}
	depth, err := global.maxDepth(cmd)
	if err != nil {
		return err
	}

	fs, id, err := in.load()
	if err != nil {
		return err
	}
	res := driver.ParseSource(commandContext(cmd), fs, id, driver.Options{
		MaxDepth:       depth,
		MaxDiagnostics: global.maxDiagnostics,
		Timings:        global.timings,
	})
	reportBag(cmd, res.Bag, fs)
	if !res.OK() {
		return errReported
	}

	out := cmd.OutOrStdout()
	switch {
	case graph:
		return diagfmt.FormatCSTGraph(out, res.Tree)
	case tree:
		return diagfmt.FormatCSTPretty(out, res.Tree)
	}
	return writeAttributes(out, format, res)
}

func writeAttributes(w io.Writer, format string, res *driver.ParseResult) error {
	switch format {
	case "pretty":
		return diagfmt.FormatASTPretty(w, res.Attrs, res.FileSet)
	case "json":
		return diagfmt.FormatASTJSON(w, res.Attrs)
	case "yaml":
		return diagfmt.FormatASTYAML(w, res.Attrs)
	case "msgpack":
		return diagfmt.FormatASTMsgpack(w, res.Attrs)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
