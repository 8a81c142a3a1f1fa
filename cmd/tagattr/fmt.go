package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"tagattr"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] [text]",
	Short: "Print an attribute list in normalised form",
	Long: `Fmt parses an attribute list and prints it back: comments and extra
whitespace are dropped, translations are normalised to _("...").`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFmt,
}

func init() {
	addInputFlags(fmtCmd)
	fmtCmd.Flags().Int("max-depth", 0, "nesting limit (0 = from config)")
}

func runFmt(cmd *cobra.Command, args []string) error {
	in, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	depth, err := global.maxDepth(cmd)
	if err != nil {
		return err
	}
	fs, id, err := in.load()
	if err != nil {
		return err
	}
	text := string(fs.Get(id).Content)

	attrs, err := tagattr.Parse(commandContext(cmd), text, tagattr.Options{MaxDepth: depth})
	if err != nil {
		var perr *tagattr.ParseError
		if errors.As(err, &perr) {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s:%d:%d: %s %s\n", in.name, perr.Pos.Line, perr.Pos.Col, perr.Code, perr.Message)
			for _, n := range perr.Notes {
				fmt.Fprintf(cmd.ErrOrStderr(), "  note: %d:%d: %s\n", n.Pos.Line, n.Pos.Col, n.Message)
			}
			return errReported
		}
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), tagattr.Serialize(attrs))
	return err
}
