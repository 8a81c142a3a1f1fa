package main

import (
	"github.com/spf13/cobra"

	"tagattr/internal/diagfmt"
	"tagattr/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] [text]",
	Short: "Tokenize a tag attribute list",
	Long:  `Tokenize breaks an attribute list down into tokens with their leading comments and whitespace`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTokenize,
}

func init() {
	addInputFlags(tokenizeCmd)
	tokenizeCmd.Flags().String("format", "", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	in, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	format, err := outputFormat(cmd, "pretty", "json")
	if err != nil {
		return err
	}
	fs, id, err := in.load()
	if err != nil {
		return err
	}

	// Выполняем токенизацию
	result := driver.TokenizeSource(commandContext(cmd), fs, id, global.maxDiagnostics)
	reportBag(cmd, result.Bag, fs)

	out := cmd.OutOrStdout()
	if format == "json" {
		err = diagfmt.FormatTokensJSON(out, result.Tokens)
	} else {
		err = diagfmt.FormatTokensPretty(out, result.Tokens, fs)
	}
	if err != nil {
		return err
	}
	return exitIfErrors(result.Bag)
}
