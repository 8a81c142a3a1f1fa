package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as TOML",
	Long: `Config prints the configuration after defaults and tagattr.toml are merged.
The source file, if any, is printed as a comment.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		if global.cfg.Path != "" {
			fmt.Fprintf(out, "# %s\n", global.cfg.Path)
		} else {
			fmt.Fprintln(out, "# defaults")
		}
		return toml.NewEncoder(out).Encode(global.cfg)
	},
}
