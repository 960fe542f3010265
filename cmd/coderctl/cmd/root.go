package cmd

import (
	"fmt"
	"os"

	"coderkit/cli"
	"coderkit/cmd/coderctl/cmd/varint"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "coderctl",
	Short:         "Encodes and decodes values with coderkit's VarInt framing and coders.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String(cli.FlagHome, "~/.coderctl", "Home directory for the tool's config and database.")
	varint.AddCmd(rootCmd)
}
