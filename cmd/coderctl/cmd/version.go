package cmd

import (
	"fmt"

	"coderkit/version"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Prints the version.",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), version.UserAgent)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
