package cmd

import (
	"fmt"

	"coderkit/cli"

	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <hex>",
	Short: "Decodes hex produced by encode with a configured coder.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cli.LoadConfig(cmd)
		if err != nil {
			return err
		}
		name, _ := cmd.Flags().GetString(cli.FlagCoder)
		codec, err := cli.NewCodec(cfg, name)
		if err != nil {
			return err
		}
		raw, err := cli.ReadInput(cmd, args, 0)
		if err != nil {
			return err
		}
		in, err := cli.DecodeHex(string(raw))
		if err != nil {
			return err
		}
		out, err := codec.Decode(in)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", out)
		return err
	},
}

func init() {
	addCoderFlag(decodeCmd)
	rootCmd.AddCommand(decodeCmd)
}
