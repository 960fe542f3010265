package varint

import (
	"fmt"

	"coderkit/cli"
	"coderkit/varint"

	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <hex>",
	Short: "Decodes every VarInt in a hex string.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		buf, err := cli.DecodeHex(args[0])
		if err != nil {
			return err
		}
		for offset := 0; offset < len(buf); {
			v, n, err := varint.Decode(buf, offset)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t(0x%x, %d bytes)\n", v, v, n)
			offset += n
		}
		return nil
	},
}

func init() {
	cmd.AddCommand(decodeCmd)
}
