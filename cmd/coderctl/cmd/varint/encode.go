package varint

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"coderkit/varint"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode <uint32>...",
	Short: "Prints the VarInt encoding of each value as hex.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var out []byte
		for _, arg := range args {
			v, err := strconv.ParseUint(arg, 0, 32)
			if err != nil {
				return errors.Wrapf(err, "invalid value %s", arg)
			}
			out = varint.Append(out, uint32(v))
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(out))
		return err
	},
}

func init() {
	cmd.AddCommand(encodeCmd)
}
