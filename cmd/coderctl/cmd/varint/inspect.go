package varint

import (
	"fmt"
	"strconv"

	"coderkit/cli"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <hex>",
	Short: "Shows how each byte of a hex string contributes to its VarInt values.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		buf, err := cli.DecodeHex(args[0])
		if err != nil {
			return err
		}

		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"Offset", "Byte", "Group", "Shift", "Terminal", "Value"})
		var acc uint32
		var shift uint
		for i, b := range buf {
			acc |= uint32(b&0x7f) << shift
			terminal := b&0x80 != 0
			value := ""
			if terminal {
				value = strconv.FormatUint(uint64(acc), 10)
			}
			table.Append([]string{
				strconv.Itoa(i),
				fmt.Sprintf("%02x", b),
				fmt.Sprintf("%07b", b&0x7f),
				strconv.Itoa(int(shift)),
				strconv.FormatBool(terminal),
				value,
			})
			if terminal {
				acc, shift = 0, 0
			} else {
				shift += 7
			}
		}
		table.Render()
		if shift != 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "input ends before a terminal byte")
		}
		return nil
	},
}

func init() {
	cmd.AddCommand(inspectCmd)
}
