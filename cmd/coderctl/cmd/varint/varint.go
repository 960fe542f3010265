package varint

import (
	"github.com/spf13/cobra"
)

var cmd = &cobra.Command{
	Use:   "varint",
	Short: "Commands for the VarInt integer encoding.",
}

func AddCmd(parent *cobra.Command) {
	parent.AddCommand(cmd)
}
