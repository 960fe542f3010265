package cmd

import (
	"encoding/hex"
	"fmt"
	"io"

	"coderkit/cli"
	"coderkit/coder"
	"coderkit/crypto"

	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [data]",
	Short: "Encodes data with a configured coder and prints it as hex.",
	Long: `Encodes data with a configured coder and prints it as hex.

Data is read from stdin when no argument is given. The coder's compression
settings come from the config file; decode with the same settings.`,
	Args: cobra.MaximumNArgs(1),
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
		in, err := cli.ReadInput(cmd, args, 0)
		if err != nil {
			return err
		}
		out, err := codec.Encode(in)
		if err != nil {
			return err
		}
		printEncoded(cmd.OutOrStdout(), codec, len(in), out)
		return nil
	},
}

func printEncoded(w io.Writer, codec *cli.Codec, inLen int, out []byte) {
	fmt.Fprintln(w, hex.EncodeToString(out))
	fmt.Fprintf(
		w,
		"coder=%s compressed=%t input=%d encoded=%d blake2b=%s\n",
		codec.Name,
		codec.Config.CompressEnabled,
		inLen,
		len(out),
		crypto.Blake2B256(out).Short(),
	)
}

func addCoderFlag(c *cobra.Command) {
	c.Flags().String(cli.FlagCoder, coder.NameByteArray, "Coder to use: byte_array, simple_string or serializable.")
}

func init() {
	addCoderFlag(encodeCmd)
	encodeCmd.Flags().Bool(cli.FlagHex, false, "Treat input as hex.")
	rootCmd.AddCommand(encodeCmd)
}
