package cmd

import (
	"fmt"

	"coderkit/cli"
	"coderkit/config"
	"coderkit/crypto"
	"coderkit/store"

	"github.com/spf13/cobra"
)

var putCmd = &cobra.Command{
	Use:   "put <key> [data]",
	Short: "Encodes data with a configured coder and stores it under key.",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := cli.ReadInput(cmd, args, 1)
		if err != nil {
			return err
		}
		return withKV(cmd, func(kv cli.KV) error {
			if err := kv.Put(args[0], in); err != nil {
				return err
			}
			raw, err := kv.GetRaw(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Stored %d bytes (%d encoded, blake2b %s).\n", len(in), len(raw), crypto.Blake2B256(raw).Short())
			return nil
		})
	},
}

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Prints the decoded value stored under key.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withKV(cmd, func(kv cli.KV) error {
			v, err := kv.Get(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", v)
			return err
		})
	},
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Lists the keys stored for a coder.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withKV(cmd, func(kv cli.KV) error {
			keys, err := kv.Keys()
			if err != nil {
				return err
			}
			for _, k := range keys {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
			return nil
		})
	},
}

func withKV(cmd *cobra.Command, cb func(kv cli.KV) error) error {
	cfg, err := cli.LoadConfig(cmd)
	if err != nil {
		return err
	}
	db, err := store.Open(config.ExpandDBPath(cli.GetHomeDir(cmd)))
	if err != nil {
		return err
	}
	defer db.Close()

	name, _ := cmd.Flags().GetString(cli.FlagCoder)
	kv, err := cli.OpenKV(db, cfg, name)
	if err != nil {
		return err
	}
	return cb(kv)
}

func init() {
	for _, c := range []*cobra.Command{putCmd, getCmd, keysCmd} {
		addCoderFlag(c)
		rootCmd.AddCommand(c)
	}
	putCmd.Flags().Bool(cli.FlagHex, false, "Treat input as hex.")
}
