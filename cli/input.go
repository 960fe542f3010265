package cli

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// ReadInput returns args[idx] if present, and stdin otherwise. With --hex
// the input is hex decoded.
func ReadInput(cmd *cobra.Command, args []string, idx int) ([]byte, error) {
	var data []byte
	if len(args) > idx {
		data = []byte(args[idx])
	} else {
		in := cmd.InOrStdin()
		if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			data = readDataTTY(cmd.ErrOrStderr(), f)
		} else {
			b, err := ioutil.ReadAll(in)
			if err != nil {
				return nil, errors.Wrap(err, "error reading stdin")
			}
			data = b
		}
	}

	isHex, _ := cmd.Flags().GetBool(FlagHex)
	if !isHex {
		return data, nil
	}
	return DecodeHex(string(data))
}

// DecodeHex decodes hex, ignoring whitespace and an optional 0x prefix.
func DecodeHex(s string) ([]byte, error) {
	s = strings.Join(strings.Fields(s), "")
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "invalid hex input")
	}
	return b, nil
}

func readDataTTY(prompt io.Writer, in io.Reader) []byte {
	fmt.Fprintln(prompt, "Paste or type the input below.")
	fmt.Fprintln(prompt, "When you are finished, press Ctrl+D.")

	var buf bytes.Buffer
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		buf.Write(scanner.Bytes())
		buf.WriteByte('\n')
	}

	return buf.Bytes()
}
