package cli

const (
	FlagHome  = "home"
	FlagCoder = "coder"
	FlagHex   = "hex"
)
