package crypto

import (
	"encoding/hex"

	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"
)

// Hash is a BLAKE2b-256 digest. The CLI prints it next to encoded payloads
// so that two encodings can be compared at a glance.
type Hash [32]byte

var ZeroHash Hash

func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// Short returns the first eight hex characters of h.
func (h Hash) Short() string {
	return h.String()[:8]
}

func (h Hash) Bytes() []byte {
	return h[:]
}

func Blake2B256(data ...[]byte) Hash {
	// never returns an error if key is nil
	h, _ := blake2b.New256(nil)
	for _, chunk := range data {
		h.Write(chunk)
	}
	var out Hash
	copy(out[:], h.Sum(nil))
	return out
}

func NewHashFromBytes(b []byte) (Hash, error) {
	if len(b) != 32 {
		return ZeroHash, errors.New("hash must be 32 bytes")
	}
	var h Hash
	copy(h[:], b)
	return h, nil
}

func NewHashFromHex(in string) (Hash, error) {
	b, err := hex.DecodeString(in)
	if err != nil {
		return ZeroHash, errors.Wrap(err, "invalid hash hex")
	}
	return NewHashFromBytes(b)
}
