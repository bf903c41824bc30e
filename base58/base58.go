// Package base58 implements the Base58 and Base58Check encodings used by
// legacy addresses and WIF private keys.
package base58

import (
	"math/big"

	"github.com/juju/errors"
)

const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// ErrInvalidFormat is returned when a string contains a character outside the
// Base58 alphabet or is too short to carry a checksum
var ErrInvalidFormat = errors.New("invalid base58 format")

var decodeTable [128]int8

func init() {
	for i := range decodeTable {
		decodeTable[i] = -1
	}
	for i, c := range alphabet {
		decodeTable[c] = int8(i)
	}
}

var bigRadix = big.NewInt(58)

// Encode encodes b as a Base58 string. The input is treated as a big endian
// arbitrary precision integer, leading zero bytes are preserved as leading
// '1' digits
func Encode(b []byte) string {
	x := new(big.Int).SetBytes(b)

	// with ceil(log58(256)) digits per input byte
	out := make([]byte, 0, len(b)*137/100+1)
	mod := new(big.Int)
	for x.Sign() > 0 {
		x.DivMod(x, bigRadix, mod)
		out = append(out, alphabet[mod.Int64()])
	}

	for _, c := range b {
		if c != 0 {
			break
		}
		out = append(out, alphabet[0])
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}

// Decode decodes a Base58 string, failing on any character outside the
// alphabet. Leading '1' digits are restored as leading zero bytes
func Decode(s string) ([]byte, error) {
	x := new(big.Int)
	for _, c := range s {
		if c >= 128 || decodeTable[c] == -1 {
			return nil, errors.Annotatef(ErrInvalidFormat, "character %q", c)
		}
		x.Mul(x, bigRadix)
		x.Add(x, big.NewInt(int64(decodeTable[c])))
	}

	leading := 0
	for leading < len(s) && s[leading] == alphabet[0] {
		leading++
	}

	val := x.Bytes()
	out := make([]byte, leading+len(val))
	copy(out[leading:], val)
	return out, nil
}
