package base58

import (
	"bytes"

	"github.com/juju/errors"
	"github.com/martinboehm/btcd/chaincfg/chainhash"
)

// checksumLen is the number of double SHA256 bytes appended to the payload
const checksumLen = 4

// ErrChecksum is returned when the checksum of a Base58Check string does not
// match the payload
var ErrChecksum = errors.New("invalid base58 checksum")

// CheckEncode encodes payload together with a 4 byte double SHA256 checksum
func CheckEncode(payload []byte) string {
	b := make([]byte, 0, len(payload)+checksumLen)
	b = append(b, payload...)
	b = append(b, chainhash.DoubleHashB(payload)[:checksumLen]...)
	return Encode(b)
}

// CheckDecode decodes a Base58Check string and verifies its checksum,
// returning the payload without the checksum
func CheckDecode(s string) ([]byte, error) {
	b, err := Decode(s)
	if err != nil {
		return nil, err
	}
	if len(b) < checksumLen {
		return nil, errors.Annotate(ErrInvalidFormat, "missing checksum")
	}
	payload := b[:len(b)-checksumLen]
	if !bytes.Equal(chainhash.DoubleHashB(payload)[:checksumLen], b[len(b)-checksumLen:]) {
		return nil, ErrChecksum
	}
	return payload, nil
}
