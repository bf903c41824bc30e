// Package cashaddr implements the checksummed base32 address encoding used
// by Bitcoin Cash networks.
package cashaddr

import (
	"strings"

	"github.com/juju/errors"
)

const charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

// checksumLen is the number of 5 bit groups carrying the BCH checksum
const checksumLen = 8

// Type tags carried in the version byte. Tags 4 to 15 are reserved but still
// round trip through Encode and Decode
const (
	P2PKH      uint8 = 0
	P2SH       uint8 = 1
	TokenP2PKH uint8 = 2
	TokenP2SH  uint8 = 3
)

// MaxTypeTag is the largest type tag encodable in the version byte
const MaxTypeTag uint8 = 15

var (
	// ErrInvalidChar is returned when a payload character is outside the
	// cashaddr alphabet
	ErrInvalidChar = errors.New("invalid cashaddr character")
	// ErrMixedCase is returned for strings mixing upper and lower case
	ErrMixedCase = errors.New("cashaddr contains mixed upper and lower case")
	// ErrChecksum is returned when the checksum does not verify
	ErrChecksum = errors.New("invalid checksum")
	// ErrPadding is returned when the payload carries non zero padding bits
	ErrPadding = errors.New("excess padding")
	// ErrHashSize is returned for hash lengths without a size class
	ErrHashSize = errors.New("invalid hash size")
	// ErrSizeMismatch is returned when the decoded hash length does not match
	// the size class claimed by the version byte
	ErrSizeMismatch = errors.New("hash size does not match version byte")
	// ErrVersionByte is returned when the version byte has the reserved most
	// significant bit set
	ErrVersionByte = errors.New("invalid version byte")
	// ErrTooShort is returned when the payload cannot hold a checksum and a
	// version byte
	ErrTooShort = errors.New("cashaddr payload too short")
)

var decodeTable [128]int8

func init() {
	for i := range decodeTable {
		decodeTable[i] = -1
	}
	for i, c := range charset {
		decodeTable[c] = int8(i)
	}
}

// polyMod is the BCH checksum function of the cashaddr specification,
// operating over 5 bit groups
func polyMod(v []byte) uint64 {
	var c uint64 = 1
	for _, d := range v {
		c0 := c >> 35
		c = ((c & 0x07ffffffff) << 5) ^ uint64(d)
		if c0&0x01 != 0 {
			c ^= 0x98f2bc8e61
		}
		if c0&0x02 != 0 {
			c ^= 0x79b76d99e2
		}
		if c0&0x04 != 0 {
			c ^= 0xf33e5fb3c4
		}
		if c0&0x08 != 0 {
			c ^= 0xae2eabe2a8
		}
		if c0&0x10 != 0 {
			c ^= 0x1e4f43e470
		}
	}
	return c ^ 1
}

// expandPrefix lowers the prefix to its 5 bit representation followed by a
// zero separator, the form the checksum is computed over
func expandPrefix(prefix string) []byte {
	out := make([]byte, 0, len(prefix)+1)
	for i := 0; i < len(prefix); i++ {
		out = append(out, prefix[i]&0x1f)
	}
	return append(out, 0)
}

// convertBits regroups data from fromBits sized groups to toBits sized
// groups. Without padding, leftover bits must be zero filled padding of the
// previous packing or the input is rejected
func convertBits(data []byte, fromBits, toBits uint, pad bool) ([]byte, error) {
	var acc, bits uint
	maxv := uint(1)<<toBits - 1
	out := make([]byte, 0, (len(data)*int(fromBits)+int(toBits)-1)/int(toBits))
	for _, d := range data {
		acc = acc<<fromBits | uint(d)
		bits += fromBits
		for bits >= toBits {
			bits -= toBits
			out = append(out, byte(acc>>bits&maxv))
		}
	}
	if pad {
		if bits > 0 {
			out = append(out, byte(acc<<(toBits-bits)&maxv))
		}
	} else if bits >= fromBits || acc<<(toBits-bits)&maxv != 0 {
		return nil, ErrPadding
	}
	return out, nil
}

// hashSizeClass returns the 3 bit size class of a hash length, or -1 when the
// length is not encodable
func hashSizeClass(n int) int {
	switch n {
	case 20:
		return 0
	case 24:
		return 1
	case 28:
		return 2
	case 32:
		return 3
	case 40:
		return 4
	case 48:
		return 5
	case 56:
		return 6
	case 64:
		return 7
	}
	return -1
}

// sizeClassHashLen is the inverse of hashSizeClass
func sizeClassHashLen(class byte) int {
	n := 20 + 4*int(class&0x03)
	if class&0x04 != 0 {
		n *= 2
	}
	return n
}

// Encode encodes a (type tag, hash) pair for the given network prefix and
// returns the bare payload string without the prefix
func Encode(prefix string, typeTag uint8, hash []byte) (string, error) {
	if typeTag > MaxTypeTag {
		return "", errors.Annotatef(ErrVersionByte, "type tag %d", typeTag)
	}
	class := hashSizeClass(len(hash))
	if class < 0 {
		return "", errors.Annotatef(ErrHashSize, "%d bytes", len(hash))
	}
	data := make([]byte, 0, len(hash)+1)
	data = append(data, typeTag<<3|byte(class))
	data = append(data, hash...)

	payload, err := convertBits(data, 8, 5, true)
	if err != nil {
		return "", err
	}

	expanded := expandPrefix(prefix)
	combined := make([]byte, 0, len(expanded)+len(payload)+checksumLen)
	combined = append(combined, expanded...)
	combined = append(combined, payload...)
	combined = append(combined, make([]byte, checksumLen)...)
	poly := polyMod(combined)

	out := make([]byte, 0, len(payload)+checksumLen)
	for _, d := range payload {
		out = append(out, charset[d])
	}
	for i := 0; i < checksumLen; i++ {
		out = append(out, charset[poly>>uint(5*(checksumLen-1-i))&0x1f])
	}
	return string(out), nil
}

// EncodeFull encodes like Encode and prepends the prefix with a colon
func EncodeFull(prefix string, typeTag uint8, hash []byte) (string, error) {
	payload, err := Encode(prefix, typeTag, hash)
	if err != nil {
		return "", err
	}
	return prefix + ":" + payload, nil
}

// Decode decodes a cashaddr string into its network prefix, type tag and
// hash. The string may carry an explicit prefix separated by a colon,
// otherwise defaultPrefix is assumed. Upper case strings are accepted, mixed
// case is not
func Decode(addr string, defaultPrefix string) (string, uint8, []byte, error) {
	if strings.ToLower(addr) != addr && strings.ToUpper(addr) != addr {
		return "", 0, nil, ErrMixedCase
	}
	addr = strings.ToLower(addr)

	prefix := defaultPrefix
	payload := addr
	if i := strings.IndexByte(addr, ':'); i >= 0 {
		prefix = addr[:i]
		payload = addr[i+1:]
	}

	if len(payload) < checksumLen+1 {
		return "", 0, nil, ErrTooShort
	}

	values := make([]byte, 0, len(payload))
	for i := 0; i < len(payload); i++ {
		c := payload[i]
		if c >= 128 || decodeTable[c] == -1 {
			return "", 0, nil, errors.Annotatef(ErrInvalidChar, "%q", c)
		}
		values = append(values, byte(decodeTable[c]))
	}

	expanded := expandPrefix(prefix)
	combined := make([]byte, 0, len(expanded)+len(values))
	combined = append(combined, expanded...)
	combined = append(combined, values...)
	if polyMod(combined) != 0 {
		return "", 0, nil, ErrChecksum
	}

	data, err := convertBits(values[:len(values)-checksumLen], 5, 8, false)
	if err != nil {
		return "", 0, nil, err
	}
	if len(data) == 0 {
		return "", 0, nil, ErrTooShort
	}

	version := data[0]
	if version&0x80 != 0 {
		return "", 0, nil, ErrVersionByte
	}
	hash := data[1:]
	if sizeClassHashLen(version) != len(hash) {
		return "", 0, nil, errors.Annotatef(ErrSizeMismatch, "version byte %#02x, hash %d bytes", version, len(hash))
	}
	return prefix, version >> 3, hash, nil
}
