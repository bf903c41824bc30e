// Package serialize implements the bounds checked byte stream primitives and
// the CompactSize varint codec shared by the consensus format parsers.
package serialize

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/juju/errors"
)

// SerializationError is returned for malformed, truncated or non minimally
// encoded binary data.
type SerializationError struct {
	msg string
}

func (e *SerializationError) Error() string {
	return e.msg
}

// Errorf returns a SerializationError with a formatted message
func Errorf(format string, args ...interface{}) error {
	return &SerializationError{msg: fmt.Sprintf(format, args...)}
}

func serializationErrorf(format string, args ...interface{}) *SerializationError {
	return &SerializationError{msg: fmt.Sprintf(format, args...)}
}

// IsSerializationError reports whether err or its cause is a SerializationError
func IsSerializationError(err error) bool {
	_, ok := errors.Cause(err).(*SerializationError)
	return ok
}

const (
	compactSizeUint16 = 0xfd
	compactSizeUint32 = 0xfe
	compactSizeUint64 = 0xff
)

// WriteCompactSize returns the canonical CompactSize encoding of n,
// 1, 3, 5 or 9 bytes long depending on magnitude
func WriteCompactSize(n uint64) []byte {
	switch {
	case n < compactSizeUint16:
		return []byte{byte(n)}
	case n <= math.MaxUint16:
		b := make([]byte, 3)
		b[0] = compactSizeUint16
		binary.LittleEndian.PutUint16(b[1:], uint16(n))
		return b
	case n <= math.MaxUint32:
		b := make([]byte, 5)
		b[0] = compactSizeUint32
		binary.LittleEndian.PutUint32(b[1:], uint32(n))
		return b
	default:
		b := make([]byte, 9)
		b[0] = compactSizeUint64
		binary.LittleEndian.PutUint64(b[1:], n)
		return b
	}
}

// ReadCompactSize decodes a CompactSize starting at cursor in buf and returns
// the value together with the cursor position past the encoding. In strict
// mode a non minimal encoding is rejected, non minimal varints are used in
// transaction malleation
func ReadCompactSize(buf []byte, cursor int, strict bool) (uint64, int, error) {
	if cursor < 0 || cursor >= len(buf) {
		return 0, cursor, serializationErrorf("attempt to read past end of buffer")
	}
	prefix := buf[cursor]
	cursor++
	var n uint64
	var minimum uint64
	switch prefix {
	case compactSizeUint16:
		if len(buf)-cursor < 2 {
			return 0, cursor, serializationErrorf("attempt to read past end of buffer")
		}
		n = uint64(binary.LittleEndian.Uint16(buf[cursor:]))
		cursor += 2
		minimum = compactSizeUint16
	case compactSizeUint32:
		if len(buf)-cursor < 4 {
			return 0, cursor, serializationErrorf("attempt to read past end of buffer")
		}
		n = uint64(binary.LittleEndian.Uint32(buf[cursor:]))
		cursor += 4
		minimum = math.MaxUint16 + 1
	case compactSizeUint64:
		if len(buf)-cursor < 8 {
			return 0, cursor, serializationErrorf("attempt to read past end of buffer")
		}
		n = binary.LittleEndian.Uint64(buf[cursor:])
		cursor += 8
		minimum = math.MaxUint32 + 1
	default:
		return uint64(prefix), cursor, nil
	}
	if strict && n < minimum {
		return 0, cursor, serializationErrorf("non-minimal CompactSize encoding of %d", n)
	}
	return n, cursor, nil
}
