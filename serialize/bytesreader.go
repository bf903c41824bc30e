package serialize

import "encoding/binary"

// BytesReader is a cursor over a byte buffer offering bounds checked reads.
// All fixed width integers are little endian
type BytesReader struct {
	buf    []byte
	cursor int
}

// NewBytesReader returns a BytesReader positioned at the start of buf
func NewBytesReader(buf []byte) *BytesReader {
	return &BytesReader{buf: buf}
}

// CanReadMore reports whether at least one more byte can be read
func (r *BytesReader) CanReadMore() bool {
	return r.cursor < len(r.buf)
}

// Cursor returns the current read position
func (r *BytesReader) Cursor() int {
	return r.cursor
}

// Rest returns a copy of the not yet consumed part of the buffer, advancing
// the cursor to the end
func (r *BytesReader) Rest() []byte {
	b := make([]byte, len(r.buf)-r.cursor)
	copy(b, r.buf[r.cursor:])
	r.cursor = len(r.buf)
	return b
}

// ReadBytes reads up to n bytes. When fewer bytes remain the result is
// silently truncated unless strict is set, in which case a short buffer is a
// SerializationError
func (r *BytesReader) ReadBytes(n int, strict bool) ([]byte, error) {
	if n < 0 {
		return nil, serializationErrorf("negative read length %d", n)
	}
	remaining := len(r.buf) - r.cursor
	if remaining < n {
		if strict {
			return nil, serializationErrorf("attempt to read past end of buffer")
		}
		n = remaining
	}
	b := make([]byte, n)
	copy(b, r.buf[r.cursor:r.cursor+n])
	r.cursor += n
	return b, nil
}

// ReadVarBytes reads a CompactSize length prefix followed by that many bytes.
// The byte count is always checked against the remaining buffer, strict
// additionally rejects a non minimal length prefix
func (r *BytesReader) ReadVarBytes(strict bool) ([]byte, error) {
	n, err := r.ReadCompactSize(strict)
	if err != nil {
		return nil, err
	}
	if uint64(len(r.buf)-r.cursor) < n {
		return nil, serializationErrorf("attempt to read past end of buffer")
	}
	return r.ReadBytes(int(n), true)
}

// ReadVarString reads a CompactSize length prefixed string
func (r *BytesReader) ReadVarString(strict bool) (string, error) {
	b, err := r.ReadVarBytes(strict)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadCompactSize reads a CompactSize varint
func (r *BytesReader) ReadCompactSize(strict bool) (uint64, error) {
	n, cursor, err := ReadCompactSize(r.buf, r.cursor, strict)
	if err != nil {
		return 0, err
	}
	r.cursor = cursor
	return n, nil
}

// ReadByte reads a single byte
func (r *BytesReader) ReadByte() (byte, error) {
	if r.cursor >= len(r.buf) {
		return 0, serializationErrorf("attempt to read past end of buffer")
	}
	b := r.buf[r.cursor]
	r.cursor++
	return b, nil
}

// ReadBool reads a single byte and interprets any non zero value as true
func (r *BytesReader) ReadBool() (bool, error) {
	b, err := r.ReadByte()
	if err != nil {
		return false, err
	}
	return b != 0, nil
}

func (r *BytesReader) readFixed(n int) ([]byte, error) {
	if len(r.buf)-r.cursor < n {
		return nil, serializationErrorf("attempt to read past end of buffer")
	}
	b := r.buf[r.cursor : r.cursor+n]
	r.cursor += n
	return b, nil
}

// ReadUint16 reads a little endian uint16
func (r *BytesReader) ReadUint16() (uint16, error) {
	b, err := r.readFixed(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadUint32 reads a little endian uint32
func (r *BytesReader) ReadUint32() (uint32, error) {
	b, err := r.readFixed(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadUint64 reads a little endian uint64
func (r *BytesReader) ReadUint64() (uint64, error) {
	b, err := r.readFixed(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadInt16 reads a little endian int16
func (r *BytesReader) ReadInt16() (int16, error) {
	n, err := r.ReadUint16()
	return int16(n), err
}

// ReadInt32 reads a little endian int32
func (r *BytesReader) ReadInt32() (int32, error) {
	n, err := r.ReadUint32()
	return int32(n), err
}

// ReadInt64 reads a little endian int64
func (r *BytesReader) ReadInt64() (int64, error) {
	n, err := r.ReadUint64()
	return int64(n), err
}
