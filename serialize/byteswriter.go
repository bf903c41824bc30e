package serialize

import "encoding/binary"

// BytesWriter appends to a growable byte buffer. Writers never fail, the
// caller guarantees well formed input
type BytesWriter struct {
	buf []byte
}

// NewBytesWriter returns an empty BytesWriter
func NewBytesWriter() *BytesWriter {
	return &BytesWriter{}
}

// Bytes returns the written buffer
func (w *BytesWriter) Bytes() []byte {
	return w.buf
}

// Len returns the number of bytes written so far
func (w *BytesWriter) Len() int {
	return len(w.buf)
}

// WriteBytes appends b
func (w *BytesWriter) WriteBytes(b []byte) {
	w.buf = append(w.buf, b...)
}

// WriteUint8 appends a single byte
func (w *BytesWriter) WriteUint8(b byte) {
	w.buf = append(w.buf, b)
}

// WriteBool appends 1 for true and 0 for false
func (w *BytesWriter) WriteBool(v bool) {
	if v {
		w.WriteUint8(1)
	} else {
		w.WriteUint8(0)
	}
}

// WriteCompactSize appends the canonical CompactSize encoding of n
func (w *BytesWriter) WriteCompactSize(n uint64) {
	w.buf = append(w.buf, WriteCompactSize(n)...)
}

// WriteVarBytes appends a CompactSize length prefix followed by b
func (w *BytesWriter) WriteVarBytes(b []byte) {
	w.WriteCompactSize(uint64(len(b)))
	w.WriteBytes(b)
}

// WriteVarString appends a CompactSize length prefixed string
func (w *BytesWriter) WriteVarString(s string) {
	w.WriteCompactSize(uint64(len(s)))
	w.buf = append(w.buf, s...)
}

// WriteUint16 appends a little endian uint16
func (w *BytesWriter) WriteUint16(n uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], n)
	w.buf = append(w.buf, b[:]...)
}

// WriteUint32 appends a little endian uint32
func (w *BytesWriter) WriteUint32(n uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], n)
	w.buf = append(w.buf, b[:]...)
}

// WriteUint64 appends a little endian uint64
func (w *BytesWriter) WriteUint64(n uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], n)
	w.buf = append(w.buf, b[:]...)
}

// WriteInt16 appends a little endian int16
func (w *BytesWriter) WriteInt16(n int16) {
	w.WriteUint16(uint16(n))
}

// WriteInt32 appends a little endian int32
func (w *BytesWriter) WriteInt32(n int32) {
	w.WriteUint32(uint32(n))
}

// WriteInt64 appends a little endian int64
func (w *BytesWriter) WriteInt64(n int64) {
	w.WriteUint64(uint64(n))
}
