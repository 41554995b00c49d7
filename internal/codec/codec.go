// Package codec provides a little-endian, append-only byte buffer and a
// consuming reader for fixed-size scalar fields and count-prefixed vectors.
//
// Reals are IEEE-754 float64 (8 bytes), counts are uint64 (8 bytes) and
// codes are int32 (4 bytes). The stream carries no field tags or version.
package codec

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Field sizes in bytes.
const (
	SizeFloat64 = 8
	SizeCount   = 8
	SizeInt32   = 4
)

// Writer appends encoded fields to a growing buffer.
type Writer struct {
	buf []byte
}

// NewWriter creates a Writer with room for sizeHint bytes.
func NewWriter(sizeHint int) *Writer {
	return &Writer{buf: make([]byte, 0, sizeHint)}
}

// WriteFloat64 appends a real.
func (w *Writer) WriteFloat64(v float64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, math.Float64bits(v))
}

// WriteCount appends a sequence length.
func (w *Writer) WriteCount(n int) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, uint64(n))
}

// WriteInt32 appends an integer code.
func (w *Writer) WriteInt32(v int32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, uint32(v))
}

// WriteFloat64s appends a count-prefixed vector of reals.
func (w *Writer) WriteFloat64s(v []float64) {
	w.WriteCount(len(v))
	for _, x := range v {
		w.WriteFloat64(x)
	}
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Bytes returns the encoded buffer. The slice aliases the writer's storage
// until the next write.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Reader consumes encoded fields from the front of a buffer.
type Reader struct {
	buf []byte
	off int
}

// NewReader creates a Reader over b. b is not copied.
func NewReader(b []byte) *Reader {
	return &Reader{buf: b}
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.off
}

// Offset returns the number of bytes consumed.
func (r *Reader) Offset() int {
	return r.off
}

func (r *Reader) take(n int, field string) ([]byte, error) {
	if r.Remaining() < n {
		return nil, fmt.Errorf("%w: %s needs %d bytes at offset %d, %d left",
			ErrTruncatedStream, field, n, r.off, r.Remaining())
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

// ReadFloat64 consumes a real.
func (r *Reader) ReadFloat64() (float64, error) {
	b, err := r.take(SizeFloat64, "float64")
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b)), nil
}

// ReadInt32 consumes an integer code.
func (r *Reader) ReadInt32() (int32, error) {
	b, err := r.take(SizeInt32, "int32")
	if err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(b)), nil
}

// ReadCount consumes a sequence length whose elements occupy at least
// minElemSize bytes each. A count the remaining bytes cannot possibly hold is
// reported as truncation before anything is allocated for it.
func (r *Reader) ReadCount(minElemSize int) (int, error) {
	b, err := r.take(SizeCount, "count")
	if err != nil {
		return 0, err
	}
	n := binary.LittleEndian.Uint64(b)
	if minElemSize < 1 {
		minElemSize = 1
	}
	if n > uint64(r.Remaining()/minElemSize) {
		return 0, fmt.Errorf("%w: count %d at offset %d exceeds the %d bytes left",
			ErrTruncatedStream, n, r.off-SizeCount, r.Remaining())
	}
	return int(n), nil
}

// ReadFloat64s consumes a count-prefixed vector of reals. An empty vector
// decodes as nil.
func (r *Reader) ReadFloat64s() ([]float64, error) {
	n, err := r.ReadCount(SizeFloat64)
	if err != nil || n == 0 {
		return nil, err
	}
	v := make([]float64, n)
	for i := range v {
		if v[i], err = r.ReadFloat64(); err != nil {
			return nil, err
		}
	}
	return v, nil
}
