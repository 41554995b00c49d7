package codec

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRoundTrip tests every field type through a Writer and Reader.
func TestRoundTrip(t *testing.T) {
	w := NewWriter(0)
	w.WriteFloat64(math.Pi)
	w.WriteFloat64(math.Inf(-1))
	w.WriteInt32(-7)
	w.WriteCount(3)
	w.WriteFloat64s([]float64{1.5, -0, math.SmallestNonzeroFloat64})
	w.WriteFloat64s(nil)

	assert.Equal(t, 8+8+4+8+(8+3*8)+8, w.Len())

	r := NewReader(w.Bytes())
	f, err := r.ReadFloat64()
	require.NoError(t, err)
	assert.Equal(t, math.Pi, f)

	f, err = r.ReadFloat64()
	require.NoError(t, err)
	assert.True(t, math.IsInf(f, -1))

	c, err := r.ReadInt32()
	require.NoError(t, err)
	assert.Equal(t, int32(-7), c)

	n, err := r.ReadCount(0)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	v, err := r.ReadFloat64s()
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 0, math.SmallestNonzeroFloat64}, v)

	v, err = r.ReadFloat64s()
	require.NoError(t, err)
	assert.Nil(t, v)

	assert.Equal(t, 0, r.Remaining())
	assert.Equal(t, w.Len(), r.Offset())
}

// TestLittleEndianLayout pins the byte order of each field.
func TestLittleEndianLayout(t *testing.T) {
	w := NewWriter(16)
	w.WriteInt32(1)
	w.WriteCount(258)
	w.WriteFloat64(1)

	assert.Equal(t, []byte{
		1, 0, 0, 0,
		2, 1, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0xf0, 0x3f,
	}, w.Bytes())
}

// TestShortReads tests that every reader reports truncation.
func TestShortReads(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		read func(r *Reader) error
	}{
		{"float64", []byte{1, 2, 3}, func(r *Reader) error { _, err := r.ReadFloat64(); return err }},
		{"int32", []byte{1}, func(r *Reader) error { _, err := r.ReadInt32(); return err }},
		{"count", nil, func(r *Reader) error { _, err := r.ReadCount(1); return err }},
		{"vector body", []byte{2, 0, 0, 0, 0, 0, 0, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, func(r *Reader) error { _, err := r.ReadFloat64s(); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.read(NewReader(tt.data))
			assert.True(t, errors.Is(err, ErrTruncatedStream), "got %v", err)
		})
	}
}

// TestOversizedCount tests that a corrupt count is rejected before allocation.
func TestOversizedCount(t *testing.T) {
	w := NewWriter(8)
	w.WriteCount(math.MaxInt64)

	r := NewReader(w.Bytes())
	_, err := r.ReadFloat64s()
	assert.ErrorIs(t, err, ErrTruncatedStream)
}
