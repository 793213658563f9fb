package bitvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteOrder(t *testing.T) {
	for _, rep := range representations {
		v, err := rep.FromBytes([]byte{0x01, 0x02}, LSBFirst)
		require.NoError(t, err)
		assert.Equal(t, []byte{0x02, 0x01}, v.ToBytes(MSBFirst), rep.String())
		assert.Equal(t, []byte{0x01, 0x02}, v.ToBytes(LSBFirst), rep.String())

		v, err = rep.FromBytes([]byte{0x01, 0x02}, MSBFirst)
		require.NoError(t, err)
		assert.Equal(t, "0000000100000010", v.String(), rep.String())
		set, err := v.Get(8)
		require.NoError(t, err)
		assert.True(t, set)
	}
}

func TestWords(t *testing.T) {
	for _, rep := range representations {
		v, err := rep.FromBytes([]byte{0x01, 0x02, 0x03, 0x04, 0x05}, LSBFirst)
		require.NoError(t, err)
		assert.Equal(t, []uint32{0x04030201, 0x00000005}, v.ToWords(LSBFirst), rep.String())
		assert.Equal(t, []uint32{0x00000005, 0x04030201}, v.ToWords(MSBFirst), rep.String())

		w, err := rep.FromWords([]uint32{0x80000000, 0x1}, LSBFirst)
		require.NoError(t, err)
		assert.Equal(t, 64, w.Len())
		assert.Equal(t, []byte{0, 0, 0, 0x80, 1, 0, 0, 0}, w.ToBytes(LSBFirst), rep.String())
		assert.Equal(t, 33, SignificantLen(w))

		m, err := rep.FromWords([]uint32{0x80000000, 0x1}, MSBFirst)
		require.NoError(t, err)
		assert.Equal(t, []uint32{0x1, 0x80000000}, m.ToWords(LSBFirst), rep.String())

		assert.Equal(t, []uint32{0x0000000f}, mustBits(t, rep, "1111").ToWords(LSBFirst), rep.String())
		assert.Equal(t, []uint32{}, rep.Allocate()(0).ToWords(MSBFirst))
	}
}

func TestWordsBytesRoundTrip(t *testing.T) {
	words := []uint32{0xdeadbeef, 0x00c0ffee, 0x7}
	for _, rep := range representations {
		v, err := rep.FromWords(words, LSBFirst)
		require.NoError(t, err)
		b, err := rep.FromBytes(v.ToBytes(MSBFirst), MSBFirst)
		require.NoError(t, err)
		assert.Equal(t, words, b.ToWords(LSBFirst), rep.String())
		assert.True(t, b.Equal(v))
	}
}

func TestBoundaryMask(t *testing.T) {
	assert.Equal(t, byte(0xff), boundaryMask(0))
	assert.Equal(t, byte(0x01), boundaryMask(1))
	assert.Equal(t, byte(0x7f), boundaryMask(15))
	assert.Equal(t, byte(0xff), boundaryMask(16))
	assert.Equal(t, []byte{0xff, 0x03}, resizeBytes([]byte{0xff, 0xff, 0xff}, 10))
	assert.Equal(t, []byte{0x0f, 0x00, 0x00}, resizeBytes([]byte{0x0f}, 24))
}

func TestSignificantLen(t *testing.T) {
	assert.Equal(t, 0, significantLen(nil))
	assert.Equal(t, 0, significantLen([]byte{0, 0}))
	assert.Equal(t, 1, significantLen([]byte{0x01, 0x00}))
	assert.Equal(t, 16, significantLen([]byte{0x00, 0x80}))
	assert.Equal(t, 10, significantLen([]byte{0xff, 0x03, 0x00}))
}
