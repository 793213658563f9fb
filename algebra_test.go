// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package bitvec

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAndDisjointNibbles(t *testing.T) {
	for _, rep := range representations {
		got := mustBytes(t, rep, 0x0f).And(mustBytes(t, rep, 0xf0))
		assert.True(t, got.Equal(mustBytes(t, rep, 0x00)), rep.String())
		assert.Equal(t, 8, got.Len())
	}
}

func TestAlgebraDifferentLengths(t *testing.T) {
	for _, rep := range representations {
		a := mustBytes(t, rep, 0xff)
		b := mustBytes(t, rep, 0x0f, 0x01)

		and := a.And(b)
		assert.Equal(t, 16, and.Len(), rep.String())
		assert.Equal(t, []byte{0x0f, 0x00}, and.ToBytes(LSBFirst), rep.String())

		or := a.Or(b)
		assert.Equal(t, 16, or.Len(), rep.String())
		assert.Equal(t, []byte{0xff, 0x01}, or.ToBytes(LSBFirst), rep.String())

		xor := a.Xor(b)
		assert.Equal(t, 16, xor.Len(), rep.String())
		assert.Equal(t, []byte{0xf0, 0x01}, xor.ToBytes(LSBFirst), rep.String())
	}
}

func TestMixedRepresentationOperands(t *testing.T) {
	p := mustBytes(t, PackedRepresentation, 0x3c)
	r := mustBits(t, ReferenceRepresentation, "1010")
	got := p.Or(r)
	assert.IsType(t, &Packed{}, got)
	assert.Equal(t, []byte{0x3e}, got.ToBytes(LSBFirst))
	got = r.And(p)
	assert.IsType(t, &Reference{}, got)
	assert.Equal(t, 8, got.Len())
	assert.Equal(t, []byte{0x08}, got.ToBytes(LSBFirst))
}

func TestXorSeveralOperands(t *testing.T) {
	for _, rep := range representations {
		a := mustBytes(t, rep, 0x13)
		b := mustBytes(t, rep, 0x15)
		c := mustBytes(t, rep, 0x16)
		// bits held by every operand are cleared, as are bits held by none
		got := a.Xor(b, c)
		assert.Equal(t, []byte{0x07}, got.ToBytes(LSBFirst), rep.String())

		assert.Equal(t, []byte{0x10}, a.And(b, c).ToBytes(LSBFirst), rep.String())
		assert.Equal(t, []byte{0x17}, a.Or(b, c).ToBytes(LSBFirst), rep.String())
	}
}

func TestNot(t *testing.T) {
	for _, rep := range representations {
		v := mustBits(t, rep, "0101")
		got := v.Not()
		assert.Equal(t, "1010", got.String(), rep.String())
		assert.Equal(t, 4, got.Len())
		assert.Equal(t, []byte{0x0a}, got.ToBytes(LSBFirst), rep.String())
	}
	p := mustBits(t, PackedRepresentation, "000").Not().(*Packed)
	assert.Equal(t, []byte{0x07}, p.data, "padding must stay clear after complement")
}

func TestOperandsUnchanged(t *testing.T) {
	for _, rep := range representations {
		a := mustBytes(t, rep, 0x5a)
		b := mustBytes(t, rep, 0x0f, 0xf0)
		_ = a.And(b)
		_ = a.Or(b)
		_ = a.Xor(b)
		_ = a.Not()
		_, err := a.ShiftLeft(3, Both)
		require.NoError(t, err)
		assert.Equal(t, []byte{0x5a}, a.ToBytes(LSBFirst), rep.String())
		assert.Equal(t, []byte{0x0f, 0xf0}, b.ToBytes(LSBFirst), rep.String())
		assert.Equal(t, 8, a.Len())
		assert.Equal(t, 16, b.Len())
	}
}

func TestAlgebraProperties(t *testing.T) {
	r := rand.New(rand.NewSource(77)) //intentionally fixed seed
	for i := 0; i < 200; i++ {
		x, err := PackedFromBools(randomBools(r, r.Intn(40)))
		require.NoError(t, err)
		y, err := ReferenceFromBools(randomBools(r, r.Intn(40)))
		require.NoError(t, err)

		assert.True(t, x.Or(y).Equal(y.Or(x)), "or must commute: %s %s", x, y)
		assert.True(t, x.And(y).Equal(y.And(x)), "and must commute: %s %s", x, y)
		assert.True(t, x.Xor(y).Equal(y.Xor(x)), "xor must commute: %s %s", x, y)

		nn := x.Not().Not()
		assert.Equal(t, x.Len(), nn.Len())
		assert.True(t, nn.Equal(x), "not must be its own inverse: %s", x)

		// x ^ y ^ y == x for two operands
		assert.True(t, x.Xor(y).Xor(y).Equal(x), "%s %s", x, y)
	}
}

func TestEqualZeroExtension(t *testing.T) {
	for _, rep := range representations {
		for _, other := range representations {
			assert.True(t, mustBytes(t, rep, 0x00).Equal(mustBytes(t, other, 0x00, 0x00)))
			assert.True(t, mustBytes(t, rep, 0x01).Equal(mustBytes(t, other, 0x01, 0x00)))
			assert.False(t, mustBytes(t, rep, 0x01).Equal(mustBytes(t, other, 0x01, 0x80)))
			assert.False(t, mustBytes(t, rep, 0x01, 0x80).Equal(mustBytes(t, other, 0x01)))
			assert.True(t, rep.Allocate()(0).Equal(mustBytes(t, other, 0x00)))
		}
	}
}

func TestCompare(t *testing.T) {
	cases := []struct {
		name string
		a, b []byte
		want int
	}{
		{"less", []byte{0x01}, []byte{0x02}, -1},
		{"greater", []byte{0x02}, []byte{0x01}, 1},
		{"equal", []byte{0x5a}, []byte{0x5a}, 0},
		{"zero extended equal", []byte{0x01, 0x00}, []byte{0x01}, 0},
		{"higher bit beyond other", []byte{0x00, 0x01}, []byte{0xff}, 1},
		{"lower than longer", []byte{0x80}, []byte{0x00, 0x01}, -1},
		{"msb dominates", []byte{0xff, 0x01}, []byte{0x00, 0x02}, -1},
		{"empty", []byte{}, []byte{0x00}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, rep := range representations {
				a, b := mustBytes(t, rep, tc.a...), mustBytes(t, rep, tc.b...)
				assert.Equal(t, tc.want, a.Compare(b), rep.String())
				assert.Equal(t, -tc.want, b.Compare(a), rep.String())
				assert.Equal(t, tc.want == 0, a.Equal(b), rep.String())
			}
		})
	}
}

func TestHashConsistentWithEqual(t *testing.T) {
	a := mustBytes(t, PackedRepresentation, 0x81)
	b := mustBytes(t, ReferenceRepresentation, 0x81, 0x00, 0x00)
	require.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.Equal(t, HashWith(a, FNVHash64), HashWith(b, FNVHash64))
	assert.Equal(t, Hash(emptyReference(t)), Hash(mustBytes(t, PackedRepresentation, 0x00)))

	c := mustBytes(t, PackedRepresentation, 0x81, 0x01)
	assert.NotEqual(t, a.Hash(), c.Hash())
}

func emptyReference(t *testing.T) Vector {
	v, err := NewReference(0, false)
	require.NoError(t, err)
	return v
}

func TestOnesCountAndSignificantLen(t *testing.T) {
	for _, rep := range representations {
		v := mustBytes(t, rep, 0x81, 0x04, 0x00)
		assert.Equal(t, 3, OnesCount(v))
		assert.Equal(t, 11, SignificantLen(v))
		assert.Equal(t, 0, SignificantLen(mustBytes(t, rep, 0x00)))
	}
}
