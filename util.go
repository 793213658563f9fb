// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package bitvec

import (
	"encoding/binary"
	"math"
	"math/bits"
	"slices"
)

// Order selects how the groups (bytes or 32 bit words) of a vector are
// sequenced in conversions.  The order of bits within a group is never
// reversed: bit i always lands in bit i%8 (or i%32) of its group.
type Order bool

const (
	// LSBFirst emits the group holding bit 0 first
	LSBFirst Order = false
	// MSBFirst emits the group holding the most significant bits first
	MSBFirst Order = true
)

func (o Order) String() string {
	if o == MSBFirst {
		return "msb-first"
	}
	return "lsb-first"
}

const (
	bitsPerByte  = 8
	bitsPerWord  = 32
	bytesPerWord = bitsPerWord / bitsPerByte

	// maxLen is the longest vector whose byte count can be computed
	maxLen = math.MaxInt - bitsPerByte
)

func bytesNeeded(n int) int {
	return (n + bitsPerByte - 1) / bitsPerByte
}

func wordsNeeded(n int) int {
	return (n + bitsPerWord - 1) / bitsPerWord
}

// boundaryMask returns the mask of addressable bits in the last byte of
// a vector of n bits.
func boundaryMask(n int) byte {
	if r := n % bitsPerByte; r != 0 {
		return byte(1)<<uint(r) - 1
	}
	return 0xff
}

// maskBoundary clears every bit at or beyond n in data, which must hold
// bytesNeeded(n) bytes.
func maskBoundary(data []byte, n int) {
	if len(data) > 0 {
		data[len(data)-1] &= boundaryMask(n)
	}
}

// resizeBytes returns a copy of data holding exactly bytesNeeded(n)
// bytes, zero extended or truncated, with the boundary masked.
func resizeBytes(data []byte, n int) []byte {
	out := make([]byte, bytesNeeded(n))
	copy(out, data)
	maskBoundary(out, n)
	return out
}

// ordered returns a copy of groups in the requested order.  groups is
// always supplied least significant first.
func ordered[T byte | uint32](groups []T, order Order) []T {
	out := slices.Clone(groups)
	if out == nil {
		out = []T{}
	}
	if order == MSBFirst {
		slices.Reverse(out)
	}
	return out
}

func bytesToWords(b []byte, n int) []uint32 {
	var buf [bytesPerWord]byte
	words := make([]uint32, wordsNeeded(n))
	for i := range words {
		clear(buf[:])
		if off := i * bytesPerWord; off < len(b) {
			copy(buf[:], b[off:])
		}
		words[i] = binary.LittleEndian.Uint32(buf[:])
	}
	return words
}

func wordsToBytes(w []uint32) []byte {
	b := make([]byte, len(w)*bytesPerWord)
	for i, v := range w {
		binary.LittleEndian.PutUint32(b[i*bytesPerWord:], v)
	}
	return b
}

func boolsToBytes(v []bool) []byte {
	b := make([]byte, bytesNeeded(len(v)))
	for i, set := range v {
		if set {
			b[i/bitsPerByte] |= 1 << uint(i%bitsPerByte)
		}
	}
	return b
}

func bytesToBools(b []byte, n int) []bool {
	v := make([]bool, n)
	for i := range v {
		v[i] = b[i/bitsPerByte]&(1<<uint(i%bitsPerByte)) != 0
	}
	return v
}

// significantLen returns the index of the highest set bit in data plus
// one, or zero when no bit is set.
func significantLen(data []byte) int {
	for i := len(data) - 1; i >= 0; i-- {
		if data[i] != 0 {
			return i*bitsPerByte + bits.Len8(data[i])
		}
	}
	return 0
}

// canonicalBytes is the LSB first byte form of r with trailing zero
// bytes removed.  Vectors that are equal share a canonical form.
func canonicalBytes(r Reader) []byte {
	b := r.ToBytes(LSBFirst)
	return b[:bytesNeeded(significantLen(b))]
}
