// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package bitvec

import (
	"fmt"
	"io"
	"math/bits"
	"slices"
	"strings"
)

// Packed is a bit vector stored 8 bits per byte, bit i in bit i%8 of
// byte i/8.  Bits at or beyond Len() in the last byte are always zero.
type Packed struct {
	data []byte
	n    int
}

// NewPacked allocates a vector of n bits, each set to value
func NewPacked(n int, value bool) (*Packed, error) {
	if n < 0 {
		return nil, fmt.Errorf("length %d: %w", n, ErrOutOfRange)
	}
	p := &Packed{data: make([]byte, bytesNeeded(n)), n: n}
	if value {
		for i := range p.data {
			p.data[i] = 0xff
		}
		maskBoundary(p.data, n)
	}
	return p, nil
}

// PackedAllocate is an AllocateFn for packed vectors
func PackedAllocate(n int) Vector {
	p, err := NewPacked(n, false)
	if err != nil {
		panic(fmt.Sprintf("packed allocation: %s", err))
	}
	return p
}

// PackedFromBools builds a vector with one bit per element of v
func PackedFromBools(v []bool) (*Packed, error) {
	if v == nil {
		return nil, fmt.Errorf("nil bool sequence: %w", ErrInvalidArgument)
	}
	return &Packed{data: boolsToBytes(v), n: len(v)}, nil
}

// PackedFromBytes builds a vector of len(b)*8 bits
func PackedFromBytes(b []byte, order Order) (*Packed, error) {
	if b == nil {
		return nil, fmt.Errorf("nil byte sequence: %w", ErrInvalidArgument)
	}
	return &Packed{data: ordered(b, order), n: len(b) * bitsPerByte}, nil
}

// PackedFromWords builds a vector of len(w)*32 bits
func PackedFromWords(w []uint32, order Order) (*Packed, error) {
	if w == nil {
		return nil, fmt.Errorf("nil word sequence: %w", ErrInvalidArgument)
	}
	return &Packed{data: wordsToBytes(ordered(w, order)), n: len(w) * bitsPerWord}, nil
}

// PackedFrom copies any vector into the packed representation
func PackedFrom(r Reader) *Packed {
	if p, ok := r.(*Packed); ok {
		return p.clone()
	}
	return &Packed{data: resizeBytes(r.ToBytes(LSBFirst), r.Len()), n: r.Len()}
}

func (p *Packed) clone() *Packed {
	return &Packed{data: slices.Clone(p.data), n: p.n}
}

func (p *Packed) Len() int {
	return p.n
}

func (p *Packed) Get(ix int) (bool, error) {
	if ix < 0 || ix >= p.n {
		return false, indexError(ix, p.n)
	}
	return p.data[ix/bitsPerByte]&(1<<uint(ix%bitsPerByte)) != 0, nil
}

func (p *Packed) ToBytes(order Order) []byte {
	return ordered(p.data, order)
}

func (p *Packed) ToWords(order Order) []uint32 {
	return ordered(bytesToWords(p.data, p.n), order)
}

func (p *Packed) Set(ix int, val bool) error {
	if ix < 0 || ix >= p.n {
		return indexError(ix, p.n)
	}
	p.set(ix, val)
	return nil
}

func (p *Packed) set(ix int, val bool) {
	bit := byte(1) << uint(ix%bitsPerByte)
	if val {
		p.data[ix/bitsPerByte] |= bit
	} else {
		p.data[ix/bitsPerByte] &^= bit
	}
}

func (p *Packed) SetElastic(ix int, val bool, e Elasticity) error {
	if ix >= p.n && ix >= 0 && e.Has(Expansion) {
		if ix >= maxLen {
			return indexError(ix, p.n)
		}
		p.resize(ix + 1)
	}
	return p.Set(ix, val)
}

func (p *Packed) SetLen(n int) error {
	if n < 0 || n > maxLen {
		return fmt.Errorf("length %d: %w", n, ErrOutOfRange)
	}
	p.resize(n)
	return nil
}

func (p *Packed) resize(n int) {
	p.data = resizeBytes(p.data, n)
	p.n = n
}

func (p *Packed) Add(val bool) {
	// padding bits are clear, so only a full last byte needs growing
	if p.n%bitsPerByte == 0 {
		p.data = append(p.data, 0)
	}
	p.n++
	p.set(p.n-1, val)
}

func (p *Packed) Remove(val bool) bool {
	ix := p.indexOf(val)
	if ix < 0 {
		return false
	}
	// bits above ix move down onto it
	tail := shrBytes(p.data, ix+1, p.n-ix-1)
	p.data = p.splice(ix, tail, p.n-ix-1)
	p.n--
	return true
}

// indexOf returns the first index holding val, or -1
func (p *Packed) indexOf(val bool) int {
	for i, b := range p.data {
		if !val {
			b = ^b
			if i == len(p.data)-1 {
				b &= boundaryMask(p.n)
			}
		}
		if b != 0 {
			return i*bitsPerByte + bits.TrailingZeros8(b)
		}
	}
	return -1
}

func (p *Packed) Clear() {
	p.data = []byte{}
	p.n = 0
}

func (p *Packed) Clone() Vector {
	return p.clone()
}

// operands returns the receiver and others zero extended to a common
// byte length, along with that length in bits
func (p *Packed) operands(others []Reader) ([][]byte, int) {
	n := p.n
	for _, o := range others {
		n = max(n, o.Len())
	}
	ops := make([][]byte, 0, len(others)+1)
	ops = append(ops, resizeBytes(p.data, n))
	for _, o := range others {
		ops = append(ops, resizeBytes(o.ToBytes(LSBFirst), n))
	}
	return ops, n
}

func (p *Packed) And(other Reader, more ...Reader) Vector {
	ops, n := p.operands(append([]Reader{other}, more...))
	out := ops[0]
	for _, op := range ops[1:] {
		for i := range out {
			out[i] &= op[i]
		}
	}
	return &Packed{data: out, n: n}
}

func (p *Packed) Or(other Reader, more ...Reader) Vector {
	ops, n := p.operands(append([]Reader{other}, more...))
	out := ops[0]
	for _, op := range ops[1:] {
		for i := range out {
			out[i] |= op[i]
		}
	}
	return &Packed{data: out, n: n}
}

// Xor sets a bit when some but not all of the operands have it set,
// which for a single other operand is the usual exclusive or.
func (p *Packed) Xor(other Reader, more ...Reader) Vector {
	ops, n := p.operands(append([]Reader{other}, more...))
	some := slices.Clone(ops[0])
	all := ops[0]
	for _, op := range ops[1:] {
		for i := range some {
			some[i] |= op[i]
			all[i] &= op[i]
		}
	}
	for i := range some {
		some[i] &^= all[i]
	}
	return &Packed{data: some, n: n}
}

func (p *Packed) Not() Vector {
	out := make([]byte, len(p.data))
	for i, b := range p.data {
		out[i] = ^b
	}
	// the complement turned the padding on
	maskBoundary(out, p.n)
	return &Packed{data: out, n: p.n}
}

func (p *Packed) ShiftLeft(count int, e Elasticity) (Vector, error) {
	return p.shiftFrom(0, count, true, e, false, false)
}

func (p *Packed) ShiftRight(count int, e Elasticity) (Vector, error) {
	return p.shiftFrom(0, count, false, e, false, false)
}

func (p *Packed) ShiftLeftFrom(start, count int, e Elasticity, silent bool) (Vector, error) {
	return p.shiftFrom(start, count, true, e, true, silent)
}

func (p *Packed) ShiftRightFrom(start, count int, e Elasticity, silent bool) (Vector, error) {
	return p.shiftFrom(start, count, false, e, true, silent)
}

func (p *Packed) shiftFrom(start, count int, left bool, e Elasticity, ranged, silent bool) (Vector, error) {
	noop, err := checkShift(p.n, start, count, left, e, ranged, silent)
	if err != nil {
		return nil, err
	}
	if noop {
		return p.clone(), nil
	}
	m := shiftLen(p.n-start, count, left, e)
	suffix := shrBytes(p.data, start, p.n-start)
	if left {
		suffix = shlBytes(suffix, count, m)
	} else {
		suffix = shrBytes(suffix, count, m)
	}
	if e.Has(Contraction) {
		m = significantLen(suffix)
		suffix = suffix[:bytesNeeded(m)]
	}
	return &Packed{data: p.splice(start, suffix, m), n: start + m}, nil
}

// splice returns the first start bits of p followed by the m bits of
// suffix.
func (p *Packed) splice(start int, suffix []byte, m int) []byte {
	out := shlBytes(suffix, start, start+m)
	for i, b := range resizeBytes(p.data, start) {
		out[i] |= b
	}
	return out
}

// shlBytes moves the bits of src count positions toward the most
// significant end and returns the low m bits of the result.  src must
// have its boundary masked.
func shlBytes(src []byte, count, m int) []byte {
	if count >= m {
		return make([]byte, bytesNeeded(m))
	}
	whole, frac := count/bitsPerByte, uint(count%bitsPerByte)
	// whole bytes first, with a spare byte for the carry
	buf := make([]byte, whole+len(src)+1)
	copy(buf[whole:], src)
	if frac != 0 {
		for i := len(buf) - 1; i > whole; i-- {
			buf[i] = buf[i]<<frac | buf[i-1]>>(bitsPerByte-frac)
		}
		buf[whole] <<= frac
	}
	return resizeBytes(buf, m)
}

// shrBytes moves the bits of src count positions toward the least
// significant end and returns the low m bits of the result.  src must
// have its boundary masked.
func shrBytes(src []byte, count, m int) []byte {
	whole, frac := count/bitsPerByte, uint(count%bitsPerByte)
	if whole >= len(src) {
		return make([]byte, bytesNeeded(m))
	}
	buf := slices.Clone(src)
	if frac != 0 {
		for i := 0; i < len(buf)-1; i++ {
			buf[i] = buf[i]>>frac | buf[i+1]<<(bitsPerByte-frac)
		}
		buf[len(buf)-1] >>= frac
	}
	return resizeBytes(buf[whole:], m)
}

func (p *Packed) Equal(other Reader) bool {
	return Equal(p, other)
}

func (p *Packed) Compare(other Reader) int {
	return Compare(p, other)
}

func (p *Packed) Hash() uint64 {
	return Hash(p)
}

// String renders the bits most significant first
func (p *Packed) String() string {
	var sb strings.Builder
	sb.Grow(p.n)
	for i := p.n - 1; i >= 0; i-- {
		if p.data[i/bitsPerByte]&(1<<uint(i%bitsPerByte)) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func (p *Packed) WriteTo(w io.Writer) (int64, error) {
	return writeVector(w, p)
}

func (p *Packed) ReadFrom(r io.Reader) (int64, error) {
	data, n, read, err := readVector(r)
	if err != nil {
		return read, err
	}
	p.data, p.n = data, n
	return read, nil
}
