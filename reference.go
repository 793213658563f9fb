package bitvec

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

// Reference is a bit vector stored one bool per bit.  It trades space
// for simplicity and serves as the yardstick Packed is checked against.
type Reference struct {
	bits []bool
}

// NewReference allocates a vector of n bits, each set to value
func NewReference(n int, value bool) (*Reference, error) {
	if n < 0 {
		return nil, fmt.Errorf("length %d: %w", n, ErrOutOfRange)
	}
	r := &Reference{bits: make([]bool, n)}
	if value {
		for i := range r.bits {
			r.bits[i] = true
		}
	}
	return r, nil
}

// ReferenceAllocate is an AllocateFn for reference vectors
func ReferenceAllocate(n int) Vector {
	r, err := NewReference(n, false)
	if err != nil {
		panic(fmt.Sprintf("reference allocation: %s", err))
	}
	return r
}

// ReferenceFromBools builds a vector holding a copy of v
func ReferenceFromBools(v []bool) (*Reference, error) {
	if v == nil {
		return nil, fmt.Errorf("nil bool sequence: %w", ErrInvalidArgument)
	}
	return &Reference{bits: slices.Clone(v)}, nil
}

// ReferenceFromBytes builds a vector of len(b)*8 bits
func ReferenceFromBytes(b []byte, order Order) (*Reference, error) {
	if b == nil {
		return nil, fmt.Errorf("nil byte sequence: %w", ErrInvalidArgument)
	}
	return &Reference{bits: bytesToBools(ordered(b, order), len(b)*bitsPerByte)}, nil
}

// ReferenceFromWords builds a vector of len(w)*32 bits
func ReferenceFromWords(w []uint32, order Order) (*Reference, error) {
	if w == nil {
		return nil, fmt.Errorf("nil word sequence: %w", ErrInvalidArgument)
	}
	return &Reference{bits: bytesToBools(wordsToBytes(ordered(w, order)), len(w)*bitsPerWord)}, nil
}

// ReferenceFrom copies any vector into the reference representation
func ReferenceFrom(r Reader) *Reference {
	return &Reference{bits: boolsOf(r, r.Len())}
}

// boolsOf returns the bits of r zero extended (or truncated) to n
func boolsOf(r Reader, n int) []bool {
	if ref, ok := r.(*Reference); ok {
		out := make([]bool, n)
		copy(out, ref.bits)
		return out
	}
	return bytesToBools(resizeBytes(r.ToBytes(LSBFirst), n), n)
}

func (r *Reference) Len() int {
	return len(r.bits)
}

func (r *Reference) Get(ix int) (bool, error) {
	if ix < 0 || ix >= len(r.bits) {
		return false, indexError(ix, len(r.bits))
	}
	return r.bits[ix], nil
}

func (r *Reference) ToBytes(order Order) []byte {
	return ordered(boolsToBytes(r.bits), order)
}

func (r *Reference) ToWords(order Order) []uint32 {
	return ordered(bytesToWords(boolsToBytes(r.bits), len(r.bits)), order)
}

func (r *Reference) Set(ix int, val bool) error {
	if ix < 0 || ix >= len(r.bits) {
		return indexError(ix, len(r.bits))
	}
	r.bits[ix] = val
	return nil
}

func (r *Reference) SetElastic(ix int, val bool, e Elasticity) error {
	if ix >= len(r.bits) && e.Has(Expansion) {
		if ix >= maxLen {
			return indexError(ix, len(r.bits))
		}
		r.resize(ix + 1)
	}
	return r.Set(ix, val)
}

func (r *Reference) SetLen(n int) error {
	if n < 0 || n > maxLen {
		return fmt.Errorf("length %d: %w", n, ErrOutOfRange)
	}
	r.resize(n)
	return nil
}

func (r *Reference) resize(n int) {
	if n <= len(r.bits) {
		r.bits = slices.Clip(r.bits[:n])
		return
	}
	r.bits = append(r.bits, make([]bool, n-len(r.bits))...)
}

func (r *Reference) Add(val bool) {
	r.bits = append(r.bits, val)
}

func (r *Reference) Remove(val bool) bool {
	ix := slices.Index(r.bits, val)
	if ix < 0 {
		return false
	}
	r.bits = slices.Delete(r.bits, ix, ix+1)
	return true
}

func (r *Reference) Clear() {
	r.bits = []bool{}
}

func (r *Reference) Clone() Vector {
	return &Reference{bits: slices.Clone(r.bits)}
}

// combine evaluates keep at every position over the maximum operand
// length, passing the number of operands with that bit set and the
// number of operands.
func (r *Reference) combine(others []Reader, keep func(set, total int) bool) Vector {
	n := len(r.bits)
	for _, o := range others {
		n = max(n, o.Len())
	}
	ops := make([][]bool, 0, len(others)+1)
	ops = append(ops, boolsOf(r, n))
	for _, o := range others {
		ops = append(ops, boolsOf(o, n))
	}
	out := make([]bool, n)
	for i := range out {
		set := 0
		for _, op := range ops {
			if op[i] {
				set++
			}
		}
		out[i] = keep(set, len(ops))
	}
	return &Reference{bits: out}
}

func (r *Reference) And(other Reader, more ...Reader) Vector {
	return r.combine(append([]Reader{other}, more...), func(set, total int) bool {
		return set == total
	})
}

func (r *Reference) Or(other Reader, more ...Reader) Vector {
	return r.combine(append([]Reader{other}, more...), func(set, total int) bool {
		return set > 0
	})
}

// Xor sets a bit when some but not all of the operands have it set,
// which for a single other operand is the usual exclusive or.
func (r *Reference) Xor(other Reader, more ...Reader) Vector {
	return r.combine(append([]Reader{other}, more...), func(set, total int) bool {
		return set != 0 && set != total
	})
}

func (r *Reference) Not() Vector {
	out := make([]bool, len(r.bits))
	for i, b := range r.bits {
		out[i] = !b
	}
	return &Reference{bits: out}
}

func (r *Reference) ShiftLeft(count int, e Elasticity) (Vector, error) {
	return r.shiftFrom(0, count, true, e, false, false)
}

func (r *Reference) ShiftRight(count int, e Elasticity) (Vector, error) {
	return r.shiftFrom(0, count, false, e, false, false)
}

func (r *Reference) ShiftLeftFrom(start, count int, e Elasticity, silent bool) (Vector, error) {
	return r.shiftFrom(start, count, true, e, true, silent)
}

func (r *Reference) ShiftRightFrom(start, count int, e Elasticity, silent bool) (Vector, error) {
	return r.shiftFrom(start, count, false, e, true, silent)
}

func (r *Reference) shiftFrom(start, count int, left bool, e Elasticity, ranged, silent bool) (Vector, error) {
	noop, err := checkShift(len(r.bits), start, count, left, e, ranged, silent)
	if err != nil {
		return nil, err
	}
	if noop {
		return r.Clone(), nil
	}
	suffix := r.bits[start:]
	n := len(suffix)
	shifted := make([]bool, shiftLen(n, count, left, e))
	for i := range shifted {
		switch {
		case left && i >= count:
			shifted[i] = suffix[i-count]
		case !left && count < n-i:
			shifted[i] = suffix[i+count]
		}
	}
	if e.Has(Contraction) {
		m := len(shifted)
		for m > 0 && !shifted[m-1] {
			m--
		}
		shifted = shifted[:m]
	}
	out := make([]bool, 0, start+len(shifted))
	out = append(out, r.bits[:start]...)
	return &Reference{bits: append(out, shifted...)}, nil
}

func (r *Reference) Equal(other Reader) bool {
	return Equal(r, other)
}

func (r *Reference) Compare(other Reader) int {
	return Compare(r, other)
}

func (r *Reference) Hash() uint64 {
	return Hash(r)
}

// String renders the bits most significant first
func (r *Reference) String() string {
	var sb strings.Builder
	sb.Grow(len(r.bits))
	for i := len(r.bits) - 1; i >= 0; i-- {
		if r.bits[i] {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func (r *Reference) WriteTo(w io.Writer) (int64, error) {
	return writeVector(w, r)
}

func (r *Reference) ReadFrom(rd io.Reader) (int64, error) {
	data, n, read, err := readVector(rd)
	if err != nil {
		return read, err
	}
	r.bits = bytesToBools(data, n)
	return read, nil
}
