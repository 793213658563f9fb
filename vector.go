package bitvec

import (
	"fmt"
	"io"
)

// AllocateFn allocates a Vector of n bits, all cleared
type AllocateFn func(n int) Vector

// Vector is a resizable sequence of bits, bit 0 being the least
// significant.  Operators that produce a Vector never modify their
// receiver or operands; the result has the receiver's representation.
// Set, SetElastic, SetLen, Add, Remove, Clear and ReadFrom mutate the
// receiver in place, and leave it untouched when they fail.
type Vector interface {
	Reader
	// String renders the bits most significant first
	fmt.Stringer

	// Set bit ix to val
	Set(ix int, val bool) error
	// SetElastic sets bit ix, growing the vector to ix+1 bits first
	// when ix is beyond the end and e allows Expansion
	SetElastic(ix int, val bool, e Elasticity) error
	// SetLen zero extends or truncates the vector to n bits
	SetLen(n int) error
	// Add appends a bit
	Add(val bool)
	// Remove deletes the first bit equal to val, moving every following
	// bit down one position.  It reports whether a bit was removed.
	Remove(val bool) bool
	// Clear truncates the vector to zero length
	Clear()
	// Clone returns an independent copy
	Clone() Vector

	And(other Reader, more ...Reader) Vector
	Or(other Reader, more ...Reader) Vector
	Xor(other Reader, more ...Reader) Vector
	Not() Vector

	ShiftLeft(count int, e Elasticity) (Vector, error)
	ShiftRight(count int, e Elasticity) (Vector, error)
	// ShiftLeftFrom shifts only the bits at and above start.  When start
	// is outside [0, Len()) the call fails with ErrOutOfRange, unless
	// silent is set in which case an unchanged clone is returned.
	ShiftLeftFrom(start, count int, e Elasticity, silent bool) (Vector, error)
	ShiftRightFrom(start, count int, e Elasticity, silent bool) (Vector, error)

	Equal(other Reader) bool
	Compare(other Reader) int
	Hash() uint64

	// vectors can be serialized
	io.WriterTo
	io.ReaderFrom
}

var _ Vector = (*Packed)(nil)
var _ Vector = (*Reference)(nil)
