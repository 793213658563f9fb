package bitvec

// Reader is a read-only view of a bit vector.  It is the contract code
// outside this package relies on when it only needs the canonical byte
// or word form, and it is implemented by both Packed and Reference.
type Reader interface {
	// Len is the number of addressable bits
	Len() int
	// Get returns the bit at ix, failing with ErrOutOfRange when ix is
	// outside [0, Len())
	Get(ix int) (bool, error)
	// ToBytes packs the vector into (Len()+7)/8 bytes
	ToBytes(order Order) []byte
	// ToWords packs the vector into (Len()+31)/32 words
	ToWords(order Order) []uint32
}

var _ Reader = (*Packed)(nil)
var _ Reader = (*Reference)(nil)
