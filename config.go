package bitvec

import (
	"fmt"
	"io"
	"strings"
)

// Representation selects the storage strategy backing a Vector
type Representation int

const (
	// PackedRepresentation stores 8 bits per byte
	PackedRepresentation Representation = iota
	// ReferenceRepresentation stores one bool per bit
	ReferenceRepresentation
)

func (r Representation) String() string {
	switch r {
	case PackedRepresentation:
		return "packed"
	case ReferenceRepresentation:
		return "reference"
	}
	return fmt.Sprintf("Representation(%d)", int(r))
}

// ParseRepresentation is the inverse of Representation.String
func ParseRepresentation(s string) (Representation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "packed", "":
		return PackedRepresentation, nil
	case "reference", "ref":
		return ReferenceRepresentation, nil
	}
	return 0, fmt.Errorf("unknown representation %q: %w", s, ErrInvalidArgument)
}

// Allocate returns the AllocateFn for this representation
func (r Representation) Allocate() AllocateFn {
	if r == ReferenceRepresentation {
		return ReferenceAllocate
	}
	return PackedAllocate
}

// FromBools builds a vector of this representation from v
func (r Representation) FromBools(v []bool) (Vector, error) {
	if r == ReferenceRepresentation {
		return ReferenceFromBools(v)
	}
	return PackedFromBools(v)
}

// FromBytes builds a vector of this representation from b
func (r Representation) FromBytes(b []byte, order Order) (Vector, error) {
	if r == ReferenceRepresentation {
		return ReferenceFromBytes(b, order)
	}
	return PackedFromBytes(b, order)
}

// FromWords builds a vector of this representation from w
func (r Representation) FromWords(w []uint32, order Order) (Vector, error) {
	if r == ReferenceRepresentation {
		return ReferenceFromWords(w, order)
	}
	return PackedFromWords(w, order)
}

// BytesRequired reports the approximate amount of memory needed to hold
// the bits of a vector of n bits.
func (r Representation) BytesRequired(n int) uint {
	if r == ReferenceRepresentation {
		return uint(n)
	}
	return uint(bytesNeeded(n))
}

// Config controls how vectors are built from external data and hashed
type Config struct {
	Representation Representation
	// Order of groups in byte and word sequences
	Order Order
	// HashFn is applied to the canonical byte form
	HashFn HashFn
}

// DefaultConfig builds packed vectors from LSB first input and hashes
// them with MurmurHash64
var DefaultConfig = Config{
	Representation: PackedRepresentation,
	Order:          LSBFirst,
	HashFn:         MurmurHash64,
}

func (c Config) withDefaults() Config {
	if c.HashFn == nil {
		c.HashFn = DefaultConfig.HashFn
	}
	return c
}

// New allocates a vector of n cleared bits
func (c Config) New(n int) (Vector, error) {
	if n < 0 {
		return nil, fmt.Errorf("length %d: %w", n, ErrOutOfRange)
	}
	return c.Representation.Allocate()(n), nil
}

// FromBytes builds a vector from b in the configured order
func (c Config) FromBytes(b []byte) (Vector, error) {
	return c.Representation.FromBytes(b, c.Order)
}

// FromWords builds a vector from w in the configured order
func (c Config) FromWords(w []uint32) (Vector, error) {
	return c.Representation.FromWords(w, c.Order)
}

// Hash hashes r with the configured HashFn
func (c Config) Hash(r Reader) uint64 {
	return HashWith(r, c.withDefaults().HashFn)
}

// ExplainIndent writes an indented sizing summary for a vector of n bits
func (c Config) ExplainIndent(w io.Writer, indent string, n int) {
	fmt.Fprintf(w, "%s%d bits, %d bytes, %d words\n", indent, n, bytesNeeded(n), wordsNeeded(n))
	for _, r := range []Representation{PackedRepresentation, ReferenceRepresentation} {
		mark := " "
		if r == c.Representation {
			mark = "*"
		}
		fmt.Fprintf(w, "%s%s %-9s %s storage\n", indent, mark, r, humanBytes(r.BytesRequired(n)))
	}
}

// Explain writes a sizing summary for a vector of n bits
func (c Config) Explain(w io.Writer, n int) {
	c.ExplainIndent(w, "", n)
}

func humanBytes(bytes uint) string {
	v := float64(bytes)
	suffix := "bytes"
	if v > 1024 {
		v /= 1024.
		suffix = "KB"
		if v > 1024. {
			suffix = "MB"
			v /= 1024.0
			if v > 1024. {
				suffix = "GB"
				v /= 1024.
			}
		}
	}
	if v < 10 {
		return fmt.Sprintf("%0.2f %s", v, suffix)
	} else if v < 100 {
		return fmt.Sprintf("%0.1f %s", v, suffix)
	} else {
		return fmt.Sprintf("%0.0f %s", v, suffix)
	}
}
