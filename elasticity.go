package bitvec

import (
	"fmt"
	"strings"
)

// Elasticity controls whether a length changing operation may grow
// and/or shrink a vector.
type Elasticity uint8

const (
	// None preserves length strictly
	None Elasticity = 0
	// Expansion allows a left shift or elastic set to grow the vector
	Expansion Elasticity = 1 << 0
	// Contraction allows an operation to drop trailing cleared bits
	Contraction Elasticity = 1 << 1
	// Both allows either
	Both = Expansion | Contraction
)

// Has reports whether all of the behaviors in o are enabled in e.
func (e Elasticity) Has(o Elasticity) bool {
	return e&o == o
}

func (e Elasticity) String() string {
	switch e {
	case None:
		return "none"
	case Expansion:
		return "expansion"
	case Contraction:
		return "contraction"
	case Both:
		return "both"
	}
	return fmt.Sprintf("Elasticity(%d)", uint8(e))
}

// ParseElasticity is the inverse of Elasticity.String
func ParseElasticity(s string) (Elasticity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return None, nil
	case "expansion", "expand":
		return Expansion, nil
	case "contraction", "contract":
		return Contraction, nil
	case "both":
		return Both, nil
	}
	return None, fmt.Errorf("unknown elasticity %q: %w", s, ErrInvalidArgument)
}
