// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package bitvec

import (
	"bytes"
	"fmt"
	"math/bits"
)

// Equal reports whether a and b hold the same bits once the shorter is
// zero extended to the length of the longer.
func Equal(a, b Reader) bool {
	return bytes.Equal(canonicalBytes(a), canonicalBytes(b))
}

// Compare orders a and b as unsigned magnitudes, the highest index being
// the most significant bit.  It returns -1, 0 or +1.
func Compare(a, b Reader) int {
	ca, cb := canonicalBytes(a), canonicalBytes(b)
	// no trailing zero bytes, so the longer one has a higher set bit
	if len(ca) != len(cb) {
		if len(ca) > len(cb) {
			return 1
		}
		return -1
	}
	for i := len(ca) - 1; i >= 0; i-- {
		switch {
		case ca[i] > cb[i]:
			return 1
		case ca[i] < cb[i]:
			return -1
		}
	}
	return 0
}

// SignificantLen is the index of the highest set bit plus one, or zero
// when no bit is set.
func SignificantLen(r Reader) int {
	return significantLen(r.ToBytes(LSBFirst))
}

// OnesCount returns the number of set bits
func OnesCount(r Reader) (count int) {
	for _, b := range r.ToBytes(LSBFirst) {
		count += bits.OnesCount8(b)
	}
	return
}

func indexError(ix, n int) error {
	return fmt.Errorf("index %d outside [0, %d): %w", ix, n, ErrOutOfRange)
}

// checkShift validates shift arguments.  noop is set when the result
// is an unchanged copy of the source.
func checkShift(n, start, count int, left bool, e Elasticity, ranged, silent bool) (noop bool, err error) {
	if count < 0 {
		return false, fmt.Errorf("shift count %d: %w", count, ErrInvalidArgument)
	}
	if ranged && (start < 0 || start >= n) {
		if silent {
			return true, nil
		}
		return false, fmt.Errorf("shift start: %w", indexError(start, n))
	}
	if left && e.Has(Expansion) && count > maxLen-n {
		return false, fmt.Errorf("shifting %d bits by %d: %w", n, count, ErrOutOfRange)
	}
	return count == 0, nil
}

// shiftLen is the length of an n bit vector shifted by count positions,
// before any trailing cleared bits are trimmed for Contraction.
func shiftLen(n, count int, left bool, e Elasticity) int {
	switch {
	case left && e.Has(Expansion):
		return n + count
	case !left && e.Has(Contraction):
		return max(0, n-count)
	}
	return n
}
