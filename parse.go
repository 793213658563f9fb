package bitvec

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseBits reads a string of '0' and '1' characters, most significant
// bit first, as produced by String.  Underscores may be used as
// separators.
func ParseBits(s string, rep Representation) (Vector, error) {
	s = strings.ReplaceAll(s, "_", "")
	v := make([]bool, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
		case '1':
			v[len(s)-1-i] = true
		default:
			return nil, fmt.Errorf("bit string %q: unexpected %q at %d: %w", s, s[i], i, ErrInvalidArgument)
		}
	}
	return rep.FromBools(v)
}

// ParseHex decodes hex text into bytes, taken in the given order, and
// builds a vector of 8 bits per byte.  An optional 0x prefix is ignored.
func ParseHex(s string, order Order, rep Representation) (Vector, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "0x"), "0X")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("hex %q: %s: %w", s, err, ErrInvalidArgument)
	}
	return rep.FromBytes(b, order)
}

// Dump writes one line per byte of r, least significant byte first,
// with the byte's bits rendered most significant first.
func Dump(w io.Writer, r Reader) error {
	if _, err := fmt.Fprintf(w, "\n  byte  bits      hex   (%d bits)\n", r.Len()); err != nil {
		return err
	}
	for i, b := range r.ToBytes(LSBFirst) {
		bin := strconv.FormatUint(uint64(b), 2)
		bin = strings.Repeat("0", 8-len(bin)) + bin
		if _, err := fmt.Fprintf(w, "%6d  %s  %02x\n", i, bin, b); err != nil {
			return err
		}
	}
	return nil
}
