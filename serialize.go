// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package bitvec

import (
	"encoding/binary"
	"fmt"
	"io"
	"unsafe"
)

// vecVersion is a version number for the serialized representation.
// Any time incompatible changes are made, it is bumped
const vecVersion = uint64(0x0001)

// vecHeader precedes the packed bytes of a serialized vector
type vecHeader struct {
	// a version number which changes as the representation changes
	Version uint64
	// the length of the vector in bits.  (Length+7)/8 bytes of LSB
	// first packed data follow the header
	Length uint64
}

var headerSize = int64(unsafe.Sizeof(vecHeader{}))

// writeVector writes the header and the canonical byte packing of r,
// which is identical for every representation
func writeVector(w io.Writer, r Reader) (n int64, err error) {
	h := vecHeader{
		Version: vecVersion,
		Length:  uint64(r.Len()),
	}
	if err = binary.Write(w, binary.LittleEndian, h); err != nil {
		return
	}
	n += headerSize
	np, err := w.Write(r.ToBytes(LSBFirst))
	n += int64(np)
	return
}

// readVector reads a vector written by writeVector, returning its
// masked packed bytes and length in bits
func readVector(r io.Reader) (data []byte, length int, n int64, err error) {
	var h vecHeader
	if err = binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, 0, 0, fmt.Errorf("reading vector header: %w", err)
	}
	n += headerSize
	if h.Version != vecVersion {
		return nil, 0, n, fmt.Errorf("incompatible format: version is %d, expected %d",
			h.Version, vecVersion)
	}
	if h.Length > maxLen {
		return nil, 0, n, fmt.Errorf("vector length %d: %w", h.Length, ErrOutOfRange)
	}
	length = int(h.Length)
	// the header is untrusted, so the buffer grows with what is read
	want := bytesNeeded(length)
	data, err = io.ReadAll(io.LimitReader(r, int64(want)))
	n += int64(len(data))
	if err != nil {
		return nil, 0, n, fmt.Errorf("short read: %d/%d: %w", len(data), want, err)
	}
	if len(data) < want {
		return nil, 0, n, fmt.Errorf("short read: %d/%d: %w", len(data), want, io.ErrUnexpectedEOF)
	}
	maskBoundary(data, length)
	return data, length, n, nil
}
