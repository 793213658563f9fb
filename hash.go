// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package bitvec

import murmur "github.com/aviddiviner/go-murmur"

// HashFn is the signature for hash functions applied to the canonical
// byte form of a vector
type HashFn func([]byte) uint64

// murmurSeed is fixed so hashes are stable across processes
const murmurSeed = uint64(0x9747b28c)

// MurmurHash64 is the default HashFn, MurmurHash64A
func MurmurHash64(v []byte) uint64 {
	return murmur.MurmurHash64A(v, murmurSeed)
}

// fnv64a constants
const (
	offset64 = uint64(14695981039346656037)
	prime64  = uint64(1099511628211)
)

// FNVHash64 is an alternative HashFn, an inline fnv 64a
func FNVHash64(v []byte) uint64 {
	hv := offset64
	for _, c := range v {
		hv ^= uint64(c)
		hv *= prime64
	}
	return hv
}

// Hash returns the MurmurHash64 of the canonical byte form of r.  Equal
// vectors hash identically whatever their lengths or representations.
func Hash(r Reader) uint64 {
	return HashWith(r, MurmurHash64)
}

// HashWith hashes the canonical byte form of r with fn
func HashWith(r Reader, fn HashFn) uint64 {
	return fn(canonicalBytes(r))
}
