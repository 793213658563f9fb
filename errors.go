// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package bitvec

import "errors"

var (
	// ErrInvalidArgument is returned for absent source sequences, negative
	// shift counts and malformed textual input.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange is returned for an index or length outside of the
	// range a vector can address.
	ErrOutOfRange = errors.New("out of range")
)
