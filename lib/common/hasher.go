// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"golang.org/x/crypto/blake2b"
)

// Blake2bHash returns the 256-bit blake2b hash of the input data
func Blake2bHash(in []byte) (Hash, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return Hash{}, err
	}

	_, err = h.Write(in)
	if err != nil {
		return Hash{}, err
	}

	return NewHash(h.Sum(nil)), nil
}
