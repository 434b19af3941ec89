// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// HashLength is the expected length of the common.Hash type
const HashLength = 32

// EmptyHash is the zero hash.
var EmptyHash = Hash{}

var errHashNotPrefixed = errors.New("could not byteify non 0x prefixed string")

// Hash used to store a blake2b hash
type Hash [HashLength]byte

// NewHash casts a byte slice to a Hash
// if the input is longer than 32 bytes, it takes the first 32 bytes
func NewHash(in []byte) (res Hash) {
	copy(res[:], in)
	return res
}

// ToBytes turns a hash to a byte slice
func (h Hash) ToBytes() []byte {
	b := [HashLength]byte(h)
	return b[:]
}

// IsEmpty returns true if the hash is empty, false otherwise.
func (h Hash) IsEmpty() bool {
	return h == EmptyHash
}

// String returns the hex string for the hash
func (h Hash) String() string {
	return fmt.Sprintf("0x%x", h[:])
}

// Short returns the first 4 bytes and the last 4 bytes of the hex string for the hash
func (h Hash) Short() string {
	const nBytes = 4
	return fmt.Sprintf("0x%x...%x", h[:nBytes], h[len(h)-nBytes:])
}

// UnmarshalJSON converts hex data to hash
func (h *Hash) UnmarshalJSON(data []byte) error {
	var s string
	err := json.Unmarshal(data, &s)
	if err != nil {
		return err
	}

	*h, err = HexToHash(s)
	return err
}

// MarshalJSON converts hash to hex data
func (h Hash) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

// HexToHash turns a 0x prefixed hex string into type Hash
func HexToHash(in string) (Hash, error) {
	if !strings.HasPrefix(in, "0x") {
		return Hash{}, fmt.Errorf("%w: %s", errHashNotPrefixed, in)
	}

	out, err := hex.DecodeString(in[2:])
	if err != nil {
		return Hash{}, err
	}
	return NewHash(out), nil
}
