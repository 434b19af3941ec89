// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"encoding/binary"
	"time"

	"github.com/ChainSafe/conductor/lib/common"
)

// Block is an imported block.
type Block struct {
	Number     uint64      `json:"number"`
	Hash       common.Hash `json:"hash"`
	ParentHash common.Hash `json:"parentHash"`
	Timestamp  time.Time   `json:"timestamp"`
	Payload    []byte      `json:"payload,omitempty"`
}

// NewBlock creates a block on top of the parent hash given,
// computing its hash from its content.
func NewBlock(number uint64, parent common.Hash, timestamp time.Time, payload []byte) (*Block, error) {
	encoded := make([]byte, 0, 8+common.HashLength+8+len(payload))
	encoded = binary.LittleEndian.AppendUint64(encoded, number)
	encoded = append(encoded, parent[:]...)
	encoded = binary.LittleEndian.AppendUint64(encoded, uint64(timestamp.Unix()))
	encoded = append(encoded, payload...)

	hash, err := common.Blake2bHash(encoded)
	if err != nil {
		return nil, err
	}

	return &Block{
		Number:     number,
		Hash:       hash,
		ParentHash: parent,
		Timestamp:  timestamp,
		Payload:    payload,
	}, nil
}
