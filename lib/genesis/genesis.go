// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package genesis

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ChainSafe/conductor/lib/common"
)

var (
	// ErrChainSpecNotValid is returned for a chain spec missing required fields.
	ErrChainSpecNotValid = errors.New("chain spec is not valid")
)

// Genesis stores the data parsed from the chain spec file
type Genesis struct {
	Name       string                 `json:"name"`
	ID         string                 `json:"id"`
	ChainType  string                 `json:"chainType"`
	Bootnodes  []string               `json:"bootNodes"`
	NetworkID  uint64                 `json:"networkId"`
	ProtocolID string                 `json:"protocolId"`
	Genesis    Fields                 `json:"genesis"`
	Properties map[string]interface{} `json:"properties"`
}

// Fields stores the genesis state of the chain. Its content
// determines the genesis fingerprint.
type Fields struct {
	Timestamp uint64            `json:"timestamp"`
	ExtraData string            `json:"extraData"`
	Accounts  map[string]string `json:"accounts,omitempty"`
}

// Validate checks the chain spec has the fields required to run a node.
func (g *Genesis) Validate() error {
	switch {
	case g.ID == "":
		return fmt.Errorf("%w: empty id", ErrChainSpecNotValid)
	case g.Name == "":
		return fmt.Errorf("%w: empty name", ErrChainSpecNotValid)
	}
	return nil
}

// Hash returns the genesis fingerprint, the blake2b hash of the
// canonical JSON encoding of the genesis fields.
func (g *Genesis) Hash() (common.Hash, error) {
	encoded, err := json.Marshal(g.Genesis)
	if err != nil {
		return common.Hash{}, fmt.Errorf("encoding genesis fields: %w", err)
	}
	return common.Blake2bHash(encoded)
}

// DataDir returns the name of the directory holding the chain data.
func (g *Genesis) DataDir() string {
	return g.ID
}
