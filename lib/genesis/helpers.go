// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package genesis

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ChainSafe/conductor/chain/dev"
)

var builtin = map[string][]byte{
	dev.ID: dev.Spec,
}

// Load returns the chain spec of the built-in chain with the given
// name, or parses the chain spec file at the given path otherwise.
func Load(chain string) (*Genesis, error) {
	if spec, ok := builtin[chain]; ok {
		return NewGenesisFromBytes(spec)
	}
	return NewGenesisFromJSON(chain)
}

// NewGenesisFromJSON parses a JSON formatted chain spec file
func NewGenesisFromJSON(file string) (*Genesis, error) {
	fp, err := filepath.Abs(file)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Clean(fp))
	if err != nil {
		return nil, fmt.Errorf("reading chain spec: %w", err)
	}

	return NewGenesisFromBytes(data)
}

// NewGenesisFromBytes parses a JSON formatted chain spec
func NewGenesisFromBytes(data []byte) (*Genesis, error) {
	g := new(Genesis)
	err := json.Unmarshal(data, g)
	if err != nil {
		return nil, fmt.Errorf("decoding chain spec: %w", err)
	}

	err = g.Validate()
	if err != nil {
		return nil, err
	}

	return g, nil
}
