// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"errors"
	"fmt"
)

// ErrPruningNotValid is returned when parsing an unknown pruning algorithm.
var ErrPruningNotValid = errors.New("pruning algorithm is not valid")

// Algorithm is the state database pruning algorithm.
type Algorithm uint8

const (
	// Archive keeps all state.
	Archive Algorithm = iota
	// Fast keeps an overlay of recent state.
	Fast
	// Light merges early state into the journal.
	Light
	// Basic reference counts state nodes.
	Basic
)

func (a Algorithm) String() string {
	switch a {
	case Archive:
		return "archive"
	case Fast:
		return "fast"
	case Light:
		return "light"
	case Basic:
		return "basic"
	default:
		return "unknown"
	}
}

// IsStable returns false for experimental algorithms.
func (a Algorithm) IsStable() bool {
	return a == Archive || a == Fast
}

// ParseAlgorithm parses a pruning algorithm name.
func ParseAlgorithm(s string) (algorithm Algorithm, err error) {
	switch s {
	case "archive":
		return Archive, nil
	case "fast":
		return Fast, nil
	case "light":
		return Light, nil
	case "basic":
		return Basic, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrPruningNotValid, s)
	}
}

// Pruning is the pruning algorithm requested by the operator,
// where Auto defers to the algorithm used by the previous run.
type Pruning struct {
	Auto      bool
	Algorithm Algorithm
}

// ParsePruning parses a pruning setting which is either "auto"
// or an algorithm name.
func ParsePruning(s string) (pruning Pruning, err error) {
	if s == "auto" {
		return Pruning{Auto: true}, nil
	}
	algorithm, err := ParseAlgorithm(s)
	if err != nil {
		return pruning, err
	}
	return Pruning{Algorithm: algorithm}, nil
}

// Resolve returns the algorithm to use given the algorithm stored.
func (p Pruning) Resolve(stored Algorithm) Algorithm {
	if p.Auto {
		return stored
	}
	return p.Algorithm
}
