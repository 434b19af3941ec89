// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dev

import (
	_ "embed"
)

// ID is the identifier of the built-in development chain.
const ID = "dev"

// Spec is the JSON chain spec of the built-in development chain.
//
//go:embed genesis.json
var Spec []byte
