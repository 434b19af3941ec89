// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package modules

import "errors"

var (
	ErrNoBestBlock     = errors.New("no best block available")
	ErrInvalidHexInput = errors.New("input is not valid hexadecimal")
)
