// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package sync

import (
	"github.com/ChainSafe/conductor/dot/types"
)

// BlockState is the block state the sync service imports blocks into.
type BlockState interface {
	BestBlock() *types.Block
	Import(block *types.Block) error
	Mode() types.Mode
}

// Network is the network the sync service controls.
type Network interface {
	Start() error
	Stop() error
	IsRunning() bool
	PeerCount() int
}

// Gate runs periodic work while the node accepts it.
type Gate interface {
	Do(fn func()) (ran bool)
}

// Runner runs a long running function, reporting its failure.
type Runner interface {
	Go(source string, fn func() error)
}
