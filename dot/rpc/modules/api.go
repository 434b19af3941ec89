// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package modules

import (
	"github.com/ChainSafe/conductor/dot/snapshot"
	"github.com/ChainSafe/conductor/dot/state"
	"github.com/ChainSafe/conductor/dot/types"
	"github.com/ChainSafe/conductor/lib/common"
	"github.com/ChainSafe/conductor/lib/keystore"
)

// StateAPI is the interface for the storage engine.
type StateAPI interface {
	BestBlock() *types.Block
	QueueInfo() types.QueueInfo
	Mode() types.Mode
	SetMode(mode types.Mode)
	GenesisHash() common.Hash
	Pruning() types.Algorithm
	LatestSnapshot() (state.Manifest, error)
}

// TasksAPI is the interface for the periodic work of the node.
type TasksAPI interface {
	Snapshots() (stats snapshot.Stats, enabled bool)
	Accepting() bool
}

// SyncAPI is the interface for the sync status provider.
type SyncAPI interface {
	Status() types.SyncStatus
}

// NetworkAPI is the interface to control the network.
type NetworkAPI interface {
	StartNetwork() error
	StopNetwork() error
	NetworkRunning() bool
}

// PeersAPI is the interface for the network peers.
type PeersAPI interface {
	PeerCount() int
	Addresses() []string
}

// AccountsAPI is the interface for the credential store.
type AccountsAPI interface {
	Accounts() []keystore.Account
	IsUnlocked(address string) bool
	Sign(address string, msg []byte) ([]byte, error)
}

// LogsAPI is the interface for the recent log lines.
type LogsAPI interface {
	Lines() []string
}
