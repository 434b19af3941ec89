// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package snapshot

import (
	"github.com/ChainSafe/conductor/dot/types"
)

// SyncStatusProvider provides the synchronization status.
type SyncStatusProvider interface {
	Status() types.SyncStatus
}

// QueueInfoProvider provides the import queue sizes.
type QueueInfoProvider interface {
	QueueInfo() types.QueueInfo
}

// StateOracle is the Oracle of a running node.
type StateOracle struct {
	Sync  SyncStatusProvider
	Queue QueueInfoProvider
}

// IsMajorImporting returns true if the node is catching up with the chain.
func (o *StateOracle) IsMajorImporting() bool {
	status := o.Sync.Status()
	return types.IsMajorImporting(&status.State, o.Queue.QueueInfo())
}
