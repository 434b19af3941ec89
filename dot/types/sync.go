// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

// SyncState is the state of the synchronization engine.
type SyncState uint8

const (
	// SyncIdle is the state when the node is up to date.
	SyncIdle SyncState = iota
	// SyncWaiting is the state while looking for peers.
	SyncWaiting
	// SyncBlocks is the state while downloading old blocks.
	SyncBlocks
	// SyncNewBlocks is the state while following the chain head.
	SyncNewBlocks
	// SyncSnapshotData is the state while downloading snapshot chunks.
	SyncSnapshotData
)

func (s SyncState) String() string {
	switch s {
	case SyncIdle:
		return "idle"
	case SyncWaiting:
		return "waiting"
	case SyncBlocks:
		return "blocks"
	case SyncNewBlocks:
		return "new blocks"
	case SyncSnapshotData:
		return "snapshot data"
	default:
		return "unknown"
	}
}

// SyncStatus is a snapshot of the synchronization engine status.
type SyncStatus struct {
	State        SyncState `json:"state"`
	BestBlock    uint64    `json:"bestBlock"`
	HighestBlock uint64    `json:"highestBlock"`
	NumPeers     int       `json:"numPeers"`
}

// QueueInfo contains the block import queue sizes.
type QueueInfo struct {
	Unverified int `json:"unverified"`
	Verifying  int `json:"verifying"`
	Verified   int `json:"verified"`
}

// Total returns the number of blocks in the queue.
func (q QueueInfo) Total() int {
	return q.Unverified + q.Verifying + q.Verified
}

const majorImportQueueThreshold = 3

// IsMajorImporting returns true if the node is catching up with
// the chain, either because the sync state given is neither idle
// nor following new blocks, or because the import queue is large.
// A nil sync state means the sync state is unknown.
func IsMajorImporting(state *SyncState, queue QueueInfo) bool {
	syncing := state != nil && *state != SyncIdle && *state != SyncNewBlocks
	verifying := queue.Unverified+queue.Verified > majorImportQueueThreshold
	return syncing || verifying
}
