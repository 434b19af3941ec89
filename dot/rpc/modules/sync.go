// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package modules

import (
	"net/http"

	"github.com/ChainSafe/conductor/dot/types"
)

// SyncStatusResponse holds the synchronization status
type SyncStatusResponse struct {
	State          string          `json:"state"`
	BestBlock      uint64          `json:"bestBlock"`
	HighestBlock   uint64          `json:"highestBlock"`
	NumPeers       int             `json:"numPeers"`
	Queue          types.QueueInfo `json:"queue"`
	MajorImporting bool            `json:"majorImporting"`
}

// BlockResponse holds the number and hash of a block
type BlockResponse struct {
	Number uint64 `json:"number"`
	Hash   string `json:"hash"`
}

// SyncModule is an RPC module providing the synchronization status
type SyncModule struct {
	syncAPI  SyncAPI
	stateAPI StateAPI
}

// NewSyncModule creates a new sync module.
func NewSyncModule(syncAPI SyncAPI, stateAPI StateAPI) *SyncModule {
	return &SyncModule{
		syncAPI:  syncAPI,
		stateAPI: stateAPI,
	}
}

// Status returns the synchronization status and the import queue sizes.
func (sm *SyncModule) Status(_ *http.Request, _ *EmptyRequest, res *SyncStatusResponse) error {
	status := sm.syncAPI.Status()
	queue := sm.stateAPI.QueueInfo()
	*res = SyncStatusResponse{
		State:          status.State.String(),
		BestBlock:      status.BestBlock,
		HighestBlock:   status.HighestBlock,
		NumPeers:       status.NumPeers,
		Queue:          queue,
		MajorImporting: types.IsMajorImporting(&status.State, queue),
	}
	return nil
}

// BestBlock returns the best block of the storage engine.
func (sm *SyncModule) BestBlock(_ *http.Request, _ *EmptyRequest, res *BlockResponse) error {
	block := sm.stateAPI.BestBlock()
	if block == nil {
		return ErrNoBestBlock
	}
	*res = BlockResponse{
		Number: block.Number,
		Hash:   block.Hash.String(),
	}
	return nil
}
