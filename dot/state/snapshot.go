// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/ChainSafe/chaindb"
	"github.com/ChainSafe/conductor/lib/common"
)

const manifestCollection = "manifests"

var (
	latestSnapshotKey = []byte("meta:snapshot")

	// ErrSnapshotsDisabled is returned when no snapshot directory is configured.
	ErrSnapshotsDisabled = errors.New("snapshots are disabled")
	// ErrNoSnapshot is returned when no snapshot was taken yet.
	ErrNoSnapshot = errors.New("no snapshot taken")
)

// Manifest describes a snapshot of the state at a block.
type Manifest struct {
	Number    uint64      `json:"number"`
	Hash      common.Hash `json:"hash"`
	Genesis   common.Hash `json:"genesis"`
	Pruning   string      `json:"pruning"`
	CreatedAt time.Time   `json:"createdAt"`
}

// TakeSnapshot writes the snapshot manifest of the block number given.
func (s *Service) TakeSnapshot(number uint64) error {
	if s.snapshots == nil {
		return ErrSnapshotsDisabled
	}

	block, err := s.BlockByNumber(number)
	if err != nil {
		return err
	}

	manifest := Manifest{
		Number:    block.Number,
		Hash:      block.Hash,
		Genesis:   s.cfg.Genesis,
		Pruning:   s.cfg.Pruning.String(),
		CreatedAt: time.Now().UTC(),
	}

	err = s.snapshots.Write(manifestCollection, strconv.FormatUint(number, 10), manifest)
	if err != nil {
		return fmt.Errorf("writing snapshot manifest: %w", err)
	}

	err = s.db.Put(latestSnapshotKey, binary.BigEndian.AppendUint64(nil, number))
	if err != nil {
		return fmt.Errorf("recording snapshot: %w", err)
	}

	logger.Infof("snapshot taken at block #%d (%s)", number, block.Hash.Short())
	return nil
}

// LatestSnapshot returns the manifest of the last snapshot taken.
func (s *Service) LatestSnapshot() (manifest Manifest, err error) {
	if s.snapshots == nil {
		return manifest, ErrSnapshotsDisabled
	}

	encoded, err := s.db.Get(latestSnapshotKey)
	if errors.Is(err, chaindb.ErrKeyNotFound) {
		return manifest, ErrNoSnapshot
	} else if err != nil {
		return manifest, err
	}

	number := binary.BigEndian.Uint64(encoded)
	err = s.snapshots.Read(manifestCollection, strconv.FormatUint(number, 10), &manifest)
	if err != nil {
		return manifest, fmt.Errorf("reading snapshot manifest: %w", err)
	}
	return manifest, nil
}
