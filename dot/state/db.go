// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ChainSafe/chaindb"
	"github.com/ChainSafe/conductor/dot/types"
	"github.com/ChainSafe/conductor/lib/common"
)

var (
	bestBlockKey   = []byte("meta:best")
	genesisHashKey = []byte("meta:genesis")
	settingsKey    = []byte("meta:settings")
)

// ErrBlockNotFound is returned for a block number not imported.
var ErrBlockNotFound = errors.New("block not found")

type settings struct {
	Pruning string `json:"pruning"`
	Tracing bool   `json:"tracing"`
	FatDB   bool   `json:"fatDb"`
}

func blockKey(number uint64) []byte {
	return binary.BigEndian.AppendUint64([]byte("block:"), number)
}

// initialise checks the database genesis, writing the genesis
// block on first use, and loads the best block.
func (s *Service) initialise() error {
	stored, err := s.db.Get(genesisHashKey)
	switch {
	case errors.Is(err, chaindb.ErrKeyNotFound):
		err = s.writeGenesis()
		if err != nil {
			return fmt.Errorf("writing genesis: %w", err)
		}
	case err != nil:
		return fmt.Errorf("reading genesis hash: %w", err)
	case common.NewHash(stored) != s.cfg.Genesis:
		return fmt.Errorf("%w: database has %s, chain has %s",
			ErrGenesisMismatch, common.NewHash(stored), s.cfg.Genesis)
	}

	encodedSettings, err := json.Marshal(settings{
		Pruning: s.cfg.Pruning.String(),
		Tracing: s.cfg.Tracing,
		FatDB:   s.cfg.FatDB,
	})
	if err != nil {
		return err
	}
	err = s.db.Put(settingsKey, encodedSettings)
	if err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}

	bestNumber, err := s.db.Get(bestBlockKey)
	if err != nil {
		return fmt.Errorf("reading best block number: %w", err)
	}

	best, err := s.BlockByNumber(binary.BigEndian.Uint64(bestNumber))
	if err != nil {
		return fmt.Errorf("reading best block: %w", err)
	}

	s.mutex.Lock()
	s.best = best
	s.mutex.Unlock()
	return nil
}

func (s *Service) writeGenesis() error {
	genesis := &types.Block{
		Hash:      s.cfg.Genesis,
		Timestamp: time.Unix(0, 0).UTC(),
	}

	err := s.writeBlocks([]*types.Block{genesis})
	if err != nil {
		return err
	}
	return s.db.Put(genesisHashKey, s.cfg.Genesis.ToBytes())
}

// writeBlocks writes the blocks given and sets the last one as best block.
func (s *Service) writeBlocks(blocks []*types.Block) error {
	batch := s.db.NewBatch()
	for _, block := range blocks {
		encoded, err := json.Marshal(block)
		if err != nil {
			return fmt.Errorf("encoding block #%d: %w", block.Number, err)
		}

		err = batch.Put(blockKey(block.Number), encoded)
		if err != nil {
			return err
		}
	}

	last := blocks[len(blocks)-1]
	err := batch.Put(bestBlockKey, binary.BigEndian.AppendUint64(nil, last.Number))
	if err != nil {
		return err
	}

	return batch.Flush()
}

// BlockByNumber returns the block imported with the number given.
func (s *Service) BlockByNumber(number uint64) (*types.Block, error) {
	encoded, err := s.db.Get(blockKey(number))
	if errors.Is(err, chaindb.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: #%d", ErrBlockNotFound, number)
	} else if err != nil {
		return nil, err
	}

	block := new(types.Block)
	err = json.Unmarshal(encoded, block)
	if err != nil {
		return nil, fmt.Errorf("decoding block #%d: %w", number, err)
	}
	return block, nil
}
