// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/conductor/dot/types"
)

var errBlockNotChild = errors.New("block is not a child of the best block")

// importLoop drains the import queue until the service is stopped.
// A database failure stops the loop and is reported to the failure
// handler.
func (s *Service) importLoop() {
	defer close(s.done)

	for {
		select {
		case <-s.stop:
			return
		case block := <-s.queue:
			s.verifying.Add(1)
			err := s.importBlock(block)
			s.verifying.Add(-1)

			switch {
			case errors.Is(err, errBlockNotChild):
				logger.Warnf("rejected block #%d (%s): %s", block.Number, block.Hash.Short(), err)
			case err != nil:
				s.fail(fmt.Errorf("importing block #%d: %w", block.Number, err))
				return
			}
		}
	}
}

func (s *Service) importBlock(block *types.Block) error {
	best := s.BestBlock()
	if block.Number != best.Number+1 || block.ParentHash != best.Hash {
		return fmt.Errorf("%w: block #%d has parent %s, best is #%d %s",
			errBlockNotChild, block.Number, block.ParentHash.Short(), best.Number, best.Hash.Short())
	}

	err := s.writeBlocks([]*types.Block{block})
	if err != nil {
		return err
	}

	s.mutex.Lock()
	s.best = block
	notifiers := make([]ChainNotifier, len(s.notifiers))
	copy(notifiers, s.notifiers)
	s.mutex.Unlock()

	imported := []*types.Block{block}
	for _, notifier := range notifiers {
		notifier.NewBlocks(imported)
	}
	return nil
}
