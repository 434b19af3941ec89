// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package sync

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ChainSafe/conductor/dot/state"
	"github.com/ChainSafe/conductor/dot/types"
	"github.com/ChainSafe/conductor/internal/log"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "sync"))

// StatusProvider provides the synchronization status.
type StatusProvider interface {
	Status() types.SyncStatus
}

// NetworkController starts and stops the network.
type NetworkController interface {
	StartNetwork() error
	StopNetwork() error
	NetworkRunning() bool
}

// Config is the configuration for the sync Service.
type Config struct {
	LogLvl     log.Level
	Network    Network
	BlockState BlockState
	Gate       Gate
	Runner     Runner
	// DevBlockTime is the interval blocks are authored at on
	// development chains, 0 disables block authoring.
	DevBlockTime time.Duration
}

// Service tracks the synchronization status of the node, controls
// the network and authors blocks on development chains.
type Service struct {
	cfg Config

	mutex  sync.RWMutex
	status types.SyncStatus

	authoring bool
	stopOnce  sync.Once
	stop      chan struct{}
	done      chan struct{}
}

// Start starts the sync service and returns its three facets: the
// sync status provider, the network controller and the chain notify
// sink to add to the storage engine.
func Start(cfg Config) (service *Service, network NetworkController, notify state.ChainNotifier) {
	logger.Patch(log.SetLevel(cfg.LogLvl))

	s := &Service{
		cfg:  cfg,
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	if best := cfg.BlockState.BestBlock(); best != nil {
		s.status.BestBlock = best.Number
		s.status.HighestBlock = best.Number
	}

	if cfg.DevBlockTime > 0 {
		s.authoring = true
		cfg.Runner.Go("sync", s.author)
	}

	return s, s, s
}

// Stop stops block authoring, waits for the block being authored,
// if any, and stops the network.
func (s *Service) Stop() error {
	s.stopOnce.Do(func() { close(s.stop) })
	if s.authoring {
		<-s.done
	}
	return s.StopNetwork()
}

// Status returns the synchronization status.
func (s *Service) Status() types.SyncStatus {
	s.mutex.RLock()
	status := s.status
	s.mutex.RUnlock()

	status.NumPeers = s.cfg.Network.PeerCount()
	if !s.cfg.Network.IsRunning() {
		status.State = types.SyncIdle
	}
	return status
}

// StartNetwork starts the network.
func (s *Service) StartNetwork() error {
	err := s.cfg.Network.Start()
	if err != nil {
		return fmt.Errorf("starting network: %w", err)
	}
	return nil
}

// StopNetwork stops the network.
func (s *Service) StopNetwork() error {
	err := s.cfg.Network.Stop()
	if err != nil {
		return fmt.Errorf("stopping network: %w", err)
	}

	s.mutex.Lock()
	s.status.State = types.SyncIdle
	s.mutex.Unlock()
	return nil
}

// NetworkRunning returns true if the network is running.
func (s *Service) NetworkRunning() bool {
	return s.cfg.Network.IsRunning()
}

// NewBlocks updates the synchronization status with the blocks imported.
func (s *Service) NewBlocks(imported []*types.Block) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, block := range imported {
		if block.Number > s.status.BestBlock {
			s.status.BestBlock = block.Number
		}
		if block.Number > s.status.HighestBlock {
			s.status.HighestBlock = block.Number
		}
	}

	switch {
	case s.status.HighestBlock > s.status.BestBlock+1:
		s.status.State = types.SyncBlocks
	default:
		s.status.State = types.SyncNewBlocks
	}
}

// author authors a block on top of the best block every DevBlockTime
// while the mode enables networking.
func (s *Service) author() error {
	defer close(s.done)

	ticker := time.NewTicker(s.cfg.DevBlockTime)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return nil
		case <-ticker.C:
		}

		var err error
		s.cfg.Gate.Do(func() {
			err = s.authorBlock()
		})

		switch {
		case errors.Is(err, state.ErrQueueFull):
			logger.Warnf("skipping block authoring: %s", err)
		case err != nil:
			return err
		}
	}
}

func (s *Service) authorBlock() error {
	if !s.cfg.BlockState.Mode().NetworkEnabled() {
		return nil
	}

	best := s.cfg.BlockState.BestBlock()
	block, err := types.NewBlock(best.Number+1, best.Hash, time.Now().UTC(), nil)
	if err != nil {
		return fmt.Errorf("creating block: %w", err)
	}

	err = s.cfg.BlockState.Import(block)
	if err != nil {
		return fmt.Errorf("importing authored block: %w", err)
	}

	logger.Debugf("authored block #%d (%s)", block.Number, block.Hash.Short())
	return nil
}
