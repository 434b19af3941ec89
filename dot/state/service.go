// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/ChainSafe/chaindb"
	"github.com/ChainSafe/conductor/dot/types"
	"github.com/ChainSafe/conductor/internal/log"
	"github.com/ChainSafe/conductor/lib/common"
	"github.com/ChainSafe/conductor/lib/utils"
	scribble "github.com/nanobox-io/golang-scribble"
)

var logger = log.NewFromGlobal(
	log.AddContext("pkg", "state"),
)

const defaultQueueSize = 1024

var (
	// ErrNotStarted is returned when using the service before Start.
	ErrNotStarted = errors.New("state service not started")
	// ErrQueueFull is returned when the import queue is full.
	ErrQueueFull = errors.New("import queue is full")
	// ErrGenesisMismatch is returned when the database was created
	// for another genesis.
	ErrGenesisMismatch = errors.New("database genesis mismatch")
)

// ChainNotifier is notified of the blocks imported.
type ChainNotifier interface {
	NewBlocks(imported []*types.Block)
}

// ModeObserver is notified when the operating mode changes.
type ModeObserver interface {
	ModeChanged(mode types.Mode)
}

// Config is the configuration of the state service.
type Config struct {
	// Path is the database directory.
	Path string
	// SnapshotPath is the directory snapshot manifests are written to.
	SnapshotPath string
	InMemory     bool
	LogLevel     log.Level
	Genesis      common.Hash
	Pruning      types.Algorithm
	Tracing      bool
	FatDB        bool
	Mode         types.Mode
	QueueSize    int
}

// Service is the storage engine of the node. It persists imported
// blocks, runs the import queue and holds the operating mode.
type Service struct {
	cfg Config

	db        *chaindb.BadgerDB
	snapshots *scribble.Driver

	queue     chan *types.Block
	verifying atomic.Int32
	stop      chan struct{}
	done      chan struct{}
	started   atomic.Bool

	failureMutex   sync.Mutex
	failureHandler func(error)

	mutex        sync.RWMutex
	best         *types.Block
	mode         types.Mode
	modeObserver ModeObserver
	notifiers    []ChainNotifier
}

// NewService creates a new state service.
func NewService(cfg Config) *Service {
	logger.Patch(log.SetLevel(cfg.LogLevel))

	if cfg.QueueSize <= 0 {
		cfg.QueueSize = defaultQueueSize
	}

	return &Service{
		cfg:   cfg,
		queue: make(chan *types.Block, cfg.QueueSize),
		mode:  cfg.Mode,
	}
}

// SetFailureHandler sets the function called when the importer fails.
func (s *Service) SetFailureHandler(handler func(err error)) {
	s.failureMutex.Lock()
	defer s.failureMutex.Unlock()
	s.failureHandler = handler
}

func (s *Service) fail(err error) {
	s.failureMutex.Lock()
	handler := s.failureHandler
	s.failureMutex.Unlock()

	if handler == nil {
		logger.Criticalf("importer failed: %s", err)
		return
	}
	handler(err)
}

// Start opens the database and starts the importer.
func (s *Service) Start() (err error) {
	s.db, err = utils.LoadChainDB(s.cfg.Path, s.cfg.InMemory)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	err = s.initialise()
	if err != nil {
		_ = s.db.Close()
		return err
	}

	if s.cfg.SnapshotPath != "" {
		s.snapshots, err = scribble.New(s.cfg.SnapshotPath, nil)
		if err != nil {
			_ = s.db.Close()
			return fmt.Errorf("opening snapshot directory: %w", err)
		}
	}

	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	go s.importLoop()
	s.started.Store(true)

	best := s.BestBlock()
	logger.Infof("state database opened at %s with best block #%d (%s)",
		s.cfg.Path, best.Number, best.Hash.Short())
	return nil
}

// Stop stops the importer and closes the database.
func (s *Service) Stop() error {
	if !s.started.CompareAndSwap(true, false) {
		return nil
	}

	close(s.stop)
	<-s.done

	return s.db.Close()
}

// Import queues a block for import.
func (s *Service) Import(block *types.Block) error {
	if !s.started.Load() {
		return ErrNotStarted
	}

	select {
	case s.queue <- block:
		return nil
	default:
		return fmt.Errorf("%w: %d blocks queued", ErrQueueFull, len(s.queue))
	}
}

// QueueInfo returns the sizes of the import queue.
func (s *Service) QueueInfo() types.QueueInfo {
	return types.QueueInfo{
		Unverified: len(s.queue),
		Verifying:  int(s.verifying.Load()),
	}
}

// BestBlock returns the best block imported.
func (s *Service) BestBlock() *types.Block {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.best
}

// GenesisHash returns the genesis fingerprint of the database.
func (s *Service) GenesisHash() common.Hash {
	return s.cfg.Genesis
}

// Pruning returns the pruning algorithm of the database.
func (s *Service) Pruning() types.Algorithm {
	return s.cfg.Pruning
}

// AddNotify adds a notifier called on each import. Notifiers are
// called in the order they were added and are never removed.
func (s *Service) AddNotify(notifier ChainNotifier) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.notifiers = append(s.notifiers, notifier)
}

// Mode returns the operating mode.
func (s *Service) Mode() types.Mode {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.mode
}

// SetMode sets the operating mode and notifies the mode observer.
func (s *Service) SetMode(mode types.Mode) {
	s.mutex.Lock()
	s.mode = mode
	observer := s.modeObserver
	s.mutex.Unlock()

	logger.Infof("operating mode changed to %s", mode)
	if observer != nil {
		observer.ModeChanged(mode)
	}
}

// OnModeChange sets the observer notified when the mode changes.
func (s *Service) OnModeChange(observer ModeObserver) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.modeObserver = observer
}
