// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package informant reports block imports and the node status in the logs.
package informant

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/ChainSafe/conductor/dot/types"
	"github.com/ChainSafe/conductor/internal/log"
	"github.com/fatih/color"
)

// DefaultInterval is the interval between two status reports.
const DefaultInterval = 5 * time.Second

var (
	bold   = color.New(color.Bold)
	white  = color.New(color.FgHiWhite, color.Bold)
	yellow = color.New(color.FgYellow)
)

// Logger is the logger the informant reports to.
type Logger interface {
	Infof(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// StatusProvider provides the synchronization status.
type StatusProvider interface {
	Status() types.SyncStatus
}

// QueueInfoProvider provides the import queue sizes.
type QueueInfoProvider interface {
	QueueInfo() types.QueueInfo
}

// Gate runs periodic work while the node accepts it.
type Gate interface {
	Do(fn func()) (ran bool)
}

// Config is the informant configuration.
type Config struct {
	Logger   Logger
	Sync     StatusProvider
	Queue    QueueInfoProvider
	Gate     Gate
	Interval time.Duration
}

// Informant logs the blocks imported and periodically logs the
// synchronization status.
type Informant struct {
	logger   Logger
	sync     StatusProvider
	queue    QueueInfoProvider
	gate     Gate
	interval time.Duration

	imported atomic.Uint64
	ticks    atomic.Uint64

	started  atomic.Bool
	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// New creates an informant.
func New(cfg Config) *Informant {
	if cfg.Logger == nil {
		cfg.Logger = log.NewFromGlobal(log.AddContext("pkg", "informant"))
	}
	if cfg.Interval == 0 {
		cfg.Interval = DefaultInterval
	}

	return &Informant{
		logger:   cfg.Logger,
		sync:     cfg.Sync,
		queue:    cfg.Queue,
		gate:     cfg.Gate,
		interval: cfg.Interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// NewBlocks logs the blocks imported. Individual imports are not
// logged while the node is catching up with the chain.
func (i *Informant) NewBlocks(imported []*types.Block) {
	i.imported.Add(uint64(len(imported)))

	if i.majorImporting() {
		return
	}

	for _, block := range imported {
		i.logger.Infof("Imported %s %s (%d bytes)",
			white.Sprintf("#%d", block.Number), block.Hash.Short(), len(block.Payload))
	}
}

func (i *Informant) majorImporting() bool {
	status := i.sync.Status()
	return types.IsMajorImporting(&status.State, i.queue.QueueInfo())
}

// Start starts the periodic status report.
func (i *Informant) Start() {
	if i.started.CompareAndSwap(false, true) {
		go i.run()
	}
}

func (i *Informant) run() {
	defer close(i.done)

	ticker := time.NewTicker(i.interval)
	defer ticker.Stop()

	for {
		select {
		case <-i.stop:
			return
		case <-ticker.C:
			i.gate.Do(i.tick)
		}
	}
}

func (i *Informant) tick() {
	i.ticks.Add(1)

	status := i.sync.Status()
	queue := i.queue.QueueInfo()
	imported := i.imported.Swap(0)

	if types.IsMajorImporting(&status.State, queue) {
		i.logger.Infof("%s %s/%s %s peers, %d blocks imported, queue %d unverified %d verifying %d verified",
			yellow.Sprint("Syncing"),
			white.Sprintf("#%d", status.BestBlock), bold.Sprintf("#%d", status.HighestBlock),
			bold.Sprint(status.NumPeers), imported,
			queue.Unverified, queue.Verifying, queue.Verified)
		return
	}

	i.logger.Infof("%s %s %s peers, %d blocks imported",
		bold.Sprint(status.State), white.Sprintf("#%d", status.BestBlock),
		bold.Sprint(status.NumPeers), imported)
}

// Ticks returns the number of status reports made.
func (i *Informant) Ticks() uint64 {
	return i.ticks.Load()
}

// Stop stops the periodic status report. It is safe to call Stop
// without calling Start.
func (i *Informant) Stop() error {
	i.stopOnce.Do(func() {
		close(i.stop)
	})

	if i.started.Load() {
		<-i.done
	}
	return nil
}
