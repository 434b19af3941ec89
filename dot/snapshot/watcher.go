// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package snapshot schedules periodic state snapshots as blocks are
// imported.
package snapshot

import (
	"sync"
	"sync/atomic"

	"github.com/ChainSafe/conductor/dot/types"
	"github.com/ChainSafe/conductor/internal/log"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "snapshot"))

const (
	// Period is the number of blocks between two snapshots.
	Period uint64 = 10000
	// History is the number of blocks a snapshot lags behind the
	// block triggering it.
	History uint64 = 100
)

// Oracle tells if the node is catching up with the chain.
type Oracle interface {
	IsMajorImporting() bool
}

// Taker takes a snapshot at a block number.
type Taker interface {
	TakeSnapshot(number uint64) error
}

// Gate runs periodic work while the node accepts it.
type Gate interface {
	Do(fn func()) (ran bool)
}

// Stats are the statistics of the snapshot watcher.
type Stats struct {
	Scheduled  uint64 `json:"scheduled"`
	Taken      uint64 `json:"taken"`
	Failed     uint64 `json:"failed"`
	LastNumber uint64 `json:"lastNumber"`
}

// Watcher watches imported blocks and takes a snapshot at
// block n - history when n - history is a multiple of the period.
type Watcher struct {
	oracle  Oracle
	period  uint64
	history uint64
	gate    Gate
	taker   Taker

	inProgress atomic.Bool
	wg         sync.WaitGroup

	scheduled  atomic.Uint64
	taken      atomic.Uint64
	failed     atomic.Uint64
	lastNumber atomic.Uint64
}

// Schedule creates a watcher to add as chain notifier.
func Schedule(oracle Oracle, period, history uint64, gate Gate, taker Taker) *Watcher {
	return &Watcher{
		oracle:  oracle,
		period:  period,
		history: history,
		gate:    gate,
		taker:   taker,
	}
}

// highest returns the highest snapshot block number triggered by the
// blocks imported, or 0 if none is triggered.
func (w *Watcher) highest(imported []*types.Block) (highest uint64) {
	for _, block := range imported {
		if block.Number < w.period+w.history {
			continue
		}
		number := block.Number - w.history
		if number%w.period == 0 && number > highest {
			highest = number
		}
	}
	return highest
}

// NewBlocks schedules a snapshot if the blocks imported trigger one.
func (w *Watcher) NewBlocks(imported []*types.Block) {
	if w.oracle.IsMajorImporting() {
		return
	}

	number := w.highest(imported)
	if number == 0 {
		return
	}

	ran := w.gate.Do(func() {
		if !w.inProgress.CompareAndSwap(false, true) {
			logger.Debugf("snapshot already in progress, skipping block #%d", number)
			return
		}

		w.scheduled.Add(1)
		w.wg.Add(1)
		go w.take(number)
	})
	if !ran {
		logger.Debugf("not scheduling snapshot at block #%d during shutdown", number)
	}
}

func (w *Watcher) take(number uint64) {
	defer w.wg.Done()
	defer w.inProgress.Store(false)

	logger.Infof("taking snapshot at block #%d", number)
	err := w.taker.TakeSnapshot(number)
	if err != nil {
		w.failed.Add(1)
		logger.Warnf("failed to take snapshot at block #%d: %s", number, err)
		return
	}

	w.taken.Add(1)
	w.lastNumber.Store(number)
}

// Stats returns the statistics of the watcher.
func (w *Watcher) Stats() Stats {
	return Stats{
		Scheduled:  w.scheduled.Load(),
		Taken:      w.taken.Load(),
		Failed:     w.failed.Load(),
		LastNumber: w.lastNumber.Load(),
	}
}

// Stop waits for the snapshot in progress, if any.
func (w *Watcher) Stop() error {
	w.wg.Wait()
	return nil
}
