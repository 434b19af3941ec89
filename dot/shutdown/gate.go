// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package shutdown

import "sync"

// Gate guards the scheduling of new periodic work. It is open while the
// node accepts new scheduled work and is closed once, when draining begins.
type Gate struct {
	mutex  sync.RWMutex
	closed bool
}

// NewGate returns an open gate.
func NewGate() *Gate {
	return &Gate{}
}

// Do runs fn only if the gate is open and reports whether it ran.
// Close blocks until every running fn returned, so no fn starts
// after Close returned. fn must not call Close.
func (g *Gate) Do(fn func()) (ran bool) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	if g.closed {
		return false
	}
	fn()
	return true
}

// Open returns true while new scheduled work is accepted.
func (g *Gate) Open() bool {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return !g.closed
}

// Close stops accepting new scheduled work.
func (g *Gate) Close() {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	g.closed = true
}
