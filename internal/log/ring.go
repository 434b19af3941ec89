// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"strings"
	"sync"
)

// Ring is an io.Writer keeping the last lines written to it
// in memory. It is used as the node logging sink served to
// the RPC transports.
type Ring struct {
	mutex sync.RWMutex
	lines []string
	next  int
	full  bool
}

// NewRing creates a ring retaining at most size lines.
func NewRing(size int) *Ring {
	if size < 1 {
		size = 1
	}
	return &Ring{
		lines: make([]string, size),
	}
}

// Write stores each line of p, evicting the oldest
// lines once the ring is full.
func (r *Ring) Write(p []byte) (n int, err error) {
	text := strings.TrimRight(string(p), "\n")
	if text == "" {
		return len(p), nil
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, line := range strings.Split(text, "\n") {
		r.lines[r.next] = line
		r.next = (r.next + 1) % len(r.lines)
		if r.next == 0 {
			r.full = true
		}
	}

	return len(p), nil
}

// Lines returns the retained lines, oldest first.
func (r *Ring) Lines() (lines []string) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if !r.full {
		return append(lines, r.lines[:r.next]...)
	}

	lines = make([]string, 0, len(r.lines))
	lines = append(lines, r.lines[r.next:]...)
	lines = append(lines, r.lines[:r.next]...)
	return lines
}
