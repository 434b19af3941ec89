// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package panics converts unrecoverable subsystem failures into
// termination requests. Subsystems publish a single terminal failure
// event to the Hub and every subscriber is notified.
package panics

import (
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
)

// ErrPanic is wrapped by failures created from a recovered panic.
var ErrPanic = errors.New("panic")

// Failure is an unrecoverable failure reported by a subsystem.
type Failure struct {
	Source string
	Err    error
}

func (f Failure) String() string {
	return f.Source + ": " + f.Err.Error()
}

// Listener is called with each failure forwarded to the hub.
type Listener func(failure Failure)

// Source is implemented by subsystems running their own goroutines
// which can fail after they started.
type Source interface {
	SetFailureHandler(handler func(err error))
}

// Logger is the logger used by the hub.
type Logger interface {
	Debugf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// Hub is the single convergence point for subsystem failures.
// It is safe for concurrent use and remains usable during teardown.
type Hub struct {
	logger    Logger
	mutex     sync.Mutex
	listeners []Listener
	failures  []Failure
}

// NewHub creates a failure hub.
func NewHub(logger Logger) *Hub {
	return &Hub{
		logger: logger,
	}
}

// RegisterSource wires the failure handler of the source given
// so its failures are forwarded to the hub under the name given.
func (h *Hub) RegisterSource(name string, source Source) {
	source.SetFailureHandler(func(err error) {
		h.Forward(Failure{Source: name, Err: err})
	})
	h.logger.Debugf("registered failure source %s", name)
}

// Subscribe registers a listener notified of every failure.
// A listener subscribing after failures were already forwarded
// is notified of those failures as well.
func (h *Hub) Subscribe(listener Listener) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.listeners = append(h.listeners, listener)
	for _, failure := range h.failures {
		h.notify(listener, failure)
	}
}

// Forward publishes a failure to all the listeners. Each listener
// is called in its own goroutine, so Forward never blocks on them.
func (h *Hub) Forward(failure Failure) {
	if failure.Err == nil {
		failure.Err = errors.New("unknown failure")
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.logger.Errorf("subsystem %s failed: %s", failure.Source, failure.Err)
	h.failures = append(h.failures, failure)
	for _, listener := range h.listeners {
		h.notify(listener, failure)
	}
}

// Failures returns the failures forwarded so far.
func (h *Hub) Failures() (failures []Failure) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return append(failures, h.failures...)
}

// Go runs fn in a goroutine on behalf of the source given. A panic
// or an error returned by fn is forwarded as a failure.
func (h *Hub) Go(source string, fn func() error) {
	go func() {
		err := h.Catch(fn)
		if err != nil {
			h.Forward(Failure{Source: source, Err: err})
		}
	}()
}

// Catch runs fn and converts a panic into an error wrapping ErrPanic.
func (h *Hub) Catch(fn func() error) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		err = fmt.Errorf("%w: %v\n%s", ErrPanic, r, debug.Stack())
	}()
	return fn()
}

func (h *Hub) notify(listener Listener, failure Failure) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				h.logger.Errorf("failure listener panicked: %v", r)
			}
		}()
		listener(failure)
	}()
}
