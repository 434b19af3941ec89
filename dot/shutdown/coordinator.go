// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package shutdown

import (
	"os"
	"os/signal"
	"sync"
	"sync/atomic"

	"github.com/ChainSafe/conductor/internal/panics"
)

// State is the state of the shutdown coordinator.
type State int32

const (
	// Running is the state while the node serves; the control
	// goroutine is parked in Wait.
	Running State = iota
	// TerminationRequested is entered by the first termination trigger.
	TerminationRequested
	// Draining is the state while subsystems are being stopped.
	Draining
	// Stopped is the terminal state.
	Stopped
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case TerminationRequested:
		return "termination requested"
	case Draining:
		return "draining"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Cause is the reason termination was requested.
type Cause uint8

const (
	// CauseNone is the cause before any termination request.
	CauseNone Cause = iota
	// CauseSignal is an operator termination signal.
	CauseSignal
	// CauseFailure is a subsystem failure forwarded by the failure hub.
	CauseFailure
)

func (c Cause) String() string {
	switch c {
	case CauseSignal:
		return "signal"
	case CauseFailure:
		return "failure"
	default:
		return "none"
	}
}

// Unwinder runs the teardown actions of the started subsystems.
type Unwinder interface {
	Unwind()
}

// Logger is the logger used by the coordinator.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// Coordinator parks the control goroutine until termination is
// requested, then drives the ordered teardown of the node.
type Coordinator struct {
	logger    Logger
	gate      *Gate
	state     atomic.Int32
	requested chan struct{}

	causeMutex sync.Mutex
	cause      Cause
	reason     string
}

// NewCoordinator creates a coordinator in the Running state.
// The gate given is closed when draining begins.
func NewCoordinator(logger Logger, gate *Gate) *Coordinator {
	return &Coordinator{
		logger:    logger,
		gate:      gate,
		requested: make(chan struct{}),
	}
}

// State returns the current state.
func (c *Coordinator) State() State {
	return State(c.state.Load())
}

// Accepting returns true while new scheduled work is accepted.
func (c *Coordinator) Accepting() bool {
	return c.gate.Open()
}

// Gate returns the scheduled work gate of the coordinator.
func (c *Coordinator) Gate() *Gate {
	return c.gate
}

// Request requests termination. Only the first request transitions
// the coordinator and returns true; later requests are no-ops.
func (c *Coordinator) Request(cause Cause, reason string) (transitioned bool) {
	if !c.state.CompareAndSwap(int32(Running), int32(TerminationRequested)) {
		c.logger.Debugf("ignoring termination request (%s: %s) in state %s", cause, reason, c.State())
		return false
	}

	c.causeMutex.Lock()
	c.cause = cause
	c.reason = reason
	c.causeMutex.Unlock()

	close(c.requested)
	return true
}

// HandleFailure is the failure hub listener requesting termination.
func (c *Coordinator) HandleFailure(failure panics.Failure) {
	c.Request(CauseFailure, failure.String())
}

// NotifySignals requests termination when one of the signals given is
// received. The returned function stops relaying signals.
func (c *Coordinator) NotifySignals(signals ...os.Signal) (stop func()) {
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, signals...)

	done := make(chan struct{})
	go func() {
		select {
		case sig := <-sigc:
			c.Request(CauseSignal, sig.String())
		case <-done:
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			signal.Stop(sigc)
			close(done)
		})
	}
}

// Requested returns a channel closed once termination is requested.
func (c *Coordinator) Requested() <-chan struct{} {
	return c.requested
}

// Wait blocks until termination is requested and returns its cause.
func (c *Coordinator) Wait() (cause Cause, reason string) {
	<-c.requested
	c.causeMutex.Lock()
	defer c.causeMutex.Unlock()
	return c.cause, c.reason
}

// Drain closes the scheduled work gate and then unwinds the teardown
// stack given. It only runs once, after termination was requested,
// and returns false otherwise.
func (c *Coordinator) Drain(stack Unwinder) (drained bool) {
	if !c.state.CompareAndSwap(int32(TerminationRequested), int32(Draining)) {
		c.logger.Debugf("not draining in state %s", c.State())
		return false
	}

	c.gate.Close()
	c.logger.Infof("Finishing work, please wait...")

	stack.Unwind()

	c.state.Store(int32(Stopped))

	c.causeMutex.Lock()
	cause, reason := c.cause, c.reason
	c.causeMutex.Unlock()

	switch cause {
	case CauseFailure:
		c.logger.Errorf("node stopped after subsystem failure: %s", reason)
	default:
		c.logger.Infof("node stopped after signal %s", reason)
	}
	return true
}
