// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package services

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

//go:generate mockgen -destination=mocks_test.go -package=$GOPACKAGE . Service,Logger

// Service must be implemented by all Services
type Service interface {
	Start() error
	Stop() error
}

// Logger logs formatted strings at the different log levels.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// ErrStopTimeout is returned when a stop action exceeds the stack timeout.
var ErrStopTimeout = errors.New("stop timed out")

type entry struct {
	name string
	stop func() error
}

// Stack is an ordered teardown list. An undo action is pushed each time
// a subsystem is started and Unwind runs them last-in first-out.
// Each action runs at most once, even with concurrent Unwind calls.
type Stack struct {
	logger      Logger
	stopTimeout time.Duration
	mutex       sync.Mutex
	entries     []entry
	stopped     []string
}

// NewStack creates an empty teardown stack. A zero stopTimeout
// waits for each stop action for as long as it takes.
func NewStack(logger Logger, stopTimeout time.Duration) *Stack {
	return &Stack{
		logger:      logger,
		stopTimeout: stopTimeout,
	}
}

// Push records the undo action for the subsystem name given.
func (s *Stack) Push(name string, stop func() error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.entries = append(s.entries, entry{name: name, stop: stop})
}

// PushService records the Stop method of the service as its undo action.
func (s *Stack) PushService(name string, service Service) {
	s.Push(name, service.Stop)
}

// Names returns the names of the pending undo actions, in push order.
func (s *Stack) Names() (names []string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	for _, e := range s.entries {
		names = append(names, e.name)
	}
	return names
}

// Stopped returns the names of the undo actions already run, in run order.
func (s *Stack) Stopped() (names []string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return append(names, s.stopped...)
}

// Unwind runs every pending undo action, most recent first.
// A failing action is logged and does not prevent the next ones.
func (s *Stack) Unwind() {
	for {
		e, ok := s.pop()
		if !ok {
			return
		}

		s.logger.Debugf("stopping %s", e.name)
		err := s.run(e)
		if err != nil {
			s.logger.Errorf("failed to stop %s: %s", e.name, err)
			continue
		}
		s.logger.Infof("stopped %s", e.name)
	}
}

func (s *Stack) pop() (e entry, ok bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if len(s.entries) == 0 {
		return e, false
	}

	last := len(s.entries) - 1
	e = s.entries[last]
	s.entries = s.entries[:last]
	s.stopped = append(s.stopped, e.name)
	return e, true
}

func (s *Stack) run(e entry) (err error) {
	if s.stopTimeout == 0 {
		return e.stop()
	}

	done := make(chan error, 1)
	go func() {
		done <- e.stop()
	}()

	timer := time.NewTimer(s.stopTimeout)
	defer timer.Stop()

	select {
	case err = <-done:
		return err
	case <-timer.C:
		return fmt.Errorf("%w: after %s", ErrStopTimeout, s.stopTimeout)
	}
}
