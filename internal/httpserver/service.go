// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package httpserver

import (
	"context"
	"errors"
	"sync"
)

// Runner runs an HTTP server until its context is canceled.
type Runner interface {
	Run(ctx context.Context, ready chan<- struct{}, done chan<- error)
}

// ErrServerDoneBeforeReady is returned by Start if the server
// exited before listening.
var ErrServerDoneBeforeReady = errors.New("server terminated before being ready")

// Service runs an HTTP server in the background and exposes
// the Start and Stop methods of a node service.
// A server exiting with an error after it became ready is reported
// to the failure handler.
type Service struct {
	server Runner
	cancel context.CancelFunc
	done   chan error
	exited chan error

	mutex          sync.Mutex
	failureHandler func(err error)
	crash          error
}

// NewService creates a service running the server given.
func NewService(server Runner) *Service {
	return &Service{
		server: server,
		done:   make(chan error),
	}
}

// SetFailureHandler sets the function called when the server crashes
// after it started. A crash which happened before the handler is set
// is reported to it immediately.
func (s *Service) SetFailureHandler(handler func(err error)) {
	s.mutex.Lock()
	s.failureHandler = handler
	crash := s.crash
	s.mutex.Unlock()

	if crash != nil && handler != nil {
		handler(crash)
	}
}

// Start starts the server and blocks until it listens.
func (s *Service) Start() (err error) {
	ctx, cancel := context.WithCancel(context.Background())
	ready := make(chan struct{})

	go s.server.Run(ctx, ready, s.done)

	select {
	case <-ready:
		s.cancel = cancel
		s.exited = make(chan error, 1)
		go s.watch(s.exited)
		return nil
	case err := <-s.done:
		cancel()
		if err != nil {
			return err
		}
		return ErrServerDoneBeforeReady
	}
}

// watch waits for the server to exit and reports a crash.
func (s *Service) watch(exited chan<- error) {
	err := <-s.done
	if err == nil {
		exited <- nil
		return
	}

	s.mutex.Lock()
	s.crash = err
	handler := s.failureHandler
	s.mutex.Unlock()
	exited <- err

	if handler != nil {
		handler(err)
	}
}

// Stop stops the server and returns the error it exited with.
// Stopping a service which is not started is a no-op.
func (s *Service) Stop() (err error) {
	if s.cancel == nil {
		return nil
	}
	s.cancel()
	s.cancel = nil
	return <-s.exited
}
