// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
)

// Server is an HTTP server implementation, which uses
// the HTTP handler provided.
type Server struct {
	name       string
	address    string
	addressSet chan struct{}
	handler    http.Handler
	logger     Logger
	optional   optionalSettings
}

// New creates a new HTTP server with a name, listening on
// the address specified and using the HTTP handler provided.
func New(name, address string, handler http.Handler,
	logger Logger, options ...Option) *Server {
	return &Server{
		name:       name,
		address:    address,
		addressSet: make(chan struct{}),
		handler:    handler,
		logger:     logger,
		optional:   newOptionalSettings(options),
	}
}

// GetAddress obtains the address the HTTP server is listening on.
// It blocks until the server has tried to listen.
func (s *Server) GetAddress() (address string) {
	<-s.addressSet
	return s.address
}

// Run runs the HTTP server until ctx is canceled.
// The ready channel is closed once the server is listening.
// The done channel receives the error the server exited with,
// which is nil if it exited because of the context cancellation.
// An error received on done after ready was closed is a runtime
// crash of the server.
func (s *Server) Run(ctx context.Context, ready chan<- struct{}, done chan<- error) {
	server := http.Server{
		Addr:              s.address,
		Handler:           s.handler,
		ReadTimeout:       s.optional.readTimeout,
		ReadHeaderTimeout: s.optional.readHeaderTimeout,
	}

	crashed := make(chan struct{})
	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		select {
		case <-ctx.Done():
		case <-crashed:
			return
		}

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(), s.optional.shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(s.name + " http server failed shutting down: " + err.Error())
		}
	}()

	if s.optional.network == "unix" {
		// a stale socket file from a previous run prevents listening
		_ = os.Remove(s.address)
	}

	listener, err := net.Listen(s.optional.network, s.address)
	if err != nil {
		close(s.addressSet)
		close(crashed) // stop shutdown goroutine
		<-shutdownDone
		done <- err
		return
	}

	s.address = listener.Addr().String()
	close(s.addressSet)
	s.logger.Info(s.name + " http server listening on " + s.address)
	close(ready)

	err = server.Serve(listener)

	if err != nil && !errors.Is(ctx.Err(), context.Canceled) {
		// server crashed
		close(crashed) // stop shutdown goroutine
		<-shutdownDone
		done <- err
		return
	}

	<-shutdownDone
	done <- nil
}
