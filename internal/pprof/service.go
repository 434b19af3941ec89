// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package pprof

import (
	"runtime"

	"github.com/ChainSafe/conductor/internal/httpserver"
)

// Service is a pprof http server service.
type Service struct {
	settings Settings
	service  *httpserver.Service
}

// NewService creates a pprof server service.
func NewService(settings Settings, logger httpserver.Logger) *Service {
	settings.setDefaults()
	return &Service{
		settings: settings,
		service:  httpserver.NewService(NewServer(settings.ListeningAddress, logger)),
	}
}

// Start sets the profile rates and starts the pprof server.
func (s *Service) Start() (err error) {
	runtime.SetBlockProfileRate(s.settings.BlockProfileRate)
	runtime.SetMutexProfileFraction(s.settings.MutexProfileRate)
	return s.service.Start()
}

// SetFailureHandler sets the function called if the pprof server crashes.
func (s *Service) SetFailureHandler(handler func(err error)) {
	s.service.SetFailureHandler(handler)
}

// Stop stops the pprof server.
func (s *Service) Stop() (err error) {
	return s.service.Stop()
}
