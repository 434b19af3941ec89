// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package ui serves the node web UI.
package ui

import (
	"embed"
	"encoding/json"
	"io/fs"
	"net/http"

	"github.com/ChainSafe/conductor/dot/types"
	"github.com/ChainSafe/conductor/internal/httpserver"
	"github.com/ChainSafe/conductor/internal/log"
	"github.com/gorilla/mux"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "ui"))

//go:embed static
var static embed.FS

// SyncAPI provides the synchronization status.
type SyncAPI interface {
	Status() types.SyncStatus
}

// StateAPI provides the storage engine state.
type StateAPI interface {
	BestBlock() *types.Block
	Mode() types.Mode
}

// Config is the configuration of the web UI server.
type Config struct {
	LogLvl  log.Level
	Address string
	Info    types.SystemInfo
	Sync    SyncAPI
	State   StateAPI
}

// Status is the node status served to the web UI.
type Status struct {
	Name      string `json:"name"`
	Chain     string `json:"chain"`
	Version   string `json:"version"`
	Mode      string `json:"mode"`
	SyncState string `json:"syncState"`
	BestBlock uint64 `json:"bestBlock"`
	BestHash  string `json:"bestHash,omitempty"`
	Peers     int    `json:"peers"`
}

// Server serves the web UI page and its status endpoint.
type Server struct {
	cfg     Config
	router  *mux.Router
	server  *httpserver.Server
	service *httpserver.Service
}

// New creates a web UI server.
func New(cfg Config) (*Server, error) {
	logger.Patch(log.SetLevel(cfg.LogLvl))

	content, err := fs.Sub(static, "static")
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:    cfg,
		router: mux.NewRouter(),
	}
	s.router.HandleFunc("/api/status", s.status).Methods(http.MethodGet)
	s.router.PathPrefix("/").Handler(http.FileServer(http.FS(content)))

	s.server = httpserver.New("ui", cfg.Address, s.router, logger)
	s.service = httpserver.NewService(s.server)
	return s, nil
}

// ServeHTTP serves the web UI requests.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Start starts the web UI server.
func (s *Server) Start() error {
	return s.service.Start()
}

// SetFailureHandler sets the function called if the web UI server crashes.
func (s *Server) SetFailureHandler(handler func(err error)) {
	s.service.SetFailureHandler(handler)
}

// Stop stops the web UI server.
func (s *Server) Stop() error {
	return s.service.Stop()
}

// Address returns the address the server listens on.
// It blocks until the server is started.
func (s *Server) Address() string {
	return s.server.GetAddress()
}

func (s *Server) status(w http.ResponseWriter, _ *http.Request) {
	syncStatus := s.cfg.Sync.Status()
	status := Status{
		Name:      s.cfg.Info.NodeName,
		Chain:     s.cfg.Info.Chain,
		Version:   s.cfg.Info.SystemVersion,
		Mode:      s.cfg.State.Mode().String(),
		SyncState: syncStatus.State.String(),
		Peers:     syncStatus.NumPeers,
	}
	if best := s.cfg.State.BestBlock(); best != nil {
		status.BestBlock = best.Number
		status.BestHash = best.Hash.String()
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(status)
	if err != nil {
		logger.Debugf("writing ui status: %s", err)
	}
}
