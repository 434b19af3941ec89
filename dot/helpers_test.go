// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"context"
	"errors"
	"testing"

	"github.com/ChainSafe/conductor/config"
	"github.com/ChainSafe/conductor/dot/rpc"
	"github.com/ChainSafe/conductor/dot/shutdown"
	"github.com/ChainSafe/conductor/dot/state"
	"github.com/ChainSafe/conductor/internal/httpserver"
	"github.com/ChainSafe/conductor/internal/log"
	"github.com/ChainSafe/conductor/internal/metrics"
	"github.com/ChainSafe/conductor/internal/panics"
	"github.com/ChainSafe/conductor/internal/pprof"
	"github.com/ChainSafe/conductor/lib/services"
)

var errTest = errors.New("test error")

// newTestConfig returns a configuration starting every transport
// except the IPC one on random local ports, with the network off.
func newTestConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.BasePath = t.TempDir()
	cfg.LogLevel = "error"
	cfg.DevBlockTime = 0

	cfg.State.InMemory = true
	cfg.State.Mode = "dark"

	cfg.RPC.Enabled = true
	cfg.RPC.Host = "127.0.0.1"
	cfg.RPC.Port = 0
	cfg.IPC.Enabled = false
	cfg.Signer.Enabled = true
	cfg.Signer.Host = "127.0.0.1"
	cfg.Signer.Port = 0
	cfg.UI.Enabled = true
	cfg.UI.Host = "127.0.0.1"
	cfg.UI.Port = 0
	cfg.Metrics.Enabled = true
	cfg.Metrics.Address = "127.0.0.1:0"
	cfg.Pprof.Enabled = true
	cfg.Pprof.ListeningAddress = "127.0.0.1:0"

	return cfg
}

// testNode holds the orchestration objects handed to newNode.
type testNode struct {
	hub         *panics.Hub
	coordinator *shutdown.Coordinator
	stack       *services.Stack
	ring        *log.Ring
}

func newTestNode() testNode {
	testLogger := log.NewFromGlobal(log.AddContext("pkg", "dot_test"))
	hub := panics.NewHub(testLogger)
	coordinator := shutdown.NewCoordinator(testLogger, shutdown.NewGate())
	hub.Subscribe(coordinator.HandleFailure)
	return testNode{
		hub:         hub,
		coordinator: coordinator,
		stack:       services.NewStack(testLogger, 0),
		ring:        log.NewRing(10),
	}
}

func (tn testNode) start(cfg *config.Config, builder nodeBuilderIface) (*Node, error) {
	return newNode(cfg, builder, tn.hub, tn.coordinator, tn.stack, tn.ring)
}

// failingBuilder is the node builder failing to create
// the subsystem named failAt.
type failingBuilder struct {
	nodeBuilder
	failAt string
}

func (b failingBuilder) createStateService(cfg state.Config, hub *panics.Hub) (*state.Service, error) {
	if b.failAt == "state" {
		return nil, errTest
	}
	return b.nodeBuilder.createStateService(cfg, hub)
}

func (b failingBuilder) createRPCService(cfg rpc.HTTPServerConfig) (service, error) {
	if b.failAt == "rpc" {
		return nil, errTest
	}
	return b.nodeBuilder.createRPCService(cfg)
}

func (b failingBuilder) createSignerService(cfg rpc.SignerConfig) (*rpc.SignerServer, error) {
	if b.failAt == "signer" {
		return nil, errTest
	}
	return b.nodeBuilder.createSignerService(cfg)
}

func (b failingBuilder) createPprofService(settings pprof.Settings) (service, error) {
	if b.failAt == "pprof" {
		return nil, errTest
	}
	return b.nodeBuilder.createPprofService(settings)
}

// crashingRunner is an HTTP server runner which exits
// with errTest once crash is closed.
type crashingRunner struct {
	crash <-chan struct{}
}

func (r crashingRunner) Run(ctx context.Context, ready chan<- struct{}, done chan<- error) {
	close(ready)
	select {
	case <-r.crash:
		done <- errTest
	case <-ctx.Done():
		done <- nil
	}
}

// crashingBuilder is the node builder whose metrics
// server crashes once crash is closed.
type crashingBuilder struct {
	nodeBuilder
	crash <-chan struct{}
}

func (b crashingBuilder) createMetricsService(string, []metrics.Gauge) (service, error) {
	srvc := httpserver.NewService(crashingRunner{crash: b.crash})
	return srvc, startService(srvc)
}
