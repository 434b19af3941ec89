// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"github.com/ChainSafe/conductor/dot/network"
	"github.com/ChainSafe/conductor/dot/rpc"
	"github.com/ChainSafe/conductor/dot/state"
	"github.com/ChainSafe/conductor/dot/ui"
	"github.com/ChainSafe/conductor/internal/log"
	"github.com/ChainSafe/conductor/internal/metrics"
	"github.com/ChainSafe/conductor/internal/panics"
	"github.com/ChainSafe/conductor/internal/pprof"
	"github.com/ChainSafe/conductor/lib/genesis"
	"github.com/ChainSafe/conductor/lib/keystore"
)

// service can be started and stopped, and reports a crash
// happening after it started to its failure handler.
type service interface {
	Start() error
	Stop() error
	SetFailureHandler(handler func(err error))
}

// nodeBuilderIface creates the subsystems of a node. Every create method
// returns a started subsystem, or an error and nothing to stop.
type nodeBuilderIface interface {
	addressInUse(address string) bool
	openURL(url string) error
	createDirectories(paths ...string) error
	loadGenesis(chain string) (*genesis.Genesis, error)
	createPidFile(path string) (release func() error, err error)
	readPasswords(files []string, unlock []string) (passwords [][]byte, err error)
	createKeystore(dir string, unlock []string, passwords [][]byte, logLevel log.Level) (*keystore.Keystore, error)
	createStateService(cfg state.Config, hub *panics.Hub) (*state.Service, error)
	createNetworkService(cfg network.Config) (*network.Service, error)
	createRPCService(cfg rpc.HTTPServerConfig) (service, error)
	createIPCService(cfg rpc.IPCServerConfig) (service, error)
	createSignerService(cfg rpc.SignerConfig) (*rpc.SignerServer, error)
	createUIService(cfg ui.Config) (service, error)
	createMetricsService(address string, gauges []metrics.Gauge) (service, error)
	createPprofService(settings pprof.Settings) (service, error)
}
