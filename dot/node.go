// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"

	"github.com/ChainSafe/conductor/chain/dev"
	"github.com/ChainSafe/conductor/config"
	"github.com/ChainSafe/conductor/dot/deps"
	"github.com/ChainSafe/conductor/dot/informant"
	"github.com/ChainSafe/conductor/dot/network"
	"github.com/ChainSafe/conductor/dot/rpc"
	"github.com/ChainSafe/conductor/dot/shutdown"
	"github.com/ChainSafe/conductor/dot/snapshot"
	"github.com/ChainSafe/conductor/dot/state"
	dotsync "github.com/ChainSafe/conductor/dot/sync"
	"github.com/ChainSafe/conductor/dot/types"
	"github.com/ChainSafe/conductor/dot/ui"
	"github.com/ChainSafe/conductor/dot/userdefaults"
	"github.com/ChainSafe/conductor/internal/log"
	"github.com/ChainSafe/conductor/internal/panics"
	"github.com/ChainSafe/conductor/internal/pprof"
	"github.com/ChainSafe/conductor/lib/services"
	"github.com/ChainSafe/conductor/lib/utils"
	"golang.org/x/term"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "dot"))

// Node is a running node.
type Node struct {
	Name        string
	stack       *services.Stack
	coordinator *shutdown.Coordinator
	bundle      *deps.Bundle
}

// Run starts a node with the configuration given and blocks until it
// is stopped by a signal or by a subsystem failure. It returns an
// error only if the node could not be started.
func Run(cfg *config.Config) error {
	ring, err := setupLogger(cfg)
	if err != nil {
		return err
	}

	hub := panics.NewHub(logger)
	coordinator := shutdown.NewCoordinator(logger, shutdown.NewGate())
	hub.Subscribe(coordinator.HandleFailure)
	stack := services.NewStack(logger, cfg.ShutdownTimeout)

	node, err := newNode(cfg, nodeBuilder{}, hub, coordinator, stack, ring)
	if err != nil {
		return err
	}
	if node == nil {
		return nil
	}

	stopSignals := coordinator.NotifySignals(os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	node.Wait()
	return nil
}

// Wait blocks until termination is requested and then stops
// the subsystems of the node in reverse start order.
func (n *Node) Wait() {
	cause, reason := n.coordinator.Wait()
	logger.Debugf("termination requested by %s: %s", cause, reason)
	n.coordinator.Drain(n.stack)
}

// setupLogger sets the global log level and duplicates the log
// output to a ring of recent lines served over rpc.
func setupLogger(cfg *config.Config) (ring *log.Ring, err error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	ring = log.NewRing(cfg.Log.RingSize)
	log.Patch(
		log.SetLevel(level),
		log.SetColour(term.IsTerminal(int(os.Stdout.Fd()))),
		log.SetWriter(io.MultiWriter(os.Stdout, ring)),
	)
	return ring, nil
}

// newNode starts the subsystems of a node in dependency order, pushing
// each on the stack given. If a step fails, the subsystems already
// started are stopped in reverse order and the error is returned.
// A nil node and a nil error are returned if an already running
// web UI was opened instead.
func newNode(cfg *config.Config, builder nodeBuilderIface, hub *panics.Hub,
	coordinator *shutdown.Coordinator, stack *services.Stack, ring *log.Ring) (node *Node, err error) {
	if cfg.UI.Launch && !cfg.UI.Enabled {
		return nil, deps.ErrUIWithoutWebUI
	}

	if cfg.UI.Launch && builder.addressInUse(cfg.UI.Address()) {
		logger.Infof("web UI is already running at %s", cfg.UI.URL())
		openErr := builder.openURL(cfg.UI.URL())
		if openErr != nil {
			logger.Warnf("failed to open web UI: %s", openErr)
		}
		return nil, nil
	}

	dirs := newDirectories(cfg)
	err = builder.createDirectories(dirs.toCreate(cfg)...)
	if err != nil {
		return nil, err
	}

	gen, err := builder.loadGenesis(cfg.Chain)
	if err != nil {
		return nil, fmt.Errorf("loading chain spec: %w", err)
	}
	genesisHash, err := gen.Hash()
	if err != nil {
		return nil, fmt.Errorf("hashing genesis: %w", err)
	}
	dbDirs := newDatabaseDirectories(dirs, cfg, gen.DataDir(), genesisHash)

	switches, err := switchesFromConfig(cfg.State)
	if err != nil {
		return nil, err
	}
	defaults := userdefaults.Load(dbDirs.root, gen.ID, logger)
	resolved, err := defaults.Resolve(switches)
	if err != nil {
		return nil, err
	}
	logResolved(config.GetFullVersion(), resolved)

	defer func() {
		if err != nil {
			logger.Errorf("failed to start node: %s", err)
			stack.Unwind()
		}
	}()

	if cfg.PidFile != "" {
		release, err := builder.createPidFile(utils.ExpandDir(cfg.PidFile))
		if err != nil {
			return nil, err
		}
		stack.Push("pid file", release)
	}

	passwords, err := builder.readPasswords(cfg.Account.PasswordFiles, cfg.Account.Unlock)
	if err != nil {
		return nil, err
	}
	ks, err := builder.createKeystore(dirs.keys, cfg.Account.Unlock, passwords,
		subsystemLevel(cfg.Log.Keystore, cfg.LogLevel))
	if err != nil {
		return nil, err
	}
	stack.Push("keystore", ks.Stop)

	stateSrvc, err := builder.createStateService(state.Config{
		Path:         dbDirs.clientPath(resolved.Pruning),
		SnapshotPath: dbDirs.snapshot,
		InMemory:     cfg.State.InMemory,
		LogLevel:     subsystemLevel(cfg.Log.State, cfg.LogLevel),
		Genesis:      genesisHash,
		Pruning:      resolved.Pruning,
		Tracing:      resolved.Tracing,
		FatDB:        resolved.FatDB,
		Mode:         resolved.Mode,
		QueueSize:    cfg.State.QueueSize,
	}, hub)
	if err != nil {
		return nil, err
	}
	stack.PushService("state", stateSrvc)

	networkSrvc, err := builder.createNetworkService(networkConfig(cfg, gen.Bootnodes, gen.ProtocolID, dbDirs.network))
	if err != nil {
		return nil, fmt.Errorf("creating network service: %w", err)
	}

	devBlockTime := cfg.DevBlockTime
	if gen.ID != dev.ID {
		devBlockTime = 0
	}
	syncSrvc, networkCtrl, notify := dotsync.Start(dotsync.Config{
		LogLvl:       subsystemLevel(cfg.Log.Sync, cfg.LogLevel),
		Network:      networkSrvc,
		BlockState:   stateSrvc,
		Gate:         coordinator.Gate(),
		Runner:       hub,
		DevBlockTime: devBlockTime,
	})
	stack.Push("sync", syncSrvc.Stop)
	stateSrvc.AddNotify(notify)

	if resolved.Mode.NetworkEnabled() {
		err = networkCtrl.StartNetwork()
		if err != nil {
			return nil, err
		}
	}

	informer := informant.New(informant.Config{
		Logger: log.NewFromGlobal(log.AddContext("pkg", "informant")),
		Sync:   syncSrvc,
		Queue:  stateSrvc,
		Gate:   coordinator.Gate(),
	})
	stateSrvc.AddNotify(informer)
	informer.Start()
	stack.Push("informant", informer.Stop)

	var snapshots deps.SnapshotStats
	if !cfg.Snapshot.NoPeriodic {
		watcher := snapshot.Schedule(
			&snapshot.StateOracle{Sync: syncSrvc, Queue: stateSrvc},
			snapshot.Period, snapshot.History, coordinator.Gate(), stateSrvc)
		stateSrvc.AddNotify(watcher)
		stack.Push("snapshot watcher", watcher.Stop)
		snapshots = watcher
	}

	settings := deps.Settings{
		SystemInfo: types.SystemInfo{
			NodeName:      cfg.Name,
			Chain:         gen.Name,
			NetworkID:     networkID(cfg.Network.NetworkID, gen.NetworkID),
			SystemVersion: config.GetFullVersion(),
		},
	}
	if cfg.UI.Enabled {
		settings.WebUIURL = cfg.UI.URL()
	}
	if cfg.Signer.Enabled {
		settings.SignerTokenPath = filepath.Join(dirs.signer, rpc.AuthCodesFilename)
	}
	if cfg.IPC.Enabled {
		settings.IPCPath = dbDirs.ipc
	}

	bundle, err := deps.Assemble(deps.Inputs{
		State:        stateSrvc,
		Sync:         syncSrvc,
		Network:      networkCtrl,
		Peers:        networkSrvc,
		Accounts:     ks,
		Snapshots:    snapshots,
		Acceptor:     coordinator,
		Logs:         ring,
		Hub:          hub,
		Settings:     settings,
		UILaunch:     cfg.UI.Launch,
		WebUIEnabled: cfg.UI.Enabled,
	})
	if err != nil {
		return nil, err
	}

	err = startTransports(cfg, builder, bundle, dirs, dbDirs, stack)
	if err != nil {
		return nil, err
	}

	defaults.SetDatabase(resolved.Pruning, resolved.Tracing, resolved.FatDB)
	err = defaults.Save()
	if err != nil {
		logger.Warnf("failed to save restart state: %s", err)
		err = nil
	}
	stateSrvc.OnModeChange(defaults)

	if cfg.UI.Launch {
		err = builder.openURL(cfg.UI.URL())
		if err != nil {
			logger.Warnf("failed to open web UI: %s", err)
			err = nil
		}
	}

	logger.Infof("node %s started on chain %s (genesis %s)", cfg.Name, gen.Name, genesisHash.Short())

	return &Node{
		Name:        cfg.Name,
		stack:       stack,
		coordinator: coordinator,
		bundle:      bundle,
	}, nil
}

// startTransports starts the enabled transports in order: http, ipc,
// signer, web UI, metrics and pprof, and registers each as a failure source.
func startTransports(cfg *config.Config, builder nodeBuilderIface, bundle *deps.Bundle,
	dirs directories, dbDirs databaseDirectories, stack *services.Stack) error {
	apis := rpc.NewAPIs(bundle)
	rpcLevel := subsystemLevel(cfg.Log.RPC, cfg.LogLevel)

	// a transport crashing after it started is a failure of the node
	started := func(name string, srvc service) {
		bundle.Hub().RegisterSource(name, srvc)
		stack.Push(name, srvc.Stop)
	}

	if cfg.RPC.Enabled {
		srvc, err := builder.createRPCService(rpc.HTTPServerConfig{
			LogLvl:         rpcLevel,
			Address:        cfg.RPC.Address(),
			External:       cfg.RPC.External,
			Unsafe:         cfg.RPC.Unsafe,
			UnsafeExternal: cfg.RPC.UnsafeExternal,
			Modules:        cfg.RPC.Modules,
			APIs:           apis,
		})
		if err != nil {
			return fmt.Errorf("starting rpc service: %w", err)
		}
		started("rpc", srvc)
	}

	if cfg.IPC.Enabled {
		srvc, err := builder.createIPCService(rpc.IPCServerConfig{
			LogLvl:  rpcLevel,
			Path:    dbDirs.ipc,
			Modules: cfg.RPC.Modules,
			APIs:    apis,
		})
		if err != nil {
			return fmt.Errorf("starting ipc service: %w", err)
		}
		started("ipc", srvc)
	}

	if cfg.Signer.Enabled {
		srvc, err := builder.createSignerService(rpc.SignerConfig{
			LogLvl:      rpcLevel,
			Address:     cfg.Signer.Address(),
			Dir:         dirs.signer,
			AccountsAPI: bundle.Accounts(),
		})
		if err != nil {
			return fmt.Errorf("starting signer service: %w", err)
		}
		started("signer", srvc)
	}

	if cfg.UI.Enabled {
		srvc, err := builder.createUIService(ui.Config{
			LogLvl:  rpcLevel,
			Address: cfg.UI.Address(),
			Info:    bundle.Settings().SystemInfo,
			Sync:    bundle.Sync(),
			State:   bundle.State(),
		})
		if err != nil {
			return fmt.Errorf("starting web UI service: %w", err)
		}
		started("web UI", srvc)
	}

	if cfg.Metrics.Enabled {
		srvc, err := builder.createMetricsService(cfg.Metrics.Address, nodeGauges(bundle))
		if err != nil {
			return fmt.Errorf("starting metrics service: %w", err)
		}
		started("metrics", srvc)
	}

	if cfg.Pprof.Enabled {
		srvc, err := builder.createPprofService(pprof.Settings{
			ListeningAddress: cfg.Pprof.ListeningAddress,
			BlockProfileRate: cfg.Pprof.BlockProfileRate,
			MutexProfileRate: cfg.Pprof.MutexProfileRate,
		})
		if err != nil {
			return fmt.Errorf("starting pprof service: %w", err)
		}
		started("pprof", srvc)
	}

	return nil
}

// networkConfig returns the network configuration of the chain
// bootnodes and subprotocol name given, overridden by the operator
// configuration.
func networkConfig(cfg *config.Config, bootnodes []string, subprotocol, basePath string) network.Config {
	if len(cfg.Network.Bootnodes) > 0 {
		bootnodes = cfg.Network.Bootnodes
	}
	protocolID := chainProtocolID(subprotocol)
	if cfg.Network.ProtocolID != "" {
		protocolID = cfg.Network.ProtocolID
	}
	return network.Config{
		LogLvl:        subsystemLevel(cfg.Log.Network, cfg.LogLevel),
		BasePath:      basePath,
		ListenAddress: cfg.Network.ListenAddress,
		Port:          cfg.Network.Port,
		Bootnodes:     bootnodes,
		ProtocolID:    protocolID,
		NoBootstrap:   cfg.Network.NoBootstrap,
	}
}
