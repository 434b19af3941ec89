// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package commands

import (
	"fmt"

	cfg "github.com/ChainSafe/conductor/config"
	"github.com/ChainSafe/conductor/dot"
	"github.com/ChainSafe/conductor/internal/log"
	"github.com/ChainSafe/conductor/lib/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// BasePathFlag is the flag and viper key of the base path.
const BasePathFlag = "base-path"

var logger = log.NewFromGlobal(log.AddContext("pkg", "cmd"))

// ParseConfig parses the node configuration from the defaults,
// the configuration file, the environment and the command line flags.
func ParseConfig() (*cfg.Config, error) {
	config := cfg.DefaultConfig()

	err := viper.Unmarshal(config)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.BasePath = utils.ExpandDir(config.BasePath)

	err = config.ValidateBasic()
	if err != nil {
		return nil, fmt.Errorf("error in config file: %w", err)
	}

	return config, nil
}

// NewRootCommand creates the root command
func NewRootCommand() (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   "conductor",
		Short: "conductor node command-line interface",
		Long: `conductor runs a node and orchestrates its subsystems.
Usage:
	conductor --chain dev
	conductor --chain ./spec.json --base-path ~/.conductor --mode passive
	conductor --ui --web-ui
	conductor account new --password-file ./password`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return execRoot()
		},
	}

	err := addRootFlags(cmd)
	if err != nil {
		return nil, err
	}

	return cmd, nil
}

// addRootFlags adds the root flags to the command
func addRootFlags(cmd *cobra.Command) error {
	defaults := cfg.DefaultConfig()

	groups := []struct {
		name     string
		bindings []flagBinding
	}{
		{"base", baseFlags(defaults)},
		{"log", logFlags(defaults.Log)},
		{"account", accountFlags(defaults.Account)},
		{"state", stateFlags(defaults.State)},
		{"network", networkFlags(defaults.Network)},
		{"rpc", rpcFlags(defaults)},
		{"ui", uiFlags(defaults.UI)},
		{"metrics", metricsFlags(defaults)},
		{"snapshot", snapshotFlags(defaults.Snapshot)},
	}

	for _, group := range groups {
		err := bindFlags(cmd, group.bindings)
		if err != nil {
			return fmt.Errorf("failed to add %s flags: %w", group.name, err)
		}
	}
	return nil
}

func baseFlags(defaults *cfg.Config) []flagBinding {
	return []flagBinding{
		{name: "name", key: "name", value: defaults.Name,
			usage: "Name of the node"},
		{name: "chain", key: "chain", value: defaults.Chain,
			usage: "Chain spec to load, either \"dev\" or the path of a JSON chain spec"},
		{name: BasePathFlag, key: BasePathFlag, value: defaults.BasePath,
			usage: "Base directory of the node data"},
		{name: "log", key: "log-level", value: defaults.LogLevel,
			usage: "Global log level. Supports levels crit (silent), eror, warn, info, dbug and trce"},
		{name: "pid-file", key: "pid-file", value: defaults.PidFile,
			usage: "Path of the pid file locked and written while the node runs"},
		{name: "shutdown-timeout", key: "shutdown-timeout", value: defaults.ShutdownTimeout,
			usage: "Time after which stopping a subsystem is abandoned, 0 to wait forever"},
		{name: "dev-block-time", key: "dev-block-time", value: defaults.DevBlockTime,
			usage: "Interval at which the dev chain authors blocks, 0 to disable"},
	}
}

func logFlags(defaults *cfg.LogConfig) []flagBinding {
	return []flagBinding{
		{name: "lstate", key: "log.state", value: defaults.State, usage: "State module log level"},
		{name: "lnetwork", key: "log.network", value: defaults.Network, usage: "Network module log level"},
		{name: "lsync", key: "log.sync", value: defaults.Sync, usage: "Sync module log level"},
		{name: "lrpc", key: "log.rpc", value: defaults.RPC, usage: "RPC module log level"},
		{name: "lkeystore", key: "log.keystore", value: defaults.Keystore, usage: "Keystore module log level"},
		{name: "log-ring-size", key: "log.ring-size", value: defaults.RingSize,
			usage: "Number of recent log lines served over RPC"},
	}
}

func accountFlags(defaults *cfg.AccountConfig) []flagBinding {
	return []flagBinding{
		{name: "unlock", key: "account.unlock", value: defaults.Unlock,
			usage: "Comma separated addresses of the accounts to unlock"},
		{name: "password", key: "account.password", value: defaults.PasswordFiles,
			usage: "Comma separated password files, each holding one password per line"},
	}
}

func stateFlags(defaults *cfg.StateConfig) []flagBinding {
	return []flagBinding{
		{name: "pruning", key: "state.pruning", value: defaults.Pruning,
			usage: "State pruning algorithm: auto, archive, fast, light or basic"},
		{name: "tracing", key: "state.tracing", value: defaults.Tracing,
			usage: "Transaction tracing: auto, on or off"},
		{name: "fat-db", key: "state.fat-db", value: defaults.FatDB,
			usage: "Fat database: auto, on or off"},
		{name: "mode", key: "state.mode", value: defaults.Mode,
			usage: "Operating mode: active, passive, dark or off. Empty to resume the last mode"},
		{name: "mode-timeout", key: "state.mode-timeout", value: defaults.ModeTimeout,
			usage: "Inactivity time before the passive and dark modes sleep"},
		{name: "mode-alarm", key: "state.mode-alarm", value: defaults.ModeAlarm,
			usage: "Interval at which the passive mode wakes up"},
		{name: "queue-size", key: "state.queue-size", value: defaults.QueueSize,
			usage: "Size of the block import queue, 0 for the default"},
		{name: "in-memory", key: "state.in-memory", value: defaults.InMemory,
			usage: "Keep the state database in memory"},
	}
}

func networkFlags(defaults *cfg.NetworkConfig) []flagBinding {
	return []flagBinding{
		{name: "port", key: "network.port", value: defaults.Port,
			usage: "Network port to use"},
		{name: "listen-address", key: "network.listen-address", value: defaults.ListenAddress,
			usage: "Network address to listen on"},
		{name: "bootnodes", key: "network.bootnodes", value: defaults.Bootnodes,
			usage: "Comma separated node URLs for network discovery bootstrap"},
		{name: "protocol-id", key: "network.protocol-id", value: defaults.ProtocolID,
			usage: "Protocol ID to use"},
		{name: "network-id", key: "network.network-id", value: defaults.NetworkID,
			usage: "Network ID to use instead of the one of the chain, 0 for the chain's"},
		{name: "no-bootstrap", key: "network.no-bootstrap", value: defaults.NoBootstrap,
			usage: "Disables network bootstrapping"},
	}
}

func rpcFlags(defaults *cfg.Config) []flagBinding {
	return []flagBinding{
		{name: "rpc", key: "rpc.enabled", value: defaults.RPC.Enabled,
			usage: "Enable the HTTP-RPC server"},
		{name: "rpc-external", key: "rpc.external", value: defaults.RPC.External,
			usage: "Enable external HTTP-RPC connections"},
		{name: "rpc-unsafe", key: "rpc.unsafe", value: defaults.RPC.Unsafe,
			usage: "Enable the HTTP-RPC server to unsafe procedures"},
		{name: "unsafe-rpc-external", key: "rpc.unsafe-external", value: defaults.RPC.UnsafeExternal,
			usage: "Enable external HTTP-RPC connections to unsafe procedures"},
		{name: "rpc-host", key: "rpc.host", value: defaults.RPC.Host,
			usage: "HTTP-RPC server listening hostname"},
		{name: "rpc-port", key: "rpc.port", value: defaults.RPC.Port,
			usage: "HTTP-RPC server listening port"},
		{name: "rpc-modules", key: "rpc.modules", value: defaults.RPC.Modules,
			usage: "API modules to enable via HTTP-RPC, comma separated list"},
		{name: "ipc", key: "ipc.enabled", value: defaults.IPC.Enabled,
			usage: "Enable the IPC-RPC server"},
		{name: "ipc-path", key: "ipc.path", value: defaults.IPC.Path,
			usage: "IPC socket path, defaults to " + cfg.DefaultIPCFile + " in the base path"},
		{name: "signer", key: "signer.enabled", value: defaults.Signer.Enabled,
			usage: "Enable the signer websocket server"},
		{name: "signer-host", key: "signer.host", value: defaults.Signer.Host,
			usage: "Signer server listening hostname"},
		{name: "signer-port", key: "signer.port", value: defaults.Signer.Port,
			usage: "Signer server listening port"},
	}
}

func uiFlags(defaults *cfg.UIConfig) []flagBinding {
	return []flagBinding{
		{name: "web-ui", key: "ui.enabled", value: defaults.Enabled,
			usage: "Enable the web UI server"},
		{name: "ui-host", key: "ui.host", value: defaults.Host,
			usage: "Web UI server listening hostname"},
		{name: "ui-port", key: "ui.port", value: defaults.Port,
			usage: "Web UI server listening port"},
		{name: "ui", key: "ui.launch", value: defaults.Launch,
			usage: "Open the web UI in the browser, reusing a running node if any"},
	}
}

func metricsFlags(defaults *cfg.Config) []flagBinding {
	return []flagBinding{
		{name: "metrics", key: "metrics.enabled", value: defaults.Metrics.Enabled,
			usage: "Enable the prometheus metrics server"},
		{name: "metrics-address", key: "metrics.address", value: defaults.Metrics.Address,
			usage: "Listen address of the metrics server"},
		{name: "pprof.enabled", key: "pprof.enabled", value: defaults.Pprof.Enabled,
			usage: "Enable the pprof server"},
		{name: "pprof.listening-address", key: "pprof.listening-address", value: defaults.Pprof.ListeningAddress,
			usage: "Address to listen on for pprof"},
		{name: "pprof.block-profile-rate", key: "pprof.block-profile-rate", value: defaults.Pprof.BlockProfileRate,
			usage: "The frequency at which the Go runtime samples the state of goroutines to generate block profile information."},
		{name: "pprof.mutex-profile-rate", key: "pprof.mutex-profile-rate", value: defaults.Pprof.MutexProfileRate,
			usage: "The frequency at which the Go runtime samples the state of mutexes to generate mutex profile information."},
	}
}

func snapshotFlags(defaults *cfg.SnapshotConfig) []flagBinding {
	return []flagBinding{
		{name: "no-periodic-snapshot", key: "snapshot.no-periodic", value: defaults.NoPeriodic,
			usage: "Disable the periodic snapshots"},
	}
}

// execRoot executes the root command
func execRoot() error {
	config, err := ParseConfig()
	if err != nil {
		return err
	}

	err = dot.Run(config)
	if err != nil {
		logger.Errorf("failed to run node: %s", err)
		return err
	}
	return nil
}
