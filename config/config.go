// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/ChainSafe/conductor/chain/dev"
	"github.com/ChainSafe/conductor/dot/types"
	"github.com/ChainSafe/conductor/internal/log"
	"github.com/ChainSafe/conductor/lib/utils"
	"github.com/go-playground/validator/v10"
)

const (
	// DefaultLogLevel is the default log level
	DefaultLogLevel = "info"
	// DefaultPruning is the default pruning algorithm
	DefaultPruning = "auto"
	// DefaultSwitch is the default value of the tracing and fat-db switches
	DefaultSwitch = "auto"
	// DefaultModeTimeout is the default passive and dark mode timeout
	DefaultModeTimeout = 300 * time.Second
	// DefaultModeAlarm is the default passive mode alarm
	DefaultModeAlarm = time.Hour
	// DefaultDevBlockTime is the default block time of the dev chain
	DefaultDevBlockTime = 2 * time.Second

	// DefaultRPCPort is the default HTTP-RPC port
	DefaultRPCPort = uint32(8545)
	// DefaultSignerPort is the default signer websocket port
	DefaultSignerPort = uint32(8180)
	// DefaultUIPort is the default web UI port
	DefaultUIPort = uint32(8080)
	// DefaultMetricsAddress is the default metrics server address
	DefaultMetricsAddress = "localhost:9876"
	// DefaultPprofAddress is the default pprof server address
	DefaultPprofAddress = "localhost:6060"

	// DefaultIPCFile is the IPC socket file name in the base path
	DefaultIPCFile = "conductor.ipc"
)

// DefaultRPCModules the default RPC modules
var DefaultRPCModules = []string{"node", "sync", "net", "accounts", "logs"}

// Config defines the configuration for the conductor node
type Config struct {
	BaseConfig `mapstructure:",squash"`
	Log        *LogConfig      `mapstructure:"log"`
	Account    *AccountConfig  `mapstructure:"account"`
	State      *StateConfig    `mapstructure:"state"`
	Network    *NetworkConfig  `mapstructure:"network"`
	RPC        *RPCConfig      `mapstructure:"rpc"`
	IPC        *IPCConfig      `mapstructure:"ipc"`
	Signer     *SignerConfig   `mapstructure:"signer"`
	UI         *UIConfig       `mapstructure:"ui"`
	Metrics    *MetricsConfig  `mapstructure:"metrics"`
	Pprof      *PprofConfig    `mapstructure:"pprof"`
	Snapshot   *SnapshotConfig `mapstructure:"snapshot"`
}

// BaseConfig is to marshal/unmarshal toml global config vars
type BaseConfig struct {
	Name     string `mapstructure:"name" validate:"required"`
	Chain    string `mapstructure:"chain" validate:"required"`
	BasePath string `mapstructure:"base-path" validate:"required"`
	LogLevel string `mapstructure:"log-level" validate:"loglevel"`
	// PidFile is the daemon pid file path, empty to disable it.
	PidFile string `mapstructure:"pid-file"`
	// ShutdownTimeout bounds the time each subsystem has to stop,
	// 0 waits indefinitely.
	ShutdownTimeout time.Duration `mapstructure:"shutdown-timeout" validate:"gte=0"`
	// DevBlockTime is the block authoring interval on the dev chain,
	// 0 disables block authoring.
	DevBlockTime time.Duration `mapstructure:"dev-block-time" validate:"gte=0"`
}

// LogConfig represents the log levels for individual packages
type LogConfig struct {
	State    string `mapstructure:"state" validate:"omitempty,loglevel"`
	Network  string `mapstructure:"network" validate:"omitempty,loglevel"`
	Sync     string `mapstructure:"sync" validate:"omitempty,loglevel"`
	RPC      string `mapstructure:"rpc" validate:"omitempty,loglevel"`
	Keystore string `mapstructure:"keystore" validate:"omitempty,loglevel"`
	// RingSize is the number of recent log lines kept for the logs RPC module.
	RingSize int `mapstructure:"ring-size" validate:"gte=0"`
}

// AccountConfig is to marshal/unmarshal account config vars
type AccountConfig struct {
	// Unlock is the list of account addresses to unlock.
	Unlock []string `mapstructure:"unlock"`
	// PasswordFiles are files with one password per line.
	PasswordFiles []string `mapstructure:"password"`
}

// StateConfig is the database configuration
type StateConfig struct {
	Pruning     string        `mapstructure:"pruning" validate:"pruning"`
	Tracing     string        `mapstructure:"tracing" validate:"switch"`
	FatDB       string        `mapstructure:"fat-db" validate:"switch"`
	Mode        string        `mapstructure:"mode" validate:"omitempty,mode"`
	ModeTimeout time.Duration `mapstructure:"mode-timeout" validate:"gte=0"`
	ModeAlarm   time.Duration `mapstructure:"mode-alarm" validate:"gte=0"`
	QueueSize   int           `mapstructure:"queue-size" validate:"gte=0"`
	InMemory    bool          `mapstructure:"in-memory"`
}

// NetworkConfig is to marshal/unmarshal toml network config vars
type NetworkConfig struct {
	Port          uint16   `mapstructure:"port"`
	ListenAddress string   `mapstructure:"listen-address"`
	Bootnodes     []string `mapstructure:"bootnodes"`
	ProtocolID    string   `mapstructure:"protocol-id"`
	NetworkID     uint64   `mapstructure:"network-id"`
	NoBootstrap   bool     `mapstructure:"no-bootstrap"`
}

// RPCConfig is to marshal/unmarshal toml RPC config vars
type RPCConfig struct {
	Enabled        bool     `mapstructure:"enabled"`
	External       bool     `mapstructure:"external"`
	Unsafe         bool     `mapstructure:"unsafe"`
	UnsafeExternal bool     `mapstructure:"unsafe-external"`
	Host           string   `mapstructure:"host"`
	Port           uint32   `mapstructure:"port" validate:"lte=65535"`
	Modules        []string `mapstructure:"modules" validate:"dive,oneof=node sync net accounts logs"`
}

// IPCConfig is the configuration of the JSON-RPC unix socket
type IPCConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// Path overrides the socket path, which defaults to a file in the base path.
	Path string `mapstructure:"path"`
}

// SignerConfig is the configuration of the signer websocket
type SignerConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Host    string `mapstructure:"host"`
	Port    uint32 `mapstructure:"port" validate:"lte=65535"`
}

// UIConfig is the configuration of the web UI
type UIConfig struct {
	// Enabled enables the web UI transport.
	Enabled bool   `mapstructure:"enabled"`
	Host    string `mapstructure:"host"`
	Port    uint32 `mapstructure:"port" validate:"lte=65535"`
	// Launch opens the web UI in a browser once the node started.
	Launch bool `mapstructure:"launch"`
}

// MetricsConfig is the configuration of the prometheus server
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address"`
}

// PprofConfig is the configuration for the pprof HTTP server
type PprofConfig struct {
	Enabled          bool   `mapstructure:"enabled"`
	ListeningAddress string `mapstructure:"listening-address"`
	BlockProfileRate int    `mapstructure:"block-profile-rate"`
	MutexProfileRate int    `mapstructure:"mutex-profile-rate"`
}

// SnapshotConfig is the configuration of periodic snapshots
type SnapshotConfig struct {
	NoPeriodic bool `mapstructure:"no-periodic"`
}

// Address returns the HTTP-RPC listening address.
func (r *RPCConfig) Address() string {
	return joinHostPort(r.Host, r.Port)
}

// Address returns the signer listening address.
func (s *SignerConfig) Address() string {
	return joinHostPort(s.Host, s.Port)
}

// Address returns the web UI listening address.
func (u *UIConfig) Address() string {
	return joinHostPort(u.Host, u.Port)
}

// URL returns the web UI URL.
func (u *UIConfig) URL() string {
	return "http://" + u.Address() + "/"
}

func joinHostPort(host string, port uint32) string {
	return net.JoinHostPort(host, strconv.FormatUint(uint64(port), 10))
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		BaseConfig: BaseConfig{
			Name:         "conductor",
			Chain:        dev.ID,
			BasePath:     utils.BasePath(dev.ID),
			LogLevel:     DefaultLogLevel,
			DevBlockTime: DefaultDevBlockTime,
		},
		Log: &LogConfig{
			RingSize: 1000,
		},
		Account: &AccountConfig{},
		State: &StateConfig{
			Pruning:     DefaultPruning,
			Tracing:     DefaultSwitch,
			FatDB:       DefaultSwitch,
			ModeTimeout: DefaultModeTimeout,
			ModeAlarm:   DefaultModeAlarm,
		},
		Network: &NetworkConfig{
			Port: 30333,
		},
		RPC: &RPCConfig{
			Enabled: true,
			Host:    "localhost",
			Port:    DefaultRPCPort,
			Modules: append([]string(nil), DefaultRPCModules...),
		},
		IPC: &IPCConfig{
			Enabled: true,
		},
		Signer: &SignerConfig{
			Host: "localhost",
			Port: DefaultSignerPort,
		},
		UI: &UIConfig{
			Host: "localhost",
			Port: DefaultUIPort,
		},
		Metrics: &MetricsConfig{
			Address: DefaultMetricsAddress,
		},
		Pprof: &PprofConfig{
			ListeningAddress: DefaultPprofAddress,
			BlockProfileRate: 0,
			MutexProfileRate: 0,
		},
		Snapshot: &SnapshotConfig{},
	}
}

// ValidateBasic performs basic validation on the config
func (cfg *Config) ValidateBasic() error {
	validate := newValidator()
	err := validate.Struct(cfg)
	if err != nil {
		return fmt.Errorf("validating config: %w", err)
	}

	if cfg.RPC.Enabled && cfg.RPC.Port == 0 {
		return fmt.Errorf("rpc port cannot be 0 when rpc is enabled")
	}
	if cfg.Signer.Enabled && cfg.Signer.Port == 0 {
		return fmt.Errorf("signer port cannot be 0 when the signer is enabled")
	}
	return nil
}

func newValidator() *validator.Validate {
	validate := validator.New()
	mustRegister(validate, "loglevel", func(s string) error {
		_, err := log.ParseLevel(s)
		return err
	})
	mustRegister(validate, "pruning", func(s string) error {
		_, err := types.ParsePruning(s)
		return err
	})
	mustRegister(validate, "switch", func(s string) error {
		_, err := types.ParseSwitch(s)
		return err
	})
	mustRegister(validate, "mode", func(s string) error {
		_, err := types.ParseModeKind(s)
		return err
	})
	return validate
}

func mustRegister(validate *validator.Validate, tag string, parse func(s string) error) {
	err := validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return parse(fl.Field().String()) == nil
	})
	if err != nil {
		panic(err)
	}
}
