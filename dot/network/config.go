// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package network

import (
	"github.com/ChainSafe/conductor/internal/log"
)

const (
	// DefaultKeyFile the default value for KeyFile
	DefaultKeyFile = "node.key"

	// DefaultPort the default value for Config.Port
	DefaultPort = uint16(30333)

	// DefaultListenAddress the default value for Config.ListenAddress
	DefaultListenAddress = "0.0.0.0"

	// DefaultProtocolID the default value for Config.ProtocolID
	DefaultProtocolID = "/conductor/dev/0"
)

// Config is used to configure a network service
type Config struct {
	LogLvl log.Level

	// BasePath the directory holding the node key
	BasePath string
	// ListenAddress the IPv4 address to listen on
	ListenAddress string
	// Port the network port used for listening
	Port uint16
	// RandSeed the seed used to generate the network p2p identity (0 = non-deterministic random seed)
	RandSeed int64
	// Bootnodes the peer addresses used for bootstrapping
	Bootnodes []string
	// ProtocolID the protocol ID for network messages
	ProtocolID string
	// NoBootstrap disables bootstrapping
	NoBootstrap bool
}

func (c *Config) setDefaults() {
	if c.ListenAddress == "" {
		c.ListenAddress = DefaultListenAddress
	}
	if c.ProtocolID == "" {
		c.ProtocolID = DefaultProtocolID
	}
}
