// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package deps assembles the dependencies shared by the request-serving
// transports of a running node.
package deps

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/conductor/dot/snapshot"
	"github.com/ChainSafe/conductor/dot/state"
	dotsync "github.com/ChainSafe/conductor/dot/sync"
	"github.com/ChainSafe/conductor/dot/types"
	"github.com/ChainSafe/conductor/internal/log"
	"github.com/ChainSafe/conductor/internal/panics"
	"github.com/ChainSafe/conductor/lib/common"
	"github.com/ChainSafe/conductor/lib/keystore"
)

var (
	// ErrUIWithoutWebUI is returned when the UI is requested while
	// the web UI transport is disabled.
	ErrUIWithoutWebUI = errors.New("cannot open the UI with the web UI transport disabled")
	// ErrMissingInput is returned when a required input is nil.
	ErrMissingInput = errors.New("missing input")
)

// StateAccessor gives access to the storage engine.
type StateAccessor interface {
	BestBlock() *types.Block
	QueueInfo() types.QueueInfo
	Mode() types.Mode
	SetMode(mode types.Mode)
	GenesisHash() common.Hash
	Pruning() types.Algorithm
	LatestSnapshot() (state.Manifest, error)
}

// Peers gives information on the network peers.
type Peers interface {
	PeerCount() int
	Addresses() []string
}

// Accounts gives access to the credential store.
type Accounts interface {
	Accounts() []keystore.Account
	IsUnlocked(address string) bool
	Sign(address string, msg []byte) ([]byte, error)
}

// SnapshotStats provides the statistics of the snapshot watcher.
type SnapshotStats interface {
	Stats() snapshot.Stats
}

// Acceptor tells if the node accepts new scheduled work.
type Acceptor interface {
	Accepting() bool
}

// Settings are the process wide settings.
type Settings struct {
	types.SystemInfo
	// WebUIURL is the URL of the web UI, empty if disabled.
	WebUIURL string `json:"webUIURL,omitempty"`
	// SignerTokenPath is the path of the signer token file,
	// empty if the signer is disabled.
	SignerTokenPath string `json:"-"`
	// IPCPath is the path of the IPC socket, empty if disabled.
	IPCPath string `json:"ipcPath,omitempty"`
}

// Inputs are the inputs to assemble a Bundle from.
type Inputs struct {
	State    StateAccessor
	Sync     dotsync.StatusProvider
	Network  dotsync.NetworkController
	Peers    Peers
	Accounts Accounts
	// Snapshots is nil if periodic snapshots are disabled.
	Snapshots SnapshotStats
	Acceptor  Acceptor
	Logs      *log.Ring
	Hub       *panics.Hub
	Settings  Settings

	UILaunch     bool
	WebUIEnabled bool
}

// Bundle holds the dependencies of the transports. It is built once
// per run and never modified.
type Bundle struct {
	state    StateAccessor
	sync     dotsync.StatusProvider
	network  dotsync.NetworkController
	peers    Peers
	accounts Accounts
	tasks    *Tasks
	logs     *log.Ring
	hub      *panics.Hub
	settings Settings
}

// Assemble checks the inputs are consistent and builds the bundle.
func Assemble(in Inputs) (*Bundle, error) {
	if in.UILaunch && !in.WebUIEnabled {
		return nil, ErrUIWithoutWebUI
	}

	required := []struct {
		name  string
		isNil bool
	}{
		{"state", in.State == nil},
		{"sync status", in.Sync == nil},
		{"network controller", in.Network == nil},
		{"peers", in.Peers == nil},
		{"accounts", in.Accounts == nil},
		{"acceptor", in.Acceptor == nil},
		{"log ring", in.Logs == nil},
		{"failure hub", in.Hub == nil},
	}
	for _, input := range required {
		if input.isNil {
			return nil, fmt.Errorf("%w: %s", ErrMissingInput, input.name)
		}
	}

	return &Bundle{
		state:    in.State,
		sync:     in.Sync,
		network:  in.Network,
		peers:    in.Peers,
		accounts: in.Accounts,
		tasks: &Tasks{
			snapshots: in.Snapshots,
			acceptor:  in.Acceptor,
		},
		logs:     in.Logs,
		hub:      in.Hub,
		settings: in.Settings,
	}, nil
}

// State returns the storage engine accessor.
func (b *Bundle) State() StateAccessor { return b.state }

// Sync returns the sync status provider.
func (b *Bundle) Sync() dotsync.StatusProvider { return b.sync }

// Network returns the network controller.
func (b *Bundle) Network() dotsync.NetworkController { return b.network }

// Peers returns the network peers information.
func (b *Bundle) Peers() Peers { return b.peers }

// Accounts returns the credential store.
func (b *Bundle) Accounts() Accounts { return b.accounts }

// Tasks returns the task controller.
func (b *Bundle) Tasks() *Tasks { return b.tasks }

// Logs returns the recent log lines sink.
func (b *Bundle) Logs() *log.Ring { return b.logs }

// Hub returns the failure hub.
func (b *Bundle) Hub() *panics.Hub { return b.hub }

// Settings returns the process wide settings.
func (b *Bundle) Settings() Settings { return b.settings }

// Tasks gives information on the periodic work of the node.
type Tasks struct {
	snapshots SnapshotStats
	acceptor  Acceptor
}

// Snapshots returns the snapshot watcher statistics, and false
// if periodic snapshots are disabled.
func (t *Tasks) Snapshots() (stats snapshot.Stats, enabled bool) {
	if t.snapshots == nil {
		return stats, false
	}
	return t.snapshots.Stats(), true
}

// Accepting returns true if the node accepts new scheduled work.
func (t *Tasks) Accepting() bool {
	return t.acceptor.Accepting()
}
