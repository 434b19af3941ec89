// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"

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
	"github.com/gofrs/flock"
	"github.com/pkg/browser"
	"golang.org/x/term"
)

// nodeBuilder creates the subsystems of a node.
type nodeBuilder struct{}

// addressInUse returns true if nothing can listen on the tcp address given.
func (nodeBuilder) addressInUse(address string) bool {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return true
	}
	_ = listener.Close()
	return false
}

func (nodeBuilder) openURL(url string) error {
	return browser.OpenURL(url)
}

func (nodeBuilder) createDirectories(paths ...string) error {
	const perms = 0700
	for _, path := range paths {
		err := os.MkdirAll(path, perms)
		if err != nil {
			return fmt.Errorf("creating directory: %w", err)
		}
	}
	return nil
}

func (nodeBuilder) loadGenesis(chain string) (*genesis.Genesis, error) {
	return genesis.Load(chain)
}

// createPidFile locks the pid file given and writes the process id
// to it. The release function unlocks and removes the file.
func (nodeBuilder) createPidFile(path string) (release func() error, err error) {
	lock := flock.New(path)
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("locking pid file: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("%w: %s", ErrPidFileLocked, path)
	}

	const perms = 0600
	err = os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())+"\n"), perms)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("writing pid file: %w", err)
	}

	return func() error {
		err := lock.Unlock()
		if err != nil {
			return fmt.Errorf("unlocking pid file: %w", err)
		}
		err = os.Remove(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("removing pid file: %w", err)
		}
		return nil
	}, nil
}

// readPasswords reads the passwords from the files given. Without password
// files, it prompts for the password of each account to unlock if the
// standard input is a terminal.
func (nodeBuilder) readPasswords(files []string, unlock []string) (passwords [][]byte, err error) {
	if len(files) > 0 {
		return keystore.PasswordsFromFiles(files)
	}

	fd := int(os.Stdin.Fd())
	if len(unlock) == 0 || !term.IsTerminal(fd) {
		return nil, nil
	}

	for _, address := range unlock {
		fmt.Fprintf(os.Stderr, "Password for account %s: ", address)
		password, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return nil, fmt.Errorf("reading password: %w", err)
		}
		passwords = append(passwords, password)
	}
	return passwords, nil
}

func (nodeBuilder) createKeystore(dir string, unlock []string, passwords [][]byte,
	logLevel log.Level) (*keystore.Keystore, error) {
	keystore.SetLogLevel(logLevel)
	ks, err := keystore.Open(dir)
	if err != nil {
		return nil, err
	}

	for _, address := range unlock {
		err = ks.Unlock(address, passwords)
		if err != nil {
			return nil, fmt.Errorf("unlocking account: %w", err)
		}
	}
	return ks, nil
}

func (nodeBuilder) createStateService(cfg state.Config, hub *panics.Hub) (*state.Service, error) {
	stateSrvc := state.NewService(cfg)
	hub.RegisterSource("state", stateSrvc)

	err := stateSrvc.Start()
	if err != nil {
		return nil, fmt.Errorf("starting state service: %w", err)
	}
	return stateSrvc, nil
}

func (nodeBuilder) createNetworkService(cfg network.Config) (*network.Service, error) {
	return network.NewService(cfg)
}

func (nodeBuilder) createRPCService(cfg rpc.HTTPServerConfig) (service, error) {
	server := rpc.NewHTTPServer(cfg)
	return server, startService(server)
}

func (nodeBuilder) createIPCService(cfg rpc.IPCServerConfig) (service, error) {
	server := rpc.NewIPCServer(cfg)
	return server, startService(server)
}

func (nodeBuilder) createSignerService(cfg rpc.SignerConfig) (*rpc.SignerServer, error) {
	server, err := rpc.NewSignerServer(cfg)
	if err != nil {
		return nil, err
	}
	return server, startService(server)
}

func (nodeBuilder) createUIService(cfg ui.Config) (service, error) {
	server, err := ui.New(cfg)
	if err != nil {
		return nil, err
	}
	return server, startService(server)
}

func (nodeBuilder) createMetricsService(address string, gauges []metrics.Gauge) (service, error) {
	server, err := metrics.NewServer(address, gauges)
	if err != nil {
		return nil, err
	}
	return server, startService(server)
}

func (nodeBuilder) createPprofService(settings pprof.Settings) (service, error) {
	pprofLogger := log.NewFromGlobal(log.AddContext("pkg", "pprof"))
	server := pprof.NewService(settings, pprofLogger)
	return server, startService(server)
}

func startService(s service) error {
	err := s.Start()
	if err != nil {
		return fmt.Errorf("starting service: %w", err)
	}
	return nil
}
