// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package network

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ChainSafe/conductor/internal/log"
	"github.com/libp2p/go-libp2p"
	"github.com/libp2p/go-libp2p/core/crypto"
	libp2phost "github.com/libp2p/go-libp2p/core/host"
	"github.com/libp2p/go-libp2p/core/peer"
	ma "github.com/multiformats/go-multiaddr"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "network"))

const connectTimeout = 10 * time.Second

// Service manages the libp2p host of the node. It can be started
// and stopped several times, following the operating mode.
type Service struct {
	cfg        Config
	privateKey crypto.PrivKey
	bootnodes  []peer.AddrInfo

	mutex  sync.Mutex
	host   libp2phost.Host
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewService loads or generates the node key and parses the bootnodes.
func NewService(cfg Config) (*Service, error) {
	logger.Patch(log.SetLevel(cfg.LogLvl))
	cfg.setDefaults()

	key, err := loadKey(cfg.BasePath)
	if err != nil {
		return nil, fmt.Errorf("loading node key: %w", err)
	}
	if key == nil {
		key, err = generateKey(cfg.RandSeed, cfg.BasePath)
		if err != nil {
			return nil, fmt.Errorf("generating node key: %w", err)
		}
	}

	bootnodes, err := stringsToAddrInfos(cfg.Bootnodes)
	if err != nil {
		return nil, fmt.Errorf("parsing bootnodes: %w", err)
	}

	return &Service{
		cfg:        cfg,
		privateKey: key,
		bootnodes:  bootnodes,
	}, nil
}

// ID returns the peer id of the node.
func (s *Service) ID() peer.ID {
	id, _ := peer.IDFromPrivateKey(s.privateKey)
	return id
}

// Start starts the libp2p host and connects to the bootnodes.
// It is a no-op if the host is already running.
func (s *Service) Start() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.host != nil {
		return nil
	}

	addr, err := ma.NewMultiaddr(fmt.Sprintf("/ip4/%s/tcp/%d", s.cfg.ListenAddress, s.cfg.Port))
	if err != nil {
		return err
	}

	host, err := libp2p.New(
		libp2p.ListenAddrs(addr),
		libp2p.Identity(s.privateKey),
		libp2p.DisableRelay(),
	)
	if err != nil {
		return fmt.Errorf("creating libp2p host: %w", err)
	}
	s.host = host

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	for _, addr := range host.Addrs() {
		logger.Infof("listening on %s/p2p/%s", addr, host.ID())
	}

	if !s.cfg.NoBootstrap {
		s.wg.Add(1)
		go s.bootstrap(ctx, host)
	}

	return nil
}

func (s *Service) bootstrap(ctx context.Context, host libp2phost.Host) {
	defer s.wg.Done()

	for _, bootnode := range s.bootnodes {
		connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
		err := host.Connect(connectCtx, bootnode)
		cancel()
		if err != nil {
			logger.Debugf("failed to connect to bootnode %s: %s", bootnode.ID, err)
			continue
		}
		logger.Debugf("connected to bootnode %s", bootnode.ID)
	}
}

// Stop stops the libp2p host. It is a no-op if the host is not running.
func (s *Service) Stop() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.host == nil {
		return nil
	}

	s.cancel()
	s.wg.Wait()

	err := s.host.Close()
	s.host = nil
	if err != nil {
		return fmt.Errorf("closing libp2p host: %w", err)
	}
	return nil
}

// IsRunning returns true if the libp2p host is running.
func (s *Service) IsRunning() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.host != nil
}

// PeerCount returns the number of peers connected.
func (s *Service) PeerCount() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.host == nil {
		return 0
	}
	return len(s.host.Network().Peers())
}

// Addresses returns the multiaddresses the host listens on,
// including the peer id. It is empty when the host is not running.
func (s *Service) Addresses() (addresses []string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.host == nil {
		return nil
	}

	for _, addr := range s.host.Addrs() {
		addresses = append(addresses, fmt.Sprintf("%s/p2p/%s", addr, s.host.ID()))
	}
	return addresses
}
