// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package modules

import (
	"net/http"
)

// NetStatusResponse holds the network status
type NetStatusResponse struct {
	Listening bool     `json:"listening"`
	PeerCount int      `json:"peerCount"`
	Addresses []string `json:"addresses"`
}

// BoolResponse holds a boolean response
type BoolResponse bool

// NetModule is an RPC module to inspect and control the network
type NetModule struct {
	networkAPI NetworkAPI
	peersAPI   PeersAPI
}

// NewNetModule creates a new net module.
func NewNetModule(networkAPI NetworkAPI, peersAPI PeersAPI) *NetModule {
	return &NetModule{
		networkAPI: networkAPI,
		peersAPI:   peersAPI,
	}
}

// Status returns the network status.
func (nm *NetModule) Status(_ *http.Request, _ *EmptyRequest, res *NetStatusResponse) error {
	*res = NetStatusResponse{
		Listening: nm.networkAPI.NetworkRunning(),
		PeerCount: nm.peersAPI.PeerCount(),
		Addresses: nm.peersAPI.Addresses(),
	}
	if res.Addresses == nil {
		res.Addresses = []string{}
	}
	return nil
}

// PeerCount returns the number of connected peers.
func (nm *NetModule) PeerCount(_ *http.Request, _ *EmptyRequest, res *uint64) error {
	*res = uint64(nm.peersAPI.PeerCount())
	return nil
}

// Start starts the network.
func (nm *NetModule) Start(_ *http.Request, _ *EmptyRequest, res *BoolResponse) error {
	err := nm.networkAPI.StartNetwork()
	if err != nil {
		return err
	}
	*res = true
	return nil
}

// Stop stops the network.
func (nm *NetModule) Stop(_ *http.Request, _ *EmptyRequest, res *BoolResponse) error {
	err := nm.networkAPI.StopNetwork()
	if err != nil {
		return err
	}
	*res = true
	return nil
}
