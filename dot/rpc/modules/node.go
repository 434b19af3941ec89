// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package modules

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ChainSafe/conductor/dot/snapshot"
	"github.com/ChainSafe/conductor/dot/state"
	"github.com/ChainSafe/conductor/dot/types"
)

// EmptyRequest represents an RPC request with no fields
type EmptyRequest struct{}

// StringResponse holds the string response
type StringResponse string

// NodeInfoResponse holds the node information
type NodeInfoResponse struct {
	Name      string `json:"name"`
	Chain     string `json:"chain"`
	NetworkID uint64 `json:"networkId"`
	Version   string `json:"version"`
	Genesis   string `json:"genesis"`
	Pruning   string `json:"pruning"`
}

// ModeResponse holds the operating mode, with durations in seconds.
type ModeResponse struct {
	Mode    string `json:"mode"`
	Timeout uint64 `json:"timeout,omitempty"`
	Alarm   uint64 `json:"alarm,omitempty"`
}

// SetModeRequest holds the operating mode to switch to, with
// durations in seconds.
type SetModeRequest struct {
	Mode    string `json:"mode" validate:"required,oneof=active passive dark off"`
	Timeout uint64 `json:"timeout"`
	Alarm   uint64 `json:"alarm"`
}

// TasksResponse holds the state of the periodic work of the node.
type TasksResponse struct {
	Accepting        bool            `json:"accepting"`
	SnapshotsEnabled bool            `json:"snapshotsEnabled"`
	Snapshots        *snapshot.Stats `json:"snapshots,omitempty"`
}

// SnapshotResponse holds the latest snapshot manifest, which is nil
// if no snapshot was taken yet.
type SnapshotResponse struct {
	Manifest *state.Manifest `json:"manifest"`
}

// NodeModule is an RPC module providing information on the node
// and control over its operating mode.
type NodeModule struct {
	info     types.SystemInfo
	stateAPI StateAPI
	tasksAPI TasksAPI
}

// NewNodeModule creates a new node module.
func NewNodeModule(info types.SystemInfo, stateAPI StateAPI, tasksAPI TasksAPI) *NodeModule {
	return &NodeModule{
		info:     info,
		stateAPI: stateAPI,
		tasksAPI: tasksAPI,
	}
}

// Version returns the version of the node.
func (nm *NodeModule) Version(_ *http.Request, _ *EmptyRequest, res *StringResponse) error {
	*res = StringResponse(nm.info.SystemVersion)
	return nil
}

// Info returns the node information.
func (nm *NodeModule) Info(_ *http.Request, _ *EmptyRequest, res *NodeInfoResponse) error {
	*res = NodeInfoResponse{
		Name:      nm.info.NodeName,
		Chain:     nm.info.Chain,
		NetworkID: nm.info.NetworkID,
		Version:   nm.info.SystemVersion,
		Genesis:   nm.stateAPI.GenesisHash().String(),
		Pruning:   nm.stateAPI.Pruning().String(),
	}
	return nil
}

// Mode returns the current operating mode.
func (nm *NodeModule) Mode(_ *http.Request, _ *EmptyRequest, res *ModeResponse) error {
	mode := nm.stateAPI.Mode()
	*res = ModeResponse{
		Mode:    mode.Kind.String(),
		Timeout: uint64(mode.Timeout / time.Second),
		Alarm:   uint64(mode.Alarm / time.Second),
	}
	return nil
}

// SetMode switches the operating mode of the node.
func (nm *NodeModule) SetMode(_ *http.Request, req *SetModeRequest, res *ModeResponse) error {
	kind, err := types.ParseModeKind(req.Mode)
	if err != nil {
		return err
	}

	mode := types.NewMode(kind,
		time.Duration(req.Timeout)*time.Second,
		time.Duration(req.Alarm)*time.Second)
	nm.stateAPI.SetMode(mode)

	return nm.Mode(nil, nil, res)
}

// Tasks returns the state of the periodic work of the node.
func (nm *NodeModule) Tasks(_ *http.Request, _ *EmptyRequest, res *TasksResponse) error {
	stats, enabled := nm.tasksAPI.Snapshots()
	*res = TasksResponse{
		Accepting:        nm.tasksAPI.Accepting(),
		SnapshotsEnabled: enabled,
	}
	if enabled {
		res.Snapshots = &stats
	}
	return nil
}

// LatestSnapshot returns the manifest of the latest snapshot taken.
func (nm *NodeModule) LatestSnapshot(_ *http.Request, _ *EmptyRequest, res *SnapshotResponse) error {
	manifest, err := nm.stateAPI.LatestSnapshot()
	switch {
	case errors.Is(err, state.ErrNoSnapshot), errors.Is(err, state.ErrSnapshotsDisabled):
		*res = SnapshotResponse{}
		return nil
	case err != nil:
		return fmt.Errorf("getting latest snapshot: %w", err)
	}
	*res = SnapshotResponse{Manifest: &manifest}
	return nil
}
