// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

// SystemInfo struct to hold system related information
type SystemInfo struct {
	NodeName      string `json:"nodeName"`
	Chain         string `json:"chain"`
	NetworkID     uint64 `json:"networkId"`
	SystemVersion string `json:"version"`
}
