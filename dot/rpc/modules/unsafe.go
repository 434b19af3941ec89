// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package modules

// UnsafeMethods is a list of all unsafe rpc methods.
var UnsafeMethods = []string{
	"node_setMode",
	"net_start",
	"net_stop",
	"accounts_sign",
}

// IsUnsafe returns true if the method name given is an unsafe method.
func IsUnsafe(name string) bool {
	for _, unsafe := range UnsafeMethods {
		if name == unsafe {
			return true
		}
	}
	return false
}
