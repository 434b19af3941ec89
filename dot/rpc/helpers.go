// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package rpc

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/ChainSafe/conductor/dot/rpc/modules"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/rpc/v2"
	"github.com/jpillora/ipfilter"
)

var (
	errUnparsableIP            = errors.New("unable to parse IP")
	errExternalRequestRefused  = errors.New("external HTTP request refused")
	errUnsafeMethodUnreachable = errors.New("unsafe rpc method cannot be reachable")
)

// LocalhostFilter creates a ipfilter object for localhost
func LocalhostFilter() *ipfilter.IPFilter {
	return ipfilter.New(ipfilter.Options{
		BlockByDefault: true,
		AllowedIPs:     []string{"127.0.0.1", "::1"},
	})
}

// isLocal returns true if the remote address given is a localhost address.
func isLocal(remoteAddr string) (bool, error) {
	ip, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return false, errUnparsableIP
	}
	return LocalhostFilter().Allowed(ip), nil
}

// LocalRequestOnly HTTP handler to restrict to only local connections
func LocalRequestOnly(r *rpc.RequestInfo, _ interface{}) error {
	local, err := isLocal(r.Request.RemoteAddr)
	if err != nil {
		return err
	}
	if !local {
		return errExternalRequestRefused
	}
	return nil
}

func snakeCaseFormat(method string) (string, error) {
	parts := strings.Split(method, ".")
	if len(parts) < 2 {
		return "", fmt.Errorf("invalid rpc method format %s, should be 'module.FunctionName'", method)
	}

	service, funcName := parts[0], parts[1]
	funcName = strings.ToLower(string(funcName[0])) + funcName[1:]
	return strings.Join([]string{service, funcName}, "_"), nil
}

// accessPolicy defines which requests a transport accepts.
type accessPolicy struct {
	// local is true for transports reachable only from this host,
	// which then accept every request.
	local          bool
	external       bool
	unsafe         bool
	unsafeExternal bool
}

func (p accessPolicy) unsafeEnabled() bool {
	return p.local || p.unsafe || p.unsafeExternal
}

func (p accessPolicy) exposed() bool {
	return p.external || p.unsafeExternal
}

func rpcValidator(policy accessPolicy, validate *validator.Validate) func(r *rpc.RequestInfo, i interface{}) error {
	return func(r *rpc.RequestInfo, v interface{}) error {
		rpcmethod, err := snakeCaseFormat(r.Method)
		if err != nil {
			return err
		}

		isUnsafe := modules.IsUnsafe(rpcmethod)
		if isUnsafe && !policy.unsafeEnabled() {
			return fmt.Errorf("%w: %s", errUnsafeMethodUnreachable, rpcmethod)
		}

		if err = validate.Struct(v); err != nil {
			return err
		}

		if policy.local {
			return nil
		}

		if !policy.exposed() || isUnsafe && !policy.unsafeExternal {
			return LocalRequestOnly(r, v)
		}

		return nil
	}
}
