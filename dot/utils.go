// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"fmt"

	"github.com/ChainSafe/conductor/config"
	"github.com/ChainSafe/conductor/dot/types"
	"github.com/ChainSafe/conductor/dot/userdefaults"
	"github.com/ChainSafe/conductor/internal/log"
)

// switchesFromConfig parses the database and mode switches of the state
// configuration given. The mode is nil if none was configured.
func switchesFromConfig(cfg *config.StateConfig) (switches userdefaults.Switches, err error) {
	switches.Pruning, err = types.ParsePruning(cfg.Pruning)
	if err != nil {
		return switches, fmt.Errorf("parsing pruning: %w", err)
	}

	switches.Tracing, err = types.ParseSwitch(cfg.Tracing)
	if err != nil {
		return switches, fmt.Errorf("parsing tracing: %w", err)
	}

	switches.FatDB, err = types.ParseSwitch(cfg.FatDB)
	if err != nil {
		return switches, fmt.Errorf("parsing fat database: %w", err)
	}

	if cfg.Mode != "" {
		kind, err := types.ParseModeKind(cfg.Mode)
		if err != nil {
			return switches, fmt.Errorf("parsing mode: %w", err)
		}
		mode := types.NewMode(kind, cfg.ModeTimeout, cfg.ModeAlarm)
		switches.Mode = &mode
	}

	return switches, nil
}

// databaseDescription returns the state database configuration,
// for example "archive +Fat +Trace".
func databaseDescription(resolved userdefaults.Resolved) string {
	description := resolved.Pruning.String()
	if resolved.FatDB {
		description += " +Fat"
	}
	if resolved.Tracing {
		description += " +Trace"
	}
	return description
}

func logResolved(version string, resolved userdefaults.Resolved) {
	logger.Infof("Starting conductor %s", version)
	logger.Infof("State DB configuration: %s", databaseDescription(resolved))
	logger.Infof("Operating mode: %s", resolved.Mode)
	if !resolved.Pruning.IsStable() {
		logger.Warnf("pruning algorithm %s is unstable, rerun with --pruning to change it", resolved.Pruning)
	}
}

// networkID returns the network id of the chain, unless the
// operator overrides it with a non zero id.
func networkID(override, chain uint64) uint64 {
	if override != 0 {
		return override
	}
	return chain
}

const subprotocolLength = 3

// chainProtocolID returns the network protocol id of the chain
// subprotocol name given, for example /conductor/cdr/0 for cdr.
// The name is ignored with a warning if it is not 3 bytes long.
func chainProtocolID(subprotocol string) (protocolID string) {
	if len(subprotocol) != subprotocolLength {
		logger.Warnf("chain subprotocol name %q is not %d bytes long, ignoring it",
			subprotocol, subprotocolLength)
		return ""
	}
	return "/conductor/" + subprotocol + "/0"
}

// subsystemLevel returns the log level of a subsystem, falling
// back to the global log level if it is empty or not valid.
func subsystemLevel(level, global string) log.Level {
	for _, s := range []string{level, global} {
		if s == "" {
			continue
		}
		parsed, err := log.ParseLevel(s)
		if err == nil {
			return parsed
		}
		logger.Warnf("ignoring log level: %s", err)
	}
	return log.Info
}
