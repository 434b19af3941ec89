// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package userdefaults

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/conductor/dot/types"
)

var (
	// ErrTracingResyncRequired is returned when tracing is switched on
	// for a database created without it.
	ErrTracingResyncRequired = errors.New("tracing database resync required")
	// ErrFatDBResyncRequired is returned when the fat database is switched
	// on for a database created without it.
	ErrFatDBResyncRequired = errors.New("fat database resync required")
	// ErrFatDBNotArchive is returned when the fat database is enabled
	// with a pruning algorithm other than archive.
	ErrFatDBNotArchive = errors.New("fat database is not supported with the chosen pruning, rerun with --pruning=archive")
)

// Switches are the database and mode settings requested by the operator.
type Switches struct {
	Pruning types.Pruning
	Tracing types.Switch
	FatDB   types.Switch
	// Mode is nil when the operator did not request a mode.
	Mode *types.Mode
}

// Resolved are the settings the node runs with.
type Resolved struct {
	Pruning types.Algorithm
	Tracing bool
	FatDB   bool
	Mode    types.Mode
}

// Resolve resolves the switches given against the restart state.
func (d *Defaults) Resolve(switches Switches) (resolved Resolved, err error) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	resolved.Pruning = switches.Pruning.Resolve(d.pruning)

	resolved.Tracing, err = resolveSwitch(switches.Tracing, d.firstLaunch, d.tracing)
	if err != nil {
		return resolved, fmt.Errorf("%w: %s", ErrTracingResyncRequired, err)
	}

	resolved.FatDB, err = resolveSwitch(switches.FatDB, d.firstLaunch, d.fatDB)
	if err != nil {
		return resolved, fmt.Errorf("%w: %s", ErrFatDBResyncRequired, err)
	}
	if resolved.FatDB && resolved.Pruning != types.Archive {
		return resolved, fmt.Errorf("%w (pruning is %s)", ErrFatDBNotArchive, resolved.Pruning)
	}

	resolved.Mode = d.mode
	if switches.Mode != nil {
		resolved.Mode = *switches.Mode
	}

	return resolved, nil
}

var errSwitchedOn = errors.New("switched on but disabled in the existing database")

func resolveSwitch(value types.Switch, firstLaunch, stored bool) (bool, error) {
	switch value {
	case types.SwitchOn:
		if !firstLaunch && !stored {
			return false, errSwitchedOn
		}
		return true, nil
	case types.SwitchOff:
		return false, nil
	default:
		return stored, nil
	}
}
