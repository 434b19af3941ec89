// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"errors"
	"fmt"
)

// ErrSwitchNotValid is returned when parsing an unknown switch value.
var ErrSwitchNotValid = errors.New("switch value is not valid")

// Switch is a tri-state database feature switch.
type Switch uint8

const (
	// SwitchAuto uses the value of the previous run.
	SwitchAuto Switch = iota
	// SwitchOn enables the feature.
	SwitchOn
	// SwitchOff disables the feature.
	SwitchOff
)

func (s Switch) String() string {
	switch s {
	case SwitchAuto:
		return "auto"
	case SwitchOn:
		return "on"
	case SwitchOff:
		return "off"
	default:
		return "unknown"
	}
}

// ParseSwitch parses a switch value.
func ParseSwitch(s string) (value Switch, err error) {
	switch s {
	case "auto":
		return SwitchAuto, nil
	case "on":
		return SwitchOn, nil
	case "off":
		return SwitchOff, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrSwitchNotValid, s)
	}
}
