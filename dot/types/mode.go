// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"errors"
	"fmt"
	"time"
)

// ErrModeNotValid is returned when parsing an unknown operating mode.
var ErrModeNotValid = errors.New("mode is not valid")

// ModeKind is the kind of operating mode of the node.
type ModeKind uint8

const (
	// ModeActive keeps the node always connected and syncing.
	ModeActive ModeKind = iota
	// ModePassive syncs periodically, waking up every alarm
	// and going back to sleep after timeout without requests.
	ModePassive
	// ModeDark syncs only when requests are made, going back
	// to sleep after timeout without requests.
	ModeDark
	// ModeOff never syncs.
	ModeOff
)

func (k ModeKind) String() string {
	switch k {
	case ModeActive:
		return "active"
	case ModePassive:
		return "passive"
	case ModeDark:
		return "dark"
	case ModeOff:
		return "off"
	default:
		return "unknown"
	}
}

// ParseModeKind parses an operating mode kind name.
func ParseModeKind(s string) (kind ModeKind, err error) {
	switch s {
	case "active":
		return ModeActive, nil
	case "passive":
		return ModePassive, nil
	case "dark":
		return ModeDark, nil
	case "off":
		return ModeOff, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrModeNotValid, s)
	}
}

// Mode is the operating mode of the node.
type Mode struct {
	Kind ModeKind
	// Timeout is used by the passive and dark modes.
	Timeout time.Duration
	// Alarm is used by the passive mode.
	Alarm time.Duration
}

// NewMode returns a mode of the given kind, keeping only the
// durations that kind uses.
func NewMode(kind ModeKind, timeout, alarm time.Duration) Mode {
	switch kind {
	case ModePassive:
		return Mode{Kind: kind, Timeout: timeout, Alarm: alarm}
	case ModeDark:
		return Mode{Kind: kind, Timeout: timeout}
	default:
		return Mode{Kind: kind}
	}
}

// NetworkEnabled returns true if the network should be started
// in this mode.
func (m Mode) NetworkEnabled() bool {
	return m.Kind == ModeActive || m.Kind == ModePassive
}

func (m Mode) String() string {
	switch m.Kind {
	case ModePassive:
		return fmt.Sprintf("passive (%s cycle, %s wakeups)", m.Timeout, m.Alarm)
	case ModeDark:
		return fmt.Sprintf("dark (%s cycle)", m.Timeout)
	default:
		return m.Kind.String()
	}
}
