// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"errors"
)

// ErrPidFileLocked is returned when another process holds the pid file.
var ErrPidFileLocked = errors.New("pid file is locked by another process")
