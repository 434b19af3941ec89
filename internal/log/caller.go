// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// callerDepth is the number of stack frames between the
// exported logging method and runtime.Caller.
const callerDepth = 3

func getCallerString() (s string) {
	_, file, line, ok := runtime.Caller(callerDepth)
	if !ok {
		return "???"
	}
	return fmt.Sprintf("%s:L%d", filepath.Base(file), line)
}
