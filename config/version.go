// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"fmt"
	"runtime/debug"
)

// Sets the numeric conductor version here
const (
	VersionMajor = 0
	VersionMinor = 3
	VersionPatch = 0
	VersionMeta  = "unstable"
)

// GetFullVersion gets the release version in the format x.x.x-commithash
func GetFullVersion() string {
	return GetStableVersion() + "-" + getCommitHash()
}

// GetStableVersion gets the release version in the format x.x.x
func GetStableVersion() string {
	return fmt.Sprintf("%d.%d.%d",
		VersionMajor,
		VersionMinor,
		VersionPatch,
	)
}

// getCommitHash gets the latest commit hash of the build, falling
// back to the version meta outside of a version controlled build.
func getCommitHash() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" && setting.Value != "" {
				return setting.Value
			}
		}
	}
	return VersionMeta
}
