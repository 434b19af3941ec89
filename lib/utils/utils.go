// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package utils

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/ChainSafe/chaindb"
	"github.com/adrg/xdg"
)

// PathExists returns true if the named file or directory exists, otherwise false
func PathExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil || !os.IsNotExist(err)
}

// HomeDir returns the user's current HOME directory
func HomeDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	if usr, err := user.Current(); err == nil {
		return usr.HomeDir
	}
	return ""
}

// ExpandDir expands a tilde prefix path to a full home path
func ExpandDir(targetPath string) string {
	if strings.HasPrefix(targetPath, "~\\") || strings.HasPrefix(targetPath, "~/") {
		if homeDir := HomeDir(); homeDir != "" {
			targetPath = homeDir + targetPath[1:]
		}
	} else if strings.HasPrefix(targetPath, ".\\") || strings.HasPrefix(targetPath, "./") {
		targetPath, _ = filepath.Abs(targetPath)
	}
	return filepath.Clean(os.ExpandEnv(targetPath))
}

// BasePath returns the data directory for the given name within the
// conductor directory of the user's XDG data directory.
func BasePath(name string) string {
	return filepath.Join(xdg.DataHome, "conductor", name)
}

// LoadChainDB opens or creates the badger database at the given path.
func LoadChainDB(dataDir string, inMemory bool) (*chaindb.BadgerDB, error) {
	return chaindb.NewBadgerDB(&chaindb.Config{
		DataDir:  dataDir,
		InMemory: inMemory,
	})
}
