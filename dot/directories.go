// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"encoding/hex"
	"path/filepath"

	"github.com/ChainSafe/conductor/config"
	"github.com/ChainSafe/conductor/dot/types"
	"github.com/ChainSafe/conductor/lib/common"
	"github.com/ChainSafe/conductor/lib/utils"
)

const (
	keysDir      = "keys"
	signerDir    = "signer"
	uiDir        = "ui"
	chainsDir    = "chains"
	databaseDir  = "db"
	networkDir   = "network"
	snapshotsDir = "snapshot"
)

// directories are the directories known before the chain spec is loaded.
type directories struct {
	base   string
	keys   string
	signer string
	ui     string
	chains string
}

func newDirectories(cfg *config.Config) directories {
	base := utils.ExpandDir(cfg.BasePath)
	return directories{
		base:   base,
		keys:   KeystoreDirectory(base),
		signer: filepath.Join(base, signerDir),
		ui:     filepath.Join(base, uiDir),
		chains: filepath.Join(base, chainsDir),
	}
}

// KeystoreDirectory returns the credential store directory of the base path given.
func KeystoreDirectory(basePath string) string {
	return filepath.Join(utils.ExpandDir(basePath), keysDir)
}

// toCreate returns the directories to create for the configuration given.
func (d directories) toCreate(cfg *config.Config) (paths []string) {
	paths = []string{d.base, d.keys, d.chains}
	if cfg.Signer.Enabled {
		paths = append(paths, d.signer)
	}
	if cfg.UI.Enabled {
		paths = append(paths, d.ui)
	}
	return paths
}

// databaseDirectories are the directories of one chain, keyed by its
// data directory name and its genesis fingerprint.
type databaseDirectories struct {
	// root holds every database of the genesis and the restart state.
	root     string
	snapshot string
	network  string
	ipc      string
}

func newDatabaseDirectories(dirs directories, cfg *config.Config,
	dataDir string, genesisHash common.Hash) databaseDirectories {
	chain := filepath.Join(dirs.chains, dataDir)
	root := filepath.Join(chain, databaseDir, hex.EncodeToString(genesisHash[:8]))

	ipc := cfg.IPC.Path
	if ipc == "" {
		ipc = filepath.Join(dirs.base, config.DefaultIPCFile)
	}

	return databaseDirectories{
		root:     root,
		snapshot: filepath.Join(root, snapshotsDir),
		network:  filepath.Join(chain, networkDir),
		ipc:      utils.ExpandDir(ipc),
	}
}

// clientPath returns the database path of the pruning algorithm given.
func (d databaseDirectories) clientPath(algorithm types.Algorithm) string {
	return filepath.Join(d.root, algorithm.String())
}
