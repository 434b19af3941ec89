// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/ChainSafe/conductor/dot/types"
	"github.com/ChainSafe/conductor/internal/log"
	"github.com/ChainSafe/conductor/lib/common"
	"github.com/stretchr/testify/require"
)

var testGenesis = common.Hash{1, 2, 3}

func newTestService(t *testing.T, dir string) *Service {
	t.Helper()

	s := NewService(Config{
		Path:         filepath.Join(dir, "db"),
		SnapshotPath: filepath.Join(dir, "snapshot"),
		LogLevel:     log.Critical,
		Genesis:      testGenesis,
		Pruning:      types.Archive,
		Mode:         types.Mode{Kind: types.ModeActive},
	})
	err := s.Start()
	require.NoError(t, err)
	return s
}

func newChildBlock(t *testing.T, parent *types.Block) *types.Block {
	t.Helper()
	block, err := types.NewBlock(parent.Number+1, parent.Hash, time.Unix(int64(parent.Number+1), 0).UTC(), nil)
	require.NoError(t, err)
	return block
}

type recordingNotifier struct {
	name   string
	mutex  sync.Mutex
	calls  *[]string
	blocks []*types.Block
}

func (r *recordingNotifier) NewBlocks(imported []*types.Block) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.blocks = append(r.blocks, imported...)
	if r.calls != nil {
		*r.calls = append(*r.calls, r.name)
	}
}

func (r *recordingNotifier) count() int {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return len(r.blocks)
}

type modeRecorder struct {
	mutex sync.Mutex
	modes []types.Mode
}

func (m *modeRecorder) ModeChanged(mode types.Mode) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.modes = append(m.modes, mode)
}
