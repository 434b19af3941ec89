// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"github.com/ChainSafe/conductor/dot/deps"
	"github.com/ChainSafe/conductor/internal/metrics"
)

// nodeGauges returns the node gauges exported by the metrics server.
func nodeGauges(bundle *deps.Bundle) []metrics.Gauge {
	return []metrics.Gauge{
		{
			Subsystem: "chain",
			Name:      "best_block",
			Help:      "Number of the best block imported",
			Value: func() float64 {
				best := bundle.State().BestBlock()
				if best == nil {
					return 0
				}
				return float64(best.Number)
			},
		},
		{
			Subsystem: "import",
			Name:      "queue_size",
			Help:      "Number of blocks in the import queue",
			Value: func() float64 {
				return float64(bundle.State().QueueInfo().Total())
			},
		},
		{
			Subsystem: "network",
			Name:      "peers",
			Help:      "Number of connected peers",
			Value: func() float64 {
				return float64(bundle.Peers().PeerCount())
			},
		},
		{
			Subsystem: "node",
			Name:      "accepting",
			Help:      "1 while the node accepts new scheduled work",
			Value: func() float64 {
				if bundle.Tasks().Accepting() {
					return 1
				}
				return 0
			},
		},
		{
			Subsystem: "snapshot",
			Name:      "taken",
			Help:      "Number of snapshots taken",
			Value: func() float64 {
				stats, _ := bundle.Tasks().Snapshots()
				return float64(stats.Taken)
			},
		},
	}
}
