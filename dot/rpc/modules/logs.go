// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package modules

import (
	"net/http"
)

// LogsRequest holds the maximum number of lines to return,
// 0 meaning all the lines kept.
type LogsRequest struct {
	Limit int `json:"limit" validate:"gte=0"`
}

// LogsModule is an RPC module returning the recent log lines
type LogsModule struct {
	logsAPI LogsAPI
}

// NewLogsModule creates a new logs module.
func NewLogsModule(logsAPI LogsAPI) *LogsModule {
	return &LogsModule{logsAPI: logsAPI}
}

// Recent returns the most recent log lines, oldest first.
func (lm *LogsModule) Recent(_ *http.Request, req *LogsRequest, res *[]string) error {
	lines := lm.logsAPI.Lines()
	if req.Limit > 0 && len(lines) > req.Limit {
		lines = lines[len(lines)-req.Limit:]
	}
	if lines == nil {
		lines = []string{}
	}
	*res = lines
	return nil
}
