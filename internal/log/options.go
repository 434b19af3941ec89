// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"io"
)

// Option is the type to specify settings modifier
// for the logger operation.
type Option func(s *settings)

// SetLevel sets the level for the logger.
// The level defaults to the lowest level, trce.
func SetLevel(level Level) Option {
	return func(s *settings) {
		s.level = &level
	}
}

// SetCaller enables or disables logging the caller
// file and line number. The default is disabled.
func SetCaller(enabled bool) Option {
	return func(s *settings) {
		s.caller = &enabled
	}
}

// SetColour enables or disables colouring the level
// of each log line. The default is disabled.
func SetColour(enabled bool) Option {
	return func(s *settings) {
		s.colour = &enabled
	}
}

// SetWriter set the writer for the logger.
// The writer defaults to os.Stdout.
func SetWriter(writer io.Writer) Option {
	return func(s *settings) {
		s.writer = writer
	}
}

// AddContext adds the context for the logger as a key values pair.
// It adds them in order. If a key already exists, the value is added to the
// existing values.
func AddContext(key, value string) Option {
	return func(s *settings) {
		for i := range s.context {
			if s.context[i].key == key {
				s.context[i].values = append(s.context[i].values, value)
				return
			}
		}
		newKV := contextKeyValues{key: key, values: []string{value}}
		s.context = append(s.context, newKV)
	}
}
