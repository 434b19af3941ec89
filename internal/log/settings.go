// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"io"
	"os"
)

type settings struct {
	writer  io.Writer
	level   *Level
	caller  *bool
	colour  *bool
	context []contextKeyValues
}

type contextKeyValues struct {
	key    string
	values []string
}

func newSettings(options []Option) (settings settings) {
	for _, option := range options {
		option(&settings)
	}
	return settings
}

// mergeWith sets values for each field not set in the
// receiving settings from the other settings given.
// Context key values are prepended with the other context.
func (s *settings) mergeWith(other settings) {
	if s.writer == nil {
		s.writer = other.writer
	}

	if s.level == nil && other.level != nil {
		value := *other.level
		s.level = &value
	}

	if s.caller == nil && other.caller != nil {
		value := *other.caller
		s.caller = &value
	}

	if s.colour == nil && other.colour != nil {
		value := *other.colour
		s.colour = &value
	}

	if len(other.context) > 0 {
		merged := make([]contextKeyValues, 0, len(other.context)+len(s.context))
		for _, kv := range other.context {
			merged = append(merged, contextKeyValues{
				key:    kv.key,
				values: append([]string(nil), kv.values...),
			})
		}
		s.context = append(merged, s.context...)
	}
}

// overrideWith sets every field set in the other settings
// onto the receiving settings.
func (s *settings) overrideWith(other settings) {
	if other.writer != nil {
		s.writer = other.writer
	}

	if other.level != nil {
		value := *other.level
		s.level = &value
	}

	if other.caller != nil {
		value := *other.caller
		s.caller = &value
	}

	if other.colour != nil {
		value := *other.colour
		s.colour = &value
	}

	for _, kv := range other.context {
		values := append([]string(nil), kv.values...)
		replaced := false
		for i := range s.context {
			if s.context[i].key == kv.key {
				s.context[i].values = values
				replaced = true
				break
			}
		}
		if !replaced {
			s.context = append(s.context, contextKeyValues{key: kv.key, values: values})
		}
	}
}

func (s *settings) setDefaults() {
	if s.writer == nil {
		s.writer = os.Stdout
	}

	if s.level == nil {
		value := Info
		s.level = &value
	}

	if s.caller == nil {
		value := false
		s.caller = &value
	}

	if s.colour == nil {
		value := false
		s.colour = &value
	}
}
