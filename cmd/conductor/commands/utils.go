// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var errFlagTypeNotSupported = errors.New("flag type not supported")

// flagBinding is a persistent flag bound to a viper key.
// The type of its default value picks the flag type.
type flagBinding struct {
	name  string
	key   string
	value any
	usage string
}

// bindFlags adds the flags given to the command and binds each to its viper key.
func bindFlags(cmd *cobra.Command, bindings []flagBinding) error {
	flags := cmd.PersistentFlags()
	for _, b := range bindings {
		switch value := b.value.(type) {
		case string:
			flags.String(b.name, value, b.usage)
		case bool:
			flags.Bool(b.name, value, b.usage)
		case int:
			flags.Int(b.name, value, b.usage)
		case uint16:
			flags.Uint16(b.name, value, b.usage)
		case uint32:
			flags.Uint32(b.name, value, b.usage)
		case uint64:
			flags.Uint64(b.name, value, b.usage)
		case time.Duration:
			flags.Duration(b.name, value, b.usage)
		case []string:
			flags.StringSlice(b.name, value, b.usage)
		default:
			return fmt.Errorf("%w: %T for --%s", errFlagTypeNotSupported, value, b.name)
		}

		err := viper.BindPFlag(b.key, flags.Lookup(b.name))
		if err != nil {
			return fmt.Errorf("binding --%s: %w", b.name, err)
		}
	}
	return nil
}
