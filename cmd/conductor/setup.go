// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ChainSafe/conductor/cmd/conductor/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const configName = "config"

// configureCobraCmd reads the environment variables with the prefix given
// and the configuration file of the base path before any command runs.
func configureCobraCmd(cmd *cobra.Command, envPrefix string) {
	cobra.OnInitialize(func() { initEnv(envPrefix) })
	cmd.PersistentPreRunE = chainPreRuns(configureViper, cmd.PersistentPreRunE)
}

// initEnv binds the viper keys to the environment, so that
// CONDUCTOR_STATE_PRUNING sets the state.pruning key.
func initEnv(prefix string) {
	normalizeEnv(prefix, os.Environ())

	viper.SetEnvPrefix(prefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()
}

// normalizeEnv sets CONDUCTOR_X for every CONDUCTORX variable given,
// so both spellings are supported.
func normalizeEnv(prefix string, environ []string) {
	prefix = strings.ToUpper(prefix)
	separated := prefix + "_"
	for _, variable := range environ {
		key, value, ok := strings.Cut(variable, "=")
		if !ok || !strings.HasPrefix(key, prefix) || strings.HasPrefix(key, separated) {
			continue
		}
		_ = os.Setenv(separated+strings.TrimPrefix(key, prefix), value)
	}
}

type preRun func(cmd *cobra.Command, args []string) error

// chainPreRuns runs the non nil functions given in order,
// stopping at the first error.
func chainPreRuns(preRuns ...preRun) preRun {
	return func(cmd *cobra.Command, args []string) error {
		for _, f := range preRuns {
			if f == nil {
				continue
			}
			err := f(cmd, args)
			if err != nil {
				return err
			}
		}
		return nil
	}
}

// configureViper reads the optional configuration file found
// in the base path or in its config subdirectory.
func configureViper(_ *cobra.Command, _ []string) error {
	basePath := viper.GetString(commands.BasePathFlag)
	viper.SetConfigName(configName)
	viper.AddConfigPath(basePath)
	viper.AddConfigPath(filepath.Join(basePath, configName))

	err := viper.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err != nil && !errors.As(err, &notFound) {
		return fmt.Errorf("reading configuration file: %w", err)
	}
	return nil
}
