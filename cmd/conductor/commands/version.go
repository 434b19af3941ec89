// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package commands

import (
	"fmt"

	cfg "github.com/ChainSafe/conductor/config"
	"github.com/spf13/cobra"
)

// VersionCmd is the command to print the version of the binary
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of the conductor binary",
	Long: `The version command prints the version of the conductor binary.
Usage:
	conductor version`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "conductor version %s\n", cfg.GetFullVersion())
	},
}
