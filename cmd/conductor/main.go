// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"fmt"
	"os"

	"github.com/ChainSafe/conductor/cmd/conductor/commands"
)

func main() {
	rootCmd, err := commands.NewRootCommand()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	rootCmd.AddCommand(commands.NewAccountCommand(), commands.VersionCmd)
	configureCobraCmd(rootCmd, "CONDUCTOR")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
