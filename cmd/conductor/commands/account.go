// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package commands

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/ChainSafe/conductor/dot"
	"github.com/ChainSafe/conductor/lib/keystore"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	terminal "golang.org/x/term"
)

var (
	errPasswordsMismatch = errors.New("passwords do not match")
	errNoPasswordInput   = errors.New("no password file given and standard input is not a terminal")
	errEmptyPasswordFile = errors.New("password file is empty")
)

// NewAccountCommand creates the account command and its subcommands.
func NewAccountCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage the accounts of the keystore",
		Long: `The account command creates and lists the keystore accounts.
Usage:
	conductor account new --password-file ./password
	conductor account list --keystore-path ~/.conductor/keys`,
	}
	cmd.PersistentFlags().String("keystore-path", "",
		"Keystore directory, defaults to the keys directory of the base path")

	newCmd := &cobra.Command{
		Use:   "new",
		Short: "Create a new account",
		RunE:  execAccountNew,
	}
	newCmd.Flags().String("password-file", "",
		"File whose first line is the password encrypting the new key")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the accounts",
		RunE:  execAccountList,
	}

	cmd.AddCommand(newCmd, listCmd)
	return cmd
}

// openKeystore opens the keystore of the --keystore-path flag,
// creating its directory if needed.
func openKeystore(cmd *cobra.Command) (*keystore.Keystore, error) {
	dir, err := cmd.Flags().GetString("keystore-path")
	if err != nil {
		return nil, fmt.Errorf("failed to get --keystore-path: %w", err)
	}
	if dir == "" {
		dir = dot.KeystoreDirectory(viper.GetString(BasePathFlag))
	}

	const perms = 0700
	err = os.MkdirAll(dir, perms)
	if err != nil {
		return nil, fmt.Errorf("creating keystore directory: %w", err)
	}

	return keystore.Open(dir)
}

func execAccountNew(cmd *cobra.Command, _ []string) error {
	password, err := newAccountPassword(cmd)
	if err != nil {
		return err
	}

	ks, err := openKeystore(cmd)
	if err != nil {
		return err
	}

	account, err := ks.Generate(password)
	if err != nil {
		return fmt.Errorf("generating account: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), account.Address)
	return nil
}

func execAccountList(cmd *cobra.Command, _ []string) error {
	ks, err := openKeystore(cmd)
	if err != nil {
		return err
	}

	for i, account := range ks.Accounts() {
		fmt.Fprintf(cmd.OutOrStdout(), "#%d: %s\n", i, account.Address)
	}
	return nil
}

// newAccountPassword reads the password of a new account from the
// --password-file flag or prompts for it twice on the terminal.
func newAccountPassword(cmd *cobra.Command) (password []byte, err error) {
	passwordFile, err := cmd.Flags().GetString("password-file")
	if err != nil {
		return nil, fmt.Errorf("failed to get --password-file: %w", err)
	}

	if passwordFile != "" {
		passwords, err := keystore.PasswordsFromFiles([]string{passwordFile})
		if err != nil {
			return nil, err
		}
		if len(passwords) == 0 {
			return nil, fmt.Errorf("%w: %s", errEmptyPasswordFile, passwordFile)
		}
		return passwords[0], nil
	}

	fd := int(os.Stdin.Fd())
	if !terminal.IsTerminal(fd) {
		return nil, errNoPasswordInput
	}

	fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
	password, err = terminal.ReadPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("reading password: %w", err)
	}

	fmt.Fprint(cmd.ErrOrStderr(), "Repeat password: ")
	confirmation, err := terminal.ReadPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("reading password: %w", err)
	}

	if !bytes.Equal(password, confirmation) {
		return nil, errPasswordsMismatch
	}
	return password, nil
}
