// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package keystore

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PasswordsFromFiles reads the passwords of the files given,
// one password per line.
func PasswordsFromFiles(paths []string) (passwords [][]byte, err error) {
	for _, path := range paths {
		filePasswords, err := passwordsFromFile(path)
		if err != nil {
			return nil, err
		}
		passwords = append(passwords, filePasswords...)
	}
	return passwords, nil
}

func passwordsFromFile(path string) (passwords [][]byte, err error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("%s unable to read password file, "+
			"ensure it exists and permissions are correct: %w", path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		password := strings.TrimSpace(scanner.Text())
		passwords = append(passwords, []byte(password))
	}

	err = scanner.Err()
	if err != nil {
		return nil, fmt.Errorf("reading password file %s: %w", path, err)
	}

	return passwords, nil
}
