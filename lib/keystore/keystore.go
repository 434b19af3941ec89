// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package keystore

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/ChainSafe/conductor/internal/log"
	"github.com/ChainSafe/conductor/lib/common"
	"github.com/libp2p/go-libp2p/core/crypto"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "keystore"))

const keyFileExtension = ".key"

var (
	// ErrAccountNotFound is returned for an address with no key file.
	ErrAccountNotFound = errors.New("account not found")
	// ErrNoPassword is returned when none of the passwords given
	// decrypts the key of an account.
	ErrNoPassword = errors.New("no password found to unlock account")
	// ErrAccountLocked is returned when signing with a locked account.
	ErrAccountLocked = errors.New("account is locked")
	// ErrKeyFileNotValid is returned for a malformed key file.
	ErrKeyFileNotValid = errors.New("key file is not valid")
)

// Account is an account of the keystore.
type Account struct {
	Address   string `json:"address"`
	PublicKey string `json:"publicKey"`
	Path      string `json:"-"`
}

type keyFile struct {
	Address    string `json:"address"`
	PublicKey  string `json:"publicKey"`
	Type       string `json:"type"`
	Ciphertext string `json:"ciphertext"`
}

// Keystore holds the encrypted account keys of a directory and the
// keys of the accounts unlocked. It is safe for concurrent use.
type Keystore struct {
	dir string

	mutex    sync.RWMutex
	keys     map[string]keyFile
	paths    map[string]string
	unlocked map[string]crypto.PrivKey
}

// SetLogLevel sets the log level of the keystore package.
func SetLogLevel(level log.Level) {
	logger.Patch(log.SetLevel(level))
}

// Open loads the key files of the directory given.
func Open(dir string) (*Keystore, error) {
	ks := &Keystore{
		dir:      dir,
		keys:     make(map[string]keyFile),
		paths:    make(map[string]string),
		unlocked: make(map[string]crypto.PrivKey),
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading keystore directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != keyFileExtension {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		kf, err := readKeyFile(path)
		if err != nil {
			return nil, err
		}
		ks.keys[kf.Address] = kf
		ks.paths[kf.Address] = path
	}

	logger.Debugf("loaded %d accounts from %s", len(ks.keys), dir)
	return ks, nil
}

func readKeyFile(path string) (kf keyFile, err error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return kf, fmt.Errorf("reading key file: %w", err)
	}

	err = json.Unmarshal(data, &kf)
	if err != nil {
		return kf, fmt.Errorf("%w: %s: %s", ErrKeyFileNotValid, path, err)
	}

	if kf.Address == "" || kf.Ciphertext == "" {
		return kf, fmt.Errorf("%w: %s: missing fields", ErrKeyFileNotValid, path)
	}

	return kf, nil
}

func addressFromPublicKey(pub crypto.PubKey) (string, error) {
	raw, err := pub.Raw()
	if err != nil {
		return "", err
	}

	hash, err := common.Blake2bHash(raw)
	if err != nil {
		return "", err
	}

	const addressLength = 20
	return "0x" + hex.EncodeToString(hash[common.HashLength-addressLength:]), nil
}

// Generate creates a new account with its key encrypted with the
// password given and writes it to the keystore directory.
func (ks *Keystore) Generate(password []byte) (account Account, err error) {
	priv, pub, err := crypto.GenerateEd25519Key(rand.Reader)
	if err != nil {
		return account, fmt.Errorf("generating key: %w", err)
	}

	encoded, err := crypto.MarshalPrivateKey(priv)
	if err != nil {
		return account, fmt.Errorf("encoding key: %w", err)
	}

	ciphertext, err := Encrypt(encoded, password)
	if err != nil {
		return account, fmt.Errorf("encrypting key: %w", err)
	}

	address, err := addressFromPublicKey(pub)
	if err != nil {
		return account, fmt.Errorf("deriving address: %w", err)
	}

	rawPub, err := pub.Raw()
	if err != nil {
		return account, fmt.Errorf("encoding public key: %w", err)
	}

	kf := keyFile{
		Address:    address,
		PublicKey:  "0x" + hex.EncodeToString(rawPub),
		Type:       "ed25519",
		Ciphertext: hex.EncodeToString(ciphertext),
	}

	data, err := json.MarshalIndent(kf, "", "  ")
	if err != nil {
		return account, err
	}

	path := filepath.Join(ks.dir, strings.TrimPrefix(address, "0x")+keyFileExtension)
	const perms = 0600
	err = os.WriteFile(path, data, perms)
	if err != nil {
		return account, fmt.Errorf("writing key file: %w", err)
	}

	ks.mutex.Lock()
	ks.keys[address] = kf
	ks.paths[address] = path
	ks.mutex.Unlock()

	return Account{Address: address, PublicKey: kf.PublicKey, Path: path}, nil
}

// Accounts returns the accounts of the keystore sorted by address.
func (ks *Keystore) Accounts() (accounts []Account) {
	ks.mutex.RLock()
	defer ks.mutex.RUnlock()

	accounts = make([]Account, 0, len(ks.keys))
	for address, kf := range ks.keys {
		accounts = append(accounts, Account{
			Address:   address,
			PublicKey: kf.PublicKey,
			Path:      ks.paths[address],
		})
	}

	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].Address < accounts[j].Address
	})
	return accounts
}

// Unlock unlocks the account with the first password given
// decrypting its key.
func (ks *Keystore) Unlock(address string, passwords [][]byte) error {
	ks.mutex.Lock()
	defer ks.mutex.Unlock()

	kf, ok := ks.keys[address]
	if !ok {
		return fmt.Errorf("%w: %s", ErrAccountNotFound, address)
	}

	ciphertext, err := hex.DecodeString(kf.Ciphertext)
	if err != nil {
		return fmt.Errorf("%w: %s: %s", ErrKeyFileNotValid, address, err)
	}

	for _, password := range passwords {
		encoded, err := Decrypt(ciphertext, password)
		if err != nil {
			continue
		}

		priv, err := crypto.UnmarshalPrivateKey(encoded)
		if err != nil {
			return fmt.Errorf("%w: %s: %s", ErrKeyFileNotValid, address, err)
		}

		ks.unlocked[address] = priv
		logger.Infof("unlocked account %s", address)
		return nil
	}

	return fmt.Errorf("%w %s", ErrNoPassword, address)
}

// IsUnlocked returns true if the account is unlocked.
func (ks *Keystore) IsUnlocked(address string) bool {
	ks.mutex.RLock()
	defer ks.mutex.RUnlock()
	_, ok := ks.unlocked[address]
	return ok
}

// Sign signs the message with the key of the unlocked account given.
func (ks *Keystore) Sign(address string, msg []byte) ([]byte, error) {
	ks.mutex.RLock()
	priv, ok := ks.unlocked[address]
	ks.mutex.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAccountLocked, address)
	}
	return priv.Sign(msg)
}

// Stop locks all the unlocked accounts.
func (ks *Keystore) Stop() error {
	ks.mutex.Lock()
	defer ks.mutex.Unlock()
	ks.unlocked = make(map[string]crypto.PrivKey)
	return nil
}
