// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package modules

import (
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"
)

// AccountResponse holds an account of the credential store
type AccountResponse struct {
	Address   string `json:"address"`
	PublicKey string `json:"publicKey"`
	Unlocked  bool   `json:"unlocked"`
}

// SignRequest holds the account and the hex encoded data to sign
type SignRequest struct {
	Address string `json:"address" validate:"required"`
	Data    string `json:"data" validate:"required"`
}

// AccountsModule is an RPC module for the credential store
type AccountsModule struct {
	accountsAPI AccountsAPI
}

// NewAccountsModule creates a new accounts module.
func NewAccountsModule(accountsAPI AccountsAPI) *AccountsModule {
	return &AccountsModule{accountsAPI: accountsAPI}
}

// List returns the accounts of the credential store.
func (am *AccountsModule) List(_ *http.Request, _ *EmptyRequest, res *[]AccountResponse) error {
	accounts := am.accountsAPI.Accounts()
	*res = make([]AccountResponse, len(accounts))
	for i, account := range accounts {
		(*res)[i] = AccountResponse{
			Address:   account.Address,
			PublicKey: account.PublicKey,
			Unlocked:  am.accountsAPI.IsUnlocked(account.Address),
		}
	}
	return nil
}

// Sign signs the data given with an unlocked account.
func (am *AccountsModule) Sign(_ *http.Request, req *SignRequest, res *StringResponse) error {
	signature, err := Sign(am.accountsAPI, req.Address, req.Data)
	if err != nil {
		return err
	}
	*res = StringResponse(signature)
	return nil
}

// Sign decodes the 0x prefixed hex data given, signs it with the
// account given and returns the 0x prefixed hex signature.
func Sign(accountsAPI AccountsAPI, address, data string) (signature string, err error) {
	msg, err := hex.DecodeString(strings.TrimPrefix(data, "0x"))
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidHexInput, err)
	}

	signed, err := accountsAPI.Sign(address, msg)
	if err != nil {
		return "", err
	}
	return "0x" + hex.EncodeToString(signed), nil
}
