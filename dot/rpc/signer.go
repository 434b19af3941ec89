// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package rpc

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ChainSafe/conductor/dot/rpc/modules"
	"github.com/ChainSafe/conductor/internal/httpserver"
	"github.com/ChainSafe/conductor/internal/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// AuthCodesFilename is the name of the file the signer tokens
// are written to, in the signer directory.
const AuthCodesFilename = "authcodes"

// JSON-RPC 2.0 error codes used by the signer.
const (
	invalidRequestCode = -32600
	methodNotFoundCode = -32601
	invalidParamsCode  = -32602
	serverErrorCode    = -32000
)

// SignerConfig configures the SignerServer
type SignerConfig struct {
	LogLvl      log.Level
	Address     string
	Dir         string
	AccountsAPI modules.AccountsAPI
}

// SignerServer serves the signer websocket. Each connection must
// present the token written to the signer directory.
type SignerServer struct {
	token       string
	tokenPath   string
	accountsAPI modules.AccountsAPI
	upgrader    websocket.Upgrader
	server      *httpserver.Server
	service     *httpserver.Service

	mutex sync.Mutex
	conns map[*websocket.Conn]struct{}
}

// NewSignerServer creates a signer server and writes its new token
// to the authcodes file of the signer directory.
func NewSignerServer(cfg SignerConfig) (*SignerServer, error) {
	logger.Patch(log.SetLevel(cfg.LogLvl))

	s := &SignerServer{
		token:       uuid.NewString(),
		tokenPath:   filepath.Join(cfg.Dir, AuthCodesFilename),
		accountsAPI: cfg.AccountsAPI,
		conns:       make(map[*websocket.Conn]struct{}),
	}
	s.upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			local, err := isLocal(r.RemoteAddr)
			if err != nil {
				logger.Debugf("signer: %s", err)
				return false
			}
			return local
		},
	}

	err := writeAuthCode(s.tokenPath, s.token)
	if err != nil {
		return nil, err
	}

	s.server = httpserver.New("signer", cfg.Address, s, logger)
	s.service = httpserver.NewService(s.server)
	return s, nil
}

func writeAuthCode(path, token string) error {
	const perm = 0o600
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, perm)
	if err != nil {
		return fmt.Errorf("opening signer authcodes file: %w", err)
	}

	_, err = fmt.Fprintf(file, "%s;%d\n", token, time.Now().Unix())
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("writing signer token: %w", err)
	}

	return file.Close()
}

// Token returns the token connections must present.
func (s *SignerServer) Token() string { return s.token }

// TokenPath returns the path of the authcodes file.
func (s *SignerServer) TokenPath() string { return s.tokenPath }

// Start starts the signer server.
func (s *SignerServer) Start() error {
	return s.service.Start()
}

func (s *SignerServer) SetFailureHandler(handler func(err error)) {
	s.service.SetFailureHandler(handler)
}

// Stop closes the open connections and stops the signer server.
func (s *SignerServer) Stop() error {
	s.mutex.Lock()
	for conn := range s.conns {
		err := conn.Close()
		if err != nil {
			logger.Debugf("closing signer connection: %s", err)
		}
	}
	s.conns = make(map[*websocket.Conn]struct{})
	s.mutex.Unlock()

	return s.service.Stop()
}

// Address returns the address the server listens on.
// It blocks until the server is started.
func (s *SignerServer) Address() string {
	return s.server.GetAddress()
}

// ServeHTTP upgrades authenticated requests to a websocket connection.
func (s *SignerServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if subtle.ConstantTimeCompare([]byte(token), []byte(s.token)) != 1 {
		http.Error(w, "invalid signer token", http.StatusForbidden)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Debugf("signer websocket upgrade failed: %s", err)
		return
	}

	s.mutex.Lock()
	s.conns[conn] = struct{}{}
	s.mutex.Unlock()

	defer func() {
		s.mutex.Lock()
		delete(s.conns, conn)
		s.mutex.Unlock()
		_ = conn.Close()
	}()

	s.handleConn(conn)
}

type signerRequest struct {
	ID     *json.RawMessage  `json:"id"`
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

type signerError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type signerResponse struct {
	Version string           `json:"jsonrpc"`
	Result  interface{}      `json:"result,omitempty"`
	Error   *signerError     `json:"error,omitempty"`
	ID      *json.RawMessage `json:"id"`
}

var errSignerParams = errors.New("expected parameters [address, data]")

func (s *SignerServer) handleConn(conn *websocket.Conn) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			logger.Debugf("signer websocket failed to read message: %s", err)
			return
		}

		response := s.handle(data)
		err = conn.WriteJSON(response)
		if err != nil {
			logger.Debugf("signer websocket failed to write message: %s", err)
			return
		}
	}
}

func (s *SignerServer) handle(data []byte) (response signerResponse) {
	response.Version = "2.0"

	var request signerRequest
	err := json.Unmarshal(data, &request)
	if err != nil || request.Method == "" {
		response.Error = &signerError{Code: invalidRequestCode, Message: "Invalid request"}
		return response
	}
	response.ID = request.ID

	logger.Debugf("signer method %s called", request.Method)

	switch request.Method {
	case "signer_accounts":
		var accounts []modules.AccountResponse
		err = modules.NewAccountsModule(s.accountsAPI).List(nil, nil, &accounts)
		if err != nil {
			response.Error = &signerError{Code: serverErrorCode, Message: err.Error()}
			return response
		}
		response.Result = accounts
	case "signer_sign":
		var address, message string
		if len(request.Params) != 2 ||
			json.Unmarshal(request.Params[0], &address) != nil ||
			json.Unmarshal(request.Params[1], &message) != nil {
			response.Error = &signerError{Code: invalidParamsCode, Message: errSignerParams.Error()}
			return response
		}

		signature, err := modules.Sign(s.accountsAPI, address, message)
		if err != nil {
			response.Error = &signerError{Code: serverErrorCode, Message: err.Error()}
			return response
		}
		response.Result = signature
	default:
		response.Error = &signerError{
			Code:    methodNotFoundCode,
			Message: fmt.Sprintf("method %s not found", request.Method),
		}
	}

	return response
}
