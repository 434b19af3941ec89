// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package rpc

import (
	"net/http"

	"github.com/ChainSafe/conductor/dot/deps"
	"github.com/ChainSafe/conductor/dot/rpc/modules"
	"github.com/ChainSafe/conductor/dot/types"
	"github.com/ChainSafe/conductor/internal/httpserver"
	"github.com/ChainSafe/conductor/internal/log"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/gorilla/rpc/v2"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "rpc"))

// APIs are the node APIs served by the rpc modules.
type APIs struct {
	SystemInfo  types.SystemInfo
	StateAPI    modules.StateAPI
	TasksAPI    modules.TasksAPI
	SyncAPI     modules.SyncAPI
	NetworkAPI  modules.NetworkAPI
	PeersAPI    modules.PeersAPI
	AccountsAPI modules.AccountsAPI
	LogsAPI     modules.LogsAPI
}

// NewAPIs returns the APIs from the dependency bundle given.
func NewAPIs(bundle *deps.Bundle) APIs {
	return APIs{
		SystemInfo:  bundle.Settings().SystemInfo,
		StateAPI:    bundle.State(),
		TasksAPI:    bundle.Tasks(),
		SyncAPI:     bundle.Sync(),
		NetworkAPI:  bundle.Network(),
		PeersAPI:    bundle.Peers(),
		AccountsAPI: bundle.Accounts(),
		LogsAPI:     bundle.Logs(),
	}
}

// HTTPServerConfig configures the HTTPServer
type HTTPServerConfig struct {
	LogLvl         log.Level
	Address        string
	External       bool
	Unsafe         bool
	UnsafeExternal bool
	Modules        []string
	APIs           APIs
}

// IPCServerConfig configures the IPC server
type IPCServerConfig struct {
	LogLvl  log.Level
	Path    string
	Modules []string
	APIs    APIs
}

// HTTPServer gateway for RPC server
type HTTPServer struct {
	name      string
	rpcServer *rpc.Server
	router    *mux.Router
	server    *httpserver.Server
	service   *httpserver.Service
}

// NewHTTPServer creates a new http server and registers an associated rpc server
func NewHTTPServer(cfg HTTPServerConfig) *HTTPServer {
	logger.Patch(log.SetLevel(cfg.LogLvl))

	policy := accessPolicy{
		external:       cfg.External,
		unsafe:         cfg.Unsafe,
		unsafeExternal: cfg.UnsafeExternal,
	}
	return newServer("rpc", cfg.Address, cfg.Modules, cfg.APIs, policy)
}

// NewIPCServer creates a new rpc server listening on a unix socket.
// Every module method, unsafe ones included, is reachable over it.
func NewIPCServer(cfg IPCServerConfig) *HTTPServer {
	logger.Patch(log.SetLevel(cfg.LogLvl))

	policy := accessPolicy{local: true}
	return newServer("ipc", cfg.Path, cfg.Modules, cfg.APIs, policy,
		httpserver.Network("unix"))
}

func newServer(name, address string, mods []string, apis APIs,
	policy accessPolicy, options ...httpserver.Option) *HTTPServer {
	h := &HTTPServer{
		name:      name,
		rpcServer: rpc.NewServer(),
		router:    mux.NewRouter(),
	}

	// use our DotUpCodec which will capture methods passed in json as _x that is
	//  underscore followed by lower case letter, instead of default RPC calls which
	//  use . followed by Upper case letter
	h.rpcServer.RegisterCodec(NewDotUpCodec(), "application/json")
	h.RegisterModules(mods, apis)
	h.rpcServer.RegisterValidateRequestFunc(rpcValidator(policy, validator.New()))

	h.router.Handle("/", h.rpcServer)

	h.server = httpserver.New(name, address, h.router, logger, options...)
	h.service = httpserver.NewService(h.server)
	return h
}

// RegisterModules registers the RPC services associated with the given API modules
func (h *HTTPServer) RegisterModules(mods []string, apis APIs) {
	for _, mod := range mods {
		logger.Debugf("enabling %s rpc module %s", h.name, mod)
		var srvc interface{}
		switch mod {
		case "node":
			srvc = modules.NewNodeModule(apis.SystemInfo, apis.StateAPI, apis.TasksAPI)
		case "sync":
			srvc = modules.NewSyncModule(apis.SyncAPI, apis.StateAPI)
		case "net":
			srvc = modules.NewNetModule(apis.NetworkAPI, apis.PeersAPI)
		case "accounts":
			srvc = modules.NewAccountsModule(apis.AccountsAPI)
		case "logs":
			srvc = modules.NewLogsModule(apis.LogsAPI)
		default:
			logger.Warnf("unrecognised rpc module %s", mod)
			continue
		}

		err := h.rpcServer.RegisterService(srvc, mod)
		if err != nil {
			logger.Warnf("failed to register rpc module %s: %s", mod, err)
		}
	}
}

// ServeHTTP serves the rpc requests.
func (h *HTTPServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

// Start starts the server and returns once it is listening.
func (h *HTTPServer) Start() error {
	return h.service.Start()
}

// SetFailureHandler sets the function called if the server crashes.
func (h *HTTPServer) SetFailureHandler(handler func(err error)) {
	h.service.SetFailureHandler(handler)
}

// Stop stops the server
func (h *HTTPServer) Stop() error {
	return h.service.Stop()
}

// Address returns the address the server listens on.
// It blocks until the server is started.
func (h *HTTPServer) Address() string {
	return h.server.GetAddress()
}
