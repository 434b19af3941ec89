// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package rpc

import (
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gorilla/rpc/v2"
	"github.com/gorilla/rpc/v2/json2"
)

// aliases maps method names of other node implementations to the
// service methods serving them.
var aliases = map[string]string{
	"parity_mode":        "node.Mode",
	"parity_setMode":     "node.SetMode",
	"parity_versionInfo": "node.Version",
	"parity_netPeers":    "net.PeerCount",
}

// DotUpCodec is a JSON-RPC 2.0 codec accepting methods written as
// module_methodName, converted to the module.MethodName form used to
// look up registered services.
type DotUpCodec struct {
	codec *json2.Codec
}

// NewDotUpCodec returns a new DotUpCodec.
func NewDotUpCodec() *DotUpCodec {
	return &DotUpCodec{
		codec: json2.NewCodec(),
	}
}

// NewRequest returns a new CodecRequest of type DotUpCodecRequest.
func (c *DotUpCodec) NewRequest(r *http.Request) rpc.CodecRequest {
	return &DotUpCodecRequest{
		CodecRequest: c.codec.NewRequest(r),
	}
}

// DotUpCodecRequest decodes and encodes a single request. It
// converts the method name of the request it wraps.
type DotUpCodecRequest struct {
	rpc.CodecRequest
}

// Method returns the decoded method as module.MethodName.
func (c *DotUpCodecRequest) Method() (string, error) {
	method, err := c.CodecRequest.Method()
	if err != nil {
		return "", err
	}

	if alias, ok := aliases[method]; ok {
		return alias, nil
	}

	service, name, found := strings.Cut(method, "_")
	if !found || name == "" {
		return method, nil
	}

	r, size := utf8.DecodeRuneInString(name)
	return service + "." + string(unicode.ToUpper(r)) + name[size:], nil
}
