// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import (
	"fmt"

	"github.com/go-json-experiment/json/jsontext"
)

// MethodMessageSend is the JSON-RPC method name for sending a message.
const MethodMessageSend = "message/send"

// SendMessageParams is the params object of a message/send request.
type SendMessageParams struct {
	Message *Message `json:"message"`
}

// Request is a JSON-RPC 2.0 request envelope.
type Request struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitzero"`
}

// NewSendMessageRequest wraps msg in a message/send request. The JSON-RPC id
// reuses the message id so request and message correlate in agent logs.
func NewSendMessageRequest(msg *Message) *Request {
	return &Request{
		JSONRPC: "2.0",
		ID:      msg.MessageID,
		Method:  MethodMessageSend,
		Params:  &SendMessageParams{Message: msg},
	}
}

// Error is a JSON-RPC 2.0 error object.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("jsonrpc error %d: %s", e.Code, e.Message)
}

// Response is a JSON-RPC 2.0 response envelope. Result is kept raw until the
// caller knows which shape to decode it into.
type Response struct {
	JSONRPC string         `json:"jsonrpc"`
	ID      string         `json:"id,omitzero"`
	Result  jsontext.Value `json:"result,omitzero"`
	Error   *Error         `json:"error,omitzero"`
}
