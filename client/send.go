// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-json-experiment/json"
	"github.com/google/uuid"

	"github.com/go-a2a/a2a-tools/a2a"
	"github.com/go-a2a/a2a-tools/pkg/logging"
)

// SendMessage sends messageText to the agent at targetURL and returns the
// decoded response along with the message id used. The target agent is
// discovered first; its card may redirect the send to a different endpoint
// URL. An empty messageID gets a generated UUID. Failures surface as a
// [*SendError].
func (p *Provider) SendMessage(ctx context.Context, messageText, targetURL, messageID string) (*a2a.SendResult, string, error) {
	card, err := p.DiscoverAgent(ctx, targetURL)
	if err != nil {
		return nil, messageID, &SendError{URL: targetURL, Err: err}
	}

	tc, err := p.registry.ensure(ctx, targetURL)
	if err != nil {
		return nil, messageID, &SendError{URL: targetURL, Err: err}
	}

	if messageID == "" {
		messageID = uuid.NewString()
	}
	msg := a2a.NewUserMessage(messageID, messageText)

	endpoint := card.URL
	if endpoint == "" {
		endpoint = targetURL
	}

	result, err := p.postMessage(ctx, tc, endpoint, msg)
	if err != nil {
		return nil, messageID, &SendError{URL: targetURL, Err: err}
	}

	logging.FromContext(ctx).Info("sent message",
		slog.String("url", targetURL),
		slog.String("message_id", messageID),
	)
	return result, messageID, nil
}

// postMessage performs the message/send JSON-RPC call and decodes the
// result into whichever shape the agent answered with.
func (p *Provider) postMessage(ctx context.Context, tc *TransportClient, endpoint string, msg *a2a.Message) (*a2a.SendResult, error) {
	body, err := json.Marshal(a2a.NewSendMessageRequest(msg))
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := tc.HTTPClient().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("message/send returned status %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var rpcResp a2a.Response
	if err := json.Unmarshal(respBody, &rpcResp); err != nil {
		return nil, fmt.Errorf("malformed message/send response: %w", err)
	}
	if rpcResp.Error != nil {
		return nil, rpcResp.Error
	}
	if len(rpcResp.Result) == 0 || string(rpcResp.Result) == "null" {
		return nil, fmt.Errorf("empty response from agent")
	}

	// The result is either a direct message or a task; the kind field
	// discriminates.
	var probe struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(rpcResp.Result, &probe); err != nil {
		return nil, fmt.Errorf("malformed message/send result: %w", err)
	}

	result := new(a2a.SendResult)
	switch probe.Kind {
	case "task":
		result.Task = new(a2a.Task)
		err = json.Unmarshal(rpcResp.Result, result.Task)
	default:
		result.Message = new(a2a.Message)
		err = json.Unmarshal(rpcResp.Result, result.Message)
	}
	if err != nil {
		return nil, fmt.Errorf("malformed message/send result: %w", err)
	}
	return result, nil
}
