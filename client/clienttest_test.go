// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package client_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-a2a/a2a-tools/a2a"
)

// fakeAgent is an in-process A2A agent serving an agent card and answering
// message/send with a single text reply.
type fakeAgent struct {
	name string
	srv  *httptest.Server

	mu          sync.Mutex
	cardFetches int
	lastHeaders http.Header
}

func newFakeAgent(t *testing.T, name string) *fakeAgent {
	t.Helper()

	f := &fakeAgent{name: name}

	mux := http.NewServeMux()
	mux.HandleFunc("GET "+a2a.WellKnownCardPath, f.handleCard)
	mux.HandleFunc("POST /", f.handleSend)

	f.srv = httptest.NewServer(mux)
	t.Cleanup(f.srv.Close)
	return f
}

// URL returns the agent's base URL.
func (f *fakeAgent) URL() string { return f.srv.URL }

// CardFetches reports how many times the card endpoint was hit.
func (f *fakeAgent) CardFetches() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cardFetches
}

// LastHeaders returns the headers of the most recent request seen.
func (f *fakeAgent) LastHeaders() http.Header {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastHeaders
}

func (f *fakeAgent) record(r *http.Request, cardFetch bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if cardFetch {
		f.cardFetches++
	}
	f.lastHeaders = r.Header.Clone()
}

func (f *fakeAgent) handleCard(w http.ResponseWriter, r *http.Request) {
	f.record(r, true)

	card := a2a.AgentCard{
		Name:        f.name,
		Description: "a test agent",
		URL:         f.srv.URL,
		Version:     "1.0.0",
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(card)
}

func (f *fakeAgent) handleSend(w http.ResponseWriter, r *http.Request) {
	f.record(r, false)

	var req struct {
		JSONRPC string `json:"jsonrpc"`
		ID      string `json:"id"`
		Method  string `json:"method"`
		Params  struct {
			Message a2a.Message `json:"message"`
		} `json:"params"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Method != a2a.MethodMessageSend {
		http.Error(w, "unexpected method "+req.Method, http.StatusBadRequest)
		return
	}

	reply := map[string]any{
		"jsonrpc": "2.0",
		"id":      req.ID,
		"result": map[string]any{
			"kind":      "message",
			"messageId": "reply-" + req.Params.Message.MessageID,
			"role":      "agent",
			"parts": []map[string]any{
				{"kind": "text", "text": f.name + " heard: " + req.Params.Message.Parts[0].Text},
			},
		},
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(reply)
}
