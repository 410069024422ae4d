// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package client_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/go-a2a/a2a-tools/client"
)

func TestEnsureClientIdentity(t *testing.T) {
	p, err := client.NewProvider(
		client.WithKnownAgentURLs("https://a"),
		client.WithURLHeaders(map[string]map[string]string{
			"https://a": {"X-API-Key": "k"},
		}),
	)
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}
	defer p.Close()

	ctx := t.Context()

	first, err := p.EnsureClient(ctx, "https://a")
	if err != nil {
		t.Fatalf("EnsureClient() error = %v", err)
	}
	second, err := p.EnsureClient(ctx, "https://a")
	if err != nil {
		t.Fatalf("EnsureClient() error = %v", err)
	}

	if first != second {
		t.Error("repeated EnsureClient for the same URL returned distinct instances")
	}
	if got := first.Headers()["X-API-Key"]; got != "k" {
		t.Errorf("client header X-API-Key = %q, want %q", got, "k")
	}

	if err := p.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if got := p.NumOpenClients(); got != 0 {
		t.Errorf("NumOpenClients() after Close = %d, want 0", got)
	}
}

func TestEnsureClientDistinctURLs(t *testing.T) {
	p, err := client.NewProvider()
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}
	defer p.Close()

	ctx := t.Context()

	a, err := p.EnsureClient(ctx, "https://a")
	if err != nil {
		t.Fatalf("EnsureClient(a) error = %v", err)
	}
	b, err := p.EnsureClient(ctx, "https://b")
	if err != nil {
		t.Fatalf("EnsureClient(b) error = %v", err)
	}

	if a == b {
		t.Error("distinct URLs share a transport client")
	}
	if got := p.NumOpenClients(); got != 2 {
		t.Errorf("NumOpenClients() = %d, want 2", got)
	}
}

func TestEnsureClientConcurrent(t *testing.T) {
	p, err := client.NewProvider()
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}
	defer p.Close()

	ctx := t.Context()

	const callers = 32
	clients := make([]*client.TransportClient, callers)

	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c, err := p.EnsureClient(ctx, "https://a")
			if err != nil {
				t.Errorf("EnsureClient() error = %v", err)
				return
			}
			clients[i] = c
		}()
	}
	wg.Wait()

	for i := 1; i < callers; i++ {
		if clients[i] != clients[0] {
			t.Fatalf("caller %d observed a different client instance", i)
		}
	}
	if got := p.NumOpenClients(); got != 1 {
		t.Errorf("NumOpenClients() = %d, want 1", got)
	}
}

func TestEnsureClientInvalidURL(t *testing.T) {
	p, err := client.NewProvider()
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}
	defer p.Close()

	for _, agentURL := range []string{"", "not-a-url", "://missing-scheme"} {
		_, err := p.EnsureClient(t.Context(), agentURL)
		if err == nil {
			t.Errorf("EnsureClient(%q) error = nil, want ClientInitError", agentURL)
			continue
		}

		var initErr *client.ClientInitError
		if !errors.As(err, &initErr) {
			t.Errorf("EnsureClient(%q) error = %T, want *ClientInitError", agentURL, err)
			continue
		}
		if initErr.URL != agentURL {
			t.Errorf("ClientInitError.URL = %q, want %q", initErr.URL, agentURL)
		}
	}

	// Failed construction must leave no partial entries behind.
	if got := p.NumOpenClients(); got != 0 {
		t.Errorf("NumOpenClients() = %d, want 0", got)
	}
}

func TestProviderHeaderOptionsMutuallyExclusive(t *testing.T) {
	_, err := client.NewProvider(
		client.WithHeaders(map[string]string{"X-Trace": "on"}),
		client.WithURLHeaders(map[string]map[string]string{
			"https://a": {"X-API-Key": "k"},
		}),
	)
	if err == nil {
		t.Fatal("NewProvider() error = nil, want mutually-exclusive header options error")
	}
}

func TestProviderPushConfig(t *testing.T) {
	p, err := client.NewProvider(
		client.WithTimeout(time.Minute),
		client.WithWebhook("https://webhook.example.com", "test-token"),
	)
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}
	defer p.Close()

	push := p.PushConfig()
	if push == nil {
		t.Fatal("PushConfig() = nil, want configured webhook")
	}
	if push.URL != "https://webhook.example.com" || push.Token != "test-token" {
		t.Errorf("PushConfig() = %+v, want configured url and token", push)
	}
}

func TestProviderNoWebhook(t *testing.T) {
	p, err := client.NewProvider()
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}
	defer p.Close()

	if push := p.PushConfig(); push != nil {
		t.Errorf("PushConfig() = %+v, want nil", push)
	}
}

func TestProviderTools(t *testing.T) {
	p, err := client.NewProvider()
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}
	defer p.Close()

	tools := p.Tools()
	if len(tools) != 3 {
		t.Fatalf("len(Tools()) = %d, want 3", len(tools))
	}

	want := map[string]bool{
		client.ToolDiscoverAgent:        true,
		client.ToolListDiscoveredAgents: true,
		client.ToolSendMessage:          true,
	}
	for _, tl := range tools {
		if !want[tl.Name()] {
			t.Errorf("unexpected tool %q", tl.Name())
		}
		decl := tl.GetDeclaration()
		if decl == nil {
			t.Errorf("tool %q has no function declaration", tl.Name())
		} else if decl.Name != tl.Name() {
			t.Errorf("tool %q declares function name %q", tl.Name(), decl.Name)
		}
		delete(want, tl.Name())
	}
	for name := range want {
		t.Errorf("missing tool %q", name)
	}
}

func TestRunClosesClients(t *testing.T) {
	var scoped *client.Provider

	err := client.Run(t.Context(), func(ctx context.Context, p *client.Provider) error {
		scoped = p
		if _, err := p.EnsureClient(ctx, "https://a"); err != nil {
			return err
		}
		if _, err := p.EnsureClient(ctx, "https://b"); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if got := scoped.NumOpenClients(); got != 0 {
		t.Errorf("NumOpenClients() after Run = %d, want 0", got)
	}
}

func TestRunClosesClientsOnError(t *testing.T) {
	var scoped *client.Provider
	wantErr := errors.New("tool use went sideways")

	err := client.Run(t.Context(), func(ctx context.Context, p *client.Provider) error {
		scoped = p
		if _, err := p.EnsureClient(ctx, "https://a"); err != nil {
			return err
		}
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("Run() error = %v, want %v", err, wantErr)
	}

	if got := scoped.NumOpenClients(); got != 0 {
		t.Errorf("NumOpenClients() after failed Run = %d, want 0", got)
	}
}

func TestRunNothingToClose(t *testing.T) {
	var scoped *client.Provider

	err := client.Run(t.Context(), func(ctx context.Context, p *client.Provider) error {
		scoped = p
		return nil
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if got := scoped.NumOpenClients(); got != 0 {
		t.Errorf("NumOpenClients() = %d, want 0", got)
	}
}
