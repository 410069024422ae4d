// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"time"

	"github.com/go-a2a/a2a-tools/a2a"
)

// DefaultTimeout is the per-request timeout applied when [WithTimeout] is
// not given.
const DefaultTimeout = 5 * time.Minute

// Provider exposes remote A2A agents as callable tools. One provider owns
// one transport client per agent URL it has talked to and one card cache of
// the agents it has discovered; both are shared by every tool invocation
// against this provider and torn down by [Provider.Close].
type Provider struct {
	logger         *slog.Logger
	knownAgentURLs []string
	push           *a2a.PushNotificationConfig

	registry *clientRegistry
	cards    *cardCache
}

// NewProvider constructs a [Provider] from the given options.
//
// [WithHeaders] and [WithURLHeaders] are mutually exclusive; supplying both
// is a construction error.
func NewProvider(opts ...Option) (*Provider, error) {
	cfg := providerConfig{
		timeout: DefaultTimeout,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.headers != nil && cfg.urlHeaders != nil {
		return nil, errors.New("client: WithHeaders and WithURLHeaders are mutually exclusive")
	}

	p := &Provider{
		logger:         cfg.logger,
		knownAgentURLs: slices.Clone(cfg.knownAgentURLs),
		cards:          newCardCache(),
		registry: newClientRegistry(authConfig{
			headers:    cfg.headers,
			urlHeaders: cfg.urlHeaders,
			credential: cfg.credential,
			timeout:    cfg.timeout,
		}, cfg.logger),
	}
	if cfg.webhookURL != "" {
		p.push = &a2a.PushNotificationConfig{
			URL:   cfg.webhookURL,
			Token: cfg.webhookToken,
		}
	}

	return p, nil
}

// EnsureClient returns the transport client for agentURL, materializing it
// on first use. Repeated calls with the same URL return the identical
// instance.
func (p *Provider) EnsureClient(ctx context.Context, agentURL string) (*TransportClient, error) {
	return p.registry.ensure(ctx, agentURL)
}

// NumOpenClients reports how many transport clients are currently open.
func (p *Provider) NumOpenClients() int {
	return p.registry.size()
}

// PushConfig returns the configured push-notification target, or nil when
// no webhook was configured.
func (p *Provider) PushConfig() *a2a.PushNotificationConfig {
	return p.push
}

// Close closes every open transport client and empties the registry. It
// never fails and is safe to call repeatedly; discovered cards survive so a
// provider can keep answering list queries after its connections are gone.
func (p *Provider) Close() error {
	p.registry.closeAll()
	return nil
}

// Run constructs a provider, hands it to fn, and guarantees [Provider.Close]
// semantics on every exit path, including an fn that never used a tool.
func Run(ctx context.Context, fn func(context.Context, *Provider) error, opts ...Option) error {
	p, err := NewProvider(opts...)
	if err != nil {
		return err
	}
	defer p.Close()

	return fn(ctx, p)
}
