// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"net/http"
	"net/url"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"

	"github.com/go-a2a/a2a-tools/pkg/logging"
)

// TransportClient is the pooled HTTP client the registry materializes for
// one agent URL. It is owned by its registry entry: never shared across
// URLs, created on first use, closed exactly once at provider shutdown.
type TransportClient struct {
	baseURL string
	hc      *http.Client
	headers map[string]string

	// pool is the owned transport whose idle connections Close releases.
	pool *http.Transport
}

// BaseURL returns the agent URL this client was materialized for.
func (c *TransportClient) BaseURL() string { return c.baseURL }

// HTTPClient returns the underlying [http.Client].
func (c *TransportClient) HTTPClient() *http.Client { return c.hc }

// Headers returns a copy of the default headers the client applies to every
// request.
func (c *TransportClient) Headers() map[string]string {
	return maps.Clone(c.headers)
}

// Close releases the client's pooled connections.
func (c *TransportClient) Close() error {
	c.pool.CloseIdleConnections()
	return nil
}

// newTransportClient builds a [TransportClient] from the policy resolved for
// baseURL. Each client owns its own connection pool so closing one agent's
// client cannot drop another agent's connections.
func newTransportClient(baseURL string, cfg resolvedConfig) *TransportClient {
	pool := http.DefaultTransport.(*http.Transport).Clone()

	var rt http.RoundTripper = &authRoundTripper{
		base:       pool,
		headers:    cfg.headers,
		credential: cfg.credential,
	}
	if cfg.credential.Type == CredentialTypeBearer {
		rt = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.credential.Token, TokenType: "Bearer"}),
			Base:   rt,
		}
	}

	return &TransportClient{
		baseURL: baseURL,
		hc: &http.Client{
			Transport: rt,
			Timeout:   cfg.timeout,
		},
		headers: cfg.headers,
		pool:    pool,
	}
}

// clientRegistry owns the URL → [TransportClient] mapping. It is the shared
// mutable state every tool invocation goes through, so all mutation happens
// under its own synchronization.
type clientRegistry struct {
	auth   authConfig
	logger *slog.Logger

	mu      sync.RWMutex
	clients map[string]*TransportClient

	// group serializes first-use construction per URL so interleaved
	// callers never race to create two clients for the same key.
	group singleflight.Group
}

func newClientRegistry(auth authConfig, logger *slog.Logger) *clientRegistry {
	return &clientRegistry{
		auth:    auth,
		logger:  logger,
		clients: make(map[string]*TransportClient),
	}
}

// ensure returns the memoized [TransportClient] for agentURL, constructing
// and storing it on first use. Repeated calls with the same URL yield the
// identical instance. Construction failure surfaces as a [*ClientInitError]
// and leaves no entry behind.
func (r *clientRegistry) ensure(ctx context.Context, agentURL string) (*TransportClient, error) {
	r.mu.RLock()
	c, ok := r.clients[agentURL]
	r.mu.RUnlock()
	if ok {
		return c, nil
	}

	v, err, _ := r.group.Do(agentURL, func() (any, error) {
		// Re-check under the lock: another caller may have won the race
		// before this singleflight leader started.
		r.mu.RLock()
		c, ok := r.clients[agentURL]
		r.mu.RUnlock()
		if ok {
			return c, nil
		}

		u, err := url.Parse(agentURL)
		if err != nil {
			return nil, &ClientInitError{URL: agentURL, Err: err}
		}
		if u.Scheme == "" || u.Host == "" {
			return nil, &ClientInitError{URL: agentURL, Err: fmt.Errorf("not an absolute URL: %q", agentURL)}
		}

		c = newTransportClient(agentURL, resolveAuth(agentURL, r.auth))

		r.mu.Lock()
		r.clients[agentURL] = c
		r.mu.Unlock()

		logging.FromContext(ctx).Debug("materialized transport client",
			slog.String("url", agentURL),
		)
		return c, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*TransportClient), nil
}

// size reports the number of open clients.
func (r *clientRegistry) size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.clients)
}

// closeAll closes every open client and empties the registry. An individual
// close failure is logged and skipped so it cannot leak the remaining
// clients; closeAll itself never fails.
func (r *clientRegistry) closeAll() {
	r.mu.Lock()
	clients := r.clients
	r.clients = make(map[string]*TransportClient)
	r.mu.Unlock()

	for agentURL, c := range clients {
		if err := c.Close(); err != nil {
			r.logger.Warn("closing transport client",
				slog.String("url", agentURL),
				slog.Any("err", err),
			)
		}
	}
}
