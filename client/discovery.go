// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/go-json-experiment/json"
	deepcopy "github.com/tiendc/go-deepcopy"
	"golang.org/x/sync/errgroup"

	"github.com/go-a2a/a2a-tools/a2a"
	"github.com/go-a2a/a2a-tools/pkg/logging"
)

// bulkDiscoverLimit bounds the number of concurrent card fetches during
// initial bulk discovery.
const bulkDiscoverLimit = 4

// cardCache maps agent URL → most recently discovered [a2a.AgentCard]. At
// most one entry per URL; a later discovery overwrites the earlier card.
type cardCache struct {
	mu    sync.RWMutex
	cards map[string]*a2a.AgentCard

	// discoverMu serializes initial bulk discovery so the discovered flag
	// transitions false→true exactly once.
	discoverMu sync.Mutex
	discovered bool
}

func newCardCache() *cardCache {
	return &cardCache{
		cards: make(map[string]*a2a.AgentCard),
	}
}

func (c *cardCache) get(agentURL string) (*a2a.AgentCard, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	card, ok := c.cards[agentURL]
	return card, ok
}

func (c *cardCache) put(agentURL string, card *a2a.AgentCard) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cards[agentURL] = card
}

// snapshot returns a deep copy of the cache so callers can never mutate a
// stored card through the returned map.
func (c *cardCache) snapshot() (map[string]*a2a.AgentCard, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]*a2a.AgentCard, len(c.cards))
	if err := deepcopy.Copy(&out, c.cards); err != nil {
		return nil, err
	}
	return out, nil
}

// DiscoverAgent returns the agent card for agentURL. A cached card is
// returned without network access; on a miss the card is fetched through
// the URL's transport client and cached. Fetch failure surfaces as a
// [*DiscoveryError] and writes no cache entry.
func (p *Provider) DiscoverAgent(ctx context.Context, agentURL string) (*a2a.AgentCard, error) {
	if card, ok := p.cards.get(agentURL); ok {
		return cloneCard(card)
	}

	card, err := p.fetchCard(ctx, agentURL)
	if err != nil {
		return nil, err
	}
	p.cards.put(agentURL, card)

	logging.FromContext(ctx).Info("discovered agent",
		slog.String("url", agentURL),
		slog.String("name", card.Name),
	)
	return cloneCard(card)
}

// ListDiscoveredAgents returns a snapshot of every cached card, running
// initial bulk discovery of the configured known agent URLs first if that
// has not happened yet.
func (p *Provider) ListDiscoveredAgents(ctx context.Context) (map[string]*a2a.AgentCard, error) {
	p.ensureInitialDiscovery(ctx)
	return p.cards.snapshot()
}

// ensureInitialDiscovery pre-populates the card cache from the configured
// known agent URLs. It runs at most once per provider; individual URL
// failures are logged and do not abort the rest.
func (p *Provider) ensureInitialDiscovery(ctx context.Context) {
	p.cards.discoverMu.Lock()
	defer p.cards.discoverMu.Unlock()

	if p.cards.discovered {
		return
	}
	p.cards.discovered = true

	if len(p.knownAgentURLs) == 0 {
		return
	}

	var eg errgroup.Group
	eg.SetLimit(bulkDiscoverLimit)
	for _, agentURL := range p.knownAgentURLs {
		eg.Go(func() error {
			if _, err := p.DiscoverAgent(ctx, agentURL); err != nil {
				p.logger.Warn("initial agent discovery failed",
					slog.String("url", agentURL),
					slog.Any("err", err),
				)
			}
			return nil
		})
	}
	// Every goroutine returns nil: per-URL failures are logged above, and
	// Wait only joins the fetches.
	_ = eg.Wait()
}

// fetchCard retrieves and decodes the agent card for agentURL, trying the
// current well-known path and falling back to the legacy one.
func (p *Provider) fetchCard(ctx context.Context, agentURL string) (*a2a.AgentCard, error) {
	tc, err := p.registry.ensure(ctx, agentURL)
	if err != nil {
		return nil, &DiscoveryError{URL: agentURL, Err: err}
	}

	base := strings.TrimSuffix(agentURL, "/")
	card, err := p.fetchCardFrom(ctx, tc, base+a2a.WellKnownCardPath)
	if err != nil {
		var legacyErr error
		if card, legacyErr = p.fetchCardFrom(ctx, tc, base+a2a.LegacyCardPath); legacyErr != nil {
			return nil, &DiscoveryError{URL: agentURL, Err: err}
		}
	}

	if card.Name == "" {
		return nil, &DiscoveryError{URL: agentURL, Err: fmt.Errorf("agent card missing name")}
	}
	return card, nil
}

func (p *Provider) fetchCardFrom(ctx context.Context, tc *TransportClient, cardURL string) (*a2a.AgentCard, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cardURL, http.NoBody)
	if err != nil {
		return nil, err
	}

	resp, err := tc.HTTPClient().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("agent card fetch returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	card := new(a2a.AgentCard)
	if err := json.Unmarshal(body, card); err != nil {
		return nil, fmt.Errorf("malformed agent card: %w", err)
	}
	return card, nil
}

func cloneCard(card *a2a.AgentCard) (*a2a.AgentCard, error) {
	out := new(a2a.AgentCard)
	if err := deepcopy.Copy(out, card); err != nil {
		return nil, err
	}
	return out, nil
}
