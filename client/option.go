// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"log/slog"
	"maps"
	"slices"
	"time"
)

// providerConfig collects construction parameters for a [Provider].
type providerConfig struct {
	knownAgentURLs []string
	headers        map[string]string
	urlHeaders     map[string]map[string]string
	credential     Credential
	timeout        time.Duration
	webhookURL     string
	webhookToken   string
	logger         *slog.Logger
}

// Option configures a [Provider] at construction.
type Option func(*providerConfig)

// WithKnownAgentURLs sets the agent URLs bulk discovery pre-populates the
// card cache from at first use.
func WithKnownAgentURLs(urls ...string) Option {
	return func(c *providerConfig) {
		c.knownAgentURLs = slices.Clone(urls)
	}
}

// WithTimeout sets the per-request timeout applied to every transport
// client. Defaults to [DefaultTimeout].
func WithTimeout(timeout time.Duration) Option {
	return func(c *providerConfig) {
		c.timeout = timeout
	}
}

// WithHeaders sets default headers applied to every agent URL. Mutually
// exclusive with [WithURLHeaders].
func WithHeaders(headers map[string]string) Option {
	return func(c *providerConfig) {
		c.headers = maps.Clone(headers)
	}
}

// WithURLHeaders sets headers applied only to the exact agent URLs that
// appear as keys; URLs with no entry get no extra headers. Mutually
// exclusive with [WithHeaders].
func WithURLHeaders(headers map[string]map[string]string) Option {
	return func(c *providerConfig) {
		c.urlHeaders = make(map[string]map[string]string, len(headers))
		for u, h := range headers {
			c.urlHeaders[u] = maps.Clone(h)
		}
	}
}

// WithAuth sets the credential applied to every transport client.
func WithAuth(credential Credential) Option {
	return func(c *providerConfig) {
		c.credential = credential
	}
}

// WithWebhook sets the push-notification target exposed through
// [Provider.PushConfig].
func WithWebhook(url, token string) Option {
	return func(c *providerConfig) {
		c.webhookURL = url
		c.webhookToken = token
	}
}

// WithLogger sets the logger. Defaults to [slog.Default].
func WithLogger(logger *slog.Logger) Option {
	return func(c *providerConfig) {
		c.logger = logger
	}
}
