// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"maps"
	"net/http"
	"time"
)

// CredentialType discriminates the variants of a [Credential].
type CredentialType string

const (
	// CredentialTypeNone indicates no credential is applied.
	CredentialTypeNone CredentialType = "none"
	// CredentialTypeBasic indicates HTTP basic authentication.
	CredentialTypeBasic CredentialType = "basic"
	// CredentialTypeBearer indicates a bearer token in the Authorization header.
	CredentialTypeBearer CredentialType = "bearer"
	// CredentialTypeAPIKey indicates an API key sent in a named header.
	CredentialTypeAPIKey CredentialType = "apiKey"
)

// Credential is the process-wide auth credential applied to every transport
// client. Exactly the fields of the selected Type are meaningful.
type Credential struct {
	Type CredentialType

	// Basic.
	Username string
	Password string

	// Bearer.
	Token string

	// APIKey.
	Header string
	Key    string
}

// BasicAuth returns a [Credential] for HTTP basic authentication.
func BasicAuth(username, password string) Credential {
	return Credential{Type: CredentialTypeBasic, Username: username, Password: password}
}

// BearerToken returns a [Credential] carrying a bearer token.
func BearerToken(token string) Credential {
	return Credential{Type: CredentialTypeBearer, Token: token}
}

// APIKey returns a [Credential] sending key in the named header.
func APIKey(header, key string) Credential {
	return Credential{Type: CredentialTypeAPIKey, Header: header, Key: key}
}

// authConfig is the provider-wide authentication policy, set once at
// construction and read-only afterward.
type authConfig struct {
	// headers applies to every URL.
	headers map[string]string

	// urlHeaders applies per exact URL string, overriding headers key-wise.
	urlHeaders map[string]map[string]string

	credential Credential
	timeout    time.Duration
}

// resolvedConfig is the effective policy for one URL.
type resolvedConfig struct {
	headers    map[string]string
	credential Credential
	timeout    time.Duration
}

// resolveAuth computes the effective headers, credential and timeout for
// url. Global headers come first; an exact-URL override wins key-wise on
// top. A URL with no override entry gets the global defaults only. Pure
// function of its inputs, no I/O.
func resolveAuth(url string, cfg authConfig) resolvedConfig {
	headers := make(map[string]string, len(cfg.headers))
	maps.Copy(headers, cfg.headers)
	maps.Copy(headers, cfg.urlHeaders[url])

	return resolvedConfig{
		headers:    headers,
		credential: cfg.credential,
		timeout:    cfg.timeout,
	}
}

// authRoundTripper applies resolved default headers and a basic or API key
// credential to every outgoing request. Bearer credentials are layered on
// by an oauth2 transport instead (see newTransportClient).
type authRoundTripper struct {
	base       http.RoundTripper
	headers    map[string]string
	credential Credential
}

var _ http.RoundTripper = (*authRoundTripper)(nil)

// RoundTrip implements [http.RoundTripper].
func (rt *authRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	for k, v := range rt.headers {
		req.Header.Set(k, v)
	}

	switch rt.credential.Type {
	case CredentialTypeBasic:
		req.SetBasicAuth(rt.credential.Username, rt.credential.Password)
	case CredentialTypeAPIKey:
		req.Header.Set(rt.credential.Header, rt.credential.Key)
	}

	return rt.base.RoundTrip(req)
}
