// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"errors"
	"fmt"
)

var (
	errMissingURL       = errors.New("missing required argument: url")
	errMissingTargetURL = errors.New("missing required argument: target_agent_url")
)

// ClientInitError reports that a transport client could not be materialized
// for a URL. No registry entry is retained when this is returned.
type ClientInitError struct {
	URL string
	Err error
}

// Error returns a string representation of the [ClientInitError].
func (e *ClientInitError) Error() string {
	return fmt.Sprintf("initialize transport client for %q: %v", e.URL, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ClientInitError) Unwrap() error { return e.Err }

// DiscoveryError reports that an agent card could not be fetched or decoded
// for a URL. No cache entry is written when this is returned.
type DiscoveryError struct {
	URL string
	Err error
}

// Error returns a string representation of the [DiscoveryError].
func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("discover agent at %q: %v", e.URL, e.Err)
}

// Unwrap returns the underlying cause.
func (e *DiscoveryError) Unwrap() error { return e.Err }

// SendError reports that a message/send to an agent failed, whether from a
// propagated discovery failure, a transport failure, or an empty response.
type SendError struct {
	URL string
	Err error
}

// Error returns a string representation of the [SendError].
func (e *SendError) Error() string {
	return fmt.Sprintf("send message to %q: %v", e.URL, e.Err)
}

// Unwrap returns the underlying cause.
func (e *SendError) Unwrap() error { return e.Err }
