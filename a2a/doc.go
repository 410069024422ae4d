// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package a2a defines the data structures this module exchanges with remote
// A2A agents: the agent card served from the well-known discovery path, the
// message and part types carried by message/send, and the JSON-RPC envelope
// that wraps them on the wire.
//
// The types mirror the A2A protocol specification. Fields this module does
// not interpret are still declared so a card or response round-trips without
// loss; callers that need a schemaless view use the ToMap helpers.
package a2a
