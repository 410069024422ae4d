// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package a2atools exposes remote A2A protocol agents as callable tools for
// an LLM orchestration framework: discover an agent's capability card, list
// the agents discovered so far, and send a message to a chosen agent, with
// per-URL authentication and one pooled transport client per agent.
//
// See the client package for the provider and its tool surface.
package a2atools
