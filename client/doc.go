// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package client exposes remote A2A agents as callable tools.
//
// The central type is [Provider]. It discovers remote agents' capability
// descriptors (agent cards), caches them, sends messages to a chosen agent,
// and lists what has been discovered, surfacing the three operations as
// [github.com/go-a2a/a2a-tools/tool.Tool] values an orchestration framework
// can hand to a model.
//
// Internally the provider owns one connection-pooled transport client per
// distinct agent URL. Clients are constructed lazily on first use with the
// headers, credential and timeout resolved for that URL, memoized so
// repeated and concurrent calls for the same URL observe the same instance,
// and all closed together when the provider shuts down.
package client
