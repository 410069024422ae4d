// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package tool defines the contract between this module and the LLM
// orchestration framework that invokes it: a named operation carrying a
// function declaration the model can call and a Run method the framework
// executes with the model's arguments.
//
// The concrete [FunctionTool] wraps a plain Go function; the client package
// exposes its three A2A operations through it.
package tool
