// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"

	"google.golang.org/genai"
)

// Tool represents an operation an orchestration framework can invoke.
type Tool interface {
	// Name returns the name of the tool.
	Name() string

	// Description returns the description of the tool.
	Description() string

	// GetDeclaration returns the function declaration advertised to the
	// model, or nil if the tool is not model-callable.
	GetDeclaration() *genai.FunctionDeclaration

	// Run executes the tool with the arguments the framework collected.
	Run(ctx context.Context, args map[string]any) (any, error)
}

// ExecuteFunc is the function type that executes a [FunctionTool].
type ExecuteFunc func(ctx context.Context, args map[string]any) (any, error)

// FunctionTool is a [Tool] backed by a plain function.
type FunctionTool struct {
	name        string
	description string
	declaration *genai.FunctionDeclaration
	execute     ExecuteFunc
}

var _ Tool = (*FunctionTool)(nil)

// NewFunctionTool returns a [FunctionTool] with the given name, description,
// parameter schema and executor. The function declaration is built from the
// same name and description, so Name, Description and the declaration never
// disagree.
func NewFunctionTool(name, description string, parameters *genai.Schema, execute ExecuteFunc) *FunctionTool {
	return &FunctionTool{
		name:        name,
		description: description,
		declaration: &genai.FunctionDeclaration{
			Name:        name,
			Description: description,
			Parameters:  parameters,
		},
		execute: execute,
	}
}

// Name implements [Tool].
func (t *FunctionTool) Name() string {
	return t.name
}

// Description implements [Tool].
func (t *FunctionTool) Description() string {
	return t.description
}

// GetDeclaration implements [Tool].
func (t *FunctionTool) GetDeclaration() *genai.FunctionDeclaration {
	return t.declaration
}

// Run implements [Tool].
func (t *FunctionTool) Run(ctx context.Context, args map[string]any) (any, error) {
	return t.execute(ctx, args)
}
