// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import (
	"github.com/go-json-experiment/json"
)

// WellKnownCardPath is the discovery path an A2A agent serves its card from.
const WellKnownCardPath = "/.well-known/agent-card.json"

// LegacyCardPath is the pre-0.3 discovery path, still served by older agents.
const LegacyCardPath = "/.well-known/agent.json"

// AgentProvider represents the service provider of an agent.
type AgentProvider struct {
	Organization string `json:"organization"`
	URL          string `json:"url,omitzero"`
}

// AgentCapabilities describes optional protocol features an agent supports.
type AgentCapabilities struct {
	Streaming              bool `json:"streaming,omitzero"`
	PushNotifications      bool `json:"pushNotifications,omitzero"`
	StateTransitionHistory bool `json:"stateTransitionHistory,omitzero"`
}

// AgentSkill represents a distinct capability an agent advertises.
type AgentSkill struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitzero"`
	Tags        []string `json:"tags,omitzero"`
	Examples    []string `json:"examples,omitzero"`
	InputModes  []string `json:"inputModes,omitzero"`
	OutputModes []string `json:"outputModes,omitzero"`
}

// AgentCard is the capability descriptor a remote agent serves from
// [WellKnownCardPath]. It tells a client how to reach the agent and what the
// agent can do.
type AgentCard struct {
	Name               string            `json:"name"`
	Description        string            `json:"description,omitzero"`
	URL                string            `json:"url"`
	Version            string            `json:"version,omitzero"`
	DocumentationURL   string            `json:"documentationUrl,omitzero"`
	Provider           *AgentProvider    `json:"provider,omitzero"`
	Capabilities       AgentCapabilities `json:"capabilities,omitzero"`
	DefaultInputModes  []string          `json:"defaultInputModes,omitzero"`
	DefaultOutputModes []string          `json:"defaultOutputModes,omitzero"`
	Skills             []AgentSkill      `json:"skills,omitzero"`
}

// ToMap renders the card as a plain mapping, the shape tool results carry.
func (c *AgentCard) ToMap() (map[string]any, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}
