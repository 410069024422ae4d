// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"

	"google.golang.org/genai"

	"github.com/go-a2a/a2a-tools/tool"
)

// Tool names the orchestration framework sees.
const (
	ToolDiscoverAgent        = "a2a_discover_agent"
	ToolListDiscoveredAgents = "a2a_list_discovered_agents"
	ToolSendMessage          = "a2a_send_message"
)

// Tools returns the provider's three operations as invokable tools. Every
// failure is converted to an error-shaped result mapping; no error ever
// crosses the tool boundary.
func (p *Provider) Tools() []tool.Tool {
	return []tool.Tool{
		tool.NewFunctionTool(
			ToolDiscoverAgent,
			"Discover a remote A2A agent by fetching its agent card from the given base URL.",
			&genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"url": {
						Type:        genai.TypeString,
						Description: "Base URL of the agent to discover.",
					},
				},
				Required: []string{"url"},
			},
			p.discoverAgentTool,
		),
		tool.NewFunctionTool(
			ToolListDiscoveredAgents,
			"List every A2A agent discovered so far, including the configured known agents.",
			&genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{},
			},
			p.listDiscoveredAgentsTool,
		),
		tool.NewFunctionTool(
			ToolSendMessage,
			"Send a text message to a discovered A2A agent and return its response.",
			&genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"message_text": {
						Type:        genai.TypeString,
						Description: "Text content of the message to send.",
					},
					"target_agent_url": {
						Type:        genai.TypeString,
						Description: "Base URL of the agent to send the message to.",
					},
					"message_id": {
						Type:        genai.TypeString,
						Description: "Optional message id; generated when omitted.",
					},
				},
				Required: []string{"message_text", "target_agent_url"},
			},
			p.sendMessageTool,
		),
	}
}

func errorResult(err error, extra map[string]any) map[string]any {
	result := map[string]any{
		"status": "error",
		"error":  err.Error(),
	}
	for k, v := range extra {
		result[k] = v
	}
	return result
}

func (p *Provider) discoverAgentTool(ctx context.Context, args map[string]any) (any, error) {
	agentURL, _ := args["url"].(string)

	result := p.DiscoverAgentTool(ctx, agentURL)
	return result, nil
}

// DiscoverAgentTool runs the discover operation and renders the outcome as
// a result mapping.
func (p *Provider) DiscoverAgentTool(ctx context.Context, agentURL string) map[string]any {
	if agentURL == "" {
		return errorResult(errMissingURL, map[string]any{"url": agentURL})
	}

	card, err := p.DiscoverAgent(ctx, agentURL)
	if err != nil {
		return errorResult(err, map[string]any{"url": agentURL})
	}

	cardMap, err := card.ToMap()
	if err != nil {
		return errorResult(err, map[string]any{"url": agentURL})
	}

	return map[string]any{
		"status":     "success",
		"url":        agentURL,
		"agent_card": cardMap,
	}
}

func (p *Provider) listDiscoveredAgentsTool(ctx context.Context, _ map[string]any) (any, error) {
	return p.ListDiscoveredAgentsTool(ctx), nil
}

// ListDiscoveredAgentsTool runs the list operation and renders the outcome
// as a result mapping.
func (p *Provider) ListDiscoveredAgentsTool(ctx context.Context) map[string]any {
	cards, err := p.ListDiscoveredAgents(ctx)
	if err != nil {
		return errorResult(err, nil)
	}

	agents := make([]map[string]any, 0, len(cards))
	for agentURL, card := range cards {
		cardMap, err := card.ToMap()
		if err != nil {
			return errorResult(err, nil)
		}
		agents = append(agents, map[string]any{
			"url":        agentURL,
			"agent_card": cardMap,
		})
	}

	return map[string]any{
		"status":      "success",
		"total_count": len(agents),
		"agents":      agents,
	}
}

func (p *Provider) sendMessageTool(ctx context.Context, args map[string]any) (any, error) {
	messageText, _ := args["message_text"].(string)
	targetURL, _ := args["target_agent_url"].(string)
	messageID, _ := args["message_id"].(string)

	return p.SendMessageTool(ctx, messageText, targetURL, messageID), nil
}

// SendMessageTool runs the send operation and renders the outcome as a
// result mapping.
func (p *Provider) SendMessageTool(ctx context.Context, messageText, targetURL, messageID string) map[string]any {
	if targetURL == "" {
		return errorResult(errMissingTargetURL, map[string]any{"target_agent_url": targetURL})
	}

	result, messageID, err := p.SendMessage(ctx, messageText, targetURL, messageID)
	if err != nil {
		return errorResult(err, map[string]any{"target_agent_url": targetURL})
	}

	respMap, err := result.ToMap()
	if err != nil {
		return errorResult(err, map[string]any{"target_agent_url": targetURL})
	}

	return map[string]any{
		"status":           "success",
		"message_id":       messageID,
		"target_agent_url": targetURL,
		"response":         respMap,
	}
}
