// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package a2a_test

import (
	"testing"

	"github.com/go-a2a/a2a-tools/a2a"
)

func TestNewUserMessage(t *testing.T) {
	msg := a2a.NewUserMessage("m-1", "hello")

	if msg.MessageID != "m-1" {
		t.Errorf("MessageID = %q, want %q", msg.MessageID, "m-1")
	}
	if msg.Role != a2a.RoleUser {
		t.Errorf("Role = %q, want %q", msg.Role, a2a.RoleUser)
	}
	if len(msg.Parts) != 1 || msg.Parts[0].Kind != a2a.PartKindText || msg.Parts[0].Text != "hello" {
		t.Errorf("Parts = %+v, want a single text part", msg.Parts)
	}
}

func TestNewSendMessageRequest(t *testing.T) {
	msg := a2a.NewUserMessage("m-1", "hello")
	req := a2a.NewSendMessageRequest(msg)

	if req.JSONRPC != "2.0" {
		t.Errorf("JSONRPC = %q, want 2.0", req.JSONRPC)
	}
	if req.Method != a2a.MethodMessageSend {
		t.Errorf("Method = %q, want %q", req.Method, a2a.MethodMessageSend)
	}
	if req.ID != msg.MessageID {
		t.Errorf("ID = %q, want the message id %q", req.ID, msg.MessageID)
	}
}

func TestAgentCardToMap(t *testing.T) {
	card := &a2a.AgentCard{
		Name:        "Test Agent",
		Description: "a test agent",
		URL:         "https://example.com/agent",
	}

	m, err := card.ToMap()
	if err != nil {
		t.Fatalf("ToMap() error = %v", err)
	}
	if m["name"] != "Test Agent" || m["url"] != "https://example.com/agent" {
		t.Errorf("ToMap() = %v, want name and url rendered", m)
	}
}

func TestSendResultToMap(t *testing.T) {
	t.Run("message", func(t *testing.T) {
		r := &a2a.SendResult{Message: a2a.NewUserMessage("m-1", "hi")}
		m, err := r.ToMap()
		if err != nil {
			t.Fatalf("ToMap() error = %v", err)
		}
		if m["messageId"] != "m-1" {
			t.Errorf("ToMap() = %v, want messageId rendered", m)
		}
	})

	t.Run("task", func(t *testing.T) {
		r := &a2a.SendResult{Task: &a2a.Task{ID: "t-1", Status: a2a.TaskStatus{State: a2a.TaskStateCompleted}}}
		m, err := r.ToMap()
		if err != nil {
			t.Fatalf("ToMap() error = %v", err)
		}
		if m["id"] != "t-1" {
			t.Errorf("ToMap() = %v, want task id rendered", m)
		}
	})

	t.Run("empty", func(t *testing.T) {
		m, err := (&a2a.SendResult{}).ToMap()
		if err != nil {
			t.Fatalf("ToMap() error = %v", err)
		}
		if len(m) != 0 {
			t.Errorf("ToMap() = %v, want empty map", m)
		}
	})
}
