// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import (
	"github.com/go-json-experiment/json"
)

// Role represents the originator of a message.
type Role string

const (
	// RoleUser indicates the message is from the client.
	RoleUser Role = "user"
	// RoleAgent indicates the message is from the agent.
	RoleAgent Role = "agent"
)

// PartKind discriminates the variants of a message [Part].
type PartKind string

const (
	// PartKindText indicates the part carries plain text.
	PartKindText PartKind = "text"
	// PartKindFile indicates the part carries file content by value or URI.
	PartKindFile PartKind = "file"
	// PartKindData indicates the part carries structured data.
	PartKindData PartKind = "data"
)

// FileContent carries a file either inline (base64 bytes) or by URI.
type FileContent struct {
	Name     string `json:"name,omitzero"`
	MimeType string `json:"mimeType,omitzero"`
	Bytes    string `json:"bytes,omitzero"`
	URI      string `json:"uri,omitzero"`
}

// Part is one kind-tagged unit of message content. Exactly the field
// matching Kind is populated.
type Part struct {
	Kind PartKind       `json:"kind"`
	Text string         `json:"text,omitzero"`
	File *FileContent   `json:"file,omitzero"`
	Data map[string]any `json:"data,omitzero"`
}

// NewTextPart returns a text [Part].
func NewTextPart(text string) Part {
	return Part{Kind: PartKindText, Text: text}
}

// Message is one turn of an A2A conversation.
type Message struct {
	Kind      string `json:"kind,omitzero"`
	MessageID string `json:"messageId"`
	Role      Role   `json:"role"`
	Parts     []Part `json:"parts"`
	TaskID    string `json:"taskId,omitzero"`
	ContextID string `json:"contextId,omitzero"`
}

// NewUserMessage returns a user-role [Message] holding a single text part.
func NewUserMessage(messageID, text string) *Message {
	return &Message{
		Kind:      "message",
		MessageID: messageID,
		Role:      RoleUser,
		Parts:     []Part{NewTextPart(text)},
	}
}

// TaskState represents the lifecycle state of a task.
type TaskState string

const (
	TaskStateSubmitted     TaskState = "submitted"
	TaskStateWorking       TaskState = "working"
	TaskStateInputRequired TaskState = "input-required"
	TaskStateCompleted     TaskState = "completed"
	TaskStateFailed        TaskState = "failed"
	TaskStateCanceled      TaskState = "canceled"
)

// TaskStatus is the current status of a task.
type TaskStatus struct {
	State     TaskState `json:"state"`
	Message   *Message  `json:"message,omitzero"`
	Timestamp string    `json:"timestamp,omitzero"`
}

// Artifact is an output a task produced.
type Artifact struct {
	ArtifactID string `json:"artifactId,omitzero"`
	Name       string `json:"name,omitzero"`
	Parts      []Part `json:"parts"`
}

// Task is the server-side unit of work a message/send may resolve to when
// the agent does not answer with a bare message.
type Task struct {
	Kind      string     `json:"kind,omitzero"`
	ID        string     `json:"id"`
	ContextID string     `json:"contextId,omitzero"`
	Status    TaskStatus `json:"status"`
	Artifacts []Artifact `json:"artifacts,omitzero"`
	History   []*Message `json:"history,omitzero"`
}

// SendResult is the decoded result of a message/send call: either a direct
// agent message or a task, depending on how the agent chose to respond.
type SendResult struct {
	Message *Message
	Task    *Task
}

// ToMap renders whichever variant is populated as a plain mapping.
func (r *SendResult) ToMap() (map[string]any, error) {
	var v any
	switch {
	case r.Message != nil:
		v = r.Message
	case r.Task != nil:
		v = r.Task
	default:
		return map[string]any{}, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}
