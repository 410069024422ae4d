// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

// PushNotificationConfig is the webhook target an agent delivers
// asynchronous task updates to.
type PushNotificationConfig struct {
	URL   string `json:"url"`
	Token string `json:"token,omitzero"`
}
