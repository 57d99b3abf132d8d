package domain

import "time"

// Session is the per-browser chat state. Messages are append-only until the
// user clears them.
type Session struct {
	ID        string    `json:"id"`
	Messages  []Message `json:"messages"`
	APIKey    string    `json:"api_key,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ChatStatus is what the UI needs to decide between the key prompt and the
// chat view.
type ChatStatus struct {
	APIKeySet bool      `json:"api_key_set"`
	Messages  []Message `json:"messages"`
}

type ChatReply struct {
	Reply    string    `json:"reply"`
	Messages []Message `json:"messages"`
}
