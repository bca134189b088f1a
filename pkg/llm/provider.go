// Package llm abstracts the chat model backend behind a minimal contract:
// the full ordered turn history goes in, the assistant reply comes out.
package llm

import (
	"context"
)

// Message represents a chat turn in a provider-agnostic format.
type Message struct {
	Role    string // "user", "assistant", "system"
	Content string
}

// LLMProvider defines the contract for any LLM backend.
type LLMProvider interface {
	// Chat sends the conversation history to the model and returns the
	// response. It must honor ctx cancellation and its own hard timeout.
	Chat(ctx context.Context, history []Message) (string, error)
}
