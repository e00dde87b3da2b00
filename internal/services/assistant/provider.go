package assistant

import (
	"context"
)

// Provider is the interface for chat assistant backends
type Provider interface {
	// Chat sends a single user message and returns the assistant's reply
	Chat(ctx context.Context, message string) (string, error)
}
