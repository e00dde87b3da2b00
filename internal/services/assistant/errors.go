package assistant

import "errors"

// Raw provider errors never reach the owner. Every fault maps to one of
// these fixed strings.
const (
	// FallbackNotConfigured is shown when no API key is configured
	FallbackNotConfigured = "Sorry, the assistant isn't set up yet. Add an API key to enable it."
	// FallbackUnavailable is shown on network or provider failures
	FallbackUnavailable = "Sorry, I couldn't reach the assistant right now. Please try again later."
	// FallbackEmptyReply is shown when the provider returns no usable content
	FallbackEmptyReply = "Sorry, I didn't get a proper answer. Please try rephrasing your question."
)

// ErrNotConfigured indicates that no provider credentials are available
var ErrNotConfigured = errors.New("assistant not configured")

// ErrEmptyReply indicates that the provider responded without content
var ErrEmptyReply = errors.New("assistant returned no content")

// Fallback maps a provider error to the fixed user-facing string
func Fallback(err error) string {
	switch {
	case errors.Is(err, ErrNotConfigured):
		return FallbackNotConfigured
	case errors.Is(err, ErrEmptyReply):
		return FallbackEmptyReply
	default:
		return FallbackUnavailable
	}
}
