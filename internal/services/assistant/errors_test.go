package assistant

import (
	"errors"
	"fmt"
	"testing"
)

func TestFallback(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not configured", ErrNotConfigured, FallbackNotConfigured},
		{"wrapped not configured", fmt.Errorf("startup: %w", ErrNotConfigured), FallbackNotConfigured},
		{"empty reply", ErrEmptyReply, FallbackEmptyReply},
		{"network error", errors.New("connection refused"), FallbackUnavailable},
		{"wrapped provider error", fmt.Errorf("chat completion failed: %w", errors.New("timeout")), FallbackUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Fallback(tt.err); got != tt.want {
				t.Errorf("Fallback(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}
