package providers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestRateLimitErrorString(t *testing.T) {
	err := &RateLimitError{
		Provider:   "p",
		StatusCode: 429,
		Message:    "rate limited",
	}
	if got := err.Error(); got == "" || got == "rate limited" {
		t.Fatalf("expected status in error string, got %q", got)
	}

	rl, ok := AsRateLimitError(fmt.Errorf("wrapped: %w", err))
	if !ok || rl == nil {
		t.Fatalf("expected to unwrap rate limit error")
	}

	noStatus := &RateLimitError{}
	if got := noStatus.Error(); got == "" {
		t.Fatalf("expected fallback message")
	}
}

func TestStatusErrorString(t *testing.T) {
	err := &StatusError{Provider: "nhlapi", StatusCode: 502, URL: "http://x/y", Body: "bad gateway"}
	if got := err.Error(); !strings.Contains(got, "502") || !strings.Contains(got, "bad gateway") {
		t.Fatalf("unexpected message %q", got)
	}
	bare := &StatusError{Provider: "nhlapi", StatusCode: 500, URL: "http://x/y"}
	if strings.HasSuffix(bare.Error(), ": ") {
		t.Fatalf("unexpected trailing separator %q", bare.Error())
	}
}

func TestIsRetryable(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"not_found", fmt.Errorf("game 1: %w", ErrNotFound), false},
		{"unavailable", ErrProviderUnavailable, false},
		{"canceled", context.Canceled, false},
		{"rate_limited", &RateLimitError{StatusCode: 429}, true},
		{"server_error", &StatusError{StatusCode: 503}, true},
		{"client_error", &StatusError{StatusCode: 400}, false},
		{"transport", errors.New("connection reset"), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsRetryable(tc.err); got != tc.want {
				t.Fatalf("IsRetryable(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
	if !IsNotFound(fmt.Errorf("wrapped: %w", ErrNotFound)) {
		t.Fatalf("expected wrapped not found to match")
	}
}
