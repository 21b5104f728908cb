package nlp

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsRefusal(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain error", errors.New("connection refused"), false},
		{"refusal", NewRefusalError("blocked by content filter"), true},
		{"empty response", NewEmptyResponseError("no choices"), true},
		{"wrapped refusal", fmt.Errorf("entity extraction: %w", NewRefusalError("")), true},
		{"wrapped empty", fmt.Errorf("cypher generation: %w", NewEmptyResponseError("")), true},
		{"wrapped plain", fmt.Errorf("chat completion failed: %w", errors.New("timeout")), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRefusal(tt.err); got != tt.want {
				t.Errorf("IsRefusal(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestRefusalErrorIs(t *testing.T) {
	err := fmt.Errorf("step failed: %w", NewRefusalError("declined"))

	var refusal *RefusalError
	if !errors.As(err, &refusal) {
		t.Fatal("expected errors.As to find RefusalError")
	}
	if refusal.Message != "declined" {
		t.Errorf("unexpected message: %q", refusal.Message)
	}
	if !errors.Is(err, &RefusalError{}) {
		t.Error("expected errors.Is to match any RefusalError")
	}
	if errors.Is(err, &EmptyResponseError{}) {
		t.Error("RefusalError must not match EmptyResponseError")
	}
}

func TestErrorMessages(t *testing.T) {
	if msg := NewRefusalError("").Error(); msg != ErrRefusal.Error() {
		t.Errorf("unexpected default message: %q", msg)
	}
	if msg := NewRefusalError("custom").Error(); msg != "custom" {
		t.Errorf("unexpected message: %q", msg)
	}
	if msg := NewEmptyResponseError("").Error(); msg != ErrEmptyResponse.Error() {
		t.Errorf("unexpected default message: %q", msg)
	}
}
