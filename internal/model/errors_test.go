package model

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	if kind := KindOf(NewError(ErrorKindInput, "bad")); kind != ErrorKindInput {
		t.Errorf("Expected input kind, got %s", kind)
	}

	// Wrapped relay errors keep their kind.
	wrapped := fmt.Errorf("outer: %w", NewError(ErrorKindStaging, "missing"))
	if kind := KindOf(wrapped); kind != ErrorKindStaging {
		t.Errorf("Expected staging kind through wrapping, got %s", kind)
	}

	// Unclassified errors default to engine.
	if kind := KindOf(errors.New("boom")); kind != ErrorKindEngine {
		t.Errorf("Expected engine kind for plain error, got %s", kind)
	}
}

func TestIsBotCheck(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{errors.New("Sign in to confirm you're not a bot"), true},
		{errors.New("please confirm you are not a bot to continue"), true},
		{errors.New("ERROR: [youtube] Sign in to confirm your age"), true},
		{errors.New("connection refused"), false},
		{nil, false},
	}
	for _, tc := range cases {
		if got := IsBotCheck(tc.err); got != tc.want {
			t.Errorf("IsBotCheck(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}

func TestIsBotCheckInspectsUnwrapChain(t *testing.T) {
	cause := errors.New("Sign in to confirm you're not a bot")
	wrapped := WrapError(ErrorKindEngine, "extraction failed", cause)

	if !IsBotCheck(wrapped) {
		t.Error("Expected bot check to be detected through the unwrap chain")
	}
}

func TestUserMessage(t *testing.T) {
	cause := errors.New("Sign in to confirm you're not a bot")
	if msg := UserMessage(cause); msg != ProtectedMediaMessage {
		t.Errorf("Expected protected media message, got '%s'", msg)
	}

	relayErr := NewError(ErrorKindInput, "No URL provided.")
	if msg := UserMessage(relayErr); msg != "No URL provided." {
		t.Errorf("Expected relay error message to pass through, got '%s'", msg)
	}

	if msg := UserMessage(errors.New("boom")); msg != "Download failed: boom" {
		t.Errorf("Expected generic substitution, got '%s'", msg)
	}

	if msg := UserMessage(nil); msg != "" {
		t.Errorf("Expected empty message for nil error, got '%s'", msg)
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("io failure")
	err := WrapError(ErrorKindCredential, "cannot read cookies", cause)

	if !errors.Is(err, cause) {
		t.Error("Expected errors.Is to reach the wrapped cause")
	}
}
