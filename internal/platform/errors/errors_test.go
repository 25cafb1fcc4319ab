package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMatchesByCode(t *testing.T) {
	err := New("FORBIDDEN", "caller is not an admin")
	wrapped := fmt.Errorf("handle command: %w", err)

	if !errors.Is(wrapped, New("FORBIDDEN", "different message")) {
		t.Fatal("expected errors.Is to match by code")
	}
	if errors.Is(wrapped, New("NOT_A_MEMBER", "caller is not an admin")) {
		t.Fatal("expected errors.Is to reject a different code")
	}
}

func TestErrorUnwrapsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap("UNKNOWN", "save session", cause)

	if !errors.Is(err, cause) {
		t.Fatal("expected wrapped cause to be reachable")
	}
	if err.Error() != "save session" {
		t.Fatalf("expected internal message, got %q", err.Error())
	}
}

func TestWithMetadataCarriesContext(t *testing.T) {
	err := WithMetadata("CHARACTER_DUPLICATE", "character already registered", map[string]string{
		"CharacterID": "dingzhen",
	})

	var appErr *Error
	if !errors.As(err, &appErr) {
		t.Fatal("expected domain error")
	}
	if appErr.Metadata["CharacterID"] != "dingzhen" {
		t.Fatalf("expected metadata preserved, got %v", appErr.Metadata)
	}
}
