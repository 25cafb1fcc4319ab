package errors

import (
	"errors"
	"strings"
	"testing"

	platformerrors "github.com/mapleparty/amoria/internal/platform/errors"
)

func TestLocalizeDomainError(t *testing.T) {
	err := platformerrors.WithMetadata(CodeTargetNotFound, "target not in roster", map[string]string{
		"Target": "dingzhen",
	})

	msg := Localize(err, "zh-CN")
	if !strings.Contains(msg, "dingzhen") {
		t.Fatalf("expected target in message, got %q", msg)
	}

	english := Localize(err, "en-US")
	if !strings.Contains(english, "dingzhen") {
		t.Fatalf("expected target in english message, got %q", english)
	}
	if english == msg {
		t.Fatal("expected locale-specific messages to differ")
	}
}

func TestLocalizeUnknownErrorIsGeneric(t *testing.T) {
	msg := Localize(errors.New("sqlite exploded"), "zh-CN")
	if strings.Contains(msg, "sqlite") {
		t.Fatalf("internal error leaked into user message: %q", msg)
	}
}

func TestIsCode(t *testing.T) {
	err := platformerrors.New(CodeForbidden, "caller lacks admin rights")
	if !IsCode(err, CodeForbidden) {
		t.Fatal("expected code match")
	}
	if IsCode(err, CodeNotAMember) {
		t.Fatal("unexpected code match")
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Fatal("expected unknown code for plain error")
	}
}
