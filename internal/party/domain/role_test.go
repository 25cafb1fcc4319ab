package domain

import (
	"errors"
	"testing"
)

func TestParseRoleSynonyms(t *testing.T) {
	tests := []struct {
		token string
		want  Role
	}{
		{"br", RoleBride},
		{"BR", RoleBride},
		{"新娘", RoleBride},
		{"  br  ", RoleBride},
		{"gr", RoleGroom},
		{"Gr", RoleGroom},
		{"新郎", RoleGroom},
		{"\t新郎 ", RoleGroom},
	}

	for _, tt := range tests {
		role, err := ParseRole(tt.token)
		if err != nil {
			t.Fatalf("parse %q: %v", tt.token, err)
		}
		if role != tt.want {
			t.Fatalf("parse %q: expected %q, got %q", tt.token, tt.want, role)
		}
	}
}

func TestParseRoleRejectsUnknownTokens(t *testing.T) {
	for _, token := range []string{"", "bride", "groom", "b r", "新"} {
		role, err := ParseRole(token)
		if !errors.Is(err, ErrInvalidRole) {
			t.Fatalf("parse %q: expected ErrInvalidRole, got %v", token, err)
		}
		if role != RoleUnspecified {
			t.Fatalf("parse %q: expected unspecified role, got %q", token, role)
		}
	}
}

func TestRoleValid(t *testing.T) {
	if !RoleBride.Valid() || !RoleGroom.Valid() {
		t.Fatal("expected canonical roles to be valid")
	}
	if RoleUnspecified.Valid() || Role("owner").Valid() {
		t.Fatal("expected non-canonical roles to be invalid")
	}
}
