package domain

import (
	"errors"
	"strings"
)

// Role is the pairing category a participant signs up as. APQ parties need
// both brides and grooms, so the two values are mutually exclusive.
//
// The string values double as the persisted document codes ("br"/"gr"),
// matching the legacy database.json schema.
type Role string

const (
	// RoleUnspecified represents an invalid role value.
	RoleUnspecified Role = ""
	// RoleBride is the bride pairing category (br / 新娘).
	RoleBride Role = "br"
	// RoleGroom is the groom pairing category (gr / 新郎).
	RoleGroom Role = "gr"
)

// ErrInvalidRole indicates a role token outside the accepted synonym set.
var ErrInvalidRole = errors.New("role must be one of br/新娘 or gr/新郎")

// ParseRole normalizes a role token to its canonical code. Tokens are
// trimmed and matched case-insensitively against the accepted synonyms.
func ParseRole(token string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "br", "新娘":
		return RoleBride, nil
	case "gr", "新郎":
		return RoleGroom, nil
	}
	return RoleUnspecified, ErrInvalidRole
}

// Valid reports whether the role is one of the two canonical codes.
func (r Role) Valid() bool {
	return r == RoleBride || r == RoleGroom
}
