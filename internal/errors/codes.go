// Package errors enumerates the machine-readable error codes for the
// recruitment core and maps them to localized user-facing messages.
package errors

import "github.com/mapleparty/amoria/internal/platform/errors"

// Code aliases the platform error code type so call sites can reference
// codes without importing both packages.
type Code = errors.Code

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Input errors
	CodeInputInvalid     Code = "INPUT_INVALID"
	CodeRoleTokenInvalid Code = "ROLE_TOKEN_INVALID"

	// Session lifecycle errors
	CodeSessionAlreadyActive Code = "SESSION_ALREADY_ACTIVE"
	CodeNoActiveSession      Code = "NO_ACTIVE_SESSION"

	// Roster errors
	CodeCharacterDuplicate Code = "CHARACTER_DUPLICATE"
	CodeNotAMember         Code = "NOT_A_MEMBER"
	CodeTargetNotFound     Code = "TARGET_NOT_FOUND"

	// Authority errors
	CodeForbidden          Code = "FORBIDDEN"
	CodeCaptainCannotLeave Code = "CAPTAIN_CANNOT_LEAVE"
)
