package domain

import (
	"errors"
	"strings"
)

var (
	// ErrEmptyUserID indicates a missing sender identity.
	ErrEmptyUserID = errors.New("user id is required")
	// ErrEmptyCharacterID indicates a missing character id.
	ErrEmptyCharacterID = errors.New("character id is required")
	// ErrEmptyJob indicates a missing job.
	ErrEmptyJob = errors.New("job is required")
)

// Participant is one registered player in the party roster.
//
// UserID is the stable platform identity (QQ number) and is unique within
// the roster. CharacterID is the in-game character name, unique within the
// roster independently of identity. The JSON tags follow the legacy
// database.json schema, where the role was stored under "gender".
type Participant struct {
	UserID      string `json:"user_id"`
	Nickname    string `json:"nickname"`
	CharacterID string `json:"character_id"`
	Role        Role   `json:"gender"`
	Job         string `json:"job"`
}

// NewParticipantInput describes a registration request before validation.
type NewParticipantInput struct {
	UserID      string
	Nickname    string
	CharacterID string
	RoleToken   string
	Job         string
}

// NewParticipant validates and normalizes a registration request.
// All fields are trimmed; the role token is resolved through ParseRole.
func NewParticipant(input NewParticipantInput) (Participant, error) {
	userID := strings.TrimSpace(input.UserID)
	if userID == "" {
		return Participant{}, ErrEmptyUserID
	}
	characterID := strings.TrimSpace(input.CharacterID)
	if characterID == "" {
		return Participant{}, ErrEmptyCharacterID
	}
	job := strings.TrimSpace(input.Job)
	if job == "" {
		return Participant{}, ErrEmptyJob
	}
	role, err := ParseRole(input.RoleToken)
	if err != nil {
		return Participant{}, err
	}

	return Participant{
		UserID:      userID,
		Nickname:    strings.TrimSpace(input.Nickname),
		CharacterID: characterID,
		Role:        role,
		Job:         job,
	}, nil
}
