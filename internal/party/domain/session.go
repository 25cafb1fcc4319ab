package domain

import "strings"

// Status describes the lifecycle state of the recruitment session.
// The string values are the persisted document codes.
type Status string

const (
	// StatusIdle indicates no recruitment is in progress.
	StatusIdle Status = "idle"
	// StatusRecruiting indicates the roster is open for sign-ups.
	StatusRecruiting Status = "recruiting"
)

// Capacity is the fixed APQ party size. Reaching it completes the session.
const Capacity = 6

// Session is the single, process-wide recruitment activity.
//
// Invariants: StatusIdle iff Members is empty iff the captain is unset; the
// captain is Members[0] while recruiting; Members never exceeds Capacity
// (reaching Capacity is transient and immediately followed by a reset).
type Session struct {
	Status   Status        `json:"status"`
	Captain  Participant   `json:"captain"`
	Members  []Participant `json:"members"`
	Channels []string      `json:"channels"`
}

// NewSession returns the empty idle session.
func NewSession() Session {
	return Session{Status: StatusIdle}
}

// Active reports whether recruitment is in progress with a non-empty roster.
func (s *Session) Active() bool {
	return s.Status == StatusRecruiting && len(s.Members) > 0
}

// Reset returns the session to the empty idle default, discarding the
// captain, all members, and all tracked channels.
func (s *Session) Reset() {
	*s = NewSession()
}

// IsCaptain reports whether userID opened the session.
func (s *Session) IsCaptain(userID string) bool {
	return s.Captain.UserID != "" && s.Captain.UserID == userID
}

// FindByUserID returns the roster index of the participant registered under
// userID.
func (s *Session) FindByUserID(userID string) (int, bool) {
	for i, member := range s.Members {
		if member.UserID == userID {
			return i, true
		}
	}
	return -1, false
}

// FindByCharacterID returns the roster index of the participant holding
// characterID. The match is case-sensitive on the trimmed id.
func (s *Session) FindByCharacterID(characterID string) (int, bool) {
	characterID = strings.TrimSpace(characterID)
	for i, member := range s.Members {
		if member.CharacterID == characterID {
			return i, true
		}
	}
	return -1, false
}

// RemoveByUserID drops the participant registered under userID, preserving
// the order of the remaining members. It reports whether a removal happened.
func (s *Session) RemoveByUserID(userID string) bool {
	i, ok := s.FindByUserID(userID)
	if !ok {
		return false
	}
	s.Members = append(s.Members[:i], s.Members[i+1:]...)
	return true
}

// TrackChannel records a source channel for the completion broadcast.
// Empty identifiers (private contexts) and duplicates are ignored.
// It reports whether the channel set changed.
func (s *Session) TrackChannel(channelID string) bool {
	channelID = strings.TrimSpace(channelID)
	if channelID == "" {
		return false
	}
	for _, existing := range s.Channels {
		if existing == channelID {
			return false
		}
	}
	s.Channels = append(s.Channels, channelID)
	return true
}

// RoleCounts returns the number of brides and grooms on the roster.
func (s *Session) RoleCounts() (brides, grooms int) {
	for _, member := range s.Members {
		switch member.Role {
		case RoleBride:
			brides++
		case RoleGroom:
			grooms++
		}
	}
	return brides, grooms
}

// Clone returns a deep copy safe to hand out after the session lock is
// released.
func (s *Session) Clone() Session {
	out := *s
	if s.Members != nil {
		out.Members = append([]Participant(nil), s.Members...)
	}
	if s.Channels != nil {
		out.Channels = append([]string(nil), s.Channels...)
	}
	return out
}
