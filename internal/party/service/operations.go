package service

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/mapleparty/amoria/internal/broadcast"
	apperrors "github.com/mapleparty/amoria/internal/errors"
	"github.com/mapleparty/amoria/internal/party/domain"
	platformerrors "github.com/mapleparty/amoria/internal/platform/errors"
)

// CreateOutcome reports a successfully opened session.
type CreateOutcome struct {
	Captain domain.Participant
	Session domain.Session
}

// JoinOutcome reports a successful sign-up. When Completed is true the
// roster reached capacity: Session is the pre-reset snapshot and Broadcast
// aggregates the final-roster fan-out results.
type JoinOutcome struct {
	Completed   bool
	Participant domain.Participant
	Session     domain.Session
	Broadcast   broadcast.Result
}

// DeleteOutcome reports an admin removal. CaptainRemoved means the target
// was the captain and the whole session was dissolved.
type DeleteOutcome struct {
	CaptainRemoved bool
	Removed        domain.Participant
}

// Create opens a recruitment session with the caller as captain and first
// member. channelID is tracked for the completion broadcast when the call
// comes from a group context.
func (s *Service) Create(ctx context.Context, input domain.NewParticipantInput, channelID string) (CreateOutcome, error) {
	ctx, span := s.startSpan(ctx, "party.create")
	defer span.End()

	captain, err := domain.NewParticipant(input)
	if err != nil {
		return CreateOutcome{}, errInvalidInput(err)
	}
	span.SetAttributes(attribute.String("party.character_id", captain.CharacterID))

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.Active() {
		if i, ok := s.session.FindByCharacterID(captain.CharacterID); ok && s.session.Members[i].UserID != captain.UserID {
			return CreateOutcome{}, errDuplicateCharacter(captain.CharacterID)
		}
		return CreateOutcome{}, platformerrors.New(apperrors.CodeSessionAlreadyActive, "a session is already recruiting")
	}

	s.session.Status = domain.StatusRecruiting
	s.session.Captain = captain
	s.session.Members = []domain.Participant{captain}
	s.session.TrackChannel(channelID)
	s.persistLocked(ctx)

	return CreateOutcome{Captain: captain, Session: s.session.Clone()}, nil
}

// Join registers the caller on the roster. A caller already registered is
// overwritten, not duplicated: the old entry is dropped and the new one
// appended at the end (the captain keeps position 0 so the roster head
// stays the captain). The unconditional completion check runs after every
// successful join: at capacity, the final roster is rendered, fanned out
// to every tracked channel, and the session is hard-reset, all before the
// lock is released.
func (s *Service) Join(ctx context.Context, input domain.NewParticipantInput, channelID string) (JoinOutcome, error) {
	ctx, span := s.startSpan(ctx, "party.join")
	defer span.End()

	participant, err := domain.NewParticipant(input)
	if err != nil {
		return JoinOutcome{}, errInvalidInput(err)
	}
	span.SetAttributes(attribute.String("party.character_id", participant.CharacterID))

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.session.Active() {
		return JoinOutcome{}, platformerrors.New(apperrors.CodeNoActiveSession, "no session is recruiting")
	}
	if i, ok := s.session.FindByCharacterID(participant.CharacterID); ok && s.session.Members[i].UserID != participant.UserID {
		return JoinOutcome{}, errDuplicateCharacter(participant.CharacterID)
	}

	s.session.TrackChannel(channelID)
	if s.session.IsCaptain(participant.UserID) {
		// A captain re-registration edits in place: moving the captain off
		// the roster head would break the captain-is-first invariant.
		i, _ := s.session.FindByUserID(participant.UserID)
		s.session.Members[i] = participant
		s.session.Captain = participant
	} else {
		s.session.RemoveByUserID(participant.UserID)
		s.session.Members = append(s.session.Members, participant)
	}

	if len(s.session.Members) >= domain.Capacity {
		snapshot := s.session.Clone()
		text := s.renderer.Completion(snapshot)
		result := broadcast.Fanout(ctx, s.sink, snapshot.Channels, text)
		s.session.Reset()
		s.persistLocked(ctx)
		span.SetAttributes(attribute.Bool("party.completed", true))
		return JoinOutcome{
			Completed:   true,
			Participant: participant,
			Session:     snapshot,
			Broadcast:   result,
		}, nil
	}

	s.persistLocked(ctx)
	return JoinOutcome{Participant: participant, Session: s.session.Clone()}, nil
}

// Leave removes the caller from the roster. The captain cannot leave and
// must cancel the session instead.
func (s *Service) Leave(ctx context.Context, userID string) (domain.Session, error) {
	ctx, span := s.startSpan(ctx, "party.leave")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.session.Active() {
		return domain.Session{}, platformerrors.New(apperrors.CodeNoActiveSession, "no session is recruiting")
	}
	if s.session.IsCaptain(userID) {
		return domain.Session{}, platformerrors.New(apperrors.CodeCaptainCannotLeave, "captain must cancel instead of leaving")
	}
	if !s.session.RemoveByUserID(userID) {
		return domain.Session{}, platformerrors.New(apperrors.CodeNotAMember, "caller is not on the roster")
	}
	s.persistLocked(ctx)
	return s.session.Clone(), nil
}

// Replace edits the caller's own registration in place. When the caller is
// the captain, the captain record mirrors the same three fields so both
// copies stay in step.
func (s *Service) Replace(ctx context.Context, input domain.NewParticipantInput) (domain.Participant, error) {
	ctx, span := s.startSpan(ctx, "party.replace")
	defer span.End()

	participant, err := domain.NewParticipant(input)
	if err != nil {
		return domain.Participant{}, errInvalidInput(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.session.FindByUserID(participant.UserID)
	if !ok {
		return domain.Participant{}, platformerrors.New(apperrors.CodeNotAMember, "caller is not on the roster")
	}
	if j, taken := s.session.FindByCharacterID(participant.CharacterID); taken && s.session.Members[j].UserID != participant.UserID {
		return domain.Participant{}, errDuplicateCharacter(participant.CharacterID)
	}

	member := &s.session.Members[i]
	member.CharacterID = participant.CharacterID
	member.Role = participant.Role
	member.Job = participant.Job
	if s.session.IsCaptain(participant.UserID) {
		s.session.Captain.CharacterID = participant.CharacterID
		s.session.Captain.Role = participant.Role
		s.session.Captain.Job = participant.Job
	}
	s.persistLocked(ctx)
	return *member, nil
}

// AdminDelete removes a participant identified by character id first, then
// by stable identity. Removing the captain dissolves the whole session.
func (s *Service) AdminDelete(ctx context.Context, identifier string, callerIsAdmin bool) (DeleteOutcome, error) {
	ctx, span := s.startSpan(ctx, "party.admin_delete")
	defer span.End()

	if !callerIsAdmin {
		return DeleteOutcome{}, platformerrors.New(apperrors.CodeForbidden, "admin delete requires admin rights")
	}
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return DeleteOutcome{}, platformerrors.Wrap(apperrors.CodeInputInvalid, "delete target is required", domain.ErrEmptyCharacterID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.session.FindByCharacterID(identifier)
	if !ok {
		i, ok = s.session.FindByUserID(identifier)
	}
	if !ok {
		return DeleteOutcome{}, platformerrors.WithMetadata(apperrors.CodeTargetNotFound, "delete target not on roster", map[string]string{
			"Target": identifier,
		})
	}

	removed := s.session.Members[i]
	if s.session.IsCaptain(removed.UserID) {
		s.session.Reset()
		s.persistLocked(ctx)
		return DeleteOutcome{CaptainRemoved: true, Removed: removed}, nil
	}
	s.session.RemoveByUserID(removed.UserID)
	s.persistLocked(ctx)
	return DeleteOutcome{Removed: removed}, nil
}

// Cancel hard-resets the session. Only the captain may cancel; no
// broadcast is sent.
func (s *Service) Cancel(ctx context.Context, userID string) error {
	ctx, span := s.startSpan(ctx, "party.cancel")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.session.Active() {
		return platformerrors.New(apperrors.CodeNoActiveSession, "no session is recruiting")
	}
	if !s.session.IsCaptain(userID) {
		return platformerrors.New(apperrors.CodeForbidden, "only the captain may cancel")
	}
	s.session.Reset()
	s.persistLocked(ctx)
	return nil
}

// AdminReset unconditionally hard-resets the session regardless of state.
func (s *Service) AdminReset(ctx context.Context, callerIsAdmin bool) error {
	ctx, span := s.startSpan(ctx, "party.admin_reset")
	defer span.End()

	if !callerIsAdmin {
		return platformerrors.New(apperrors.CodeForbidden, "admin reset requires admin rights")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.Reset()
	s.persistLocked(ctx)
	return nil
}
