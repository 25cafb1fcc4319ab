// Package service implements the recruitment session state machine. Every
// operation runs as a critical section over the single process-wide
// session: read, validate, mutate, persist.
package service

import (
	"context"
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/mapleparty/amoria/internal/broadcast"
	apperrors "github.com/mapleparty/amoria/internal/errors"
	"github.com/mapleparty/amoria/internal/party/domain"
	"github.com/mapleparty/amoria/internal/party/render"
	platformerrors "github.com/mapleparty/amoria/internal/platform/errors"
	"github.com/mapleparty/amoria/internal/storage"
)

// Service owns the recruitment session and serializes all mutations behind
// one lock, so two concurrent joins can never both observe a roster one
// short of capacity and overshoot it.
type Service struct {
	mu      sync.Mutex
	session domain.Session

	store    storage.SessionStore
	sink     broadcast.Sink
	renderer *render.Renderer
	tracer   trace.Tracer
}

// New builds a Service around an initial session, usually the one the
// store loaded at startup. store and sink may be nil in tests.
func New(initial domain.Session, store storage.SessionStore, sink broadcast.Sink, renderer *render.Renderer) *Service {
	if renderer == nil {
		renderer = render.NewRenderer("")
	}
	return &Service{
		session:  initial,
		store:    store,
		sink:     sink,
		renderer: renderer,
		tracer:   otel.Tracer("party"),
	}
}

// Load builds a Service from the session persisted in store. A load
// failure is logged and degrades to the empty idle session.
func Load(ctx context.Context, store storage.SessionStore, sink broadcast.Sink, renderer *render.Renderer) *Service {
	session := domain.NewSession()
	if store != nil {
		loaded, err := store.Load(ctx)
		if err != nil {
			log.Printf("party: load session failed err=%v", err)
		} else {
			session = loaded
		}
	}
	return New(session, store, sink, renderer)
}

// persistLocked saves the session inside the critical section. Persistence
// failure must never abort a command response, so it degrades to a log
// line; the in-memory session stays authoritative.
func (s *Service) persistLocked(ctx context.Context) {
	if s.store == nil {
		return
	}
	if err := s.store.Save(ctx, s.session); err != nil {
		log.Printf("party: save session failed err=%v", err)
	}
}

func (s *Service) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, name)
}

// errInvalidInput maps domain validation sentinels onto coded errors.
func errInvalidInput(cause error) error {
	if cause == domain.ErrInvalidRole {
		return platformerrors.Wrap(apperrors.CodeRoleTokenInvalid, "role token outside synonym set", cause)
	}
	return platformerrors.Wrap(apperrors.CodeInputInvalid, "registration input invalid", cause)
}

func errDuplicateCharacter(characterID string) error {
	return platformerrors.WithMetadata(apperrors.CodeCharacterDuplicate, "character already registered by another identity", map[string]string{
		"CharacterID": characterID,
	})
}

// Track records a source channel on the session for the completion
// broadcast. Empty identifiers (private contexts) are ignored; newly
// tracked channels are persisted.
func (s *Service) Track(ctx context.Context, channelID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session.TrackChannel(channelID) {
		s.persistLocked(ctx)
	}
}

// Query returns a read-only snapshot of the current session.
func (s *Service) Query(ctx context.Context) domain.Session {
	_, span := s.startSpan(ctx, "party.query")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Clone()
}

// QuerySelf returns the caller's registration and whether they are the
// captain. The final return is false when the caller is not registered.
func (s *Service) QuerySelf(ctx context.Context, userID string) (domain.Participant, bool, bool) {
	_, span := s.startSpan(ctx, "party.query_self")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.session.FindByUserID(userID)
	if !ok {
		return domain.Participant{}, false, false
	}
	return s.session.Members[i], s.session.IsCaptain(userID), true
}
