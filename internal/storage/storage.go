// Package storage defines the persistence boundary for the recruitment
// session. The session is one document per deployment; implementations
// (e.g. the JSON document store) live in subpackages.
package storage

import (
	"context"

	"github.com/mapleparty/amoria/internal/party/domain"
)

// SessionStore persists the single recruitment session document.
type SessionStore interface {
	// Load reads the persisted session. A missing document yields the
	// empty idle session; a malformed one is tolerated by falling back to
	// defaults rather than failing the caller.
	Load(ctx context.Context) (domain.Session, error)
	// Save writes the full session document atomically. Callers treat a
	// failure as log-and-continue; the in-memory session stays
	// authoritative.
	Save(ctx context.Context, session domain.Session) error
}
