// Package document stores the recruitment session as one pretty-printed
// UTF-8 JSON document on disk.
package document

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mapleparty/amoria/internal/party/domain"
)

// Known top-level document keys. Anything else is a legacy or
// forward-schema key and is carried through load/save untouched.
const (
	keyStatus   = "status"
	keyCaptain  = "captain"
	keyMembers  = "members"
	keyChannels = "channels"
)

// Store reads and writes the session document at a fixed path.
//
// Writes go to a temp file in the same directory followed by a rename, so a
// crashed write never corrupts a previously good document.
type Store struct {
	path string

	mu     sync.Mutex
	extras map[string]json.RawMessage
}

// Open prepares a document store at path, creating the parent directory if
// needed.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("document path is required")
	}
	cleanPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create document dir: %w", err)
		}
	}
	return &Store{path: cleanPath, extras: map[string]json.RawMessage{}}, nil
}

// Load reads the persisted session document.
//
// A missing file yields the empty idle session. A document that fails to
// parse, or is not a JSON object, is logged and replaced by the in-memory
// default rather than failing the caller. Known keys are decoded over the
// defaults one at a time, so a single corrupt field does not discard the
// rest; unknown keys are retained and re-emitted on Save.
func (s *Store) Load(ctx context.Context) (domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return domain.NewSession(), err
	}
	if s == nil {
		return domain.NewSession(), fmt.Errorf("document store is not configured")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session := domain.NewSession()
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return session, nil
	}
	if err != nil {
		log.Printf("document: read session failed path=%s err=%v", s.path, err)
		return session, nil
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		log.Printf("document: parse session failed path=%s err=%v", s.path, err)
		return session, nil
	}

	extras := map[string]json.RawMessage{}
	for key, value := range doc {
		var fieldErr error
		switch key {
		case keyStatus:
			fieldErr = json.Unmarshal(value, &session.Status)
		case keyCaptain:
			fieldErr = json.Unmarshal(value, &session.Captain)
		case keyMembers:
			fieldErr = json.Unmarshal(value, &session.Members)
		case keyChannels:
			fieldErr = json.Unmarshal(value, &session.Channels)
		default:
			extras[key] = value
		}
		if fieldErr != nil {
			log.Printf("document: decode session field failed path=%s key=%s err=%v", s.path, key, fieldErr)
		}
	}
	if session.Status != domain.StatusRecruiting {
		session.Status = domain.StatusIdle
	}
	s.extras = extras

	return session, nil
}

// Save serializes the full session and writes it atomically. Unknown keys
// captured by the last Load are merged back into the document so a schema
// rollback keeps its data.
func (s *Store) Save(ctx context.Context, session domain.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil {
		return fmt.Errorf("document store is not configured")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	members := session.Members
	if members == nil {
		members = []domain.Participant{}
	}
	channels := session.Channels
	if channels == nil {
		channels = []string{}
	}
	doc := map[string]any{
		keyStatus:   session.Status,
		keyCaptain:  session.Captain,
		keyMembers:  members,
		keyChannels: channels,
	}
	for key, value := range s.extras {
		doc[key] = value
	}

	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	payload = append(payload, '\n')

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".session-*.json")
	if err != nil {
		return fmt.Errorf("create temp document: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(payload); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write temp document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp document: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace document: %w", err)
	}
	return nil
}
