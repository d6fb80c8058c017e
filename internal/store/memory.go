// internal/store/memory.go
//
// In-memory session store for the HTTP surface.
// game.Session does no locking of its own, so the store hands out sessions
// only inside Update, holding a per-session mutex for the duration.
//
// Characteristics:
//   - Sessions keyed by Session.ID().
//   - The map is guarded by an RWMutex; each entry has its own Mutex so
//     slow dictionary lookups in one session do not block the others.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/wordscramble/internal/game"
)

// ErrNotFound is returned for unknown session IDs.
var ErrNotFound = errors.New("store: session not found")

// Store defines the persistence interface for game sessions.
type Store interface {
	// Save adds or replaces a session.
	Save(ctx context.Context, s *game.Session) error

	// Update runs fn with exclusive access to the session with the given ID.
	// fn's error is returned as is.
	Update(ctx context.Context, id string, fn func(*game.Session) error) error

	// Len returns the number of stored sessions.
	Len() int
}

type entry struct {
	mu      sync.Mutex
	session *game.Session
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex
	sessions map[string]*entry
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*entry)}
}

// Save adds or replaces the session in the map.
func (m *memory) Save(ctx context.Context, s *game.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID()] = &entry{session: s}
	return nil
}

// Update looks up the session and runs fn while holding its lock.
func (m *memory) Update(ctx context.Context, id string, fn func(*game.Session) error) error {
	m.mu.RLock()
	e, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.session)
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
