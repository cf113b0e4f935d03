package services

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionManager maps session ids to their record stores. The registry
// itself is shared between sessions; each store is only reachable through
// its own cookie.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*sessionEntry
	ttl      time.Duration
}

type sessionEntry struct {
	store    *Store
	lastSeen time.Time
}

// NewSessionManager creates the registry. Sessions idle for longer than
// ttl are discarded, together with all their records.
func NewSessionManager(ttl time.Duration) *SessionManager {
	log.Printf("Session registry initialized (ttl %s)", ttl)
	return &SessionManager{
		sessions: make(map[string]*sessionEntry),
		ttl:      ttl,
	}
}

// Get returns the store for the given session id, or nil when the
// session is unknown or has expired.
func (m *SessionManager) Get(id string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	m.sweepLocked(now)

	entry, ok := m.sessions[id]
	if !ok {
		return nil
	}
	entry.lastSeen = now
	return entry.store
}

// Create registers a fresh seeded store and returns its session id.
func (m *SessionManager) Create() (string, *Store) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	store := NewStore()
	m.sessions[id] = &sessionEntry{store: store, lastSeen: time.Now()}
	return id, store
}

// Count returns the number of live sessions.
func (m *SessionManager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// sweepLocked drops sessions idle longer than ttl. Caller holds mu.
func (m *SessionManager) sweepLocked(now time.Time) {
	for id, entry := range m.sessions {
		if now.Sub(entry.lastSeen) > m.ttl {
			delete(m.sessions, id)
		}
	}
}
