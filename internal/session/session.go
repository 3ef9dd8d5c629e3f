// Package session owns the per-user server-side state: the identity
// signed in on a device and the reservation log that belongs to it.
// Sessions are memory-only; restarting the server signs everyone out,
// which the client handles by returning to sign-in.
package session

import (
	"sync"

	"github.com/studyspaces/classroom-reservation/internal/model"
	"github.com/studyspaces/classroom-reservation/internal/store"
)

// Session holds the state of one signed-in user.  All mutation goes
// through the methods below; routing decisions never happen here.
type Session struct {
	mu           sync.RWMutex
	identity     model.User
	reservations *store.Reservations
}

func newSession(u model.User) *Session {
	return &Session{identity: u, reservations: store.NewReservations()}
}

// Identity returns a copy of the current identity.
func (s *Session) Identity() model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity
}

// UpdateProfile merges a partial edit into the identity.  Email and
// role are not part of ProfileUpdate and therefore cannot change.
func (s *Session) UpdateProfile(p model.ProfileUpdate) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.Apply(&s.identity)
	return s.identity
}

// Reservations exposes the session's booking log.
func (s *Session) Reservations() *store.Reservations {
	return s.reservations
}

// Manager maps token subjects (lowercased emails) to live sessions.
// It also aggregates every session's upcoming reservations into the
// occupancy view assigners monitor.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager returns an empty session manager.
func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Start creates (or replaces) the session for the given identity and
// returns it.  Signing in on a second device picks up the same
// session, keeping one reservation store per user.
func (m *Manager) Start(u model.User) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[u.Email]; ok {
		s.mu.Lock()
		s.identity = u
		s.mu.Unlock()
		return s
	}
	s := newSession(u)
	m.sessions[u.Email] = s
	return s
}

// Get returns the session for a subject, or nil when none is active.
func (m *Manager) Get(subject string) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[subject]
}

// End removes a session.  Ending an unknown subject is a no-op.
func (m *Manager) End(subject string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, subject)
}
