package session

import (
	"sync"

	domainerr "github.com/amirhossein-jamali/cfgstore-diag/internal/domain/error"
	"github.com/google/uuid"
)

// Store keeps the open sessions of the daemon
type Store struct {
	rep *domainerr.Reporter

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

// NewStore creates an empty store whose sessions record errors with rep
func NewStore(rep *domainerr.Reporter) *Store {
	return &Store{
		rep:      rep,
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Create opens and registers a new session
func (st *Store) Create() *Session {
	s := New(st.rep)

	st.mu.Lock()
	st.sessions[s.ID()] = s
	st.mu.Unlock()

	return s
}

// Get looks a session up by id
func (st *Store) Get(id uuid.UUID) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	s, ok := st.sessions[id]
	return s, ok
}

// Delete removes a session and releases its pending list
func (st *Store) Delete(id uuid.UUID) bool {
	st.mu.Lock()
	s, ok := st.sessions[id]
	delete(st.sessions, id)
	st.mu.Unlock()

	if ok {
		s.TakeError().Free()
	}
	return ok
}

// Len returns the number of open sessions
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()

	return len(st.sessions)
}
