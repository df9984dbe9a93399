package main

import (
	"sync"
	"time"
)

// Session correlates all dashboard requests to one previously uploaded chat
// file. The id is issued by the analysis service and treated as opaque.
type Session struct {
	ID         string
	Filename   string
	UploadedAt time.Time
	State      *ViewState
}

// SessionRegistry is the in-memory session table. Sessions live for the
// server's lifetime and are gone after a restart — there is deliberately no
// durable storage behind this.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewSessionRegistry creates an empty registry.
func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{sessions: make(map[string]*Session)}
}

// Add registers a freshly uploaded session and returns it. Re-registering an
// id replaces the previous entry wholesale.
func (r *SessionRegistry) Add(id, filename string) *Session {
	s := &Session{
		ID:         id,
		Filename:   filename,
		UploadedAt: time.Now(),
		State:      NewViewState(id),
	}
	r.mu.Lock()
	r.sessions[id] = s
	r.mu.Unlock()
	return s
}

// Get looks up a session by id.
func (r *SessionRegistry) Get(id string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

// Len returns the number of live sessions.
func (r *SessionRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
