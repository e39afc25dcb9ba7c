// Package session owns the in-memory authenticated session and keeps it in
// lockstep with durable storage.
package session

import (
	"github.com/sportsclub/admincore/internal/domain"
	"github.com/sportsclub/admincore/internal/store"
)

// Holder owns the current bearer token and user identity. Both halves are
// always set or cleared together; every mutation persists before it updates
// memory so a failed write never leaves the two out of sync.
type Holder struct {
	sessions *store.SessionStore
	token    string
	user     domain.User
	active   bool
}

// NewHolder constructs a Holder, rehydrating any persisted session. A
// partial persisted session (token without user, or vice versa) counts as
// no session.
func NewHolder(sessions *store.SessionStore) (*Holder, error) {
	h := &Holder{sessions: sessions}
	token, user, ok, err := sessions.Load()
	if err != nil {
		return nil, err
	}
	if ok {
		h.token = token
		h.user = user
		h.active = true
	}
	return h, nil
}

// Set stores the session in durable storage and then in memory.
func (h *Holder) Set(token string, user domain.User) error {
	if err := h.sessions.Save(token, user); err != nil {
		return err
	}
	h.token = token
	h.user = user
	h.active = true
	return nil
}

// Clear removes the session from durable storage and memory.
func (h *Holder) Clear() error {
	if err := h.sessions.Clear(); err != nil {
		return err
	}
	h.token = ""
	h.user = domain.User{}
	h.active = false
	return nil
}

// Token returns the current bearer token, or "" when unauthenticated.
func (h *Holder) Token() string {
	return h.token
}

// User returns the authenticated user and whether a session is active.
func (h *Holder) User() (domain.User, bool) {
	return h.user, h.active
}

// Authenticated reports whether a session is active.
func (h *Holder) Authenticated() bool {
	return h.active
}
