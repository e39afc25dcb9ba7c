package store

import (
	"encoding/json"
	"fmt"

	"github.com/sportsclub/admincore/internal/domain"
)

const (
	tokenKey = "authToken"
	userKey  = "user"
)

// SessionStore persists the bearer token and the authenticated user
// together. Token and user are written and removed in one transaction, so a
// half-written session can never be observed after a clean shutdown.
type SessionStore struct {
	store *Store
}

// NewSessionStore wraps a Store with session persistence.
func NewSessionStore(s *Store) *SessionStore {
	return &SessionStore{store: s}
}

// Save persists the token and user atomically.
func (s *SessionStore) Save(token string, user domain.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	tx, err := s.store.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	upsert := `
		INSERT INTO client_state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	if _, err := tx.Exec(upsert, tokenKey, token); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	if _, err := tx.Exec(upsert, userKey, string(raw)); err != nil {
		return fmt.Errorf("write user: %w", err)
	}
	return tx.Commit()
}

// Load returns the persisted session. ok is false when either half is
// missing — a partial session is treated as no session.
func (s *SessionStore) Load() (token string, user domain.User, ok bool, err error) {
	token, haveToken, err := s.store.get(tokenKey)
	if err != nil {
		return "", domain.User{}, false, err
	}
	raw, haveUser, err := s.store.get(userKey)
	if err != nil {
		return "", domain.User{}, false, err
	}
	if !haveToken || !haveUser {
		return "", domain.User{}, false, nil
	}
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return "", domain.User{}, false, fmt.Errorf("decode user: %w", err)
	}
	return token, user, true, nil
}

// Clear removes both halves of the session atomically.
func (s *SessionStore) Clear() error {
	tx, err := s.store.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM client_state WHERE key IN (?, ?)`, tokenKey, userKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return tx.Commit()
}
