package store

import (
	"context"
	"errors"
)

// SessionTokenKey is the storage key of the persisted access token.
const SessionTokenKey = "access_token"

// SessionStore persists the session token between runs.
type SessionStore struct {
	kv KeyValueStorage
}

func NewSessionStore(kv KeyValueStorage) *SessionStore {
	return &SessionStore{kv: kv}
}

// Token returns the persisted token, or "" if there is none.
func (s *SessionStore) Token(ctx context.Context) (string, error) {
	token, err := s.kv.Get(ctx, SessionTokenKey)
	if errors.Is(err, ErrKeyNotFound) {
		return "", nil
	}
	return token, err
}

func (s *SessionStore) SetToken(ctx context.Context, token string) error {
	if token == "" {
		return s.Clear(ctx)
	}
	return s.kv.Set(ctx, SessionTokenKey, token)
}

func (s *SessionStore) Clear(ctx context.Context) error {
	return s.kv.Delete(ctx, SessionTokenKey)
}
