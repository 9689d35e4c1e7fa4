package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-serble-keeper/internal/logger"
	"github.com/MKhiriev/go-serble-keeper/models"
)

// CredentialsKey is the storage key of the software authenticator's
// credential list.
const CredentialsKey = "passkey-credentials"

type credentialStore struct {
	kv KeyValueStorage
	mu sync.Mutex
}

// NewCredentialRepository stores every credential as one JSON array under
// [CredentialsKey].
func NewCredentialRepository(kv KeyValueStorage) CredentialRepository {
	return &credentialStore{kv: kv}
}

func (s *credentialStore) SaveCredential(ctx context.Context, cred models.StoredCredential) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range all {
		if bytes.Equal(all[i].ID, cred.ID) {
			all[i] = cred
			replaced = true
			break
		}
	}
	if !replaced {
		all = append(all, cred)
	}
	return s.save(ctx, all)
}

func (s *credentialStore) ListCredentials(ctx context.Context, rpID string) ([]models.StoredCredential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.StoredCredential, 0, len(all))
	for _, c := range all {
		if rpID == "" || c.RPID == rpID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *credentialStore) UpdateSignCount(ctx context.Context, credentialID []byte, signCount uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load(ctx)
	if err != nil {
		return err
	}
	for i := range all {
		if bytes.Equal(all[i].ID, credentialID) {
			all[i].SignCount = signCount
			return s.save(ctx, all)
		}
	}
	return ErrCredentialNotFound
}

func (s *credentialStore) load(ctx context.Context) ([]models.StoredCredential, error) {
	raw, err := s.kv.Get(ctx, CredentialsKey)
	if errors.Is(err, ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load credentials: %w", err)
	}

	var creds []models.StoredCredential
	if err := json.Unmarshal([]byte(raw), &creds); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "credentialStore.load").Msg("stored credentials are corrupted")
		return nil, fmt.Errorf("decode credentials: %w", err)
	}
	return creds, nil
}

func (s *credentialStore) save(ctx context.Context, creds []models.StoredCredential) error {
	payload, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}
	if err := s.kv.Set(ctx, CredentialsKey, string(payload)); err != nil {
		return fmt.Errorf("save credentials: %w", err)
	}
	return nil
}
