package store

import (
	"context"

	"github.com/MKhiriev/go-serble-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// KeyValueStorage is the low-level local persistence every client store is
// built on. Values are opaque strings.
type KeyValueStorage interface {
	// Get returns ErrKeyNotFound when key has never been set or was deleted.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	// Delete is a no-op for an absent key.
	Delete(ctx context.Context, key string) error
}

// ErrorClassificator decides whether a failed storage operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// CredentialRepository persists key pairs of the software authenticator.
type CredentialRepository interface {
	SaveCredential(ctx context.Context, cred models.StoredCredential) error
	ListCredentials(ctx context.Context, rpID string) ([]models.StoredCredential, error)
	UpdateSignCount(ctx context.Context, credentialID []byte, signCount uint32) error
}
