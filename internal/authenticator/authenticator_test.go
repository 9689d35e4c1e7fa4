package authenticator

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-serble-keeper/internal/logger"
	"github.com/MKhiriev/go-serble-keeper/internal/passkey"
	"github.com/MKhiriev/go-serble-keeper/internal/store"
	"github.com/MKhiriev/go-serble-keeper/models"
	"github.com/go-webauthn/webauthn/protocol"
	"github.com/go-webauthn/webauthn/protocol/webauthncose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testOrigin = "https://serble.net"
	testRPID   = "serble.net"
)

var es256 = []protocol.CredentialParameter{{Type: protocol.PublicKeyCredentialType, Algorithm: webauthncose.AlgES256}}

func newTestAuthenticator(t *testing.T, opts ...Option) (*SoftwareAuthenticator, store.CredentialRepository) {
	t.Helper()
	repo := store.NewCredentialRepository(store.NewMemoryKeyValueStorage())
	return NewSoftwareAuthenticator(repo, logger.Nop(), opts...), repo
}

func creationRequest(challenge []byte, exclude ...[]byte) passkey.CreationRequest {
	opts := protocol.PublicKeyCredentialCreationOptions{
		RelyingParty: protocol.RelyingPartyEntity{ID: testRPID, CredentialEntity: protocol.CredentialEntity{Name: "Serble"}},
		User: protocol.UserEntity{
			ID:               "AQID",
			DisplayName:      "Alice",
			CredentialEntity: protocol.CredentialEntity{Name: "alice"},
		},
		Challenge:  challenge,
		Parameters: es256,
	}
	for _, id := range exclude {
		opts.CredentialExcludeList = append(opts.CredentialExcludeList, protocol.CredentialDescriptor{
			Type:         protocol.PublicKeyCredentialType,
			CredentialID: id,
		})
	}
	return passkey.CreationRequest{Origin: testOrigin, Options: opts}
}

func assertionRequest(challenge []byte, allow ...[]byte) passkey.AssertionRequest {
	opts := protocol.PublicKeyCredentialRequestOptions{Challenge: challenge, RelyingPartyID: testRPID}
	for _, id := range allow {
		opts.AllowedCredentials = append(opts.AllowedCredentials, protocol.CredentialDescriptor{
			Type:         protocol.PublicKeyCredentialType,
			CredentialID: id,
		})
	}
	return passkey.AssertionRequest{Origin: testOrigin, Options: opts}
}

// attestationJSON собирает тело ответа так, как его отправит церемония
func attestationJSON(t *testing.T, att passkey.Attestation) []byte {
	t.Helper()
	id := passkey.EncodeBinary(att.CredentialID)
	body, err := json.Marshal(models.CredentialAttestation{
		ID:                      id,
		RawID:                   id,
		Type:                    "public-key",
		AuthenticatorAttachment: string(att.Attachment),
		Response: models.AttestationData{
			ClientDataJSON:    passkey.EncodeBinary(att.ClientDataJSON),
			AttestationObject: passkey.EncodeBinary(att.AttestationObject),
			Transports:        []string{"internal"},
		},
		ClientExtensionResults: map[string]any{},
	})
	require.NoError(t, err)
	return body
}

func assertionJSON(t *testing.T, a passkey.Assertion) []byte {
	t.Helper()
	id := passkey.EncodeBinary(a.CredentialID)
	body, err := json.Marshal(models.CredentialAssertion{
		ID:    id,
		RawID: id,
		Type:  "public-key",
		Response: models.AssertionData{
			ClientDataJSON:    passkey.EncodeBinary(a.ClientDataJSON),
			AuthenticatorData: passkey.EncodeBinary(a.AuthenticatorData),
			Signature:         passkey.EncodeBinary(a.Signature),
			UserHandle:        passkey.EncodeBinary(a.UserHandle),
		},
		ClientExtensionResults: map[string]any{},
	})
	require.NoError(t, err)
	return body
}

// ── Create ──────────────────────────────────────────────────────────────────

func TestCreate_AcceptedByWebAuthnParser(t *testing.T) {
	a, repo := newTestAuthenticator(t)
	ctx := context.Background()
	challenge := []byte("registration-challenge-0123456789")

	att, err := a.Create(ctx, creationRequest(challenge))
	require.NoError(t, err)
	assert.Len(t, att.CredentialID, 16)
	assert.Equal(t, protocol.Platform, att.Attachment)

	parsed, err := protocol.ParseCredentialCreationResponseBytes(attestationJSON(t, att))
	require.NoError(t, err)

	_, err = parsed.Verify(protocol.URLEncodedBase64(challenge).String(), true, true, testRPID,
		[]string{testOrigin}, nil, protocol.TopOriginIgnoreVerificationMode, nil, es256)
	require.NoError(t, err)

	authData := parsed.Response.AttestationObject.AuthData
	assert.Equal(t, "none", parsed.Response.AttestationObject.Format)
	assert.Equal(t, att.CredentialID, authData.AttData.CredentialID)
	assert.Equal(t, uint32(0), authData.Counter)
	assert.True(t, authData.Flags.HasUserPresent())
	assert.True(t, authData.Flags.HasUserVerified())
	assert.True(t, authData.Flags.HasAttestedCredentialData())

	stored, err := repo.ListCredentials(ctx, testRPID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, att.CredentialID, stored[0].ID)
	assert.Equal(t, []byte{1, 2, 3}, stored[0].UserHandle)
	assert.Equal(t, "alice", stored[0].UserName)
}

func TestCreate_UnsupportedAlgorithm(t *testing.T) {
	a, _ := newTestAuthenticator(t)
	req := creationRequest([]byte("c"))
	req.Options.Parameters = []protocol.CredentialParameter{{Type: protocol.PublicKeyCredentialType, Algorithm: webauthncose.AlgRS256}}

	_, err := a.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrUnsupportedAlgorithm)
}

func TestCreate_ExcludedCredentialIsFailureNotCancel(t *testing.T) {
	a, _ := newTestAuthenticator(t)
	ctx := context.Background()

	first, err := a.Create(ctx, creationRequest([]byte("one")))
	require.NoError(t, err)

	_, err = a.Create(ctx, creationRequest([]byte("two"), first.CredentialID))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCredentialExcluded)
	assert.NotErrorIs(t, err, passkey.ErrCancelled)
}

func TestCreate_PresenceVeto(t *testing.T) {
	var prompts []Prompt
	a, repo := newTestAuthenticator(t, WithPresence(func(_ context.Context, p Prompt) bool {
		prompts = append(prompts, p)
		return false
	}))
	ctx := context.Background()

	_, err := a.Create(ctx, creationRequest([]byte("c")))
	assert.ErrorIs(t, err, passkey.ErrCancelled)

	require.Len(t, prompts, 1)
	assert.Equal(t, Prompt{Ceremony: protocol.CreateCeremony, RPID: testRPID, UserName: "alice"}, prompts[0])

	stored, err := repo.ListCredentials(ctx, testRPID)
	require.NoError(t, err)
	assert.Empty(t, stored, "nothing is persisted on cancellation")
}

func TestCreate_ContextCancelled(t *testing.T) {
	a, _ := newTestAuthenticator(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Create(ctx, creationRequest([]byte("c")))
	assert.ErrorIs(t, err, passkey.ErrCancelled)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCreate_RelyingPartyFromOrigin(t *testing.T) {
	a, repo := newTestAuthenticator(t)
	req := creationRequest([]byte("c"))
	req.Options.RelyingParty.ID = ""

	_, err := a.Create(context.Background(), req)
	require.NoError(t, err)

	stored, err := repo.ListCredentials(context.Background(), testRPID)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

// ── Get ─────────────────────────────────────────────────────────────────────

func TestGet_SignatureVerifies(t *testing.T) {
	a, _ := newTestAuthenticator(t)
	ctx := context.Background()

	att, err := a.Create(ctx, creationRequest([]byte("registration")))
	require.NoError(t, err)
	created, err := protocol.ParseCredentialCreationResponseBytes(attestationJSON(t, att))
	require.NoError(t, err)
	publicKey := created.Response.AttestationObject.AuthData.AttData.CredentialPublicKey

	for round := uint32(1); round <= 2; round++ {
		challenge := []byte("assertion-challenge-" + string(rune('0'+round)))

		assertion, err := a.Get(ctx, assertionRequest(challenge))
		require.NoError(t, err)
		assert.Equal(t, att.CredentialID, assertion.CredentialID)
		assert.Equal(t, []byte{1, 2, 3}, assertion.UserHandle)

		parsed, err := protocol.ParseCredentialRequestResponseBytes(assertionJSON(t, assertion))
		require.NoError(t, err)

		err = parsed.Verify(protocol.URLEncodedBase64(challenge).String(), testRPID, []string{testOrigin},
			nil, protocol.TopOriginIgnoreVerificationMode, "", true, true, publicKey)
		require.NoError(t, err)
		assert.Equal(t, round, parsed.Response.AuthenticatorData.Counter)
		assert.False(t, parsed.Response.AuthenticatorData.Flags.HasAttestedCredentialData())
	}
}

func TestGet_AllowListSelectsCredential(t *testing.T) {
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	a, _ := newTestAuthenticator(t, WithClock(func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}))
	ctx := context.Background()

	older, err := a.Create(ctx, creationRequest([]byte("a")))
	require.NoError(t, err)
	newer, err := a.Create(ctx, creationRequest([]byte("b")))
	require.NoError(t, err)

	got, err := a.Get(ctx, assertionRequest([]byte("c")))
	require.NoError(t, err)
	assert.Equal(t, newer.CredentialID, got.CredentialID)

	got, err = a.Get(ctx, assertionRequest([]byte("d"), []byte("unknown"), older.CredentialID))
	require.NoError(t, err)
	assert.Equal(t, older.CredentialID, got.CredentialID)
}

func TestGet_NoCredentialIsCancelled(t *testing.T) {
	a, _ := newTestAuthenticator(t)

	_, err := a.Get(context.Background(), assertionRequest([]byte("c")))
	require.Error(t, err)
	assert.ErrorIs(t, err, passkey.ErrCancelled)
	assert.ErrorIs(t, err, ErrNoCredential)
}

func TestGet_PresenceVetoKeepsCounter(t *testing.T) {
	allow := true
	a, repo := newTestAuthenticator(t, WithPresence(func(context.Context, Prompt) bool { return allow }))
	ctx := context.Background()

	_, err := a.Create(ctx, creationRequest([]byte("c")))
	require.NoError(t, err)

	allow = false
	_, err = a.Get(ctx, assertionRequest([]byte("d")))
	assert.ErrorIs(t, err, passkey.ErrCancelled)

	stored, err := repo.ListCredentials(ctx, testRPID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Zero(t, stored[0].SignCount)
}

type failingRepo struct {
	store.CredentialRepository
}

func (failingRepo) ListCredentials(context.Context, string) ([]models.StoredCredential, error) {
	return nil, errors.New("disk unplugged")
}

func TestGet_StorageFailureIsNotCancel(t *testing.T) {
	a := NewSoftwareAuthenticator(failingRepo{}, logger.Nop())

	_, err := a.Get(context.Background(), assertionRequest([]byte("c")))
	require.Error(t, err)
	assert.NotErrorIs(t, err, passkey.ErrCancelled)
}
