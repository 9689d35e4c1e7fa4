package passkey

import (
	"context"

	"github.com/MKhiriev/go-serble-keeper/models"
	"github.com/go-webauthn/webauthn/protocol"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/passkey_mock.go -package=mock

// Verifier is the remote side of a ceremony. The Serble adapter implements
// it.
type Verifier interface {
	PasskeyCreationOptions(ctx context.Context, prefs models.RegistrationPreferences) (models.RawChallenge, error)
	RegisterPasskey(ctx context.Context, challengeID string, attestation models.CredentialAttestation) (string, error)
	PasskeyAssertionOptions(ctx context.Context, username string) (models.RawChallenge, error)
	VerifyPasskeyAssertion(ctx context.Context, challengeID string, assertion models.CredentialAssertion) (models.LoginResult, error)
}

// Authenticator creates and exercises credentials. It plays both the client
// and the authenticator role, so it also builds clientDataJSON.
//
// An implementation must return an error wrapping [ErrCancelled] when the
// user declines, and must honour ctx.
type Authenticator interface {
	Create(ctx context.Context, req CreationRequest) (Attestation, error)
	Get(ctx context.Context, req AssertionRequest) (Assertion, error)
}

type CreationRequest struct {
	Origin  string
	Options protocol.PublicKeyCredentialCreationOptions
}

type AssertionRequest struct {
	Origin  string
	Options protocol.PublicKeyCredentialRequestOptions
}

// Attestation is the raw output of [Authenticator.Create].
type Attestation struct {
	CredentialID      []byte
	ClientDataJSON    []byte
	AttestationObject []byte
	Transports        []protocol.AuthenticatorTransport
	Attachment        protocol.AuthenticatorAttachment
	Extensions        map[string]any
}

// Assertion is the raw output of [Authenticator.Get].
type Assertion struct {
	CredentialID      []byte
	ClientDataJSON    []byte
	AuthenticatorData []byte
	Signature         []byte
	UserHandle        []byte
	Attachment        protocol.AuthenticatorAttachment
	Extensions        map[string]any
}
