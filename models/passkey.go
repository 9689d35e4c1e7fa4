package models

import (
	"encoding/json"
	"time"

	"github.com/go-webauthn/webauthn/protocol"
)

// RawChallenge is a verifier-issued challenge envelope after normalization.
// Options is kept as raw JSON: binary fields inside it still need
// transcoding before an authenticator can use them.
type RawChallenge struct {
	ChallengeID string
	Options     json.RawMessage
}

// RegistrationPreferences are the caller's wishes sent with a request for
// credential-creation options.
type RegistrationPreferences struct {
	Attestation protocol.ConveyancePreference   `json:"attestation,omitempty"`
	Attachment  protocol.AuthenticatorAttachment `json:"authenticatorAttachment,omitempty"`
}

// CredentialAttestation is a registration result ready for transport. Every
// binary field is unpadded URL-safe base64.
type CredentialAttestation struct {
	ID                      string          `json:"id"`
	RawID                   string          `json:"rawId"`
	Type                    string          `json:"type"`
	AuthenticatorAttachment string          `json:"authenticatorAttachment,omitempty"`
	Response                AttestationData `json:"response"`
	ClientExtensionResults  map[string]any  `json:"clientExtensionResults"`
}

type AttestationData struct {
	ClientDataJSON    string   `json:"clientDataJSON"`
	AttestationObject string   `json:"attestationObject"`
	Transports        []string `json:"transports,omitempty"`
}

// CredentialAssertion is an authentication result ready for transport. Every
// binary field is unpadded URL-safe base64.
type CredentialAssertion struct {
	ID                      string         `json:"id"`
	RawID                   string         `json:"rawId"`
	Type                    string         `json:"type"`
	AuthenticatorAttachment string         `json:"authenticatorAttachment,omitempty"`
	Response                AssertionData  `json:"response"`
	ClientExtensionResults  map[string]any `json:"clientExtensionResults"`
}

type AssertionData struct {
	ClientDataJSON    string `json:"clientDataJSON"`
	AuthenticatorData string `json:"authenticatorData"`
	Signature         string `json:"signature"`
	UserHandle        string `json:"userHandle,omitempty"`
}

// Passkey is a credential registered on the remote account.
type Passkey struct {
	Name         string    `json:"name"`
	CredentialID string    `json:"credentialId"`
	CreatedAt    time.Time `json:"createdAt"`
}

// StoredCredential is a key pair held by the software authenticator.
type StoredCredential struct {
	ID         []byte    `json:"id"`
	RPID       string    `json:"rpId"`
	UserHandle []byte    `json:"userHandle"`
	UserName   string    `json:"userName"`
	PrivateKey []byte    `json:"privateKey"`
	SignCount  uint32    `json:"signCount"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CeremonyState is a step of the registration or authentication state
// machine.
type CeremonyState int

const (
	StateIdle CeremonyState = iota
	StateChallengeRequested
	StateChallengeReceived
	StateAuthenticatorInvoked
	StateResultSubmitted
	StateVerified
	StateFailed
	StateCancelled
)

// String implements [fmt.Stringer].
func (s CeremonyState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateChallengeRequested:
		return "challenge requested"
	case StateChallengeReceived:
		return "challenge received"
	case StateAuthenticatorInvoked:
		return "authenticator invoked"
	case StateResultSubmitted:
		return "result submitted"
	case StateVerified:
		return "verified"
	case StateFailed:
		return "failed"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition can follow.
func (s CeremonyState) Terminal() bool {
	return s == StateVerified || s == StateFailed || s == StateCancelled
}
