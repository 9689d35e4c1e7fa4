// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package authenticator implements an in-process FIDO2 authenticator so the
// passkey ceremony can run from a terminal.
//
// Credentials are P-256 key pairs (COSE algorithm ES256). The private keys
// are kept, SEC1 DER encoded, in a [store.CredentialRepository]. Attestation
// is always of format "none".
package authenticator

import (
	"bytes"
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"crypto/x509"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"sync"
	"time"

	"github.com/MKhiriev/go-serble-keeper/internal/logger"
	"github.com/MKhiriev/go-serble-keeper/internal/passkey"
	"github.com/MKhiriev/go-serble-keeper/internal/store"
	"github.com/MKhiriev/go-serble-keeper/internal/utils"
	"github.com/MKhiriev/go-serble-keeper/models"
	"github.com/go-webauthn/webauthn/protocol"
	"github.com/go-webauthn/webauthn/protocol/webauthncbor"
	"github.com/go-webauthn/webauthn/protocol/webauthncose"
)

const (
	flagsCreate = byte(protocol.FlagUserPresent | protocol.FlagUserVerified | protocol.FlagAttestedCredentialData)
	flagsGet    = byte(protocol.FlagUserPresent | protocol.FlagUserVerified)

	aaguidLength = 16
)

// Prompt describes the operation a [PresenceFunc] is asked to approve.
type Prompt struct {
	Ceremony protocol.CeremonyType
	RPID     string
	UserName string
}

// PresenceFunc confirms that the user is present. Returning false aborts the
// operation with [passkey.ErrCancelled].
type PresenceFunc func(ctx context.Context, prompt Prompt) bool

// Option configures a [SoftwareAuthenticator].
type Option func(*SoftwareAuthenticator)

// WithPresence installs a user-presence check run before every operation.
func WithPresence(fn PresenceFunc) Option {
	return func(a *SoftwareAuthenticator) {
		a.presence = fn
	}
}

// WithRandom replaces the entropy source used for key generation and
// signatures.
func WithRandom(r io.Reader) Option {
	return func(a *SoftwareAuthenticator) {
		a.rand = r
	}
}

// WithClock replaces the clock used to stamp new credentials.
func WithClock(now func() time.Time) Option {
	return func(a *SoftwareAuthenticator) {
		a.now = now
	}
}

// SoftwareAuthenticator implements [passkey.Authenticator]. Create and Get
// are serialized, so sign counters never race.
type SoftwareAuthenticator struct {
	mu sync.Mutex

	credentials store.CredentialRepository
	ids         *utils.UUIDGenerator
	presence    PresenceFunc
	rand        io.Reader
	now         func() time.Time

	logger *logger.Logger
}

var _ passkey.Authenticator = (*SoftwareAuthenticator)(nil)

func NewSoftwareAuthenticator(credentials store.CredentialRepository, logger *logger.Logger, opts ...Option) *SoftwareAuthenticator {
	a := &SoftwareAuthenticator{
		credentials: credentials,
		ids:         utils.NewUUIDGenerator(),
		rand:        rand.Reader,
		now:         time.Now,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Create implements [passkey.Authenticator].
func (a *SoftwareAuthenticator) Create(ctx context.Context, req passkey.CreationRequest) (passkey.Attestation, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	opts := req.Options

	if err := cancelled(ctx); err != nil {
		return passkey.Attestation{}, err
	}
	if !supportsES256(opts.Parameters) {
		return passkey.Attestation{}, ErrUnsupportedAlgorithm
	}

	rpID, err := relyingPartyID(opts.RelyingParty.ID, req.Origin)
	if err != nil {
		return passkey.Attestation{}, err
	}

	existing, err := a.credentials.ListCredentials(ctx, rpID)
	if err != nil {
		return passkey.Attestation{}, fmt.Errorf("list credentials: %w", err)
	}
	for _, excluded := range opts.CredentialExcludeList {
		if findCredential(existing, excluded.CredentialID) != nil {
			return passkey.Attestation{}, ErrCredentialExcluded
		}
	}

	if !a.confirm(ctx, Prompt{Ceremony: protocol.CreateCeremony, RPID: rpID, UserName: opts.User.Name}) {
		return passkey.Attestation{}, passkey.ErrCancelled
	}

	userHandle, err := passkey.UserHandle(opts)
	if err != nil {
		return passkey.Attestation{}, fmt.Errorf("user handle: %w", err)
	}

	key, err := ecdsa.GenerateKey(elliptic.P256(), a.rand)
	if err != nil {
		return passkey.Attestation{}, fmt.Errorf("generate key: %w", err)
	}
	credentialID := a.ids.GenerateBytes()

	cosePublicKey, err := encodePublicKey(&key.PublicKey)
	if err != nil {
		return passkey.Attestation{}, err
	}
	authData := authenticatorData(rpID, flagsCreate, 0)
	authData = append(authData, make([]byte, aaguidLength)...)
	authData = binary.BigEndian.AppendUint16(authData, uint16(len(credentialID)))
	authData = append(authData, credentialID...)
	authData = append(authData, cosePublicKey...)

	attestationObject, err := webauthncbor.Marshal(noneAttestation{
		Format:       string(protocol.AttestationFormatNone),
		AttStatement: map[string]any{},
		AuthData:     authData,
	})
	if err != nil {
		return passkey.Attestation{}, fmt.Errorf("encode attestation object: %w", err)
	}

	clientData, err := clientDataJSON(protocol.CreateCeremony, opts.Challenge, req.Origin)
	if err != nil {
		return passkey.Attestation{}, err
	}

	der, err := x509.MarshalECPrivateKey(key)
	if err != nil {
		return passkey.Attestation{}, fmt.Errorf("encode private key: %w", err)
	}
	// a context cancelled while the user was confirming still aborts here,
	// before anything is persisted
	if err = cancelled(ctx); err != nil {
		return passkey.Attestation{}, err
	}
	err = a.credentials.SaveCredential(ctx, models.StoredCredential{
		ID:         credentialID,
		RPID:       rpID,
		UserHandle: userHandle,
		UserName:   opts.User.Name,
		PrivateKey: der,
		CreatedAt:  a.now().UTC(),
	})
	if err != nil {
		return passkey.Attestation{}, fmt.Errorf("save credential: %w", err)
	}

	a.logger.Info().
		Str("func", "SoftwareAuthenticator.Create").
		Str("rp_id", rpID).
		Str("credential_id", passkey.EncodeBinary(credentialID)).
		Msg("credential created")

	return passkey.Attestation{
		CredentialID:      credentialID,
		ClientDataJSON:    clientData,
		AttestationObject: attestationObject,
		Transports:        []protocol.AuthenticatorTransport{protocol.Internal},
		Attachment:        protocol.Platform,
	}, nil
}

// Get implements [passkey.Authenticator]. Without an allow list the most
// recently created credential of the relying party is used.
func (a *SoftwareAuthenticator) Get(ctx context.Context, req passkey.AssertionRequest) (passkey.Assertion, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	opts := req.Options

	if err := cancelled(ctx); err != nil {
		return passkey.Assertion{}, err
	}

	rpID, err := relyingPartyID(opts.RelyingPartyID, req.Origin)
	if err != nil {
		return passkey.Assertion{}, err
	}

	stored, err := a.credentials.ListCredentials(ctx, rpID)
	if err != nil {
		return passkey.Assertion{}, fmt.Errorf("list credentials: %w", err)
	}
	cred := selectCredential(stored, opts.AllowedCredentials)
	if cred == nil {
		// a platform with no usable credential behaves like a dismissed prompt
		return passkey.Assertion{}, fmt.Errorf("%w: %w", passkey.ErrCancelled, ErrNoCredential)
	}

	if !a.confirm(ctx, Prompt{Ceremony: protocol.AssertCeremony, RPID: rpID, UserName: cred.UserName}) {
		return passkey.Assertion{}, passkey.ErrCancelled
	}

	key, err := x509.ParseECPrivateKey(cred.PrivateKey)
	if err != nil {
		return passkey.Assertion{}, fmt.Errorf("decode private key: %w", err)
	}

	counter := cred.SignCount + 1
	authData := authenticatorData(rpID, flagsGet, counter)

	clientData, err := clientDataJSON(protocol.AssertCeremony, opts.Challenge, req.Origin)
	if err != nil {
		return passkey.Assertion{}, err
	}
	clientDataHash := sha256.Sum256(clientData)
	digest := sha256.Sum256(append(bytes.Clone(authData), clientDataHash[:]...))

	signature, err := ecdsa.SignASN1(a.rand, key, digest[:])
	if err != nil {
		return passkey.Assertion{}, fmt.Errorf("sign assertion: %w", err)
	}

	if err = cancelled(ctx); err != nil {
		return passkey.Assertion{}, err
	}
	if err = a.credentials.UpdateSignCount(ctx, cred.ID, counter); err != nil {
		return passkey.Assertion{}, fmt.Errorf("update sign count: %w", err)
	}

	a.logger.Info().
		Str("func", "SoftwareAuthenticator.Get").
		Str("rp_id", rpID).
		Uint32("sign_count", counter).
		Msg("assertion signed")

	return passkey.Assertion{
		CredentialID:      cred.ID,
		ClientDataJSON:    clientData,
		AuthenticatorData: authData,
		Signature:         signature,
		UserHandle:        cred.UserHandle,
		Attachment:        protocol.Platform,
	}, nil
}

func (a *SoftwareAuthenticator) confirm(ctx context.Context, prompt Prompt) bool {
	if a.presence == nil {
		return true
	}
	return a.presence(ctx, prompt)
}

func cancelled(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", passkey.ErrCancelled, err)
	}
	return nil
}

// supportsES256 follows the WebAuthn default: an empty parameter list
// allows ES256.
func supportsES256(params []protocol.CredentialParameter) bool {
	if len(params) == 0 {
		return true
	}
	for _, p := range params {
		if p.Type == protocol.PublicKeyCredentialType && p.Algorithm == webauthncose.AlgES256 {
			return true
		}
	}
	return false
}

// relyingPartyID falls back to the origin host, as a browser does.
func relyingPartyID(rpID, origin string) (string, error) {
	if rpID != "" {
		return rpID, nil
	}
	u, err := url.Parse(origin)
	if err != nil || u.Hostname() == "" {
		return "", ErrNoRelyingParty
	}
	return u.Hostname(), nil
}

func findCredential(creds []models.StoredCredential, id []byte) *models.StoredCredential {
	for i := range creds {
		if bytes.Equal(creds[i].ID, id) {
			return &creds[i]
		}
	}
	return nil
}

func selectCredential(creds []models.StoredCredential, allowed []protocol.CredentialDescriptor) *models.StoredCredential {
	if len(allowed) == 0 {
		var newest *models.StoredCredential
		for i := range creds {
			if newest == nil || !creds[i].CreatedAt.Before(newest.CreatedAt) {
				newest = &creds[i]
			}
		}
		return newest
	}
	for _, d := range allowed {
		if cred := findCredential(creds, d.CredentialID); cred != nil {
			return cred
		}
	}
	return nil
}

// authenticatorData returns rpIdHash | flags | counter.
func authenticatorData(rpID string, flags byte, counter uint32) []byte {
	rpIDHash := sha256.Sum256([]byte(rpID))
	data := make([]byte, 0, 37)
	data = append(data, rpIDHash[:]...)
	data = append(data, flags)
	return binary.BigEndian.AppendUint32(data, counter)
}

func encodePublicKey(pub *ecdsa.PublicKey) ([]byte, error) {
	ecdh, err := pub.ECDH()
	if err != nil {
		return nil, fmt.Errorf("public key: %w", err)
	}
	// uncompressed point: 0x04 | X | Y
	point := ecdh.Bytes()

	key := webauthncose.EC2PublicKeyData{
		PublicKeyData: webauthncose.PublicKeyData{
			KeyType:   int64(webauthncose.EllipticKey),
			Algorithm: int64(webauthncose.AlgES256),
		},
		Curve:  int64(webauthncose.P256),
		XCoord: point[1:33],
		YCoord: point[33:65],
	}
	encoded, err := webauthncbor.Marshal(key)
	if err != nil {
		return nil, fmt.Errorf("encode public key: %w", err)
	}
	return encoded, nil
}

type noneAttestation struct {
	Format       string         `cbor:"fmt"`
	AttStatement map[string]any `cbor:"attStmt"`
	AuthData     []byte         `cbor:"authData"`
}

type clientData struct {
	Type        protocol.CeremonyType `json:"type"`
	Challenge   string                `json:"challenge"`
	Origin      string                `json:"origin"`
	CrossOrigin bool                  `json:"crossOrigin"`
}

func clientDataJSON(ceremony protocol.CeremonyType, challenge []byte, origin string) ([]byte, error) {
	data, err := json.Marshal(clientData{
		Type:      ceremony,
		Challenge: passkey.EncodeBinary(challenge),
		Origin:    origin,
	})
	if err != nil {
		return nil, fmt.Errorf("encode client data: %w", err)
	}
	return data, nil
}
