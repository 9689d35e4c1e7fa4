// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for the Serble API and the
// passkey verifier mounted under it.
//
// The primary abstraction is [SerbleAdapter]. The package ships a single
// HTTP/REST implementation ([NewHTTPSerbleAdapter]) built on resty.
//
// Every rejected response is turned into a *models.Error by the endpoint's
// own classification function (classify.go). The error carries a flag the UI
// can act on and wraps one of the status sentinels from errors.go, so callers
// may also use [errors.Is] (e.g. [ErrUnauthorized] for 401). Transport
// failures carry [models.KindNetwork]. Response payloads are normalized into
// canonical models in normalize.go.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-serble-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/serble_adapter_mock.go -package=mock

// SerbleAdapter defines communication with the Serble API. Implementations
// are responsible for serialisation, the SerbleAuth header and mapping
// failures onto the error taxonomy in models.
type SerbleAdapter interface {
	// SetToken stores the session token attached to every authenticated
	// request. An empty token logs the adapter out.
	SetToken(token string)

	// Token returns the session token currently held, or an empty string.
	Token() string

	// Login exchanges a username and password for a session token, or for
	// an MFA challenge when the account has TOTP enabled. The token is not
	// installed.
	Login(ctx context.Context, username, password string) (models.LoginResult, error)

	// SubmitTOTP completes a login that returned MFARequired.
	SubmitTOTP(ctx context.Context, mfaToken, code string) (models.LoginResult, error)

	// GetAccount returns the account owning the current token.
	GetAccount(ctx context.Context) (models.User, error)

	// EditAccount applies edits in one PATCH and returns the updated account.
	EditAccount(ctx context.Context, edits []models.AccountEdit) (models.User, error)

	// AuthorizeApp grants scopes (an encoded scope bit-string) to appID and
	// returns the OAuth authorization code.
	AuthorizeApp(ctx context.Context, appID, scopes string) (string, error)

	// DeauthorizeApp revokes every grant held by appID.
	DeauthorizeApp(ctx context.Context, appID string) error

	// GetPublicApp returns the public description of appID. No session is
	// needed.
	GetPublicApp(ctx context.Context, appID string) (models.PublicApp, error)

	// ListOAuthApps returns the applications owned by the account.
	ListOAuthApps(ctx context.Context) ([]models.OAuthApp, error)

	// GetOAuthApp returns an owned application, secret included.
	GetOAuthApp(ctx context.Context, appID string) (models.OAuthApp, error)

	// CreateOAuthApp registers a new application owned by the account.
	CreateOAuthApp(ctx context.Context, draft models.OAuthAppDraft) (models.OAuthApp, error)

	// EditOAuthApp applies edits to an owned application in one PATCH.
	EditOAuthApp(ctx context.Context, appID string, edits []models.AppEdit) (models.OAuthApp, error)

	// DeleteOAuthApp removes an owned application.
	DeleteOAuthApp(ctx context.Context, appID string) error

	// TOTPQRCode returns the PNG image of the TOTP enrolment QR code.
	TOTPQRCode(ctx context.Context) ([]byte, error)

	// CheckTOTP verifies a code against the pending TOTP secret. A valid
	// code switches the second factor on.
	CheckTOTP(ctx context.Context, code string) (bool, error)

	// GetPaymentPortalURL returns the billing portal link of the account.
	GetPaymentPortalURL(ctx context.Context) (string, error)

	// Checkout starts a checkout for the account and returns its URL.
	Checkout(ctx context.Context, items []models.CheckoutItem) (string, error)

	// CheckoutAnonymous starts a checkout without a session.
	CheckoutAnonymous(ctx context.Context, items []models.CheckoutItem) (string, error)

	// ListNotes returns the vault notes of the account.
	ListNotes(ctx context.Context) ([]models.Note, error)

	// GetNote returns the stored vault blob of noteID.
	GetNote(ctx context.Context, noteID string) (string, error)

	// CreateNote allocates an empty note and returns its id.
	CreateNote(ctx context.Context) (string, error)

	// UpdateNote replaces the content of noteID with blob.
	UpdateNote(ctx context.Context, noteID, blob string) error

	// DeleteNote removes noteID.
	DeleteNote(ctx context.Context, noteID string) error

	// PasskeyCreationOptions requests a registration challenge.
	PasskeyCreationOptions(ctx context.Context, prefs models.RegistrationPreferences) (models.RawChallenge, error)

	// RegisterPasskey submits an attestation for challengeID and returns the
	// credential id the verifier stored.
	RegisterPasskey(ctx context.Context, challengeID string, attestation models.CredentialAttestation) (string, error)

	// PasskeyAssertionOptions requests an authentication challenge. An empty
	// username asks for a discoverable-credential challenge.
	PasskeyAssertionOptions(ctx context.Context, username string) (models.RawChallenge, error)

	// VerifyPasskeyAssertion submits an assertion for challengeID and returns
	// the session token on success.
	VerifyPasskeyAssertion(ctx context.Context, challengeID string, assertion models.CredentialAssertion) (models.LoginResult, error)

	// ListPasskeys returns the passkeys registered on the account.
	ListPasskeys(ctx context.Context) ([]models.Passkey, error)

	// DeletePasskey removes the passkey called name.
	DeletePasskey(ctx context.Context, name string) error
}
