package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-serble-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// SessionManager owns the authenticated session of the client. It is the
// only component allowed to install or drop the token held by the adapter,
// and it keeps the persisted copy in step.
type SessionManager interface {
	// Get returns the current session. The zero value means logged out.
	Get() models.Session

	// Set installs token in memory, in the adapter and in local storage.
	// The expiry is read from the token when it is a JWT.
	Set(ctx context.Context, token string) error

	// Clear logs out locally. The remote session is not revoked.
	Clear(ctx context.Context) error

	// Restore loads the token persisted by a previous run and validates it
	// against the remote account. An unauthorized answer clears it.
	Restore(ctx context.Context) models.Result[models.User]

	// Validate checks the in-memory session against the remote account and
	// clears it on an unauthorized answer.
	Validate(ctx context.Context) models.Result[models.User]
}

// AuthService signs the user in and out with a username and password.
type AuthService interface {
	// Login exchanges credentials for a session. When the account has TOTP
	// enabled the result carries MFARequired and an MFA token, and no session
	// is installed until SubmitTOTP succeeds.
	Login(ctx context.Context, username, password string) models.Result[models.LoginResult]

	// SubmitTOTP completes an MFA login and installs the session.
	SubmitTOTP(ctx context.Context, mfaToken, code string) models.Result[models.LoginResult]

	// Logout drops the local session.
	Logout(ctx context.Context) error

	// CurrentUser returns the signed-in account.
	CurrentUser(ctx context.Context) models.Result[models.User]
}

// VaultService works with encrypted vault notes. Plaintext never leaves the
// service except as a return value; the remote API only ever sees blobs.
type VaultService interface {
	// List returns the notes of the account.
	List(ctx context.Context) models.Result[[]models.Note]

	// Open fetches and decrypts noteID. An empty password falls back to the
	// cached one. With remember set the password is cached on success.
	Open(ctx context.Context, noteID, password string, remember bool) models.Result[string]

	// Save encrypts plaintext and replaces the content of noteID.
	Save(ctx context.Context, noteID, plaintext, password string, remember bool) models.Result[struct{}]

	// Create allocates a note, stores plaintext in it and returns its id.
	Create(ctx context.Context, plaintext, password string, remember bool) models.Result[string]

	// Delete removes noteID and forgets its cached password.
	Delete(ctx context.Context, noteID string) models.Result[struct{}]

	// CachedPassword looks up the remembered password of noteID.
	CachedPassword(ctx context.Context, noteID string) (string, bool)
}

// AppService manages grants given to third-party OAuth applications.
type AppService interface {
	// Authorize grants the known ids among scopeIDs to appID and returns the
	// authorization code. Unknown ids are dropped before encoding.
	Authorize(ctx context.Context, appID string, scopeIDs []string) models.Result[string]

	// Deauthorize revokes every grant held by appID.
	Deauthorize(ctx context.Context, appID string) models.Result[struct{}]

	// PublicApp returns what the authorization screen shows about appID.
	PublicApp(ctx context.Context, appID string) models.Result[models.PublicApp]

	// OwnedApps lists the applications the account has registered as a
	// developer.
	OwnedApps(ctx context.Context) models.Result[[]models.OAuthApp]

	// OwnedApp returns one registered application with its client secret.
	OwnedApp(ctx context.Context, appID string) models.Result[models.OAuthApp]

	// CreateApp registers an application. The name is required and the
	// redirect URI must be an absolute http(s) URL.
	CreateApp(ctx context.Context, draft models.OAuthAppDraft) models.Result[models.OAuthApp]

	// EditApp applies edits to a registered application in one request.
	EditApp(ctx context.Context, appID string, edits []models.AppEdit) models.Result[models.OAuthApp]

	// DeleteApp removes a registered application.
	DeleteApp(ctx context.Context, appID string) models.Result[struct{}]

	// Scopes returns the full scope table.
	Scopes() []models.ScopeDefinition

	// DescribeScopes lists the scopes granted by an encoded bit-string.
	DescribeScopes(bits string) []models.ScopeDefinition
}

// Ceremony is the passkey state machine driven by [PasskeyService].
type Ceremony interface {
	Register(ctx context.Context, prefs models.RegistrationPreferences) models.Result[string]
	Authenticate(ctx context.Context, username string) models.Result[models.LoginResult]
}

// PasskeyService registers passkeys and signs in with them.
type PasskeyService interface {
	// Register creates a passkey for the signed-in account and returns the
	// credential id.
	Register(ctx context.Context, prefs models.RegistrationPreferences) models.Result[string]

	// Login signs in with a passkey and installs the resulting session. An
	// empty username uses a discoverable credential.
	Login(ctx context.Context, username string) models.Result[models.LoginResult]

	List(ctx context.Context) models.Result[[]models.Passkey]
	Delete(ctx context.Context, name string) models.Result[struct{}]
}

// AccountService edits the account, enrols TOTP and starts payments.
type AccountService interface {
	// Edit applies edits in one request and returns the updated account.
	Edit(ctx context.Context, edits []models.AccountEdit) models.Result[models.User]

	// TOTPQRCode returns the PNG enrolment QR code of a new TOTP secret.
	TOTPQRCode(ctx context.Context) models.Result[[]byte]

	// EnableTOTP switches the second factor on once code matches the
	// secret shown by TOTPQRCode.
	EnableTOTP(ctx context.Context, code string) models.Result[struct{}]

	// PaymentPortal returns the billing portal link.
	PaymentPortal(ctx context.Context) models.Result[string]

	// Checkout returns the checkout link for items, bound to the account.
	Checkout(ctx context.Context, items []models.CheckoutItem) models.Result[string]

	// CheckoutAnonymous returns a checkout link without a session.
	CheckoutAnonymous(ctx context.Context, items []models.CheckoutItem) models.Result[string]
}

// SessionWatchJob defines the contract for a background worker that
// periodically revalidates the session.
type SessionWatchJob interface {
	// Start launches the background goroutine. It validates every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any previously
	// running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
