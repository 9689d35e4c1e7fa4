package passkey

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-serble-keeper/internal/logger"
	"github.com/MKhiriev/go-serble-keeper/models"
	"github.com/go-webauthn/webauthn/protocol"
)

// StateHook observes every transition of a ceremony.
type StateHook func(models.CeremonyState)

// Option configures a [Ceremony].
type Option func(*Ceremony)

// WithStateHook installs hook. It is called synchronously, from the
// goroutine running the ceremony.
func WithStateHook(hook StateHook) Option {
	return func(c *Ceremony) {
		c.hook = hook
	}
}

// Ceremony runs registrations and authentications. It holds no per-ceremony
// state, so one value may serve concurrent ceremonies.
type Ceremony struct {
	verifier      Verifier
	authenticator Authenticator
	origin        string
	hook          StateHook

	logger *logger.Logger
}

// NewCeremony binds a verifier and an authenticator. origin is written into
// the client data of every ceremony.
func NewCeremony(verifier Verifier, authenticator Authenticator, origin string, logger *logger.Logger, opts ...Option) *Ceremony {
	c := &Ceremony{
		verifier:      verifier,
		authenticator: authenticator,
		origin:        origin,
		logger:        logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Register creates a new passkey for the signed-in account. On success the
// value is the credential id the verifier stored.
func (c *Ceremony) Register(ctx context.Context, prefs models.RegistrationPreferences) models.Result[string] {
	st := c.start()

	st.to(models.StateChallengeRequested)
	challenge, err := c.verifier.PasskeyCreationOptions(ctx, prefs)
	if err != nil {
		return failed[string](c, st, "Register", err)
	}

	st.to(models.StateChallengeReceived)
	if challenge.ChallengeID == "" {
		return failed[string](c, st, "Register", malformed(errors.New("no challenge id")))
	}
	opts, err := DecodeCreationOptions(challenge.Options)
	if err != nil {
		return failed[string](c, st, "Register", decodeError(err))
	}

	st.to(models.StateAuthenticatorInvoked)
	att, err := c.authenticator.Create(ctx, CreationRequest{Origin: c.origin, Options: opts})
	if err != nil {
		return failed[string](c, st, "Register", authenticatorError(ctx, err))
	}

	st.to(models.StateResultSubmitted)
	payload := encodeAttestation(att)
	credentialID, err := c.verifier.RegisterPasskey(ctx, challenge.ChallengeID, payload)
	if err != nil {
		return failed[string](c, st, "Register", err)
	}
	if credentialID == "" {
		credentialID = payload.ID
	}

	st.to(models.StateVerified)
	c.logger.Info().
		Str("func", "Ceremony.Register").
		Str("credential_id", credentialID).
		Msg("passkey registered")
	return models.OK(credentialID)
}

// Authenticate signs in with an existing passkey. An empty username requests
// a discoverable-credential challenge. On success the value carries the new
// session token; installing it is up to the caller.
func (c *Ceremony) Authenticate(ctx context.Context, username string) models.Result[models.LoginResult] {
	st := c.start()

	st.to(models.StateChallengeRequested)
	challenge, err := c.verifier.PasskeyAssertionOptions(ctx, username)
	if err != nil {
		return failed[models.LoginResult](c, st, "Authenticate", err)
	}

	st.to(models.StateChallengeReceived)
	if challenge.ChallengeID == "" {
		return failed[models.LoginResult](c, st, "Authenticate", malformed(errors.New("no challenge id")))
	}
	opts, err := DecodeRequestOptions(challenge.Options)
	if err != nil {
		return failed[models.LoginResult](c, st, "Authenticate", decodeError(err))
	}

	st.to(models.StateAuthenticatorInvoked)
	assertion, err := c.authenticator.Get(ctx, AssertionRequest{Origin: c.origin, Options: opts})
	if err != nil {
		return failed[models.LoginResult](c, st, "Authenticate", authenticatorError(ctx, err))
	}

	st.to(models.StateResultSubmitted)
	result, err := c.verifier.VerifyPasskeyAssertion(ctx, challenge.ChallengeID, encodeAssertion(assertion))
	if err != nil {
		return failed[models.LoginResult](c, st, "Authenticate", err)
	}

	st.to(models.StateVerified)
	c.logger.Info().
		Str("func", "Ceremony.Authenticate").
		Msg("passkey assertion verified")
	return models.OK(result)
}

type progress struct {
	hook  StateHook
	state models.CeremonyState
}

func (c *Ceremony) start() *progress {
	return &progress{hook: c.hook, state: models.StateIdle}
}

func (p *progress) to(state models.CeremonyState) {
	p.state = state
	if p.hook != nil {
		p.hook(state)
	}
}

func failed[T any](c *Ceremony, st *progress, op string, err error) models.Result[T] {
	if models.KindOf(err) == models.KindCeremonyCancelled {
		st.to(models.StateCancelled)
		c.logger.Info().Str("func", "Ceremony."+op).Msg("passkey ceremony cancelled")
	} else {
		st.to(models.StateFailed)
		c.logger.Err(err).Str("func", "Ceremony."+op).Msg("passkey ceremony failed")
	}
	// a finished ceremony leaves nothing behind; the next one starts fresh
	st.to(models.StateIdle)
	return models.Fail[T](err)
}

func malformed(cause error) error {
	return models.NewError(models.KindMalformedChallenge, models.FlagMalformedChallenge,
		fmt.Errorf("%w: %w", ErrMalformedChallenge, cause))
}

func decodeError(err error) error {
	if errors.Is(err, ErrMalformedChallenge) {
		return models.NewError(models.KindMalformedChallenge, models.FlagMalformedChallenge, err)
	}
	return models.NewError(models.KindCeremonyFailed, models.FlagCeremonyFailed, err)
}

// authenticatorError separates aborts from faults. A context that ended
// while the authenticator was waiting is an abort, whatever the
// authenticator returned.
func authenticatorError(ctx context.Context, err error) error {
	if errors.Is(err, ErrCancelled) || ctx.Err() != nil ||
		errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return models.NewError(models.KindCeremonyCancelled, models.FlagCancelled, err)
	}
	return models.NewError(models.KindCeremonyFailed, models.FlagCeremonyFailed, err)
}

func encodeAttestation(att Attestation) models.CredentialAttestation {
	id := EncodeBinary(att.CredentialID)

	transports := make([]string, 0, len(att.Transports))
	for _, t := range att.Transports {
		transports = append(transports, string(t))
	}

	return models.CredentialAttestation{
		ID:                      id,
		RawID:                   id,
		Type:                    string(protocol.PublicKeyCredentialType),
		AuthenticatorAttachment: string(att.Attachment),
		Response: models.AttestationData{
			ClientDataJSON:    EncodeBinary(att.ClientDataJSON),
			AttestationObject: EncodeBinary(att.AttestationObject),
			Transports:        transports,
		},
		ClientExtensionResults: extensions(att.Extensions),
	}
}

func encodeAssertion(a Assertion) models.CredentialAssertion {
	id := EncodeBinary(a.CredentialID)

	data := models.AssertionData{
		ClientDataJSON:    EncodeBinary(a.ClientDataJSON),
		AuthenticatorData: EncodeBinary(a.AuthenticatorData),
		Signature:         EncodeBinary(a.Signature),
	}
	if len(a.UserHandle) > 0 {
		data.UserHandle = EncodeBinary(a.UserHandle)
	}

	return models.CredentialAssertion{
		ID:                      id,
		RawID:                   id,
		Type:                    string(protocol.PublicKeyCredentialType),
		AuthenticatorAttachment: string(a.Attachment),
		Response:                data,
		ClientExtensionResults:  extensions(a.Extensions),
	}
}

// extensions never returns nil: verifiers expect an object, not null.
func extensions(ext map[string]any) map[string]any {
	if ext == nil {
		return map[string]any{}
	}
	return ext
}
