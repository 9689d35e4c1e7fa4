package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-serble-keeper/internal/config"
	"github.com/MKhiriev/go-serble-keeper/internal/logger"
	"github.com/MKhiriev/go-serble-keeper/internal/utils"
	"github.com/MKhiriev/go-serble-keeper/models"
	"github.com/go-resty/resty/v2"
)

const (
	headerSerbleAuth = "SerbleAuth"
	headerTraceID    = "X-Trace-Id"
)

type httpSerbleAdapter struct {
	client      *utils.HTTPClient
	passkeyPath string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPSerbleAdapter constructs an HTTP/REST implementation of
// [SerbleAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and binds the request timeout and passkey prefix.
//
// Returns an error wrapping [ErrInvalidAddress] if adapterCfg.HTTPAddress is
// empty or cannot be parsed as a valid URL.
func NewHTTPSerbleAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (SerbleAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpSerbleAdapter{
		client:      utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		passkeyPath: normalizePrefix(adapterCfg.PasskeyPath),
		logger:      logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func normalizePrefix(prefix string) string {
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return ""
	}
	return "/" + prefix
}

// SetToken implements [SerbleAdapter].
func (h *httpSerbleAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [SerbleAdapter].
func (h *httpSerbleAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login implements [SerbleAdapter]. It sends GET /auth with HTTP Basic
// credentials. 401 and 403 are reported as invalid credentials.
func (h *httpSerbleAdapter) Login(ctx context.Context, username, password string) (models.LoginResult, error) {
	const op = "login"

	resp, err := h.request(ctx).
		SetBasicAuth(username, password).
		Get("/auth")
	if err != nil {
		return models.LoginResult{}, h.fail(op, networkError(op, err))
	}
	if err = check(resp, op, classifyLogin); err != nil {
		return models.LoginResult{}, h.fail(op, err)
	}

	result, err := normalizeLogin(resp.Body())
	if err != nil {
		return models.LoginResult{}, h.fail(op, payloadError(op, err))
	}
	return result, nil
}

// SubmitTOTP implements [SerbleAdapter]. It POSTs the MFA login token and
// the code to POST /account/mfa.
func (h *httpSerbleAdapter) SubmitTOTP(ctx context.Context, mfaToken, code string) (models.LoginResult, error) {
	const op = "submit totp"

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"login_token": mfaToken, "totp_code": code}).
		Post("/account/mfa")
	if err != nil {
		return models.LoginResult{}, h.fail(op, networkError(op, err))
	}
	if err = check(resp, op, classifySubmitTOTP); err != nil {
		return models.LoginResult{}, h.fail(op, err)
	}

	result, err := normalizeLogin(resp.Body())
	if err != nil {
		return models.LoginResult{}, h.fail(op, payloadError(op, err))
	}
	return result, nil
}

// GetAccount implements [SerbleAdapter]. GET /account.
func (h *httpSerbleAdapter) GetAccount(ctx context.Context) (models.User, error) {
	const op = "get account"

	resp, err := h.authedRequest(ctx).Get("/account")
	if err != nil {
		return models.User{}, h.fail(op, networkError(op, err))
	}
	if err = check(resp, op, classifyGetAccount); err != nil {
		return models.User{}, h.fail(op, err)
	}

	user, err := normalizeUser(resp.Body())
	if err != nil {
		return models.User{}, h.fail(op, payloadError(op, err))
	}
	return user, nil
}

// EditAccount implements [SerbleAdapter]. PATCH /account with the list of
// edits. The server answers 400 with a fixed sentence for each known
// rejection, which is mapped onto name-taken, email-invalid or bad-field.
func (h *httpSerbleAdapter) EditAccount(ctx context.Context, edits []models.AccountEdit) (models.User, error) {
	const op = "edit account"

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(edits).
		Patch("/account")
	if err != nil {
		return models.User{}, h.fail(op, networkError(op, err))
	}
	if err = check(resp, op, classifyEditAccount); err != nil {
		return models.User{}, h.fail(op, err)
	}

	// some deployments answer 200 with an empty body
	if len(strings.TrimSpace(string(resp.Body()))) == 0 {
		return models.User{}, nil
	}
	user, err := normalizeUser(resp.Body())
	if err != nil {
		return models.User{}, h.fail(op, payloadError(op, err))
	}
	return user, nil
}

// AuthorizeApp implements [SerbleAdapter]. POST /account/authorizedApps.
func (h *httpSerbleAdapter) AuthorizeApp(ctx context.Context, appID, scopes string) (string, error) {
	const op = "authorize app"

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"appId": appID, "scopes": scopes}).
		Post("/account/authorizedApps")
	if err != nil {
		return "", h.fail(op, networkError(op, err))
	}
	if err = check(resp, op, classifyAuthorizeApp); err != nil {
		return "", h.fail(op, err)
	}

	code, err := normalizeAuthCode(resp.Body())
	if err != nil {
		return "", h.fail(op, payloadError(op, err))
	}
	return code, nil
}

// DeauthorizeApp implements [SerbleAdapter].
// DELETE /account/authorizedApps/{appID}.
func (h *httpSerbleAdapter) DeauthorizeApp(ctx context.Context, appID string) error {
	const op = "deauthorize app"

	resp, err := h.authedRequest(ctx).
		SetPathParam("appId", appID).
		Delete("/account/authorizedApps/{appId}")
	if err != nil {
		return h.fail(op, networkError(op, err))
	}
	return h.fail(op, check(resp, op, classifyDeauthorizeApp))
}

// GetPublicApp implements [SerbleAdapter]. GET /app/{appID}/public, without
// the session header.
func (h *httpSerbleAdapter) GetPublicApp(ctx context.Context, appID string) (models.PublicApp, error) {
	const op = "get public app"

	resp, err := h.request(ctx).
		SetPathParam("appId", appID).
		Get("/app/{appId}/public")
	if err != nil {
		return models.PublicApp{}, h.fail(op, networkError(op, err))
	}
	if err = check(resp, op, classifyPublicApp); err != nil {
		return models.PublicApp{}, h.fail(op, err)
	}

	publicApp, err := normalizePublicApp(resp.Body())
	if err != nil {
		return models.PublicApp{}, h.fail(op, payloadError(op, err))
	}
	if publicApp.ID == "" {
		publicApp.ID = appID
	}
	return publicApp, nil
}

// GetPaymentPortalURL implements [SerbleAdapter]. GET /payments/portal.
func (h *httpSerbleAdapter) GetPaymentPortalURL(ctx context.Context) (string, error) {
	const op = "get payment portal"

	resp, err := h.authedRequest(ctx).Get("/payments/portal")
	if err != nil {
		return "", h.fail(op, networkError(op, err))
	}
	if err = check(resp, op, classifyPaymentPortal); err != nil {
		return "", h.fail(op, err)
	}

	portalURL, err := normalizeURL(resp.Body())
	if err != nil {
		return "", h.fail(op, payloadError(op, err))
	}
	return portalURL, nil
}

// Checkout implements [SerbleAdapter]. POST /payments/checkout.
func (h *httpSerbleAdapter) Checkout(ctx context.Context, items []models.CheckoutItem) (string, error) {
	return h.checkout(h.authedRequest(ctx), "checkout", "/payments/checkout", items)
}

// CheckoutAnonymous implements [SerbleAdapter]. POST /payments/checkoutanon,
// without the session header.
func (h *httpSerbleAdapter) CheckoutAnonymous(ctx context.Context, items []models.CheckoutItem) (string, error) {
	return h.checkout(h.request(ctx), "checkout anonymous", "/payments/checkoutanon", items)
}

func (h *httpSerbleAdapter) checkout(req *resty.Request, op, path string, items []models.CheckoutItem) (string, error) {
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(items).
		Post(path)
	if err != nil {
		return "", h.fail(op, networkError(op, err))
	}
	if err = check(resp, op, classifyCheckout); err != nil {
		return "", h.fail(op, err)
	}

	checkoutURL, err := normalizeURL(resp.Body())
	if err != nil {
		return "", h.fail(op, payloadError(op, err))
	}
	return checkoutURL, nil
}

// ListOAuthApps implements [SerbleAdapter]. GET /app.
func (h *httpSerbleAdapter) ListOAuthApps(ctx context.Context) ([]models.OAuthApp, error) {
	const op = "list oauth apps"

	resp, err := h.authedRequest(ctx).Get("/app")
	if err != nil {
		return nil, h.fail(op, networkError(op, err))
	}
	if err = check(resp, op, classifyListOAuthApps); err != nil {
		return nil, h.fail(op, err)
	}

	apps, err := normalizeOAuthApps(resp.Body())
	if err != nil {
		return nil, h.fail(op, payloadError(op, err))
	}
	return apps, nil
}

// GetOAuthApp implements [SerbleAdapter]. GET /app/{appID}.
func (h *httpSerbleAdapter) GetOAuthApp(ctx context.Context, appID string) (models.OAuthApp, error) {
	const op = "get oauth app"

	resp, err := h.authedRequest(ctx).
		SetPathParam("appId", appID).
		Get("/app/{appId}")
	if err != nil {
		return models.OAuthApp{}, h.fail(op, networkError(op, err))
	}
	if err = check(resp, op, classifyGetOAuthApp); err != nil {
		return models.OAuthApp{}, h.fail(op, err)
	}

	oauthApp, err := normalizeOAuthApp(resp.Body())
	if err != nil {
		return models.OAuthApp{}, h.fail(op, payloadError(op, err))
	}
	if oauthApp.ID == "" {
		oauthApp.ID = appID
	}
	return oauthApp, nil
}

// CreateOAuthApp implements [SerbleAdapter]. POST /app.
func (h *httpSerbleAdapter) CreateOAuthApp(ctx context.Context, draft models.OAuthAppDraft) (models.OAuthApp, error) {
	const op = "create oauth app"

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(draft).
		Post("/app")
	if err != nil {
		return models.OAuthApp{}, h.fail(op, networkError(op, err))
	}
	if err = check(resp, op, classifyCreateOAuthApp); err != nil {
		return models.OAuthApp{}, h.fail(op, err)
	}

	oauthApp, err := normalizeOAuthApp(resp.Body())
	if err != nil {
		return models.OAuthApp{}, h.fail(op, payloadError(op, err))
	}
	if oauthApp.ID == "" {
		return models.OAuthApp{}, h.fail(op, payloadError(op, fmt.Errorf("%w: created app has no id", ErrUnexpectedPayload)))
	}
	return oauthApp, nil
}

// EditOAuthApp implements [SerbleAdapter]. PATCH /app/{appID} with the list
// of edits.
func (h *httpSerbleAdapter) EditOAuthApp(ctx context.Context, appID string, edits []models.AppEdit) (models.OAuthApp, error) {
	const op = "edit oauth app"

	resp, err := h.authedRequest(ctx).
		SetPathParam("appId", appID).
		SetHeader("Content-Type", "application/json").
		SetBody(edits).
		Patch("/app/{appId}")
	if err != nil {
		return models.OAuthApp{}, h.fail(op, networkError(op, err))
	}
	if err = check(resp, op, classifyEditOAuthApp); err != nil {
		return models.OAuthApp{}, h.fail(op, err)
	}

	if len(strings.TrimSpace(string(resp.Body()))) == 0 {
		return models.OAuthApp{ID: appID}, nil
	}
	oauthApp, err := normalizeOAuthApp(resp.Body())
	if err != nil {
		return models.OAuthApp{}, h.fail(op, payloadError(op, err))
	}
	if oauthApp.ID == "" {
		oauthApp.ID = appID
	}
	return oauthApp, nil
}

// DeleteOAuthApp implements [SerbleAdapter]. DELETE /app/{appID}.
func (h *httpSerbleAdapter) DeleteOAuthApp(ctx context.Context, appID string) error {
	const op = "delete oauth app"

	resp, err := h.authedRequest(ctx).
		SetPathParam("appId", appID).
		Delete("/app/{appId}")
	if err != nil {
		return h.fail(op, networkError(op, err))
	}
	return h.fail(op, check(resp, op, classifyDeleteOAuthApp))
}

// TOTPQRCode implements [SerbleAdapter]. GET /account/mfa/totp/qrcode; the
// body is the raw PNG.
func (h *httpSerbleAdapter) TOTPQRCode(ctx context.Context) ([]byte, error) {
	const op = "totp qr code"

	resp, err := h.authedRequest(ctx).Get("/account/mfa/totp/qrcode")
	if err != nil {
		return nil, h.fail(op, networkError(op, err))
	}
	if err = check(resp, op, classifyTOTPQRCode); err != nil {
		return nil, h.fail(op, err)
	}
	if len(resp.Body()) == 0 {
		return nil, h.fail(op, payloadError(op, fmt.Errorf("%w: empty qr code", ErrUnexpectedPayload)))
	}
	return resp.Body(), nil
}

// CheckTOTP implements [SerbleAdapter]. POST /account/mfa/totp answers 200
// with {"valid": bool} for both outcomes.
func (h *httpSerbleAdapter) CheckTOTP(ctx context.Context, code string) (bool, error) {
	const op = "check totp"

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"totp_code": code}).
		Post("/account/mfa/totp")
	if err != nil {
		return false, h.fail(op, networkError(op, err))
	}
	if err = check(resp, op, classifyCheckTOTP); err != nil {
		return false, h.fail(op, err)
	}

	valid, err := normalizeTOTPCheck(resp.Body())
	if err != nil {
		return false, h.fail(op, payloadError(op, err))
	}
	return valid, nil
}

// ListNotes implements [SerbleAdapter]. GET /vault/notes.
func (h *httpSerbleAdapter) ListNotes(ctx context.Context) ([]models.Note, error) {
	const op = "list notes"

	resp, err := h.authedRequest(ctx).Get("/vault/notes")
	if err != nil {
		return nil, h.fail(op, networkError(op, err))
	}
	if err = check(resp, op, classifyNotes); err != nil {
		return nil, h.fail(op, err)
	}

	notes, err := normalizeNotes(resp.Body())
	if err != nil {
		return nil, h.fail(op, payloadError(op, err))
	}
	return notes, nil
}

// GetNote implements [SerbleAdapter]. GET /vault/notes/{noteID}. The content
// is returned as stored; a JSON string body is unquoted first.
func (h *httpSerbleAdapter) GetNote(ctx context.Context, noteID string) (string, error) {
	const op = "get note"

	resp, err := h.authedRequest(ctx).
		SetPathParam("noteId", noteID).
		Get("/vault/notes/{noteId}")
	if err != nil {
		return "", h.fail(op, networkError(op, err))
	}
	if err = check(resp, op, classifyNotes); err != nil {
		return "", h.fail(op, err)
	}
	return plainText(resp.Body()), nil
}

// CreateNote implements [SerbleAdapter]. POST /vault/notes with no body.
func (h *httpSerbleAdapter) CreateNote(ctx context.Context) (string, error) {
	const op = "create note"

	resp, err := h.authedRequest(ctx).Post("/vault/notes")
	if err != nil {
		return "", h.fail(op, networkError(op, err))
	}
	if err = check(resp, op, classifyNotes); err != nil {
		return "", h.fail(op, err)
	}

	noteID, err := normalizeNoteID(resp.Body())
	if err != nil {
		return "", h.fail(op, payloadError(op, err))
	}
	return noteID, nil
}

// UpdateNote implements [SerbleAdapter]. PUT /vault/notes/{noteID}; the blob
// travels as a JSON string.
func (h *httpSerbleAdapter) UpdateNote(ctx context.Context, noteID, blob string) error {
	const op = "update note"

	payload, err := json.Marshal(blob)
	if err != nil {
		return h.fail(op, payloadError(op, err))
	}

	resp, err := h.authedRequest(ctx).
		SetPathParam("noteId", noteID).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Put("/vault/notes/{noteId}")
	if err != nil {
		return h.fail(op, networkError(op, err))
	}
	return h.fail(op, check(resp, op, classifyNotes))
}

// DeleteNote implements [SerbleAdapter]. DELETE /vault/notes/{noteID}.
func (h *httpSerbleAdapter) DeleteNote(ctx context.Context, noteID string) error {
	const op = "delete note"

	resp, err := h.authedRequest(ctx).
		SetPathParam("noteId", noteID).
		Delete("/vault/notes/{noteId}")
	if err != nil {
		return h.fail(op, networkError(op, err))
	}
	return h.fail(op, check(resp, op, classifyNotes))
}

// PasskeyCreationOptions implements [SerbleAdapter].
// POST {passkeyPath}/credentialoptions.
func (h *httpSerbleAdapter) PasskeyCreationOptions(ctx context.Context, prefs models.RegistrationPreferences) (models.RawChallenge, error) {
	const op = "passkey creation options"

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(prefs).
		Post(h.passkeyPath + "/credentialoptions")
	if err != nil {
		return models.RawChallenge{}, h.fail(op, networkError(op, err))
	}
	if err = check(resp, op, classifyPasskeyOptions); err != nil {
		return models.RawChallenge{}, h.fail(op, err)
	}
	return normalizeChallenge(resp.Body()), nil
}

// RegisterPasskey implements [SerbleAdapter].
// POST {passkeyPath}/credential?challengeId=….
func (h *httpSerbleAdapter) RegisterPasskey(ctx context.Context, challengeID string, attestation models.CredentialAttestation) (string, error) {
	const op = "register passkey"

	resp, err := h.authedRequest(ctx).
		SetQueryParam("challengeId", challengeID).
		SetHeader("Content-Type", "application/json").
		SetBody(attestation).
		Post(h.passkeyPath + "/credential")
	if err != nil {
		return "", h.fail(op, networkError(op, err))
	}
	if err = check(resp, op, classifyRegisterPasskey); err != nil {
		return "", h.fail(op, err)
	}
	return normalizeCredentialID(resp.Body()), nil
}

// PasskeyAssertionOptions implements [SerbleAdapter]. With a username the
// options are requested by POST {passkeyPath}/assertionOptions; without one
// by GET, which yields a discoverable-credential challenge. No session is
// needed.
func (h *httpSerbleAdapter) PasskeyAssertionOptions(ctx context.Context, username string) (models.RawChallenge, error) {
	const op = "passkey assertion options"

	var (
		resp *resty.Response
		err  error
	)
	if username == "" {
		resp, err = h.request(ctx).Get(h.passkeyPath + "/assertionOptions")
	} else {
		resp, err = h.request(ctx).
			SetHeader("Content-Type", "application/json").
			SetBody(map[string]string{"username": username}).
			Post(h.passkeyPath + "/assertionOptions")
	}
	if err != nil {
		return models.RawChallenge{}, h.fail(op, networkError(op, err))
	}
	if err = check(resp, op, classifyPasskeyOptions); err != nil {
		return models.RawChallenge{}, h.fail(op, err)
	}
	return normalizeChallenge(resp.Body()), nil
}

// VerifyPasskeyAssertion implements [SerbleAdapter].
// POST {passkeyPath}/assertion?challengeId=…. No session is needed.
func (h *httpSerbleAdapter) VerifyPasskeyAssertion(ctx context.Context, challengeID string, assertion models.CredentialAssertion) (models.LoginResult, error) {
	const op = "verify passkey assertion"

	resp, err := h.request(ctx).
		SetQueryParam("challengeId", challengeID).
		SetHeader("Content-Type", "application/json").
		SetBody(assertion).
		Post(h.passkeyPath + "/assertion")
	if err != nil {
		return models.LoginResult{}, h.fail(op, networkError(op, err))
	}
	if err = check(resp, op, classifyVerifyAssertion); err != nil {
		return models.LoginResult{}, h.fail(op, err)
	}

	result, err := normalizeLogin(resp.Body())
	if err != nil {
		return models.LoginResult{}, h.fail(op, payloadError(op, err))
	}
	return result, nil
}

// ListPasskeys implements [SerbleAdapter]. GET {passkeyPath}/list.
func (h *httpSerbleAdapter) ListPasskeys(ctx context.Context) ([]models.Passkey, error) {
	const op = "list passkeys"

	resp, err := h.authedRequest(ctx).Get(h.passkeyPath + "/list")
	if err != nil {
		return nil, h.fail(op, networkError(op, err))
	}
	if err = check(resp, op, classifyPasskeyManagement); err != nil {
		return nil, h.fail(op, err)
	}

	passkeys, err := normalizePasskeys(resp.Body())
	if err != nil {
		return nil, h.fail(op, payloadError(op, err))
	}
	return passkeys, nil
}

// DeletePasskey implements [SerbleAdapter]. DELETE {passkeyPath}/delete/{name}.
func (h *httpSerbleAdapter) DeletePasskey(ctx context.Context, name string) error {
	const op = "delete passkey"

	resp, err := h.authedRequest(ctx).
		SetPathParam("name", name).
		Delete(h.passkeyPath + "/delete/{name}")
	if err != nil {
		return h.fail(op, networkError(op, err))
	}
	return h.fail(op, check(resp, op, classifyPasskeyManagement))
}

// request starts a request that forwards the trace id of ctx.
func (h *httpSerbleAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(headerTraceID, traceID)
	}
	return req
}

// authedRequest is [httpSerbleAdapter.request] plus the session header.
func (h *httpSerbleAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.request(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader(headerSerbleAuth, "User "+token)
	}
	return req
}

// fail logs err at debug level and returns it unchanged. A nil err passes
// through silently.
func (h *httpSerbleAdapter) fail(op string, err error) error {
	if err == nil {
		return nil
	}
	h.logger.Debug().Err(err).
		Str("func", "httpSerbleAdapter").
		Str("op", op).
		Str("flag", string(models.FlagOf(err))).
		Msg("serble request failed")
	return err
}
