package adapter

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-serble-keeper/models"
	"github.com/tidwall/gjson"
)

// The Serble API and the passkey verifier are not consistent about field
// casing, and some endpoints answer with a bare string instead of an object.
// Everything below folds those variants into canonical models once, so no
// caller ever has to look at a raw body.

// plainText returns body as text. A JSON string body is unquoted.
func plainText(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" || !gjson.Valid(trimmed) {
		return trimmed
	}
	if res := gjson.Parse(trimmed); res.Type == gjson.String {
		return res.String()
	}
	return trimmed
}

// firstOf returns the first of paths present in res.
func firstOf(res gjson.Result, paths ...string) gjson.Result {
	for _, p := range paths {
		if v := res.Get(p); v.Exists() {
			return v
		}
	}
	return gjson.Result{}
}

// parseObject parses body when it is a JSON object.
func parseObject(body []byte) (gjson.Result, bool) {
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, false
	}
	res := gjson.ParseBytes(body)
	return res, res.IsObject()
}

// stringOrField extracts a string that is either the whole body or one of
// the named fields of an object body.
func stringOrField(body []byte, fields ...string) string {
	if res, ok := parseObject(body); ok {
		return firstOf(res, fields...).String()
	}
	return plainText(body)
}

func normalizeLogin(body []byte) (models.LoginResult, error) {
	res, ok := parseObject(body)
	if !ok {
		// a bare token
		token := plainText(body)
		if token == "" {
			return models.LoginResult{}, fmt.Errorf("%w: empty login response", ErrUnexpectedPayload)
		}
		return models.LoginResult{Token: token}, nil
	}

	result := models.LoginResult{
		Token:       firstOf(res, "token", "Token", "access_token").String(),
		MFARequired: firstOf(res, "mfa_required", "mfaRequired", "MfaRequired").Bool(),
		MFAToken:    firstOf(res, "mfa_token", "mfaToken", "MfaToken", "login_token").String(),
	}

	switch {
	case result.MFARequired && result.MFAToken == "":
		return models.LoginResult{}, fmt.Errorf("%w: mfa required without mfa token", ErrUnexpectedPayload)
	case result.MFARequired:
		result.Token = ""
	case result.Token == "":
		return models.LoginResult{}, fmt.Errorf("%w: login response has no token", ErrUnexpectedPayload)
	}
	return result, nil
}

func normalizeUser(body []byte) (models.User, error) {
	res, ok := parseObject(body)
	if !ok {
		return models.User{}, fmt.Errorf("%w: account is not an object", ErrUnexpectedPayload)
	}

	user := models.User{
		ID:          firstOf(res, "id", "Id").String(),
		Username:    firstOf(res, "username", "Username").String(),
		Email:       firstOf(res, "email", "Email").String(),
		PermLevel:   int(firstOf(res, "permLevel", "perm_level", "PermLevel").Int()),
		PermString:  firstOf(res, "permString", "perm_string", "PermString").String(),
		TOTPEnabled: firstOf(res, "totpEnabled", "totp_enabled", "TotpEnabled").Bool(),
	}

	firstOf(res, "authorizedApps", "authorized_apps", "AuthorizedApps").ForEach(func(_, v gjson.Result) bool {
		if v.Type == gjson.String {
			user.AuthorizedApps = append(user.AuthorizedApps, models.AuthorizedApp{AppID: v.String()})
			return true
		}
		user.AuthorizedApps = append(user.AuthorizedApps, models.AuthorizedApp{
			AppID:  firstOf(v, "appId", "app_id", "AppId", "Item1").String(),
			Scopes: firstOf(v, "scopes", "Scopes", "Item2").String(),
		})
		return true
	})

	return user, nil
}

func normalizeNotes(body []byte) ([]models.Note, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: notes list is not json", ErrUnexpectedPayload)
	}
	res := gjson.ParseBytes(body)
	if !res.IsArray() {
		return nil, fmt.Errorf("%w: notes list is not an array", ErrUnexpectedPayload)
	}

	notes := make([]models.Note, 0, len(res.Array()))
	res.ForEach(func(_, v gjson.Result) bool {
		if v.Type == gjson.String {
			notes = append(notes, models.Note{ID: v.String()})
			return true
		}
		id := firstOf(v, "id", "Id", "noteId", "note_id", "NoteId").String()
		if id == "" {
			return true
		}
		notes = append(notes, models.Note{ID: id, Name: firstOf(v, "name", "Name").String()})
		return true
	})
	return notes, nil
}

func normalizeNoteID(body []byte) (string, error) {
	id := stringOrField(body, "note_id", "noteId", "NoteId")
	if id == "" {
		return "", fmt.Errorf("%w: created note has no id", ErrUnexpectedPayload)
	}
	return id, nil
}

func normalizePublicApp(body []byte) (models.PublicApp, error) {
	res, ok := parseObject(body)
	if !ok {
		return models.PublicApp{}, fmt.Errorf("%w: app is not an object", ErrUnexpectedPayload)
	}
	return models.PublicApp{
		ID:          firstOf(res, "id", "Id").String(),
		Name:        firstOf(res, "name", "Name").String(),
		Description: firstOf(res, "description", "Description").String(),
		RedirectURI: firstOf(res, "redirectUri", "redirect_uri", "RedirectUri").String(),
	}, nil
}

func normalizeOAuthApp(body []byte) (models.OAuthApp, error) {
	res, ok := parseObject(body)
	if !ok {
		return models.OAuthApp{}, fmt.Errorf("%w: app is not an object", ErrUnexpectedPayload)
	}
	return oauthAppOf(res), nil
}

func normalizeOAuthApps(body []byte) ([]models.OAuthApp, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: app list is not json", ErrUnexpectedPayload)
	}
	res := gjson.ParseBytes(body)
	if res.IsObject() {
		res = firstOf(res, "apps", "Apps")
	}
	if !res.IsArray() {
		return nil, fmt.Errorf("%w: app list is not an array", ErrUnexpectedPayload)
	}

	apps := make([]models.OAuthApp, 0, len(res.Array()))
	res.ForEach(func(_, v gjson.Result) bool {
		if !v.IsObject() {
			return true
		}
		if a := oauthAppOf(v); a.ID != "" {
			apps = append(apps, a)
		}
		return true
	})
	return apps, nil
}

func oauthAppOf(res gjson.Result) models.OAuthApp {
	return models.OAuthApp{
		ID:           firstOf(res, "id", "Id").String(),
		OwnerID:      firstOf(res, "ownerId", "owner_id", "OwnerId").String(),
		Name:         firstOf(res, "name", "Name").String(),
		Description:  firstOf(res, "description", "Description").String(),
		RedirectURI:  firstOf(res, "redirectUri", "redirect_uri", "RedirectUri").String(),
		ClientSecret: firstOf(res, "clientSecret", "client_secret", "ClientSecret").String(),
	}
}

// normalizeTOTPCheck accepts {"valid": bool} or a bare boolean.
func normalizeTOTPCheck(body []byte) (bool, error) {
	if !gjson.ValidBytes(body) {
		return false, fmt.Errorf("%w: totp check is not json", ErrUnexpectedPayload)
	}
	res := gjson.ParseBytes(body)
	if res.IsObject() {
		res = firstOf(res, "valid", "Valid")
	}
	switch res.Type {
	case gjson.True, gjson.False:
		return res.Bool(), nil
	default:
		return false, fmt.Errorf("%w: totp check has no verdict", ErrUnexpectedPayload)
	}
}

func normalizeURL(body []byte) (string, error) {
	u := stringOrField(body, "url", "Url", "URL")
	if u == "" {
		return "", fmt.Errorf("%w: no url in response", ErrUnexpectedPayload)
	}
	return u, nil
}

func normalizeAuthCode(body []byte) (string, error) {
	code := stringOrField(body, "code", "authCode", "auth_code", "AuthCode")
	if code == "" {
		return "", fmt.Errorf("%w: no auth code in response", ErrUnexpectedPayload)
	}
	return code, nil
}

// normalizeChallenge locates the challenge id and the options object of a
// verifier envelope. Missing parts are left empty: deciding that a challenge
// is malformed belongs to the ceremony.
func normalizeChallenge(body []byte) models.RawChallenge {
	res, ok := parseObject(body)
	if !ok {
		return models.RawChallenge{}
	}

	challenge := models.RawChallenge{
		ChallengeID: firstOf(res, "challengeId", "challenge_id", "ChallengeId").String(),
	}

	options := firstOf(res, "options.publicKey", "Options.publicKey", "publicKey", "options", "Options")
	if !options.IsObject() {
		options = res
	}
	challenge.Options = []byte(options.Raw)
	return challenge
}

func normalizeCredentialID(body []byte) string {
	return stringOrField(body, "credentialId", "credential_id", "CredentialId", "id")
}

func normalizePasskeys(body []byte) ([]models.Passkey, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: passkey list is not json", ErrUnexpectedPayload)
	}
	res := gjson.ParseBytes(body)
	if res.IsObject() {
		res = firstOf(res, "passkeys", "Passkeys", "credentials")
	}
	if !res.IsArray() {
		return nil, fmt.Errorf("%w: passkey list is not an array", ErrUnexpectedPayload)
	}

	passkeys := make([]models.Passkey, 0, len(res.Array()))
	res.ForEach(func(_, v gjson.Result) bool {
		if v.Type == gjson.String {
			passkeys = append(passkeys, models.Passkey{Name: v.String()})
			return true
		}
		pk := models.Passkey{
			Name:         firstOf(v, "name", "Name").String(),
			CredentialID: firstOf(v, "credentialId", "credential_id", "CredentialId", "id").String(),
		}
		if created := firstOf(v, "createdAt", "created_at", "CreatedAt"); created.Exists() {
			if t, err := time.Parse(time.RFC3339, created.String()); err == nil {
				pk.CreatedAt = t
			}
		}
		passkeys = append(passkeys, pk)
		return true
	})
	return passkeys, nil
}
