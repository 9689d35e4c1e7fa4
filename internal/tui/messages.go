package tui

import (
	"github.com/MKhiriev/go-serble-keeper/models"
)

// Page names understood by [RootModel].
const (
	pageMenu         = "menu"
	pageLogin        = "login"
	pagePasskeyLogin = "passkey_login"
	pageHome         = "home"
	pageNotes        = "notes"
	pageNote         = "note"
	pageAuthorize    = "authorize"
	pagePasskeys     = "passkeys"
	pagePayment      = "payment"
	pageAccount      = "account"
	pageApps         = "apps"
	pageDevApps      = "dev_apps"
	pageTOTP         = "totp"
	pageCheckout     = "checkout"
	pageCheckoutAnon = "checkout_anon"
)

// NavigateTo switches the active page. A non-nil Payload is delivered to the
// new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload any
}

// menuNotice is shown on top of the menu after a logout or an expired session.
type menuNotice struct {
	text string
}

// LoginDone is produced by every login page once a session is installed.
type LoginDone struct{}

type loginResultMsg struct {
	res models.Result[models.LoginResult]
}

type userLoadedMsg struct {
	res models.Result[models.User]
}

type notesLoadedMsg struct {
	res models.Result[[]models.Note]
}

type openNoteMsg struct {
	noteID string
	create bool
}

type noteOpenedMsg struct {
	res models.Result[string]
}

type noteSavedMsg struct {
	res    models.Result[string]
	create bool
}

type noteDeletedMsg struct {
	res models.Result[struct{}]
}

type publicAppMsg struct {
	res models.Result[models.PublicApp]
}

type authorizedMsg struct {
	res models.Result[string]
}

type passkeysLoadedMsg struct {
	res models.Result[[]models.Passkey]
}

type passkeyRegisteredMsg struct {
	res models.Result[string]
}

type passkeyDeletedMsg struct {
	res models.Result[struct{}]
}

type portalMsg struct {
	res models.Result[string]
}

type ownedAppsMsg struct {
	res models.Result[[]models.OAuthApp]
}

type ownedAppMsg struct {
	res models.Result[models.OAuthApp]
}

type appSavedMsg struct {
	res    models.Result[models.OAuthApp]
	create bool
}

type appDeletedMsg struct {
	res models.Result[struct{}]
}

type totpQRMsg struct {
	res models.Result[[]byte]
}

type totpEnabledMsg struct {
	res models.Result[struct{}]
}

type checkoutMsg struct {
	res models.Result[string]
}

type ceremonyStateMsg struct {
	state models.CeremonyState
}

type sessionTickMsg struct{}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
