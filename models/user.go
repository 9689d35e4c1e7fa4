package models

// User is the account record returned by GET /account.
type User struct {
	// ID is the remote account identifier.
	ID string `json:"id"`

	// Username is unique across the service and editable through
	// [AccountEdit] with Field "username".
	Username string `json:"username"`

	// Email may be empty for accounts registered without one.
	Email string `json:"email"`

	// PermLevel is 0 for a disabled account, 1 for a normal one and 2 for an
	// administrator.
	PermLevel int `json:"permLevel"`

	// PermString is the account's own scope bit-string.
	PermString string `json:"permString"`

	// TOTPEnabled reports whether login requires a second factor.
	TOTPEnabled bool `json:"totpEnabled"`

	// AuthorizedApps lists the applications holding a grant.
	AuthorizedApps []AuthorizedApp `json:"authorizedApps"`
}

// AccountEdit is a single field change sent with PATCH /account.
type AccountEdit struct {
	Field    string `json:"field"`
	NewValue string `json:"newValue"`
}

// LoginResult is the normalized answer of the password, TOTP and passkey
// login endpoints. When MFARequired is set, Token is empty and MFAToken must
// be exchanged together with a TOTP code.
type LoginResult struct {
	Token       string
	MFARequired bool
	MFAToken    string
}
