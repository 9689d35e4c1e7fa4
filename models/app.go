package models

// PublicApp is the public view of a third-party OAuth application, shown on
// the authorization screen.
type PublicApp struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	RedirectURI string `json:"redirectUri"`
}

// AuthorizedApp is an application the user has granted scopes to.
type AuthorizedApp struct {
	AppID  string `json:"appId"`
	Scopes string `json:"scopes"`
}

// OAuthApp is an application registered by the signed-in developer.
// ClientSecret is only ever filled in by the owner's endpoints.
type OAuthApp struct {
	ID           string `json:"id"`
	OwnerID      string `json:"ownerId"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	RedirectURI  string `json:"redirectUri"`
	ClientSecret string `json:"clientSecret"`
}

// OAuthAppDraft is the body of POST /app.
type OAuthAppDraft struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	RedirectURI string `json:"redirectUri"`
}

// AppEdit is a single field change sent with PATCH /app/{id}.
type AppEdit struct {
	Field    string `json:"field"`
	NewValue string `json:"newValue"`
}
