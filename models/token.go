package models

import "time"

// Session is the explicit authenticated session owned by the session
// manager. The zero value means "logged out".
type Session struct {
	// Token is sent as "SerbleAuth: User <token>".
	Token string

	// ExpiresAt is read from the token's exp claim when the token is a JWT.
	// It stays zero for opaque tokens.
	ExpiresAt time.Time
}

// Valid reports whether the session holds a token that has not expired at
// the given moment.
func (s Session) Valid(now time.Time) bool {
	if s.Token == "" {
		return false
	}
	return s.ExpiresAt.IsZero() || now.Before(s.ExpiresAt)
}
