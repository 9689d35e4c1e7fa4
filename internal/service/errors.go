package service

import "errors"

var (
	ErrNoSession        = errors.New("no active session")
	ErrEmptyCredentials = errors.New("username and password are required")
	ErrEmptyTOTP        = errors.New("totp code is required")
	ErrEmptyToken       = errors.New("login succeeded without a token")
	ErrPasswordRequired = errors.New("note password is required")
	ErrNoEdits          = errors.New("no account edits given")
	ErrNoAppID          = errors.New("no application id given")
	ErrNoAppName        = errors.New("application name is required")
	ErrBadRedirectURI   = errors.New("redirect uri must be an absolute http(s) url")
	ErrTOTPRejected     = errors.New("totp code was not accepted")
	ErrNoProducts       = errors.New("no products to check out")
)
