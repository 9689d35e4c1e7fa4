package adapter

import "errors"

// Status sentinels. Every rejected response wraps exactly one of them, so
// callers may use [errors.Is] without knowing the endpoint's flag table.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

var (
	ErrInvalidAddress    = errors.New("invalid adapter address")
	ErrUnexpectedPayload = errors.New("unexpected payload")
)
