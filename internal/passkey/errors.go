package passkey

import "errors"

var (
	// ErrCancelled is returned by an [Authenticator] when the user or the
	// platform aborted the operation. It is the only authenticator error that
	// yields a cancelled result.
	ErrCancelled = errors.New("passkey operation cancelled")

	// ErrMalformedChallenge means the verifier's envelope lacks the
	// challenge id or the challenge itself.
	ErrMalformedChallenge = errors.New("malformed passkey challenge")

	// ErrInvalidBinary is returned by [DecodeBinary] for values that are
	// neither base64 nor a byte array.
	ErrInvalidBinary = errors.New("invalid binary value")
)
