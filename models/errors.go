// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
)

// ErrorKind is the coarse failure category every network, cipher and
// ceremony error is reduced to.
type ErrorKind int

const (
	// KindUnknown is reported for errors that carry no classification.
	KindUnknown ErrorKind = iota
	// KindNetwork is a transport-level failure. Retryable by user action.
	KindNetwork
	// KindVerifierRejected is a non-2xx answer from the remote API.
	KindVerifierRejected
	// KindDecryptionFailed is an AEAD tag mismatch: wrong password or a
	// tampered blob. The two causes are intentionally indistinguishable.
	KindDecryptionFailed
	// KindCeremonyCancelled is a user or platform abort of a passkey
	// ceremony. It is not an error to alert on.
	KindCeremonyCancelled
	// KindCeremonyFailed is any other authenticator or transcoding failure.
	KindCeremonyFailed
	// KindMalformedChallenge means a required field is missing from the
	// verifier's options.
	KindMalformedChallenge
	// KindInvalidInput is a request rejected locally before any I/O.
	KindInvalidInput
)

// String implements [fmt.Stringer].
func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network failure"
	case KindVerifierRejected:
		return "verifier rejected"
	case KindDecryptionFailed:
		return "decryption failed"
	case KindCeremonyCancelled:
		return "ceremony cancelled"
	case KindCeremonyFailed:
		return "ceremony failed"
	case KindMalformedChallenge:
		return "malformed challenge"
	case KindInvalidInput:
		return "invalid input"
	default:
		return "unknown"
	}
}

// ErrorFlag is a short, human-actionable tag shown to the user instead of a
// raw status code.
type ErrorFlag string

const (
	FlagNone               ErrorFlag = ""
	FlagUnknown            ErrorFlag = "unknown"
	FlagNetwork            ErrorFlag = "network"
	FlagUnauthorized       ErrorFlag = "unauthorized"
	FlagNotFound           ErrorFlag = "not-found"
	FlagBadApp             ErrorFlag = "bad-app"
	FlagNotCustomer        ErrorFlag = "not-customer"
	FlagNameTaken          ErrorFlag = "name-taken"
	FlagEmailInvalid       ErrorFlag = "email-invalid"
	FlagBadField           ErrorFlag = "bad-field"
	FlagInvalidCredentials ErrorFlag = "invalid-credentials"
	FlagRejected           ErrorFlag = "rejected"
	FlagCancelled          ErrorFlag = "cancelled"
	FlagMalformedChallenge ErrorFlag = "malformed-challenge"
	FlagCeremonyFailed     ErrorFlag = "ceremony-failed"
	FlagDecryptionFailed   ErrorFlag = "decryption-failed"
	FlagNoEdits            ErrorFlag = "no-edits"
)

// Error is the tagged error value produced by the per-endpoint
// classification functions and by the passkey ceremony.
type Error struct {
	Kind    ErrorKind
	Flag    ErrorFlag
	Status  int
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Flag != FlagNone {
		msg += " (" + string(e.Flag) + ")"
	}
	if e.Status != 0 {
		msg = fmt.Sprintf("%s: http %d", msg, e.Status)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes the underlying cause to [errors.Is] and [errors.As].
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError builds an *Error of the given kind and flag around cause.
func NewError(kind ErrorKind, flag ErrorFlag, cause error) *Error {
	return &Error{Kind: kind, Flag: flag, Err: cause}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// FlagOf returns the flag of the first *Error in err's chain, or
// FlagUnknown for unclassified errors. A nil error has no flag.
func FlagOf(err error) ErrorFlag {
	if err == nil {
		return FlagNone
	}
	var e *Error
	if errors.As(err, &e) && e.Flag != FlagNone {
		return e.Flag
	}
	return FlagUnknown
}

// StatusOf returns the HTTP status recorded in err's chain, if any.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}
