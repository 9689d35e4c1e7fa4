// Package passkey drives WebAuthn registration and authentication ceremonies
// between a remote verifier and an authenticator.
//
// A [Ceremony] is strictly sequential: it asks the [Verifier] for a
// challenge, decodes the binary members of the options, hands them to the
// [Authenticator], re-encodes the authenticator output as unpadded URL-safe
// base64 and submits it back together with the challenge id. Every step is
// reported to an optional [StateHook].
//
// Failures are never returned as bare errors. Both ceremony methods return a
// [models.Result] whose flag tells a user abort ("cancelled") apart from a
// broken challenge ("malformed-challenge"), an authenticator fault
// ("ceremony-failed") and anything the verifier or the network reported.
package passkey
