package authenticator

import "errors"

var (
	ErrUnsupportedAlgorithm = errors.New("authenticator supports ES256 only")
	ErrCredentialExcluded   = errors.New("a credential for this account is already registered")
	ErrNoCredential         = errors.New("no matching credential")
	ErrNoRelyingParty       = errors.New("relying party id is unknown")
)
