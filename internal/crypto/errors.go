package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrDecryptionFailed is returned when the GCM tag does not verify.
	ErrDecryptionFailed = errors.New("decryption failed")
	// ErrMalformedBlob is returned when a blob cannot be split into nonce and
	// ciphertext. It matches ErrDecryptionFailed under errors.Is.
	ErrMalformedBlob = fmt.Errorf("%w: malformed blob", ErrDecryptionFailed)
	// ErrUnknownKDF is returned by NewKDF for an unsupported name.
	ErrUnknownKDF = errors.New("unknown kdf")
	// ErrInvalidSalt is returned when argon2id is selected without a usable salt.
	ErrInvalidSalt = errors.New("argon2id kdf needs a salt of at least 16 bytes")
)
