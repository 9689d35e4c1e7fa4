// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	KDFSHA256   = "sha256"
	KDFArgon2id = "argon2id"
)

// sha256KDF is the historical key schedule: key = SHA-256(password).
// It is fast and unsalted, and it is what every existing note on the server
// was encrypted with.
type sha256KDF struct{}

// SHA256KDF returns the default, wire-compatible key derivation.
func SHA256KDF() KDF {
	return sha256KDF{}
}

func (sha256KDF) DeriveKey(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	return sum[:]
}

func (sha256KDF) Name() string { return KDFSHA256 }

// Argon2Params are the Argon2id tuning knobs.
type Argon2Params struct {
	Time    uint32
	Memory  uint32
	Threads uint8
}

// DefaultArgon2Params follows the OWASP (2024) recommendation:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
var DefaultArgon2Params = Argon2Params{
	Time:    1,
	Memory:  64 * 1024,
	Threads: 4,
}

type argon2idKDF struct {
	salt   []byte
	params Argon2Params
}

// Argon2idKDF derives keys with Argon2id over a deployment-wide salt.
// Blobs sealed with it cannot be opened by clients using [SHA256KDF].
func Argon2idKDF(salt []byte, params Argon2Params) KDF {
	return &argon2idKDF{salt: append([]byte(nil), salt...), params: params}
}

func (k *argon2idKDF) DeriveKey(password string) []byte {
	return argon2.IDKey([]byte(password), k.salt, k.params.Time, k.params.Memory, k.params.Threads, 32)
}

func (k *argon2idKDF) Name() string { return KDFArgon2id }

// NewKDF resolves a configured KDF name. saltHex is only read for argon2id.
// An empty name selects sha256.
func NewKDF(name, saltHex string) (KDF, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", KDFSHA256:
		return SHA256KDF(), nil
	case KDFArgon2id:
		salt, err := hex.DecodeString(strings.TrimSpace(saltHex))
		if err != nil || len(salt) < 16 {
			return nil, ErrInvalidSalt
		}
		return Argon2idKDF(salt, DefaultArgon2Params), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKDF, name)
	}
}
