// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
)

const (
	nonceSize    = 12
	nonceHexSize = nonceSize * 2
)

// vaultCipher is the private implementation of [VaultCipher].
type vaultCipher struct {
	kdf  KDF
	rand io.Reader
}

// NewVaultCipher constructs a [VaultCipher] over kdf. A nil kdf selects
// [SHA256KDF].
func NewVaultCipher(kdf KDF) VaultCipher {
	if kdf == nil {
		kdf = SHA256KDF()
	}
	return &vaultCipher{kdf: kdf, rand: rand.Reader}
}

// Encrypt implements [VaultCipher]. It derives the key, draws a random
// 12-byte nonce and seals the UTF-8 plaintext with AES-256-GCM.
func (v *vaultCipher) Encrypt(plaintext, password string) (string, error) {
	gcm, err := v.aead(password)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(v.rand, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	sealed := gcm.Seal(nil, nonce, []byte(plaintext), nil)
	return hex.EncodeToString(nonce) + base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt implements [VaultCipher]. The first 24 characters of blob are the
// hex nonce; the remainder is standard base64 of ciphertext || tag.
func (v *vaultCipher) Decrypt(blob, password string) (string, error) {
	if len(blob) < nonceHexSize {
		return "", ErrMalformedBlob
	}

	nonce, err := hex.DecodeString(blob[:nonceHexSize])
	if err != nil {
		return "", fmt.Errorf("%w: nonce: %v", ErrMalformedBlob, err)
	}
	sealed, err := base64.StdEncoding.DecodeString(blob[nonceHexSize:])
	if err != nil {
		return "", fmt.Errorf("%w: ciphertext: %v", ErrMalformedBlob, err)
	}

	gcm, err := v.aead(password)
	if err != nil {
		return "", err
	}
	if len(sealed) < gcm.Overhead() {
		return "", ErrMalformedBlob
	}

	plain, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", ErrDecryptionFailed
	}
	return string(plain), nil
}

func (v *vaultCipher) aead(password string) (cipher.AEAD, error) {
	block, err := aes.NewCipher(v.kdf.DeriveKey(password))
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
