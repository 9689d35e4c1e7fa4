package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_cipher_mock.go -package=mock

// VaultCipher encrypts vault note bodies with a key derived from a
// per-note password.
//
// Blob layout (the wire format shared with every other Serble client):
//
//	hex(nonce, 12 bytes -> 24 lowercase chars) || base64.Std(ciphertext || tag)
type VaultCipher interface {
	// Encrypt seals plaintext under password. Every call draws a fresh
	// nonce, so encrypting the same input twice yields different blobs.
	Encrypt(plaintext, password string) (string, error)

	// Decrypt opens a blob produced by Encrypt. A wrong password and a
	// tampered blob are both reported as ErrDecryptionFailed; callers cannot
	// and should not tell them apart.
	Decrypt(blob, password string) (string, error)
}

// KDF turns a note password into a 32-byte AES-256 key.
type KDF interface {
	DeriveKey(password string) []byte
	Name() string
}
