package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags from the process command line.
//
// Flags:
//
//	-a Serble API base URL
//	-d local database DSN
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "15s", "1m")
//	-passkey-path passkey verifier path prefix
//	-origin WebAuthn origin
//	-rp-id WebAuthn relying-party id
//	-session-check-interval session revalidation period
//	-vault-kdf vault key derivation ("sha256" or "argon2id")
//	-vault-kdf-salt hex salt for argon2id
func ParseFlags() *StructuredConfig {
	var adapterAddress string
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var passkeyPath string
	var origin string
	var rpID string
	var sessionCheckInterval time.Duration
	var vaultKDF string
	var vaultKDFSalt string

	flag.StringVar(&adapterAddress, "a", "", "Serble API base URL")
	flag.StringVar(&databaseDSN, "d", "", "Local database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	flag.StringVar(&passkeyPath, "passkey-path", "", "Passkey verifier path prefix")
	flag.StringVar(&origin, "origin", "", "WebAuthn origin")
	flag.StringVar(&rpID, "rp-id", "", "WebAuthn relying party id")
	flag.DurationVar(&sessionCheckInterval, "session-check-interval", 0, "Session revalidation interval")
	flag.StringVar(&vaultKDF, "vault-kdf", "", "Vault key derivation: sha256 or argon2id")
	flag.StringVar(&vaultKDFSalt, "vault-kdf-salt", "", "Hex salt for argon2id")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			VaultKDF:     vaultKDF,
			VaultKDFSalt: vaultKDFSalt,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Adapter: Adapter{
			Address:        adapterAddress,
			RequestTimeout: requestTimeout,
			PasskeyPath:    passkeyPath,
		},
		Passkey: Passkey{
			Origin: origin,
			RPID:   rpID,
		},
		Workers: Workers{
			SessionCheckInterval: sessionCheckInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
