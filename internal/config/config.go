// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-serble-keeper client. It aggregates all sub-configurations and is
// populated by merging built-in defaults, environment variables,
// command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings, currently the vault key
	// derivation choice.
	App App `envPrefix:"APP_"`

	// Storage holds configuration of the local key/value store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the remote Serble API endpoint and request settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Passkey holds the WebAuthn origin and relying-party id the software
	// authenticator presents.
	Passkey Passkey `envPrefix:"PASSKEY_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// VaultKDF selects how note passwords become AES keys: "sha256" (the
	// default, compatible with every existing note) or "argon2id".
	// Env: APP_VAULT_KDF
	VaultKDF string `env:"VAULT_KDF"`

	// VaultKDFSalt is the hex-encoded deployment salt for argon2id. Ignored
	// for sha256.
	// Env: APP_VAULT_KDF_SALT
	VaultKDFSalt string `env:"VAULT_KDF_SALT"`
}

// Storage groups the configuration for the local storage backend.
type Storage struct {
	// DB holds the local database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path. ":memory:" or "memory" selects a
	// process-local store that is lost on exit.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds the remote API settings.
type Adapter struct {
	// Address is the base URL of the Serble API, including the version
	// prefix (e.g. "https://api.serble.net/api/v1").
	// Env: ADAPTER_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single outbound request
	// (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// PasskeyPath is the path prefix of the passkey verifier endpoints.
	// Env: ADAPTER_PASSKEY_PATH
	PasskeyPath string `env:"PASSKEY_PATH"`
}

// Passkey holds WebAuthn client settings.
type Passkey struct {
	// Origin is written into clientDataJSON (e.g. "https://serble.net").
	// Env: PASSKEY_ORIGIN
	Origin string `env:"ORIGIN"`

	// RPID is the relying-party id used when the verifier omits one.
	// Env: PASSKEY_RP_ID
	RPID string `env:"RP_ID"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SessionCheckInterval is how often the stored session is revalidated.
	// Env: WORKERS_SESSION_CHECK_INTERVAL
	SessionCheckInterval time.Duration `env:"SESSION_CHECK_INTERVAL"`
}

// GetStructuredConfig loads and merges the application configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
