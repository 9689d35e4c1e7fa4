package config

import "time"

const (
	DefaultAdapterAddress       = "https://api.serble.net/api/v1"
	DefaultRequestTimeout       = 15 * time.Second
	DefaultPasskeyPath          = "/passkey"
	DefaultDSN                  = "serble-keeper.db"
	DefaultPasskeyOrigin        = "https://serble.net"
	DefaultPasskeyRPID          = "serble.net"
	DefaultSessionCheckInterval = 5 * time.Minute
	DefaultVaultKDF             = "sha256"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			VaultKDF: DefaultVaultKDF,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Adapter: Adapter{
			Address:        DefaultAdapterAddress,
			RequestTimeout: DefaultRequestTimeout,
			PasskeyPath:    DefaultPasskeyPath,
		},
		Passkey: Passkey{
			Origin: DefaultPasskeyOrigin,
			RPID:   DefaultPasskeyRPID,
		},
		Workers: Workers{
			SessionCheckInterval: DefaultSessionCheckInterval,
		},
	}
}
