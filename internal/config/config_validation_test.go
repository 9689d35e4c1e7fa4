package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validClientConfig() *ClientConfig {
	return NewClientConfig(defaultConfig())
}

func TestClientConfigValidate_Defaults(t *testing.T) {
	assert.NoError(t, validClientConfig().validate())
}

func TestClientConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{
			name:    "empty dsn",
			mutate:  func(c *ClientConfig) { c.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "memory dsn is allowed",
			mutate:  func(c *ClientConfig) { c.Storage.DB.DSN = ":memory:" },
			wantErr: nil,
		},
		{
			name:    "relative api url",
			mutate:  func(c *ClientConfig) { c.Adapter.HTTPAddress = "api.serble.net" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero timeout",
			mutate:  func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "origin without scheme",
			mutate:  func(c *ClientConfig) { c.Passkey.Origin = "serble.net" },
			wantErr: ErrInvalidPasskeyConfigs,
		},
		{
			name:    "origin outside rp id",
			mutate:  func(c *ClientConfig) { c.Passkey.Origin = "https://evil.example" },
			wantErr: ErrInvalidPasskeyConfigs,
		},
		{
			name:    "subdomain origin",
			mutate:  func(c *ClientConfig) { c.Passkey.Origin = "https://www.serble.net" },
			wantErr: nil,
		},
		{
			name:    "zero interval",
			mutate:  func(c *ClientConfig) { c.Workers.SessionCheckInterval = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
		{
			name:    "unknown kdf",
			mutate:  func(c *ClientConfig) { c.App.VaultKDF = "md5" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "argon2id without salt",
			mutate:  func(c *ClientConfig) { c.App.VaultKDF = "argon2id" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name: "argon2id with salt",
			mutate: func(c *ClientConfig) {
				c.App.VaultKDF = "argon2id"
				c.App.VaultKDFSalt = "00112233445566778899aabbccddeeff"
			},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validClientConfig()
			tt.mutate(c)

			err := c.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewClientConfig_MapsEveryField(t *testing.T) {
	c := NewClientConfig(defaultConfig())

	assert.Equal(t, DefaultAdapterAddress, c.Adapter.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, c.Adapter.RequestTimeout)
	assert.Equal(t, DefaultPasskeyPath, c.Adapter.PasskeyPath)
	assert.Equal(t, DefaultDSN, c.Storage.DB.DSN)
	assert.Equal(t, DefaultPasskeyRPID, c.Passkey.RPID)
	assert.Equal(t, 5*time.Minute, c.Workers.SessionCheckInterval)
	assert.Equal(t, DefaultVaultKDF, c.App.VaultKDF)
}
