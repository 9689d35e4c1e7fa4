package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "no flags",
			args: nil,
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, &StructuredConfig{}, cfg)
			},
		},
		{
			name: "all flags",
			args: []string{
				"-a", "http://localhost:5000/api/v1",
				"-d", "keeper.db",
				"-c", "cfg.json",
				"-request-timeout", "20s",
				"-passkey-path", "/pk",
				"-origin", "http://localhost:5000",
				"-rp-id", "localhost",
				"-session-check-interval", "1m",
				"-vault-kdf", "argon2id",
				"-vault-kdf-salt", "ff",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "http://localhost:5000/api/v1", cfg.Adapter.Address)
				assert.Equal(t, "keeper.db", cfg.Storage.DB.DSN)
				assert.Equal(t, "cfg.json", cfg.JSONFilePath)
				assert.Equal(t, 20*time.Second, cfg.Adapter.RequestTimeout)
				assert.Equal(t, "/pk", cfg.Adapter.PasskeyPath)
				assert.Equal(t, "http://localhost:5000", cfg.Passkey.Origin)
				assert.Equal(t, "localhost", cfg.Passkey.RPID)
				assert.Equal(t, time.Minute, cfg.Workers.SessionCheckInterval)
				assert.Equal(t, "argon2id", cfg.App.VaultKDF)
				assert.Equal(t, "ff", cfg.App.VaultKDFSalt)
			},
		},
		{
			name: "config alias",
			args: []string{"-config", "alias.json"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "alias.json", cfg.JSONFilePath)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset flag.CommandLine for each test
			resetFlags(t, tt.args...)

			cfg := ParseFlags()
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}
