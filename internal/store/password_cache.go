package store

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-serble-keeper/internal/logger"
)

// PasswordCacheKey is the storage key of the serialized cache.
const PasswordCacheKey = "vault-passwords"

// PasswordCache remembers vault note passwords on this device.
//
// The stored form is base64(JSON{noteId: password}) with every '=' replaced
// by '~'. That is obfuscation only: anyone who can read the local store can
// read every cached password.
type PasswordCache struct {
	kv KeyValueStorage
}

func NewPasswordCache(kv KeyValueStorage) *PasswordCache {
	return &PasswordCache{kv: kv}
}

// Load returns the cached map. It never fails: a missing, corrupted or
// non-JSON entry yields an empty map.
func (c *PasswordCache) Load(ctx context.Context) map[string]string {
	raw, err := c.kv.Get(ctx, PasswordCacheKey)
	if err != nil || raw == "" {
		return map[string]string{}
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(raw, "~", "="))
	if err != nil {
		logger.FromContext(ctx).Warn().Str("func", "PasswordCache.Load").Msg("password cache is not valid base64, ignoring")
		return map[string]string{}
	}

	passwords := map[string]string{}
	if err := json.Unmarshal(decoded, &passwords); err != nil || passwords == nil {
		logger.FromContext(ctx).Warn().Str("func", "PasswordCache.Load").Msg("password cache is not a JSON object, ignoring")
		return map[string]string{}
	}
	return passwords
}

// Save overwrites the cache with passwords.
func (c *PasswordCache) Save(ctx context.Context, passwords map[string]string) error {
	if passwords == nil {
		passwords = map[string]string{}
	}
	payload, err := json.Marshal(passwords)
	if err != nil {
		return fmt.Errorf("encode password cache: %w", err)
	}

	encoded := strings.ReplaceAll(base64.StdEncoding.EncodeToString(payload), "=", "~")
	if err := c.kv.Set(ctx, PasswordCacheKey, encoded); err != nil {
		return fmt.Errorf("save password cache: %w", err)
	}
	return nil
}

// Remember stores password for noteID.
func (c *PasswordCache) Remember(ctx context.Context, noteID, password string) error {
	passwords := c.Load(ctx)
	passwords[noteID] = password
	return c.Save(ctx, passwords)
}

// Forget drops noteID. Forgetting an unknown note does not write.
func (c *PasswordCache) Forget(ctx context.Context, noteID string) error {
	passwords := c.Load(ctx)
	if _, ok := passwords[noteID]; !ok {
		return nil
	}
	delete(passwords, noteID)
	return c.Save(ctx, passwords)
}

// Lookup returns the cached password for noteID.
func (c *PasswordCache) Lookup(ctx context.Context, noteID string) (string, bool) {
	pw, ok := c.Load(ctx)[noteID]
	return pw, ok
}
