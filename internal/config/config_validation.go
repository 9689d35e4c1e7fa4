// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"
)

// validate checks that the client view of the merged configuration
// satisfies every startup invariant. The first violated group is reported.
func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if !isAbsoluteHTTPURL(cfg.Adapter.HTTPAddress) || cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: address %q, timeout %s", ErrInvalidAdapterConfigs, cfg.Adapter.HTTPAddress, cfg.Adapter.RequestTimeout)
	}

	if err := cfg.Passkey.validate(); err != nil {
		return err
	}

	if cfg.Workers.SessionCheckInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	switch strings.ToLower(cfg.App.VaultKDF) {
	case "", "sha256":
	case "argon2id":
		salt, err := hex.DecodeString(cfg.App.VaultKDFSalt)
		if err != nil || len(salt) < 16 {
			return fmt.Errorf("%w: argon2id needs a hex salt of at least 16 bytes", ErrInvalidAppConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown vault kdf %q", ErrInvalidAppConfigs, cfg.App.VaultKDF)
	}

	return nil
}

func (p ClientPasskey) validate() error {
	u, err := url.Parse(p.Origin)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: origin %q", ErrInvalidPasskeyConfigs, p.Origin)
	}
	if p.RPID == "" {
		return fmt.Errorf("%w: empty rp id", ErrInvalidPasskeyConfigs)
	}

	host := u.Hostname()
	if host != p.RPID && !strings.HasSuffix(host, "."+p.RPID) {
		return fmt.Errorf("%w: origin %q is not within rp id %q", ErrInvalidPasskeyConfigs, p.Origin, p.RPID)
	}
	return nil
}

func isAbsoluteHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
