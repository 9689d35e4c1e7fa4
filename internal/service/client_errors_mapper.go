// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-serble-keeper/internal/logger"
	"github.com/MKhiriev/go-serble-keeper/models"
)

// invalidInput tags a request rejected before any I/O took place.
func invalidInput(flag models.ErrorFlag, err error) error {
	return &models.Error{Kind: models.KindInvalidInput, Flag: flag, Err: err}
}

// noSession is returned by operations that need a signed-in user.
func noSession() error {
	return invalidInput(models.FlagUnauthorized, ErrNoSession)
}

// decryptionFailed maps a cipher error onto the taxonomy. A wrong password
// and a tampered blob land here alike.
func decryptionFailed(err error) error {
	return &models.Error{Kind: models.KindDecryptionFailed, Flag: models.FlagDecryptionFailed, Err: err}
}

// fail logs err under op and converts it into a failed result. Cancellation
// is expected user behaviour and is logged at debug level only.
func fail[T any](log *logger.Logger, op string, err error) models.Result[T] {
	res := models.Fail[T](err)
	if res.Cancelled() {
		log.Debug().Str("func", op).Msg("operation cancelled")
		return res
	}

	log.Err(err).
		Str("func", op).
		Str("flag", string(res.Flag)).
		Int("status", res.Status).
		Msg("operation failed")
	return res
}
