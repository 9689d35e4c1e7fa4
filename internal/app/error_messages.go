// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-serble-keeper client.
//
// The Msg* constants are the literal response bodies the Serble API uses to
// tell apart failures that share a status code. The adapter compares rejected
// bodies against them to pick an error flag, so the wording must match the
// server byte for byte.
package app

const (
	// MsgUsernameTaken is returned by PATCH /account when the requested
	// username belongs to another account.
	MsgUsernameTaken = "Username is already taken"

	// MsgInvalidEmail is returned by PATCH /account when the new email
	// address fails server-side validation.
	MsgInvalidEmail = "Invalid email"

	// MsgFieldDoesNotExist is returned by PATCH /account for an edit naming
	// an unknown field.
	MsgFieldDoesNotExist = "Field doesn't exist"

	// MsgNotCustomer is returned by GET /payments/portal for accounts that
	// never started a subscription.
	MsgNotCustomer = "User is not a customer."
)
