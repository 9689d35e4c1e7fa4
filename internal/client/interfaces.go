// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client is a runnable client application.
type Client interface {
	// Run blocks until the user leaves the UI. Quitting is not an error.
	Run() error
}
