// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client runs the interactive Serble keeper.
//
// [App] restores the stored session before the first frame so a valid token
// lands on the home page, keeps the session watcher running for the lifetime
// of the UI and stops it on exit.
package client
