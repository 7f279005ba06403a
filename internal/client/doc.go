// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It restores the stored session, guards it against inactivity, starts the
// background workers and runs the notes browser until the user quits or the
// session ends.
package client
