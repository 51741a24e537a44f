// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The client-crawler Authors

// Package client implements the interactive client application runtime.
//
// It ties the terminal UI to the client services and makes sure background
// polling stops and local storage is closed when the UI exits.
package client
