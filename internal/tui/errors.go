// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The client-crawler Authors

package tui

import (
	"errors"

	"github.com/mitchellbreust/client-crawler/internal/service"
)

// ErrUserQuit is returned by Run when the user leaves with ctrl+c.
var ErrUserQuit = errors.New("user quit")

// errorText is the line shown to the user for err.
func errorText(err error) string {
	return service.UserMessage(err)
}
