// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The client-crawler Authors

package tui

import (
	"fmt"
	"strings"

	"github.com/mitchellbreust/client-crawler/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Client Crawler: job outreach from the terminal\n\n")
	for _, f := range info.Fields() {
		fmt.Fprintf(&b, "%-8s │ %s\n", f[0], f[1])
	}

	return renderPage("ABOUT", strings.TrimRight(b.String(), "\n"), "esc: back")
}
