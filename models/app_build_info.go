// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The client-crawler Authors

package models

import "strings"

const unknownBuildValue = "N/A"

// AppBuildInfo is the build metadata injected with -ldflags. It is printed
// at start-up and shown on the About page.
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewAppBuildInfo trims the values and replaces empty ones with "N/A".
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		Version: orUnknown(version),
		Date:    orUnknown(date),
		Commit:  orUnknown(commit),
	}
}

// Fields returns label and value pairs in display order.
func (a AppBuildInfo) Fields() [][2]string {
	return [][2]string{
		{"Version", orUnknown(a.Version)},
		{"Date", orUnknown(a.Date)},
		{"Commit", orUnknown(a.Commit)},
	}
}

func orUnknown(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return unknownBuildValue
	}
	return v
}
