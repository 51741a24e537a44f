// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The client-crawler Authors

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	clientStateTable = "client_state"

	// tokenKey is the key the credential is stored under.
	tokenKey = "token"
)

// sqlite uses "?" placeholders.
var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildGetValueQuery(key string) (string, []any, error) {
	return sqlite.
		Select("value").
		From(clientStateTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildPutValueQuery(key, value string, at time.Time) (string, []any, error) {
	return sqlite.
		Insert(clientStateTable).
		Columns("key", "value", "updated_at").
		Values(key, value, at).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildDeleteValueQuery(key string) (string, []any, error) {
	return sqlite.
		Delete(clientStateTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}
