// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The client-crawler Authors

package migrations

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(".*").WillReturnError(errors.New("boom"))

	err = Migrate(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db)
	require.Error(t, err)
	assert.ErrorIs(t, err, errNilDB)
}

func TestMigrate_SQLiteInMemory(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db))

	// повторный запуск не должен ничего ломать
	require.NoError(t, Migrate(db))

	_, err = db.Exec(`INSERT INTO client_state (key, value) VALUES ('token', 'abc')`)
	require.NoError(t, err)

	var value string
	require.NoError(t, db.QueryRow(`SELECT value FROM client_state WHERE key = 'token'`).Scan(&value))
	assert.Equal(t, "abc", value)
}
