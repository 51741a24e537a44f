package store

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchellbreust/client-crawler/internal/config"
	"github.com/mitchellbreust/client-crawler/internal/logger"
)

func newMockRepo(t *testing.T) (*keyValueRepository, sqlmock.Sqlmock, time.Time) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	repo := &keyValueRepository{
		DB:  &DB{DB: conn, logger: logger.Nop()},
		now: func() time.Time { return now },
	}
	return repo, mock, now
}

func TestKeyValueRepository_Get(t *testing.T) {
	selectQuery := regexp.QuoteMeta("SELECT value FROM client_state WHERE key = ?")

	tests := []struct {
		name      string
		setup     func(mock sqlmock.Sqlmock)
		wantValue string
		wantErr   error
	}{
		{
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectQuery).
					WithArgs("token").
					WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("tok1"))
			},
			wantValue: "tok1",
		},
		{
			name: "no rows",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectQuery).
					WithArgs("token").
					WillReturnRows(sqlmock.NewRows([]string{"value"}))
			},
			wantErr: ErrKeyNotFound,
		},
		{
			name: "query error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectQuery).
					WithArgs("token").
					WillReturnError(errors.New("disk I/O error"))
			},
			wantErr: ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, _ := newMockRepo(t)
			tt.setup(mock)

			value, err := repo.Get(context.Background(), "token")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantValue, value)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestKeyValueRepository_Put(t *testing.T) {
	repo, mock, now := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO client_state (key,value,updated_at) VALUES (?,?,?) ON CONFLICT(key)")).
		WithArgs("token", "tok1", now).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Put(context.Background(), "token", "tok1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestKeyValueRepository_PutError(t *testing.T) {
	repo, mock, _ := newMockRepo(t)

	mock.ExpectExec("INSERT INTO client_state").WillReturnError(errors.New("readonly database"))

	err := repo.Put(context.Background(), "token", "tok1")
	require.ErrorIs(t, err, ErrExecutingStatement)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestKeyValueRepository_Delete(t *testing.T) {
	repo, mock, _ := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM client_state WHERE key = ?")).
		WithArgs("token").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "token"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenStore_SQLiteMock(t *testing.T) {
	repo, mock, _ := newMockRepo(t)
	ts := NewTokenStore(repo)
	ctx := context.Background()

	// пустое хранилище
	mock.ExpectQuery("SELECT value FROM client_state").
		WithArgs("token").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))
	_, err := ts.Load(ctx)
	require.ErrorIs(t, err, ErrTokenNotFound)

	// пустой токен не пишется в базу
	require.ErrorIs(t, ts.Save(ctx, "  "), ErrEmptyToken)

	mock.ExpectExec("INSERT INTO client_state").
		WithArgs("token", "tok1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	require.NoError(t, ts.Save(ctx, "tok1"))

	mock.ExpectExec("DELETE FROM client_state").
		WithArgs("token").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, ts.Clear(ctx))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClientStorages_SQLiteFile(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "nested", "client.db")

	storages, err := NewClientStorages(ctx, config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)

	_, err = storages.TokenStore.Load(ctx)
	require.ErrorIs(t, err, ErrTokenNotFound)

	require.NoError(t, storages.TokenStore.Save(ctx, "tok1"))
	require.NoError(t, storages.TokenStore.Save(ctx, "tok2"))
	require.NoError(t, storages.Close())

	// credential survives a restart
	reopened, err := NewClientStorages(ctx, config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	defer reopened.Close()

	token, err := reopened.TokenStore.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok2", token)

	require.NoError(t, reopened.TokenStore.Clear(ctx))
	require.NoError(t, reopened.TokenStore.Clear(ctx))
	_, err = reopened.TokenStore.Load(ctx)
	require.ErrorIs(t, err, ErrTokenNotFound)
}
