// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The client-crawler Authors

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mitchellbreust/client-crawler/internal/logger"
)

type keyValueRepository struct {
	*DB
	now func() time.Time
}

// NewKeyValueRepository returns a [KeyValueRepository] backed by the
// client_state table.
func NewKeyValueRepository(db *DB) KeyValueRepository {
	return &keyValueRepository{DB: db, now: time.Now}
}

func (r *keyValueRepository) Get(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetValueQuery(key)
	if err != nil {
		log.Err(err).Str("func", "keyValueRepository.Get").Msg("error building query")
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = r.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "keyValueRepository.Get").Str("key", key).Msg("error reading value")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (r *keyValueRepository) Put(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildPutValueQuery(key, value, r.now().UTC())
	if err != nil {
		log.Err(err).Str("func", "keyValueRepository.Put").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "keyValueRepository.Put").Str("key", key).Msg("error writing value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *keyValueRepository) Delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteValueQuery(key)
	if err != nil {
		log.Err(err).Str("func", "keyValueRepository.Delete").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "keyValueRepository.Delete").Str("key", key).Msg("error deleting value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

type tokenStore struct {
	repo KeyValueRepository
}

// NewTokenStore returns a [TokenStore] persisting the credential through repo.
func NewTokenStore(repo KeyValueRepository) TokenStore {
	return &tokenStore{repo: repo}
}

func (s *tokenStore) Load(ctx context.Context) (string, error) {
	token, err := s.repo.Get(ctx, tokenKey)
	if errors.Is(err, ErrKeyNotFound) {
		return "", ErrTokenNotFound
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(token) == "" {
		return "", ErrTokenNotFound
	}

	return token, nil
}

func (s *tokenStore) Save(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return ErrEmptyToken
	}

	return s.repo.Put(ctx, tokenKey, token)
}

func (s *tokenStore) Clear(ctx context.Context) error {
	return s.repo.Delete(ctx, tokenKey)
}
