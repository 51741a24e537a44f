package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mitchellbreust/client-crawler/internal/adapter"
	"github.com/mitchellbreust/client-crawler/internal/config"
	"github.com/mitchellbreust/client-crawler/internal/logger"
	"github.com/mitchellbreust/client-crawler/internal/mock"
	"github.com/mitchellbreust/client-crawler/internal/store"
	"github.com/mitchellbreust/client-crawler/models"
)

// newTestAuthSession: хелпер: сессия поверх мок-адаптера и in-memory хранилища токена
func newTestAuthSession(t *testing.T, ctrl *gomock.Controller) (*authSession, *mock.MockServerAdapter, store.TokenStore) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	tokens := store.NewMemoryTokenStore()

	mockAdapter.EXPECT().SetCredentialSource(gomock.Any()).Times(1)
	s := NewAuthSession(tokens, mockAdapter, logger.Nop()).(*authSession)
	return s, mockAdapter, tokens
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
		"exp": exp.Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func storedToken(t *testing.T, tokens store.TokenStore) string {
	t.Helper()
	token, err := tokens.Load(context.Background())
	if errors.Is(err, store.ErrTokenNotFound) {
		return ""
	}
	require.NoError(t, err)
	return token
}

// ── NewAuthSession ──────────────────────────────────────────────────────────

func TestNewAuthSession_StartsLoading(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, _, _ := newTestAuthSession(t, ctrl)

	snap := s.Snapshot()
	assert.True(t, snap.Loading)
	assert.False(t, s.IsAuthenticated())
}

// ── Init ────────────────────────────────────────────────────────────────────

func TestAuthSession_Init_NoStoredToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, _, _ := newTestAuthSession(t, ctrl)

	// без токена сетевых вызовов быть не должно
	require.NoError(t, s.Init(context.Background()))

	snap := s.Snapshot()
	assert.False(t, snap.Loading)
	assert.False(t, snap.IsAuthenticated())
	assert.Nil(t, snap.User)
}

func TestAuthSession_Init_RestoresUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, mockAdapter, tokens := newTestAuthSession(t, ctrl)
	ctx := context.Background()

	require.NoError(t, tokens.Save(ctx, "tok1"))
	mockAdapter.EXPECT().CurrentUser(gomock.Any()).
		DoAndReturn(func(context.Context) (models.User, error) {
			// во время запроса сессия уже знает токен и всё ещё загружается
			snap := s.Snapshot()
			assert.Equal(t, "tok1", snap.Token)
			assert.True(t, snap.Loading)
			return models.User{ID: 7, Email: "a@b.com"}, nil
		})

	require.NoError(t, s.Init(ctx))

	snap := s.Snapshot()
	assert.False(t, snap.Loading)
	assert.Equal(t, "tok1", snap.Token)
	require.NotNil(t, snap.User)
	assert.Equal(t, "a@b.com", snap.User.Email)
}

func TestAuthSession_Init_UserFetchFailureLogsOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, mockAdapter, tokens := newTestAuthSession(t, ctrl)
	ctx := context.Background()

	require.NoError(t, tokens.Save(ctx, "tok1"))
	mockAdapter.EXPECT().CurrentUser(gomock.Any()).
		Return(models.User{}, adapter.NewHTTPError(http.StatusInternalServerError, nil))

	require.NoError(t, s.Init(ctx))

	snap := s.Snapshot()
	assert.False(t, snap.Loading)
	assert.False(t, snap.IsAuthenticated())
	assert.Empty(t, storedToken(t, tokens))
}

func TestAuthSession_Init_ExpiredTokenSkipsNetwork(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, _, tokens := newTestAuthSession(t, ctrl)
	ctx := context.Background()

	require.NoError(t, tokens.Save(ctx, signedToken(t, time.Now().Add(-time.Hour))))

	// CurrentUser не ожидается: gomock упадёт при неожиданном вызове
	require.NoError(t, s.Init(ctx))

	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, storedToken(t, tokens))
}

func TestAuthSession_Init_UnexpiredJWTIsVerified(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, mockAdapter, tokens := newTestAuthSession(t, ctrl)
	ctx := context.Background()

	token := signedToken(t, time.Now().Add(time.Hour))
	require.NoError(t, tokens.Save(ctx, token))
	mockAdapter.EXPECT().CurrentUser(gomock.Any()).Return(models.User{ID: 1, Email: "a@b.com"}, nil)

	require.NoError(t, s.Init(ctx))
	assert.Equal(t, token, s.Token())
}

// ── Login / Register ────────────────────────────────────────────────────────

func TestAuthSession_Login_PersistsTokenAndUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, mockAdapter, tokens := newTestAuthSession(t, ctrl)
	ctx := context.Background()

	creds := models.Credentials{Email: "a@b.com", Password: "secret1"}
	mockAdapter.EXPECT().Login(gomock.Any(), creds).Return(models.AuthResponse{
		AccessToken: "tok1",
		User:        &models.User{ID: 1, Email: "a@b.com"},
	}, nil)

	require.NoError(t, s.Login(ctx, creds))

	assert.Equal(t, "tok1", storedToken(t, tokens))
	snap := s.Snapshot()
	assert.True(t, snap.IsAuthenticated())
	assert.False(t, snap.Loading)
	require.NotNil(t, snap.User)
	assert.Equal(t, "a@b.com", snap.User.Email)
}

func TestAuthSession_Login_FetchesUserWhenMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, mockAdapter, _ := newTestAuthSession(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.AuthResponse{AccessToken: "tok1"}, nil),
		mockAdapter.EXPECT().CurrentUser(gomock.Any()).Return(models.User{ID: 3, Email: "c@d.com"}, nil),
	)

	require.NoError(t, s.Login(ctx, models.Credentials{Email: "c@d.com", Password: "secret1"}))

	snap := s.Snapshot()
	assert.False(t, snap.Loading)
	require.NotNil(t, snap.User)
	assert.Equal(t, int64(3), snap.User.ID)
}

func TestAuthSession_Login_NoAccessToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, mockAdapter, tokens := newTestAuthSession(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.AuthResponse{User: &models.User{ID: 1}}, nil)

	err := s.Login(ctx, models.Credentials{Email: "a@b.com", Password: "secret1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoTokenReceived)
	assert.Equal(t, MsgNoTokenReceived, UserMessage(err))

	// ничего не сохранено
	assert.Empty(t, storedToken(t, tokens))
	assert.False(t, s.IsAuthenticated())
	assert.Equal(t, MsgNoTokenReceived, s.Snapshot().Error)
}

func TestAuthSession_Login_BackendMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, mockAdapter, tokens := newTestAuthSession(t, ctrl)
	ctx := context.Background()

	require.NoError(t, tokens.Save(ctx, "old"))
	mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.AuthResponse{}, adapter.NewHTTPError(http.StatusUnauthorized, []byte(`{"message":"Invalid email or password"}`)))

	err := s.Login(ctx, models.Credentials{Email: "a@b.com", Password: "wrong"})

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "Invalid email or password", authErr.Message)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	// сохранённый токен не тронут
	assert.Equal(t, "old", storedToken(t, tokens))
}

func TestAuthSession_Login_GenericFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, mockAdapter, _ := newTestAuthSession(t, ctrl)

	mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.AuthResponse{}, adapter.NewHTTPError(http.StatusInternalServerError, []byte(`{"message":"Traceback ..."}`)))

	err := s.Login(context.Background(), models.Credentials{Email: "a@b.com", Password: "secret1"})
	assert.Equal(t, MsgLoginFailed, UserMessage(err))
}

func TestAuthSession_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, mockAdapter, tokens := newTestAuthSession(t, ctrl)

	reg := models.RegistrationForm{
		Email:           "new@b.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}.Registration()
	mockAdapter.EXPECT().Register(gomock.Any(), reg).Return(models.AuthResponse{
		AccessToken: "tok-reg",
		User:        &models.User{ID: 9, Email: "new@b.com"},
	}, nil)

	require.NoError(t, s.Register(context.Background(), reg))
	assert.Equal(t, "tok-reg", storedToken(t, tokens))
}

func TestAuthSession_Register_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, mockAdapter, tokens := newTestAuthSession(t, ctrl)

	mockAdapter.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(models.AuthResponse{}, adapter.NewHTTPError(http.StatusConflict, []byte(`{"message":"Email already registered"}`)))

	err := s.Register(context.Background(), models.Registration{Email: "a@b.com", Password: "secret1"})
	assert.Equal(t, "Email already registered", UserMessage(err))
	assert.Empty(t, storedToken(t, tokens))
}

func TestAuthSession_LoginLogoutLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, mockAdapter, tokens := newTestAuthSession(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(models.AuthResponse{AccessToken: "tok1", User: &models.User{ID: 1}}, nil),
		mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(models.AuthResponse{AccessToken: "tok2", User: &models.User{ID: 1}}, nil),
	)

	require.NoError(t, s.Login(ctx, models.Credentials{Email: "a@b.com", Password: "secret1"}))
	assert.Equal(t, "tok1", storedToken(t, tokens))

	s.Logout(ctx)
	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.Snapshot().User)
	assert.Empty(t, storedToken(t, tokens))

	// повторный logout ничего не ломает
	s.Logout(ctx)

	require.NoError(t, s.Login(ctx, models.Credentials{Email: "a@b.com", Password: "secret1"}))
	assert.Equal(t, "tok2", storedToken(t, tokens))
	assert.Equal(t, "tok2", s.Token())
}

// ── Invalidate ──────────────────────────────────────────────────────────────

func TestAuthSession_Invalidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, mockAdapter, tokens := newTestAuthSession(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.AuthResponse{AccessToken: "tok2", User: &models.User{ID: 1}}, nil)
	require.NoError(t, s.Login(ctx, models.Credentials{Email: "a@b.com", Password: "secret1"}))

	// устаревший токен не сбрасывает новую сессию
	s.Invalidate("tok1")
	assert.Equal(t, "tok2", s.Token())
	assert.Equal(t, "tok2", storedToken(t, tokens))

	s.Invalidate("")
	assert.True(t, s.IsAuthenticated())

	s.Invalidate("tok2")
	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, storedToken(t, tokens))
}

// ── Subscribe ───────────────────────────────────────────────────────────────

func TestAuthSession_Subscribe(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, mockAdapter, _ := newTestAuthSession(t, ctrl)
	ctx := context.Background()

	var mu sync.Mutex
	var seen []models.Session
	unsubscribe := s.Subscribe(func(st models.Session) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, st)
	})

	mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.AuthResponse{AccessToken: "tok1", User: &models.User{ID: 1}}, nil)
	require.NoError(t, s.Login(ctx, models.Credentials{Email: "a@b.com", Password: "secret1"}))

	unsubscribe()
	s.Logout(ctx)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, seen, 1)
	assert.Equal(t, "tok1", seen[0].Token)
}

// ── UpdateSettings ──────────────────────────────────────────────────────────

func TestAuthSession_UpdateSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("not authenticated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s, _, _ := newTestAuthSession(t, ctrl)

		err := s.UpdateSettings(ctx, models.Settings{PhoneNumber: "+61400000000"})
		assert.ErrorIs(t, err, ErrNotAuthenticated)
	})

	t.Run("invalid provider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s, mockAdapter, _ := newTestAuthSession(t, ctrl)
		mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(models.AuthResponse{AccessToken: "tok1", User: &models.User{ID: 1}}, nil)
		require.NoError(t, s.Login(ctx, models.Credentials{Email: "a@b.com", Password: "secret1"}))

		err := s.UpdateSettings(ctx, models.Settings{MessagingProvider: "pigeon"})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("success replaces user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s, mockAdapter, _ := newTestAuthSession(t, ctrl)
		mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(models.AuthResponse{AccessToken: "tok1", User: &models.User{ID: 1}}, nil)
		require.NoError(t, s.Login(ctx, models.Credentials{Email: "a@b.com", Password: "secret1"}))

		settings := models.Settings{MessagingProvider: models.ProviderHTTPSSMS, HTTPSSMSAPIKey: "key"}
		mockAdapter.EXPECT().UpdateUser(gomock.Any(), settings).
			Return(models.User{ID: 1, Email: "a@b.com", MessagingProvider: models.ProviderHTTPSSMS}, nil)

		require.NoError(t, s.UpdateSettings(ctx, settings))
		require.NotNil(t, s.Snapshot().User)
		assert.Equal(t, models.ProviderHTTPSSMS, s.Snapshot().User.MessagingProvider)
	})

	t.Run("backend failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s, mockAdapter, _ := newTestAuthSession(t, ctrl)
		mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(models.AuthResponse{AccessToken: "tok1", User: &models.User{ID: 1}}, nil)
		require.NoError(t, s.Login(ctx, models.Credentials{Email: "a@b.com", Password: "secret1"}))

		mockAdapter.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).
			Return(models.User{}, adapter.NewHTTPError(http.StatusBadGateway, nil))

		err := s.UpdateSettings(ctx, models.Settings{PhoneNumber: "+61400000000"})
		assert.Equal(t, MsgUpdateSettingsFailed, UserMessage(err))
	})
}

// ── сессия и настоящий HTTP-адаптер ─────────────────────────────────────────

func TestAuthSession_WithHTTPAdapter_401ClearsStoredToken(t *testing.T) {
	var sawAuth []string
	var mu sync.Mutex

	r := chi.NewRouter()
	r.Post("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds models.Credentials
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "a@b.com", creds.Email)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.AuthResponse{
			AccessToken: "tok1",
			User:        &models.User{ID: 1, Email: "a@b.com"},
		})
	})
	r.Get("/api/jobs", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		sawAuth = append(sawAuth, r.Header.Get("Authorization"))
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"msg":"Token has expired"}`))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	serverAdapter, err := adapter.NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    srv.URL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	tokens := store.NewMemoryTokenStore()
	session := NewAuthSession(tokens, serverAdapter, logger.Nop())

	redirects := 0
	serverAdapter.OnUnauthorized(func() { redirects++ })

	ctx := context.Background()
	require.NoError(t, session.Login(ctx, models.Credentials{Email: "a@b.com", Password: "secret1"}))
	assert.Equal(t, "tok1", storedToken(t, tokens))

	_, err = serverAdapter.ListJobs(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)

	assert.Empty(t, storedToken(t, tokens))
	assert.False(t, session.IsAuthenticated())
	assert.Equal(t, 1, redirects)

	mu.Lock()
	defer mu.Unlock()
	// один запрос, без повторной попытки
	assert.Equal(t, []string{"Bearer tok1"}, sawAuth)
}
