package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
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

func writeTestJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// бэкенд, который после expired.Store(true) отвечает 401 на всё под /api
func TestClientServices_ExpiredCredentialStopsBackgroundPolling(t *testing.T) {
	var expired atomic.Bool
	var statusHits, conversationHits atomic.Int64

	reject := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if expired.Load() {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}

	r := chi.NewRouter()
	r.Post("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeTestJSON(w, models.AuthResponse{AccessToken: "tokA", User: &models.User{ID: 1}})
	})
	r.Group(func(r chi.Router) {
		r.Use(reject)
		r.Get("/api/search-status", func(w http.ResponseWriter, r *http.Request) {
			writeTestJSON(w, models.SearchStatusResponse{
				Searches: []models.SearchTask{task("a", models.SearchInProgress, 40)},
			})
		})
		r.Get("/api/jobs/{id}/conversation", func(w http.ResponseWriter, r *http.Request) {
			writeTestJSON(w, models.ConversationResponse{Conversation: models.Conversation{ID: 9}})
		})
	})

	counting := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		switch req.URL.Path {
		case "/api/search-status":
			statusHits.Add(1)
		case "/api/jobs/4/conversation":
			conversationHits.Add(1)
		}
		r.ServeHTTP(w, req)
	})
	srv := httptest.NewServer(counting)
	defer srv.Close()

	serverAdapter, err := adapter.NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    srv.URL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	services := NewClientServices(store.NewMemoryTokenStore(), serverAdapter, config.ClientWorkers{
		SearchPollInterval:       10 * time.Millisecond,
		ConversationPollInterval: 10 * time.Millisecond,
	}, logger.Nop())
	t.Cleanup(services.Workers.StopAll)

	var redirects atomic.Int64
	serverAdapter.OnUnauthorized(func() { redirects.Add(1) })

	ctx := context.Background()
	require.NoError(t, services.Auth.Login(ctx, models.Credentials{Email: "a@b.com", Password: "secret1"}))
	require.NoError(t, services.Search.Refresh(ctx))
	services.Watcher.Watch(ctx, 4, func(models.Conversation, error) {})
	require.True(t, services.Search.Running())

	statusBefore, conversationBefore := statusHits.Load(), conversationHits.Load()
	expired.Store(true)

	require.Eventually(t, func() bool {
		return !services.Auth.IsAuthenticated() && !services.Search.Running()
	}, time.Second, 5*time.Millisecond)
	time.Sleep(100 * time.Millisecond)

	// не больше одного запроса каждого цикла после истечения токена
	assert.LessOrEqual(t, statusHits.Load()-statusBefore, int64(1))
	assert.LessOrEqual(t, conversationHits.Load()-conversationBefore, int64(1))
	assert.Equal(t, int64(1), redirects.Load())
}

func TestClientServices_NextUserDoesNotInheritSearchSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockAdapter.EXPECT().SetCredentialSource(gomock.Any())

	services := NewClientServices(store.NewMemoryTokenStore(), mockAdapter, config.ClientWorkers{
		SearchPollInterval: time.Hour,
	}, logger.Nop())
	t.Cleanup(services.Workers.StopAll)

	var imported atomic.Int64
	services.Search.OnJobsImported(func() { imported.Add(1) })

	gomock.InOrder(
		mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(models.AuthResponse{AccessToken: "tokA", User: &models.User{ID: 1}}, nil),
		mockAdapter.EXPECT().SearchStatus(gomock.Any()).
			Return([]models.SearchTask{task("a", models.SearchInProgress, 40)}, nil),
		mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(models.AuthResponse{AccessToken: "tokB", User: &models.User{ID: 2}}, nil),
		mockAdapter.EXPECT().SearchStatus(gomock.Any()).
			Return([]models.SearchTask{task("b", models.SearchCompleted, 100)}, nil),
	)

	ctx := context.Background()
	require.NoError(t, services.Auth.Login(ctx, models.Credentials{Email: "a@b.com", Password: "secret1"}))
	require.NoError(t, services.Search.Refresh(ctx))
	require.True(t, services.Search.Running())

	services.Auth.Logout(ctx)
	assert.False(t, services.Search.Running())
	assert.Empty(t, services.Search.Tasks())

	require.NoError(t, services.Auth.Login(ctx, models.Credentials{Email: "b@b.com", Password: "secret1"}))
	require.NoError(t, services.Search.Refresh(ctx))

	// завершённая задача второго пользователя - это первый снимок, не импорт
	assert.Zero(t, imported.Load())
	assert.Len(t, services.Search.Tasks(), 1)
}
