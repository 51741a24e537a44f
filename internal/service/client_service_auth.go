package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/mitchellbreust/client-crawler/internal/adapter"
	"github.com/mitchellbreust/client-crawler/internal/logger"
	"github.com/mitchellbreust/client-crawler/internal/store"
	"github.com/mitchellbreust/client-crawler/internal/utils"
	"github.com/mitchellbreust/client-crawler/models"
)

type authSession struct {
	adapter adapter.ServerAdapter
	tokens  store.TokenStore
	now     func() time.Time
	logger  *logger.Logger

	// authMu serialises the token store with in-memory credential changes.
	authMu sync.Mutex

	mu        sync.RWMutex
	state     models.Session
	listeners map[int]func(models.Session)
	nextID    int
}

// NewAuthSession creates the session and installs it as the credential
// source of serverAdapter. The session starts in the loading state until
// Init resolves it.
func NewAuthSession(tokens store.TokenStore, serverAdapter adapter.ServerAdapter, logger *logger.Logger) AuthSession {
	s := &authSession{
		adapter:   serverAdapter,
		tokens:    tokens,
		now:       time.Now,
		logger:    logger,
		state:     models.Session{Loading: true},
		listeners: make(map[int]func(models.Session)),
	}
	serverAdapter.SetCredentialSource(s)
	return s
}

func (s *authSession) Init(ctx context.Context) error {
	token, err := s.tokens.Load(ctx)
	if errors.Is(err, store.ErrTokenNotFound) {
		s.update(func(st *models.Session) { *st = models.Session{} })
		return nil
	}
	if err != nil {
		s.logger.Err(err).Str("func", "authSession.Init").Msg("error loading stored token")
		s.update(func(st *models.Session) { *st = models.Session{} })
		return err
	}

	if utils.TokenExpired(token, s.now()) {
		s.logger.Info().Str("func", "authSession.Init").Msg("stored token expired, logging out")
		s.Logout(ctx)
		return nil
	}

	s.update(func(st *models.Session) {
		*st = models.Session{Token: token, Loading: true}
	})

	user, err := s.adapter.CurrentUser(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "authSession.Init").Msg("error fetching current user, logging out")
		s.Logout(ctx)
		return nil
	}

	s.update(func(st *models.Session) {
		// a 401 or an explicit logout may have raced with the fetch
		if st.Token != token {
			return
		}
		st.User = &user
		st.Loading = false
		st.Error = ""
	})
	return nil
}

func (s *authSession) Login(ctx context.Context, creds models.Credentials) error {
	resp, err := s.adapter.Login(ctx, creds)
	if err != nil {
		return s.fail(authFailure(MsgLoginFailed, err))
	}
	return s.establish(ctx, resp, "authSession.Login")
}

func (s *authSession) Register(ctx context.Context, reg models.Registration) error {
	resp, err := s.adapter.Register(ctx, reg)
	if err != nil {
		return s.fail(authFailure(MsgRegistrationFailed, err))
	}
	return s.establish(ctx, resp, "authSession.Register")
}

// establish persists the token of a successful login or register and makes
// it the current session.
func (s *authSession) establish(ctx context.Context, resp models.AuthResponse, fn string) error {
	token := strings.TrimSpace(resp.AccessToken)
	if token == "" {
		s.logger.Warn().Str("func", fn).Msg("auth response without access token")
		return s.fail(&AuthError{Message: MsgNoTokenReceived, Err: ErrNoTokenReceived})
	}

	user := resp.User
	if err := s.swapToken(ctx, token, user); err != nil {
		s.logger.Err(err).Str("func", fn).Msg("error persisting token")
		return s.fail(&AuthError{Message: MsgGeneric, Err: err})
	}

	if user == nil {
		fetched, err := s.adapter.CurrentUser(ctx)
		if err != nil {
			s.logger.Err(err).Str("func", fn).Msg("error fetching user after login")
			s.Logout(ctx)
			return s.fail(authFailure(MsgGeneric, err))
		}
		user = &fetched
		s.update(func(st *models.Session) {
			if st.Token != token {
				return
			}
			st.User = cloneUser(user)
			st.Loading = false
		})
	}

	s.logger.Info().Str("func", fn).Int64("user_id", user.ID).Msg("session established")
	return nil
}

// swapToken persists token and makes it current. Without a user the
// session stays loading until the user is fetched.
func (s *authSession) swapToken(ctx context.Context, token string, user *models.User) error {
	s.authMu.Lock()
	defer s.authMu.Unlock()

	if err := s.tokens.Save(ctx, token); err != nil {
		return err
	}
	s.update(func(st *models.Session) {
		*st = models.Session{Token: token, User: cloneUser(user), Loading: user == nil}
	})
	return nil
}

func (s *authSession) Logout(ctx context.Context) {
	s.authMu.Lock()
	defer s.authMu.Unlock()

	s.logout(ctx)
}

func (s *authSession) logout(ctx context.Context) {
	if err := s.tokens.Clear(ctx); err != nil {
		s.logger.Err(err).Str("func", "authSession.Logout").Msg("error clearing stored token")
	}
	s.update(func(st *models.Session) { *st = models.Session{} })
}

func (s *authSession) UpdateSettings(ctx context.Context, settings models.Settings) error {
	if !s.IsAuthenticated() {
		return s.fail(&AuthError{Message: MsgNotAuthenticated, Err: ErrNotAuthenticated})
	}
	if settings.MessagingProvider != "" &&
		settings.MessagingProvider != models.ProviderTwilio &&
		settings.MessagingProvider != models.ProviderHTTPSSMS {
		return newValidationError("Messaging provider must be twilio or httpssms")
	}

	user, err := s.adapter.UpdateUser(ctx, settings)
	if err != nil {
		return s.fail(authFailure(MsgUpdateSettingsFailed, err))
	}

	s.update(func(st *models.Session) {
		if st.Token == "" {
			return
		}
		st.User = &user
		st.Error = ""
	})
	return nil
}

func (s *authSession) Snapshot() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSession(s.state)
}

func (s *authSession) IsAuthenticated() bool {
	return s.Token() != ""
}

func (s *authSession) Subscribe(fn func(models.Session)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// Token implements adapter.CredentialSource.
func (s *authSession) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Token
}

// Invalidate implements adapter.CredentialSource. It performs a full
// logout when token is still the current credential.
func (s *authSession) Invalidate(token string) {
	s.authMu.Lock()
	defer s.authMu.Unlock()

	if token == "" || s.Token() != token {
		return
	}

	s.logger.Info().Str("func", "authSession.Invalidate").Msg("credential rejected by backend, logging out")
	s.logout(context.Background())
}

// fail records the error message in the session and returns err.
func (s *authSession) fail(err *AuthError) error {
	s.update(func(st *models.Session) { st.Error = err.Message })
	return err
}

// update applies fn under the lock and notifies listeners with the result.
func (s *authSession) update(fn func(st *models.Session)) {
	s.mu.Lock()
	fn(&s.state)
	snapshot := cloneSession(s.state)
	listeners := make([]func(models.Session), 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(snapshot)
	}
}

func cloneSession(st models.Session) models.Session {
	st.User = cloneUser(st.User)
	return st
}

func cloneUser(u *models.User) *models.User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}
