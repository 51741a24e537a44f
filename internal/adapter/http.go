package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/mitchellbreust/client-crawler/internal/config"
	"github.com/mitchellbreust/client-crawler/internal/logger"
	"github.com/mitchellbreust/client-crawler/internal/utils"
	"github.com/mitchellbreust/client-crawler/models"
)

const requestIDHeader = "X-Request-ID"

type httpServerAdapter struct {
	client *utils.HTTPClient
	ids    *utils.RequestIDGenerator

	mu             sync.RWMutex
	credentials    CredentialSource
	onUnauthorized UnauthorizedHandler

	latch unauthorizedLatch

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// builds the one resty client every call goes through, with the credential
// and 401 middleware registered on it.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	h := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		ids:    utils.NewRequestIDGenerator(),
		logger: logger,
	}

	h.client.
		OnBeforeRequest(h.attachCredentials).
		OnAfterResponse(h.handleUnauthorized)

	return h, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetCredentialSource implements [ServerAdapter].
func (h *httpServerAdapter) SetCredentialSource(src CredentialSource) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.credentials = src
}

// OnUnauthorized implements [ServerAdapter].
func (h *httpServerAdapter) OnUnauthorized(handler UnauthorizedHandler) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onUnauthorized = handler
}

func (h *httpServerAdapter) credentialSource() CredentialSource {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.credentials
}

func (h *httpServerAdapter) unauthorizedHandler() UnauthorizedHandler {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.onUnauthorized
}

// attachCredentials runs before every request. The token is read from the
// credential source at send time.
func (h *httpServerAdapter) attachCredentials(_ *resty.Client, r *resty.Request) error {
	id, ok := utils.GetRequestIDFromContext(r.Context())
	if !ok {
		id = h.ids.Generate()
	}
	r.SetHeader(requestIDHeader, id)

	var token string
	if src := h.credentialSource(); src != nil {
		token = strings.TrimSpace(src.Token())
	}
	if token == "" {
		h.logger.Debug().
			Str("func", "httpServerAdapter.attachCredentials").
			Str("method", r.Method).
			Str("url", r.URL).
			Msg("no credential available, sending request without authorization")
		return nil
	}

	r.SetHeader("Authorization", "Bearer "+token)
	return nil
}

// handleUnauthorized runs after every response. A 401 invalidates the
// credential the request was sent with. The unauthorized handler fires only
// when that credential was still the current one, and at most once per
// credential. The request is never retried.
func (h *httpServerAdapter) handleUnauthorized(_ *resty.Client, resp *resty.Response) error {
	if resp.StatusCode() != http.StatusUnauthorized {
		return nil
	}

	token, _ := utils.ParseBearerToken(resp.Request.Header.Get("Authorization"))

	h.logger.Warn().
		Str("func", "httpServerAdapter.handleUnauthorized").
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Bool("had_credential", token != "").
		Msg("backend rejected request with 401")

	src := h.credentialSource()
	if src == nil || token == "" {
		return nil
	}

	current := src.Token()
	src.Invalidate(token)

	// a stale credential was rejected after a newer one was established,
	// or a concurrent 401 already logged this credential out
	if current != token {
		return nil
	}
	if !h.latch.trip(token) {
		return nil
	}
	if handler := h.unauthorizedHandler(); handler != nil {
		handler()
	}

	return nil
}

// unauthorizedLatch remembers the last credential that fired the handler.
// Only a 401 on a newly established credential gets through again.
type unauthorizedLatch struct {
	mu    sync.Mutex
	token string
}

func (l *unauthorizedLatch) trip(token string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.token == token {
		return false
	}
	l.token = token
	return true
}

// Register implements [ServerAdapter]. It POSTs the registration payload to
// POST /auth/register and returns the decoded body. A missing access_token is
// not treated as an error here; the session layer decides.
func (h *httpServerAdapter) Register(ctx context.Context, reg models.Registration) (models.AuthResponse, error) {
	var out models.AuthResponse
	err := h.execute(h.request(ctx).SetBody(reg), http.MethodPost, "/auth/register", "register", &out)
	return out, err
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /auth/login and returns the decoded body.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error) {
	var out models.AuthResponse
	err := h.execute(h.request(ctx).SetBody(creds), http.MethodPost, "/auth/login", "login", &out)
	return out, err
}

// CurrentUser implements [ServerAdapter]. It GETs /auth/user.
func (h *httpServerAdapter) CurrentUser(ctx context.Context) (models.User, error) {
	resp, err := h.send(h.request(ctx), http.MethodGet, "/auth/user", "current user")
	if err != nil {
		return models.User{}, err
	}
	return decodeUser(resp.Body(), "current user")
}

// UpdateUser implements [ServerAdapter]. It PUTs settings to /auth/user.
func (h *httpServerAdapter) UpdateUser(ctx context.Context, settings models.Settings) (models.User, error) {
	resp, err := h.send(h.request(ctx).SetBody(settings), http.MethodPut, "/auth/user", "update user")
	if err != nil {
		return models.User{}, err
	}
	return decodeUser(resp.Body(), "update user")
}

// ListJobs implements [ServerAdapter]. It GETs /api/jobs.
func (h *httpServerAdapter) ListJobs(ctx context.Context) ([]models.Job, error) {
	var out models.JobsResponse
	if err := h.execute(h.request(ctx), http.MethodGet, "/api/jobs", "list jobs", &out); err != nil {
		return nil, err
	}
	return out.Jobs, nil
}

// GetJob implements [ServerAdapter]. It GETs /api/jobs/{id}.
func (h *httpServerAdapter) GetJob(ctx context.Context, id int64) (models.Job, error) {
	var out models.JobResponse
	req := h.request(ctx).SetPathParam("id", strconv.FormatInt(id, 10))
	if err := h.execute(req, http.MethodGet, "/api/jobs/{id}", "get job", &out); err != nil {
		return models.Job{}, err
	}
	return out.Job, nil
}

// CreateJob implements [ServerAdapter]. It POSTs job to /api/jobs.
func (h *httpServerAdapter) CreateJob(ctx context.Context, job models.Job) (models.Job, error) {
	var out models.JobResponse
	if err := h.execute(h.request(ctx).SetBody(job), http.MethodPost, "/api/jobs", "create job", &out); err != nil {
		return models.Job{}, err
	}
	return out.Job, nil
}

// UpdateJob implements [ServerAdapter]. It PUTs job to /api/jobs/{id}.
func (h *httpServerAdapter) UpdateJob(ctx context.Context, id int64, job models.Job) (models.Job, error) {
	var out models.JobResponse
	req := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetBody(job)
	if err := h.execute(req, http.MethodPut, "/api/jobs/{id}", "update job", &out); err != nil {
		return models.Job{}, err
	}
	return out.Job, nil
}

// DeleteJob implements [ServerAdapter]. It sends DELETE /api/jobs/{id}.
func (h *httpServerAdapter) DeleteJob(ctx context.Context, id int64) error {
	req := h.request(ctx).SetPathParam("id", strconv.FormatInt(id, 10))
	_, err := h.send(req, http.MethodDelete, "/api/jobs/{id}", "delete job")
	return err
}

// SearchJobs implements [ServerAdapter]. It POSTs req to /api/search-jobs.
func (h *httpServerAdapter) SearchJobs(ctx context.Context, req models.SearchRequest) (models.SearchHandle, error) {
	var out models.SearchHandle
	err := h.execute(h.request(ctx).SetBody(req), http.MethodPost, "/api/search-jobs", "search jobs", &out)
	return out, err
}

// SearchStatus implements [ServerAdapter]. It GETs /api/search-status.
func (h *httpServerAdapter) SearchStatus(ctx context.Context) ([]models.SearchTask, error) {
	var out models.SearchStatusResponse
	if err := h.execute(h.request(ctx), http.MethodGet, "/api/search-status", "search status", &out); err != nil {
		return nil, err
	}
	return out.Searches, nil
}

// GetConversation implements [ServerAdapter]. It GETs
// /api/jobs/{id}/conversation.
func (h *httpServerAdapter) GetConversation(ctx context.Context, jobID int64) (models.Conversation, error) {
	var out models.ConversationResponse
	req := h.request(ctx).SetPathParam("id", strconv.FormatInt(jobID, 10))
	if err := h.execute(req, http.MethodGet, "/api/jobs/{id}/conversation", "get conversation", &out); err != nil {
		return models.Conversation{}, err
	}
	return out.Conversation, nil
}

// CreateConversation implements [ServerAdapter]. It POSTs to
// /api/jobs/{id}/conversation.
func (h *httpServerAdapter) CreateConversation(ctx context.Context, jobID int64) (models.Conversation, error) {
	var out models.ConversationResponse
	req := h.request(ctx).SetPathParam("id", strconv.FormatInt(jobID, 10))
	if err := h.execute(req, http.MethodPost, "/api/jobs/{id}/conversation", "create conversation", &out); err != nil {
		return models.Conversation{}, err
	}
	return out.Conversation, nil
}

// ListConversations implements [ServerAdapter]. It GETs /api/conversations.
func (h *httpServerAdapter) ListConversations(ctx context.Context) ([]models.ConversationSummary, error) {
	var out models.ConversationsResponse
	if err := h.execute(h.request(ctx), http.MethodGet, "/api/conversations", "list conversations", &out); err != nil {
		return nil, err
	}
	return out.Conversations, nil
}

// SendMessage implements [ServerAdapter]. It POSTs req to
// /api/conversations/{id}/messages.
func (h *httpServerAdapter) SendMessage(ctx context.Context, conversationID int64, req models.SendMessageRequest) (models.Message, error) {
	var out models.SendMessageResponse
	r := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(conversationID, 10)).
		SetBody(req)
	if err := h.execute(r, http.MethodPost, "/api/conversations/{id}/messages", "send message", &out); err != nil {
		return models.Message{}, err
	}
	return out.MessageData, nil
}

// GenerateMessage implements [ServerAdapter]. It POSTs req to
// /api/generate-message.
func (h *httpServerAdapter) GenerateMessage(ctx context.Context, req models.GenerateMessageRequest) (string, error) {
	var out models.GenerateMessageResponse
	if err := h.execute(h.request(ctx).SetBody(req), http.MethodPost, "/api/generate-message", "generate message", &out); err != nil {
		return "", err
	}
	return out.GeneratedMessage, nil
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
}

// send issues the request and maps transport and status failures.
func (h *httpServerAdapter) send(req *resty.Request, method, path, op string) (*resty.Response, error) {
	resp, err := req.Execute(method, path)
	if err != nil {
		h.logger.Err(err).Str("func", "httpServerAdapter.send").Str("op", op).Msg("request failed")
		return nil, fmt.Errorf("%w: %s request: %w", ErrTransport, op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().
			Str("func", "httpServerAdapter.send").
			Str("op", op).
			Int("status", resp.StatusCode()).
			Msg("backend returned error status")
		return resp, err
	}
	return resp, nil
}

// execute is send followed by decoding the JSON body into out.
func (h *httpServerAdapter) execute(req *resty.Request, method, path, op string, out any) error {
	resp, err := h.send(req, method, path, op)
	if err != nil {
		return err
	}
	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s response: %w", op, err)
	}
	return nil
}

// decodeUser accepts both {"user": {...}} and a bare user object.
func decodeUser(body []byte, op string) (models.User, error) {
	var wrapped models.UserResponse
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return models.User{}, fmt.Errorf("decode %s response: %w", op, err)
	}
	if wrapped.User != nil {
		return *wrapped.User, nil
	}

	var user models.User
	if err := json.Unmarshal(body, &user); err != nil {
		return models.User{}, fmt.Errorf("decode %s response: %w", op, err)
	}
	if user.ID == 0 && user.Email == "" {
		return models.User{}, fmt.Errorf("decode %s response: %w", op, errors.New("no user in body"))
	}
	return user, nil
}
