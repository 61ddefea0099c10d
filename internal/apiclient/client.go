// Package apiclient talks to the TalentHub REST API.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/kiran7893/talenthub-frontend/internal/domain"
	"github.com/kiran7893/talenthub-frontend/pkg/httpclient"
	"github.com/kiran7893/talenthub-frontend/pkg/logger"
)

// DefaultPathPrefix is the global route prefix of the API.
const DefaultPathPrefix = "/api"

// Doer sends a request. *httpclient.CircuitBreakerClient and
// *httpclient.Client both satisfy it.
type Doer interface {
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
}

// Config locates the API.
type Config struct {
	BaseURL    string
	PathPrefix string
}

// Client issues the login, signup and onboarding calls.
type Client struct {
	baseURL string
	doer    Doer
	logger  *slog.Logger
}

// New creates a client rooted at BaseURL (trailing slash removed) plus
// PathPrefix. An empty BaseURL is a configuration error.
func New(cfg Config, doer Doer, logger *slog.Logger) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		return nil, ErrMissingBaseURL
	}
	prefix := cfg.PathPrefix
	if prefix == "" {
		prefix = DefaultPathPrefix
	}
	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}

	return &Client{
		baseURL: strings.TrimRight(base, "/") + strings.TrimRight(prefix, "/"),
		doer:    doer,
		logger:  logger,
	}, nil
}

// BaseURL returns the resolved API root, including the path prefix.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Login exchanges credentials for a session. A 401 becomes KindAuth with a
// fixed message.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResponse, error) {
	var resp domain.AuthResponse
	err := c.post(ctx, "/auth/login", "", creds, &resp)
	if err != nil {
		var apiErr *Error
		if errors.As(err, &apiErr) && apiErr.Kind == KindAuth {
			apiErr.Message = MsgInvalidCredentials
		}
		return nil, err
	}
	if resp.AccessToken == "" {
		return nil, &Error{Status: http.StatusOK, Message: MsgGeneric, Kind: KindRemote}
	}
	return &resp, nil
}

// Signup creates an account and returns its first session.
func (c *Client) Signup(ctx context.Context, req domain.SignupRequest) (*domain.AuthResponse, error) {
	var resp domain.AuthResponse
	if err := c.post(ctx, "/auth/signup", "", req, &resp); err != nil {
		return nil, err
	}
	if resp.AccessToken == "" {
		return nil, &Error{Status: http.StatusOK, Message: MsgGeneric, Kind: KindRemote}
	}
	return &resp, nil
}

// SubmitOnboarding creates the candidate profile. The success body is
// ignored.
func (c *Client) SubmitOnboarding(ctx context.Context, token string, payload domain.OnboardingPayload) error {
	return c.post(ctx, "/candidates/onboarding", token, payload, nil)
}

// Ping checks that the API answers HTTP at all. Any status counts as up.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("create ping request: %w", err)
	}
	resp, err := c.doer.Do(ctx, req)
	if err != nil {
		return fmt.Errorf("ping api: %w", err)
	}
	_ = resp.Body.Close()
	return nil
}

// post sends body as JSON and decodes a 2xx answer into out (when non-nil).
func (c *Client) post(ctx context.Context, path, token string, body, out any) error {
	log := logger.WithContext(ctx, c.logger).With(slog.String("api_path", path))

	raw, err := json.Marshal(body)
	if err != nil {
		return &Error{Message: MsgGeneric, Kind: KindRemote, Err: fmt.Errorf("encode request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return &Error{Message: MsgConnectivity, Kind: KindUnavailable, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.doer.Do(ctx, req)
	if err != nil {
		log.WarnContext(ctx, "api request failed", slog.String("error", err.Error()))
		return &Error{Message: MsgConnectivity, Kind: KindUnavailable, Err: err}
	}

	data, err := httpclient.ReadBody(resp)
	if err != nil {
		log.WarnContext(ctx, "api response unreadable", slog.String("error", err.Error()))
		return &Error{Status: resp.StatusCode, Message: MsgConnectivity, Kind: KindUnavailable, Err: err}
	}

	if !httpclient.IsSuccess(resp.StatusCode) {
		msg := httpclient.DecodeMessage(data)
		if msg == "" {
			msg = MsgGeneric
		}
		kind := KindRemote
		if resp.StatusCode == http.StatusUnauthorized {
			kind = KindAuth
		}
		log.InfoContext(ctx, "api rejected request",
			slog.Int("status", resp.StatusCode),
			slog.String("message", msg),
		)
		return &Error{Status: resp.StatusCode, Message: msg, Kind: kind}
	}

	if out == nil {
		return nil
	}
	if err := unwrapEnvelope(data, out); err != nil {
		log.WarnContext(ctx, "api success body malformed", slog.String("error", err.Error()))
		return &Error{Status: resp.StatusCode, Message: MsgConnectivity, Kind: KindUnavailable, Err: err}
	}
	return nil
}

// unwrapEnvelope decodes data into out. When the body is an object with a
// "data" member that is itself an object, that member is decoded instead.
func unwrapEnvelope(data []byte, out any) error {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(data, &envelope); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	payload := data
	if inner, ok := envelope["data"]; ok && isJSONObject(inner) {
		payload = inner
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func isJSONObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
