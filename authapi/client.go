package authapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	ierrors "github.com/tradesage/tradesage-client/internal/errors"
)

// Auth service endpoints.
const (
	EndpointHealth   = "/health"
	EndpointLogin    = "/auth/login"
	EndpointRegister = "/auth/register"
	EndpointVerify   = "/auth/verify"
	EndpointRefresh  = "/auth/refresh-token"
	EndpointLogout   = "/auth/logout"
)

const (
	defaultRequestTimeout = 5 * time.Second
	defaultHealthTimeout  = 2 * time.Second
)

// Client makes REST calls to the TradeSage authentication backend. Health
// probes run on a shorter timeout than regular requests so an unreachable
// backend is detected quickly.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	healthClient *http.Client
}

// ClientOption defines a function type to modify the Client instance.
type ClientOption func(*Client)

// WithTimeouts overrides the request and health-probe timeouts.
func WithTimeouts(request, health time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = request
		c.healthClient.Timeout = health
	}
}

// NewClient creates a client targeting the given base URL
// (e.g. "http://localhost:8080").
func NewClient(baseURL string, options ...ClientOption) *Client {
	client := &Client{
		baseURL:      baseURL,
		httpClient:   &http.Client{Timeout: defaultRequestTimeout},
		healthClient: &http.Client{Timeout: defaultHealthTimeout},
	}
	for _, opt := range options {
		opt(client)
	}
	return client
}

// Health probes GET /health. A nil return means the backend answered 2xx
// within the health timeout.
func (c *Client) Health(ctx context.Context) error {
	resp, err := c.do(ctx, c.healthClient, http.MethodGet, EndpointHealth, "", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp.StatusCode, "backend unhealthy", ierrors.ErrNetwork)
	}
	return nil
}

// Login exchanges credentials for an identity and token pair.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	resp, err := c.do(ctx, c.httpClient, http.MethodPost, EndpointLogin, "", loginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		var lr LoginResponse
		if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
			return nil, errors.Wrap(err, "[Client.Login] decode response")
		}
		return &lr, nil
	case resp.StatusCode == http.StatusBadRequest,
		resp.StatusCode == http.StatusUnauthorized,
		resp.StatusCode == http.StatusForbidden:
		return nil, newAPIError(resp.StatusCode, errorMessage(resp), ierrors.ErrInvalidCredentials)
	default:
		return nil, newAPIError(resp.StatusCode, errorMessage(resp), ierrors.ErrInternal)
	}
}

// RegisterAvailable probes the registration endpoint with an OPTIONS request
// before any payload is submitted.
func (c *Client) RegisterAvailable(ctx context.Context) error {
	resp, err := c.do(ctx, c.httpClient, http.MethodOptions, EndpointRegister, "", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return newAPIError(resp.StatusCode, "Registration service is currently unavailable", ierrors.ErrFeatureUnavailable)
	}
	return nil
}

// Register submits a registration payload. The capability probe runs first;
// a 409 maps to the conflict error with its verbatim message.
func (c *Client) Register(ctx context.Context, data RegistrationData) error {
	if err := c.RegisterAvailable(ctx); err != nil {
		log.Warn().Err(err).Msg("registration endpoint probe failed")
		return err
	}

	resp, err := c.do(ctx, c.httpClient, http.MethodPost, EndpointRegister, "", data)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusConflict:
		return newAPIError(resp.StatusCode, ierrors.ErrConflict.Error(), ierrors.ErrConflict)
	default:
		return newAPIError(resp.StatusCode, errorMessage(resp), ierrors.ErrInternal)
	}
}

// Verify checks an access token against GET /auth/verify. A nil return means
// the token is valid; any non-200 answer is a definitive rejection.
func (c *Client) Verify(ctx context.Context, token string) error {
	resp, err := c.do(ctx, c.httpClient, http.MethodGet, EndpointVerify, token, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return newAPIError(resp.StatusCode, "token rejected", ierrors.ErrUnauthorized)
	}
	return nil
}

// Refresh exchanges a refresh token for a new access token.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (string, error) {
	resp, err := c.do(ctx, c.httpClient, http.MethodPost, EndpointRefresh, "", refreshRequest{RefreshToken: refreshToken})
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", newAPIError(resp.StatusCode, "Token refresh failed", ierrors.ErrRefreshFailed)
	}
	var rr refreshResponse
	if err := json.NewDecoder(resp.Body).Decode(&rr); err != nil {
		return "", errors.Wrap(err, "[Client.Refresh] decode response")
	}
	if rr.Token == "" {
		return "", newAPIError(resp.StatusCode, "Token refresh returned no token", ierrors.ErrRefreshFailed)
	}
	return rr.Token, nil
}

// Logout notifies the backend that the session ended. Best-effort; the
// caller clears local state regardless of the outcome.
func (c *Client) Logout(ctx context.Context, token string) error {
	resp, err := c.do(ctx, c.httpClient, http.MethodPost, EndpointLogout, token, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp.StatusCode, "logout rejected", ierrors.ErrInternal)
	}
	return nil
}

func (c *Client) do(ctx context.Context, hc *http.Client, method, path, token string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrapf(err, "[Client.do] marshal %s", path)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, errors.Wrapf(err, "[Client.do] new request %s", path)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := hc.Do(req)
	if err != nil {
		return nil, classifyTransport(err)
	}
	return resp, nil
}

// errorMessage pulls the backend's {"message": ...} out of an error response.
func errorMessage(resp *http.Response) string {
	var er errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&er); err == nil && er.Message != "" {
		return er.Message
	}
	return "An unexpected error occurred"
}
