// Package identity is the client for the external user-identity API
// (dummyjson.com compatible). The service layer owns session state; this
// client only moves requests and surfaces upstream error messages.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Parindya2/TripRoute/internal/domain"
)

const defaultTokenTTLMins = 30

type Client struct {
	baseURL       string
	httpClient    *http.Client
	expiresInMins int
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:       baseURL,
		httpClient:    &http.Client{Timeout: 10 * time.Second},
		expiresInMins: defaultTokenTTLMins,
	}
}

func (c *Client) Login(ctx context.Context, username, password string) (*domain.AuthSession, error) {
	body := map[string]any{
		"username":      username,
		"password":      password,
		"expiresInMins": c.expiresInMins,
	}

	var resp authResponse
	if err := c.post(ctx, "/auth/login", body, &resp, "login failed"); err != nil {
		return nil, err
	}
	return resp.session(), nil
}

func (c *Client) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/me", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	var user domain.User
	if err := c.do(req, &user, "failed to get user"); err != nil {
		return nil, err
	}
	return &user, nil
}

// Register creates a user via the identity API. The demo API echoes the
// created profile back; it does not issue a token, so registration never
// logs the user in.
func (c *Client) Register(ctx context.Context, reg domain.Registration) (*domain.User, error) {
	var user domain.User
	if err := c.post(ctx, "/users/add", reg, &user, "registration failed"); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) Refresh(ctx context.Context, refreshToken string) (*domain.AuthSession, error) {
	body := map[string]any{
		"refreshToken":  refreshToken,
		"expiresInMins": c.expiresInMins,
	}

	var resp authResponse
	if err := c.post(ctx, "/auth/refresh", body, &resp, "token refresh failed"); err != nil {
		return nil, err
	}
	return resp.session(), nil
}

func (c *Client) post(ctx context.Context, path string, body any, out any, genericMsg string) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out, genericMsg)
}

// do runs the request and decodes the response. Upstream failures surface the
// API's "message" field when present, else the generic fallback.
func (c *Client) do(req *http.Request, out any, genericMsg string) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("identity: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("identity: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("%s", apiErr.Message)
		}
		return fmt.Errorf("%s", genericMsg)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("identity: decode response: %w", err)
	}
	return nil
}
