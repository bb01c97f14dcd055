// Package authclient talks to the external authentication service's
// admin API. Identity (passwords, sessions) lives there; this module
// only creates accounts during registration and deletes them again
// when a registration cannot be completed or the user removes their
// account.
package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// Env vars the client reads its configuration from.
const (
	EnvBaseURL    = "STUDYHALL_AUTH_URL"
	EnvServiceKey = "STUDYHALL_AUTH_SERVICE_KEY"
)

// Client is an admin-API client for the auth service.
type Client struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
}

// New creates a Client for the given endpoint and service key.
func New(baseURL, serviceKey string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// FromEnv creates a Client from environment configuration. The client
// is returned even when configuration is missing; operations report
// the missing configuration instead of dialing.
func FromEnv() *Client {
	return New(os.Getenv(EnvBaseURL), os.Getenv(EnvServiceKey))
}

// configured reports what is missing, or "" when ready.
func (c *Client) configured() string {
	switch {
	case c.baseURL == "" && c.serviceKey == "":
		return fmt.Sprintf("%s and %s are not set", EnvBaseURL, EnvServiceKey)
	case c.baseURL == "":
		return fmt.Sprintf("%s is not set", EnvBaseURL)
	case c.serviceKey == "":
		return fmt.Sprintf("%s is not set", EnvServiceKey)
	}
	return ""
}

// AuthUser is the auth service's view of an account.
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// CreateUser registers an account with the auth service and returns
// its id.
func (c *Client) CreateUser(ctx context.Context, email, password string) (*AuthUser, error) {
	if missing := c.configured(); missing != "" {
		return nil, fmt.Errorf("auth service not configured: %s", missing)
	}

	body, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, fmt.Errorf("encode create user request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/admin/users", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build create user request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("create user: auth service returned %s: %s",
			resp.Status, readBodySnippet(resp.Body))
	}

	var u AuthUser
	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return nil, fmt.Errorf("decode create user response: %w", err)
	}
	if u.ID == "" {
		return nil, fmt.Errorf("create user: auth service returned no user id")
	}
	return &u, nil
}

// RollbackResult reports whether a compensating delete succeeded. It
// is a value, not an error: a failed rollback must not mask the
// failure that triggered it, so the caller decides whether to log or
// alert.
type RollbackResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// RollbackUser deletes an auth account, compensating a failed
// registration or completing an account removal.
// Never returns an error; failures are folded into the result. With
// missing configuration no network call is attempted.
func (c *Client) RollbackUser(ctx context.Context, userID string) RollbackResult {
	if missing := c.configured(); missing != "" {
		return RollbackResult{Error: "auth service not configured: " + missing}
	}
	if userID == "" {
		return RollbackResult{Error: "no user id to roll back"}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete,
		c.baseURL+"/admin/users/"+userID, nil)
	if err != nil {
		return RollbackResult{Error: fmt.Sprintf("build rollback request: %v", err)}
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return RollbackResult{Error: fmt.Sprintf("rollback user %s: %v", userID, err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return RollbackResult{Error: fmt.Sprintf("rollback user %s: auth service returned %s: %s",
			userID, resp.Status, readBodySnippet(resp.Body))}
	}

	return RollbackResult{Success: true}
}

// readBodySnippet returns a short prefix of the body for error text.
func readBodySnippet(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, 256))
	return strings.TrimSpace(string(b))
}
