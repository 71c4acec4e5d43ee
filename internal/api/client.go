package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"github.com/arun-chaudhary3116/HabitMate/internal/constants"
	"github.com/arun-chaudhary3116/HabitMate/internal/logger"
)

// Error is a non-2xx response from the backend. Message carries the
// server's own error text verbatim when the body provided one.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// Unauthorized reports whether the backend rejected the session.
func (e *Error) Unauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// CredentialStore persists the serialized session cookie between
// invocations. The OS keyring implementation lives in internal/keyring.
type CredentialStore interface {
	GetSession() (string, error)
	SetSession(string) error
	DeleteSession() error
}

// Config holds the settings needed to construct a Client.
type Config struct {
	// BaseURL is the backend origin, e.g. http://localhost:8000.
	BaseURL string
	// HTTPClient is optional; a default client is used when nil. The
	// client's cookie jar is always replaced with the session jar.
	HTTPClient *http.Client
	// Credentials is optional; when set, the session cookie is restored
	// on construction and can be persisted after login.
	Credentials CredentialStore
}

// Client talks HTTP/JSON to the HabitMate backend. All calls carry the
// cookie-based session; none retry and none carry timeouts beyond the
// caller's context.
type Client struct {
	base  *url.URL
	http  *http.Client
	jar   http.CookieJar
	creds CredentialStore
}

// New constructs a Client and best-effort restores a previously
// persisted session cookie into its jar.
func New(cfg Config) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid server URL %q: %w", cfg.BaseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("server URL %q must include scheme and host", cfg.BaseURL)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	httpClient := &http.Client{}
	if cfg.HTTPClient != nil {
		clone := *cfg.HTTPClient
		httpClient = &clone
	}
	httpClient.Jar = jar

	c := &Client{
		base:  base,
		http:  httpClient,
		jar:   jar,
		creds: cfg.Credentials,
	}

	if c.creds != nil {
		if err := c.restoreSession(); err != nil {
			logger.Debug("No stored session restored", "error", err)
		}
	}

	return c, nil
}

// BaseURL returns the configured backend origin.
func (c *Client) BaseURL() string {
	return c.base.String()
}

func (c *Client) endpoint(path string) string {
	return c.base.String() + constants.APIPrefix + path
}

// do issues a JSON request and decodes the response into out (when
// non-nil). Non-2xx responses become *Error, with the body's "message"
// or "error" field surfaced verbatim when present.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path), reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{StatusCode: resp.StatusCode}
		var errBody struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr == nil {
			if errBody.Message != "" {
				apiErr.Message = errBody.Message
			} else if errBody.Error != "" {
				apiErr.Message = errBody.Error
			}
		}
		logger.Debug("Backend returned error", "method", method, "path", path, "status", resp.StatusCode)
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response from %s: %w", path, err)
		}
	}
	return nil
}
