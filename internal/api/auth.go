package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Credentials is the signup/signin request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup registers a new account. The backend does not open a session here;
// callers follow up with Signin.
func (c *Client) Signup(ctx context.Context, creds Credentials) error {
	_, _, err := c.doAuth(ctx, Session{}, http.MethodPost, "/auth/signup", creds)
	return err
}

// Signin opens a backend session and returns the session cookies the backend
// set, so the gateway can relay them to the browser.
func (c *Client) Signin(ctx context.Context, creds Credentials) ([]*http.Cookie, error) {
	_, cookies, err := c.doAuth(ctx, Session{}, http.MethodPost, "/auth/signin", creds)
	if err != nil {
		return nil, err
	}
	return cookies, nil
}

// Signout closes the backend session. The returned cookies carry the backend's
// cookie expiry and must be relayed; the returned text is the backend's
// goodbye message.
func (c *Client) Signout(ctx context.Context, sess Session) (string, []*http.Cookie, error) {
	body, cookies, err := c.doAuth(ctx, sess, http.MethodPost, "/auth/signout", nil)
	return body, cookies, err
}

// Validate reports whether the session is still accepted by the backend.
func (c *Client) Validate(ctx context.Context, sess Session) error {
	_, _, err := c.doAuth(ctx, sess, http.MethodGet, "/auth/validate", nil)
	return err
}

// Me fetches the signed-in profile.
func (c *Client) Me(ctx context.Context, sess Session) (*Profile, error) {
	var out Profile
	if err := c.do(ctx, sess, http.MethodGet, "/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// doAuth is the auth-endpoint variant of do: same error contract, but the
// response body stays plain text and the backend's Set-Cookie headers are
// handed back to the caller.
func (c *Client) doAuth(ctx context.Context, sess Session, method, path string, payload any) (string, []*http.Cookie, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return "", nil, fmt.Errorf("api: encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return "", nil, fmt.Errorf("api: build %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	sess.apply(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", nil, fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", nil, fmt.Errorf("api: read %s %s: %w", method, path, err)
	}
	text := strings.TrimSpace(string(raw))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", nil, &StatusError{Status: resp.StatusCode, Body: text}
	}
	return text, resp.Cookies(), nil
}
