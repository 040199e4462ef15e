// Package api is the typed client for the remote cooperative backend. It wraps
// the donation and supporter collections, the cookie-session auth endpoints and
// the health probe. Calls never retry; an empty collection is a valid result.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"coopweb/internal/infra"
)

// Options configures the backend client.
type Options struct {
	BaseURL        string
	HTTPClient     *http.Client
	Logger         *infra.Logger
	RequestTimeout time.Duration
}

// Client performs HTTP calls against the cooperative backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *infra.Logger
}

// NewClient constructs a client with sane defaults and injected dependencies.
func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.RequestTimeout
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	var logger *infra.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	} else {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
	}
}

// do issues one backend call. A transport failure comes back wrapped; a
// completed call with a non-2xx status comes back as *StatusError carrying the
// server's text. When out is non-nil the 2xx body is decoded into it.
func (c *Client) do(ctx context.Context, sess Session, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("api: encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("api: build %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	sess.apply(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("api: read %s %s: %w", method, path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Debug().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Msg("backend call failed")
		return &StatusError{Status: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("api: decode %s %s: %w", method, path, err)
		}
	}
	return nil
}

// ListDonations fetches the donation collection.
func (c *Client) ListDonations(ctx context.Context, sess Session) ([]Donation, error) {
	var out []Donation
	if err := c.do(ctx, sess, http.MethodGet, "/donations", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetDonation fetches one donation by id.
func (c *Client) GetDonation(ctx context.Context, sess Session, id int64) (*Donation, error) {
	var out Donation
	if err := c.do(ctx, sess, http.MethodGet, "/donations/"+formatID(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateDonation creates a donation and returns the record the server stored,
// including its assigned id and timestamp.
func (c *Client) CreateDonation(ctx context.Context, sess Session, p DonationPayload) (*Donation, error) {
	var out Donation
	if err := c.do(ctx, sess, http.MethodPost, "/donations", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateDonation replaces the mutable fields of a donation.
func (c *Client) UpdateDonation(ctx context.Context, sess Session, id int64, p DonationPayload) (*Donation, error) {
	var out Donation
	if err := c.do(ctx, sess, http.MethodPut, "/donations/"+formatID(id), p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteDonation removes a donation. A supporter referencing it is not touched.
func (c *Client) DeleteDonation(ctx context.Context, sess Session, id int64) error {
	return c.do(ctx, sess, http.MethodDelete, "/donations/"+formatID(id), nil, nil)
}

// ListSupporters fetches the supporter collection.
func (c *Client) ListSupporters(ctx context.Context, sess Session) ([]Supporter, error) {
	var out []Supporter
	if err := c.do(ctx, sess, http.MethodGet, "/supporters", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetSupporter fetches one supporter by id.
func (c *Client) GetSupporter(ctx context.Context, sess Session, id int64) (*Supporter, error) {
	var out Supporter
	if err := c.do(ctx, sess, http.MethodGet, "/supporters/"+formatID(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateSupporter creates a supporter referencing an existing donation.
func (c *Client) CreateSupporter(ctx context.Context, sess Session, p SupporterPayload) (*Supporter, error) {
	var out Supporter
	if err := c.do(ctx, sess, http.MethodPost, "/supporters", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateSupporter replaces the supporter's fields. The payload must carry the
// supporter's current donation_id; the linkage itself is immutable.
func (c *Client) UpdateSupporter(ctx context.Context, sess Session, id int64, p SupporterPayload) (*Supporter, error) {
	var out Supporter
	if err := c.do(ctx, sess, http.MethodPut, "/supporters/"+formatID(id), p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteSupporter removes a supporter. Its donation is left in place.
func (c *Client) DeleteSupporter(ctx context.Context, sess Session, id int64) error {
	return c.do(ctx, sess, http.MethodDelete, "/supporters/"+formatID(id), nil, nil)
}

// Health probes GET /health. A nil error means the backend answered 2xx.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, Session{}, http.MethodGet, "/health", nil, nil)
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
