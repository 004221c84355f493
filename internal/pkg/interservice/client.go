// Package interservice implements the uniform synchronous call pattern used
// for every cross-service request: build the request, forward the caller's
// bearer token verbatim, decode the JSON body, and map anything that is not
// a 2xx response to a remote-call failure. There are no retries and no
// partial-result salvage; a failed call is surfaced to the caller as-is.
package interservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/victoriayuechen/tarecruit/internal/pkg/apperrors"
)

// DefaultTimeout bounds outbound calls when no timeout is configured. Peer
// services give no latency guarantee.
const DefaultTimeout = 10 * time.Second

// Client is the shared HTTP client for peer-service calls.
type Client struct {
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a Client with the given call timeout. A non-positive
// timeout falls back to DefaultTimeout.
func NewClient(timeout time.Duration, logger zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// NewClientWithHTTPClient creates a Client around an existing http.Client.
// Used by tests to point calls at an httptest server.
func NewClientWithHTTPClient(httpClient *http.Client, logger zerolog.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		logger:     logger,
	}
}

// Do performs a synchronous JSON call against a peer service. The caller's
// bearer token is forwarded verbatim in the Authorization header; this
// client never mints tokens of its own. When out is non-nil the response
// body is decoded into it. Every failure mode, transport errors, non-2xx
// statuses and undecodable bodies alike, unwraps to
// apperrors.ErrRemoteCallFailed.
func (c *Client) Do(ctx context.Context, method, url string, body interface{}, token string, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("method", method).Str("url", url).Msg("Peer service call failed")
		return fmt.Errorf("%w: %s %s: %v", apperrors.ErrRemoteCallFailed, method, url, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response from %s: %v", apperrors.ErrRemoteCallFailed, url, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error().
			Int("status", resp.StatusCode).
			Str("method", method).
			Str("url", url).
			Msg("Peer service returned non-success status")
		// The body carries whatever diagnostic text the peer produced
		return apperrors.NewRemoteCallError(fmt.Sprintf("%s %s returned status %d: %s", method, url, resp.StatusCode, string(respBody)))
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%w: decoding response from %s: %v", apperrors.ErrRemoteCallFailed, url, err)
	}

	return nil
}

// Get performs a GET call against a peer service.
func (c *Client) Get(ctx context.Context, url, token string, out interface{}) error {
	return c.Do(ctx, http.MethodGet, url, nil, token, out)
}

// Post performs a POST call against a peer service.
func (c *Client) Post(ctx context.Context, url string, body interface{}, token string, out interface{}) error {
	return c.Do(ctx, http.MethodPost, url, body, token, out)
}

// Put performs a PUT call against a peer service.
func (c *Client) Put(ctx context.Context, url string, body interface{}, token string, out interface{}) error {
	return c.Do(ctx, http.MethodPut, url, body, token, out)
}
