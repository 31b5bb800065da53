// Package backend is the typed HTTP wrapper over the external worklog
// backend, which owns all persistent state. Every call forwards the viewer's
// session cookie and returns either decoded data or a discriminated
// *APIError; the client never retries.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hoursly/worklog-portal/internal/pkg/metrics"
	"github.com/hoursly/worklog-portal/internal/pkg/session"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
	metrics *metrics.Metrics
}

// NewClient creates a backend client. The client is stateless: session
// credentials travel per call, never in a shared jar.
func NewClient(baseURL string, timeout time.Duration, log *slog.Logger, m *metrics.Metrics) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
		metrics: m,
	}
}

// envelope mirrors the backend's response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *errorDetail    `json:"error,omitempty"`
}

type errorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// do issues one request and decodes the enveloped response into out. It
// returns the response cookies so the login call can relay the session
// cookie; every other caller ignores them.
func (c *Client) do(
	ctx context.Context,
	sess session.Session,
	endpoint, method, path string,
	query url.Values,
	body, out any,
) ([]*http.Cookie, error) {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if !sess.IsZero() {
		req.AddCookie(sess.Cookie())
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if c.metrics != nil {
		c.metrics.BackendDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}
	if err != nil {
		c.observe(endpoint, "error")
		c.log.ErrorContext(ctx, "backend request failed", "endpoint", endpoint, "error", err)
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreachable, path, err)
	}
	defer resp.Body.Close()

	c.observe(endpoint, statusClass(resp.StatusCode))

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body for %s: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.Cookies(), c.apiError(resp.StatusCode, raw)
	}

	if out != nil && len(raw) > 0 {
		var env envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			return nil, fmt.Errorf("failed to decode response for %s: %w", path, err)
		}
		if len(env.Data) > 0 {
			if err := json.Unmarshal(env.Data, out); err != nil {
				return nil, fmt.Errorf("failed to decode response data for %s: %w", path, err)
			}
		}
	}

	return resp.Cookies(), nil
}

// apiError shapes any error response into the one discriminated type,
// preferring the structured backend message over the status fallback.
func (c *Client) apiError(status int, raw []byte) error {
	apiErr := &APIError{
		StatusCode: status,
		Code:       strings.ReplaceAll(strings.ToUpper(http.StatusText(status)), " ", "_"),
		Message:    fallbackMessage(status),
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil {
		if env.Error != nil {
			if env.Error.Code != "" {
				apiErr.Code = env.Error.Code
			}
			if env.Error.Message != "" {
				apiErr.Message = env.Error.Message
			}
			apiErr.Fields = env.Error.Details
		} else if env.Message != "" {
			apiErr.Message = env.Message
		}
	}

	return apiErr
}

func (c *Client) observe(endpoint, status string) {
	if c.metrics != nil {
		c.metrics.BackendRequests.WithLabelValues(endpoint, status).Inc()
	}
}

func statusClass(code int) string {
	switch {
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func rangeQuery(startDate, endDate string) url.Values {
	q := url.Values{}
	q.Set("startDate", startDate)
	q.Set("endDate", endDate)
	return q
}
