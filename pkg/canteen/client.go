package canteen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const maxBodyBytes = 1 << 20

var ErrMalformedResponse = errors.New("malformed response body")

// APIError is returned for any non-2xx answer. Message holds the body's
// "error" field and is empty when the backend did not send one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("canteen api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("canteen api: status %d: %s", e.StatusCode, e.Message)
}

// FailureMessage picks the text shown to the user for a failed call: the
// backend's error field when present, fallback otherwise.
func FailureMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithCookie forwards a pre-issued backend session cookie on every request.
func WithCookie(cookie string) Option {
	return func(c *Client) {
		c.cookie = cookie
	}
}

// Client is the typed surface of the canteen backend.
type Client struct {
	baseURL string
	http    *http.Client
	cookie  string
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) ListMenu(ctx context.Context) ([]MenuItem, error) {
	var items []MenuItem
	if err := c.do(ctx, http.MethodGet, "/menu", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) PlaceOrder(ctx context.Context, req OrderRequest) (*OrderResult, error) {
	var result OrderResult
	if err := c.do(ctx, http.MethodPost, "/order", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) QueueStatus(ctx context.Context) (*QueueSnapshot, error) {
	var snapshot QueueSnapshot
	if err := c.do(ctx, http.MethodGet, "/queue-status", nil, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (c *Client) TodayStats(ctx context.Context) (*DailyStats, error) {
	var stats DailyStats
	if err := c.do(ctx, http.MethodGet, "/stats/today", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) ListKitchenOrders(ctx context.Context) ([]KitchenOrder, error) {
	var orders []KitchenOrder
	if err := c.do(ctx, http.MethodGet, "/kitchen/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, req StatusUpdateRequest) (*StatusUpdateResult, error) {
	var result StatusUpdateResult
	if err := c.do(ctx, http.MethodPost, "/kitchen/update", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload, dest interface{}) error {
	if c == nil || c.http == nil {
		return fmt.Errorf("canteen client not configured")
	}

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.cookie != "" {
		req.Header.Set("Cookie", c.cookie)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("read %s %s: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var failure struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(raw, &failure) == nil {
			apiErr.Message = failure.Error
		}
		return apiErr
	}

	if !json.Valid(raw) {
		return fmt.Errorf("%s %s: %w", method, path, ErrMalformedResponse)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}

	return nil
}
