package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxResponseSize is the maximum allowed response size from the backend (10MB)
const maxResponseSize = 10 * 1024 * 1024

// totalCountHeader carries the collection size on paginated list responses
const totalCountHeader = "X-Total-Count"

// TotalCountUnknown is returned by GetList when the total-count header is
// absent or non-numeric. Callers fall back to the page payload length.
const TotalCountUnknown = -1

// Config holds the transport settings of the REST client
type Config struct {
	BaseURL string
	Token   string        // access token sent as a bearer header; may be empty for public endpoints
	Timeout time.Duration // zero disables the client-side timeout
}

// Client is the HTTP transport every slice and workflow call goes through.
// It owns the auth header, the cache-busting parameter on collection GETs,
// total-count extraction and the error taxonomy.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *zap.Logger

	mu    sync.RWMutex
	token string
}

// New creates a new REST client for the given backend
func New(cfg Config, logger *zap.Logger) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("rest: base URL must be absolute, got %q", cfg.BaseURL)
	}

	return &Client{
		baseURL:    base,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
		token:      cfg.Token,
	}, nil
}

// SetToken replaces the access token used on subsequent requests
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// Get fetches a single resource into out
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	_, err := c.do(ctx, http.MethodGet, path, query, nil, out)
	return err
}

// GetList fetches a collection into out and returns the total count from the
// response header, or TotalCountUnknown when the header is absent or not a
// number. A cache-busting timestamp parameter is added to every list call.
func (c *Client) GetList(ctx context.Context, path string, query url.Values, out any) (int, error) {
	if query == nil {
		query = url.Values{}
	}
	query.Set("cacheBuster", strconv.FormatInt(time.Now().UnixMilli(), 10))

	resp, err := c.do(ctx, http.MethodGet, path, query, nil, out)
	if err != nil {
		return TotalCountUnknown, err
	}

	total, err := strconv.Atoi(resp.Header.Get(totalCountHeader))
	if err != nil {
		return TotalCountUnknown, nil
	}
	return total, nil
}

// Post creates a resource; the decoded response lands in out when non-nil
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	_, err := c.do(ctx, http.MethodPost, path, nil, body, out)
	return err
}

// Put replaces a resource
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	_, err := c.do(ctx, http.MethodPut, path, nil, body, out)
	return err
}

// Patch partially updates a resource
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	_, err := c.do(ctx, http.MethodPatch, path, nil, body, out)
	return err
}

// Delete removes a resource
func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil, nil)
	return err
}

// do performs one request/response round trip. Mutation bodies are sent with
// null-valued fields stripped.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) (*http.Response, error) {
	target := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		target.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := MarshalClean(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("rest: failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.mu.RLock()
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	c.mu.RUnlock()

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	c.logger.Debug("request completed",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode >= 400 {
		return nil, decodeAPIError(resp.StatusCode, raw)
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
		}
	}
	return resp, nil
}

// problemBody covers the error shapes the backend emits: either a plain
// {code,message} pair or an RFC 7807 problem document.
type problemBody struct {
	Code     string `json:"code"`
	ErrorKey string `json:"errorKey"`
	Message  string `json:"message"`
	Title    string `json:"title"`
	Detail   string `json:"detail"`
}

// decodeAPIError builds an APIError from a rejection response, falling back
// to the HTTP status text when the body is not parseable
func decodeAPIError(status int, raw []byte) *APIError {
	apiErr := &APIError{
		StatusCode: status,
		Message:    http.StatusText(status),
	}

	var problem problemBody
	if err := json.Unmarshal(raw, &problem); err != nil {
		return apiErr
	}

	switch {
	case problem.Message != "":
		apiErr.Message = problem.Message
	case problem.Detail != "":
		apiErr.Message = problem.Detail
	case problem.Title != "":
		apiErr.Message = problem.Title
	}
	switch {
	case problem.Code != "":
		apiErr.Code = problem.Code
	case problem.ErrorKey != "":
		apiErr.Code = strings.ToUpper(problem.ErrorKey)
	}
	return apiErr
}
