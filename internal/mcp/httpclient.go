package mcp

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
	"time"

	"github.com/claude/fittracker/internal/ingest"
	"github.com/claude/fittracker/internal/models"
)

// maxAttempts bounds retries of requests that failed in transport or with a
// 5xx status.
const maxAttempts = 3

// HTTPClient implements Calculator by calling the fittracker REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but
// calculations happen on the server (for example over Tailscale).
type HTTPClient struct {
	baseURL    string
	apiKey     string
	backoff    time.Duration
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies Calculator.
var _ Calculator = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL. An empty
// apiKey sends no X-API-Key header.
func NewHTTPClient(baseURL, apiKey string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		backoff:    time.Second,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// apiError is a non-2xx response from the server.
type apiError struct {
	Path   string
	Status int
	Body   string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("httpclient: %s returned %d: %s", e.Path, e.Status, e.Body)
}

// do sends a request and returns the body of a 200 response. Transport
// errors and 5xx responses are retried with exponential backoff.
func (c *HTTPClient) do(ctx context.Context, method, path string, params url.Values, contentType string, payload []byte) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var lastErr error
	for attempt := range maxAttempts {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.backoff << uint(attempt-1)):
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, u, bytes.NewReader(payload))
		if err != nil {
			return nil, fmt.Errorf("httpclient: create request: %w", err)
		}
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}
		if c.apiKey != "" {
			req.Header.Set("X-API-Key", c.apiKey)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("httpclient: %s: %w", path, err)
			continue
		}
		body, err := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("httpclient: read body: %w", err)
		}

		if resp.StatusCode == http.StatusOK {
			return body, nil
		}
		lastErr = &apiError{Path: path, Status: resp.StatusCode, Body: strings.TrimSpace(string(body))}
		if resp.StatusCode < 500 {
			return nil, lastErr
		}
	}

	return nil, fmt.Errorf("after %d attempts: %w", maxAttempts, lastErr)
}

func (c *HTTPClient) Calculate(ctx context.Context, pkg models.Package) (models.ReportRow, error) {
	payload, err := json.Marshal(pkg)
	if err != nil {
		return models.ReportRow{}, fmt.Errorf("httpclient: encode package: %w", err)
	}

	body, err := c.do(ctx, http.MethodPost, "/api/v1/packages", nil, "application/json", payload)
	if err != nil {
		return models.ReportRow{}, err
	}

	var row models.ReportRow
	if err := json.Unmarshal(body, &row); err != nil {
		return models.ReportRow{}, fmt.Errorf("httpclient: decode report: %w", err)
	}
	return row, nil
}

func (c *HTTPClient) ProcessBatch(ctx context.Context, packages string, failFast bool) (*ingest.Result, error) {
	params := url.Values{}
	if failFast {
		params.Set("fail_fast", strconv.FormatBool(failFast))
	}

	body, err := c.do(ctx, http.MethodPost, "/api/v1/batch", params, "text/plain", []byte(packages))
	if err != nil {
		return nil, err
	}

	var result ingest.Result
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("httpclient: decode batch result: %w", err)
	}
	return &result, nil
}

func (c *HTTPClient) WorkoutTypes(ctx context.Context) ([]models.WorkoutType, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/v1/workout-types", nil, "", nil)
	if err != nil {
		return nil, err
	}

	var types []models.WorkoutType
	if err := json.Unmarshal(body, &types); err != nil {
		return nil, fmt.Errorf("httpclient: decode workout types: %w", err)
	}
	return types, nil
}
