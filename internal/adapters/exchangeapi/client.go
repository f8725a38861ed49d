package exchangeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/exchange_desk/internal/apperrors"
	"github.com/SscSPs/exchange_desk/internal/middleware"
	"github.com/SscSPs/exchange_desk/pkg/metrics"
)

const maxErrorBody = 1 << 10

// Client calls the upstream exchange REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the API rooted at baseURL, bounding every call by timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return NewClientWithHTTP(baseURL, &http.Client{Timeout: timeout})
}

// NewClientWithHTTP creates a client using the given http.Client.
func NewClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// do sends body as JSON and decodes the response into out when out is not nil.
// Transport failures and unexpected statuses are wrapped in apperrors.ErrNetwork;
// 400/422 map to ErrValidation, 401/403 to ErrUnauthorized and 404 to ErrNotFound.
func (c *Client) do(ctx context.Context, operation, method, path string, body, out any) error {
	logger := middleware.GetLoggerFromCtx(ctx).With(
		slog.String("upstream_operation", operation),
		slog.String("upstream_path", path),
	)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode %s request: %w", operation, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", operation, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ObserveUpstream(operation, "error", time.Since(start).Seconds())
		logger.Error("Upstream call failed", slog.String("error", err.Error()))
		return fmt.Errorf("%w: %s: %v", apperrors.ErrNetwork, operation, err)
	}
	defer resp.Body.Close()
	metrics.ObserveUpstream(operation, strconv.Itoa(resp.StatusCode), time.Since(start).Seconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		logger.Warn("Upstream returned error status",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(snippet)),
		)
		return statusError(operation, resp.StatusCode, snippet)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		logger.Error("Failed to decode upstream response", slog.String("error", err.Error()))
		return fmt.Errorf("%w: %s: invalid response body: %v", apperrors.ErrNetwork, operation, err)
	}
	logger.Debug("Upstream call succeeded", slog.Duration("latency", time.Since(start)))
	return nil
}

func statusError(operation string, status int, body []byte) error {
	detail := strings.TrimSpace(string(body))
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s rejected: %s", apperrors.ErrValidation, operation, detail)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", apperrors.ErrUnauthorized, operation)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", apperrors.ErrNotFound, operation)
	}
	return fmt.Errorf("%w: %s: unexpected status %d", apperrors.ErrNetwork, operation, status)
}
