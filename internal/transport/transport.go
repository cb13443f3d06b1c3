// Package transport performs the single HTTP round trip behind every SDK call.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	nlpearl "github.com/spetersoncode/nlpearl"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// maxErrorBody caps how much of a failed response is kept on a TransportError.
const maxErrorBody = 4096

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-Id"

// Doer sends an HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client sends shaped requests and decodes their responses.
type Client struct {
	doer   Doer
	logger *zap.Logger
}

// New creates a transport client. A nil logger disables logging.
func New(doer Doer, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{doer: doer, logger: logger}
}

// Request is a fully shaped API request.
type Request struct {
	Op     string
	Method string
	URL    string
	APIKey string
	// Body is sent as JSON when non-nil.
	Body map[string]any
	// TextFallback returns a non-JSON success body as Result.Text instead of failing.
	TextFallback bool
}

// Do sends req and decodes the response. Non-2xx statuses and network
// failures become *nlpearl.TransportError; nothing is retried.
func (c *Client) Do(ctx context.Context, req Request) (*nlpearl.Result, error) {
	var body io.Reader
	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to marshal request: %w", req.Op, err)
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create request: %w", req.Op, err)
	}
	requestID := uuid.NewString()
	httpReq.Header.Set("Authorization", "Bearer "+req.APIKey)
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(RequestIDHeader, requestID)
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	log := c.logger.With(
		zap.String("op", req.Op),
		zap.String("method", req.Method),
		zap.String("url", req.URL),
		zap.String("request_id", requestID),
	)
	log.Debug("dispatching request")
	start := time.Now()

	resp, err := c.doer.Do(httpReq)
	if err != nil {
		return nil, &nlpearl.TransportError{
			Op:     req.Op,
			Method: req.Method,
			URL:    req.URL,
			Cat:    nlpearl.ErrorTransient,
			Cause:  err,
		}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &nlpearl.TransportError{
			Op:     req.Op,
			Method: req.Method,
			URL:    req.URL,
			Code:   resp.StatusCode,
			Cat:    nlpearl.ErrorTransient,
			Cause:  fmt.Errorf("failed to read response: %w", err),
		}
	}
	log.Debug("received response",
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("bytes", len(respBody)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &nlpearl.TransportError{
			Op:     req.Op,
			Method: req.Method,
			URL:    req.URL,
			Code:   resp.StatusCode,
			Body:   truncate(string(respBody), maxErrorBody),
			Cat:    nlpearl.CategorizeStatus(resp.StatusCode),
		}
	}

	return decode(req, resp.StatusCode, respBody)
}

func decode(req Request, status int, body []byte) (*nlpearl.Result, error) {
	result := &nlpearl.Result{Status: status}
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return result, nil
	}
	if gjson.ValidBytes(trimmed) {
		result.Raw = json.RawMessage(trimmed)
		return result, nil
	}
	if req.TextFallback {
		result.Text = string(body)
		return result, nil
	}
	return nil, &nlpearl.DecodeError{
		Op:   req.Op,
		Body: truncate(string(body), maxErrorBody),
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
