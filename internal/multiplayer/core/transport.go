package core

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

// Unit is the empty response of operations that confirm success without
// returning data.
type Unit struct{}

// Client carries everything a resource client needs to issue one request:
// the transport, the server base URL, the shared session credential, and
// a logger. All seven resource clients hold the same instance.
type Client struct {
	HTTP    *http.Client
	BaseURL *url.URL
	Session *SessionCredential
	Logger  *zap.Logger
}

// ResponseOption runs against the raw response before the body is
// decoded. Used where an operation needs more than the body, e.g. the
// login cookie set.
type ResponseOption func(*http.Response)

// Send issues one request/response cycle. The session credential is
// attached when held, body (when non-nil) is serialized as JSON, and a
// 2xx response is decoded into TResp. A non-2xx response is decoded as an
// APIError and returned as the error, so a failed call never yields a
// usable-looking zero value. Transport failures (no response at all) are
// returned untouched.
func Send[TResp any](
	ctx context.Context,
	c *Client,
	method string,
	path string,
	body any,
	opts ...ResponseOption,
) (TResp, error) {
	var resp TResp

	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return resp, err
		}
		payload = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.url(path), payload)
	if err != nil {
		return resp, err
	}

	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	c.Session.Attach(httpReq)

	c.Logger.Debug("sending request", zap.String("method", method), zap.String("path", path))

	httpResp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return resp, err
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	for _, opt := range opts {
		opt(httpResp)
	}

	responsePayload, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return resp, err
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		apiErr := decodeError(responsePayload)
		c.Logger.Warn(
			"request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("httpStatus", httpResp.StatusCode),
			zap.String("status", string(apiErr.Status)),
		)
		return resp, apiErr
	}

	if len(responsePayload) > 0 {
		if err := json.Unmarshal(responsePayload, &resp); err != nil {
			return resp, err
		}
	}

	return resp, nil
}

func (c *Client) url(path string) string {
	return strings.TrimSuffix(c.BaseURL.String(), "/") + path
}

// decodeError maps a failure body to an APIError. A body that is not the
// structured error shape still surfaces as StatusError carrying the raw
// body, never as a nil error.
func decodeError(payload []byte) APIError {
	var apiErr APIError
	if err := json.Unmarshal(payload, &apiErr); err != nil || apiErr.Status == "" {
		return APIError{Status: StatusError, Message: string(payload)}
	}

	return apiErr
}
