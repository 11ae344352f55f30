package lms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/academia/backend/internal/domain/integration"
)

// maxResponseSize is the maximum allowed response size from the LMS API (10MB)
const maxResponseSize = 10 * 1024 * 1024

// wsPath is the REST entry point of the LMS web-service API
const wsPath = "/webservice/rest/server.php"

// Client is the shared HTTP client for the LMS web-service API. The
// three adapter services (users, courses, enrolments) are thin wrappers
// around Call; every transport or parsing failure is normalized into an
// ExternalService SyncError so orchestrators never branch on transport
// detail.
type Client struct {
	config     *Config
	httpClient *http.Client
}

// NewClient creates a new LMS client with the given configuration
func NewClient(config *Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
	}, nil
}

// Call invokes a web-service function with the given parameters and
// decodes the JSON response into out. A nil out discards the body.
// The LMS reports failures in-band with an exception envelope on HTTP
// 200; those are surfaced as ExternalService errors carrying the remote
// error code.
func (c *Client) Call(ctx context.Context, wsfunction string, params url.Values, out any) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("wstoken", c.config.Token)
	params.Set("wsfunction", wsfunction)
	params.Set("moodlewsrestformat", "json")

	endpoint := strings.TrimRight(c.config.BaseURL, "/") + wsPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(params.Encode()))
	if err != nil {
		return integration.NewExternalError("lms: failed to create request", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return integration.NewExternalError("lms: request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return integration.NewExternalError("lms: failed to read response", err)
	}

	if resp.StatusCode >= 400 {
		return integration.NewExternalError(fmt.Sprintf("lms: HTTP %d from %s", resp.StatusCode, wsfunction), nil)
	}

	if exc := decodeException(body); exc != nil {
		return integration.NewExternalError(
			fmt.Sprintf("lms: %s returned %s", wsfunction, exc.ErrorCode),
			errors.New(exc.Message),
		)
	}

	if out == nil || isNullBody(body) {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return integration.NewExternalError(fmt.Sprintf("lms: invalid response from %s", wsfunction), err)
	}
	return nil
}

// decodeException returns the in-band exception envelope, or nil when
// the body is a normal payload (arrays and null can never be exceptions)
func decodeException(body []byte) *wsException {
	trimmed := strings.TrimSpace(string(body))
	if !strings.HasPrefix(trimmed, "{") {
		return nil
	}
	var exc wsException
	if err := json.Unmarshal(body, &exc); err != nil {
		return nil
	}
	if exc.Exception == "" {
		return nil
	}
	return &exc
}

// isNullBody reports whether the LMS answered with a bare null, which
// some write functions use to signal success
func isNullBody(body []byte) bool {
	trimmed := strings.TrimSpace(string(body))
	return trimmed == "" || trimmed == "null"
}
