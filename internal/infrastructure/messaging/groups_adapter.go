package messaging

import (
	"bytes"
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

// maxResponseSize is the maximum allowed response size from the gateway (1MB)
const maxResponseSize = 1 * 1024 * 1024

// GroupsAdapter implements the GroupGateway port against the messaging
// platform's REST gateway. A nil config leaves the adapter unconfigured;
// all group operations then fail with ErrGroupNotConfigured, which the
// orchestrators absorb as best-effort noise.
type GroupsAdapter struct {
	config     *Config
	httpClient *http.Client
}

// NewGroupsAdapter creates a new GroupsAdapter. Passing a nil config is
// allowed and yields an unconfigured adapter.
func NewGroupsAdapter(config *Config) (*GroupsAdapter, error) {
	if config == nil {
		return &GroupsAdapter{}, nil
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &GroupsAdapter{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
	}, nil
}

// IsConfigured reports whether the platform credentials are present
func (a *GroupsAdapter) IsConfigured() bool {
	return a.config != nil
}

// CreateGroup creates a remote group with the given title
func (a *GroupsAdapter) CreateGroup(ctx context.Context, title string) (*integration.GroupInfo, error) {
	if !a.IsConfigured() {
		return nil, integration.ErrGroupNotConfigured
	}

	body, err := json.Marshal(createGroupRequest{Title: title})
	if err != nil {
		return nil, integration.NewExternalError("messaging: failed to encode request", err)
	}

	var group groupResponse
	if err := a.doRequest(ctx, http.MethodPost, "/groups", body, &group); err != nil {
		return nil, err
	}

	if group.ID == "" {
		return nil, integration.NewExternalError("messaging: group creation returned no id", nil)
	}
	return &integration.GroupInfo{
		GroupID:    group.ID,
		Title:      group.Title,
		InviteLink: group.InviteLink,
	}, nil
}

// DeleteGroup deletes a remote group
func (a *GroupsAdapter) DeleteGroup(ctx context.Context, groupID string) error {
	if !a.IsConfigured() {
		return integration.ErrGroupNotConfigured
	}
	return a.doRequest(ctx, http.MethodDelete, "/groups/"+url.PathEscape(groupID), nil, nil)
}

// GetGroupInfo returns info for a group, or ErrGroupNotFound
func (a *GroupsAdapter) GetGroupInfo(ctx context.Context, groupID string) (*integration.GroupInfo, error) {
	if !a.IsConfigured() {
		return nil, integration.ErrGroupNotConfigured
	}

	var group groupResponse
	if err := a.doRequest(ctx, http.MethodGet, "/groups/"+url.PathEscape(groupID), nil, &group); err != nil {
		return nil, err
	}
	return &integration.GroupInfo{
		GroupID:    group.ID,
		Title:      group.Title,
		InviteLink: group.InviteLink,
	}, nil
}

// doRequest performs an HTTP request against the gateway and decodes
// the JSON response into out. 404 maps to ErrGroupNotFound; every other
// failure is normalized into an ExternalService error.
func (a *GroupsAdapter) doRequest(ctx context.Context, method, path string, body []byte, out any) error {
	endpoint := strings.TrimRight(a.config.APIBaseURL, "/") + path

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return integration.NewExternalError("messaging: failed to create request", err)
	}
	req.Header.Set("Authorization", "Bearer "+a.config.BotToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return integration.NewExternalError("messaging: request failed", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return integration.NewExternalError("messaging: failed to read response", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return integration.ErrGroupNotFound
	}
	if resp.StatusCode >= 400 {
		var gwErr errorResponse
		if json.Unmarshal(respBody, &gwErr) == nil && gwErr.Message != "" {
			return integration.NewExternalError(
				fmt.Sprintf("messaging: HTTP %d (%s)", resp.StatusCode, gwErr.Code),
				errors.New(gwErr.Message),
			)
		}
		return integration.NewExternalError(fmt.Sprintf("messaging: HTTP %d", resp.StatusCode), nil)
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return integration.NewExternalError("messaging: invalid response", err)
	}
	return nil
}

// Ensure GroupsAdapter implements the GroupGateway port
var _ integration.GroupGateway = (*GroupsAdapter)(nil)
