// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// apiClient is a thin REST client for the service's /api/v0 surface. The
// impersonated identity from --user-id is attached via the same header the
// identity middleware reads server side.
type apiClient struct {
	endpoint string
	client   *http.Client
}

func newAPIClient(endpoint string) *apiClient {
	if !strings.HasPrefix(endpoint, "http") {
		endpoint = "http://" + endpoint
	}
	// remove trailing slash
	endpoint = strings.TrimSuffix(endpoint, "/")

	return &apiClient{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// envelope mirrors the response wrapper every handler writes.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Status  int             `json:"status"`
}

func (c *apiClient) do(ctx context.Context, method, path string, body, out any) (string, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return "", fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, reader)
	if err != nil {
		return "", err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set("X-Kratos-Authenticated-Identity-Id", userID)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return "", fmt.Errorf("api error (status %d): %s", resp.StatusCode, string(raw))
	}

	// Error responses may still carry a payload, e.g. an invitation whose
	// delivery failed. Decode it before reporting the failure.
	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return env.Message, fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}

	if resp.StatusCode >= 400 {
		return env.Message, fmt.Errorf("api error (status %d): %s", resp.StatusCode, env.Message)
	}
	return env.Message, nil
}

func (c *apiClient) get(ctx context.Context, path string, out any) error {
	_, err := c.do(ctx, http.MethodGet, path, nil, out)
	return err
}

func (c *apiClient) post(ctx context.Context, path string, body, out any) (string, error) {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *apiClient) put(ctx context.Context, path string, body any) (string, error) {
	return c.do(ctx, http.MethodPut, path, body, nil)
}

func (c *apiClient) delete(ctx context.Context, path string) (string, error) {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
