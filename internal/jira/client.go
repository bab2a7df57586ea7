package jira

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

const apiPath = "/rest/api/3"

type client struct {
	baseURL string
	email   string
	token   string

	http *http.Client
}

func newClient(config Config) *client {
	return &client{
		baseURL: strings.TrimRight(config.BaseURL, "/") + apiPath,
		email:   config.Email,
		token:   config.APIToken,

		http: &http.Client{Timeout: config.Timeout},
	}
}

// do sends a request and returns the parsed response. Empty bodies (204)
// yield an empty result.
func (c *client) do(ctx context.Context, method, path string, body []byte) (gjson.Result, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(c.email, c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("%w: failed to read response: %w", ErrUpstream, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return gjson.Result{}, newAPIError(resp.StatusCode, strings.TrimSpace(string(data)))
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return gjson.Result{}, nil
	}
	if !gjson.ValidBytes(data) {
		return gjson.Result{}, fmt.Errorf("%w: invalid JSON response", ErrUpstream)
	}

	return gjson.ParseBytes(data), nil
}
