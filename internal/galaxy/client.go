// SPDX-License-Identifier: MIT

// Package galaxy talks to the Galaxy nglims REST API for sequencing run
// information.
package galaxy

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"
)

// Client is an authenticated Galaxy API client. Login state is kept in a
// cookie jar, so a client is bound to one Galaxy user session.
type Client struct {
	base string
	http *http.Client
}

// New creates a client for the Galaxy instance at base.
func New(base string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: 30 * time.Second, Jar: jar},
	}, nil
}

// Login authenticates against the Galaxy user endpoint and stores the
// session cookie for subsequent calls.
func (c *Client) Login(ctx context.Context, user, password string) error {
	form := url.Values{
		"email":        {user},
		"password":     {password},
		"login_button": {"Login"},
	}
	res, err := c.postForm(ctx, "/user/login", form)
	if err != nil {
		return fmt.Errorf("galaxy login: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return fmt.Errorf("galaxy login: unexpected status %d", res.StatusCode)
	}
	return nil
}

// RunDetails retrieves sequencing run details for the named run.
func (c *Client) RunDetails(ctx context.Context, run string) (map[string]any, error) {
	form := url.Values{"run": {run}}
	res, err := c.postForm(ctx, "/nglims/api_run_details", form)
	if err != nil {
		return nil, fmt.Errorf("galaxy run details: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("galaxy run details: unexpected status %d", res.StatusCode)
	}

	var payload struct {
		Error   string         `json:"error"`
		Details map[string]any `json:"details"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("galaxy run details: decode: %w", err)
	}
	if payload.Error != "" {
		return nil, fmt.Errorf("galaxy run details for %q: %s", run, payload.Error)
	}
	return payload.Details, nil
}

func (c *Client) postForm(ctx context.Context, path string, form url.Values) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.http.Do(req)
}
