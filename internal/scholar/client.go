// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// scholarBaseURL is the Scholar search endpoint. Declared as a var so tests
// can substitute an httptest server.
var scholarBaseURL = "https://scholar.google.com/scholar"

// DefaultUserAgent mimics a desktop browser. Scholar rejects obviously
// programmatic agents outright.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Client performs Scholar lookups.
type Client struct {
	HTTP      *http.Client
	UserAgent string
}

// NewClient returns a Client with the given timeout-bearing HTTP client.
// An empty userAgent falls back to DefaultUserAgent.
func NewClient(httpClient *http.Client, userAgent string) *Client {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Client{HTTP: httpClient, UserAgent: userAgent}
}

// Lookup issues one GET for the query and classifies the response. It never
// returns a Go error: transport failures are folded into the Outcome so the
// caller's loop treats every lookup uniformly. One request per call, no
// retries.
func (c *Client) Lookup(ctx context.Context, query string) Outcome {
	reqURL := scholarBaseURL + "?q=" + url.QueryEscape(query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Outcome{Status: StatusNetworkError, Detail: fmt.Sprintf("Network error: %v", err)}
	}
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return Outcome{Status: StatusNetworkError, Detail: fmt.Sprintf("Network error: %v", err)}
	}
	defer resp.Body.Close()

	return Classify(resp.StatusCode, resp.Body)
}
