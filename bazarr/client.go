// Package bazarr is a thin client for the Bazarr subtitle manager API.
// Bazarr publishes no OpenAPI spec, so its endpoints are hand-mapped here
// rather than cataloged.
package bazarr

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to one Bazarr instance.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates a Bazarr client. verify toggles TLS certificate checks.
func NewClient(baseURL, apiKey string, verify bool) *Client {
	transport := http.DefaultTransport
	if !verify {
		transport = &http.Transport{
			Proxy:           http.ProxyFromEnvironment,
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

// call performs a request and returns the raw JSON response. A 204 or an
// empty body maps to {"status": "success"}, matching what callers expect
// from write endpoints. Backend errors come back as an error carrying the
// status and body so they can be surfaced verbatim.
func (c *Client) call(ctx context.Context, method, path string, query url.Values, payload any) (json.RawMessage, error) {
	var bodyReader io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encoding request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("API error: %d - %s", resp.StatusCode, string(respBody))
	}

	if resp.StatusCode == http.StatusNoContent || len(respBody) == 0 {
		return json.RawMessage(`{"status": "success"}`), nil
	}

	return json.RawMessage(respBody), nil
}

func pageQuery(page, pageSize int) url.Values {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	q := url.Values{}
	q.Set("page", fmt.Sprint(page))
	q.Set("pageSize", fmt.Sprint(pageSize))
	return q
}
