package seerr

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// Status returns Seerr version and update status.
func (c *Client) Status(ctx context.Context) (json.RawMessage, error) {
	return c.call(ctx, "GET", "/api/v1/status", nil, nil)
}

// StatusAppData returns application data volume status.
func (c *Client) StatusAppData(ctx context.Context) (json.RawMessage, error) {
	return c.call(ctx, "GET", "/api/v1/status/appdata", nil, nil)
}

// AuthMe returns the logged-in user for the supplied API key.
func (c *Client) AuthMe(ctx context.Context) (json.RawMessage, error) {
	return c.call(ctx, "GET", "/api/v1/auth/me", nil, nil)
}

// CreateRequest files a new media request.
func (c *Client) CreateRequest(ctx context.Context, req MediaRequest) (json.RawMessage, error) {
	return c.call(ctx, "POST", "/api/v1/request", nil, req)
}

// Requests lists media requests with paging, filter, and sort options.
func (c *Client) Requests(ctx context.Context, f RequestFilter) (json.RawMessage, error) {
	if f.Take <= 0 {
		f.Take = 20
	}
	if f.Sort == "" {
		f.Sort = "added"
	}
	q := url.Values{}
	q.Set("take", fmt.Sprint(f.Take))
	q.Set("skip", fmt.Sprint(f.Skip))
	q.Set("sort", f.Sort)
	if f.Filter != "" {
		q.Set("filter", f.Filter)
	}
	return c.call(ctx, "GET", "/api/v1/request", q, nil)
}

// Request returns one request by ID.
func (c *Client) Request(ctx context.Context, requestID int) (json.RawMessage, error) {
	return c.call(ctx, "GET", fmt.Sprintf("/api/v1/request/%d", requestID), nil, nil)
}

// UpdateRequest modifies an existing request.
func (c *Client) UpdateRequest(ctx context.Context, requestID int, upd RequestUpdate) (json.RawMessage, error) {
	return c.call(ctx, "PUT", fmt.Sprintf("/api/v1/request/%d", requestID), nil, upd)
}

// DeleteRequest removes a request.
func (c *Client) DeleteRequest(ctx context.Context, requestID int) (json.RawMessage, error) {
	return c.call(ctx, "DELETE", fmt.Sprintf("/api/v1/request/%d", requestID), nil, nil)
}

// ApproveRequest approves a pending request.
func (c *Client) ApproveRequest(ctx context.Context, requestID int) (json.RawMessage, error) {
	return c.call(ctx, "POST", fmt.Sprintf("/api/v1/request/%d/approve", requestID), nil, nil)
}

// DeclineRequest declines a pending request.
func (c *Client) DeclineRequest(ctx context.Context, requestID int) (json.RawMessage, error) {
	return c.call(ctx, "POST", fmt.Sprintf("/api/v1/request/%d/decline", requestID), nil, nil)
}

// Movie returns movie details by TMDB ID.
func (c *Client) Movie(ctx context.Context, movieID int) (json.RawMessage, error) {
	return c.call(ctx, "GET", fmt.Sprintf("/api/v1/movie/%d", movieID), nil, nil)
}

// TV returns TV series details by TMDB ID.
func (c *Client) TV(ctx context.Context, tvID int) (json.RawMessage, error) {
	return c.call(ctx, "GET", fmt.Sprintf("/api/v1/tv/%d", tvID), nil, nil)
}

// Search finds movies, TV shows, and people.
func (c *Client) Search(ctx context.Context, query string, page int, language string) (json.RawMessage, error) {
	if page <= 0 {
		page = 1
	}
	if language == "" {
		language = "en"
	}
	q := url.Values{}
	q.Set("query", query)
	q.Set("page", fmt.Sprint(page))
	q.Set("language", language)
	return c.call(ctx, "GET", "/api/v1/search", q, nil)
}

// Users lists Seerr users.
func (c *Client) Users(ctx context.Context, take, skip int, sort string) (json.RawMessage, error) {
	if take <= 0 {
		take = 20
	}
	if sort == "" {
		sort = "created"
	}
	q := url.Values{}
	q.Set("take", fmt.Sprint(take))
	q.Set("skip", fmt.Sprint(skip))
	q.Set("sort", sort)
	return c.call(ctx, "GET", "/api/v1/user", q, nil)
}

// User returns one user by ID.
func (c *Client) User(ctx context.Context, userID int) (json.RawMessage, error) {
	return c.call(ctx, "GET", fmt.Sprintf("/api/v1/user/%d", userID), nil, nil)
}
