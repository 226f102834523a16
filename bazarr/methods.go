package bazarr

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// Series returns the series managed by Bazarr, paginated.
func (c *Client) Series(ctx context.Context, page, pageSize int) (json.RawMessage, error) {
	return c.call(ctx, "GET", "/api/series", pageQuery(page, pageSize), nil)
}

// SeriesSubtitles returns subtitle information for one series.
func (c *Client) SeriesSubtitles(ctx context.Context, seriesID int) (json.RawMessage, error) {
	return c.call(ctx, "GET", fmt.Sprintf("/api/series/%d", seriesID), nil, nil)
}

// EpisodeSubtitles returns subtitle information for one episode.
func (c *Client) EpisodeSubtitles(ctx context.Context, episodeID int) (json.RawMessage, error) {
	return c.call(ctx, "GET", fmt.Sprintf("/api/episodes/%d", episodeID), nil, nil)
}

// SearchSeriesSubtitles triggers a subtitle search for a series, or for a
// single episode when episodeID is non-zero.
func (c *Client) SearchSeriesSubtitles(ctx context.Context, seriesID, episodeID int) (json.RawMessage, error) {
	if episodeID != 0 {
		return c.call(ctx, "POST", "/api/episodes/search", nil, map[string]any{"episodeId": episodeID})
	}
	return c.call(ctx, "POST", "/api/series/search", nil, map[string]any{"seriesId": seriesID})
}

// DownloadSeriesSubtitle downloads a subtitle for an episode.
func (c *Client) DownloadSeriesSubtitle(ctx context.Context, req DownloadEpisodeSubtitle) (json.RawMessage, error) {
	return c.call(ctx, "POST", "/api/episodes/subtitles", nil, req)
}

// Movies returns the movies managed by Bazarr, paginated.
func (c *Client) Movies(ctx context.Context, page, pageSize int) (json.RawMessage, error) {
	return c.call(ctx, "GET", "/api/movies", pageQuery(page, pageSize), nil)
}

// MovieSubtitles returns subtitle information for one movie.
func (c *Client) MovieSubtitles(ctx context.Context, movieID int) (json.RawMessage, error) {
	return c.call(ctx, "GET", fmt.Sprintf("/api/movies/%d", movieID), nil, nil)
}

// SearchMovieSubtitles triggers a subtitle search for a movie.
func (c *Client) SearchMovieSubtitles(ctx context.Context, movieID int) (json.RawMessage, error) {
	return c.call(ctx, "POST", "/api/movies/search", nil, map[string]any{"movieId": movieID})
}

// DownloadMovieSubtitle downloads a subtitle for a movie.
func (c *Client) DownloadMovieSubtitle(ctx context.Context, req DownloadMovieSubtitle) (json.RawMessage, error) {
	return c.call(ctx, "POST", "/api/movies/subtitles", nil, req)
}

// History returns the subtitle download history, paginated.
func (c *Client) History(ctx context.Context, page, pageSize int) (json.RawMessage, error) {
	return c.call(ctx, "GET", "/api/history", pageQuery(page, pageSize), nil)
}

// SystemStatus returns Bazarr system status.
func (c *Client) SystemStatus(ctx context.Context) (json.RawMessage, error) {
	return c.call(ctx, "GET", "/api/system/status", nil, nil)
}

// SystemHealth returns system health issues.
func (c *Client) SystemHealth(ctx context.Context) (json.RawMessage, error) {
	return c.call(ctx, "GET", "/api/system/health", nil, nil)
}

// SystemLogs returns the most recent log lines.
func (c *Client) SystemLogs(ctx context.Context, lines int) (json.RawMessage, error) {
	if lines <= 0 {
		lines = 50
	}
	q := url.Values{}
	q.Set("lines", fmt.Sprint(lines))
	return c.call(ctx, "GET", "/api/system/logs", q, nil)
}

// WantedSeries returns episodes with wanted/missing subtitles, paginated.
func (c *Client) WantedSeries(ctx context.Context, page, pageSize int) (json.RawMessage, error) {
	return c.call(ctx, "GET", "/api/episodes/wanted", pageQuery(page, pageSize), nil)
}

// WantedMovies returns movies with wanted/missing subtitles, paginated.
func (c *Client) WantedMovies(ctx context.Context, page, pageSize int) (json.RawMessage, error) {
	return c.call(ctx, "GET", "/api/movies/wanted", pageQuery(page, pageSize), nil)
}

// Languages returns all available subtitle languages.
func (c *Client) Languages(ctx context.Context) (json.RawMessage, error) {
	return c.call(ctx, "GET", "/api/languages", nil, nil)
}

// Providers returns all subtitle providers.
func (c *Client) Providers(ctx context.Context) (json.RawMessage, error) {
	return c.call(ctx, "GET", "/api/providers", nil, nil)
}
