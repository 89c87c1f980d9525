// Package youtube looks up trailers through the YouTube Data API search
// endpoint.
package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// WatchURL builds the public watch URL for a video ID.
func WatchURL(videoID string) string {
	videoID = strings.TrimSpace(videoID)
	if videoID == "" {
		return ""
	}
	return "https://www.youtube.com/watch?v=" + url.QueryEscape(videoID)
}

// Video is one search hit.
type Video struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	ChannelTitle string `json:"channel_title"`
}

// URL returns the watch URL of the video.
func (v Video) URL() string { return WatchURL(v.ID) }

type searchResponse struct {
	Items []struct {
		ID struct {
			Kind    string `json:"kind"`
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			ChannelTitle string `json:"channelTitle"`
		} `json:"snippet"`
	} `json:"items"`
}

// Client provides access to the YouTube Data API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// New creates a YouTube client.
func New(apiKey, baseURL string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("youtube api key required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("youtube base url required")
	}
	client := &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// FindTrailer searches for "<title> <year> trailer" and returns the first
// video hit. ok is false when the search returned no videos.
func (c *Client) FindTrailer(ctx context.Context, title string, year int) (Video, bool, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Video{}, false, errors.New("title must not be empty")
	}
	query := title
	if year > 0 {
		query += " " + strconv.Itoa(year)
	}
	query += " trailer"

	endpoint, err := url.Parse(c.baseURL + "/search")
	if err != nil {
		return Video{}, false, fmt.Errorf("parse youtube url: %w", err)
	}
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("part", "snippet")
	params.Set("type", "video")
	params.Set("maxResults", "1")
	params.Set("q", query)
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return Video{}, false, fmt.Errorf("build request: %w", err)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return Video{}, false, fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Video{}, false, fmt.Errorf("youtube search returned %d (latency=%v)", resp.StatusCode, latency)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Video{}, false, fmt.Errorf("decode youtube response: %w", err)
	}
	for _, item := range payload.Items {
		if item.ID.VideoID == "" {
			continue
		}
		return Video{ID: item.ID.VideoID, Title: item.Snippet.Title, ChannelTitle: item.Snippet.ChannelTitle}, true, nil
	}
	return Video{}, false, nil
}
