// Package omdb is a minimal Open Movie Database client for ratings, posters
// and the free-text awards summary.
package omdb

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

// ErrNotFound reports an OMDb "Movie not found!" answer.
var ErrNotFound = errors.New("omdb: movie not found")

// notAvailable is OMDb's marker for an empty field.
const notAvailable = "N/A"

// Movie is the subset of the OMDb title payload used for enrichment.
type Movie struct {
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Poster     string `json:"Poster"`
	IMDbRating string `json:"imdbRating"`
	IMDbID     string `json:"imdbID"`
	Awards     string `json:"Awards"`
	Response   string `json:"Response"`
	Error      string `json:"Error"`
}

// PosterURL returns the poster or "" when OMDb has none.
func (m Movie) PosterURL() string { return clean(m.Poster) }

// AwardsText returns the awards summary or "" when OMDb has none.
func (m Movie) AwardsText() string { return clean(m.Awards) }

// Rating returns the IMDb rating and whether OMDb supplied one.
func (m Movie) Rating() (float64, bool) {
	v, err := strconv.ParseFloat(clean(m.IMDbRating), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Query selects a title by IMDb ID when known, otherwise by title and year.
type Query struct {
	IMDbID string
	Title  string
	Year   int
}

// Client provides access to the OMDb API.
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

// New creates an OMDb client.
func New(apiKey, baseURL string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("omdb api key required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("omdb base url required")
	}
	client := &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Lookup fetches one title.
func (c *Client) Lookup(ctx context.Context, q Query) (*Movie, error) {
	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("type", "movie")
	switch {
	case strings.TrimSpace(q.IMDbID) != "":
		params.Set("i", strings.TrimSpace(q.IMDbID))
	case strings.TrimSpace(q.Title) != "":
		params.Set("t", strings.TrimSpace(q.Title))
		if q.Year > 0 {
			params.Set("y", strconv.Itoa(q.Year))
		}
	default:
		return nil, errors.New("omdb query needs an imdb id or title")
	}

	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse omdb url: %w", err)
	}
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return nil, fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("omdb lookup returned %d (latency=%v)", resp.StatusCode, latency)
	}

	var movie Movie
	if err := json.NewDecoder(resp.Body).Decode(&movie); err != nil {
		return nil, fmt.Errorf("decode omdb response: %w", err)
	}
	if !strings.EqualFold(movie.Response, "true") {
		if strings.Contains(strings.ToLower(movie.Error), "not found") {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("omdb error: %s", movie.Error)
	}
	return &movie, nil
}

func clean(v string) string {
	v = strings.TrimSpace(v)
	if v == notAvailable {
		return ""
	}
	return v
}
