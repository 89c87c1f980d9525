package tmdb

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

// Result represents a single TMDB movie.
type Result struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title"`
	Overview      string  `json:"overview"`
	ReleaseDate   string  `json:"release_date"`
	PosterPath    string  `json:"poster_path"`
	Popularity    float64 `json:"popularity"`
	VoteAverage   float64 `json:"vote_average"`
	VoteCount     int64   `json:"vote_count"`
	IMDbID        string  `json:"imdb_id,omitempty"`
}

// Year returns the release year parsed from ReleaseDate, or 0.
func (r Result) Year() int {
	if len(r.ReleaseDate) < 4 {
		return 0
	}
	year, err := strconv.Atoi(r.ReleaseDate[:4])
	if err != nil {
		return 0
	}
	return year
}

// Response models the TMDB paginated search response.
type Response struct {
	Page         int      `json:"page"`
	Results      []Result `json:"results"`
	TotalPages   int      `json:"total_pages"`
	TotalResults int      `json:"total_results"`
}

// Provider is one streaming, rental or purchase platform.
type Provider struct {
	ID       int64  `json:"provider_id"`
	Name     string `json:"provider_name"`
	LogoPath string `json:"logo_path"`
	Priority int    `json:"display_priority"`
}

// CountryProviders lists the platforms offering a movie in one country.
type CountryProviders struct {
	Link     string     `json:"link"`
	Flatrate []Provider `json:"flatrate"`
	Rent     []Provider `json:"rent"`
	Buy      []Provider `json:"buy"`
}

// Names returns the distinct platform names, subscription first.
func (p CountryProviders) Names() []string {
	seen := map[string]struct{}{}
	var names []string
	for _, group := range [][]Provider{p.Flatrate, p.Rent, p.Buy} {
		for _, provider := range group {
			if _, ok := seen[provider.Name]; ok || provider.Name == "" {
				continue
			}
			seen[provider.Name] = struct{}{}
			names = append(names, provider.Name)
		}
	}
	return names
}

type providersResponse struct {
	ID      int64                       `json:"id"`
	Results map[string]CountryProviders `json:"results"`
}

// Video is one entry of a movie's video list.
type Video struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Site     string `json:"site"`
	Type     string `json:"type"`
	Official bool   `json:"official"`
}

type videosResponse struct {
	ID      int64   `json:"id"`
	Results []Video `json:"results"`
}

// Client provides access to the TMDB API.
type Client struct {
	apiKey       string
	baseURL      string
	imageBaseURL string
	language     string
	httpClient   *http.Client
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

// WithImageBaseURL sets the prefix used by PosterURL (including the size
// segment, e.g. https://image.tmdb.org/t/p/w500).
func WithImageBaseURL(base string) Option {
	return func(c *Client) {
		c.imageBaseURL = strings.TrimRight(strings.TrimSpace(base), "/")
	}
}

// New creates a TMDB client.
func New(apiKey, baseURL, language string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("tmdb api key required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("tmdb base url required")
	}
	client := &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		language:   strings.TrimSpace(language),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// SearchOptions contains optional parameters for TMDB movie search.
type SearchOptions struct {
	Year int `json:"year,omitempty"`
}

// SearchMovie searches TMDB for the supplied title.
func (c *Client) SearchMovie(ctx context.Context, query string) (*Response, error) {
	return c.SearchMovieWithOptions(ctx, query, SearchOptions{})
}

// SearchMovieWithOptions performs a TMDB movie search with optional filters.
func (c *Client) SearchMovieWithOptions(ctx context.Context, query string, opts SearchOptions) (*Response, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("query must not be empty")
	}
	params := url.Values{}
	params.Set("query", query)
	if opts.Year > 0 {
		params.Set("primary_release_year", strconv.Itoa(opts.Year))
	}

	var payload Response
	if err := c.get(ctx, "/search/movie", params, "tmdb search", &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// WatchProviders returns the platforms offering movieID in country (ISO
// 3166-1 alpha-2). A country without data yields an empty result.
func (c *Client) WatchProviders(ctx context.Context, movieID int64, country string) (*CountryProviders, error) {
	if movieID <= 0 {
		return nil, errors.New("movie id must be positive")
	}
	var payload providersResponse
	if err := c.get(ctx, fmt.Sprintf("/movie/%d/watch/providers", movieID), nil, "tmdb watch providers", &payload); err != nil {
		return nil, err
	}
	providers := payload.Results[strings.ToUpper(strings.TrimSpace(country))]
	return &providers, nil
}

// Videos lists trailers, teasers and clips attached to movieID.
func (c *Client) Videos(ctx context.Context, movieID int64) ([]Video, error) {
	if movieID <= 0 {
		return nil, errors.New("movie id must be positive")
	}
	var payload videosResponse
	if err := c.get(ctx, fmt.Sprintf("/movie/%d/videos", movieID), nil, "tmdb videos", &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

// PosterURL turns a poster_path into an absolute image URL, or "" when the
// path or image base is unknown.
func (c *Client) PosterURL(posterPath string) string {
	posterPath = strings.TrimSpace(posterPath)
	if posterPath == "" || c.imageBaseURL == "" {
		return ""
	}
	if !strings.HasPrefix(posterPath, "/") {
		posterPath = "/" + posterPath
	}
	return c.imageBaseURL + posterPath
}

func (c *Client) get(ctx context.Context, path string, params url.Values, label string, out any) error {
	endpoint, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("parse tmdb url: %w", err)
	}
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	if c.language != "" {
		params.Set("language", c.language)
	}
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned %d (latency=%v)", label, resp.StatusCode, latency)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", label, err)
	}
	return nil
}
