package enrich

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"cinelog/internal/catalog"
	"cinelog/internal/config"
	"cinelog/internal/enrich/omdb"
	"cinelog/internal/enrich/pagemeta"
	"cinelog/internal/enrich/tmdb"
	"cinelog/internal/enrich/youtube"
	"cinelog/internal/logging"
	"cinelog/internal/store"
	"cinelog/internal/textutil"
)

// MovieSearcher is the TMDB surface used for posters, providers and videos.
type MovieSearcher interface {
	SearchMovieWithOptions(ctx context.Context, query string, opts tmdb.SearchOptions) (*tmdb.Response, error)
	WatchProviders(ctx context.Context, movieID int64, country string) (*tmdb.CountryProviders, error)
	Videos(ctx context.Context, movieID int64) ([]tmdb.Video, error)
	PosterURL(posterPath string) string
}

// TitleLooker is the OMDB surface used for posters and award summaries.
type TitleLooker interface {
	Lookup(ctx context.Context, q omdb.Query) (*omdb.Movie, error)
}

// TrailerFinder is the YouTube surface used for trailers.
type TrailerFinder interface {
	FindTrailer(ctx context.Context, title string, year int) (youtube.Video, bool, error)
}

// Options configures a Service. Nil collaborators are skipped; a nil Pages
// client disables the og:image poster fallback.
type Options struct {
	TMDB    MovieSearcher
	OMDB    TitleLooker
	YouTube TrailerFinder
	Pages   *http.Client
	Cache   *store.Store
	Country string
	Limits  Limits
	Logger  *slog.Logger
}

// Service resolves enrichment for catalog entries.
type Service struct {
	tmdb    MovieSearcher
	omdb    TitleLooker
	youtube TrailerFinder
	pages   *http.Client
	cache   *store.Store
	country string
	logger  *slog.Logger

	tmdbGuard    *guard
	omdbGuard    *guard
	youtubeGuard *guard
	pageGuard    *guard

	omdbMu      sync.Mutex
	omdbAnswers map[string]omdbAnswer
}

// omdbAnswer is one OMDB reply shared by the poster and awards lookups.
type omdbAnswer struct {
	movie *omdb.Movie
	found bool
}

// New builds a Service from explicit collaborators.
func New(opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	country := strings.ToUpper(strings.TrimSpace(opts.Country))
	if country == "" {
		country = "US"
	}
	svc := &Service{
		tmdb:    opts.TMDB,
		omdb:    opts.OMDB,
		youtube: opts.YouTube,
		pages:   opts.Pages,
		cache:   opts.Cache,
		country: country,
		logger:  logger,
	}
	if svc.tmdb != nil {
		svc.tmdbGuard = newGuard(ProviderTMDB, opts.Limits, logger)
	}
	if svc.omdb != nil {
		svc.omdbGuard = newGuard(ProviderOMDB, opts.Limits, logger, omdb.ErrNotFound)
		svc.omdbAnswers = make(map[string]omdbAnswer)
	}
	if svc.youtube != nil {
		svc.youtubeGuard = newGuard(ProviderYouTube, opts.Limits, logger)
	}
	if svc.pages != nil {
		svc.pageGuard = newGuard(ProviderPage, opts.Limits, logger)
	}
	return svc
}

// NewFromConfig builds a Service with clients for every provider that has
// credentials. With enrichment disabled the Service only builds review links
// and placeholders.
func NewFromConfig(cfg *config.Config, cache *store.Store, logger *slog.Logger) (*Service, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	opts := Options{
		Cache:   cache,
		Country: cfg.Catalog.Country,
		Logger:  logger,
		Limits: Limits{
			Timeout:           cfg.EnrichmentTimeout(),
			RequestsPerSecond: cfg.Enrichment.RequestsPerSecond,
			BreakerFailures:   uint32(max(cfg.Enrichment.BreakerFailures, 0)),
			BreakerCooldown:   cfg.BreakerCooldown(),
		},
	}
	if !cfg.Enrichment.Enabled {
		return New(opts), nil
	}

	httpClient := &http.Client{Timeout: cfg.EnrichmentTimeout()}
	if cfg.HasTMDB() {
		client, err := tmdb.New(cfg.TMDB.APIKey, cfg.TMDB.BaseURL, cfg.TMDB.Language,
			tmdb.WithHTTPClient(httpClient),
			tmdb.WithImageBaseURL(cfg.TMDB.ImageBaseURL))
		if err != nil {
			return nil, fmt.Errorf("tmdb client: %w", err)
		}
		opts.TMDB = client
	}
	if cfg.HasOMDB() {
		client, err := omdb.New(cfg.OMDB.APIKey, cfg.OMDB.BaseURL, omdb.WithHTTPClient(httpClient))
		if err != nil {
			return nil, fmt.Errorf("omdb client: %w", err)
		}
		opts.OMDB = client
	}
	if cfg.HasYouTube() {
		client, err := youtube.New(cfg.YouTube.APIKey, cfg.YouTube.BaseURL, youtube.WithHTTPClient(httpClient))
		if err != nil {
			return nil, fmt.Errorf("youtube client: %w", err)
		}
		opts.YouTube = client
	}
	if cfg.Enrichment.ScrapePosters {
		opts.Pages = httpClient
	}
	return New(opts), nil
}

// Status reports each provider's breaker state.
func (s *Service) Status() map[string]string {
	return map[string]string{
		ProviderTMDB:    s.tmdbGuard.state(),
		ProviderOMDB:    s.omdbGuard.state(),
		ProviderYouTube: s.youtubeGuard.state(),
		ProviderPage:    s.pageGuard.state(),
	}
}

// Poster returns the entry's poster, trying TMDB, then OMDB, then the page
// metadata of the entry URL.
func (s *Service) Poster(ctx context.Context, e catalog.Entry) Poster {
	if s.tmdb == nil && s.omdb == nil && (s.pages == nil || e.URL == "") {
		return Poster{}
	}
	poster, _ := remember(ctx, s, store.KindPoster, e, func(ctx context.Context) (Poster, bool, error) {
		var (
			poster Poster
			errs   []error
		)
		if s.tmdb != nil {
			result, err := s.searchTMDB(ctx, e)
			switch {
			case err != nil:
				errs = append(errs, err)
			case result != nil:
				poster.TMDBID = result.ID
				if result.VoteCount > 0 {
					rating := result.VoteAverage
					poster.Rating = &rating
				}
				if result.PosterPath != "" {
					poster.URL = s.tmdb.PosterURL(result.PosterPath)
					poster.Source = SourceTMDB
					return poster, true, nil
				}
			}
		}
		if s.omdb != nil {
			movie, ok, err := s.lookupOMDB(ctx, e)
			switch {
			case err != nil:
				errs = append(errs, err)
			case ok:
				if poster.Rating == nil {
					if rating, ok := movie.Rating(); ok {
						poster.Rating = &rating
					}
				}
				if movie.PosterURL() != "" {
					poster.URL = movie.PosterURL()
					poster.Source = SourceOMDB
					return poster, true, nil
				}
			}
		}
		if s.pages != nil && e.URL != "" {
			var meta pagemeta.Meta
			err := s.pageGuard.do(ctx, func(ctx context.Context) error {
				body, err := pagemeta.Fetch(ctx, s.pages, e.URL)
				if err != nil {
					return err
				}
				meta, err = pagemeta.Parse(body, e.URL)
				return err
			})
			switch {
			case err != nil:
				errs = append(errs, err)
			case meta.Image != "":
				poster.URL = meta.Image
				poster.Source = SourcePage
				return poster, true, nil
			}
		}
		return poster, poster.TMDBID != 0 || poster.Rating != nil, errors.Join(errs...)
	})
	return poster
}

// Providers returns where the entry streams in the configured country.
func (s *Service) Providers(ctx context.Context, e catalog.Entry) Providers {
	empty := Providers{Country: s.country}
	if s.tmdb == nil {
		return empty
	}
	id := s.Poster(ctx, e).TMDBID
	if id == 0 {
		return empty
	}
	providers, found := remember(ctx, s, store.KindProviders, e, func(ctx context.Context) (Providers, bool, error) {
		var result *tmdb.CountryProviders
		err := s.tmdbGuard.do(ctx, func(ctx context.Context) error {
			var err error
			result, err = s.tmdb.WatchProviders(ctx, id, s.country)
			return err
		})
		if err != nil {
			return Providers{}, false, err
		}
		if result == nil {
			return Providers{Country: s.country}, false, nil
		}
		names := result.Names()
		return Providers{Country: s.country, Platforms: names, Link: result.Link}, len(names) > 0, nil
	})
	if !found {
		return empty
	}
	return providers
}

// Trailer returns a trailer URL, or "" when none is known.
func (s *Service) Trailer(ctx context.Context, e catalog.Entry) string {
	if s.youtube == nil && s.tmdb == nil {
		return ""
	}
	trailer, _ := remember(ctx, s, store.KindTrailer, e, func(ctx context.Context) (string, bool, error) {
		var errs []error
		year, _ := e.YearValue()
		if s.youtube != nil {
			var (
				video youtube.Video
				ok    bool
			)
			err := s.youtubeGuard.do(ctx, func(ctx context.Context) error {
				var err error
				video, ok, err = s.youtube.FindTrailer(ctx, e.Title, year)
				return err
			})
			switch {
			case err != nil:
				errs = append(errs, err)
			case ok:
				return video.URL(), true, nil
			}
		}
		if s.tmdb != nil {
			if id := s.Poster(ctx, e).TMDBID; id != 0 {
				var videos []tmdb.Video
				err := s.tmdbGuard.do(ctx, func(ctx context.Context) error {
					var err error
					videos, err = s.tmdb.Videos(ctx, id)
					return err
				})
				if err != nil {
					errs = append(errs, err)
				} else if key := pickTrailer(videos); key != "" {
					return youtube.WatchURL(key), true, nil
				}
			}
		}
		return "", false, errors.Join(errs...)
	})
	return trailer
}

// AwardsText returns the OMDB award summary, or Placeholder.
func (s *Service) AwardsText(ctx context.Context, e catalog.Entry) string {
	if s.omdb == nil {
		return Placeholder
	}
	text, found := remember(ctx, s, store.KindAwards, e, func(ctx context.Context) (string, bool, error) {
		movie, ok, err := s.lookupOMDB(ctx, e)
		if err != nil || !ok {
			return "", false, err
		}
		text := movie.AwardsText()
		return text, text != "", nil
	})
	if !found || text == "" {
		return Placeholder
	}
	return text
}

// lookupOMDB asks OMDB about e once per Service. ok is false when OMDB has no
// such title; failures are returned and not remembered.
func (s *Service) lookupOMDB(ctx context.Context, e catalog.Entry) (*omdb.Movie, bool, error) {
	key := LookupKey(e)
	s.omdbMu.Lock()
	answer, seen := s.omdbAnswers[key]
	s.omdbMu.Unlock()
	if seen {
		return answer.movie, answer.found, nil
	}

	var movie *omdb.Movie
	err := s.omdbGuard.do(ctx, func(ctx context.Context) error {
		var err error
		movie, err = s.omdb.Lookup(ctx, omdbQuery(e))
		return err
	})
	switch {
	case errors.Is(err, omdb.ErrNotFound):
		answer = omdbAnswer{}
	case err != nil:
		return nil, false, err
	default:
		answer = omdbAnswer{movie: movie, found: movie != nil}
	}
	s.omdbMu.Lock()
	s.omdbAnswers[key] = answer
	s.omdbMu.Unlock()
	return answer.movie, answer.found, nil
}

// ReviewLink builds a link to reviews of the entry. It never calls out.
func ReviewLink(e catalog.Entry) string {
	if id := strings.TrimSpace(e.Const); id != "" {
		return "https://www.imdb.com/title/" + url.PathEscape(id) + "/reviews"
	}
	query := strings.TrimSpace(e.Title)
	if year, ok := e.YearValue(); ok {
		query += fmt.Sprintf(" %d", year)
	}
	return "https://www.google.com/search?q=" + url.QueryEscape(query+" review")
}

// ReviewLink builds a link to reviews of the entry.
func (s *Service) ReviewLink(e catalog.Entry) string {
	return ReviewLink(e)
}

// Card resolves every enrichment for one entry.
func (s *Service) Card(ctx context.Context, e catalog.Entry) Card {
	return Card{
		Entry:      e,
		Poster:     s.Poster(ctx, e),
		Providers:  s.Providers(ctx, e),
		TrailerURL: s.Trailer(ctx, e),
		AwardsText: s.AwardsText(ctx, e),
		ReviewURL:  ReviewLink(e),
	}
}

// Cards resolves a page of entries concurrently, preserving order.
func (s *Service) Cards(ctx context.Context, entries []catalog.Entry) []Card {
	cards := make([]Card, len(entries))
	var wg sync.WaitGroup
	for i := range entries {
		wg.Go(func() {
			cards[i] = s.Card(ctx, entries[i])
		})
	}
	wg.Wait()
	return cards
}

func (s *Service) searchTMDB(ctx context.Context, e catalog.Entry) (*tmdb.Result, error) {
	var opts tmdb.SearchOptions
	if year, ok := e.YearValue(); ok {
		opts.Year = year
	}
	var response *tmdb.Response
	err := s.tmdbGuard.do(ctx, func(ctx context.Context) error {
		var err error
		response, err = s.tmdb.SearchMovieWithOptions(ctx, e.Title, opts)
		return err
	})
	if err != nil {
		return nil, err
	}
	if response == nil || len(response.Results) == 0 {
		return nil, nil
	}
	best := response.Results[0]
	return &best, nil
}

func omdbQuery(e catalog.Entry) omdb.Query {
	q := omdb.Query{IMDbID: e.Const, Title: e.Title}
	if year, ok := e.YearValue(); ok {
		q.Year = year
	}
	return q
}

// pickTrailer prefers an official YouTube trailer, then any YouTube trailer.
func pickTrailer(videos []tmdb.Video) string {
	var fallback string
	for _, v := range videos {
		if !strings.EqualFold(v.Site, "YouTube") || !strings.EqualFold(v.Type, "Trailer") || v.Key == "" {
			continue
		}
		if v.Official {
			return v.Key
		}
		if fallback == "" {
			fallback = v.Key
		}
	}
	return fallback
}

func normalize(title string) string {
	return textutil.NormalizeTitle(title)
}
