package config

const (
	defaultConfigPath             = "~/.config/cinelog/config.toml"
	defaultDataDir                = "~/.local/share/cinelog"
	defaultLogDir                 = "~/.local/share/cinelog/logs"
	defaultSessionDir             = "~/.local/share/cinelog/sessions"
	defaultCacheDB                = "~/.cache/cinelog/lookups.db"
	defaultCatalogPath            = "~/.local/share/cinelog/ratings.csv"
	defaultPageSize               = 12
	defaultCountry                = "US"
	defaultTMDBBaseURL            = "https://api.themoviedb.org/3"
	defaultTMDBImageBaseURL       = "https://image.tmdb.org/t/p/w500"
	defaultTMDBLanguage           = "en-US"
	defaultOMDBBaseURL            = "https://www.omdbapi.com/"
	defaultYouTubeBaseURL         = "https://www.googleapis.com/youtube/v3"
	defaultEnrichmentTimeout      = 8
	defaultRequestsPerSecond      = 4
	defaultBreakerFailures        = 3
	defaultBreakerCooldownSeconds = 60
	defaultLogFormat              = "console"
	defaultLogLevel               = "info"
	maxPageSize                   = 200
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:    defaultDataDir,
			LogDir:     defaultLogDir,
			SessionDir: defaultSessionDir,
			CacheDB:    defaultCacheDB,
		},
		Catalog: Catalog{
			Path:     defaultCatalogPath,
			PageSize: defaultPageSize,
			Country:  defaultCountry,
		},
		TMDB: TMDB{
			BaseURL:      defaultTMDBBaseURL,
			ImageBaseURL: defaultTMDBImageBaseURL,
			Language:     defaultTMDBLanguage,
		},
		OMDB: OMDB{
			BaseURL: defaultOMDBBaseURL,
		},
		YouTube: YouTube{
			BaseURL: defaultYouTubeBaseURL,
		},
		Enrichment: Enrichment{
			Enabled:                true,
			TimeoutSeconds:         defaultEnrichmentTimeout,
			RequestsPerSecond:      defaultRequestsPerSecond,
			BreakerFailures:        defaultBreakerFailures,
			BreakerCooldownSeconds: defaultBreakerCooldownSeconds,
			ScrapePosters:          true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
