package dashboard

import (
	"context"
	"log/slog"
	"os"
	"time"

	"cinelog/internal/awards"
	"cinelog/internal/catalog"
	"cinelog/internal/config"
	"cinelog/internal/logging"
	"cinelog/internal/match"
	"cinelog/internal/memo"
)

// Sources names the files a Library is built from. Empty award paths are
// skipped.
type Sources struct {
	Catalog     string
	Awards      string
	Nominations string
}

// SourcesFromConfig reads the catalog section of cfg.
func SourcesFromConfig(cfg *config.Config) Sources {
	if cfg == nil {
		return Sources{}
	}
	return Sources{
		Catalog:     cfg.Catalog.Path,
		Awards:      cfg.Catalog.AwardsPath,
		Nominations: cfg.Catalog.NominationsPath,
	}
}

// Library is the loaded, read-only data every view works from.
type Library struct {
	Catalog     *catalog.Catalog
	Awards      *awards.Dataset
	Nominations *awards.Dataset
	Canon       []match.Reference
}

// Entries returns the catalog entries, or nil for an empty library.
func (l *Library) Entries() []catalog.Entry {
	if l == nil || l.Catalog == nil {
		return nil
	}
	return l.Catalog.Entries
}

// AwardRecords returns the records of the named dataset: "nominations" or
// anything else for the ceremony dataset.
func (l *Library) AwardRecords(dataset string) []awards.Record {
	if l == nil {
		return nil
	}
	ds := l.Awards
	if dataset == DatasetNominations {
		ds = l.Nominations
	}
	if ds == nil {
		return nil
	}
	return ds.Records
}

// Award dataset names accepted by AwardRecords.
const (
	DatasetAwards      = "awards"
	DatasetNominations = "nominations"
)

// Loader builds libraries and memoizes parsed tables by file content.
type Loader struct {
	catalogs memo.Cache[*catalog.Catalog]
	datasets memo.Cache[*awards.Dataset]
	logger   *slog.Logger
}

// NewLoader creates a loader.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Loader{logger: logger}
}

// Load reads every source. The catalog is required; a missing or malformed
// award file fails the load like the catalog does.
func (l *Loader) Load(ctx context.Context, src Sources) (*Library, error) {
	start := time.Now()
	logger := logging.WithContext(ctx, l.logger)

	data, err := os.ReadFile(src.Catalog)
	if err != nil {
		return nil, &catalog.LoadError{Source: src.Catalog, Err: err}
	}
	cat, err := l.catalogs.Get(src.Catalog, data, func(b []byte) (*catalog.Catalog, error) {
		return catalog.Parse(b, src.Catalog)
	})
	if err != nil {
		return nil, err
	}

	lib := &Library{Catalog: cat, Canon: match.Canon()}
	if lib.Awards, err = l.dataset(src.Awards); err != nil {
		return nil, err
	}
	if lib.Nominations, err = l.dataset(src.Nominations); err != nil {
		return nil, err
	}

	hits, misses := l.catalogs.Stats()
	logger.Debug("library loaded",
		logging.Int("entries", cat.Len()),
		logging.Int("skipped_rows", cat.Skipped),
		logging.Int("award_records", len(lib.AwardRecords(DatasetAwards))),
		logging.Int("nomination_records", len(lib.AwardRecords(DatasetNominations))),
		logging.Int("memo_hits", hits),
		logging.Int("memo_misses", misses),
		logging.Duration("elapsed", time.Since(start)))
	if cat.Skipped > 0 {
		logging.WarnWithContext(logger, "catalog rows skipped", "catalog_rows_skipped",
			logging.Int("skipped_rows", cat.Skipped),
			logging.String("source", src.Catalog),
			logging.String(logging.FieldErrorHint, "rows without a title are ignored; check the export"),
			logging.String(logging.FieldImpact, "those rows do not appear in any view"))
	}
	return lib, nil
}

func (l *Loader) dataset(path string) (*awards.Dataset, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &awards.LoadError{Source: path, Err: err}
	}
	ds, err := l.datasets.Get(path, data, func(b []byte) (*awards.Dataset, error) {
		return awards.Parse(b, path)
	})
	if err != nil {
		return nil, err
	}
	return ds, nil
}
