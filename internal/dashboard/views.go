package dashboard

import (
	"context"
	"fmt"

	"cinelog/internal/awards"
	"cinelog/internal/catalog"
	"cinelog/internal/enrich"
	"cinelog/internal/filter"
	"cinelog/internal/match"
	"cinelog/internal/recommend"
	"cinelog/internal/session"
	"cinelog/internal/stats"
)

// DefaultTopN bounds ranked lists when the caller passes zero.
const DefaultTopN = 10

// BrowseView is one page of the filtered, ordered catalog.
type BrowseView struct {
	Entries  []catalog.Entry `json:"entries"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
	Pages    int             `json:"pages"`
	Total    int             `json:"total"`
	Catalog  int             `json:"catalog"`
	Facets   filter.FacetSet `json:"facets"`
}

// Browse filters the catalog with every criterion including search, orders
// it by the session's column or shuffle, and returns the current page. Page
// is clamped to the available pages.
func Browse(lib *Library, st *session.State) (BrowseView, error) {
	if err := st.Criteria.Validate(); err != nil {
		return BrowseView{}, fmt.Errorf("criteria: %w", err)
	}
	all := lib.Entries()
	pool := filter.Apply(all, st.Criteria)
	if st.Random {
		filter.Shuffle(pool, st.Shuffler())
	} else {
		filter.Sort(pool, st.Order)
	}

	start, end := st.Window(len(pool))
	return BrowseView{
		Entries:  pool[start:end],
		Page:     st.Page,
		PageSize: st.PageSize,
		Pages:    st.Pages(len(pool)),
		Total:    len(pool),
		Catalog:  len(all),
		Facets:   filter.Facets(all),
	}, nil
}

// GalleryView is a browse page with enrichment cards.
type GalleryView struct {
	BrowseView
	Cards []enrich.Card `json:"cards"`
}

// Gallery renders the browse page as cards. Lookups that fail show
// placeholders; the gallery itself only fails on invalid criteria.
func Gallery(ctx context.Context, lib *Library, st *session.State, svc *enrich.Service) (GalleryView, error) {
	view, err := Browse(lib, st)
	if err != nil {
		return GalleryView{}, err
	}
	if svc == nil {
		svc = enrich.New(enrich.Options{})
	}
	return GalleryView{BrowseView: view, Cards: svc.Cards(ctx, view.Entries)}, nil
}

// StatsView holds the analytics over the filtered pool.
type StatsView struct {
	Summary     stats.Summary      `json:"summary"`
	ByYear      []stats.YearCount  `json:"by_year"`
	Histogram   []stats.Bucket     `json:"rating_histogram"`
	TopGenres   []stats.GenreCount `json:"top_genres"`
	DecadeMeans []stats.DecadeMean `json:"imdb_by_decade"`
}

// Stats aggregates the pool selected by the session criteria. Free-text
// search only narrows browsing, so it is ignored here.
func Stats(lib *Library, st *session.State, topN int) (StatsView, error) {
	criteria := st.Criteria.WithoutSearch()
	if err := criteria.Validate(); err != nil {
		return StatsView{}, fmt.Errorf("criteria: %w", err)
	}
	if topN <= 0 {
		topN = DefaultTopN
	}
	pool := filter.Apply(lib.Entries(), criteria)
	return StatsView{
		Summary:     stats.Summarize(pool),
		ByYear:      stats.CountByYear(pool),
		Histogram:   stats.RatingHistogram(pool),
		TopGenres:   stats.TopGenres(pool, topN),
		DecadeMeans: stats.MeanIMDbByDecade(pool),
	}, nil
}

// CanonView reports progress through the canon list.
type CanonView struct {
	Results  []match.Result       `json:"results"`
	Progress match.ProgressReport `json:"progress"`
	Unseen   []match.Reference    `json:"unseen"`
}

// CanonProgress matches every canon title against the whole catalog.
func CanonProgress(lib *Library) CanonView {
	results := match.Resolve(lib.Canon, lib.Entries())
	return CanonView{
		Results:  results,
		Progress: match.Progress(results),
		Unseen:   match.Unseen(results),
	}
}

// AwardsQuery selects a dataset and narrows its records.
type AwardsQuery struct {
	Dataset string              `json:"dataset"`
	Filter  awards.RollupFilter `json:"filter"`
	TopN    int                 `json:"top_n"`
}

// AwardsView holds the award rollups and the catalog cross reference.
type AwardsView struct {
	Dataset    string                   `json:"dataset"`
	Records    int                      `json:"records"`
	Ceremonies []awards.CeremonyWinners `json:"ceremonies"`
	ByCategory []awards.Tally           `json:"by_category"`
	ByFilm     []awards.Tally           `json:"by_film"`
	ByPerson   []awards.Tally           `json:"by_person"`
	Films      []awards.FilmReport      `json:"films"`
	Progress   match.ProgressReport     `json:"progress"`
}

// AwardsReport rolls up the selected award dataset and reconciles its films
// with the catalog.
func AwardsReport(lib *Library, q AwardsQuery) (AwardsView, error) {
	if err := validateRange(q.Filter.CeremonyYears); err != nil {
		return AwardsView{}, err
	}
	dataset := q.Dataset
	if dataset != DatasetNominations {
		dataset = DatasetAwards
	}
	topN := q.TopN
	if topN <= 0 {
		topN = DefaultTopN
	}
	records := lib.AwardRecords(dataset)
	films := awards.CrossReference(records, q.Filter, lib.Entries())

	seen := 0
	for _, f := range films {
		if f.Seen {
			seen++
		}
	}
	return AwardsView{
		Dataset:    dataset,
		Records:    len(awards.Filter(records, q.Filter)),
		Ceremonies: awards.WinnersByCeremony(records, q.Filter),
		ByCategory: head(awards.WinsByCategory(records, q.Filter), topN),
		ByFilm:     head(awards.WinsByFilm(records, q.Filter), topN),
		ByPerson:   head(awards.WinsByPerson(records, q.Filter), topN),
		Films:      films,
		Progress:   match.ProgressOf(seen, len(films)),
	}, nil
}

// Pick draws one entry from the pool selected by the session criteria and
// sampling mode. A zero seed draws from the global source. An empty pool
// returns recommend.ErrEmptyPool.
func Pick(lib *Library, st *session.State, seed uint64) (catalog.Entry, error) {
	if err := st.Criteria.Validate(); err != nil {
		return catalog.Entry{}, fmt.Errorf("criteria: %w", err)
	}
	mode := st.Mode
	if mode == "" {
		mode = recommend.ModeAll
	}
	pool := filter.Apply(lib.Entries(), st.Criteria)
	return recommend.NewSampler(seed).Sample(pool, mode)
}

func validateRange(r *filter.IntRange) error {
	if r == nil {
		return nil
	}
	if err := (filter.Criteria{Years: r}).Validate(); err != nil {
		return fmt.Errorf("ceremony years: %w", err)
	}
	return nil
}

func head[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
