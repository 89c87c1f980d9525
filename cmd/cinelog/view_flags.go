package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cinelog/internal/dashboard"
	"cinelog/internal/filter"
	"cinelog/internal/session"
)

const (
	openYearMin = 1870
	openYearMax = 9999
)

// criteriaFlags edits the saved filter selections. Only flags given on the
// command line change the session; the rest keep their saved values.
type criteriaFlags struct {
	yearMin   int
	yearMax   int
	ratingMin float64
	ratingMax float64
	genres    []string
	directors []string
	search    string
	clear     bool
}

func (f *criteriaFlags) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.IntVar(&f.yearMin, "year-min", 0, "Earliest release year")
	flags.IntVar(&f.yearMax, "year-max", 0, "Latest release year")
	flags.Float64Var(&f.ratingMin, "rating-min", 0, "Lowest personal rating")
	flags.Float64Var(&f.ratingMax, "rating-max", 10, "Highest personal rating")
	flags.StringSliceVarP(&f.genres, "genre", "g", nil, "Required genre (repeatable; all must match)")
	flags.StringSliceVarP(&f.directors, "director", "d", nil, "Director (repeatable; any may match)")
	flags.StringVarP(&f.search, "search", "q", "", "Case-insensitive text search")
	flags.BoolVar(&f.clear, "clear", false, "Clear saved filters before applying flags")
}

// criteria merges the given flags into the saved criteria.
func (f *criteriaFlags) criteria(cmd *cobra.Command, saved filter.Criteria) filter.Criteria {
	c := saved
	if f.clear {
		c = filter.Criteria{}
	}
	flags := cmd.Flags()

	if flags.Changed("year-min") || flags.Changed("year-max") {
		r := filter.IntRange{Min: openYearMin, Max: openYearMax}
		if c.Years != nil {
			r = *c.Years
		}
		if flags.Changed("year-min") {
			r.Min = f.yearMin
		}
		if flags.Changed("year-max") {
			r.Max = f.yearMax
		}
		c.Years = &r
	}
	if flags.Changed("rating-min") || flags.Changed("rating-max") {
		r := filter.FloatRange{Min: 0, Max: 10}
		if c.Ratings != nil {
			r = *c.Ratings
		}
		if flags.Changed("rating-min") {
			r.Min = f.ratingMin
		}
		if flags.Changed("rating-max") {
			r.Max = f.ratingMax
		}
		c.Ratings = &r
	}
	if flags.Changed("genre") {
		c.Genres = nonBlank(f.genres)
	}
	if flags.Changed("director") {
		c.Directors = nonBlank(f.directors)
	}
	if flags.Changed("search") {
		c.Search = strings.TrimSpace(f.search)
	}
	return c
}

// orderFlags edits the saved ordering.
type orderFlags struct {
	sort   string
	desc   bool
	random bool
	seed   uint64
}

func (f *orderFlags) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.sort, "sort", "", fmt.Sprintf("Sort field %v", filter.Fields()))
	flags.BoolVar(&f.desc, "desc", false, "Sort descending")
	flags.BoolVar(&f.random, "random", false, "Random order (stable while paging)")
	flags.Uint64Var(&f.seed, "seed", 0, "Seed for random order (0 picks one)")
}

func (f *orderFlags) apply(cmd *cobra.Command, st *session.State) error {
	flags := cmd.Flags()
	if flags.Changed("sort") || flags.Changed("desc") {
		order := st.Order
		if flags.Changed("sort") {
			field, err := filter.ParseField(f.sort)
			if err != nil {
				return err
			}
			order.Field = field
		}
		if flags.Changed("desc") {
			order.Descending = f.desc
		}
		st.SetOrder(order)
	}
	if flags.Changed("random") || flags.Changed("seed") {
		on := f.random || (!flags.Changed("random") && st.Random)
		st.SetRandom(on, f.seed)
	}
	return nil
}

// pagingFlags moves through pages.
type pagingFlags struct {
	page     int
	pageSize int
	next     bool
	prev     bool
}

func (f *pagingFlags) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.IntVarP(&f.page, "page", "p", 0, "Page number (1-based)")
	flags.IntVar(&f.pageSize, "page-size", 0, "Entries per page")
	flags.BoolVarP(&f.next, "next", "n", false, "Advance one page")
	flags.BoolVar(&f.prev, "prev", false, "Go back one page")
}

// apply adjusts paging. Advancing needs the pool size, so it asks browse for
// the current total.
func (f *pagingFlags) apply(cmd *cobra.Command, lib *dashboard.Library, st *session.State) error {
	flags := cmd.Flags()
	if flags.Changed("page-size") {
		if f.pageSize <= 0 {
			return fmt.Errorf("page size must be positive, got %d", f.pageSize)
		}
		st.SetPageSize(f.pageSize)
	}
	if flags.Changed("page") {
		st.Page = max(f.page-1, 0)
	}
	if f.prev {
		st.Prev()
	}
	if f.next {
		view, err := dashboard.Browse(lib, st)
		if err != nil {
			return err
		}
		st.Next(view.Total)
	}
	return nil
}

// viewFlags bundles the flags shared by paged views.
type viewFlags struct {
	criteria criteriaFlags
	order    orderFlags
	paging   pagingFlags
}

func (f *viewFlags) bind(cmd *cobra.Command) {
	f.criteria.bind(cmd)
	f.order.bind(cmd)
	f.paging.bind(cmd)
}

func (f *viewFlags) apply(cmd *cobra.Command, lib *dashboard.Library, st *session.State) error {
	st.SetCriteria(f.criteria.criteria(cmd, st.Criteria))
	if err := f.order.apply(cmd, st); err != nil {
		return err
	}
	return f.paging.apply(cmd, lib, st)
}

func nonBlank(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
