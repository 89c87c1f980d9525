package session_test

import (
	"slices"
	"testing"

	"cinelog/internal/filter"
	"cinelog/internal/recommend"
	"cinelog/internal/session"
)

func TestResetRules(t *testing.T) {
	st := session.New("", 10)
	if st.Name != session.DefaultName || st.Mode != recommend.ModeAll {
		t.Fatalf("unexpected fresh state: %+v", st)
	}

	st.Page = 3
	st.SetCriteria(filter.Criteria{})
	if st.Page != 3 {
		t.Fatal("unchanged criteria must keep the page")
	}
	st.SetCriteria(filter.Criteria{Genres: []string{"Drama"}})
	if st.Page != 0 {
		t.Fatal("new criteria must reset the page")
	}

	st.Page = 2
	st.SetOrder(filter.Order{Field: filter.FieldYear, Descending: true})
	if st.Page != 0 {
		t.Fatal("new order must reset the page")
	}

	st.Page = 2
	st.SetRandom(true, 0)
	if st.Page != 0 || !st.Random || st.Seed == 0 {
		t.Fatalf("enabling random order: %+v", st)
	}
	seed := st.Seed
	st.Page = 1
	st.SetRandom(true, seed)
	if st.Page != 1 {
		t.Fatal("same random seed must keep the page")
	}

	st.SetOrder(filter.Order{Field: filter.FieldYear, Descending: true})
	if st.Random || st.Seed != 0 || st.Page != 0 {
		t.Fatalf("choosing an order must leave random mode: %+v", st)
	}

	id := st.ID
	st.Mode = recommend.ModeFavorites
	st.Reset()
	if st.ID != id || st.Name != session.DefaultName || st.PageSize != 10 {
		t.Fatalf("reset lost identity: %+v", st)
	}
	if len(st.Criteria.Genres) != 0 || st.Order.Field != "" || st.Mode != recommend.ModeAll {
		t.Fatalf("reset kept selections: %+v", st)
	}
}

func TestPagingClamps(t *testing.T) {
	st := session.New("paging", 5)
	if st.Pages(0) != 1 || st.Pages(11) != 3 {
		t.Fatalf("pages: %d %d", st.Pages(0), st.Pages(11))
	}

	st.Prev()
	if st.Page != 0 {
		t.Fatal("prev below zero")
	}
	for i := 0; i < 10; i++ {
		st.Next(11)
	}
	if st.Page != 2 {
		t.Fatalf("next past the end: %d", st.Page)
	}
	start, end := st.Window(11)
	if start != 10 || end != 11 {
		t.Fatalf("window: %d-%d", start, end)
	}

	// The pool shrank after a filter change made elsewhere.
	start, end = st.Window(4)
	if st.Page != 0 || start != 0 || end != 4 {
		t.Fatalf("window after shrink: page %d, %d-%d", st.Page, start, end)
	}
}

func TestSetPageSizeKeepsFirstVisibleEntry(t *testing.T) {
	st := session.New("size", 10)
	st.Page = 3
	st.SetPageSize(25)
	if st.Page != 1 {
		t.Fatalf("page = %d, want 1", st.Page)
	}
}

func TestShufflerReproducible(t *testing.T) {
	st := session.New("shuffle", 10)
	if st.Shuffler() != nil {
		t.Fatal("shuffler without random order")
	}
	st.SetRandom(true, 99)
	a := []int{st.Shuffler().IntN(1000), st.Shuffler().IntN(1000)}
	b := []int{st.Shuffler().IntN(1000), st.Shuffler().IntN(1000)}
	if !slices.Equal(a, b) {
		t.Fatalf("same seed, different draws: %v %v", a, b)
	}
}

func TestValidate(t *testing.T) {
	st := session.New("v", 10)
	if err := st.Validate(); err != nil {
		t.Fatalf("fresh state invalid: %v", err)
	}
	st.Criteria.Years = &filter.IntRange{Min: 2000, Max: 1990}
	if err := st.Validate(); err == nil {
		t.Fatal("expected inverted year range to fail")
	}
	st.Criteria.Years = nil
	st.PageSize = 0
	if err := st.Validate(); err == nil {
		t.Fatal("expected zero page size to fail")
	}
}
