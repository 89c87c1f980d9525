// Package session holds the explicit per-session view state that browsing
// commands read and update, and persists it between invocations.
//
// Reset rules: changing the criteria, the sort order or the random-order
// toggle returns to the first page. Reset clears everything except the
// session identity and page size. Paging clamps at both ends.
package session

import (
	"math/rand/v2"
	"reflect"
	"time"

	"github.com/google/uuid"

	"cinelog/internal/filter"
	"cinelog/internal/recommend"
	"cinelog/internal/validation"
)

// DefaultName is used when no session name is given.
const DefaultName = "default"

// State is one session's view state.
type State struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name" validate:"required"`
	Page      int             `json:"page" validate:"gte=0"`
	PageSize  int             `json:"page_size" validate:"gte=1,lte=200"`
	Criteria  filter.Criteria `json:"criteria"`
	Order     filter.Order    `json:"order"`
	Random    bool            `json:"random"`
	Seed      uint64          `json:"seed,omitempty"`
	Mode      recommend.Mode  `json:"mode,omitempty" validate:"omitempty,oneof=all favorites recent_high"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// New returns a fresh state on the first page.
func New(name string, pageSize int) State {
	if name == "" {
		name = DefaultName
	}
	return State{
		ID:       uuid.New(),
		Name:     name,
		PageSize: pageSize,
		Mode:     recommend.ModeAll,
	}
}

// Validate checks field bounds and the nested criteria.
func (s State) Validate() error {
	return validation.Struct(s)
}

// SetCriteria replaces the filter criteria, returning to the first page when
// they differ from the current ones.
func (s *State) SetCriteria(c filter.Criteria) {
	if reflect.DeepEqual(s.Criteria, c) {
		return
	}
	s.Criteria = c
	s.Page = 0
}

// SetOrder selects a column ordering and turns random order off.
func (s *State) SetOrder(o filter.Order) {
	if s.Order == o && !s.Random {
		return
	}
	s.Order = o
	s.Random = false
	s.Seed = 0
	s.Page = 0
}

// SetRandom toggles random order. A zero seed while enabling draws a fresh
// one so paging walks a single shuffle.
func (s *State) SetRandom(on bool, seed uint64) {
	if on && seed == 0 {
		seed = rand.Uint64() | 1
	}
	if !on {
		seed = 0
	}
	if s.Random == on && s.Seed == seed {
		return
	}
	s.Random = on
	s.Seed = seed
	s.Page = 0
}

// SetPageSize changes the page size, keeping the first visible entry on
// screen.
func (s *State) SetPageSize(size int) {
	if size <= 0 || size == s.PageSize {
		return
	}
	first := s.Page * s.PageSize
	s.PageSize = size
	s.Page = first / size
}

// Reset clears selections and paging, keeping ID, Name and PageSize.
func (s *State) Reset() {
	*s = State{ID: s.ID, Name: s.Name, PageSize: s.PageSize, Mode: recommend.ModeAll}
}

// Pages returns the page count for total entries; never less than one.
func (s State) Pages(total int) int {
	if s.PageSize <= 0 || total <= 0 {
		return 1
	}
	return (total + s.PageSize - 1) / s.PageSize
}

// Window clamps Page to the available pages and returns the half-open slice
// bounds of the current page.
func (s *State) Window(total int) (start, end int) {
	s.Page = min(max(s.Page, 0), s.Pages(total)-1)
	if total <= 0 || s.PageSize <= 0 {
		return 0, max(total, 0)
	}
	start = s.Page * s.PageSize
	end = min(start+s.PageSize, total)
	return start, end
}

// Next advances one page, stopping at the last.
func (s *State) Next(total int) {
	s.Page = min(s.Page+1, s.Pages(total)-1)
}

// Prev goes back one page, stopping at the first.
func (s *State) Prev() {
	s.Page = max(s.Page-1, 0)
}

// Shuffler returns the random source for random order, or nil when random
// order is off.
func (s State) Shuffler() *rand.Rand {
	if !s.Random {
		return nil
	}
	return rand.New(rand.NewPCG(s.Seed, s.Seed>>1|1))
}
