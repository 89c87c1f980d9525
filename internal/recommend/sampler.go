// Package recommend draws a "what to watch" pick from a filtered pool.
package recommend

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"cinelog/internal/catalog"
)

// ErrEmptyPool reports that the mode-restricted pool has no candidates.
var ErrEmptyPool = errors.New("no candidates for recommendation")

// Mode restricts the pool before drawing.
type Mode string

// Supported modes.
const (
	ModeAll        Mode = "all"
	ModeFavorites  Mode = "favorites"
	ModeRecentHigh Mode = "recent_high"
)

const (
	favoriteThreshold   = 9.0
	recentHighThreshold = 8.0
	recentWindowYears   = 20
)

// Modes lists the supported modes.
func Modes() []Mode {
	return []Mode{ModeAll, ModeFavorites, ModeRecentHigh}
}

// ParseMode maps a user-supplied name onto a Mode. Empty means ModeAll.
func ParseMode(name string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(strings.ReplaceAll(name, "-", "_")))) {
	case "", ModeAll:
		return ModeAll, nil
	case ModeFavorites, "favourites":
		return ModeFavorites, nil
	case ModeRecentHigh:
		return ModeRecentHigh, nil
	default:
		return "", fmt.Errorf("unknown recommendation mode %q", name)
	}
}

// Sampler performs weighted draws. Rand and Now are injectable so callers
// can reproduce a draw; the zero value uses the global source and wall clock.
type Sampler struct {
	Rand *rand.Rand
	Now  func() time.Time
}

// NewSampler returns a sampler seeded with seed. A zero seed yields a
// non-deterministic sampler.
func NewSampler(seed uint64) *Sampler {
	s := &Sampler{Now: time.Now}
	if seed != 0 {
		s.Rand = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
	return s
}

// Restrict returns the entries of pool eligible under mode.
func (s *Sampler) Restrict(pool []catalog.Entry, mode Mode) []catalog.Entry {
	switch mode {
	case ModeFavorites:
		return keep(pool, func(e catalog.Entry) bool {
			r, ok := e.Rating()
			return ok && r >= favoriteThreshold
		})
	case ModeRecentHigh:
		cutoff := s.now().Year() - recentWindowYears
		return keep(pool, func(e catalog.Entry) bool {
			r, ok := e.Rating()
			if !ok || r < recentHighThreshold {
				return false
			}
			y, ok := e.YearValue()
			return ok && y >= cutoff
		})
	default:
		return pool
	}
}

// Sample draws one entry from the mode-restricted pool with probability
// proportional to personal rating + 1 (absent ratings weigh 1).
func (s *Sampler) Sample(pool []catalog.Entry, mode Mode) (catalog.Entry, error) {
	candidates := s.Restrict(pool, mode)
	if len(candidates) == 0 {
		return catalog.Entry{}, fmt.Errorf("%w (mode %s, pool %d)", ErrEmptyPool, mode, len(pool))
	}

	total := 0.0
	for _, e := range candidates {
		total += Weight(e)
	}
	target := s.float64() * total
	for _, e := range candidates {
		target -= Weight(e)
		if target < 0 {
			return e, nil
		}
	}
	return candidates[len(candidates)-1], nil
}

// Weight is the draw weight of an entry.
func Weight(e catalog.Entry) float64 {
	r, _ := e.Rating()
	return r + 1
}

func (s *Sampler) float64() float64 {
	if s.Rand != nil {
		return s.Rand.Float64()
	}
	return rand.Float64()
}

func (s *Sampler) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func keep(pool []catalog.Entry, pred func(catalog.Entry) bool) []catalog.Entry {
	var out []catalog.Entry
	for _, e := range pool {
		if pred(e) {
			out = append(out, e)
		}
	}
	return out
}
