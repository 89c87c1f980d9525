package session

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofrs/flock"

	"cinelog/internal/logging"
	"cinelog/internal/textutil"
)

// ErrNotFound reports a session with no saved state.
var ErrNotFound = errors.New("session not found")

const lockRetryDelay = 25 * time.Millisecond

// Store persists one JSON file per session name. Every read and write holds
// a file lock so concurrent invocations never interleave.
type Store struct {
	dir    string
	logger *slog.Logger
	now    func() time.Time
}

// NewStore returns a store rooted at dir.
func NewStore(dir string, logger *slog.Logger) *Store {
	return &Store{
		dir:    dir,
		logger: logging.NewComponentLogger(logger, "session"),
		now:    time.Now,
	}
}

// Dir returns the directory holding session files.
func (s *Store) Dir() string { return s.dir }

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, textutil.SanitizeToken(name)+".json")
}

// Load returns the saved state for name, or ErrNotFound.
func (s *Store) Load(ctx context.Context, name string) (State, error) {
	unlock, err := s.lock(ctx, name, false)
	if err != nil {
		return State{}, err
	}
	defer unlock()
	return s.read(name)
}

// Open loads name, or starts a fresh state with pageSize when none exists.
func (s *Store) Open(ctx context.Context, name string, pageSize int) (State, error) {
	st, err := s.Load(ctx, name)
	if errors.Is(err, ErrNotFound) {
		return New(name, pageSize), nil
	}
	return st, err
}

// Save validates and writes st.
func (s *Store) Save(ctx context.Context, st *State) error {
	unlock, err := s.lock(ctx, st.Name, true)
	if err != nil {
		return err
	}
	defer unlock()
	return s.write(st)
}

// Update applies fn to the stored state (or a fresh one with pageSize) under
// an exclusive lock and saves the result. A failing fn leaves the file as is.
func (s *Store) Update(ctx context.Context, name string, pageSize int, fn func(*State) error) (State, error) {
	if name == "" {
		name = DefaultName
	}
	unlock, err := s.lock(ctx, name, true)
	if err != nil {
		return State{}, err
	}
	defer unlock()

	st, err := s.read(name)
	if errors.Is(err, ErrNotFound) {
		st = New(name, pageSize)
	} else if err != nil {
		return State{}, err
	}
	if err := fn(&st); err != nil {
		return State{}, err
	}
	if err := s.write(&st); err != nil {
		return State{}, err
	}
	return st, nil
}

// Delete removes the saved state for name.
func (s *Store) Delete(ctx context.Context, name string) error {
	unlock, err := s.lock(ctx, name, true)
	if err != nil {
		return err
	}
	defer unlock()
	if err := os.Remove(s.path(name)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return fmt.Errorf("remove session: %w", err)
	}
	s.logger.Debug("session deleted", logging.String(logging.FieldSession, name))
	return nil
}

// List returns every saved session, most recently updated first. Unreadable
// files are skipped with a warning.
func (s *Store) List(ctx context.Context) ([]State, error) {
	matches, err := filepath.Glob(filepath.Join(s.dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	states := make([]State, 0, len(matches))
	for _, path := range matches {
		name := strings.TrimSuffix(filepath.Base(path), ".json")
		st, err := s.Load(ctx, name)
		if err != nil {
			logging.WarnWithContext(s.logger, "skipping unreadable session", "session_read_failed",
				logging.String("path", path),
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "delete the file or run cinelog session reset"),
				logging.String(logging.FieldImpact, "session omitted from listing"))
			continue
		}
		states = append(states, st)
	}
	slices.SortFunc(states, func(a, b State) int { return b.UpdatedAt.Compare(a.UpdatedAt) })
	return states, nil
}

func (s *Store) read(name string) (State, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return State{}, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return State{}, fmt.Errorf("read session: %w", err)
	}
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return State{}, fmt.Errorf("parse session %s: %w", name, err)
	}
	return st, nil
}

// write persists st atomically via a temp file.
func (s *Store) write(st *State) error {
	if err := st.Validate(); err != nil {
		return fmt.Errorf("invalid session state: %w", err)
	}
	st.UpdatedAt = s.now().UTC()

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}

	path := s.path(st.Name)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	s.logger.Debug("session saved",
		logging.String(logging.FieldSession, st.Name),
		logging.String(logging.FieldSessionID, st.ID.String()),
		logging.Int("page", st.Page))
	return nil
}

func (s *Store) lock(ctx context.Context, name string, exclusive bool) (func(), error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create session directory: %w", err)
	}
	fl := flock.New(s.path(name) + ".lock")
	var (
		ok  bool
		err error
	)
	if exclusive {
		ok, err = fl.TryLockContext(ctx, lockRetryDelay)
	} else {
		ok, err = fl.TryRLockContext(ctx, lockRetryDelay)
	}
	if err != nil {
		return nil, fmt.Errorf("lock session %s: %w", name, err)
	}
	if !ok {
		return nil, fmt.Errorf("lock session %s: not acquired", name)
	}
	return func() {
		if err := fl.Unlock(); err != nil {
			s.logger.Debug("session unlock failed", logging.Error(err))
		}
	}, nil
}
