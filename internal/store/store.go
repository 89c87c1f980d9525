package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"cinelog/internal/config"
)

// timestampLayout is fixed-width so fetched_at sorts and compares as text.
const timestampLayout = "2006-01-02T15:04:05.000000000Z"

// Kind names a lookup type.
type Kind string

// Lookup kinds written by the enrichment service.
const (
	KindPoster    Kind = "poster"
	KindProviders Kind = "providers"
	KindTrailer   Kind = "trailer"
	KindAwards    Kind = "awards"
)

// Kinds lists every lookup kind.
func Kinds() []Kind {
	return []Kind{KindPoster, KindProviders, KindTrailer, KindAwards}
}

// ParseKind maps a name onto a Kind. "" and "all" yield the empty kind,
// which store methods treat as every kind.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == "all" {
		return "", nil
	}
	for _, k := range Kinds() {
		if string(k) == name {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown lookup kind %q", name)
}

// Lookup is one cached lookup result. Payload is opaque JSON owned by the
// writer; Found is false for a cached "nothing there" answer.
type Lookup struct {
	Kind      Kind      `json:"kind"`
	Key       string    `json:"key"`
	Title     string    `json:"title"`
	Year      *int      `json:"year,omitempty"`
	Found     bool      `json:"found"`
	Payload   []byte    `json:"payload,omitempty"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Store manages lookup persistence backed by SQLite.
type Store struct {
	db     *sql.DB
	path   string
	maxAge time.Duration
	now    func() time.Time
}

// Open initializes or connects to the lookup cache configured in cfg.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}
	return OpenPath(context.Background(), cfg.Paths.CacheDB, cfg.CacheMaxAge())
}

// OpenPath opens the database at dbPath. maxAge <= 0 keeps rows forever.
func OpenPath(ctx context.Context, dbPath string, maxAge time.Duration) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.ExecContext(ctx, pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	s := &Store{db: db, path: dbPath, maxAge: maxAge, now: time.Now}
	if err := s.initSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

// Get returns the cached lookup for (kind, key). Rows older than the
// configured max age are reported as absent.
func (s *Store) Get(ctx context.Context, kind Kind, key string) (Lookup, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT kind, lookup_key, title, year, found, payload_json, fetched_at
		 FROM lookups WHERE kind = ? AND lookup_key = ?`, string(kind), key)
	lookup, err := scanLookup(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Lookup{}, false, nil
	}
	if err != nil {
		return Lookup{}, false, fmt.Errorf("get lookup %s/%s: %w", kind, key, err)
	}
	if s.maxAge > 0 && s.now().Sub(lookup.FetchedAt) > s.maxAge {
		return Lookup{}, false, nil
	}
	return lookup, true, nil
}

// Put inserts or replaces a lookup. A zero FetchedAt is stamped with now.
func (s *Store) Put(ctx context.Context, lookup Lookup) error {
	if strings.TrimSpace(lookup.Key) == "" {
		return errors.New("lookup key cannot be empty")
	}
	if lookup.FetchedAt.IsZero() {
		lookup.FetchedAt = s.now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO lookups (kind, lookup_key, title, year, found, payload_json, fetched_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(kind, lookup_key) DO UPDATE SET
		   title = excluded.title,
		   year = excluded.year,
		   found = excluded.found,
		   payload_json = excluded.payload_json,
		   fetched_at = excluded.fetched_at`,
		string(lookup.Kind),
		lookup.Key,
		lookup.Title,
		nullableInt(lookup.Year),
		boolToInt(lookup.Found),
		nullableBytes(lookup.Payload),
		lookup.FetchedAt.UTC().Format(timestampLayout),
	)
	if err != nil {
		return fmt.Errorf("put lookup %s/%s: %w", lookup.Kind, lookup.Key, err)
	}
	return nil
}

// List returns cached lookups, newest first. An empty kind lists every kind.
func (s *Store) List(ctx context.Context, kind Kind) ([]Lookup, error) {
	query := `SELECT kind, lookup_key, title, year, found, payload_json, fetched_at FROM lookups`
	var args []any
	if kind != "" {
		query += ` WHERE kind = ?`
		args = append(args, string(kind))
	}
	query += ` ORDER BY fetched_at DESC, kind, lookup_key`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list lookups: %w", err)
	}
	defer rows.Close()

	var out []Lookup
	for rows.Next() {
		lookup, err := scanLookup(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lookup: %w", err)
		}
		out = append(out, lookup)
	}
	return out, rows.Err()
}

// Counts returns the number of cached rows per kind.
func (s *Store) Counts(ctx context.Context) (map[Kind]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT kind, COUNT(1) FROM lookups GROUP BY kind`)
	if err != nil {
		return nil, fmt.Errorf("lookup stats: %w", err)
	}
	defer rows.Close()

	counts := make(map[Kind]int)
	for rows.Next() {
		var kind Kind
		var count int
		if err := rows.Scan(&kind, &count); err != nil {
			return nil, err
		}
		counts[kind] = count
	}
	return counts, rows.Err()
}

// Clear deletes cached rows of kind (every kind when empty) and reports how
// many were removed.
func (s *Store) Clear(ctx context.Context, kind Kind) (int64, error) {
	query := `DELETE FROM lookups`
	var args []any
	if kind != "" {
		query += ` WHERE kind = ?`
		args = append(args, string(kind))
	}
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("clear lookups: %w", err)
	}
	return res.RowsAffected()
}

// Prune deletes rows fetched before cutoff.
func (s *Store) Prune(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM lookups WHERE fetched_at < ?`,
		cutoff.UTC().Format(timestampLayout))
	if err != nil {
		return 0, fmt.Errorf("prune lookups: %w", err)
	}
	return res.RowsAffected()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanLookup(row scanner) (Lookup, error) {
	var (
		lookup    Lookup
		kind      string
		year      sql.NullInt64
		found     int
		payload   sql.NullString
		fetchedAt string
	)
	if err := row.Scan(&kind, &lookup.Key, &lookup.Title, &year, &found, &payload, &fetchedAt); err != nil {
		return Lookup{}, err
	}
	lookup.Kind = Kind(kind)
	if year.Valid {
		y := int(year.Int64)
		lookup.Year = &y
	}
	lookup.Found = found != 0
	if payload.Valid {
		lookup.Payload = []byte(payload.String)
	}
	ts, err := time.Parse(timestampLayout, fetchedAt)
	if err != nil {
		return Lookup{}, fmt.Errorf("parse fetched_at: %w", err)
	}
	lookup.FetchedAt = ts
	return lookup, nil
}

func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullableBytes(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return string(b)
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
