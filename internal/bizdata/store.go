// Package bizdata provides read-only BusinessDataContext snapshots keyed by
// an opaque site id. Snapshots come from Postgres when a DSN is configured,
// otherwise from a directory of JSON files; either way they pass through an
// LRU cache.
package bizdata

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/dramac-main/dramac-cms-sub014/internal/site"
)

// Provider exposes the snapshot lookup the engine's callers need.
type Provider interface {
	Snapshot(ctx context.Context, siteID string) (*site.BusinessDataContext, error)
}

const cacheSize = 512

// Store is a dual-mode snapshot provider: Postgres or JSON file directory.
type Store struct {
	dir string
	db  *sql.DB

	schemaOnce sync.Once
	schemaErr  error

	cache *lru.Cache[string, *site.BusinessDataContext]
}

// New builds a file-backed store reading <dir>/<siteID>.json.
func New(dir string) *Store {
	cache, _ := lru.New[string, *site.BusinessDataContext](cacheSize)
	return &Store{dir: dir, cache: cache}
}

// NewPostgres builds a Postgres-backed store via the pgx stdlib driver.
func NewPostgres(dsn string) (*Store, error) {
	db, err := sql.Open("pgx", strings.TrimSpace(dsn))
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	cache, err := lru.New[string, *site.BusinessDataContext](cacheSize)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db, cache: cache}, nil
}

// NewFromEnv prefers Postgres when BIZDATA_PG_DSN is set, falling back to the
// file directory on any connection problem.
func NewFromEnv(dir string) *Store {
	dsn := strings.TrimSpace(os.Getenv("BIZDATA_PG_DSN"))
	if dsn == "" {
		return New(dir)
	}
	s, err := NewPostgres(dsn)
	if err != nil {
		return New(dir)
	}
	return s
}

// Snapshot returns the business data snapshot for siteID. Unknown sites get
// an empty snapshot rather than an error: generation proceeds on fallback
// content.
func (s *Store) Snapshot(ctx context.Context, siteID string) (*site.BusinessDataContext, error) {
	siteID = strings.TrimSpace(siteID)
	if siteID == "" {
		return &site.BusinessDataContext{}, nil
	}
	if cached, ok := s.cache.Get(siteID); ok {
		return cached, nil
	}

	var (
		snap *site.BusinessDataContext
		err  error
	)
	if s.db != nil {
		snap, err = s.snapshotDB(ctx, siteID)
	} else {
		snap, err = s.snapshotFile(siteID)
	}
	if err != nil {
		return nil, err
	}
	s.cache.Add(siteID, snap)
	return snap, nil
}

// Put stores a snapshot (admin/import path; the engine itself never writes).
func (s *Store) Put(ctx context.Context, snap *site.BusinessDataContext) error {
	if snap == nil || strings.TrimSpace(snap.SiteID) == "" {
		return fmt.Errorf("bizdata: snapshot needs a site_id")
	}
	defer s.cache.Remove(snap.SiteID)
	if s.db != nil {
		return s.putDB(ctx, snap)
	}
	return s.putFile(snap)
}

// Close releases the database handle when one is open.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) ensureSchema(ctx context.Context) error {
	s.schemaOnce.Do(func() {
		_, s.schemaErr = s.db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS business_contexts (
				site_id TEXT PRIMARY KEY,
				data    JSONB NOT NULL
			)`)
	})
	return s.schemaErr
}

func (s *Store) snapshotDB(ctx context.Context, siteID string) (*site.BusinessDataContext, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return nil, err
	}
	var raw []byte
	err := s.db.QueryRowContext(ctx, `SELECT data FROM business_contexts WHERE site_id = $1`, siteID).Scan(&raw)
	if err == sql.ErrNoRows {
		return &site.BusinessDataContext{SiteID: siteID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("bizdata: query %s: %w", siteID, err)
	}
	var snap site.BusinessDataContext
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("bizdata: decode %s: %w", siteID, err)
	}
	snap.SiteID = siteID
	return &snap, nil
}

func (s *Store) putDB(ctx context.Context, snap *site.BusinessDataContext) error {
	if err := s.ensureSchema(ctx); err != nil {
		return err
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO business_contexts (site_id, data) VALUES ($1, $2)
		ON CONFLICT (site_id) DO UPDATE SET data = EXCLUDED.data`,
		snap.SiteID, raw)
	return err
}

func (s *Store) snapshotFile(siteID string) (*site.BusinessDataContext, error) {
	path := filepath.Join(s.dir, siteID+".json")
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &site.BusinessDataContext{SiteID: siteID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("bizdata: read %s: %w", path, err)
	}
	var snap site.BusinessDataContext
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("bizdata: decode %s: %w", path, err)
	}
	snap.SiteID = siteID
	return &snap, nil
}

func (s *Store) putFile(snap *site.BusinessDataContext) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, snap.SiteID+".json"), raw, 0o644)
}
