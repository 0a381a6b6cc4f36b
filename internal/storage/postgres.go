package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	_ "github.com/lib/pq"

	"github.com/akarasev/harvester/internal/types"
)

// Postgres writes articles to a PostgreSQL table. The link column is
// unique, so re-storing an already seen article is a no-op.
type Postgres struct {
	db     *sql.DB
	table  string
	count  atomic.Int64
	logger *slog.Logger
}

// NewPostgres connects to PostgreSQL and ensures the target table
// exists.
func NewPostgres(dsn, table string, logger *slog.Logger) (*Postgres, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}
	db.SetMaxOpenConns(8)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	s := &Postgres{
		db:     db,
		table:  table,
		logger: logger.With("component", "postgres_storage"),
	}
	if err := s.ensureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Postgres) ensureSchema(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id        BIGSERIAL PRIMARY KEY,
			link      TEXT NOT NULL UNIQUE,
			title     TEXT NOT NULL,
			published TIMESTAMPTZ NOT NULL,
			source    TEXT NOT NULL,
			country   TEXT NOT NULL,
			text      TEXT NOT NULL,
			stored_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`, s.table)
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("postgres schema: %w", err)
	}
	return nil
}

func (s *Postgres) Name() string { return "postgres" }

func (s *Postgres) Store(ctx context.Context, art *types.Article) error {
	rec := NewRecord(art)
	query := fmt.Sprintf(`
		INSERT INTO %s (link, title, published, source, country, text, stored_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (link) DO NOTHING`, s.table)

	if _, err := s.db.ExecContext(ctx, query,
		rec.Link, rec.Title, rec.Published, rec.Source, rec.Country, rec.Text, rec.StoredAt); err != nil {
		return fmt.Errorf("postgres insert: %w", err)
	}
	s.count.Add(1)
	return nil
}

func (s *Postgres) Close() error {
	s.logger.Info("postgres storage closing", "articles", s.count.Load())
	return s.db.Close()
}
