package storage

import (
	"context"
	"log/slog"

	"github.com/akarasev/harvester/internal/config"
	"github.com/akarasev/harvester/internal/types"
)

// Sink is the interface all persistence backends implement.
type Sink interface {
	// Store persists one article. Storing an article whose link was
	// already stored must not fail; sinks are idempotent on link.
	Store(ctx context.Context, art *types.Article) error

	// Close flushes pending writes and releases resources.
	Close() error

	// Name returns the sink identifier.
	Name() string
}

// Build constructs every enabled sink from configuration and wraps
// them in a fan-out. At least one sink must be enabled.
func Build(cfg *config.StorageConfig, logger *slog.Logger) (*Multi, error) {
	var sinks []Sink

	if cfg.JSONL.Enabled {
		s, err := NewJSONL(cfg.JSONL.Path, logger)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, s)
	}
	if cfg.Postgres.Enabled {
		s, err := NewPostgres(cfg.Postgres.DSN, cfg.Postgres.Table, logger)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, s)
	}
	if cfg.Mongo.Enabled {
		s, err := NewMongo(cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.Collection, logger)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, s)
	}
	if cfg.Elastic.Enabled {
		sinks = append(sinks, NewElastic(cfg.Elastic.URL, cfg.Elastic.Index, logger))
	}

	if len(sinks) == 0 {
		return nil, types.ErrSinkDisabled
	}
	return NewMulti(sinks, logger), nil
}

// Multi fans one article out to several sinks. A sink failing does not
// stop the others; the write counts as successful while at least one
// sink accepted the article.
type Multi struct {
	sinks  []Sink
	logger *slog.Logger
}

// NewMulti creates the fan-out over the given sinks.
func NewMulti(sinks []Sink, logger *slog.Logger) *Multi {
	return &Multi{
		sinks:  sinks,
		logger: logger.With("component", "multi_storage"),
	}
}

func (m *Multi) Name() string { return "multi" }

// Store writes the article to every sink. It returns an error only
// when no sink accepted the article, so that the caller does not mark
// it as handled.
func (m *Multi) Store(ctx context.Context, art *types.Article) error {
	var firstErr error
	stored := 0
	for _, s := range m.sinks {
		if err := s.Store(ctx, art); err != nil {
			m.logger.Error("sink store failed", "sink", s.Name(), "link", art.Link, "error", err)
			if firstErr == nil {
				firstErr = &types.StorageError{Sink: s.Name(), Err: err}
			}
			continue
		}
		stored++
	}
	if stored == 0 {
		return firstErr
	}
	return nil
}

// Close closes all sinks and reports the first failure.
func (m *Multi) Close() error {
	var firstErr error
	for _, s := range m.sinks {
		if err := s.Close(); err != nil && firstErr == nil {
			firstErr = &types.StorageError{Sink: s.Name(), Err: err}
		}
	}
	return firstErr
}
