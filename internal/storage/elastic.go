package storage

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"sync/atomic"

	"github.com/go-resty/resty/v2"

	"github.com/akarasev/harvester/internal/types"
)

// Elastic indexes articles into Elasticsearch over its REST API. The
// document ID is the article link, so re-indexing overwrites instead
// of duplicating.
type Elastic struct {
	client *resty.Client
	index  string
	count  atomic.Int64
	logger *slog.Logger
}

// NewElastic creates the Elasticsearch sink. No connection is made
// until the first store.
func NewElastic(baseURL, index string, logger *slog.Logger) *Elastic {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetRetryCount(2)

	return &Elastic{
		client: client,
		index:  index,
		logger: logger.With("component", "elastic_storage"),
	}
}

func (s *Elastic) Name() string { return "elasticsearch" }

func (s *Elastic) Store(ctx context.Context, art *types.Article) error {
	rec := NewRecord(art)
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(rec).
		Put(fmt.Sprintf("/%s/_doc/%s", s.index, url.PathEscape(rec.Link)))
	if err != nil {
		return fmt.Errorf("elasticsearch index: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("elasticsearch index: HTTP %d: %s", resp.StatusCode(), resp.String())
	}
	s.count.Add(1)
	return nil
}

func (s *Elastic) Close() error {
	s.logger.Info("elasticsearch storage closing", "articles", s.count.Load())
	return nil
}
