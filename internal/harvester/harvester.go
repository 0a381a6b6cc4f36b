package harvester

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/akarasev/harvester/internal/pipeline"
	"github.com/akarasev/harvester/internal/types"
)

// Stats tracks harvest run statistics.
type Stats struct {
	FeedsFetched   atomic.Int64
	FeedsFailed    atomic.Int64
	EntriesMatched atomic.Int64
	Persisted      atomic.Int64
	Dropped        atomic.Int64
	Failed         atomic.Int64
	StartTime      time.Time
}

// Snapshot returns a copy of stats safe for reading.
func (s *Stats) Snapshot() map[string]any {
	return map[string]any{
		"feeds_fetched":   s.FeedsFetched.Load(),
		"feeds_failed":    s.FeedsFailed.Load(),
		"entries_matched": s.EntriesMatched.Load(),
		"persisted":       s.Persisted.Load(),
		"dropped":         s.Dropped.Load(),
		"failed":          s.Failed.Load(),
		"elapsed":         time.Since(s.StartTime).String(),
	}
}

// FeedFetcher downloads a feed document.
type FeedFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Selector turns a raw feed document into the articles worth
// processing.
type Selector interface {
	Select(src *types.Source, body []byte) []*types.Article
}

// Processor runs one article to a terminal state.
type Processor interface {
	Process(ctx context.Context, art *types.Article) pipeline.Outcome
}

// Harvester walks the configured sources, selects new matching feed
// entries and drives each through the article processor. Source and
// article concurrency are bounded independently; a failing source
// never affects the others.
type Harvester struct {
	sources        []*types.Source
	fetcher        FeedFetcher
	selector       Selector
	processor      Processor
	sourceWorkers  int
	articleWorkers int
	logger         *slog.Logger
}

// New creates a Harvester.
func New(sources []*types.Source, f FeedFetcher, s Selector, p Processor,
	sourceWorkers, articleWorkers int, logger *slog.Logger) *Harvester {
	if sourceWorkers < 1 {
		sourceWorkers = 1
	}
	if articleWorkers < 1 {
		articleWorkers = 1
	}
	return &Harvester{
		sources:        sources,
		fetcher:        f,
		selector:       s,
		processor:      p,
		sourceWorkers:  sourceWorkers,
		articleWorkers: articleWorkers,
		logger:         logger.With("component", "harvester"),
	}
}

// Run performs one full harvest pass over every source and returns the
// run's statistics. It blocks until all articles reached a terminal
// state or ctx is cancelled.
func (h *Harvester) Run(ctx context.Context) *Stats {
	stats := &Stats{StartTime: time.Now()}

	srcChan := make(chan *types.Source)
	artChan := make(chan *types.Article, h.articleWorkers*2)

	var artWG sync.WaitGroup
	for i := 0; i < h.articleWorkers; i++ {
		artWG.Add(1)
		go func() {
			defer artWG.Done()
			h.articleWorker(ctx, artChan, stats)
		}()
	}

	var srcWG sync.WaitGroup
	for i := 0; i < h.sourceWorkers; i++ {
		srcWG.Add(1)
		go func() {
			defer srcWG.Done()
			h.sourceWorker(ctx, srcChan, artChan, stats)
		}()
	}

	for _, src := range h.sources {
		select {
		case srcChan <- src:
		case <-ctx.Done():
		}
		if ctx.Err() != nil {
			break
		}
	}
	close(srcChan)
	srcWG.Wait()
	close(artChan)
	artWG.Wait()

	h.logger.Info("harvest pass complete", "stats", stats.Snapshot())
	return stats
}

// Poll runs harvest passes forever, one per interval, until ctx is
// cancelled. The first pass starts immediately.
func (h *Harvester) Poll(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		h.Run(ctx)
		select {
		case <-ctx.Done():
			h.logger.Info("polling stopped")
			return
		case <-ticker.C:
		}
	}
}

func (h *Harvester) sourceWorker(ctx context.Context, srcChan <-chan *types.Source,
	artChan chan<- *types.Article, stats *Stats) {
	for src := range srcChan {
		if ctx.Err() != nil {
			return
		}
		body, err := h.fetcher.Fetch(ctx, src.FeedURL)
		if err != nil {
			stats.FeedsFailed.Add(1)
			h.logger.Warn("feed fetch failed", "source", src.Name, "error", err)
			continue
		}
		stats.FeedsFetched.Add(1)

		for _, art := range h.selector.Select(src, body) {
			stats.EntriesMatched.Add(1)
			select {
			case artChan <- art:
			case <-ctx.Done():
				return
			}
		}
	}
}

func (h *Harvester) articleWorker(ctx context.Context, artChan <-chan *types.Article, stats *Stats) {
	for art := range artChan {
		if ctx.Err() != nil {
			return
		}
		out := h.processor.Process(ctx, art)
		switch out.Status {
		case pipeline.StatusPersisted:
			stats.Persisted.Add(1)
		case pipeline.StatusDropped:
			stats.Dropped.Add(1)
		case pipeline.StatusFailed:
			stats.Failed.Add(1)
		}
	}
}
