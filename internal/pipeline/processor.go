package pipeline

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/akarasev/harvester/internal/geo"
	"github.com/akarasev/harvester/internal/types"
)

// Status is the terminal state of one article's run through the
// processor.
type Status int

const (
	// StatusPersisted means the article was written to storage and
	// recorded in history.
	StatusPersisted Status = iota
	// StatusDropped means the article was deliberately discarded
	// (admission rule, empty body). It is NOT recorded in history; a
	// later run may see it again and reconsider.
	StatusDropped
	// StatusFailed means a stage errored; the article is NOT recorded
	// and may come around again on a later run.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusPersisted:
		return "persisted"
	case StatusDropped:
		return "dropped"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome reports what happened to one article.
type Outcome struct {
	Status Status
	Reason string
	Err    error
}

// PageFetcher downloads an article page and returns it decoded to
// UTF-8.
type PageFetcher interface {
	FetchPage(ctx context.Context, url, encoding string) (string, error)
}

// Extractor pulls the article text out of a downloaded page.
type Extractor interface {
	Extract(src *types.Source, page string) (string, error)
}

// Classifier assigns a country label from title and text.
type Classifier interface {
	Classify(title, excerpt string) string
}

// Sink persists a finished article.
type Sink interface {
	Store(ctx context.Context, art *types.Article) error
}

// Recorder marks a link as handled so later runs skip it.
type Recorder interface {
	Record(link string) error
}

// Processor runs a selected feed entry through the fixed stage
// sequence: fetch, extract, normalize, classify, admit, persist,
// record. Stages never panic across articles; every failure is scoped
// to the one article being processed.
type Processor struct {
	fetcher    PageFetcher
	extractor  Extractor
	classifier Classifier
	sink       Sink
	recorder   Recorder
	sizeLimit  int
	logger     *slog.Logger
}

// New creates a Processor.
func New(f PageFetcher, e Extractor, c Classifier, s Sink, r Recorder, sizeLimit int, logger *slog.Logger) *Processor {
	return &Processor{
		fetcher:    f,
		extractor:  e,
		classifier: c,
		sink:       s,
		recorder:   r,
		sizeLimit:  sizeLimit,
		logger:     logger.With("component", "processor"),
	}
}

// Process takes an article that already carries Link, Title, Published
// and Source, fills in Text and Country, and persists it. The history
// record is written only after a successful store: dropped and failed
// articles stay unrecorded, so a later run sees them again.
func (p *Processor) Process(ctx context.Context, art *types.Article) Outcome {
	log := p.logger.With("source", art.Source.Name, "link", art.Link)

	page, err := p.fetcher.FetchPage(ctx, art.Link, art.Source.Encoding)
	if err != nil {
		log.Warn("page fetch failed", "error", err)
		return Outcome{Status: StatusFailed, Reason: "fetch", Err: err}
	}

	raw, err := p.extractor.Extract(art.Source, page)
	if err != nil {
		log.Warn("extraction failed", "error", err)
		return Outcome{Status: StatusFailed, Reason: "extract", Err: err}
	}

	art.Text = Normalize(raw)
	if art.Text == "" {
		log.Info("empty article body, dropping")
		return Outcome{Status: StatusDropped, Reason: "empty"}
	}

	art.Country = p.classifier.Classify(art.Title, art.Text)

	// Long pieces that could not be placed anywhere are almost always
	// digests or unrelated longreads, not news items.
	if utf8.RuneCountInString(art.Text) > p.sizeLimit && art.Country == geo.LabelOther {
		log.Info("oversized unclassified article, dropping",
			"size", utf8.RuneCountInString(art.Text))
		return Outcome{Status: StatusDropped, Reason: "oversized-unclassified"}
	}

	if err := p.sink.Store(ctx, art); err != nil {
		log.Error("store failed", "error", err)
		return Outcome{Status: StatusFailed, Reason: "store", Err: err}
	}

	if err := p.recorder.Record(art.Link); err != nil {
		log.Error("history record failed", "error", err)
		return Outcome{Status: StatusFailed, Reason: "record", Err: err}
	}

	log.Info("article persisted", "country", art.Country,
		"size", utf8.RuneCountInString(art.Text))
	return Outcome{Status: StatusPersisted}
}

// Normalize strips per-line whitespace, drops blank lines, and rejoins
// the remainder with single newlines.
func Normalize(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
