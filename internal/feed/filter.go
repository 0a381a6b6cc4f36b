package feed

import (
	"bytes"
	"log/slog"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/akarasev/harvester/internal/geo"
	"github.com/akarasev/harvester/internal/types"
)

// ReferenceZone is the timezone all publish times are normalized to.
var ReferenceZone = mustZone("Europe/Moscow", 3*60*60)

func mustZone(name string, offsetSeconds int) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.FixedZone("MSK", offsetSeconds)
	}
	return loc
}

// History answers whether a link was already processed in this or any
// earlier run.
type History interface {
	Seen(link string) bool
}

// Matcher decides topic relevance of an entry title.
type Matcher interface {
	Matches(text string) bool
}

// Filter turns a raw feed response into the articles worth processing:
// entries that parse, are not in history, and match the keyword rules.
// It holds no cross-call state; each Select re-derives everything from
// the given response.
type Filter struct {
	rules  Matcher
	hist   History
	parser *gofeed.Parser
	logger *slog.Logger
}

// New creates a Filter.
func New(rules Matcher, hist History, logger *slog.Logger) *Filter {
	return &Filter{
		rules:  rules,
		hist:   hist,
		parser: gofeed.NewParser(),
		logger: logger.With("component", "feed_filter"),
	}
}

// Select parses body as an RSS/Atom feed and returns the admitted
// entries as Articles, preserving feed order. A malformed feed or one
// with no entries yields an empty slice, not an error: the source is
// simply reported as having no valid items and the run moves on.
func (f *Filter) Select(src *types.Source, body []byte) []*types.Article {
	parsed, err := f.parser.Parse(bytes.NewReader(body))
	if err != nil {
		f.logger.Warn("feed parse failed", "source", src.Name, "error", err)
		return nil
	}
	if len(parsed.Items) == 0 {
		f.logger.Info("no valid items", "source", src.Name)
		return nil
	}

	var selected []*types.Article
	for _, item := range parsed.Items {
		if item.Link == "" {
			continue
		}

		// A timestamp that does not parse skips just this item.
		if item.PublishedParsed == nil {
			f.logger.Debug("unparsable publish time, item skipped",
				"source", src.Name, "link", item.Link)
			continue
		}
		published := item.PublishedParsed.Add(src.TimeOffset).In(ReferenceZone)

		if f.hist.Seen(item.Link) {
			continue
		}
		if !f.rules.Matches(item.Title) {
			continue
		}

		selected = append(selected, &types.Article{
			Link:      item.Link,
			Title:     item.Title,
			Published: published,
			Source:    src,
			Country:   geo.LabelOther,
		})
	}

	f.logger.Debug("feed filtered",
		"source", src.Name, "items", len(parsed.Items), "selected", len(selected))
	return selected
}
