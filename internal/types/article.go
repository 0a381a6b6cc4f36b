package types

import (
	"time"
)

// Source is a configured news publisher. One instance exists per known
// publisher, built at startup and immutable for the life of the process.
type Source struct {
	// Name identifies the publisher in logs and persisted rows.
	Name string

	// FeedURL is the publisher's RSS/Atom feed.
	FeedURL string

	// Encoding is the IANA charset label of the publisher's article pages
	// (e.g. "windows-1251"). Empty means UTF-8.
	Encoding string

	// TimeOffset is added to feed timestamps before conversion to the
	// reference timezone. Some feeds report times in a foreign timezone
	// with no zone designator.
	TimeOffset time.Duration

	// Extractor is the key into the extraction registry. Empty means the
	// publisher name is used.
	Extractor string
}

// ExtractorKey returns the registry key for this source's text extractor.
func (s *Source) ExtractorKey() string {
	if s.Extractor != "" {
		return s.Extractor
	}
	return s.Name
}

// Article is the unit of content carried through the pipeline: a feed
// entry that passed filtering, mutated in place by extraction,
// normalization and classification until it is persisted or dropped.
type Article struct {
	Link      string
	Title     string
	Published time.Time // normalized to the reference timezone
	Source    *Source
	Text      string // main text; empty until extraction
	Country   string // geo label; sentinel until classified
}
