package geo

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/akarasev/harvester/internal/match"
)

// LabelOther is the sentinel label for articles no bucket claims.
const LabelOther = "Другие"

// ExcerptWindow is how much of the article lede is consulted when the
// title alone does not classify. Only the first part of an article is
// reliably on-topic for geography; later paragraphs drift.
const ExcerptWindow = 350

// Bucket pairs an ordered keyword set with a geography label.
type Bucket struct {
	Label    string
	Patterns []string
}

type row struct {
	label    string
	patterns []*regexp.Regexp
}

// Classifier assigns a single geography label by scanning an ordered
// table of keyword buckets. The scan never stops at the first hit:
// when several buckets match, the one later in the table wins. That
// tie-break is deliberate and classification output depends on it.
type Classifier struct {
	rows []row
}

// NewClassifier compiles the bucket table. Table order is preserved.
func NewClassifier(buckets []Bucket) (*Classifier, error) {
	c := &Classifier{rows: make([]row, 0, len(buckets))}
	for _, b := range buckets {
		compiled, err := match.CompilePatterns(b.Patterns)
		if err != nil {
			return nil, fmt.Errorf("bucket %q: %w", b.Label, err)
		}
		c.rows = append(c.rows, row{label: b.Label, patterns: compiled})
	}
	return c, nil
}

// Classify labels an article by its title, falling back to the first
// ExcerptWindow runes of the text only when the title yields no label.
// Pure function of its inputs and the compiled table.
func (c *Classifier) Classify(title, excerpt string) string {
	label := c.scan(title)
	if label == LabelOther {
		label = c.scan(truncate(excerpt, ExcerptWindow))
	}
	return label
}

// scan walks the whole table; the last matching bucket sets the label.
func (c *Classifier) scan(text string) string {
	label := LabelOther
	lower := strings.ToLower(text)
	for _, r := range c.rows {
		for _, p := range r.patterns {
			if match.Probe(p, text, lower) {
				label = r.label
				break
			}
		}
	}
	return label
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
