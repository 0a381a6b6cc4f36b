package match

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Ruleset holds compiled inclusion and stop-word patterns. A text is
// relevant when any inclusion pattern matches it and no stop pattern
// does: stop-words veto inclusion unconditionally. Patterns are fixed
// regular expressions (Cyrillic-aware), compiled once and reused.
type Ruleset struct {
	include []*regexp.Regexp
	stop    []*regexp.Regexp
}

// Compile builds a Ruleset from raw pattern strings.
func Compile(include, stop []string) (*Ruleset, error) {
	inc, err := CompilePatterns(include)
	if err != nil {
		return nil, fmt.Errorf("inclusion patterns: %w", err)
	}
	st, err := CompilePatterns(stop)
	if err != nil {
		return nil, fmt.Errorf("stop patterns: %w", err)
	}
	return &Ruleset{include: inc, stop: st}, nil
}

// Matches reports whether text matches the ruleset. Every pattern is
// tested against both the raw text and an all-lowercase copy; a hit in
// either form counts. Some patterns rely on case-sensitive word
// boundaries for acronyms, which is why the raw form is kept.
func (r *Ruleset) Matches(text string) bool {
	lower := strings.ToLower(text)
	for _, p := range r.include {
		if !Probe(p, text, lower) {
			continue
		}
		for _, sp := range r.stop {
			if Probe(sp, text, lower) {
				return false
			}
		}
		return true
	}
	return false
}

// Len returns the number of inclusion patterns.
func (r *Ruleset) Len() int { return len(r.include) }

// Probe tests a compiled pattern against the raw text and its
// pre-lowered copy.
func Probe(p *regexp.Regexp, raw, lower string) bool {
	return p.MatchString(lower) || p.MatchString(raw)
}

// CompilePatterns compiles a list of keyword patterns, making word
// boundaries Unicode-aware first.
func CompilePatterns(patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, raw := range patterns {
		p, err := regexp.Compile(expandWordBoundaries(raw))
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", raw, err)
		}
		compiled = append(compiled, p)
	}
	return compiled, nil
}

// expandWordBoundaries rewrites \b into a Unicode-aware form. RE2's \b
// only recognizes ASCII word characters, so `\bВСУ\b` would never match
// otherwise. The rewrite consumes the adjacent character, which is fine
// for boolean search.
func expandWordBoundaries(pattern string) string {
	return strings.ReplaceAll(pattern, `\b`, `(?:\A|\z|[^\p{L}\p{N}_])`)
}

// LoadFile reads one pattern per line, skipping blank lines. A UTF-8
// BOM on the first line is stripped; the original keyword files were
// written with one.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open keyword file: %w", err)
	}
	defer f.Close()

	var patterns []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimPrefix(sc.Text(), "\uFEFF")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		patterns = append(patterns, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read keyword file: %w", err)
	}
	return patterns, nil
}
