package geo

import (
	"strings"
	"testing"
)

func mustClassifier(t *testing.T, buckets []Bucket) *Classifier {
	t.Helper()
	c, err := NewClassifier(buckets)
	if err != nil {
		t.Fatalf("compile table: %v", err)
	}
	return c
}

func TestClassifyByTitle(t *testing.T) {
	c := mustClassifier(t, DefaultTable)

	tests := []struct {
		title string
		want  string
	}{
		{"Бои под Донецком продолжаются", "Украина"},
		{"В Тбилиси прошла акция протеста", "Грузия"},
		{"Пентагон прокомментировал учения", "США"},
		{"Вручение премии за лучший фильм года", LabelOther},
	}
	for _, tt := range tests {
		if got := c.Classify(tt.title, ""); got != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestLastMatchWins(t *testing.T) {
	table := []Bucket{
		{Label: "Первый", Patterns: []string{`альфа`}},
		{Label: "Второй", Patterns: []string{`бета`}},
		{Label: "Третий", Patterns: []string{`альфа`}},
	}
	c := mustClassifier(t, table)

	// Both the first and the third bucket match; the later one wins.
	if got := c.Classify("альфа", ""); got != "Третий" {
		t.Errorf("got %q, want last matching bucket", got)
	}
	if got := c.Classify("бета", ""); got != "Второй" {
		t.Errorf("got %q, want %q", got, "Второй")
	}
}

func TestExcerptOnlyWhenTitleFails(t *testing.T) {
	table := []Bucket{
		{Label: "Украина", Patterns: []string{`донецк`}},
		{Label: "Сирия", Patterns: []string{`дамаск`}},
	}
	c := mustClassifier(t, table)

	// Title classifies; an excerpt pointing elsewhere must not override it.
	if got := c.Classify("Обстановка в Донецке", "Репортаж из Дамаска"); got != "Украина" {
		t.Errorf("title classification overridden by excerpt: got %q", got)
	}

	// Title fails; excerpt decides.
	if got := c.Classify("Сводка за сутки", "Взрыв в центре Дамаска"); got != "Сирия" {
		t.Errorf("excerpt fallback: got %q", got)
	}
}

func TestExcerptTruncatedToWindow(t *testing.T) {
	table := []Bucket{{Label: "Сирия", Patterns: []string{`дамаск`}}}
	c := mustClassifier(t, table)

	// Keyword beyond the first ExcerptWindow runes is ignored.
	excerpt := strings.Repeat("а", ExcerptWindow) + " дамаск"
	if got := c.Classify("Сводка за сутки", excerpt); got != LabelOther {
		t.Errorf("keyword past window should be ignored, got %q", got)
	}

	// Inside the window it is seen.
	excerpt = strings.Repeat("а", ExcerptWindow-20) + " дамаск"
	if got := c.Classify("Сводка за сутки", excerpt); got != "Сирия" {
		t.Errorf("keyword inside window should classify, got %q", got)
	}
}

func TestAcronymBoundaries(t *testing.T) {
	c := mustClassifier(t, DefaultTable)

	if got := c.Classify("Штаб АТО сообщил о потерях", ""); got != "Украина" {
		t.Errorf("acronym with word boundaries: got %q", got)
	}
	// The acronym embedded in a longer word must not trigger the bucket.
	if got := c.Classify("ДемонстрАТОры вышли на площадь", ""); got != LabelOther {
		t.Errorf("embedded acronym must not classify, got %q", got)
	}
}

func TestDefaultTableCompiles(t *testing.T) {
	c := mustClassifier(t, DefaultTable)
	if len(c.rows) != len(DefaultTable) {
		t.Fatalf("compiled %d rows, want %d", len(c.rows), len(DefaultTable))
	}
}
