package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/akarasev/harvester/internal/geo"
	"github.com/akarasev/harvester/internal/types"
)

type fakeFetcher struct {
	page string
	err  error
}

func (f *fakeFetcher) FetchPage(_ context.Context, _, _ string) (string, error) {
	return f.page, f.err
}

type fakeExtractor struct {
	text string
	err  error
}

func (f *fakeExtractor) Extract(_ *types.Source, _ string) (string, error) {
	return f.text, f.err
}

type fakeClassifier struct {
	label string
}

func (f *fakeClassifier) Classify(_, _ string) string { return f.label }

type fakeSink struct {
	stored []*types.Article
	err    error
}

func (f *fakeSink) Store(_ context.Context, art *types.Article) error {
	if f.err != nil {
		return f.err
	}
	f.stored = append(f.stored, art)
	return nil
}

type fakeRecorder struct {
	links []string
	err   error
}

func (f *fakeRecorder) Record(link string) error {
	if f.err != nil {
		return f.err
	}
	f.links = append(f.links, link)
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(discard{}, nil))
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func testArticle() *types.Article {
	return &types.Article{
		Link:      "http://lenta.ru/news/1",
		Title:     "Бои под Донецком",
		Published: time.Now(),
		Source:    &types.Source{Name: "Лента.ру", Extractor: "lenta"},
	}
}

func TestProcessPersists(t *testing.T) {
	sink := &fakeSink{}
	rec := &fakeRecorder{}
	p := New(
		&fakeFetcher{page: "<html></html>"},
		&fakeExtractor{text: "  Первый абзац.  \n\n  Второй.  \n"},
		&fakeClassifier{label: "Украина"},
		sink, rec, 5000, discardLogger(),
	)

	out := p.Process(context.Background(), testArticle())
	if out.Status != StatusPersisted {
		t.Fatalf("status: got %v (%s), err %v", out.Status, out.Reason, out.Err)
	}
	if len(sink.stored) != 1 {
		t.Fatalf("stored %d articles, want 1", len(sink.stored))
	}
	art := sink.stored[0]
	if art.Text != "Первый абзац.\nВторой." {
		t.Errorf("text not normalized: %q", art.Text)
	}
	if art.Country != "Украина" {
		t.Errorf("country: got %q", art.Country)
	}
	if len(rec.links) != 1 || rec.links[0] != art.Link {
		t.Errorf("history record: got %v", rec.links)
	}
}

func TestProcessFetchFailureNotRecorded(t *testing.T) {
	rec := &fakeRecorder{}
	p := New(
		&fakeFetcher{err: errors.New("connection reset")},
		&fakeExtractor{}, &fakeClassifier{label: geo.LabelOther},
		&fakeSink{}, rec, 5000, discardLogger(),
	)

	out := p.Process(context.Background(), testArticle())
	if out.Status != StatusFailed || out.Reason != "fetch" {
		t.Fatalf("outcome: %+v", out)
	}
	if len(rec.links) != 0 {
		t.Errorf("failed article must not enter history: %v", rec.links)
	}
}

func TestProcessStoreFailureNotRecorded(t *testing.T) {
	rec := &fakeRecorder{}
	p := New(
		&fakeFetcher{page: "x"},
		&fakeExtractor{text: "Текст."},
		&fakeClassifier{label: "Сирия"},
		&fakeSink{err: errors.New("disk full")}, rec, 5000, discardLogger(),
	)

	out := p.Process(context.Background(), testArticle())
	if out.Status != StatusFailed || out.Reason != "store" {
		t.Fatalf("outcome: %+v", out)
	}
	if len(rec.links) != 0 {
		t.Errorf("unstored article must not enter history: %v", rec.links)
	}
}

func TestProcessOversizedUnclassifiedDropped(t *testing.T) {
	sink := &fakeSink{}
	rec := &fakeRecorder{}
	long := strings.Repeat("ж", 5001)
	p := New(
		&fakeFetcher{page: "x"},
		&fakeExtractor{text: long},
		&fakeClassifier{label: geo.LabelOther},
		sink, rec, 5000, discardLogger(),
	)

	out := p.Process(context.Background(), testArticle())
	if out.Status != StatusDropped || out.Reason != "oversized-unclassified" {
		t.Fatalf("outcome: %+v", out)
	}
	if len(sink.stored) != 0 {
		t.Error("dropped article must not be stored")
	}
	if len(rec.links) != 0 {
		t.Errorf("dropped article must not enter history: %v", rec.links)
	}
}

func TestProcessOversizedClassifiedKept(t *testing.T) {
	sink := &fakeSink{}
	long := strings.Repeat("ж", 5001)
	p := New(
		&fakeFetcher{page: "x"},
		&fakeExtractor{text: long},
		&fakeClassifier{label: "Украина"},
		sink, &fakeRecorder{}, 5000, discardLogger(),
	)

	out := p.Process(context.Background(), testArticle())
	if out.Status != StatusPersisted {
		t.Fatalf("classified article passes regardless of size: %+v", out)
	}
	if len(sink.stored) != 1 {
		t.Error("article should be stored")
	}
}

func TestProcessAtLimitKept(t *testing.T) {
	sink := &fakeSink{}
	exact := strings.Repeat("ж", 5000)
	p := New(
		&fakeFetcher{page: "x"},
		&fakeExtractor{text: exact},
		&fakeClassifier{label: geo.LabelOther},
		sink, &fakeRecorder{}, 5000, discardLogger(),
	)

	out := p.Process(context.Background(), testArticle())
	if out.Status != StatusPersisted {
		t.Fatalf("size exactly at limit is admitted: %+v", out)
	}
}

func TestProcessEmptyBodyDropped(t *testing.T) {
	rec := &fakeRecorder{}
	p := New(
		&fakeFetcher{page: "x"},
		&fakeExtractor{text: "  \n \n  "},
		&fakeClassifier{label: "Украина"},
		&fakeSink{}, rec, 5000, discardLogger(),
	)

	out := p.Process(context.Background(), testArticle())
	if out.Status != StatusDropped || out.Reason != "empty" {
		t.Fatalf("outcome: %+v", out)
	}
	if len(rec.links) != 0 {
		t.Errorf("dropped article must not enter history: %v", rec.links)
	}
}

func TestProcessRecordsOnlyOnPersist(t *testing.T) {
	rec := &fakeRecorder{}
	long := strings.Repeat("ж", 5001)
	p := New(
		&fakeFetcher{page: "x"},
		&fakeExtractor{text: long},
		&fakeClassifier{label: geo.LabelOther},
		&fakeSink{}, rec, 5000, discardLogger(),
	)

	// A drop leaves no history entry, so the same link is admitted to
	// processing again on a later run.
	for i := 0; i < 2; i++ {
		out := p.Process(context.Background(), testArticle())
		if out.Status != StatusDropped {
			t.Fatalf("run %d: outcome %+v", i, out)
		}
	}
	if len(rec.links) != 0 {
		t.Errorf("history must only hold persisted links: %v", rec.links)
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"  \n\t\n ", ""},
		{"a\nb", "a\nb"},
		{"  a  \n\n  b  \n", "a\nb"},
		{"\nМинск.\r\n\nПереговоры.\n", "Минск.\nПереговоры."},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
