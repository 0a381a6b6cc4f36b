package history

import (
	"path/filepath"
	"sync"
	"testing"
)

func TestSeenAfterRecord(t *testing.T) {
	h, err := Open(filepath.Join(t.TempDir(), "history.log"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer h.Close()

	link := "http://example.com/news/1"
	if h.Seen(link) {
		t.Error("fresh history should not contain link")
	}
	if err := h.Record(link); err != nil {
		t.Fatalf("record: %v", err)
	}
	if !h.Seen(link) {
		t.Error("recorded link should be seen")
	}
}

func TestSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.log")

	h, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := h.Record("http://example.com/a"); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := h.Record("http://example.com/b"); err != nil {
		t.Fatalf("record: %v", err)
	}
	h.Close()

	// Simulated process restart.
	h2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer h2.Close()

	if !h2.Seen("http://example.com/a") || !h2.Seen("http://example.com/b") {
		t.Error("links recorded before restart should still be seen")
	}
	if h2.Seen("http://example.com/c") {
		t.Error("unrecorded link should not be seen")
	}
}

func TestSubstringContainment(t *testing.T) {
	h, err := Open(filepath.Join(t.TempDir(), "history.log"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer h.Close()

	if err := h.Record("http://example.com/news/123"); err != nil {
		t.Fatalf("record: %v", err)
	}

	// Documented containment semantics: a prefix of a recorded link
	// counts as seen.
	if !h.Seen("http://example.com/news/12") {
		t.Error("containment check should match a prefix of a recorded link")
	}
}

func TestConcurrentRecords(t *testing.T) {
	h, err := Open(filepath.Join(t.TempDir(), "history.log"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer h.Close()

	links := []string{
		"http://example.com/x1", "http://example.com/x2", "http://example.com/x3",
		"http://example.com/x4", "http://example.com/x5", "http://example.com/x6",
	}

	var wg sync.WaitGroup
	for _, link := range links {
		wg.Add(1)
		go func(l string) {
			defer wg.Done()
			if err := h.Record(l); err != nil {
				t.Errorf("record %s: %v", l, err)
			}
		}(link)
	}
	wg.Wait()

	for _, link := range links {
		if !h.Seen(link) {
			t.Errorf("link %s lost under concurrent appends", link)
		}
	}
}
