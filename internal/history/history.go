package history

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// File is the durable record of previously processed article links,
// backed by an append-only text file. Membership is a substring
// containment check against the accumulated file content, not an
// exact-line match; a link that is a prefix of a longer recorded link
// can therefore false-positive. That semantics is intentional and kept
// for compatibility with existing history files. O(n) per lookup,
// acceptable for modest history sizes.
type File struct {
	path string

	mu      sync.RWMutex
	f       *os.File
	content strings.Builder
}

// Open loads the existing history file (creating it if absent) and
// keeps it open for appends. Links recorded in earlier runs stay seen.
func Open(path string) (*File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create history dir: %w", err)
		}
	}

	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read history: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}

	h := &File{path: path, f: f}
	h.content.Write(existing)
	return h, nil
}

// Seen reports whether link occurs anywhere in the accumulated history.
func (h *File) Seen(link string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return strings.Contains(h.content.String(), link)
}

// Record appends the link with a timestamp marker. Appends are
// serialized; the in-memory view reflects the write before Record
// returns. Append is the only mutation: no deletion, no compaction.
func (h *File) Record(link string) error {
	line := fmt.Sprintf("[%s] | %s\n", time.Now().Format("2006-01-02 15:04:05"), link)

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, err := h.f.WriteString(line); err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	h.content.WriteString(line)
	return nil
}

// Path returns the backing file path.
func (h *File) Path() string { return h.path }

// Close releases the backing file handle.
func (h *File) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.f.Close()
}
