package fetcher

import (
	"compress/gzip"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/text/encoding/charmap"

	"github.com/akarasev/harvester/internal/config"
	"github.com/akarasev/harvester/internal/types"
)

func testClient(t *testing.T) *Client {
	t.Helper()
	cfg := &config.FetcherConfig{
		RequestTimeout:  5 * time.Second,
		MaxBodySize:     1 << 20,
		IdleConnTimeout: time.Second,
		MaxIdleConns:    2,
		UserAgent:       "test-agent",
	}
	logger := slog.New(slog.NewTextHandler(discard{}, nil))
	c := New(cfg, logger)
	t.Cleanup(func() { c.Close() })
	return c
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func TestFetchPlainBody(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte("тело ответа"))
	}))
	defer srv.Close()

	body, err := testClient(t).Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if string(body) != "тело ответа" {
		t.Errorf("body: %q", body)
	}
	if gotUA != "test-agent" {
		t.Errorf("user agent: %q", gotUA)
	}
}

func TestFetchGzipBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Encoding", "gzip")
		gz := gzip.NewWriter(w)
		gz.Write([]byte("сжатое тело"))
		gz.Close()
	}))
	defer srv.Close()

	body, err := testClient(t).Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if string(body) != "сжатое тело" {
		t.Errorf("body: %q", body)
	}
}

func TestFetchStatusErrors(t *testing.T) {
	tests := []struct {
		status    int
		retryable bool
	}{
		{http.StatusNotFound, false},
		{http.StatusForbidden, false},
		{http.StatusTooManyRequests, true},
		{http.StatusServiceUnavailable, true},
	}
	for _, tt := range tests {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(tt.status)
		}))
		_, err := testClient(t).Fetch(context.Background(), srv.URL)
		srv.Close()

		var fe *types.FetchError
		if !errors.As(err, &fe) {
			t.Fatalf("status %d: expected FetchError, got %v", tt.status, err)
		}
		if fe.StatusCode != tt.status {
			t.Errorf("status %d: recorded %d", tt.status, fe.StatusCode)
		}
		if fe.Retryable != tt.retryable {
			t.Errorf("status %d: retryable = %v, want %v", tt.status, fe.Retryable, tt.retryable)
		}
	}
}

func TestFetchEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	_, err := testClient(t).Fetch(context.Background(), srv.URL)
	if !errors.Is(err, types.ErrEmptyBody) {
		t.Errorf("expected ErrEmptyBody, got %v", err)
	}
}

func TestFetchPageDecodesCP1251(t *testing.T) {
	encoded, err := charmap.Windows1251.NewEncoder().String("Новости дня")
	if err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(encoded))
	}))
	defer srv.Close()

	page, err := testClient(t).FetchPage(context.Background(), srv.URL, "windows-1251")
	if err != nil {
		t.Fatalf("fetch page: %v", err)
	}
	if !strings.Contains(page, "Новости дня") {
		t.Errorf("page not decoded to UTF-8: %q", page)
	}
}

func TestFetchPageUTF8Passthrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("уже UTF-8"))
	}))
	defer srv.Close()

	page, err := testClient(t).FetchPage(context.Background(), srv.URL, "")
	if err != nil {
		t.Fatalf("fetch page: %v", err)
	}
	if page != "уже UTF-8" {
		t.Errorf("page: %q", page)
	}
}

func TestFetchBodySizeCap(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write(make([]byte, 4096))
	}))
	defer srv.Close()

	cfg := &config.FetcherConfig{
		RequestTimeout: 5 * time.Second,
		MaxBodySize:    100,
		UserAgent:      "test-agent",
	}
	c := New(cfg, slog.New(slog.NewTextHandler(discard{}, nil)))
	defer c.Close()

	body, err := c.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(body) != 100 {
		t.Errorf("body should be capped at 100 bytes, got %d", len(body))
	}
}
