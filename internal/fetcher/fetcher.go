package fetcher

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"syscall"
	"time"

	"github.com/andybalholm/brotli"
	"golang.org/x/net/html/charset"

	"github.com/akarasev/harvester/internal/config"
	"github.com/akarasev/harvester/internal/types"
)

// Client downloads feeds and article bodies over HTTP. Feeds come back
// as raw bytes (the feed parser sniffs its own encoding); article pages
// are decoded to UTF-8 using the publisher's declared charset.
type Client struct {
	client    *http.Client
	cfg       *config.FetcherConfig
	userAgent string
	logger    *slog.Logger
}

// New creates an HTTP client from configuration.
func New(cfg *config.FetcherConfig, logger *slog.Logger) *Client {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   cfg.RequestTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        cfg.MaxIdleConns,
		MaxIdleConnsPerHost: 4,
		IdleConnTimeout:     cfg.IdleConnTimeout,
		TLSHandshakeTimeout: 10 * time.Second,
		DisableCompression:  true, // decompression handled here, including brotli
	}

	return &Client{
		client: &http.Client{
			Transport: transport,
			Timeout:   cfg.RequestTimeout,
		},
		cfg:       cfg,
		userAgent: cfg.UserAgent,
		logger:    logger.With("component", "fetcher"),
	}
}

// Fetch downloads a URL and returns the decompressed body bytes.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &types.FetchError{URL: url, Err: err, Retryable: false}
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Encoding", "gzip, deflate, br")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &types.FetchError{URL: url, Err: err, Retryable: isRetryable(err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, &types.FetchError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("HTTP %d", resp.StatusCode),
			Retryable:  resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests,
		}
	}

	var reader io.Reader = resp.Body
	if c.cfg.MaxBodySize > 0 {
		reader = io.LimitReader(reader, c.cfg.MaxBodySize)
	}
	reader, err = decompressReader(resp, reader)
	if err != nil {
		return nil, &types.FetchError{URL: url, Err: err, Retryable: false}
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, &types.FetchError{URL: url, Err: err, Retryable: true}
	}
	if len(body) == 0 {
		return nil, &types.FetchError{URL: url, Err: types.ErrEmptyBody, Retryable: true}
	}

	c.logger.Debug("fetch complete",
		"url", url, "status", resp.StatusCode, "size", len(body), "duration", time.Since(start))
	return body, nil
}

// FetchPage downloads an article page and decodes it to UTF-8 using the
// given charset label (e.g. "windows-1251"). An empty label means the
// page is already UTF-8.
func (c *Client) FetchPage(ctx context.Context, url, encoding string) (string, error) {
	body, err := c.Fetch(ctx, url)
	if err != nil {
		return "", err
	}
	decoded, err := decode(body, encoding)
	if err != nil {
		return "", &types.FetchError{URL: url, Err: err, Retryable: false}
	}
	return decoded, nil
}

// Close releases idle connections.
func (c *Client) Close() error {
	c.client.CloseIdleConnections()
	return nil
}

func decode(body []byte, encoding string) (string, error) {
	if encoding == "" || encoding == "utf-8" {
		return string(body), nil
	}
	r, err := charset.NewReaderLabel(encoding, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("charset %q: %w", encoding, err)
	}
	decoded, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("decode %q: %w", encoding, err)
	}
	return string(decoded), nil
}

// decompressReader wraps a reader with the decompressor the response
// encoding calls for (gzip, deflate, or brotli).
func decompressReader(resp *http.Response, reader io.Reader) (io.Reader, error) {
	switch resp.Header.Get("Content-Encoding") {
	case "gzip":
		return gzip.NewReader(reader)
	case "deflate":
		return flate.NewReader(reader), nil
	case "br":
		return brotli.NewReader(reader), nil
	default:
		return reader, nil
	}
}

// isRetryable checks if a network error warrants a retry on a later
// scheduled run.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return true
	}
	if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		if errors.Is(opErr.Err, syscall.ECONNRESET) || errors.Is(opErr.Err, syscall.ECONNREFUSED) {
			return true
		}
	}
	return false
}
