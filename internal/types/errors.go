package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure modes.
var (
	ErrNoExtractor  = errors.New("no extractor registered for source")
	ErrEmptyBody    = errors.New("empty response body")
	ErrContentGone  = errors.New("expected markup missing")
	ErrSinkDisabled = errors.New("storage sink is disabled")
)

// FetchError wraps errors that occur while downloading a feed or an
// article body.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
	Retryable  bool
}

func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("fetch error for %s (status %d): %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch error for %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

func (e *FetchError) IsRetryable() bool { return e.Retryable }

// ExtractError wraps structural failures in per-publisher text
// extraction: the page downloaded fine but the expected markup was not
// where the publisher rule looks for it.
type ExtractError struct {
	Source string
	URL    string
	Err    error
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("extract error (%s) for %s: %v", e.Source, e.URL, e.Err)
}

func (e *ExtractError) Unwrap() error { return e.Err }

// StorageError wraps errors from a persistence sink.
type StorageError struct {
	Sink string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error (%s): %v", e.Sink, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
