package config

import (
	"fmt"
	"strings"
)

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []string

	if c.Harvest.TextSizeLimit <= 0 {
		errs = append(errs, "harvest.text_size_limit must be positive")
	}
	if c.Harvest.SourceWorkers < 1 {
		errs = append(errs, "harvest.source_workers must be at least 1")
	}
	if c.Harvest.ArticleWorkers < 1 {
		errs = append(errs, "harvest.article_workers must be at least 1")
	}
	if c.Harvest.HistoryFile == "" {
		errs = append(errs, "harvest.history_file must not be empty")
	}
	if c.Harvest.PollInterval <= 0 {
		errs = append(errs, "harvest.poll_interval must be positive")
	}

	if c.Fetcher.RequestTimeout <= 0 {
		errs = append(errs, "fetcher.request_timeout must be positive")
	}
	if c.Fetcher.MaxBodySize < 0 {
		errs = append(errs, "fetcher.max_body_size must not be negative")
	}

	if len(c.Sources) == 0 {
		errs = append(errs, "at least one source must be configured")
	}
	seen := make(map[string]struct{}, len(c.Sources))
	for i, s := range c.Sources {
		if s.Name == "" {
			errs = append(errs, fmt.Sprintf("sources[%d]: name must not be empty", i))
			continue
		}
		if s.FeedURL == "" {
			errs = append(errs, fmt.Sprintf("source %q: feed_url must not be empty", s.Name))
		}
		if _, dup := seen[s.Name]; dup {
			errs = append(errs, fmt.Sprintf("source %q: duplicate name", s.Name))
		}
		seen[s.Name] = struct{}{}
	}

	if c.Storage.JSONL.Enabled && c.Storage.JSONL.Path == "" {
		errs = append(errs, "storage.jsonl.path must not be empty when enabled")
	}
	if c.Storage.Postgres.Enabled && c.Storage.Postgres.DSN == "" {
		errs = append(errs, "storage.postgres.dsn must not be empty when enabled")
	}
	if c.Storage.Mongo.Enabled && c.Storage.Mongo.URI == "" {
		errs = append(errs, "storage.mongodb.uri must not be empty when enabled")
	}
	if c.Storage.Elastic.Enabled && c.Storage.Elastic.URL == "" {
		errs = append(errs, "storage.elasticsearch.url must not be empty when enabled")
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level))
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("logging.format %q is not one of text, json", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
