package config

import (
	"time"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Config is the root configuration for the harvester.
type Config struct {
	Harvest HarvestConfig  `mapstructure:"harvest" yaml:"harvest"`
	Fetcher FetcherConfig  `mapstructure:"fetcher" yaml:"fetcher"`
	Storage StorageConfig  `mapstructure:"storage" yaml:"storage"`
	Logging LoggingConfig  `mapstructure:"logging" yaml:"logging"`
	Sources []SourceConfig `mapstructure:"sources" yaml:"sources"`
}

// HarvestConfig controls the selection and processing pipeline.
type HarvestConfig struct {
	KeywordsFile   string        `mapstructure:"keywords_file"   yaml:"keywords_file"`
	StopWords      []string      `mapstructure:"stop_words"      yaml:"stop_words"`
	HistoryFile    string        `mapstructure:"history_file"    yaml:"history_file"`
	TextSizeLimit  int           `mapstructure:"text_size_limit" yaml:"text_size_limit"`
	SourceWorkers  int           `mapstructure:"source_workers"  yaml:"source_workers"`
	ArticleWorkers int           `mapstructure:"article_workers" yaml:"article_workers"`
	PollInterval   time.Duration `mapstructure:"poll_interval"   yaml:"poll_interval"`
}

// FetcherConfig controls the HTTP client.
type FetcherConfig struct {
	RequestTimeout  time.Duration `mapstructure:"request_timeout"   yaml:"request_timeout"`
	MaxBodySize     int64         `mapstructure:"max_body_size"     yaml:"max_body_size"`
	IdleConnTimeout time.Duration `mapstructure:"idle_conn_timeout" yaml:"idle_conn_timeout"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"    yaml:"max_idle_conns"`
	UserAgent       string        `mapstructure:"user_agent"        yaml:"user_agent"`
}

// SourceConfig describes one configured publisher.
type SourceConfig struct {
	Name       string        `mapstructure:"name"        yaml:"name"`
	Extractor  string        `mapstructure:"extractor"   yaml:"extractor"`
	FeedURL    string        `mapstructure:"feed_url"    yaml:"feed_url"`
	Encoding   string        `mapstructure:"encoding"    yaml:"encoding"`
	TimeOffset time.Duration `mapstructure:"time_offset" yaml:"time_offset"`
}

// StorageConfig controls the persistence sinks. Each sink is
// independent; any combination may be enabled at once.
type StorageConfig struct {
	JSONL    JSONLSinkConfig    `mapstructure:"jsonl"         yaml:"jsonl"`
	Postgres PostgresSinkConfig `mapstructure:"postgres"      yaml:"postgres"`
	Mongo    MongoSinkConfig    `mapstructure:"mongodb"       yaml:"mongodb"`
	Elastic  ElasticSinkConfig  `mapstructure:"elasticsearch" yaml:"elasticsearch"`
}

// JSONLSinkConfig writes entries to a local newline-delimited JSON file.
type JSONLSinkConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Path    string `mapstructure:"path"    yaml:"path"`
}

// PostgresSinkConfig writes entries to a PostgreSQL table.
type PostgresSinkConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	DSN     string `mapstructure:"dsn"     yaml:"dsn"`
	Table   string `mapstructure:"table"   yaml:"table"`
}

// MongoSinkConfig writes entries to a MongoDB collection.
type MongoSinkConfig struct {
	Enabled    bool   `mapstructure:"enabled"    yaml:"enabled"`
	URI        string `mapstructure:"uri"        yaml:"uri"`
	Database   string `mapstructure:"database"   yaml:"database"`
	Collection string `mapstructure:"collection" yaml:"collection"`
}

// ElasticSinkConfig indexes entries into Elasticsearch.
type ElasticSinkConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	URL     string `mapstructure:"url"     yaml:"url"`
	Index   string `mapstructure:"index"   yaml:"index"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
	Output string `mapstructure:"output" yaml:"output"`
}

// DefaultConfig returns a Config with sensible defaults, including the
// full built-in publisher table.
func DefaultConfig() *Config {
	return &Config{
		Harvest: HarvestConfig{
			KeywordsFile:   "keywords.txt",
			HistoryFile:    "history.log",
			TextSizeLimit:  5000,
			SourceWorkers:  4,
			ArticleWorkers: 8,
			PollInterval:   15 * time.Minute,
		},
		Fetcher: FetcherConfig{
			RequestTimeout:  20 * time.Second,
			MaxBodySize:     10 * 1024 * 1024, // 10MB
			IdleConnTimeout: 90 * time.Second,
			MaxIdleConns:    100,
			UserAgent:       "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		},
		Storage: StorageConfig{
			JSONL: JSONLSinkConfig{
				Enabled: true,
				Path:    "./output/entries.jsonl",
			},
			Postgres: PostgresSinkConfig{
				Table: "entries",
			},
			Mongo: MongoSinkConfig{
				URI:        "mongodb://localhost:27017",
				Database:   "harvester_db",
				Collection: "entries",
			},
			Elastic: ElasticSinkConfig{
				URL:   "http://localhost:9200",
				Index: "entries",
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
		Sources: DefaultSources(),
	}
}
