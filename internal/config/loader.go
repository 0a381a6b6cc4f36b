package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Load reads configuration from file and environment.
// Priority (highest to lowest): env vars > config file > defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")

	setDefaults(v, cfg)

	v.SetEnvPrefix("HARVESTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("harvester")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".harvester"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && configPath != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is okay if not explicitly specified
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// A config file listing its own sources replaces the built-in table;
	// an absent key keeps the defaults.
	if v.IsSet("sources") {
		cfg.Sources = nil
		if err := v.UnmarshalKey("sources", &cfg.Sources); err != nil {
			return nil, fmt.Errorf("failed to unmarshal sources: %w", err)
		}
	}

	return cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	return Load(path)
}

// setDefaults registers default values in viper.
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("harvest.keywords_file", cfg.Harvest.KeywordsFile)
	v.SetDefault("harvest.stop_words", cfg.Harvest.StopWords)
	v.SetDefault("harvest.history_file", cfg.Harvest.HistoryFile)
	v.SetDefault("harvest.text_size_limit", cfg.Harvest.TextSizeLimit)
	v.SetDefault("harvest.source_workers", cfg.Harvest.SourceWorkers)
	v.SetDefault("harvest.article_workers", cfg.Harvest.ArticleWorkers)
	v.SetDefault("harvest.poll_interval", cfg.Harvest.PollInterval)

	v.SetDefault("fetcher.request_timeout", cfg.Fetcher.RequestTimeout)
	v.SetDefault("fetcher.max_body_size", cfg.Fetcher.MaxBodySize)
	v.SetDefault("fetcher.idle_conn_timeout", cfg.Fetcher.IdleConnTimeout)
	v.SetDefault("fetcher.max_idle_conns", cfg.Fetcher.MaxIdleConns)
	v.SetDefault("fetcher.user_agent", cfg.Fetcher.UserAgent)

	v.SetDefault("storage.jsonl.enabled", cfg.Storage.JSONL.Enabled)
	v.SetDefault("storage.jsonl.path", cfg.Storage.JSONL.Path)
	v.SetDefault("storage.postgres.enabled", cfg.Storage.Postgres.Enabled)
	v.SetDefault("storage.postgres.dsn", cfg.Storage.Postgres.DSN)
	v.SetDefault("storage.postgres.table", cfg.Storage.Postgres.Table)
	v.SetDefault("storage.mongodb.enabled", cfg.Storage.Mongo.Enabled)
	v.SetDefault("storage.mongodb.uri", cfg.Storage.Mongo.URI)
	v.SetDefault("storage.mongodb.database", cfg.Storage.Mongo.Database)
	v.SetDefault("storage.mongodb.collection", cfg.Storage.Mongo.Collection)
	v.SetDefault("storage.elasticsearch.enabled", cfg.Storage.Elastic.Enabled)
	v.SetDefault("storage.elasticsearch.url", cfg.Storage.Elastic.URL)
	v.SetDefault("storage.elasticsearch.index", cfg.Storage.Elastic.Index)

	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("logging.output", cfg.Logging.Output)
}
