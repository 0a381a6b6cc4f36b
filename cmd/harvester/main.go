package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/akarasev/harvester/internal/config"
	"github.com/akarasev/harvester/internal/extract"
	"github.com/akarasev/harvester/internal/feed"
	"github.com/akarasev/harvester/internal/fetcher"
	"github.com/akarasev/harvester/internal/geo"
	"github.com/akarasev/harvester/internal/harvester"
	"github.com/akarasev/harvester/internal/history"
	"github.com/akarasev/harvester/internal/match"
	"github.com/akarasev/harvester/internal/pipeline"
	"github.com/akarasev/harvester/internal/storage"
)

var (
	cfgFile      string
	verbose      bool
	keywordsFile string
	historyFile  string
	pollInterval time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "harvester",
		Short: "harvester — RSS news harvester with keyword filtering and geo classification",
		Long: `harvester polls a fixed set of news feeds, keeps the entries whose
titles match the configured keyword rules, downloads and extracts the
article text, assigns a geography label and persists the result.

A durable history file guarantees each link is processed at most once
across restarts.`,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(pollCmd())
	rootCmd.AddCommand(sourcesCmd())
	rootCmd.AddCommand(configCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runCmd creates the "run" subcommand: one harvest pass over every
// source, then exit.
func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one harvest pass and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withHarvester(func(ctx context.Context, h *harvester.Harvester, cfg *config.Config, logger *slog.Logger) error {
				stats := h.Run(ctx)
				printStats(stats)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&keywordsFile, "keywords", "k", "", "keywords file (one regex per line)")
	cmd.Flags().StringVar(&historyFile, "history", "", "history file path")
	return cmd
}

// pollCmd creates the "poll" subcommand: harvest passes forever, one
// per interval.
func pollCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "poll",
		Short: "Harvest continuously, one pass per interval",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withHarvester(func(ctx context.Context, h *harvester.Harvester, cfg *config.Config, logger *slog.Logger) error {
				logger.Info("polling started", "interval", cfg.Harvest.PollInterval)
				h.Poll(ctx, cfg.Harvest.PollInterval)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&keywordsFile, "keywords", "k", "", "keywords file (one regex per line)")
	cmd.Flags().StringVar(&historyFile, "history", "", "history file path")
	cmd.Flags().DurationVarP(&pollInterval, "interval", "i", 0, "poll interval (0 = use config value)")
	return cmd
}

// withHarvester loads config, assembles the full pipeline and hands a
// ready harvester to fn, tearing everything down afterwards.
func withHarvester(fn func(context.Context, *harvester.Harvester, *config.Config, *slog.Logger) error) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyCLIOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := setupLogger(&cfg.Logging)

	keywords, err := match.LoadFile(cfg.Harvest.KeywordsFile)
	if err != nil {
		return fmt.Errorf("load keywords: %w", err)
	}
	stopWords := cfg.Harvest.StopWords
	if len(stopWords) == 0 {
		stopWords = match.DefaultStopWords
	}
	rules, err := match.Compile(keywords, stopWords)
	if err != nil {
		return fmt.Errorf("compile keyword rules: %w", err)
	}

	hist, err := history.Open(cfg.Harvest.HistoryFile)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer hist.Close()

	classifier, err := geo.NewClassifier(geo.DefaultTable)
	if err != nil {
		return fmt.Errorf("compile geo table: %w", err)
	}

	sinks, err := storage.Build(&cfg.Storage, logger)
	if err != nil {
		return fmt.Errorf("build storage: %w", err)
	}
	defer sinks.Close()

	client := fetcher.New(&cfg.Fetcher, logger)
	defer client.Close()

	proc := pipeline.New(client, extract.NewRegistry(), classifier, sinks, hist,
		cfg.Harvest.TextSizeLimit, logger)
	filter := feed.New(rules, hist, logger)

	h := harvester.New(config.Sources(cfg), client, filter, proc,
		cfg.Harvest.SourceWorkers, cfg.Harvest.ArticleWorkers, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received signal, shutting down...", "signal", sig)
		cancel()
	}()

	logger.Info("harvester starting",
		"sources", len(cfg.Sources),
		"keywords", rules.Len(),
		"history", hist.Path(),
	)
	return fn(ctx, h, cfg, logger)
}

func printStats(stats *harvester.Stats) {
	s := stats.Snapshot()
	fmt.Printf("\nHarvest pass complete in %v\n", s["elapsed"])
	fmt.Printf("  Feeds:    %v fetched, %v failed\n", s["feeds_fetched"], s["feeds_failed"])
	fmt.Printf("  Entries:  %v matched\n", s["entries_matched"])
	fmt.Printf("  Articles: %v persisted, %v dropped, %v failed\n",
		s["persisted"], s["dropped"], s["failed"])
}

// sourcesCmd creates the "sources" subcommand for listing the
// configured publisher table.
func sourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "List configured sources",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			for _, s := range cfg.Sources {
				enc := s.Encoding
				if enc == "" {
					enc = "utf-8"
				}
				fmt.Printf("%-25s %-14s %-13s %s\n", s.Name, s.Source().ExtractorKey(), enc, s.FeedURL)
			}
			return nil
		},
	}
}

// configCmd creates the "config" subcommand for inspecting configuration.
func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			fmt.Printf("Harvest:\n")
			fmt.Printf("  Keywords File:    %s\n", cfg.Harvest.KeywordsFile)
			fmt.Printf("  History File:     %s\n", cfg.Harvest.HistoryFile)
			fmt.Printf("  Text Size Limit:  %d\n", cfg.Harvest.TextSizeLimit)
			fmt.Printf("  Source Workers:   %d\n", cfg.Harvest.SourceWorkers)
			fmt.Printf("  Article Workers:  %d\n", cfg.Harvest.ArticleWorkers)
			fmt.Printf("  Poll Interval:    %s\n", cfg.Harvest.PollInterval)
			fmt.Printf("\nFetcher:\n")
			fmt.Printf("  Request Timeout:  %s\n", cfg.Fetcher.RequestTimeout)
			fmt.Printf("  Max Body Size:    %d bytes\n", cfg.Fetcher.MaxBodySize)
			fmt.Printf("\nStorage:\n")
			fmt.Printf("  JSONL:            enabled=%v path=%s\n", cfg.Storage.JSONL.Enabled, cfg.Storage.JSONL.Path)
			fmt.Printf("  PostgreSQL:       enabled=%v table=%s\n", cfg.Storage.Postgres.Enabled, cfg.Storage.Postgres.Table)
			fmt.Printf("  MongoDB:          enabled=%v db=%s collection=%s\n",
				cfg.Storage.Mongo.Enabled, cfg.Storage.Mongo.Database, cfg.Storage.Mongo.Collection)
			fmt.Printf("  Elasticsearch:    enabled=%v index=%s\n", cfg.Storage.Elastic.Enabled, cfg.Storage.Elastic.Index)
			fmt.Printf("\nSources:            %d configured\n", len(cfg.Sources))
			return nil
		},
	}
}

// versionCmd creates the "version" subcommand.
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("harvester %s\n", config.Version)
		},
	}
}

// setupLogger creates a structured logger from the logging config.
func setupLogger(cfg *config.LoggingConfig) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	if verbose {
		level = slog.LevelDebug
	}

	var out *os.File
	switch cfg.Output {
	case "", "stderr":
		out = os.Stderr
	case "stdout":
		out = os.Stdout
	default:
		f, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log output %q: %v, falling back to stderr\n", cfg.Output, err)
			out = os.Stderr
		} else {
			out = f
		}
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}
	return slog.New(handler)
}

// applyCLIOverrides applies command-line flag values to the config.
func applyCLIOverrides(cfg *config.Config) {
	if keywordsFile != "" {
		cfg.Harvest.KeywordsFile = keywordsFile
	}
	if historyFile != "" {
		cfg.Harvest.HistoryFile = historyFile
	}
	if pollInterval > 0 {
		cfg.Harvest.PollInterval = pollInterval
	}
}
