package main

import (
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/amishk599/jobhunter/internal/adapter"
	"github.com/amishk599/jobhunter/internal/aggregator"
	"github.com/amishk599/jobhunter/internal/config"
	"github.com/amishk599/jobhunter/internal/httpx"
	"github.com/amishk599/jobhunter/internal/model"
	"github.com/amishk599/jobhunter/internal/ratelimit"
)

var (
	cfgPath string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "jobhunter",
	Short: "Search several job boards at once",
	Long:  "jobhunter fans a query out to Remotive, TheMuse, Adzuna and Reed and merges the results newest first.",
	// With no subcommand, run the HTTP server.
	RunE:         runServe,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: "+config.EnvConfigPath+" env var or ./"+config.DefaultPath+")")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// loadConfig resolves the config path and parses it.
// Priority: --config > JOBHUNTER_CONFIG > ./config.yaml (defaults when absent).
func loadConfig(path string) (*config.Config, error) {
	return config.LoadOrDefault(path)
}

func setupLogger(w io.Writer, format string, dbg bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if dbg {
		opts.Level = slog.LevelDebug
	}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// newAggregator wires the shared HTTP client, the adapters and the optional
// per-provider throttle into an Aggregator.
func newAggregator(cfg *config.Config, logger *slog.Logger) *aggregator.Aggregator {
	client := httpx.NewClient(cfg.Search.Timeout, cfg.Search.UserAgent)
	limiter := ratelimit.NewSourceRateLimiter(cfg.RateLimit.PerSource)
	if limiter.Enabled() {
		logger.Info("provider rate limiting enabled", "per_source", cfg.RateLimit.PerSource)
	}
	return aggregator.New(buildFactory(client, limiter, logger), cfg.Search.Timeout, logger)
}

func buildFactory(client *http.Client, limiter *ratelimit.SourceRateLimiter, logger *slog.Logger) aggregator.Factory {
	return func(src model.Source, creds model.Credentials) (model.JobSearcher, error) {
		s, err := adapter.New(src, creds, client, logger)
		if err != nil {
			return nil, err
		}
		if limiter.Enabled() {
			s = ratelimit.NewRateLimitedSearcher(s, limiter)
		}
		return s, nil
	}
}

// mustLoad loads config and builds the logger, exiting on a bad config.
func mustLoad(logOut io.Writer) (*config.Config, *slog.Logger) {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		setupLogger(os.Stderr, "text", debug).Error("failed to load config", "error", err)
		os.Exit(1)
	}
	return cfg, setupLogger(logOut, cfg.Log.Format, debug)
}
