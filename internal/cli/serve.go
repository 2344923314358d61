package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/evcraddock/review-analyzer/internal/logging"
	"github.com/evcraddock/review-analyzer/internal/review"
	"github.com/evcraddock/review-analyzer/internal/seed"
	"github.com/evcraddock/review-analyzer/internal/sentiment"
	"github.com/evcraddock/review-analyzer/internal/web"
)

// serveOptions configures the HTTP server. Unset flags fall back to the
// environment, then to defaults.
type serveOptions struct {
	Port      int
	SeedPath  string
	RedisAddr string
	CacheTTL  time.Duration
	Dev       bool
}

func newServeCmd() *cobra.Command {
	var opts serveOptions

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the review HTTP server",
		Long: `Start the HTTP server. GET / lists reviews with sentiment scores,
POST / submits a new review.

Environment (used when the matching flag is not given):
  PORT                 port to listen on
  SEED_PATH            CSV or SQLite file with initial reviews
  REDIS_ADDR           Redis address for the sentiment cache
  SENTIMENT_CACHE_TTL  cache entry lifetime (e.g. 24h)
  RA_DEV               "true" for human-readable debug logs`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := resolveServeOptions(cmd, opts)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, resolved)
		},
	}

	cmd.Flags().IntVar(&opts.Port, "port", 8000, "port to listen on")
	cmd.Flags().StringVar(&opts.SeedPath, "seed", "", "seed file (.csv or .db) loaded at startup")
	cmd.Flags().StringVar(&opts.RedisAddr, "redis-addr", "", "Redis address for caching sentiment scores (disabled if empty)")
	cmd.Flags().DurationVar(&opts.CacheTTL, "cache-ttl", sentiment.DefaultCacheTTL, "sentiment cache entry lifetime")
	cmd.Flags().BoolVar(&opts.Dev, "dev", false, "human-readable debug logging")

	return cmd
}

// resolveServeOptions fills flags the user did not set from the environment.
func resolveServeOptions(cmd *cobra.Command, opts serveOptions) (serveOptions, error) {
	flags := cmd.Flags()

	if !flags.Changed("port") {
		if v := os.Getenv("PORT"); v != "" {
			port, err := strconv.Atoi(v)
			if err != nil {
				return opts, fmt.Errorf("invalid PORT %q: %w", v, err)
			}
			opts.Port = port
		}
	}
	if !flags.Changed("seed") {
		opts.SeedPath = envOr("SEED_PATH", opts.SeedPath)
	}
	if !flags.Changed("redis-addr") {
		opts.RedisAddr = envOr("REDIS_ADDR", opts.RedisAddr)
	}
	if !flags.Changed("cache-ttl") {
		if v := os.Getenv("SENTIMENT_CACHE_TTL"); v != "" {
			ttl, err := time.ParseDuration(v)
			if err != nil {
				return opts, fmt.Errorf("invalid SENTIMENT_CACHE_TTL %q: %w", v, err)
			}
			opts.CacheTTL = ttl
		}
	}
	if !flags.Changed("dev") {
		if v := os.Getenv("RA_DEV"); v != "" {
			dev, err := strconv.ParseBool(v)
			if err != nil {
				return opts, fmt.Errorf("invalid RA_DEV %q: %w", v, err)
			}
			opts.Dev = dev
		}
	}

	if opts.Port < 1 || opts.Port > 65535 {
		return opts, fmt.Errorf("port must be 1-65535, got %d", opts.Port)
	}
	return opts, nil
}

func runServe(ctx context.Context, opts serveOptions) error {
	logging.Setup(opts.Dev)

	seeded, err := seed.Load(opts.SeedPath)
	if err != nil {
		return fmt.Errorf("loading seed reviews: %w", err)
	}
	slog.Info("seed reviews loaded", "path", opts.SeedPath, "count", len(seeded))

	scorer, closeScorer := newScorer(ctx, opts)
	defer closeScorer()

	svc := review.NewService(review.NewStore(seeded), scorer)
	return web.NewServer(svc).ListenAndServe(ctx, fmt.Sprintf(":%d", opts.Port))
}

// newScorer builds the VADER scorer, wrapped in a Redis cache when one is
// configured and reachable.
func newScorer(ctx context.Context, opts serveOptions) (sentiment.Scorer, func()) {
	vader := sentiment.NewVader()
	if opts.RedisAddr == "" {
		return vader, func() {}
	}

	rdb, err := sentiment.NewRedisClient(ctx, opts.RedisAddr, os.Getenv("REDIS_PASSWORD"), 0)
	if err != nil {
		slog.Warn("sentiment cache disabled", "redis_addr", opts.RedisAddr, "error", err)
		return vader, func() {}
	}

	slog.Info("sentiment cache enabled", "redis_addr", opts.RedisAddr, "ttl", opts.CacheTTL.String())
	return sentiment.NewCached(vader, rdb, opts.CacheTTL), func() {
		if err := rdb.Close(); err != nil {
			slog.Warn("closing redis client", "error", err)
		}
	}
}
