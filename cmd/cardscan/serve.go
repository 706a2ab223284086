package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/cardscan/modules/api"
	"github.com/dmitrymomot/cardscan/pkg/clientip"
	"github.com/dmitrymomot/cardscan/pkg/config"
	"github.com/dmitrymomot/cardscan/pkg/contact"
	"github.com/dmitrymomot/cardscan/pkg/httpserver"
	"github.com/dmitrymomot/cardscan/pkg/logger"
	"github.com/dmitrymomot/cardscan/pkg/ratelimiter"
	"github.com/dmitrymomot/cardscan/pkg/redis"
	"github.com/dmitrymomot/cardscan/pkg/requestid"
	"github.com/dmitrymomot/cardscan/svc/scan"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the scan API server",
		Long:  `Serves the scan API configured from the environment until SIGINT or SIGTERM.`,
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

type appConfig struct {
	Env  string `env:"APP_ENV" envDefault:"development"`
	Name string `env:"APP_NAME" envDefault:"cardscan"`
	// LogLevel overrides the APP_ENV preset when set.
	LogLevel string `env:"LOG_LEVEL"`

	HTTP      httpserver.Config
	Scan      scan.Config
	Redis     redis.Config
	RateLimit ratelimiter.Config
}

func runServe(cmd *cobra.Command, _ []string) error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	records, err := scan.NewRecordsClient(cfg.Scan.RecordsAPIURL, cfg.Scan.RecordsAPIToken,
		scan.WithTimeout(cfg.Scan.RecordsAPITimeout))
	if err != nil {
		return fmt.Errorf("records client: %w", err)
	}

	opts := []scan.Option{
		scan.WithLogger(log),
		scan.WithParser(contact.New(contact.WithLogger(log))),
	}
	var readiness []func(context.Context) error

	if cfg.Redis.Enabled() {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer closeRedis(log, client)
		opts = append(opts, scan.WithRecentScans(scan.NewRedisRecentScans(client, cfg.Scan.DedupeTTL)))
		readiness = append(readiness, redis.Healthcheck(client))
	} else {
		opts = append(opts, scan.WithRecentScans(scan.NewMemoryRecentScans(cfg.Scan.DedupeSize, cfg.Scan.DedupeTTL)))
	}

	if cfg.Scan.OCREnabled() {
		ocr, err := scan.NewOCRClient(cfg.Scan.OCRAPIURL, scan.WithTimeout(cfg.Scan.RecordsAPITimeout))
		if err != nil {
			return fmt.Errorf("ocr client: %w", err)
		}
		opts = append(opts, scan.WithRecognizer(ocr))
	}

	svc := scan.NewService(records, opts...)

	routerOpts := api.RouterOptions{
		Logger:          log,
		Scans:           scan.NewHTTPHandler(svc, cfg.Scan, log),
		ReadinessChecks: readiness,
	}
	if cfg.RateLimit.Enabled() {
		store := ratelimiter.NewMemoryStore()
		defer store.Close()
		bucket, err := ratelimiter.NewBucket(store, cfg.RateLimit)
		if err != nil {
			return err
		}
		routerOpts.RateLimiter = bucket
	}

	log.InfoContext(ctx, "starting cardscan",
		slog.Bool("ocr_enabled", svc.OCREnabled()),
		slog.Bool("redis_enabled", cfg.Redis.Enabled()),
	)

	srv := httpserver.New(cfg.HTTP, httpserver.WithLogger(log))
	if err := srv.Run(ctx, api.Router(routerOpts)); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func closeRedis(log *slog.Logger, client *goredis.Client) {
	if err := client.Close(); err != nil {
		log.Error("failed to close redis client", logger.Error(err))
	}
}
