package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	appcfg "github.com/autofiltro/catalog/config"
	"github.com/autofiltro/catalog/modules/catalog"
	"github.com/autofiltro/catalog/pkg/config"
	"github.com/autofiltro/catalog/pkg/httpserver"
	"github.com/autofiltro/catalog/pkg/logger"
	"github.com/autofiltro/catalog/pkg/pg"
	"github.com/autofiltro/catalog/pkg/redis"
	"github.com/autofiltro/catalog/pkg/vehiclefilter"
)

const serviceName = "catalog"

func main() {
	ctx := context.Background()

	var cfg appcfg.Config
	config.MustLoad(&cfg)

	log := newLogger(cfg)
	logger.SetAsDefault(log)

	if err := run(ctx, cfg, log); err != nil {
		log.ErrorContext(ctx, "server exited with error", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg appcfg.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	if cfg.AppEnv == "development" {
		return logger.New(logger.WithDevelopment(serviceName), logger.WithLevel(level))
	}
	return logger.New(logger.WithProduction(serviceName), logger.WithLevel(level))
}

func run(ctx context.Context, cfg appcfg.Config, log *slog.Logger) error {
	pool, err := pg.Connect(ctx, cfg.PG)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pg.Migrate(ctx, pool, cfg.PG, log); err != nil {
		return err
	}

	rdb, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer rdb.Close()

	storage := catalog.NewPgStorage(pool)
	cache := catalog.NewListingCache(rdb, cfg.CacheTTL, log)
	validator := vehiclefilter.NewValidator(vehiclefilter.WithLogger(log))
	auditor := vehiclefilter.NewSlogAuditor(log)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/healthz", httpserver.HealthCheckHandler(ctx, log,
		pg.Healthcheck(pool),
		redis.Healthcheck(rdb),
	))
	r.Mount("/api/v1", catalog.Router(catalog.RouterOptions{
		Categories:   catalog.NewCategoryService(storage, log),
		Distributors: catalog.NewDistributorService(storage, log),
		Products:     catalog.NewProductService(storage, validator, auditor, cache, log),
	}))

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, r)
}
