// Package config defines the application-level configuration assembled from
// environment variables.
package config

import (
	"time"

	"github.com/autofiltro/catalog/pkg/httpserver"
	"github.com/autofiltro/catalog/pkg/pg"
	"github.com/autofiltro/catalog/pkg/redis"
)

type Config struct {
	AppEnv   string `env:"APP_ENV" envDefault:"production"` // "development" switches to text logs at debug level
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	CacheTTL time.Duration `env:"CATALOG_CACHE_TTL" envDefault:"5m"`

	PG    pg.Config
	Redis redis.Config
	HTTP  httpserver.Config
}
