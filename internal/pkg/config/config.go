package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Geocoder GeocoderConfig
	Routing  RoutingConfig
	Redis    RedisConfig
}

// GeocoderConfig points at a Nominatim-compatible address-search endpoint.
type GeocoderConfig struct {
	BaseURL string `env:"GEOCODER_URL, default=https://nominatim.openstreetmap.org"`
}

// RoutingConfig points at an OSRM-compatible driving-route endpoint.
type RoutingConfig struct {
	BaseURL string `env:"ROUTER_URL, default=https://router.project-osrm.org"`
}

// RedisConfig configures the optional geocode cache. An empty Addr disables
// caching entirely.
type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR"`
	DB       int           `env:"REDIS_DB,          default=0"`
	CacheTTL time.Duration `env:"GEOCODE_CACHE_TTL, default=24h"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
