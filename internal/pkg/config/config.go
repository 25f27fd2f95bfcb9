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

	// JWTSecret signs every token; HS256 requires at least 32 bytes.
	JWTSecret string `env:"JWT_SECRET"`
	// JWTExpirationMS is the token lifetime in milliseconds (default 8h).
	JWTExpirationMS int64 `env:"JWT_EXPIRATION_MS, default=28800000"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=sfpacim"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// TokenTTL converts the configured expiration to a duration.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWTExpirationMS) * time.Millisecond
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
