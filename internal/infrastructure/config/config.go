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

	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=24h"`

	// HashCost is the bcrypt cost factor. A non-numeric or out-of-range
	// value aborts startup; it is never a per-request error.
	HashCost int `env:"HASH_COST, default=10"`

	// PolicyEnforced disables password strength rejection when false; weak
	// passwords are then accepted with a logged warning.
	PolicyEnforced bool `env:"PASSWORD_POLICY_ENFORCED, default=true"`

	Mongo    MongoConfig
	Redis    RedisConfig
	Throttle ThrottleConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=users_service"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// ThrottleConfig bounds failed login attempts per email.
type ThrottleConfig struct {
	MaxFailures int           `env:"LOGIN_MAX_FAILURES,   default=5"`
	Window      time.Duration `env:"LOGIN_FAILURE_WINDOW, default=15m"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
