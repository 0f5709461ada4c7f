package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Store drivers accepted by STORE_DRIVER.
const (
	StoreMongo  = "mongo"
	StoreMySQL  = "mysql"
	StoreMemory = "memory"
)

type Config struct {
	Port        string        `env:"PORT,         default=8080"`
	Env         string        `env:"ENV,          default=development"`
	LogLevel    string        `env:"LOG_LEVEL,    default=info"`
	JWTSecret   string        `env:"JWT_SECRET,   required"`
	JWTTTL      time.Duration `env:"JWT_TTL,      default=24h"`
	StoreDriver string        `env:"STORE_DRIVER, default=mongo"`

	Mongo       MongoConfig
	MySQL       MySQLConfig
	Redis       RedisConfig
	Idempotency IdempotencyConfig
	OIDC        OIDCConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=watchlist"`
}

type MySQLConfig struct {
	DSN string `env:"MYSQL_DSN, default=watchlist:watchlist@tcp(localhost:3306)/watchlist?parseTime=true"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	DB       int    `env:"REDIS_DB,       default=0"`
	Password string `env:"REDIS_PASSWORD"`
}

type IdempotencyConfig struct {
	TTL time.Duration `env:"IDEMPOTENCY_TTL, default=24h"`
}

// OIDCConfig enables bearer tokens from an external issuer alongside the
// locally issued ones. Leave IssuerURL empty to disable; an empty ClientID
// skips the audience check.
type OIDCConfig struct {
	IssuerURL string `env:"OIDC_ISSUER_URL"`
	ClientID  string `env:"OIDC_CLIENT_ID"`
}

// IsDevelopment reports whether the service runs with ENV=development.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadFrom(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadFrom reads configuration through lookuper and validates it.
func LoadFrom(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, err
	}

	switch cfg.StoreDriver {
	case StoreMongo, StoreMySQL, StoreMemory:
	default:
		return nil, fmt.Errorf("unsupported STORE_DRIVER %q", cfg.StoreDriver)
	}
	return &cfg, nil
}
