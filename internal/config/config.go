package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env        string           `json:"env"`
	Http       HttpConfig       `json:"http"`
	Postgres   PostgresConfig   `json:"postgres"`
	Redis      RedisConfig      `json:"redis"`
	AdminAPIKey string          `json:"admin_api_key,omitempty"`
	Webhook    WebhookConfig    `json:"webhook"`
	Map        MapConfig        `json:"map"`
	Moderation ModerationConfig `json:"moderation"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

type PostgresConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
	User     string `json:"user"`
	Password string `json:"password,omitempty"`
	SSLMode  string `json:"ssl_mode"`

	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password,omitempty"`
	DB       int    `json:"db"`
}

type WebhookConfig struct {
	URL      string `json:"url"`
	Disabled bool   `json:"disabled"`
}

// MapConfig is the geographic rectangle of the static neighborhood map.
// Defaults cover the Makers Valley image.
type MapConfig struct {
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLng float64 `json:"max_lng"`
}

type ModerationConfig struct {
	// HideExpiredApproved drops approved-but-expired reports from the
	// admin view. Off by default: the admin sees everything.
	HideExpiredApproved bool          `json:"hide_expired_approved"`
	PageSize            int           `json:"page_size"`
	CacheTTL            time.Duration `json:"cache_ttl"`
	RefreshInterval     time.Duration `json:"refresh_interval"`
}

func Load() (*Config, error) {
	stdLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLogger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:            getEnv("HTTP_PORT", ":8080"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "pg-local"),
			Port:            getEnvInt("POSTGRES_PORT", 5432),
			Database:        getEnv("POSTGRES_DB", "safevalley_db"),
			User:            getEnv("POSTGRES_USER", "postgres"),
			Password:        getEnv("POSTGRES_PASSWORD", "postgres"),
			SSLMode:         getEnv("POSTGRES_SSL_MODE", "disable"),
			MaxConns:        20,
			MinConns:        1,
			MaxConnLifetime: 1 * time.Hour,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "redis-local:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		AdminAPIKey: getEnv("ADMIN_API_KEY", ""),
		Webhook: WebhookConfig{
			URL:      getEnv("WEBHOOK_URL", ""),
			Disabled: getEnvBool("WEBHOOK_DISABLED", false),
		},
		Map: MapConfig{
			MinLat: getEnvFloat("MAP_MIN_LAT", -26.197),
			MaxLat: getEnvFloat("MAP_MAX_LAT", -26.181),
			MinLng: getEnvFloat("MAP_MIN_LNG", 28.064),
			MaxLng: getEnvFloat("MAP_MAX_LNG", 28.085),
		},
		Moderation: ModerationConfig{
			HideExpiredApproved: getEnvBool("MODERATION_HIDE_EXPIRED", false),
			PageSize:            getEnvInt("MODERATION_PAGE_SIZE", 20),
			CacheTTL:            getEnvDuration("PUBLIC_CACHE_TTL", time.Minute),
			RefreshInterval:     getEnvDuration("PUBLIC_CACHE_REFRESH", 30*time.Second),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.String("postgres_db", cfg.Postgres.Database),
		slog.String("redis_addr", cfg.Redis.Addr),
		slog.Bool("webhook_disabled", cfg.Webhook.Disabled))

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Http.Port == "" || c.Http.Port[0] != ':' {
		return errors.New("HTTP_PORT must start with ':' like ':8080'")
	}
	if c.Postgres.Host == "" {
		return errors.New("POSTGRES_HOST required")
	}
	if c.Map.MinLat >= c.Map.MaxLat || c.Map.MinLng >= c.Map.MaxLng {
		return errors.New("map bounds are inverted")
	}
	if c.Moderation.PageSize < 1 || c.Moderation.PageSize > 100 {
		return errors.New("MODERATION_PAGE_SIZE must be 1-100")
	}
	if !c.Webhook.Disabled && c.Webhook.URL == "" {
		c.Webhook.Disabled = true
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
