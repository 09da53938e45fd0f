package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// PostgreSQL - Scan history (products, sentiment snapshots)
	Postgres PostgresConfig

	// Redis - Per-source review cache
	Redis RedisConfig

	// Kafka - Scan event publishing (optional)
	Kafka KafkaConfig

	// Review sources - Credentials and per-platform settings
	Sources SourcesConfig

	// Cache behavior
	Cache CacheConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server.
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger.
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PostgresConfig is the configuration for Postgres.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	Schema   string
}

// RedisConfig is the configuration for Redis.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// KafkaConfig is the configuration for Kafka. Empty brokers disables publishing.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// SourcesConfig holds credentials and per-platform settings for review fetching.
type SourcesConfig struct {
	DefaultReviewCount int
	MaxReviewCount     int
	RequestTimeout     int // in seconds

	GooglePlayLanguage string
	GooglePlayCountry  string

	IOSAppStoreCountry string

	// YouTube Data API v3 key. Empty means the YouTube source is not configured.
	YouTubeAPIKey string

	// Product Hunt API token. Empty means the Product Hunt source is not configured.
	ProductHuntAPIToken string

	RedditUserAgent string
}

// CacheConfig controls the fetched-review cache.
type CacheConfig struct {
	ReviewsTTL int // in minutes; 0 disables caching
}

// DiscordConfig is the configuration for the Discord webhook notifier.
type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

// Load loads configuration using Viper.
func Load() (*Config, error) {
	viper.SetConfigName("percept-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/percept/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// PostgreSQL - Scan history
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	cfg.Postgres.Schema = viper.GetString("postgres.schema")

	// Redis - Review cache
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	// Kafka - Scan events (optional)
	cfg.Kafka.Brokers = viper.GetStringSlice("kafka.brokers")
	cfg.Kafka.Topic = viper.GetString("kafka.topic")

	// Review sources
	cfg.Sources.DefaultReviewCount = viper.GetInt("sources.default_review_count")
	cfg.Sources.MaxReviewCount = viper.GetInt("sources.max_review_count")
	cfg.Sources.RequestTimeout = viper.GetInt("sources.request_timeout")
	cfg.Sources.GooglePlayLanguage = viper.GetString("google_play.language")
	cfg.Sources.GooglePlayCountry = viper.GetString("google_play.country")
	cfg.Sources.IOSAppStoreCountry = viper.GetString("ios_app_store.country")
	cfg.Sources.YouTubeAPIKey = viper.GetString("youtube.api_key")
	cfg.Sources.ProductHuntAPIToken = viper.GetString("product_hunt.api_token")
	cfg.Sources.RedditUserAgent = viper.GetString("reddit.user_agent")

	// Cache
	cfg.Cache.ReviewsTTL = viper.GetInt("cache.reviews_ttl")

	// Discord
	cfg.Discord.WebhookID = viper.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = viper.GetString("discord.webhook_token")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// HTTP Server
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")

	// Logger
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// PostgreSQL (schema: percept)
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.password", "postgres")
	viper.SetDefault("postgres.dbname", "postgres")
	viper.SetDefault("postgres.sslmode", "prefer")
	viper.SetDefault("postgres.schema", "percept")

	// Redis
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// Kafka (topic: percept.events). No default brokers: publishing is opt-in.
	viper.SetDefault("kafka.topic", "percept.events")

	// Review sources
	viper.SetDefault("sources.default_review_count", 100)
	viper.SetDefault("sources.max_review_count", 1000)
	viper.SetDefault("sources.request_timeout", 30)
	viper.SetDefault("google_play.language", "en")
	viper.SetDefault("google_play.country", "us")
	viper.SetDefault("ios_app_store.country", "us")
	viper.SetDefault("reddit.user_agent", "PerceptionScanner/1.0")

	// Cache (24h, matching how long fetched reviews stay fresh)
	viper.SetDefault("cache.reviews_ttl", 1440)
}

func validate(cfg *Config) error {
	if cfg.Postgres.Host == "" {
		return fmt.Errorf("postgres.host is required")
	}
	if cfg.Postgres.Port == 0 {
		return fmt.Errorf("postgres.port is required")
	}
	if cfg.Postgres.DBName == "" {
		return fmt.Errorf("postgres.dbname is required")
	}
	if cfg.Postgres.User == "" {
		return fmt.Errorf("postgres.user is required")
	}

	if cfg.Redis.Host == "" {
		return fmt.Errorf("redis.host is required")
	}
	if cfg.Redis.Port == 0 {
		return fmt.Errorf("redis.port is required")
	}

	if len(cfg.Kafka.Brokers) > 0 && cfg.Kafka.Topic == "" {
		return fmt.Errorf("kafka.topic is required when brokers are configured")
	}

	if cfg.Sources.DefaultReviewCount < 1 {
		return fmt.Errorf("sources.default_review_count must be at least 1")
	}
	if cfg.Sources.MaxReviewCount < cfg.Sources.DefaultReviewCount {
		return fmt.Errorf("sources.max_review_count must be >= sources.default_review_count")
	}
	if cfg.Sources.RequestTimeout <= 0 {
		return fmt.Errorf("sources.request_timeout must be greater than 0")
	}

	return nil
}
