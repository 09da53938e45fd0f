package httpserver

import (
	"database/sql"
	"errors"

	"percept-srv/config"
	"percept-srv/internal/fetcher"
	"percept-srv/internal/history"
	"percept-srv/internal/sentiment"
	"percept-srv/pkg/discord"
	pkgHTTP "percept-srv/pkg/http"
	"percept-srv/pkg/kafka"
	"percept-srv/pkg/log"
	pkgRedis "percept-srv/pkg/redis"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Database Configuration
	postgresDB  *sql.DB
	redisClient pkgRedis.IRedis

	// Messaging Configuration (optional)
	producer kafka.IProducer

	// Upstream Configuration
	httpClient pkgHTTP.IClient
	config     *config.Config

	// Monitoring & Notification Configuration
	discord discord.IDiscord

	// Cross-domain usecases, populated during mapHandlers
	sentimentUC sentiment.UseCase
	historyUC   history.UseCase
	sources     []fetcher.Source
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Database Configuration
	PostgresDB  *sql.DB
	RedisClient pkgRedis.IRedis

	// Messaging Configuration (optional)
	Producer kafka.IProducer

	// Upstream Configuration
	HTTPClient pkgHTTP.IClient
	Config     *config.Config

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.Default(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		// Database Configuration
		postgresDB:  cfg.PostgresDB,
		redisClient: cfg.RedisClient,

		// Messaging Configuration (optional)
		producer: cfg.Producer,

		// Upstream Configuration
		httpClient: cfg.HTTPClient,
		config:     cfg.Config,

		// Monitoring & Notification Configuration
		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	// Database Configuration
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}

	// Upstream Configuration
	if srv.httpClient == nil {
		return errors.New("httpClient is required")
	}
	if srv.config == nil {
		return errors.New("config is required")
	}

	// Messaging, Monitoring & Notification Configuration are optional.

	return nil
}
