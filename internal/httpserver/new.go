package httpserver

import (
	"errors"
	"time"

	"engagement-srv/config"
	"engagement-srv/pkg/discord"
	"engagement-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// defaultShutdownTimeout bounds how long in-flight report requests may
// run after a shutdown signal.
const defaultShutdownTimeout = 15 * time.Second

type HTTPServer struct {
	// Server Configuration
	gin             *gin.Engine
	l               log.Logger
	host            string
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	config *config.Config

	// Monitoring & Notification Configuration
	discord discord.IDiscord
}

type Config struct {
	// Server Configuration
	Logger          log.Logger
	Host            string
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	Config *config.Config

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	srv := &HTTPServer{
		// Server Configuration
		l:               logger,
		gin:             gin.New(),
		host:            cfg.Host,
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,

		config: cfg.Config,

		// Monitoring & Notification Configuration
		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
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

	if srv.config == nil {
		return errors.New("config is required")
	}

	// Monitoring & Notification Configuration is optional; the service
	// runs without an alert channel.

	return nil
}
