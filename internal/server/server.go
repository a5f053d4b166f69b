package server

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/SoYuDev/petalth-crm/internal/app/session"
	"github.com/SoYuDev/petalth-crm/internal/petalth"
	"github.com/SoYuDev/petalth-crm/internal/pkg/config"
)

// Server holds the dependencies for the HTTP server
type Server struct {
	cfg    *config.Config
	logger *zap.Logger
	client *petalth.Client
	store  *session.CookieStore
	router http.Handler
}

// New creates a new Server instance with all dependencies
func New(cfg *config.Config, logger *zap.Logger) (*Server, error) {
	s := &Server{
		cfg:    cfg,
		logger: logger,
		client: petalth.NewClient(cfg.API, logger),
		store:  session.NewCookieStore(logger),
	}

	logger.Info("Petalth API client configured", zap.String("base_url", cfg.API.BaseURL))

	return s, nil
}

// HTTPServer creates and configures the HTTP server
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         ":" + s.cfg.ServerPort,
		Handler:      s.router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// SetRouter sets the HTTP router/handler
func (s *Server) SetRouter(router http.Handler) {
	s.router = router
}

// Client returns the Petalth API client
func (s *Server) Client() *petalth.Client {
	return s.client
}

// Store returns the session cookie store
func (s *Server) Store() *session.CookieStore {
	return s.store
}

// GetLogger returns the logger instance
func (s *Server) GetLogger() *zap.Logger {
	return s.logger
}

// GetConfig returns the configuration
func (s *Server) GetConfig() *config.Config {
	return s.cfg
}
