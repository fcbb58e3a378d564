package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	metrics "github.com/aescanero/webstart/pkg/adapters/metrics/prometheus"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Server represents the HTTP API server
type Server struct {
	router  *gin.Engine
	server  *http.Server
	metrics *metrics.Collector
	logger  *zap.Logger
	probes  bool
}

// Config holds HTTP server configuration
type Config struct {
	Port         int
	EnableProbes bool
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	Metrics      *metrics.Collector
	Logger       *zap.Logger
}

// NewServer creates a new HTTP server
func NewServer(cfg *Config) *Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(requestLogger(cfg.Logger))

	s := &Server{
		router:  router,
		metrics: cfg.Metrics,
		logger:  cfg.Logger,
		probes:  cfg.EnableProbes,
	}

	if s.metrics != nil {
		router.Use(metricsMiddleware(s.metrics))
	}

	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return s
}

// setupRoutes configures API routes
func (s *Server) setupRoutes() {
	// Root greeting
	s.router.GET("/", s.handleRoot)

	// Item endpoints
	s.router.GET("/items/:item_id", s.handleReadItem)
	s.router.POST("/items/", s.handleCreateItem)

	// Liveness and readiness probes
	if s.probes {
		s.router.GET("/healthz", s.handleHealthz)
		s.router.GET("/readyz", s.handleReadyz)
	}

	// Metrics
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// Handler returns the underlying router, for use in tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	s.logger.Info("HTTP server shut down complete")
	return nil
}

// requestLogger is a middleware for request logging
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		duration := time.Since(start)

		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", duration),
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.String("client_ip", c.ClientIP()))
	}
}
