// Package server exposes the analysis pipeline over HTTP.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"kiddoo/internal/analysis"
	"kiddoo/internal/config"
	"kiddoo/internal/observability"
)

// Version is the reported service version.
const Version = "1.0.0"

// Server wraps the gin engine and its lifecycle.
type Server struct {
	config  config.ServerConfig
	service *analysis.Service
	logger  *observability.Logger
	metrics *observability.MetricsCollector
	cache   *resultCache
	engine  *gin.Engine
	httpSrv *http.Server
	started time.Time
}

// New builds a Server around an analysis service.
func New(cfg config.ServerConfig, service *analysis.Service, logger *observability.Logger, metrics *observability.MetricsCollector) (*Server, error) {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	if metrics == nil {
		metrics = &observability.MetricsCollector{}
	}

	cache, err := newResultCache(cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("server: result cache: %w", err)
	}

	s := &Server{
		config:  cfg,
		service: service,
		logger:  logger,
		metrics: metrics,
		cache:   cache,
		started: time.Now(),
	}
	s.engine = s.buildEngine()
	return s, nil
}

func (s *Server) buildEngine() *gin.Engine {
	engine := gin.New()
	engine.Use(RecoveryMiddleware(s.logger))
	engine.Use(RequestIDMiddleware())
	engine.Use(JSONMiddleware())

	if s.config.EnableCORS {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Request-ID"}
		engine.Use(cors.New(corsConfig))
	}

	api := engine.Group("/api")
	{
		api.POST("/analyze", s.handleAnalyze)
		api.POST("/sos/trigger", s.handleSOSTrigger)
		api.GET("/health", s.handleHealth)
	}

	return engine
}

// Handler returns the HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start runs the HTTP server until it fails or Stop is called.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpSrv = &http.Server{
		Addr:         addr,
		Handler:      s.engine,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	s.logger.Info("http server listening", "addr", addr)
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server: listen on %s: %w", addr, err)
	}
	return nil
}

// Stop drains in-flight requests and shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	s.logger.Info("http server shutting down")
	return s.httpSrv.Shutdown(ctx)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Version:   Version,
		Timestamp: time.Now().UTC(),
		Uptime:    time.Since(s.started).Round(time.Second).String(),
	})
}
