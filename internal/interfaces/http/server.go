// Package http provides the HTTP adapter for the dashboard services. It is
// a thin layer that translates requests into service calls and wraps the
// results in a uniform JSON envelope.
package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/n8nops/roi-dashboard/internal/report"
)

// Logger interface for logging operations
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

type zapAdapter struct {
	s *zap.SugaredLogger
}

// NewZapLogger adapts a zap logger to the Logger interface.
func NewZapLogger(l *zap.Logger) Logger {
	return &zapAdapter{s: l.Sugar()}
}

func (a *zapAdapter) Info(msg string, keysAndValues ...interface{}) {
	a.s.Infow(msg, keysAndValues...)
}

func (a *zapAdapter) Error(msg string, keysAndValues ...interface{}) {
	a.s.Errorw(msg, keysAndValues...)
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DefaultServerConfig returns default server configuration
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Host:         "0.0.0.0",
		Port:         8080,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// Server is the HTTP server adapter
type Server struct {
	config     ServerConfig
	httpServer *http.Server
	router     *gin.Engine
	dashboard  DashboardProvider
	roi        ROIProvider
	admin      AdminProvider
	exporter   *report.Exporter
	logger     Logger
}

// NewServer creates a new HTTP server with the given services
func NewServer(
	config ServerConfig,
	dashboard DashboardProvider,
	roi ROIProvider,
	admin AdminProvider,
	exporter *report.Exporter,
	logger Logger,
) *Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	server := &Server{
		config:    config,
		router:    router,
		dashboard: dashboard,
		roi:       roi,
		admin:     admin,
		exporter:  exporter,
		logger:    logger,
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}

// setupMiddleware configures middleware for the router
func (s *Server) setupMiddleware() {
	s.router.Use(gin.Recovery())
	s.router.Use(s.loggingMiddleware())
	s.router.Use(corsMiddleware())
}

// loggingMiddleware creates a logging middleware
func (s *Server) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		s.logger.Info("HTTP request",
			"method", method,
			"path", path,
			"status", status,
			"latency", latency.String(),
			"client_ip", c.ClientIP(),
		)
	}
}

// corsMiddleware allows the dashboard frontend to call the API from any
// origin.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	handlers := NewHandlers(s.dashboard, s.roi, s.admin, s.exporter, s.logger)

	// Health check
	s.router.GET("/health", handlers.HealthCheck)

	// API routes
	api := s.router.Group("/api/v1")
	{
		clients := api.Group("/clients/:id")
		{
			clients.GET("/summary", handlers.GetClientSummary)
			clients.GET("/workflows/stats", handlers.GetWorkflowStats)
			clients.GET("/executions", handlers.ListExecutions)

			roi := clients.Group("/roi")
			{
				roi.GET("/summary", handlers.GetROISummary)
				roi.GET("/workflows", handlers.GetROIWorkflows)
				roi.GET("/export", handlers.ExportROIReport)
				roi.GET("/configs", handlers.ListROIConfigs)
				roi.POST("/configs", handlers.CreateROIConfig)
				roi.PUT("/configs/:workflowId", handlers.UpdateROIConfig)
				roi.DELETE("/configs/:workflowId", handlers.DeleteROIConfig)
			}

			clients.GET("/tool-costs", handlers.GetToolCosts)
			clients.PUT("/tool-costs", handlers.PutToolCosts)
		}
	}
}

// Start starts the HTTP server
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	s.logger.Info("Starting HTTP server", "address", addr)

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("HTTP server shutdown requested")
		return s.Stop()
	case err := <-errCh:
		s.logger.Error("HTTP server error", "error", err)
		return err
	}
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop() error {
	if s.httpServer == nil {
		return nil
	}

	s.logger.Info("Stopping HTTP server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("HTTP server shutdown error", "error", err)
		return err
	}

	s.logger.Info("HTTP server stopped")
	return nil
}

// Router returns the underlying gin router (for testing)
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Address returns the server address
func (s *Server) Address() string {
	return fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
}
