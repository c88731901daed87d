// Package http provides the HTTP adapter for the application layer.
// Handlers stay thin: bind, call a service, map the error, reply.
package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/garyjia/timebank/internal/application/service"
	"github.com/garyjia/timebank/internal/metrics"
)

// Logger interface for logging operations
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
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

// Services bundles the application services the server exposes
type Services struct {
	Users         service.UserService
	Automations   service.AutomationService
	Rewards       service.RewardService
	Redemptions   service.RedemptionService
	Notifications service.NotificationService
	Analytics     service.AnalyticsService
	Reports       service.ReportService
}

// Server is the HTTP server adapter
type Server struct {
	config     ServerConfig
	httpServer *http.Server
	router     *gin.Engine
	services   Services
	metrics    *metrics.Metrics
	logger     Logger
}

// NewServer creates a new HTTP server with the given services
func NewServer(config ServerConfig, services Services, m *metrics.Metrics, logger Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	server := &Server{
		config:   config,
		router:   gin.New(),
		services: services,
		metrics:  m,
		logger:   logger,
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}

// setupMiddleware configures middleware for the router
func (s *Server) setupMiddleware() {
	s.router.Use(gin.Recovery())
	s.router.Use(s.loggingMiddleware())
	if s.metrics != nil {
		s.router.Use(s.metrics.GinMiddleware())
	}
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

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	handlers := NewHandlers(s.services, s.metrics, s.logger)

	s.router.GET("/health", handlers.HealthCheck)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := s.router.Group("/api/v1")
	{
		api.GET("/users", handlers.ListUsers)
		api.GET("/users/:id", handlers.GetUser)
		api.GET("/users/:id/dashboard", handlers.GetDashboard)
		api.GET("/users/:id/transactions", handlers.ListUserTransactions)
		api.GET("/users/:id/notifications", handlers.ListNotifications)
		api.GET("/users/:id/score", handlers.GetCreditScore)
		api.POST("/users", handlers.adminOnly(), handlers.CreateUser)

		api.POST("/notifications/:id/read", handlers.MarkNotificationRead)

		api.GET("/leaderboard", handlers.GetLeaderboard)

		api.GET("/automations", handlers.ListAutomations)
		api.GET("/automations/:id", handlers.GetAutomation)
		api.POST("/automations", handlers.SubmitAutomation)
		api.POST("/automations/:id/approve", handlers.adminOnly(), handlers.ApproveAutomation)
		api.POST("/automations/:id/reject", handlers.adminOnly(), handlers.RejectAutomation)

		api.GET("/rewards", handlers.ListRewards)
		api.POST("/rewards", handlers.adminOnly(), handlers.CreateReward)

		api.GET("/redemptions", handlers.ListRedemptions)
		api.POST("/redemptions", handlers.RequestRedemption)
		api.POST("/redemptions/:id/approve", handlers.adminOnly(), handlers.ApproveRedemption)
		api.POST("/redemptions/:id/reject", handlers.adminOnly(), handlers.RejectRedemption)
		api.POST("/redemptions/:id/fulfill", handlers.adminOnly(), handlers.FulfillRedemption)

		api.GET("/challenges", handlers.ListChallenges)

		analytics := api.Group("/analytics")
		{
			analytics.GET("/overview", handlers.AnalyticsOverview)
			analytics.GET("/departments", handlers.AnalyticsDepartments)
			analytics.GET("/categories", handlers.AnalyticsCategories)
			analytics.GET("/rewards", handlers.AnalyticsRewards)
			analytics.GET("/roi", handlers.AnalyticsROI)
			analytics.GET("/scores", handlers.AnalyticsScores)
			analytics.GET("/export", handlers.adminOnly(), handlers.ExportAnalytics)
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
