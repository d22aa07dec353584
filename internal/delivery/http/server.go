package http_delivery

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	page_handler "portfolio-content-service/internal/delivery/http/page"
	section_handler "portfolio-content-service/internal/delivery/http/section"
	"portfolio-content-service/internal/logger"
	"portfolio-content-service/internal/metrics"
)

type Server struct {
	server  *http.Server
	log     *logger.Logger
	metrics metrics.Provider
}

func NewServer(
	pageAPI *page_handler.PageAPI,
	sectionAPI *section_handler.SectionAPI,
	address string,
	port int,
	env string,
	log *logger.Logger,
	metricsProvider metrics.Provider,
) *Server {
	if env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(log))
	router.Use(requestMetrics(metricsProvider))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	pageAPI.RegisterRoutes(api)
	sectionAPI.RegisterRoutes(api)

	return &Server{
		server: &http.Server{
			Addr:    fmt.Sprintf("%s:%d", address, port),
			Handler: router,
		},
		log:     log,
		metrics: metricsProvider,
	}
}

func (s *Server) Run() error {
	s.log.Info("Starting HTTP server", slog.String("address", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func requestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug("HTTP request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("duration", time.Since(start)))
	}
}

func requestMetrics(provider metrics.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		provider.IncrementHTTPRequests(c.Request.Method, path, fmt.Sprintf("%d", c.Writer.Status()))
		provider.RecordHTTPRequestDuration(c.Request.Method, path, time.Since(start))
	}
}
