package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-content-service/internal/cache/redis"
	"portfolio-content-service/internal/config"
	http_delivery "portfolio-content-service/internal/delivery/http"
	page_api "portfolio-content-service/internal/delivery/http/page"
	section_api "portfolio-content-service/internal/delivery/http/section"
	metrics_server "portfolio-content-service/internal/delivery/metrics"
	"portfolio-content-service/internal/logger"
	prometheus_metrics "portfolio-content-service/internal/metrics/prometheus"
	attachment_postgres "portfolio-content-service/internal/repository/attachment/postgres"
	page_postgres "portfolio-content-service/internal/repository/page/postgres"
	"portfolio-content-service/internal/repository/postgres"
	section_postgres "portfolio-content-service/internal/repository/section/postgres"
	attachment_service "portfolio-content-service/internal/service/attachment"
	page_service "portfolio-content-service/internal/service/page"
	section_service "portfolio-content-service/internal/service/section"
	"portfolio-content-service/internal/template"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)
	log.Info("Starting portfolio-content-service", "env", cfg.Env)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DbName,
	)

	if err := postgres.RunMigrations(dsn, cfg.Database.MigrationsPath, log); err != nil {
		log.Error("Failed to run migrations", "error", err.Error())
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Error("Failed to create connection pool", "error", err.Error())
		os.Exit(1)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Error("Failed to ping database", "error", err.Error())
		os.Exit(1)
	}
	log.Info("Connected to PostgreSQL", "host", cfg.Database.Host, "port", cfg.Database.Port)

	registry, err := template.NewFileRegistry(cfg.Templates.Path, log)
	if err != nil {
		log.Error("Failed to load template registry", "error", err.Error())
		os.Exit(1)
	}
	log.Info("Loaded template registry", "path", cfg.Templates.Path)

	metricsProvider := prometheus_metrics.NewMetricsProvider()
	metricsProvider.SetServiceHealth(true)

	sectionRepo := section_postgres.NewSectionRepository(pool, log, metricsProvider)
	pageRepo := page_postgres.NewPageRepository(pool, log, metricsProvider)
	attachmentRepo := attachment_postgres.NewAttachmentRepository(pool, log, metricsProvider)
	uow := postgres.NewPostgresUOW(pool, log, metricsProvider)

	synchronizer := attachment_service.NewSynchronizer(log, metricsProvider)

	sectionSvc := section_service.NewSectionService(
		sectionRepo,
		attachmentRepo,
		pageRepo,
		uow,
		registry,
		synchronizer,
		log,
		metricsProvider,
	)
	pageSvc := page_service.NewPageService(pageRepo, sectionRepo, uow, log)

	var sectionAPI *section_api.SectionAPI
	if cfg.Redis.Address != "" {
		redisClient, err := redis.NewClient(cfg.Redis, log)
		if err != nil {
			log.Error("Failed to connect to Redis", "error", err.Error())
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis client", "error", err.Error())
			}
		}()
		sectionCache := redis.NewSectionCache(redisClient, log, metricsProvider)
		cachedSvc := section_service.NewSectionServiceCacheDecorator(sectionSvc, sectionCache, log, metricsProvider)
		sectionAPI = section_api.NewSectionAPI(cachedSvc, log)
	} else {
		log.Info("Redis address not configured, section cache disabled")
		sectionAPI = section_api.NewSectionAPI(sectionSvc, log)
	}
	pageAPI := page_api.NewPageAPI(pageSvc, log)

	server := http_delivery.NewServer(pageAPI, sectionAPI, cfg.HTTPServer.Address, cfg.HTTPServer.Port, cfg.Env, log, metricsProvider)
	metricsSrv := metrics_server.NewMetricsServer(cfg.Prometheus.Address, cfg.Prometheus.Port, log)

	done := make(chan bool, 1)
	metricsDone := make(chan bool, 1)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Run(); err != nil {
			log.Error("HTTP server error", "error", err.Error())
		}
		done <- true
	}()

	go func() {
		if err := metricsSrv.Run(); err != nil {
			log.Error("Metrics server error", "error", err.Error())
		}
		metricsDone <- true
	}()

	<-quit
	log.Info("Shutting down servers...")
	metricsProvider.SetServiceHealth(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err.Error())
	}
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("Metrics server shutdown error", "error", err.Error())
	}

	<-done
	<-metricsDone
	log.Info("Servers stopped")
}
