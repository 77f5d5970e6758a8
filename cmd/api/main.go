package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"artmarket-backend/config"
	"artmarket-backend/internal/delivery/http/middleware"
	v1 "artmarket-backend/internal/delivery/http/v1"
	"artmarket-backend/internal/infrastructure/cache"
	"artmarket-backend/internal/repository/postgres"
	"artmarket-backend/internal/usecase"
	"artmarket-backend/pkg/logger"
	"artmarket-backend/pkg/migration"
	"artmarket-backend/pkg/storage"
	"artmarket-backend/pkg/utils"

	"github.com/NYTimes/gziphandler"
)

const serviceName = "artmarket-backend"

func main() {
	cfg := config.LoadConfig()
	utils.SetSecret(cfg.JWTSecret)

	logger.Init(cfg.Env, cfg.LogLevel)
	log := logger.Get()

	// Schema first, then the pool
	if err := migration.RunUp(cfg.DBUrl, cfg.MigrationsPath, log); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	pgxPool, err := postgres.NewPgxPool(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer pgxPool.Close()
	log.Info().Msg("Successfully connected to PostgreSQL via pgx")

	// Repositories
	userRepo := postgres.NewUserRepository(pgxPool)
	artworkRepo := postgres.NewArtworkRepository(pgxPool)
	eventRepo := postgres.NewEventRepository(pgxPool)

	// Default expiration 30m, cleanup every 60m
	memCache := cache.NewMemoryCache(30*time.Minute, 60*time.Minute)
	// Sessions get their own cache so a listing invalidation can never drop them.
	sessionCache := cache.NewMemoryCache(cfg.SessionTTL, 10*time.Minute)

	objectStorage, err := storage.NewS3Storage(context.Background(), storage.S3Options{
		Endpoint:      cfg.S3Endpoint,
		Region:        cfg.S3Region,
		AccessKey:     cfg.S3AccessKeyID,
		SecretKey:     cfg.S3AccessKeySecret,
		Bucket:        cfg.S3BucketName,
		PublicURL:     cfg.S3PublicURL,
		UploadTimeout: cfg.S3UploadTimeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize object storage")
	}
	imageProcessor := utils.NewWebPProcessor()
	handoff := usecase.NewHandoffBuilder(cfg.MessagingBaseURL, cfg.MessagingPhone)

	// Usecases
	authUC := usecase.NewAuthUsecase(userRepo, cfg.AccessTokenExpiry, cfg.RefreshTokenExpiry)
	profileUC := usecase.NewProfileUsecase(userRepo, objectStorage, imageProcessor, memCache, cfg.MaxUploadSizeMB<<20)
	artworkUC := usecase.NewArtworkUsecase(artworkRepo, userRepo, objectStorage, imageProcessor, memCache, cfg)
	eventUC := usecase.NewEventUsecase(eventRepo, handoff)
	sessionUC := usecase.NewSessionUsecase(sessionCache, cfg.SessionTTL, handoff)
	sitemapUC := usecase.NewSitemapUsecase(artworkRepo, userRepo, memCache, cfg)

	secureCookies := !cfg.IsDevelopment()
	handlers := v1.Handlers{
		Auth:    v1.NewAuthHandler(authUC, cfg.RefreshTokenExpiry, secureCookies),
		Profile: v1.NewProfileHandler(profileUC, cfg.MaxUploadSizeMB),
		Artwork: v1.NewArtworkHandler(artworkUC, cfg.MaxUploadSizeMB),
		Event:   v1.NewEventHandler(eventUC),
		Session: v1.NewSessionHandler(sessionUC),
		Filter:  v1.NewFilterHandler(),
		Config:  v1.NewConfigHandler(memCache),
		Sitemap: v1.NewSitemapHandler(sitemapUC),
		Health:  v1.NewHealthHandler(pgxPool),
	}

	mux := http.NewServeMux()
	handlers.Register(mux, middleware.NewSessionMiddleware(cfg.SessionTTL, secureCookies))

	// Cleanup every minute, client TTL 3 minutes
	rateLimiter := middleware.NewRateLimiter(context.Background(), middleware.RateLimitConfig{
		RPS:           cfg.RateLimitRPS,
		Burst:         cfg.RateLimitBurst,
		CleanupPeriod: time.Minute,
		ClientTTL:     3 * time.Minute,
		Exempt:        []string{"/health", "/api/v1/health"},
	})

	// CORS, Request Logger, Rate Limit, Gzip
	handler := middleware.NewCORSMiddleware(cfg)(mux)
	handler = middleware.RequestLogger(handler)
	handler = rateLimiter.Middleware()(handler)
	handler = gziphandler.GzipHandler(handler)

	addr := fmt.Sprintf(":%s", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()
	logger.ServiceStart(serviceName, "v1", cfg.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Server shutting down...")
	rateLimiter.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.ServiceStop(serviceName)
}
