package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/haryawn/law-firm-api/internal/api"
	"github.com/haryawn/law-firm-api/internal/core/domain"
	"github.com/haryawn/law-firm-api/internal/core/ports"
	"github.com/haryawn/law-firm-api/internal/infrastructure/config"
	mongodb "github.com/haryawn/law-firm-api/internal/infrastructure/db/mongo"
	redisdb "github.com/haryawn/law-firm-api/internal/infrastructure/db/redis"
	"github.com/haryawn/law-firm-api/internal/infrastructure/identity"
	"github.com/haryawn/law-firm-api/internal/infrastructure/mail"
	"github.com/haryawn/law-firm-api/internal/infrastructure/queue"
	"github.com/haryawn/law-firm-api/internal/infrastructure/ratelimit"
	"github.com/haryawn/law-firm-api/pkg/logger"
)

const sweepInterval = 5 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	// --- Redis (optional: dedup + shared rate limiting) ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, continuing without it")
		rdb = nil
	} else {
		defer rdb.Close()
	}

	// --- Rate limit store ---
	var limiter ports.RateLimitStore
	if cfg.RateLimit.Store == "redis" && rdb != nil {
		limiter = redisdb.NewRateLimitStore(rdb)
	} else {
		store := ratelimit.NewMemoryStore()
		store.StartSweeper(ctx, sweepInterval)
		limiter = store
	}

	// --- Outbound notifications ---
	var mailer ports.Mailer
	if cfg.Mail.Host != "" {
		mailer = mail.NewMailer(mail.Config{
			Host:     cfg.Mail.Host,
			Port:     cfg.Mail.Port,
			User:     cfg.Mail.User,
			Password: cfg.Mail.Password,
			From:     cfg.Mail.From,
		})
	} else {
		log.Warn().Msg("SMTP not configured, notifications disabled")
		mailer = mail.NoopMailer{}
	}
	dispatcher := queue.NewDispatcher(0, mailer, log)
	dispatcher.Start(ctx)

	// --- Hosted identity provider ---
	provider := identity.NewClient(identity.Config{
		BaseURL: cfg.Identity.BaseURL,
		APIKey:  cfg.Identity.APIKey,
	})

	e := api.NewRouter(api.Options{
		DB:        db,
		Redis:     rdb,
		Provider:  provider,
		Notifier:  dispatcher,
		Limiter:   limiter,
		JWTSecret: cfg.JWTSecret,
		NotifyTo:  cfg.Mail.NotifyTo,
		DefaultPolicy: domain.RateLimitPolicy{
			MaxRequests: cfg.RateLimit.DefaultMax,
			Window:      time.Duration(cfg.RateLimit.DefaultWindowMs) * time.Millisecond,
		},
		FormPolicy: domain.RateLimitPolicy{
			MaxRequests: cfg.RateLimit.FormMax,
			Window:      time.Duration(cfg.RateLimit.FormWindowMs) * time.Millisecond,
		},
		Log: log,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(":" + cfg.Port)
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
