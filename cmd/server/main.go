package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"charforge/internal/config"
	"charforge/internal/generator"
	apphttp "charforge/internal/http"
	"charforge/internal/repository/postgres"
	"charforge/internal/service"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("invalid config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.Connect(ctx, cfg.Database.URL, postgres.PoolOptions{
		MinConns:   int32(cfg.Database.MinConns),
		MaxConns:   int32(cfg.Database.MaxConns),
		RetryCount: cfg.Database.RetryCount,
		RetryDelay: time.Duration(cfg.Database.RetryDelaySec) * time.Second,
	}, logger)
	if err != nil {
		logger.Fatalf("connect database: %v", err)
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	characterRepo := postgres.NewCharacterRepository(pool)
	seedRepo := postgres.NewSeedRepository(pool)

	if err := userRepo.Init(ctx); err != nil {
		logger.Fatalf("init user repository: %v", err)
	}
	if err := characterRepo.Init(ctx); err != nil {
		logger.Fatalf("init character repository: %v", err)
	}
	if err := seedRepo.Init(ctx); err != nil {
		logger.Fatalf("init seed repository: %v", err)
	}

	tokens, err := service.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.Algorithm)
	if err != nil {
		logger.Fatalf("setup token manager: %v", err)
	}

	userService := service.NewUserService(userRepo)
	characterService := service.NewCharacterService(characterRepo, generator.New(seedRepo))

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	handler := apphttp.NewHandler(
		userService,
		characterService,
		tokens,
		time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute,
		logger,
	)
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		logger.Infof("listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("http shutdown: %v", err)
	}

	logger.Info("bye")
}
