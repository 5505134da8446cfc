// Command seed performs the offline seeding step: it creates the schema and
// loads the built-in generation corpus. Duplicate (category, content) pairs
// are skipped, so re-running it is safe.
package main

import (
	"context"
	"flag"
	"time"

	"github.com/sirupsen/logrus"

	"charforge/internal/config"
	"charforge/internal/repository/postgres"
	"charforge/internal/seeddata"
	"charforge/internal/service"
)

func main() {
	sampleUsers := flag.Bool("sample-users", false, "also create throwaway demo accounts")
	flag.Parse()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}
	if cfg.Database.URL == "" {
		logger.Fatalf("database url is required")
	}

	ctx := context.Background()

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

	inserted := 0
	for category, contents := range seeddata.Corpus {
		for _, content := range contents {
			added, err := seedRepo.Insert(ctx, category, content)
			if err != nil {
				logger.Fatalf("insert seed %q/%q: %v", category, content, err)
			}
			if added {
				inserted++
			}
		}
	}
	logger.Infof("seed corpus loaded, %d new entries", inserted)

	if *sampleUsers {
		users := service.NewUserService(userRepo)
		for _, cred := range [][2]string{
			{"testuser_1", "password_1"},
			{"testuser_2", "password_2"},
			{"testuser_3", "password_3"},
		} {
			if _, err := users.Register(ctx, cred[0], cred[1]); err != nil {
				logger.Warnf("sample user %s: %v", cred[0], err)
				continue
			}
			logger.Infof("sample user %s created", cred[0])
		}
	}
}
