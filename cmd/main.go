package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/manas360online-source/authentication-system/config"
	"github.com/manas360online-source/authentication-system/db"
	"github.com/manas360online-source/authentication-system/internal/auth/domain"
	"github.com/manas360online-source/authentication-system/internal/auth/handler"
	"github.com/manas360online-source/authentication-system/internal/auth/ratelimit"
	memrepo "github.com/manas360online-source/authentication-system/internal/auth/repository/memory"
	pgrepo "github.com/manas360online-source/authentication-system/internal/auth/repository/postgres"
	"github.com/manas360online-source/authentication-system/internal/auth/service"
	"github.com/manas360online-source/authentication-system/internal/auth/sessions"
	"github.com/manas360online-source/authentication-system/internal/logging"
)

func main() {
	cfg := config.Load()
	logger := logging.NewDefault()
	ctx := context.Background()

	var accounts domain.AccountRepository
	var audit domain.AuditRepository

	// Default substrate is the JSON snapshot store; a configured DB URL
	// switches both collections to Postgres.
	if cfg.DBURL != "" {
		pool, err := db.NewPostgresPool(ctx, cfg.DBURL)
		if err != nil {
			log.Fatalf("connect postgres: %v", err)
		}
		defer pool.Close()

		if err := pgrepo.EnsureSchema(ctx, pool); err != nil {
			log.Fatalf("ensure schema: %v", err)
		}
		repo := pgrepo.NewPostgresRepository(pool)
		accounts, audit = repo, repo
	} else {
		store, err := memrepo.NewStore(cfg.StoragePath)
		if err != nil {
			log.Fatalf("open store: %v", err)
		}
		accounts, audit = store, store
	}

	tokenService := service.NewTokenService(cfg.TokenSecret, cfg.TokenExpiryMin)
	authService := service.NewAuthService(
		accounts,
		audit,
		ratelimit.NewMemoryStore(),
		sessions.NewSampleProvider(nil),
		tokenService,
		cfg,
		logger,
	)
	authHandler := handler.NewAuthHandler(authService, tokenService)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler)
	log.Fatal(app.Listen(":" + cfg.Port))
}
