// Copyright (c) 2025 Akiro Labs
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	fiberRedis "github.com/gofiber/storage/redis/v3"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/akiro-labs/backend/internal/config"
	"github.com/akiro-labs/backend/internal/controllers"
	"github.com/akiro-labs/backend/internal/providers/blockchain"
	"github.com/akiro-labs/backend/internal/providers/cache"
	"github.com/akiro-labs/backend/internal/providers/database"
	"github.com/akiro-labs/backend/internal/providers/discord"
	"github.com/akiro-labs/backend/internal/providers/oauth"
	"github.com/akiro-labs/backend/internal/providers/tokens"
	"github.com/akiro-labs/backend/internal/server/routes"
	"github.com/akiro-labs/backend/internal/server/validations"
	"github.com/akiro-labs/backend/internal/services"
)

type FiberServer struct {
	*fiber.App
	routes   *routes.Routes
	services *services.Services
}

func newRateLimiter(cfg config.RateLimiterConfig, max int64, storage fiber.Storage) fiber.Handler {
	if !cfg.Enabled() {
		return func(ctx *fiber.Ctx) error {
			return ctx.Next()
		}
	}

	return limiter.New(limiter.Config{
		Max:               int(max),
		Expiration:        time.Duration(cfg.WindowSeconds()) * time.Second,
		LimiterMiddleware: limiter.SlidingWindow{},
		Storage:           storage,
	})
}

func New(
	ctx context.Context,
	logger *slog.Logger,
	cfg config.Config,
) *FiberServer {
	logger.InfoContext(ctx, "Building redis storage...")
	cacheStorage := fiberRedis.New(fiberRedis.Config{
		URL: cfg.RedisURL(),
	})
	cc := cache.NewCache(
		logger,
		cacheStorage,
		cfg.OAuthStateTTLSec(),
	)
	logger.InfoContext(ctx, "Finished building redis storage")

	logger.InfoContext(ctx, "Building database connection pool...")
	dbConnPool, err := pgxpool.New(ctx, cfg.DatabaseURL())
	if err != nil {
		logger.ErrorContext(ctx, "Failed to connect to database", "error", err)
		panic(err)
	}
	db := database.NewDatabase(dbConnPool)
	logger.InfoContext(ctx, "Finished building database connection pool")

	logger.InfoContext(ctx, "Building JWT tokens...")
	tokensCfg := cfg.TokensConfig()
	jwts := tokens.NewTokens(
		logger,
		cfg.BackendDomain(),
		tokensCfg.Secret(),
		tokensCfg.AccessTTLSec(),
	)
	logger.InfoContext(ctx, "Finished building JWT tokens")

	logger.InfoContext(ctx, "Building OAuth providers...")
	discordCfg := cfg.DiscordConfig()
	oauthProviders := oauth.NewProviders(logger, discordCfg.OAuth())
	logger.InfoContext(ctx, "Finished building OAuth providers")

	logger.InfoContext(ctx, "Building Discord bot...")
	bot := discord.NewBot(logger, discordCfg.Bot())
	logger.InfoContext(ctx, "Finished building Discord bot")

	logger.InfoContext(ctx, "Building payment verifier...")
	verifier := blockchain.NewVerifier(logger, cfg.PaymentsConfig())
	logger.InfoContext(ctx, "Finished building payment verifier")

	logger.InfoContext(ctx, "Building services...")
	newServices := services.NewServices(
		logger,
		db,
		cc,
		jwts,
		oauthProviders,
		bot,
		verifier,
	)
	logger.InfoContext(ctx, "Finished building services")

	logger.InfoContext(ctx, "Loading validators...")
	vld := validations.NewValidator(logger)
	logger.InfoContext(ctx, "Finished loading validators")

	rateLimitCfg := cfg.RateLimiterConfig()
	server := &FiberServer{
		App: fiber.New(fiber.Config{
			ServerHeader: cfg.ServiceName(),
			AppName:      cfg.ServiceName(),
		}),
		routes: routes.NewRoutes(
			controllers.NewControllers(
				logger,
				newServices,
				vld,
				cfg.FrontendDomain(),
				cfg.BackendDomain(),
			),
			newRateLimiter(rateLimitCfg, rateLimitCfg.AuthMax(), cacheStorage),
			newRateLimiter(rateLimitCfg, rateLimitCfg.DiscordMax(), cacheStorage),
			newRateLimiter(rateLimitCfg, rateLimitCfg.AdminMax(), cacheStorage),
		),
		services: newServices,
	}

	logger.InfoContext(ctx, "Loading middleware...")
	server.Use(helmet.New())
	server.Use(requestid.New(requestid.Config{
		Header: fiber.HeaderXRequestID,
		Generator: func() string {
			return uuid.NewString()
		},
	}))
	server.App.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH,HEAD",
		AllowHeaders:     "Accept,Authorization,Content-Type",
		AllowCredentials: false, // credentials require explicit origins
		MaxAge:           300,
	}))
	logger.Info("Finished loading common middlewares")

	return server
}

func (s *FiberServer) Services() *services.Services {
	return s.services
}
