// Copyright (c) 2025 Akiro Labs
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	port              int64
	env               string
	maxProcs          int64
	databaseURL       string
	redisURL          string
	frontendDomain    string
	backendDomain     string
	serviceName       string
	oauthStateTTLSec  int64
	roleSyncCronSpec  string
	loggerConfig      LoggerConfig
	tokensConfig      TokensConfig
	rateLimiterConfig RateLimiterConfig
	discordConfig     DiscordConfig
	paymentsConfig    PaymentsConfig
}

func (c *Config) Port() int64 {
	return c.port
}

func (c *Config) Env() string {
	return c.env
}

func (c *Config) MaxProcs() int64 {
	return c.maxProcs
}

func (c *Config) DatabaseURL() string {
	return c.databaseURL
}

func (c *Config) RedisURL() string {
	return c.redisURL
}

func (c *Config) FrontendDomain() string {
	return c.frontendDomain
}

func (c *Config) BackendDomain() string {
	return c.backendDomain
}

func (c *Config) ServiceName() string {
	return c.serviceName
}

func (c *Config) OAuthStateTTLSec() int64 {
	return c.oauthStateTTLSec
}

func (c *Config) RoleSyncCronSpec() string {
	return c.roleSyncCronSpec
}

func (c *Config) LoggerConfig() LoggerConfig {
	return c.loggerConfig
}

func (c *Config) TokensConfig() TokensConfig {
	return c.tokensConfig
}

func (c *Config) RateLimiterConfig() RateLimiterConfig {
	return c.rateLimiterConfig
}

func (c *Config) DiscordConfig() DiscordConfig {
	return c.discordConfig
}

func (c *Config) PaymentsConfig() PaymentsConfig {
	return c.paymentsConfig
}

var variables = [17]string{
	"PORT",
	"ENV",
	"DEBUG",
	"SERVICE_NAME",
	"MAX_PROCS",
	"DATABASE_URL",
	"REDIS_URL",
	"FRONTEND_DOMAIN",
	"BACKEND_DOMAIN",
	"JWT_SECRET",
	"JWT_ACCESS_TTL_SEC",
	"RATE_LIMITER_ENABLED",
	"RATE_LIMIT_AUTH_PER_MIN",
	"RATE_LIMIT_DISCORD_PER_MIN",
	"RATE_LIMIT_ADMIN_PER_MIN",
	"OAUTH_STATE_TTL_SEC",
	"PAYMENT_STRICT",
}

var optionalVariables = [15]string{
	"DISCORD_CLIENT_ID",
	"DISCORD_CLIENT_SECRET",
	"DISCORD_REDIRECT_URI",
	"DISCORD_BOT_TOKEN",
	"DISCORD_GUILD_ID",
	"DISCORD_SUBSCRIBER_ROLE_ID",
	"DISCORD_REQUIRE_GUILD_MEMBERSHIP",
	"ETHEREUM_RPC_URL",
	"POLYGON_RPC_URL",
	"ARBITRUM_RPC_URL",
	"OPTIMISM_RPC_URL",
	"SOLANA_RPC_URL",
	"EVM_WALLET_ADDRESS",
	"SOLANA_WALLET_ADDRESS",
	"ROLE_SYNC_CRON",
}

var numerics = [7]string{
	"PORT",
	"MAX_PROCS",
	"JWT_ACCESS_TTL_SEC",
	"RATE_LIMIT_AUTH_PER_MIN",
	"RATE_LIMIT_DISCORD_PER_MIN",
	"RATE_LIMIT_ADMIN_PER_MIN",
	"OAUTH_STATE_TTL_SEC",
}

// Every 24 hours, matching the original deployment's sync cadence.
const defaultRoleSyncCronSpec string = "@every 24h"

func isTrue(value string) bool {
	return strings.ToLower(value) == "true"
}

func NewConfig(logger *slog.Logger, envPath string) Config {
	err := godotenv.Load(envPath)
	if err != nil {
		logger.Error("Error loading .env file")
	}

	variablesMap := make(map[string]string)
	for _, variable := range variables {
		value := os.Getenv(variable)
		if value == "" {
			logger.Error(variable + " is not set")
			panic(variable + " is not set")
		}
		variablesMap[variable] = value
	}

	for _, variable := range optionalVariables {
		value := os.Getenv(variable)
		variablesMap[variable] = value
	}

	intMap := make(map[string]int64)
	for _, numeric := range numerics {
		value, err := strconv.ParseInt(variablesMap[numeric], 10, 0)
		if err != nil {
			logger.Error(numeric + " is not an integer")
			panic(numeric + " is not an integer")
		}
		intMap[numeric] = value
	}

	roleSyncCronSpec := variablesMap["ROLE_SYNC_CRON"]
	if roleSyncCronSpec == "" {
		roleSyncCronSpec = defaultRoleSyncCronSpec
	}

	return Config{
		port:             intMap["PORT"],
		env:              variablesMap["ENV"],
		maxProcs:         intMap["MAX_PROCS"],
		databaseURL:      variablesMap["DATABASE_URL"],
		redisURL:         variablesMap["REDIS_URL"],
		frontendDomain:   variablesMap["FRONTEND_DOMAIN"],
		backendDomain:    variablesMap["BACKEND_DOMAIN"],
		serviceName:      variablesMap["SERVICE_NAME"],
		oauthStateTTLSec: intMap["OAUTH_STATE_TTL_SEC"],
		roleSyncCronSpec: roleSyncCronSpec,
		loggerConfig: NewLoggerConfig(
			isTrue(variablesMap["DEBUG"]),
			variablesMap["ENV"],
			variablesMap["SERVICE_NAME"],
		),
		tokensConfig: NewTokensConfig(
			variablesMap["JWT_SECRET"],
			intMap["JWT_ACCESS_TTL_SEC"],
		),
		rateLimiterConfig: NewRateLimiterConfig(
			isTrue(variablesMap["RATE_LIMITER_ENABLED"]),
			intMap["RATE_LIMIT_AUTH_PER_MIN"],
			intMap["RATE_LIMIT_DISCORD_PER_MIN"],
			intMap["RATE_LIMIT_ADMIN_PER_MIN"],
			60,
		),
		discordConfig: NewDiscordConfig(
			NewDiscordOAuthConfig(
				variablesMap["DISCORD_CLIENT_ID"],
				variablesMap["DISCORD_CLIENT_SECRET"],
				variablesMap["DISCORD_REDIRECT_URI"],
			),
			NewDiscordBotConfig(
				variablesMap["DISCORD_BOT_TOKEN"],
				variablesMap["DISCORD_GUILD_ID"],
				variablesMap["DISCORD_SUBSCRIBER_ROLE_ID"],
				isTrue(variablesMap["DISCORD_REQUIRE_GUILD_MEMBERSHIP"]),
			),
		),
		paymentsConfig: NewPaymentsConfig(
			variablesMap["ETHEREUM_RPC_URL"],
			variablesMap["POLYGON_RPC_URL"],
			variablesMap["ARBITRUM_RPC_URL"],
			variablesMap["OPTIMISM_RPC_URL"],
			variablesMap["SOLANA_RPC_URL"],
			variablesMap["EVM_WALLET_ADDRESS"],
			variablesMap["SOLANA_WALLET_ADDRESS"],
			isTrue(variablesMap["PAYMENT_STRICT"]),
		),
	}
}
