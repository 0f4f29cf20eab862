// Copyright (c) 2025 Akiro Labs
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package services

import (
	"log/slog"

	"github.com/akiro-labs/backend/internal/providers/blockchain"
	"github.com/akiro-labs/backend/internal/providers/cache"
	"github.com/akiro-labs/backend/internal/providers/database"
	"github.com/akiro-labs/backend/internal/providers/discord"
	"github.com/akiro-labs/backend/internal/providers/oauth"
	"github.com/akiro-labs/backend/internal/providers/tokens"
)

type Services struct {
	logger         *slog.Logger
	database       *database.Database
	cache          *cache.Cache
	jwt            *tokens.Tokens
	oauthProviders *oauth.Providers
	discordBot     *discord.Bot
	verifier       *blockchain.Verifier
}

func NewServices(
	logger *slog.Logger,
	database *database.Database,
	cache *cache.Cache,
	jwt *tokens.Tokens,
	oauthProv *oauth.Providers,
	discordBot *discord.Bot,
	verifier *blockchain.Verifier,
) *Services {
	return &Services{
		logger:         logger,
		database:       database,
		cache:          cache,
		jwt:            jwt,
		oauthProviders: oauthProv,
		discordBot:     discordBot,
		verifier:       verifier,
	}
}
