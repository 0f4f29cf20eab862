// Copyright (c) 2025 Akiro Labs
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package oauth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/akiro-labs/backend/internal/config"
	"github.com/akiro-labs/backend/internal/exceptions"
	"github.com/akiro-labs/backend/internal/utils"
)

const logLayer string = utils.ProvidersLogLayer + "/oauth"

type Config struct {
	Enabled bool
	oauth2.Config
}

type Providers struct {
	discord Config
	logger  *slog.Logger
}

func NewProviders(log *slog.Logger, discordCfg config.DiscordOAuthConfig) *Providers {
	return &Providers{
		discord: Config{
			Config: oauth2.Config{
				ClientID:     discordCfg.ClientID(),
				ClientSecret: discordCfg.ClientSecret(),
				RedirectURL:  discordCfg.RedirectURL(),
				Endpoint: oauth2.Endpoint{
					AuthURL:  "https://discord.com/api/oauth2/authorize",
					TokenURL: "https://discord.com/api/oauth2/token",
				},
				Scopes: []string{discordScopeIdentify},
			},
			Enabled: discordCfg.Enabled(),
		},
		logger: log.With(utils.BaseLayer, logLayer),
	}
}

type getAccessTokenOptions struct {
	logger *slog.Logger
	cfg    Config
	code   string
}

func getAccessToken(ctx context.Context, opts getAccessTokenOptions) (string, *exceptions.ServiceError) {
	opts.logger.DebugContext(ctx, "Getting access token...")

	if !opts.cfg.Enabled {
		opts.logger.DebugContext(ctx, "OAuth config is disabled")
		return "", exceptions.NewNotFoundError()
	}

	token, err := opts.cfg.Exchange(ctx, opts.code)
	if err != nil {
		opts.logger.ErrorContext(ctx, "Failed to exchange the code for a token", "error", err)
		return "", exceptions.NewUnauthorizedError()
	}

	opts.logger.DebugContext(ctx, "Access token exchanged successfully")
	return token.AccessToken, nil
}

type getAuthorizationURLOptions struct {
	logger *slog.Logger
	cfg    Config
}

func getAuthorizationURL(ctx context.Context, opts getAuthorizationURLOptions) (string, string, *exceptions.ServiceError) {
	opts.logger.DebugContext(ctx, "Getting authorization url...")

	if !opts.cfg.Enabled {
		opts.logger.DebugContext(ctx, "OAuth config is disabled")
		return "", "", exceptions.NewNotFoundError()
	}

	state, err := utils.GenerateHexSecret(16)
	if err != nil {
		opts.logger.ErrorContext(ctx, "Failed to generate state", "error", err)
		return "", "", exceptions.NewInternalServerError()
	}

	url := opts.cfg.AuthCodeURL(state)
	opts.logger.DebugContext(ctx, "Authorization url generated successfully")
	return url, state, nil
}

func getUserResponse(logger *slog.Logger, ctx context.Context, url, token string) ([]byte, int, error) {
	logger.DebugContext(ctx, "Getting user data...", "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to build user data request")
		return nil, 0, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	logger.DebugContext(ctx, "Requesting user data...")
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to request the user data")
		return nil, 0, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			logger.ErrorContext(ctx, "Failed to close response body", "error", err)
		}
	}()

	if res.StatusCode != http.StatusOK {
		logger.ErrorContext(ctx, "Responded with a non 200 OK status", "status", res.StatusCode)
		return nil, res.StatusCode, errors.New("status code is not 200 OK")
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to read the body", "error", err)
		return nil, 0, err
	}

	return body, res.StatusCode, nil
}

type UserData struct {
	ID        string
	Username  string
	AvatarURL string
}

type AccessTokenOptions struct {
	RequestID string
	Code      string
}

type AuthorizationURLOptions struct {
	RequestID string
}

type UserDataOptions struct {
	RequestID string
	Token     string
}
