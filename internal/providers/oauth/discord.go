// Copyright (c) 2025 Akiro Labs
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package oauth

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/akiro-labs/backend/internal/exceptions"
	"github.com/akiro-labs/backend/internal/utils"
)

const (
	discordLocation string = "discord"

	discordUserURL       string = "https://discord.com/api/users/@me"
	discordAvatarCDNBase string = "https://cdn.discordapp.com/avatars"

	discordScopeIdentify string = "identify"
)

type DiscordUserResponse struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Discriminator string `json:"discriminator"`
	GlobalName    string `json:"global_name"`
	Avatar        string `json:"avatar"`
}

func (r *DiscordUserResponse) ToUserData() UserData {
	// Legacy accounts still carry a non-zero discriminator.
	username := r.Username
	if r.Discriminator != "" && r.Discriminator != "0" {
		username = fmt.Sprintf("%s#%s", r.Username, r.Discriminator)
	}

	avatarURL := ""
	if r.Avatar != "" {
		avatarURL = fmt.Sprintf("%s/%s/%s.png", discordAvatarCDNBase, r.ID, r.Avatar)
	}

	return UserData{
		ID:        r.ID,
		Username:  username,
		AvatarURL: avatarURL,
	}
}

func (p *Providers) GetDiscordAuthorizationURL(
	ctx context.Context,
	opts AuthorizationURLOptions,
) (string, string, *exceptions.ServiceError) {
	logger := utils.BuildLogger(p.logger, utils.LoggerOptions{
		Location:  discordLocation,
		Method:    "GetDiscordAuthorizationURL",
		RequestID: opts.RequestID,
	})
	return getAuthorizationURL(ctx, getAuthorizationURLOptions{
		logger: logger,
		cfg:    p.discord,
	})
}

func (p *Providers) GetDiscordAccessToken(
	ctx context.Context,
	opts AccessTokenOptions,
) (string, *exceptions.ServiceError) {
	logger := utils.BuildLogger(p.logger, utils.LoggerOptions{
		Location:  discordLocation,
		Method:    "GetDiscordAccessToken",
		RequestID: opts.RequestID,
	})
	return getAccessToken(ctx, getAccessTokenOptions{
		logger: logger,
		cfg:    p.discord,
		code:   opts.Code,
	})
}

func (p *Providers) GetDiscordUserData(
	ctx context.Context,
	opts UserDataOptions,
) (UserData, *exceptions.ServiceError) {
	logger := utils.BuildLogger(p.logger, utils.LoggerOptions{
		Location:  discordLocation,
		Method:    "GetDiscordUserData",
		RequestID: opts.RequestID,
	})
	logger.DebugContext(ctx, "Getting Discord user data...")

	body, status, err := getUserResponse(logger, ctx, discordUserURL, opts.Token)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to get Discord user data", "error", err)

		if status > 0 && status < 500 {
			return UserData{}, exceptions.NewUnauthorizedError()
		}

		return UserData{}, exceptions.NewInternalServerError()
	}

	userRes := DiscordUserResponse{}
	if err := json.Unmarshal(body, &userRes); err != nil {
		logger.ErrorContext(ctx, "Failed to parse Discord user data", "error", err)
		return UserData{}, exceptions.NewInternalServerError()
	}
	if userRes.ID == "" {
		logger.WarnContext(ctx, "Empty user data")
		return UserData{}, exceptions.NewUnauthorizedError()
	}

	return userRes.ToUserData(), nil
}

func (p *Providers) DiscordEnabled() bool {
	return p.discord.Enabled
}
