// Copyright (c) 2025 Akiro Labs
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package discord

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/akiro-labs/backend/internal/config"
	"github.com/akiro-labs/backend/internal/utils"
)

const (
	logLayer string = utils.ProvidersLogLayer + "/discord"

	botLocation string = "bot"

	defaultAPIBaseURL string = "https://discord.com/api/v10"
)

// Bot is a minimal Discord REST client for guild membership checks and
// subscriber role management. All operations are no-ops when the bot is
// not configured.
type Bot struct {
	logger                 *slog.Logger
	httpClient             *http.Client
	apiBaseURL             string
	botToken               string
	guildID                string
	subscriberRoleID       string
	requireGuildMembership bool
}

func NewBot(logger *slog.Logger, cfg config.DiscordBotConfig) *Bot {
	return &Bot{
		logger:                 logger.With(utils.BaseLayer, logLayer),
		httpClient:             &http.Client{Timeout: 10 * time.Second},
		apiBaseURL:             defaultAPIBaseURL,
		botToken:               cfg.BotToken(),
		guildID:                cfg.GuildID(),
		subscriberRoleID:       cfg.SubscriberRoleID(),
		requireGuildMembership: cfg.RequireGuildMembership(),
	}
}

func (b *Bot) Enabled() bool {
	return b.botToken != "" && b.guildID != ""
}

func (b *Bot) RoleManagementEnabled() bool {
	return b.Enabled() && b.subscriberRoleID != ""
}

func (b *Bot) RequireGuildMembership() bool {
	return b.requireGuildMembership
}

func (b *Bot) request(ctx context.Context, method, path string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, b.apiBaseURL+path, nil)
	if err != nil {
		return 0, err
	}

	req.Header.Set("Authorization", "Bot "+b.botToken)
	req.Header.Set("Accept", "application/json")

	res, err := b.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	if err := res.Body.Close(); err != nil {
		return 0, err
	}

	return res.StatusCode, nil
}

type guildMemberResponse struct {
	Roles []string `json:"roles"`
}

func (b *Bot) getMember(ctx context.Context, discordID string) (int, *guildMemberResponse, error) {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		fmt.Sprintf("%s/guilds/%s/members/%s", b.apiBaseURL, b.guildID, discordID),
		nil,
	)
	if err != nil {
		return 0, nil, err
	}

	req.Header.Set("Authorization", "Bot "+b.botToken)
	req.Header.Set("Accept", "application/json")

	res, err := b.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}

	if res.StatusCode != http.StatusOK {
		if err := res.Body.Close(); err != nil {
			return res.StatusCode, nil, err
		}
		return res.StatusCode, nil, nil
	}

	member := new(guildMemberResponse)
	if err := json.NewDecoder(res.Body).Decode(member); err != nil {
		_ = res.Body.Close()
		return res.StatusCode, nil, err
	}
	if err := res.Body.Close(); err != nil {
		return res.StatusCode, nil, err
	}

	return res.StatusCode, member, nil
}

// HasSubscriberRole reports whether the guild member currently carries the
// subscriber role. Members missing from the guild do not have the role.
func (b *Bot) HasSubscriberRole(ctx context.Context, requestID, discordID string) (bool, error) {
	logger := utils.BuildLogger(b.logger, utils.LoggerOptions{
		Location:  botLocation,
		Method:    "HasSubscriberRole",
		RequestID: requestID,
	})

	if !b.RoleManagementEnabled() {
		logger.WarnContext(ctx, "Discord role management is not configured, skipping role membership check")
		return false, nil
	}

	status, member, err := b.getMember(ctx, discordID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to fetch guild member", "error", err)
		return false, err
	}

	switch status {
	case http.StatusOK:
		for _, roleID := range member.Roles {
			if roleID == b.subscriberRoleID {
				return true, nil
			}
		}
		return false, nil
	case http.StatusNotFound:
		return false, nil
	default:
		logger.ErrorContext(ctx, "Unexpected guild member response", "status", status)
		return false, fmt.Errorf("unexpected status code: %d", status)
	}
}

// IsGuildMember reports whether the Discord user belongs to the configured
// guild. It returns true when the bot is not configured so membership gates
// never lock users out of a deployment without a bot.
func (b *Bot) IsGuildMember(ctx context.Context, requestID, discordID string) (bool, error) {
	logger := utils.BuildLogger(b.logger, utils.LoggerOptions{
		Location:  botLocation,
		Method:    "IsGuildMember",
		RequestID: requestID,
	})

	if !b.Enabled() {
		logger.WarnContext(ctx, "Discord bot is not configured, skipping guild membership check")
		return true, nil
	}

	status, err := b.request(ctx, http.MethodGet, fmt.Sprintf("/guilds/%s/members/%s", b.guildID, discordID))
	if err != nil {
		logger.ErrorContext(ctx, "Failed to check guild membership", "error", err)
		return false, err
	}

	switch status {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		logger.ErrorContext(ctx, "Unexpected guild member response", "status", status)
		return false, fmt.Errorf("unexpected status code: %d", status)
	}
}

// AddSubscriberRole grants the configured subscriber role. A missing member
// is not an error since the user may have left the guild.
func (b *Bot) AddSubscriberRole(ctx context.Context, requestID, discordID string) error {
	logger := utils.BuildLogger(b.logger, utils.LoggerOptions{
		Location:  botLocation,
		Method:    "AddSubscriberRole",
		RequestID: requestID,
	})

	if !b.RoleManagementEnabled() {
		logger.WarnContext(ctx, "Discord role management is not configured, skipping role grant")
		return nil
	}

	status, err := b.request(
		ctx,
		http.MethodPut,
		fmt.Sprintf("/guilds/%s/members/%s/roles/%s", b.guildID, discordID, b.subscriberRoleID),
	)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to add subscriber role", "error", err)
		return err
	}

	if status != http.StatusNoContent && status != http.StatusNotFound {
		logger.ErrorContext(ctx, "Unexpected add role response", "status", status)
		return fmt.Errorf("unexpected status code: %d", status)
	}

	return nil
}

// RemoveSubscriberRole revokes the configured subscriber role with the same
// tolerance as AddSubscriberRole.
func (b *Bot) RemoveSubscriberRole(ctx context.Context, requestID, discordID string) error {
	logger := utils.BuildLogger(b.logger, utils.LoggerOptions{
		Location:  botLocation,
		Method:    "RemoveSubscriberRole",
		RequestID: requestID,
	})

	if !b.RoleManagementEnabled() {
		logger.WarnContext(ctx, "Discord role management is not configured, skipping role revoke")
		return nil
	}

	status, err := b.request(
		ctx,
		http.MethodDelete,
		fmt.Sprintf("/guilds/%s/members/%s/roles/%s", b.guildID, discordID, b.subscriberRoleID),
	)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to remove subscriber role", "error", err)
		return err
	}

	if status != http.StatusNoContent && status != http.StatusNotFound {
		logger.ErrorContext(ctx, "Unexpected remove role response", "status", status)
		return fmt.Errorf("unexpected status code: %d", status)
	}

	return nil
}
