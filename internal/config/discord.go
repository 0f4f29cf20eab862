// Copyright (c) 2025 Akiro Labs
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

type DiscordOAuthConfig struct {
	clientID     string
	clientSecret string
	redirectURL  string
}

func NewDiscordOAuthConfig(clientID, clientSecret, redirectURL string) DiscordOAuthConfig {
	return DiscordOAuthConfig{
		clientID:     clientID,
		clientSecret: clientSecret,
		redirectURL:  redirectURL,
	}
}

func (o *DiscordOAuthConfig) ClientID() string {
	return o.clientID
}

func (o *DiscordOAuthConfig) ClientSecret() string {
	return o.clientSecret
}

func (o *DiscordOAuthConfig) RedirectURL() string {
	return o.redirectURL
}

func (o *DiscordOAuthConfig) Enabled() bool {
	return o.clientID != "" && o.clientSecret != ""
}

type DiscordBotConfig struct {
	botToken               string
	guildID                string
	subscriberRoleID       string
	requireGuildMembership bool
}

func NewDiscordBotConfig(botToken, guildID, subscriberRoleID string, requireGuildMembership bool) DiscordBotConfig {
	return DiscordBotConfig{
		botToken:               botToken,
		guildID:                guildID,
		subscriberRoleID:       subscriberRoleID,
		requireGuildMembership: requireGuildMembership,
	}
}

func (b *DiscordBotConfig) BotToken() string {
	return b.botToken
}

func (b *DiscordBotConfig) GuildID() string {
	return b.guildID
}

func (b *DiscordBotConfig) SubscriberRoleID() string {
	return b.subscriberRoleID
}

func (b *DiscordBotConfig) RequireGuildMembership() bool {
	return b.requireGuildMembership
}

type DiscordConfig struct {
	oAuth DiscordOAuthConfig
	bot   DiscordBotConfig
}

func NewDiscordConfig(oAuth DiscordOAuthConfig, bot DiscordBotConfig) DiscordConfig {
	return DiscordConfig{
		oAuth: oAuth,
		bot:   bot,
	}
}

func (d *DiscordConfig) OAuth() DiscordOAuthConfig {
	return d.oAuth
}

func (d *DiscordConfig) Bot() DiscordBotConfig {
	return d.bot
}
