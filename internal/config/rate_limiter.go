// Copyright (c) 2025 Akiro Labs
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

type RateLimiterConfig struct {
	enabled       bool
	authMax       int64
	discordMax    int64
	adminMax      int64
	windowSeconds int64
}

func NewRateLimiterConfig(enabled bool, authMax, discordMax, adminMax, windowSeconds int64) RateLimiterConfig {
	return RateLimiterConfig{
		enabled:       enabled,
		authMax:       authMax,
		discordMax:    discordMax,
		adminMax:      adminMax,
		windowSeconds: windowSeconds,
	}
}

func (r *RateLimiterConfig) Enabled() bool {
	return r.enabled
}

func (r *RateLimiterConfig) AuthMax() int64 {
	return r.authMax
}

func (r *RateLimiterConfig) DiscordMax() int64 {
	return r.discordMax
}

func (r *RateLimiterConfig) AdminMax() int64 {
	return r.adminMax
}

func (r *RateLimiterConfig) WindowSeconds() int64 {
	return r.windowSeconds
}
