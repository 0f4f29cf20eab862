// Copyright (c) 2025 Akiro Labs
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package paths

const Base string = "/v1"

const (
	AuthBase string = "/auth"

	AuthRegister string = "/register"
	AuthLogin    string = "/login"
)

const (
	UsersBase string = "/users"

	UsersMe string = "/me"
)

const (
	DiscordBase string = "/discord"

	DiscordAuthorize string = "/authorize"
	DiscordCallback  string = "/callback"
	DiscordUnlink    string = "/unlink"
)

const (
	SubscriptionsBase string = "/subscriptions"

	SubscriptionsPlans   string = "/plans"
	SubscriptionsConfirm string = "/confirm"
	SubscriptionsMe      string = "/me"
	SubscriptionsHistory string = "/history"
)

const (
	AdminBase string = "/admin"

	AdminUsers         string = "/users"
	AdminUserSingle    string = "/users/:userID"
	AdminUserBan       string = "/users/:userID/ban"
	AdminUserUnban     string = "/users/:userID/unban"
	AdminUserMakeAdmin string = "/users/:userID/make-admin"
	AdminLogs          string = "/logs"
)

const HealthPath string = "/health"
