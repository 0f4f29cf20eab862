// Copyright (c) 2025 Akiro Labs
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package services

import (
	"context"
	"fmt"

	"github.com/akiro-labs/backend/internal/providers/database"
)

const roleSyncLocation string = "role_sync"

const (
	adminActionCronRoleSyncAdd    string = "cron_role_sync_add"
	adminActionCronRoleSyncRemove string = "cron_role_sync_remove"
)

// SyncDiscordRoles reconciles Discord subscriber roles with subscription
// state for every user with a linked Discord account. Users whose
// subscription lapsed are demoted back to the base role. Per-user failures
// are logged and the sync moves on.
func (s *Services) SyncDiscordRoles(ctx context.Context, requestID string) error {
	logger := s.buildLogger(requestID, roleSyncLocation, "SyncDiscordRoles")

	users, err := s.database.FindUsersWithDiscordID(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load users with Discord accounts", "error", err)
		return err
	}

	logger.InfoContext(ctx, "Role sync started", "users", len(users))
	for i := range users {
		user := &users[i]
		if err := s.syncUserDiscordRole(ctx, requestID, user); err != nil {
			logger.ErrorContext(ctx, "Failed to sync user", "userId", user.PublicID, "error", err)
		}
	}

	logger.InfoContext(ctx, "Role sync finished")
	return nil
}

// When the membership check fails the mutation is issued anyway, both role
// calls tolerate missing members. Neither fires when role management is not
// configured.
func roleSyncGrantNeeded(roleManagementEnabled, hasRole bool, checkErr error) bool {
	return roleManagementEnabled && (checkErr != nil || !hasRole)
}

func roleSyncRevokeNeeded(roleManagementEnabled, hasRole bool, checkErr error) bool {
	return roleManagementEnabled && (checkErr != nil || hasRole)
}

func (s *Services) syncUserDiscordRole(ctx context.Context, requestID string, user *database.User) error {
	logger := s.buildLogger(requestID, roleSyncLocation, "syncUserDiscordRole").With(
		"userId", user.PublicID,
	)

	roleManagementEnabled := s.discordBot.RoleManagementEnabled()

	var hasRole bool
	var roleErr error
	if roleManagementEnabled {
		hasRole, roleErr = s.discordBot.HasSubscriberRole(ctx, requestID, user.DiscordID.String)
		if roleErr != nil {
			logger.ErrorContext(ctx, "Failed to check subscriber role", "error", roleErr)
		}
	}

	subscription, err := s.database.FindActiveSubscriptionByUserID(ctx, user.ID)
	if err != nil {
		if !isNotFound(err) {
			return err
		}

		revoked := roleSyncRevokeNeeded(roleManagementEnabled, hasRole, roleErr)
		if revoked {
			if err := s.discordBot.RemoveSubscriberRole(ctx, requestID, user.DiscordID.String); err != nil {
				logger.ErrorContext(ctx, "Failed to remove subscriber role", "error", err)
			}
		}

		demoted := false
		if user.Role == database.UserRoleSubscriber {
			if err := s.database.UpdateUserRoleByID(ctx, database.UpdateUserRoleByIDParams{
				ID:   user.ID,
				Role: database.UserRoleUser,
			}); err != nil {
				return err
			}
			demoted = true
		}

		if revoked || demoted {
			s.logAdminAction(ctx, logAdminActionOptions{
				RequestID:    requestID,
				Action:       adminActionCronRoleSyncRemove,
				AdminID:      user.PublicID,
				TargetUserID: &user.PublicID,
				Details:      "subscription expired or missing",
			})
		}
		return nil
	}

	if roleSyncGrantNeeded(roleManagementEnabled, hasRole, roleErr) {
		if err := s.discordBot.AddSubscriberRole(ctx, requestID, user.DiscordID.String); err != nil {
			logger.ErrorContext(ctx, "Failed to add subscriber role", "error", err)
		}

		s.logAdminAction(ctx, logAdminActionOptions{
			RequestID:    requestID,
			Action:       adminActionCronRoleSyncAdd,
			AdminID:      user.PublicID,
			TargetUserID: &user.PublicID,
			Details:      fmt.Sprintf("active subscription: %s", subscription.PlanCode),
		})
	}
	return nil
}
