// Copyright (c) 2025 Akiro Labs
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/akiro-labs/backend/internal/exceptions"
	"github.com/akiro-labs/backend/internal/providers/database"
	"github.com/akiro-labs/backend/internal/services/dtos"
)

const usersLocation string = "users"

const (
	adminActionBanUser    string = "ban_user"
	adminActionUnbanUser  string = "unban_user"
	adminActionMakeAdmin  string = "make_admin"
	adminActionDeleteUser string = "delete_user"
)

type GetUserByPublicIDOptions struct {
	RequestID string
	PublicID  uuid.UUID
}

func (s *Services) GetUserByPublicID(
	ctx context.Context,
	opts GetUserByPublicIDOptions,
) (dtos.UserDTO, *exceptions.ServiceError) {
	logger := s.buildLogger(opts.RequestID, usersLocation, "GetUserByPublicID").With(
		"userId", opts.PublicID,
	)
	logger.InfoContext(ctx, "Getting user by public ID...")

	user, err := s.database.FindUserByPublicID(ctx, opts.PublicID)
	if err != nil {
		serviceErr := exceptions.FromDBError(err)
		if serviceErr.Code == exceptions.CodeNotFound {
			logger.InfoContext(ctx, "User not found")
			return dtos.UserDTO{}, serviceErr
		}

		logger.ErrorContext(ctx, "Failed to find user", "error", err)
		return dtos.UserDTO{}, serviceErr
	}

	return dtos.MapUserToDTO(&user), nil
}

type ListUsersOptions struct {
	RequestID string
}

func (s *Services) ListUsers(
	ctx context.Context,
	opts ListUsersOptions,
) ([]dtos.UserDTO, *exceptions.ServiceError) {
	logger := s.buildLogger(opts.RequestID, usersLocation, "ListUsers")
	logger.InfoContext(ctx, "Listing users...")

	users, err := s.database.FindAllUsers(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list users", "error", err)
		return nil, exceptions.FromDBError(err)
	}

	userDTOs := make([]dtos.UserDTO, 0, len(users))
	for i := range users {
		userDTOs = append(userDTOs, dtos.MapUserToDTO(&users[i]))
	}

	return userDTOs, nil
}

type AdminUserActionOptions struct {
	RequestID string
	AdminID   uuid.UUID
	PublicID  uuid.UUID
}

func (s *Services) findModerationTarget(
	ctx context.Context,
	requestID string,
	publicID uuid.UUID,
) (database.User, *exceptions.ServiceError) {
	user, err := s.database.FindUserByPublicID(ctx, publicID)
	if err != nil {
		return database.User{}, exceptions.FromDBError(err)
	}

	// Superadmins are immune to moderation actions.
	if user.Role == database.UserRoleSuperadmin {
		logger := s.buildLogger(requestID, usersLocation, "findModerationTarget")
		logger.WarnContext(ctx, "Attempted moderation action on a superadmin", "userId", publicID)
		return database.User{}, exceptions.NewForbiddenError()
	}

	return user, nil
}

func (s *Services) BanUser(
	ctx context.Context,
	opts AdminUserActionOptions,
) (dtos.UserDTO, *exceptions.ServiceError) {
	logger := s.buildLogger(opts.RequestID, usersLocation, "BanUser").With(
		"userId", opts.PublicID,
	)
	logger.InfoContext(ctx, "Banning user...")

	if _, serviceErr := s.findModerationTarget(ctx, opts.RequestID, opts.PublicID); serviceErr != nil {
		return dtos.UserDTO{}, serviceErr
	}

	user, err := s.database.UpdateUserStatus(ctx, database.UpdateUserStatusParams{
		PublicID: opts.PublicID,
		Status:   database.UserStatusBanned,
	})
	if err != nil {
		logger.ErrorContext(ctx, "Failed to ban user", "error", err)
		return dtos.UserDTO{}, exceptions.FromDBError(err)
	}

	s.logAdminAction(ctx, logAdminActionOptions{
		RequestID:    opts.RequestID,
		Action:       adminActionBanUser,
		AdminID:      opts.AdminID,
		TargetUserID: &opts.PublicID,
		Details:      "status=banned",
	})

	logger.InfoContext(ctx, "Banned user successfully")
	return dtos.MapUserToDTO(&user), nil
}

func (s *Services) UnbanUser(
	ctx context.Context,
	opts AdminUserActionOptions,
) (dtos.UserDTO, *exceptions.ServiceError) {
	logger := s.buildLogger(opts.RequestID, usersLocation, "UnbanUser").With(
		"userId", opts.PublicID,
	)
	logger.InfoContext(ctx, "Unbanning user...")

	if _, serviceErr := s.findModerationTarget(ctx, opts.RequestID, opts.PublicID); serviceErr != nil {
		return dtos.UserDTO{}, serviceErr
	}

	user, err := s.database.UpdateUserStatus(ctx, database.UpdateUserStatusParams{
		PublicID: opts.PublicID,
		Status:   database.UserStatusActive,
	})
	if err != nil {
		logger.ErrorContext(ctx, "Failed to unban user", "error", err)
		return dtos.UserDTO{}, exceptions.FromDBError(err)
	}

	s.logAdminAction(ctx, logAdminActionOptions{
		RequestID:    opts.RequestID,
		Action:       adminActionUnbanUser,
		AdminID:      opts.AdminID,
		TargetUserID: &opts.PublicID,
		Details:      "status=active",
	})

	logger.InfoContext(ctx, "Unbanned user successfully")
	return dtos.MapUserToDTO(&user), nil
}

func (s *Services) MakeUserAdmin(
	ctx context.Context,
	opts AdminUserActionOptions,
) (dtos.UserDTO, *exceptions.ServiceError) {
	logger := s.buildLogger(opts.RequestID, usersLocation, "MakeUserAdmin").With(
		"userId", opts.PublicID,
	)
	logger.InfoContext(ctx, "Promoting user to admin...")

	if _, serviceErr := s.findModerationTarget(ctx, opts.RequestID, opts.PublicID); serviceErr != nil {
		return dtos.UserDTO{}, serviceErr
	}

	user, err := s.database.UpdateUserRole(ctx, database.UpdateUserRoleParams{
		PublicID: opts.PublicID,
		Role:     database.UserRoleAdmin,
	})
	if err != nil {
		logger.ErrorContext(ctx, "Failed to promote user", "error", err)
		return dtos.UserDTO{}, exceptions.FromDBError(err)
	}

	s.logAdminAction(ctx, logAdminActionOptions{
		RequestID:    opts.RequestID,
		Action:       adminActionMakeAdmin,
		AdminID:      opts.AdminID,
		TargetUserID: &opts.PublicID,
		Details:      "role=admin",
	})

	logger.InfoContext(ctx, "Promoted user successfully")
	return dtos.MapUserToDTO(&user), nil
}

func (s *Services) DeleteUser(
	ctx context.Context,
	opts AdminUserActionOptions,
) *exceptions.ServiceError {
	logger := s.buildLogger(opts.RequestID, usersLocation, "DeleteUser").With(
		"userId", opts.PublicID,
	)
	logger.InfoContext(ctx, "Deleting user...")

	user, serviceErr := s.findModerationTarget(ctx, opts.RequestID, opts.PublicID)
	if serviceErr != nil {
		return serviceErr
	}

	if user.DiscordID.Valid {
		if err := s.discordBot.RemoveSubscriberRole(ctx, opts.RequestID, user.DiscordID.String); err != nil {
			logger.ErrorContext(ctx, "Failed to remove Discord role before deletion", "error", err)
		}
	}

	if err := s.database.DeleteUserByPublicID(ctx, opts.PublicID); err != nil {
		logger.ErrorContext(ctx, "Failed to delete user", "error", err)
		return exceptions.FromDBError(err)
	}

	s.logAdminAction(ctx, logAdminActionOptions{
		RequestID:    opts.RequestID,
		Action:       adminActionDeleteUser,
		AdminID:      opts.AdminID,
		TargetUserID: &opts.PublicID,
		Details:      "user deleted",
	})

	logger.InfoContext(ctx, "Deleted user successfully")
	return nil
}
