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
	"github.com/akiro-labs/backend/internal/providers/tokens"
	"github.com/akiro-labs/backend/internal/services/dtos"
	"github.com/akiro-labs/backend/internal/utils"
)

const authLocation string = "auth"

type RegisterUserOptions struct {
	RequestID string
	Email     string
	Username  string
	Password  string
}

func (s *Services) RegisterUser(
	ctx context.Context,
	opts RegisterUserOptions,
) (dtos.UserDTO, *exceptions.ServiceError) {
	logger := s.buildLogger(opts.RequestID, authLocation, "RegisterUser")
	logger.InfoContext(ctx, "Registering user...")

	email := utils.Lowered(opts.Email)
	count, err := s.database.CountUsersByEmail(ctx, email)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to count users by email", "error", err)
		return dtos.UserDTO{}, exceptions.FromDBError(err)
	}
	if count > 0 {
		logger.WarnContext(ctx, "Email already in use")
		return dtos.UserDTO{}, exceptions.NewConflictError("Email already in use")
	}

	count, err = s.database.CountUsersByUsername(ctx, opts.Username)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to count users by username", "error", err)
		return dtos.UserDTO{}, exceptions.FromDBError(err)
	}
	if count > 0 {
		logger.WarnContext(ctx, "Username already taken")
		return dtos.UserDTO{}, exceptions.NewConflictError("Username already taken")
	}

	hashedPassword, err := utils.Argon2HashString(opts.Password)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to hash password", "error", err)
		return dtos.UserDTO{}, exceptions.NewInternalServerError()
	}

	publicID, err := uuid.NewRandom()
	if err != nil {
		logger.ErrorContext(ctx, "Failed to generate public ID", "error", err)
		return dtos.UserDTO{}, exceptions.NewInternalServerError()
	}

	user, err := s.database.CreateUser(ctx, database.CreateUserParams{
		PublicID: publicID,
		Email:    email,
		Username: opts.Username,
		Password: hashedPassword,
	})
	if err != nil {
		logger.ErrorContext(ctx, "Failed to create user", "error", err)
		return dtos.UserDTO{}, exceptions.FromDBError(err)
	}

	logger.InfoContext(ctx, "Registered user successfully", "userId", user.PublicID)
	return dtos.MapUserToDTO(&user), nil
}

type ProcessAuthHeaderOptions struct {
	RequestID  string
	AuthHeader string
}

// ProcessAuthHeader verifies the bearer token and loads the current user.
// Banned users are rejected even when their token is still valid.
func (s *Services) ProcessAuthHeader(
	ctx context.Context,
	opts ProcessAuthHeaderOptions,
) (dtos.UserDTO, *exceptions.ServiceError) {
	logger := s.buildLogger(opts.RequestID, authLocation, "ProcessAuthHeader")

	token, serviceErr := extractAuthHeaderToken(opts.AuthHeader)
	if serviceErr != nil {
		return dtos.UserDTO{}, serviceErr
	}

	claims, err := s.jwt.VerifyAccessToken(token)
	if err != nil {
		logger.WarnContext(ctx, "Failed to verify access token", "error", err)
		return dtos.UserDTO{}, exceptions.NewUnauthorizedError()
	}

	user, err := s.database.FindUserByPublicID(ctx, claims.UserID)
	if err != nil {
		serviceErr := exceptions.FromDBError(err)
		if serviceErr.Code == exceptions.CodeNotFound {
			logger.WarnContext(ctx, "Token user no longer exists", "userId", claims.UserID)
			return dtos.UserDTO{}, exceptions.NewUnauthorizedError()
		}

		logger.ErrorContext(ctx, "Failed to find user", "error", err)
		return dtos.UserDTO{}, serviceErr
	}

	if user.Status == database.UserStatusBanned {
		logger.WarnContext(ctx, "Banned user attempted access", "userId", user.PublicID)
		return dtos.UserDTO{}, exceptions.NewForbiddenError()
	}

	return dtos.MapUserToDTO(&user), nil
}

type LoginUserOptions struct {
	RequestID string
	Email     string
	Password  string
}

func (s *Services) LoginUser(
	ctx context.Context,
	opts LoginUserOptions,
) (dtos.AuthDTO, *exceptions.ServiceError) {
	logger := s.buildLogger(opts.RequestID, authLocation, "LoginUser")
	logger.InfoContext(ctx, "Logging in user...")

	user, err := s.database.FindUserByEmail(ctx, utils.Lowered(opts.Email))
	if err != nil {
		serviceErr := exceptions.FromDBError(err)
		if serviceErr.Code == exceptions.CodeNotFound {
			logger.WarnContext(ctx, "User not found")
			return dtos.AuthDTO{}, exceptions.NewUnauthorizedError()
		}

		logger.ErrorContext(ctx, "Failed to find user by email", "error", err)
		return dtos.AuthDTO{}, serviceErr
	}

	ok, err := utils.Argon2CompareHash(opts.Password, user.Password)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to compare password hash", "error", err)
		return dtos.AuthDTO{}, exceptions.NewInternalServerError()
	}
	if !ok {
		logger.WarnContext(ctx, "Invalid password")
		return dtos.AuthDTO{}, exceptions.NewUnauthorizedError()
	}

	if user.Status == database.UserStatusBanned {
		logger.WarnContext(ctx, "User is banned", "userId", user.PublicID)
		return dtos.AuthDTO{}, exceptions.NewForbiddenError()
	}

	accessToken, err := s.jwt.CreateAccessToken(tokens.AccessTokenOptions{
		PublicID: user.PublicID,
		Role:     string(user.Role),
	})
	if err != nil {
		logger.ErrorContext(ctx, "Failed to create access token", "error", err)
		return dtos.AuthDTO{}, exceptions.NewInternalServerError()
	}

	logger.InfoContext(ctx, "Logged in user successfully", "userId", user.PublicID)
	return dtos.NewAuthDTO(accessToken, s.jwt.GetAccessTTL(), dtos.MapUserToDTO(&user)), nil
}
