// Copyright (c) 2025 Akiro Labs
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/akiro-labs/backend/internal/exceptions"
	"github.com/akiro-labs/backend/internal/providers/cache"
	"github.com/akiro-labs/backend/internal/providers/database"
	"github.com/akiro-labs/backend/internal/providers/oauth"
	"github.com/akiro-labs/backend/internal/services/dtos"
)

const (
	discordLocation string = "discord"

	discordProviderName string = "discord"
)

type DiscordAuthorizationOptions struct {
	RequestID string
	UserID    uuid.UUID
}

func (s *Services) GetDiscordAuthorizationURL(
	ctx context.Context,
	opts DiscordAuthorizationOptions,
) (dtos.DiscordAuthorizationDTO, *exceptions.ServiceError) {
	logger := s.buildLogger(opts.RequestID, discordLocation, "GetDiscordAuthorizationURL")
	logger.InfoContext(ctx, "Getting Discord authorization URL...")

	url, state, serviceErr := s.oauthProviders.GetDiscordAuthorizationURL(ctx, oauth.AuthorizationURLOptions{
		RequestID: opts.RequestID,
	})
	if serviceErr != nil {
		logger.WarnContext(ctx, "Failed to get authorization URL", "error", serviceErr)
		return dtos.DiscordAuthorizationDTO{}, serviceErr
	}

	if err := s.cache.AddOAuthState(ctx, cache.AddOAuthStateOptions{
		RequestID: opts.RequestID,
		State:     state,
		UserID:    opts.UserID,
		Provider:  discordProviderName,
	}); err != nil {
		logger.ErrorContext(ctx, "Failed to store OAuth state", "error", err)
		return dtos.DiscordAuthorizationDTO{}, exceptions.NewInternalServerError()
	}

	logger.InfoContext(ctx, "Got Discord authorization URL successfully")
	return dtos.DiscordAuthorizationDTO{AuthorizationURL: url}, nil
}

type LinkDiscordAccountOptions struct {
	RequestID string
	UserID    uuid.UUID
	Code      string
	State     string
}

func (s *Services) LinkDiscordAccount(
	ctx context.Context,
	opts LinkDiscordAccountOptions,
) (dtos.DiscordLinkDTO, *exceptions.ServiceError) {
	logger := s.buildLogger(opts.RequestID, discordLocation, "LinkDiscordAccount").With(
		"userId", opts.UserID,
	)
	logger.InfoContext(ctx, "Linking Discord account...")

	ok, err := s.cache.VerifyOAuthState(ctx, cache.VerifyOAuthStateOptions{
		RequestID: opts.RequestID,
		State:     opts.State,
		UserID:    opts.UserID,
		Provider:  discordProviderName,
	})
	if err != nil {
		logger.ErrorContext(ctx, "Failed to verify OAuth state", "error", err)
		return dtos.DiscordLinkDTO{}, exceptions.NewInternalServerError()
	}
	if !ok {
		logger.WarnContext(ctx, "Invalid OAuth state")
		return dtos.DiscordLinkDTO{}, exceptions.NewUnauthorizedError()
	}

	accessToken, serviceErr := s.oauthProviders.GetDiscordAccessToken(ctx, oauth.AccessTokenOptions{
		RequestID: opts.RequestID,
		Code:      opts.Code,
	})
	if serviceErr != nil {
		logger.WarnContext(ctx, "Failed to exchange authorization code", "error", serviceErr)
		return dtos.DiscordLinkDTO{}, serviceErr
	}

	userData, serviceErr := s.oauthProviders.GetDiscordUserData(ctx, oauth.UserDataOptions{
		RequestID: opts.RequestID,
		Token:     accessToken,
	})
	if serviceErr != nil {
		logger.WarnContext(ctx, "Failed to fetch Discord user data", "error", serviceErr)
		return dtos.DiscordLinkDTO{}, serviceErr
	}

	count, err := s.database.CountUsersByDiscordID(ctx, newValidText(userData.ID))
	if err != nil {
		logger.ErrorContext(ctx, "Failed to count users by Discord ID", "error", err)
		return dtos.DiscordLinkDTO{}, exceptions.FromDBError(err)
	}
	if count > 0 {
		logger.WarnContext(ctx, "Discord account already linked to another user")
		return dtos.DiscordLinkDTO{}, exceptions.NewConflictError("This Discord account is already linked to another user")
	}

	if s.discordBot.RequireGuildMembership() {
		member, err := s.discordBot.IsGuildMember(ctx, opts.RequestID, userData.ID)
		if err != nil {
			logger.ErrorContext(ctx, "Failed to check guild membership", "error", err)
			return dtos.DiscordLinkDTO{}, exceptions.NewInternalServerError()
		}
		if !member {
			logger.WarnContext(ctx, "Discord user is not a guild member")
			return dtos.DiscordLinkDTO{}, exceptions.NewForbiddenError()
		}
	}

	user, err := s.database.LinkUserDiscordAccount(ctx, database.LinkUserDiscordAccountParams{
		PublicID:         opts.UserID,
		DiscordID:        newValidText(userData.ID),
		DiscordUsername:  newValidText(userData.Username),
		DiscordAvatarUrl: newOptionalText(userData.AvatarURL),
	})
	if err != nil {
		logger.ErrorContext(ctx, "Failed to link Discord account", "error", err)
		return dtos.DiscordLinkDTO{}, exceptions.FromDBError(err)
	}

	// Grant the subscriber role right away when the user already has an
	// active subscription instead of waiting for the next sync.
	if _, err := s.database.FindActiveSubscriptionByUserID(ctx, user.ID); err == nil {
		if err := s.discordBot.AddSubscriberRole(ctx, opts.RequestID, userData.ID); err != nil {
			logger.ErrorContext(ctx, "Failed to grant subscriber role on link", "error", err)
		}
	} else if !isNotFound(err) {
		logger.ErrorContext(ctx, "Failed to look up active subscription", "error", err)
	}

	logger.InfoContext(ctx, "Linked Discord account successfully")
	userDTO := dtos.MapUserToDTO(&user)
	return dtos.DiscordLinkDTO{
		DiscordID:        userData.ID,
		DiscordUsername:  userData.Username,
		DiscordAvatarURL: userDTO.DiscordAvatarURL,
	}, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

type UnlinkDiscordAccountOptions struct {
	RequestID string
	UserID    uuid.UUID
}

func (s *Services) UnlinkDiscordAccount(
	ctx context.Context,
	opts UnlinkDiscordAccountOptions,
) (dtos.UserDTO, *exceptions.ServiceError) {
	logger := s.buildLogger(opts.RequestID, discordLocation, "UnlinkDiscordAccount").With(
		"userId", opts.UserID,
	)
	logger.InfoContext(ctx, "Unlinking Discord account...")

	user, err := s.database.FindUserByPublicID(ctx, opts.UserID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to find user", "error", err)
		return dtos.UserDTO{}, exceptions.FromDBError(err)
	}

	if !user.DiscordID.Valid {
		logger.WarnContext(ctx, "User has no linked Discord account")
		return dtos.UserDTO{}, exceptions.NewValidationError("No Discord account linked")
	}

	if err := s.discordBot.RemoveSubscriberRole(ctx, opts.RequestID, user.DiscordID.String); err != nil {
		logger.ErrorContext(ctx, "Failed to remove subscriber role on unlink", "error", err)
	}

	user, err = s.database.UnlinkUserDiscordAccount(ctx, opts.UserID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to unlink Discord account", "error", err)
		return dtos.UserDTO{}, exceptions.FromDBError(err)
	}

	logger.InfoContext(ctx, "Unlinked Discord account successfully")
	return dtos.MapUserToDTO(&user), nil
}
