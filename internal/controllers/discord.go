// Copyright (c) 2025 Akiro Labs
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/akiro-labs/backend/internal/controllers/params"
	"github.com/akiro-labs/backend/internal/services"
)

const discordLocation string = "discord"

func (c *Controllers) DiscordAuthorize(ctx *fiber.Ctx) error {
	requestID := getRequestID(ctx)
	logger := c.buildLogger(requestID, discordLocation, "DiscordAuthorize")
	logRequest(logger, ctx)

	user, serviceErr := getCurrentUser(ctx)
	if serviceErr != nil {
		return serviceErrorResponse(logger, ctx, serviceErr)
	}

	authDTO, serviceErr := c.services.GetDiscordAuthorizationURL(ctx.UserContext(), services.DiscordAuthorizationOptions{
		RequestID: requestID,
		UserID:    user.ID,
	})
	if serviceErr != nil {
		return serviceErrorResponse(logger, ctx, serviceErr)
	}

	logResponse(logger, ctx, fiber.StatusOK)
	return ctx.Status(fiber.StatusOK).JSON(&authDTO)
}

func (c *Controllers) DiscordCallback(ctx *fiber.Ctx) error {
	requestID := getRequestID(ctx)
	logger := c.buildLogger(requestID, discordLocation, "DiscordCallback")
	logRequest(logger, ctx)

	user, serviceErr := getCurrentUser(ctx)
	if serviceErr != nil {
		return serviceErrorResponse(logger, ctx, serviceErr)
	}

	queryParams := params.OAuthCallbackQueryParams{
		Code:  ctx.Query("code"),
		State: ctx.Query("state"),
	}
	if err := c.validate.StructCtx(ctx.UserContext(), &queryParams); err != nil {
		return validateQueryParamsErrorResponse(logger, ctx, err)
	}

	linkDTO, serviceErr := c.services.LinkDiscordAccount(ctx.UserContext(), services.LinkDiscordAccountOptions{
		RequestID: requestID,
		UserID:    user.ID,
		Code:      queryParams.Code,
		State:     queryParams.State,
	})
	if serviceErr != nil {
		return serviceErrorResponse(logger, ctx, serviceErr)
	}

	logResponse(logger, ctx, fiber.StatusOK)
	return ctx.Status(fiber.StatusOK).JSON(&linkDTO)
}

func (c *Controllers) DiscordUnlink(ctx *fiber.Ctx) error {
	requestID := getRequestID(ctx)
	logger := c.buildLogger(requestID, discordLocation, "DiscordUnlink")
	logRequest(logger, ctx)

	user, serviceErr := getCurrentUser(ctx)
	if serviceErr != nil {
		return serviceErrorResponse(logger, ctx, serviceErr)
	}

	userDTO, serviceErr := c.services.UnlinkDiscordAccount(ctx.UserContext(), services.UnlinkDiscordAccountOptions{
		RequestID: requestID,
		UserID:    user.ID,
	})
	if serviceErr != nil {
		return serviceErrorResponse(logger, ctx, serviceErr)
	}

	logResponse(logger, ctx, fiber.StatusOK)
	return ctx.Status(fiber.StatusOK).JSON(&userDTO)
}
