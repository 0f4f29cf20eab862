// Copyright (c) 2025 Akiro Labs
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/akiro-labs/backend/internal/exceptions"
	"github.com/akiro-labs/backend/internal/services"
)

const middlewareLocation string = "middleware"

func (c *Controllers) AccessClaimsMiddleware(ctx *fiber.Ctx) error {
	requestID := getRequestID(ctx)
	logger := c.buildLogger(requestID, middlewareLocation, "AccessClaimsMiddleware")

	user, serviceErr := c.services.ProcessAuthHeader(ctx.UserContext(), services.ProcessAuthHeaderOptions{
		RequestID:  requestID,
		AuthHeader: ctx.Get("Authorization"),
	})
	if serviceErr != nil {
		return serviceErrorResponse(logger, ctx, serviceErr)
	}

	ctx.Locals(userLocalsKey, user)
	return ctx.Next()
}

func (c *Controllers) AdminMiddleware(ctx *fiber.Ctx) error {
	logger := c.buildLogger(getRequestID(ctx), middlewareLocation, "AdminMiddleware")

	user, serviceErr := getCurrentUser(ctx)
	if serviceErr != nil {
		return serviceErrorResponse(logger, ctx, serviceErr)
	}
	if !user.IsAdmin {
		return serviceErrorResponse(logger, ctx, exceptions.NewForbiddenError())
	}

	return ctx.Next()
}

func (c *Controllers) SuperadminMiddleware(ctx *fiber.Ctx) error {
	logger := c.buildLogger(getRequestID(ctx), middlewareLocation, "SuperadminMiddleware")

	user, serviceErr := getCurrentUser(ctx)
	if serviceErr != nil {
		return serviceErrorResponse(logger, ctx, serviceErr)
	}
	if !user.IsSuperadmin {
		return serviceErrorResponse(logger, ctx, exceptions.NewForbiddenError())
	}

	return ctx.Next()
}
