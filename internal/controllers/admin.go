// Copyright (c) 2025 Akiro Labs
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/akiro-labs/backend/internal/controllers/params"
	"github.com/akiro-labs/backend/internal/exceptions"
	"github.com/akiro-labs/backend/internal/services"
	"github.com/akiro-labs/backend/internal/services/dtos"
)

const adminLocation string = "admin"

func (c *Controllers) parseUserURLParams(
	ctx *fiber.Ctx,
) (uuid.UUID, error, bool) {
	urlParams := params.UserURLParams{UserID: ctx.Params("userID")}
	logger := c.buildLogger(getRequestID(ctx), adminLocation, "parseUserURLParams")

	if err := c.validate.StructCtx(ctx.UserContext(), &urlParams); err != nil {
		return uuid.UUID{}, validateURLParamsErrorResponse(logger, ctx, err), false
	}

	userID, err := uuid.Parse(urlParams.UserID)
	if err != nil {
		return uuid.UUID{}, validateURLParamsErrorResponse(logger, ctx, err), false
	}

	return userID, nil, true
}

func (c *Controllers) AdminListUsers(ctx *fiber.Ctx) error {
	requestID := getRequestID(ctx)
	logger := c.buildLogger(requestID, adminLocation, "AdminListUsers")
	logRequest(logger, ctx)

	userDTOs, serviceErr := c.services.ListUsers(ctx.UserContext(), services.ListUsersOptions{
		RequestID: requestID,
	})
	if serviceErr != nil {
		return serviceErrorResponse(logger, ctx, serviceErr)
	}

	logResponse(logger, ctx, fiber.StatusOK)
	return ctx.Status(fiber.StatusOK).JSON(userDTOs)
}

func (c *Controllers) AdminGetUser(ctx *fiber.Ctx) error {
	requestID := getRequestID(ctx)
	logger := c.buildLogger(requestID, adminLocation, "AdminGetUser")
	logRequest(logger, ctx)

	userID, errRes, ok := c.parseUserURLParams(ctx)
	if !ok {
		return errRes
	}

	userDTO, serviceErr := c.services.GetUserByPublicID(ctx.UserContext(), services.GetUserByPublicIDOptions{
		RequestID: requestID,
		PublicID:  userID,
	})
	if serviceErr != nil {
		return serviceErrorResponse(logger, ctx, serviceErr)
	}

	logResponse(logger, ctx, fiber.StatusOK)
	return ctx.Status(fiber.StatusOK).JSON(&userDTO)
}

func (c *Controllers) adminUserAction(
	ctx *fiber.Ctx,
	method string,
	action func(opts services.AdminUserActionOptions) (dtos.UserDTO, *exceptions.ServiceError),
) error {
	requestID := getRequestID(ctx)
	logger := c.buildLogger(requestID, adminLocation, method)
	logRequest(logger, ctx)

	admin, serviceErr := getCurrentUser(ctx)
	if serviceErr != nil {
		return serviceErrorResponse(logger, ctx, serviceErr)
	}

	userID, errRes, ok := c.parseUserURLParams(ctx)
	if !ok {
		return errRes
	}

	userDTO, serviceErr := action(services.AdminUserActionOptions{
		RequestID: requestID,
		AdminID:   admin.ID,
		PublicID:  userID,
	})
	if serviceErr != nil {
		return serviceErrorResponse(logger, ctx, serviceErr)
	}

	logResponse(logger, ctx, fiber.StatusOK)
	return ctx.Status(fiber.StatusOK).JSON(&userDTO)
}

func (c *Controllers) AdminBanUser(ctx *fiber.Ctx) error {
	return c.adminUserAction(ctx, "AdminBanUser", func(opts services.AdminUserActionOptions) (dtos.UserDTO, *exceptions.ServiceError) {
		return c.services.BanUser(ctx.UserContext(), opts)
	})
}

func (c *Controllers) AdminUnbanUser(ctx *fiber.Ctx) error {
	return c.adminUserAction(ctx, "AdminUnbanUser", func(opts services.AdminUserActionOptions) (dtos.UserDTO, *exceptions.ServiceError) {
		return c.services.UnbanUser(ctx.UserContext(), opts)
	})
}

func (c *Controllers) AdminMakeUserAdmin(ctx *fiber.Ctx) error {
	return c.adminUserAction(ctx, "AdminMakeUserAdmin", func(opts services.AdminUserActionOptions) (dtos.UserDTO, *exceptions.ServiceError) {
		return c.services.MakeUserAdmin(ctx.UserContext(), opts)
	})
}

func (c *Controllers) AdminDeleteUser(ctx *fiber.Ctx) error {
	requestID := getRequestID(ctx)
	logger := c.buildLogger(requestID, adminLocation, "AdminDeleteUser")
	logRequest(logger, ctx)

	admin, serviceErr := getCurrentUser(ctx)
	if serviceErr != nil {
		return serviceErrorResponse(logger, ctx, serviceErr)
	}

	userID, errRes, ok := c.parseUserURLParams(ctx)
	if !ok {
		return errRes
	}

	if serviceErr := c.services.DeleteUser(ctx.UserContext(), services.AdminUserActionOptions{
		RequestID: requestID,
		AdminID:   admin.ID,
		PublicID:  userID,
	}); serviceErr != nil {
		return serviceErrorResponse(logger, ctx, serviceErr)
	}

	logResponse(logger, ctx, fiber.StatusNoContent)
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *Controllers) AdminListLogs(ctx *fiber.Ctx) error {
	requestID := getRequestID(ctx)
	logger := c.buildLogger(requestID, adminLocation, "AdminListLogs")
	logRequest(logger, ctx)

	queryParams := params.ListAdminLogsQueryParams{
		PaginationQueryParams: params.PaginationQueryParams{
			Limit:  ctx.QueryInt("limit", 20),
			Offset: ctx.QueryInt("offset", 0),
		},
		Action:       ctx.Query("action"),
		AdminID:      ctx.Query("admin_id"),
		TargetUserID: ctx.Query("target_user_id"),
	}
	if err := c.validate.StructCtx(ctx.UserContext(), &queryParams); err != nil {
		return validateQueryParamsErrorResponse(logger, ctx, err)
	}

	opts := services.ListAdminLogsOptions{
		RequestID: requestID,
		Action:    queryParams.Action,
		Limit:     int32(queryParams.Limit),
		Offset:    int32(queryParams.Offset),
	}
	if queryParams.AdminID != "" {
		adminID, err := uuid.Parse(queryParams.AdminID)
		if err != nil {
			return validateQueryParamsErrorResponse(logger, ctx, err)
		}
		opts.AdminID = &adminID
	}
	if queryParams.TargetUserID != "" {
		targetUserID, err := uuid.Parse(queryParams.TargetUserID)
		if err != nil {
			return validateQueryParamsErrorResponse(logger, ctx, err)
		}
		opts.TargetUserID = &targetUserID
	}

	logsDTO, serviceErr := c.services.ListAdminLogs(ctx.UserContext(), opts)
	if serviceErr != nil {
		return serviceErrorResponse(logger, ctx, serviceErr)
	}

	logResponse(logger, ctx, fiber.StatusOK)
	return ctx.Status(fiber.StatusOK).JSON(&logsDTO)
}
