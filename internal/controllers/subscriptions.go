// Copyright (c) 2025 Akiro Labs
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/akiro-labs/backend/internal/controllers/bodies"
	"github.com/akiro-labs/backend/internal/services"
)

const subscriptionsLocation string = "subscriptions"

func (c *Controllers) ListPlans(ctx *fiber.Ctx) error {
	requestID := getRequestID(ctx)
	logger := c.buildLogger(requestID, subscriptionsLocation, "ListPlans")
	logRequest(logger, ctx)

	plansDTO := c.services.GetPlansAndNetworks(ctx.UserContext(), requestID)

	logResponse(logger, ctx, fiber.StatusOK)
	return ctx.Status(fiber.StatusOK).JSON(&plansDTO)
}

func (c *Controllers) ConfirmSubscription(ctx *fiber.Ctx) error {
	requestID := getRequestID(ctx)
	logger := c.buildLogger(requestID, subscriptionsLocation, "ConfirmSubscription")
	logRequest(logger, ctx)

	user, serviceErr := getCurrentUser(ctx)
	if serviceErr != nil {
		return serviceErrorResponse(logger, ctx, serviceErr)
	}

	body := new(bodies.ConfirmSubscriptionBody)
	if err := ctx.BodyParser(body); err != nil {
		return parseRequestErrorResponse(logger, ctx, err)
	}
	if err := c.validate.StructCtx(ctx.UserContext(), body); err != nil {
		return validateBodyErrorResponse(logger, ctx, err)
	}

	subscriptionDTO, serviceErr := c.services.ConfirmSubscription(ctx.UserContext(), services.ConfirmSubscriptionOptions{
		RequestID: requestID,
		UserID:    user.ID,
		Network:   body.Network,
		PlanCode:  body.PlanCode,
		TxHash:    body.TxHash,
	})
	if serviceErr != nil {
		return serviceErrorResponse(logger, ctx, serviceErr)
	}

	logResponse(logger, ctx, fiber.StatusCreated)
	return ctx.Status(fiber.StatusCreated).JSON(&subscriptionDTO)
}

func (c *Controllers) GetActiveSubscription(ctx *fiber.Ctx) error {
	requestID := getRequestID(ctx)
	logger := c.buildLogger(requestID, subscriptionsLocation, "GetActiveSubscription")
	logRequest(logger, ctx)

	user, serviceErr := getCurrentUser(ctx)
	if serviceErr != nil {
		return serviceErrorResponse(logger, ctx, serviceErr)
	}

	subscriptionDTO, serviceErr := c.services.GetActiveSubscription(ctx.UserContext(), services.GetActiveSubscriptionOptions{
		RequestID: requestID,
		UserID:    user.ID,
	})
	if serviceErr != nil {
		return serviceErrorResponse(logger, ctx, serviceErr)
	}

	logResponse(logger, ctx, fiber.StatusOK)
	return ctx.Status(fiber.StatusOK).JSON(&subscriptionDTO)
}

func (c *Controllers) ListSubscriptionHistory(ctx *fiber.Ctx) error {
	requestID := getRequestID(ctx)
	logger := c.buildLogger(requestID, subscriptionsLocation, "ListSubscriptionHistory")
	logRequest(logger, ctx)

	user, serviceErr := getCurrentUser(ctx)
	if serviceErr != nil {
		return serviceErrorResponse(logger, ctx, serviceErr)
	}

	subscriptionDTOs, serviceErr := c.services.ListUserSubscriptions(ctx.UserContext(), services.ListUserSubscriptionsOptions{
		RequestID: requestID,
		UserID:    user.ID,
	})
	if serviceErr != nil {
		return serviceErrorResponse(logger, ctx, serviceErr)
	}

	logResponse(logger, ctx, fiber.StatusOK)
	return ctx.Status(fiber.StatusOK).JSON(subscriptionDTOs)
}
