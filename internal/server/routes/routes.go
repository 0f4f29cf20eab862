// Copyright (c) 2025 Akiro Labs
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/akiro-labs/backend/internal/controllers"
)

type Routes struct {
	controllers    *controllers.Controllers
	authLimiter    fiber.Handler
	discordLimiter fiber.Handler
	adminLimiter   fiber.Handler
}

func NewRoutes(
	ctrls *controllers.Controllers,
	authLimiter,
	discordLimiter,
	adminLimiter fiber.Handler,
) *Routes {
	return &Routes{
		controllers:    ctrls,
		authLimiter:    authLimiter,
		discordLimiter: discordLimiter,
		adminLimiter:   adminLimiter,
	}
}
