// Copyright (c) 2025 Akiro Labs
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/akiro-labs/backend/internal/controllers/paths"
)

func (r *Routes) AuthRoutes(app *fiber.App) {
	router := v1PathRouter(app).Group(paths.AuthBase, r.authLimiter)

	router.Post(paths.AuthRegister, r.controllers.Register)
	router.Post(paths.AuthLogin, r.controllers.Login)
}
