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

func (r *Routes) AdminRoutes(app *fiber.App) {
	router := v1PathRouter(app).Group(
		paths.AdminBase,
		r.adminLimiter,
		r.controllers.AccessClaimsMiddleware,
		r.controllers.AdminMiddleware,
	)

	router.Get(paths.AdminUsers, r.controllers.AdminListUsers)
	router.Get(paths.AdminUserSingle, r.controllers.AdminGetUser)
	router.Post(paths.AdminUserBan, r.controllers.AdminBanUser)
	router.Post(paths.AdminUserUnban, r.controllers.AdminUnbanUser)
	router.Post(paths.AdminUserMakeAdmin, r.controllers.SuperadminMiddleware, r.controllers.AdminMakeUserAdmin)
	router.Delete(paths.AdminUserSingle, r.controllers.SuperadminMiddleware, r.controllers.AdminDeleteUser)

	router.Get(paths.AdminLogs, r.controllers.AdminListLogs)
}
