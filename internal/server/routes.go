// Copyright (c) 2025 Akiro Labs
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package server

func (s *FiberServer) RegisterFiberRoutes() {
	s.routes.HealthRoutes(s.App)
	s.routes.AuthRoutes(s.App)
	s.routes.UsersRoutes(s.App)
	s.routes.DiscordRoutes(s.App)
	s.routes.SubscriptionsRoutes(s.App)
	s.routes.AdminRoutes(s.App)
}
