// Copyright (c) 2025 Akiro Labs
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package controllers

import (
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/akiro-labs/backend/internal/services"
)

type Controllers struct {
	logger         *slog.Logger
	services       *services.Services
	validate       *validator.Validate
	frontendDomain string
	backendDomain  string
}

func NewControllers(
	logger *slog.Logger,
	services *services.Services,
	validate *validator.Validate,
	frontendDomain,
	backendDomain string,
) *Controllers {
	return &Controllers{
		logger:         logger,
		services:       services,
		validate:       validate,
		frontendDomain: frontendDomain,
		backendDomain:  backendDomain,
	}
}
