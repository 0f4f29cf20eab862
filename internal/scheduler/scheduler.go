// Copyright (c) 2025 Akiro Labs
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package scheduler

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/akiro-labs/backend/internal/services"
	"github.com/akiro-labs/backend/internal/utils"
)

const logLayer string = utils.SchedulerLogLayer

type Scheduler struct {
	logger   *slog.Logger
	services *services.Services
	cron     *cron.Cron
	cronSpec string
}

func NewScheduler(
	logger *slog.Logger,
	newServices *services.Services,
	cronSpec string,
) *Scheduler {
	return &Scheduler{
		logger:   logger.With(utils.BaseLayer, logLayer),
		services: newServices,
		cron:     cron.New(),
		cronSpec: cronSpec,
	}
}

func (s *Scheduler) runRoleSync(ctx context.Context) {
	requestID := uuid.NewString()
	logger := utils.BuildLogger(s.logger, utils.LoggerOptions{
		Location:  "scheduler",
		Method:    "runRoleSync",
		RequestID: requestID,
	})

	logger.InfoContext(ctx, "Running Discord role sync...")
	if serviceErr := s.services.SyncDiscordRoles(ctx, requestID); serviceErr != nil {
		logger.ErrorContext(ctx, "Discord role sync failed", "error", serviceErr)
		return
	}
	logger.InfoContext(ctx, "Finished Discord role sync")
}

// Start registers the role sync job and runs it once immediately so a
// restarted instance converges without waiting a full interval.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.cronSpec, func() {
		s.runRoleSync(ctx)
	}); err != nil {
		return err
	}

	go s.runRoleSync(ctx)
	s.cron.Start()
	return nil
}

func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}
