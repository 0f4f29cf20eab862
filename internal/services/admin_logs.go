// Copyright (c) 2025 Akiro Labs
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/akiro-labs/backend/internal/exceptions"
	"github.com/akiro-labs/backend/internal/providers/database"
	"github.com/akiro-labs/backend/internal/services/dtos"
)

const adminLogsLocation string = "admin_logs"

type logAdminActionOptions struct {
	RequestID    string
	Action       string
	AdminID      uuid.UUID
	TargetUserID *uuid.UUID
	Details      string
}

// logAdminAction records an audit entry. Failures are logged and swallowed
// so auditing never breaks the action it describes.
func (s *Services) logAdminAction(ctx context.Context, opts logAdminActionOptions) {
	logger := s.buildLogger(opts.RequestID, adminLogsLocation, "logAdminAction").With(
		"action", opts.Action,
	)

	targetUserID := pgtype.UUID{}
	if opts.TargetUserID != nil {
		targetUserID = pgtype.UUID{Bytes: *opts.TargetUserID, Valid: true}
	}

	if _, err := s.database.CreateAdminLog(ctx, database.CreateAdminLogParams{
		Action:       opts.Action,
		AdminID:      opts.AdminID,
		TargetUserID: targetUserID,
		Details:      newOptionalText(opts.Details),
	}); err != nil {
		logger.ErrorContext(ctx, "Failed to write audit log entry", "error", err)
		return
	}

	logger.DebugContext(ctx, "Wrote audit log entry")
}

type ListAdminLogsOptions struct {
	RequestID    string
	Action       string
	AdminID      *uuid.UUID
	TargetUserID *uuid.UUID
	Limit        int32
	Offset       int32
}

func (s *Services) ListAdminLogs(
	ctx context.Context,
	opts ListAdminLogsOptions,
) (dtos.PaginatedDTO[dtos.AdminLogDTO], *exceptions.ServiceError) {
	logger := s.buildLogger(opts.RequestID, adminLogsLocation, "ListAdminLogs")
	logger.InfoContext(ctx, "Listing audit log entries...")

	adminID := pgtype.UUID{}
	if opts.AdminID != nil {
		adminID = pgtype.UUID{Bytes: *opts.AdminID, Valid: true}
	}

	targetUserID := pgtype.UUID{}
	if opts.TargetUserID != nil {
		targetUserID = pgtype.UUID{Bytes: *opts.TargetUserID, Valid: true}
	}

	action := newOptionalText(opts.Action)
	total, err := s.database.CountAdminLogs(ctx, database.CountAdminLogsParams{
		Action:       action,
		AdminID:      adminID,
		TargetUserID: targetUserID,
	})
	if err != nil {
		logger.ErrorContext(ctx, "Failed to count audit log entries", "error", err)
		return dtos.PaginatedDTO[dtos.AdminLogDTO]{}, exceptions.FromDBError(err)
	}

	logs, err := s.database.FindPaginatedAdminLogs(ctx, database.FindPaginatedAdminLogsParams{
		Action:       action,
		AdminID:      adminID,
		TargetUserID: targetUserID,
		Limit:        opts.Limit,
		Offset:       opts.Offset,
	})
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list audit log entries", "error", err)
		return dtos.PaginatedDTO[dtos.AdminLogDTO]{}, exceptions.FromDBError(err)
	}

	logDTOs := make([]dtos.AdminLogDTO, 0, len(logs))
	for i := range logs {
		logDTOs = append(logDTOs, dtos.MapAdminLogToDTO(&logs[i]))
	}

	return dtos.NewPaginatedDTO(total, logDTOs), nil
}
