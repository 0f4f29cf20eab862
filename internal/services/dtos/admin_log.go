package dtos

import (
	"time"

	"github.com/google/uuid"

	"github.com/akiro-labs/backend/internal/providers/database"
)

type AdminLogDTO struct {
	ID           int64      `json:"id"`
	Action       string     `json:"action"`
	AdminID      uuid.UUID  `json:"admin_id"`
	TargetUserID *uuid.UUID `json:"target_user_id"`
	Details      *string    `json:"details"`
	CreatedAt    time.Time  `json:"created_at"`
}

func MapAdminLogToDTO(log *database.AdminLog) AdminLogDTO {
	var targetUserID *uuid.UUID
	if log.TargetUserID.Valid {
		id := uuid.UUID(log.TargetUserID.Bytes)
		targetUserID = &id
	}

	return AdminLogDTO{
		ID:           log.ID,
		Action:       log.Action,
		AdminID:      log.AdminID,
		TargetUserID: targetUserID,
		Details:      textToPtr(log.Details),
		CreatedAt:    log.CreatedAt.Time,
	}
}
