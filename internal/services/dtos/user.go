package dtos

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/akiro-labs/backend/internal/providers/database"
)

type UserDTO struct {
	ID               uuid.UUID `json:"id"`
	Email            string    `json:"email"`
	Username         string    `json:"username"`
	Role             string    `json:"role"`
	Status           string    `json:"status"`
	DiscordID        *string   `json:"discord_id"`
	DiscordUsername  *string   `json:"discord_username"`
	DiscordAvatarURL *string   `json:"discord_avatar_url"`
	IsAdmin          bool      `json:"is_admin"`
	IsSuperadmin     bool      `json:"is_superadmin"`
	CreatedAt        time.Time `json:"created_at"`

	internalID int32
	password   string
}

func (u *UserDTO) InternalID() int32 {
	return u.internalID
}

func (u *UserDTO) Password() string {
	return u.password
}

func textToPtr(text pgtype.Text) *string {
	if !text.Valid {
		return nil
	}
	return &text.String
}

func MapUserToDTO(user *database.User) UserDTO {
	return UserDTO{
		ID:               user.PublicID,
		Email:            user.Email,
		Username:         user.Username,
		Role:             string(user.Role),
		Status:           string(user.Status),
		DiscordID:        textToPtr(user.DiscordID),
		DiscordUsername:  textToPtr(user.DiscordUsername),
		DiscordAvatarURL: textToPtr(user.DiscordAvatarUrl),
		IsAdmin:          user.Role == database.UserRoleAdmin || user.Role == database.UserRoleSuperadmin,
		IsSuperadmin:     user.Role == database.UserRoleSuperadmin,
		CreatedAt:        user.CreatedAt.Time,
		internalID:       user.ID,
		password:         user.Password,
	}
}
