package dtos

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/akiro-labs/backend/internal/providers/database"
)

func TestMapUserToDTO(t *testing.T) {
	publicID := uuid.New()
	now := time.Now().UTC()

	testCases := []struct {
		name            string
		user            database.User
		expIsAdmin      bool
		expIsSuperadmin bool
		expDiscordID    *string
	}{
		{
			name: "Should map a regular user without a Discord link",
			user: database.User{
				ID:        7,
				PublicID:  publicID,
				Email:     "user@example.com",
				Username:  "user",
				Password:  "hashed",
				Role:      database.UserRoleUser,
				Status:    database.UserStatusActive,
				CreatedAt: pgtype.Timestamptz{Time: now, Valid: true},
			},
		},
		{
			name: "Should flag admins",
			user: database.User{
				PublicID: publicID,
				Role:     database.UserRoleAdmin,
				Status:   database.UserStatusActive,
			},
			expIsAdmin: true,
		},
		{
			name: "Should flag superadmins as admins too",
			user: database.User{
				PublicID: publicID,
				Role:     database.UserRoleSuperadmin,
				Status:   database.UserStatusActive,
			},
			expIsAdmin:      true,
			expIsSuperadmin: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dto := MapUserToDTO(&tc.user)

			if dto.ID != tc.user.PublicID {
				t.Fatalf("Actual: %s, Expected: %s", dto.ID, tc.user.PublicID)
			}
			if dto.IsAdmin != tc.expIsAdmin {
				t.Fatalf("Actual IsAdmin: %v, Expected: %v", dto.IsAdmin, tc.expIsAdmin)
			}
			if dto.IsSuperadmin != tc.expIsSuperadmin {
				t.Fatalf("Actual IsSuperadmin: %v, Expected: %v", dto.IsSuperadmin, tc.expIsSuperadmin)
			}
			if dto.DiscordID != nil {
				t.Fatal("Expected no Discord ID")
			}
			if dto.InternalID() != tc.user.ID {
				t.Fatalf("Actual: %d, Expected: %d", dto.InternalID(), tc.user.ID)
			}
			if dto.Password() != tc.user.Password {
				t.Fatal("Password was not carried over")
			}
		})
	}
}

func TestMapUserToDTODiscordFields(t *testing.T) {
	user := database.User{
		PublicID:         uuid.New(),
		Role:             database.UserRoleSubscriber,
		Status:           database.UserStatusActive,
		DiscordID:        pgtype.Text{String: "80351110224678912", Valid: true},
		DiscordUsername:  pgtype.Text{String: "nelly", Valid: true},
		DiscordAvatarUrl: pgtype.Text{},
	}

	dto := MapUserToDTO(&user)

	if dto.DiscordID == nil || *dto.DiscordID != "80351110224678912" {
		t.Fatal("Discord ID was not mapped")
	}
	if dto.DiscordUsername == nil || *dto.DiscordUsername != "nelly" {
		t.Fatal("Discord username was not mapped")
	}
	if dto.DiscordAvatarURL != nil {
		t.Fatal("Expected no avatar URL for an invalid column")
	}
}
