package dtos

import (
	"time"

	"github.com/google/uuid"

	"github.com/akiro-labs/backend/internal/providers/database"
)

type SubscriptionDTO struct {
	ID        uuid.UUID `json:"id"`
	PlanCode  string    `json:"plan_code"`
	Network   string    `json:"network"`
	TxHash    string    `json:"tx_hash"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

func MapSubscriptionToDTO(subscription *database.Subscription) SubscriptionDTO {
	return SubscriptionDTO{
		ID:        subscription.PublicID,
		PlanCode:  subscription.PlanCode,
		Network:   subscription.Network,
		TxHash:    subscription.TxHash,
		Amount:    subscription.Amount,
		Status:    string(subscription.Status),
		ExpiresAt: subscription.ExpiresAt.Time,
		CreatedAt: subscription.CreatedAt.Time,
	}
}
