// Copyright (c) 2025 Akiro Labs
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/akiro-labs/backend/internal/exceptions"
	"github.com/akiro-labs/backend/internal/providers/blockchain"
	"github.com/akiro-labs/backend/internal/providers/database"
	"github.com/akiro-labs/backend/internal/services/dtos"
	"github.com/akiro-labs/backend/internal/utils"
)

const subscriptionsLocation string = "subscriptions"

const adminActionSubscriptionPaid string = "subscription_paid"

type Plan struct {
	Code     string
	Title    string
	Days     int
	PriceUSD float64
}

// SubscriptionPlans is the fixed plan catalog, priced in USD.
var SubscriptionPlans = []Plan{
	{Code: "month", Title: "1 month", Days: 30, PriceUSD: 15.0},
	{Code: "quarter", Title: "3 months", Days: 90, PriceUSD: 35.0},
	{Code: "year", Title: "12 months", Days: 365, PriceUSD: 120.0},
}

func findPlan(code string) (Plan, bool) {
	for _, plan := range SubscriptionPlans {
		if plan.Code == code {
			return plan, true
		}
	}
	return Plan{}, false
}

func (s *Services) GetPlansAndNetworks(
	ctx context.Context,
	requestID string,
) dtos.PlansAndNetworksDTO {
	logger := s.buildLogger(requestID, subscriptionsLocation, "GetPlansAndNetworks")
	logger.InfoContext(ctx, "Getting plans and networks...")

	plans := make([]dtos.PlanDTO, 0, len(SubscriptionPlans))
	for _, plan := range SubscriptionPlans {
		plans = append(plans, dtos.PlanDTO{
			Code:     plan.Code,
			Title:    plan.Title,
			Days:     plan.Days,
			PriceUSD: plan.PriceUSD,
		})
	}

	networks := make([]dtos.NetworkDTO, 0, len(blockchain.Networks))
	for _, network := range blockchain.Networks {
		networks = append(networks, dtos.NetworkDTO{
			Code:   network,
			Wallet: s.verifier.Wallet(network),
		})
	}

	return dtos.PlansAndNetworksDTO{Plans: plans, Networks: networks}
}

type ConfirmSubscriptionOptions struct {
	RequestID string
	UserID    uuid.UUID
	Network   string
	PlanCode  string
	TxHash    string
}

func checkTxHashReuse(count int64) *exceptions.ServiceError {
	if count > 0 {
		return exceptions.NewConflictError("This transaction hash has already been used")
	}
	return nil
}

// verifyPaidAmount resolves the paid amount for a confirmation request:
// on-chain verification when the network is configured, the plan price as an
// unverified fallback when it is not (strict mode rejects instead). The
// resolved amount must cover the plan price.
func (s *Services) verifyPaidAmount(
	ctx context.Context,
	requestID,
	network,
	txHash string,
	plan Plan,
) (float64, *exceptions.ServiceError) {
	logger := s.buildLogger(requestID, subscriptionsLocation, "verifyPaidAmount").With(
		"network", network,
		"planCode", plan.Code,
	)

	var paidAmount float64
	if s.verifier.Configured(network) {
		var serviceErr *exceptions.ServiceError
		paidAmount, serviceErr = s.verifier.VerifyTransaction(ctx, blockchain.VerifyTransactionOptions{
			RequestID: requestID,
			Network:   network,
			TxHash:    txHash,
		})
		if serviceErr != nil {
			logger.WarnContext(ctx, "Transaction verification failed", "error", serviceErr)
			return 0, serviceErr
		}
	} else {
		if s.verifier.Strict() {
			logger.ErrorContext(ctx, "Payment verification is not configured for network")
			return 0, exceptions.NewValidationError(
				fmt.Sprintf("Payment verification is not configured for network: %s", network),
			)
		}
		// Unverified fallback for deployments without RPC access.
		logger.WarnContext(ctx, "RPC is not configured, falling back to unverified payment")
		paidAmount = plan.PriceUSD
	}

	if paidAmount < plan.PriceUSD {
		logger.WarnContext(ctx, "Insufficient payment amount", "paidAmount", paidAmount)
		return 0, exceptions.NewValidationError("Insufficient payment amount")
	}

	return paidAmount, nil
}

func (s *Services) ConfirmSubscription(
	ctx context.Context,
	opts ConfirmSubscriptionOptions,
) (dtos.SubscriptionDTO, *exceptions.ServiceError) {
	logger := s.buildLogger(opts.RequestID, subscriptionsLocation, "ConfirmSubscription").With(
		"userId", opts.UserID,
		"network", opts.Network,
		"planCode", opts.PlanCode,
	)
	logger.InfoContext(ctx, "Confirming subscription...")

	plan, ok := findPlan(opts.PlanCode)
	if !ok {
		logger.WarnContext(ctx, "Invalid plan code")
		return dtos.SubscriptionDTO{}, exceptions.NewValidationError(
			fmt.Sprintf("Invalid plan code: %s", opts.PlanCode),
		)
	}

	network := utils.Lowered(opts.Network)
	if !s.verifier.SupportedNetwork(network) {
		logger.WarnContext(ctx, "Unsupported network")
		return dtos.SubscriptionDTO{}, exceptions.NewValidationError(
			fmt.Sprintf("Unsupported network: %s", opts.Network),
		)
	}

	user, err := s.database.FindUserByPublicID(ctx, opts.UserID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to find user", "error", err)
		return dtos.SubscriptionDTO{}, exceptions.FromDBError(err)
	}

	count, err := s.database.CountSubscriptionsByTxHash(ctx, opts.TxHash)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to count subscriptions by tx hash", "error", err)
		return dtos.SubscriptionDTO{}, exceptions.FromDBError(err)
	}
	if reuseErr := checkTxHashReuse(count); reuseErr != nil {
		logger.WarnContext(ctx, "Transaction hash already used")
		return dtos.SubscriptionDTO{}, reuseErr
	}

	paidAmount, verifyErr := s.verifyPaidAmount(ctx, opts.RequestID, network, opts.TxHash, plan)
	if verifyErr != nil {
		return dtos.SubscriptionDTO{}, verifyErr
	}

	publicID, err := uuid.NewRandom()
	if err != nil {
		logger.ErrorContext(ctx, "Failed to generate public ID", "error", err)
		return dtos.SubscriptionDTO{}, exceptions.NewInternalServerError()
	}

	var serviceErr *exceptions.ServiceError
	qrs, txn, err := s.database.BeginTx(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to start transaction", "error", err)
		return dtos.SubscriptionDTO{}, exceptions.FromDBError(err)
	}
	defer func() {
		logger.DebugContext(ctx, "Finalizing transaction")
		s.database.FinalizeTx(ctx, txn, err, serviceErr)
	}()

	subscription, err := qrs.CreateSubscription(ctx, database.CreateSubscriptionParams{
		PublicID:  publicID,
		UserID:    user.ID,
		Network:   network,
		TxHash:    opts.TxHash,
		Amount:    paidAmount,
		PlanCode:  plan.Code,
		Status:    database.SubscriptionStatusActive,
		ExpiresAt: pgtype.Timestamptz{
			Time:  time.Now().UTC().Add(utils.ToDaysDuration(int64(plan.Days))),
			Valid: true,
		},
	})
	if err != nil {
		logger.ErrorContext(ctx, "Failed to create subscription", "error", err)
		serviceErr = exceptions.FromDBError(err)
		return dtos.SubscriptionDTO{}, serviceErr
	}

	// Admins and superadmins keep their elevated role.
	if user.Role == database.UserRoleUser {
		if err = qrs.UpdateUserRoleByID(ctx, database.UpdateUserRoleByIDParams{
			ID:   user.ID,
			Role: database.UserRoleSubscriber,
		}); err != nil {
			logger.ErrorContext(ctx, "Failed to promote user to subscriber", "error", err)
			serviceErr = exceptions.FromDBError(err)
			return dtos.SubscriptionDTO{}, serviceErr
		}
	}

	if user.DiscordID.Valid {
		if err := s.discordBot.AddSubscriberRole(ctx, opts.RequestID, user.DiscordID.String); err != nil {
			logger.ErrorContext(ctx, "Failed to grant Discord role on payment", "error", err)
		}
	}

	s.logAdminAction(ctx, logAdminActionOptions{
		RequestID:    opts.RequestID,
		Action:       adminActionSubscriptionPaid,
		AdminID:      opts.UserID,
		TargetUserID: &opts.UserID,
		Details: fmt.Sprintf(
			"plan=%s, network=%s, tx=%s...",
			plan.Code,
			network,
			utils.Truncated(opts.TxHash, 10),
		),
	})

	logger.InfoContext(ctx, "Confirmed subscription successfully", "subscriptionId", publicID)
	return dtos.MapSubscriptionToDTO(&subscription), nil
}

type GetActiveSubscriptionOptions struct {
	RequestID string
	UserID    uuid.UUID
}

func (s *Services) GetActiveSubscription(
	ctx context.Context,
	opts GetActiveSubscriptionOptions,
) (dtos.SubscriptionDTO, *exceptions.ServiceError) {
	logger := s.buildLogger(opts.RequestID, subscriptionsLocation, "GetActiveSubscription").With(
		"userId", opts.UserID,
	)
	logger.InfoContext(ctx, "Getting active subscription...")

	user, err := s.database.FindUserByPublicID(ctx, opts.UserID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to find user", "error", err)
		return dtos.SubscriptionDTO{}, exceptions.FromDBError(err)
	}

	subscription, err := s.database.FindActiveSubscriptionByUserID(ctx, user.ID)
	if err != nil {
		serviceErr := exceptions.FromDBError(err)
		if serviceErr.Code == exceptions.CodeNotFound {
			logger.InfoContext(ctx, "No active subscription")
			return dtos.SubscriptionDTO{}, serviceErr
		}

		logger.ErrorContext(ctx, "Failed to find active subscription", "error", err)
		return dtos.SubscriptionDTO{}, serviceErr
	}

	return dtos.MapSubscriptionToDTO(&subscription), nil
}

type ListUserSubscriptionsOptions struct {
	RequestID string
	UserID    uuid.UUID
}

func (s *Services) ListUserSubscriptions(
	ctx context.Context,
	opts ListUserSubscriptionsOptions,
) ([]dtos.SubscriptionDTO, *exceptions.ServiceError) {
	logger := s.buildLogger(opts.RequestID, subscriptionsLocation, "ListUserSubscriptions").With(
		"userId", opts.UserID,
	)
	logger.InfoContext(ctx, "Listing user subscriptions...")

	user, err := s.database.FindUserByPublicID(ctx, opts.UserID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to find user", "error", err)
		return nil, exceptions.FromDBError(err)
	}

	subscriptions, err := s.database.FindSubscriptionsByUserID(ctx, user.ID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list subscriptions", "error", err)
		return nil, exceptions.FromDBError(err)
	}

	subscriptionDTOs := make([]dtos.SubscriptionDTO, 0, len(subscriptions))
	for i := range subscriptions {
		subscriptionDTOs = append(subscriptionDTOs, dtos.MapSubscriptionToDTO(&subscriptions[i]))
	}

	return subscriptionDTOs, nil
}
