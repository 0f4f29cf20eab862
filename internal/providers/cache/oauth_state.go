// Copyright (c) 2025 Akiro Labs
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package cache

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/akiro-labs/backend/internal/utils"
)

const (
	oauthStatePrefix   string = "oauth_state"
	oauthStateLocation string = "oauth_state"
)

func buildOAuthStateKey(state string, userID uuid.UUID) string {
	return fmt.Sprintf("%s:%s:user:%s", oauthStatePrefix, state, userID.String())
}

type AddOAuthStateOptions struct {
	RequestID string
	State     string
	UserID    uuid.UUID
	Provider  string
}

func (c *Cache) AddOAuthState(ctx context.Context, opts AddOAuthStateOptions) error {
	logger := utils.BuildLogger(c.logger, utils.LoggerOptions{
		Location:  oauthStateLocation,
		Method:    "AddOAuthState",
		RequestID: opts.RequestID,
	})
	logger.DebugContext(ctx, "Adding OAuth state...")
	return c.storage.Set(
		buildOAuthStateKey(opts.State, opts.UserID),
		[]byte(opts.Provider),
		c.oauthStateTTL,
	)
}

type VerifyOAuthStateOptions struct {
	RequestID string
	State     string
	UserID    uuid.UUID
	Provider  string
}

// VerifyOAuthState checks and consumes the state in one pass. A state is
// single use, so a replayed callback fails verification.
func (c *Cache) VerifyOAuthState(ctx context.Context, opts VerifyOAuthStateOptions) (bool, error) {
	logger := utils.BuildLogger(c.logger, utils.LoggerOptions{
		Location:  oauthStateLocation,
		Method:    "VerifyOAuthState",
		RequestID: opts.RequestID,
	})
	logger.DebugContext(ctx, "Verifying OAuth state...")

	key := buildOAuthStateKey(opts.State, opts.UserID)
	valByte, err := c.storage.Get(key)
	if err != nil {
		logger.ErrorContext(ctx, "Error verifying OAuth state", "error", err)
		return false, err
	}
	if valByte == nil {
		logger.DebugContext(ctx, "OAuth state not found")
		return false, nil
	}

	if err := c.storage.Delete(key); err != nil {
		logger.ErrorContext(ctx, "Failed to delete OAuth state", "error", err)
		return false, err
	}

	return string(valByte) == opts.Provider, nil
}
