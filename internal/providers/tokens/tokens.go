// Copyright (c) 2025 Akiro Labs
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package tokens

import (
	"log/slog"

	"github.com/akiro-labs/backend/internal/utils"
)

const logLayer string = utils.ProvidersLogLayer + "/tokens"

type Tokens struct {
	logger        *slog.Logger
	backendDomain string
	secret        []byte
	accessTTL     int64
}

func NewTokens(
	logger *slog.Logger,
	backendDomain string,
	secret string,
	accessTTL int64,
) *Tokens {
	return &Tokens{
		logger:        logger.With(utils.BaseLayer, logLayer),
		backendDomain: backendDomain,
		secret:        []byte(secret),
		accessTTL:     accessTTL,
	}
}

func (t *Tokens) GetAccessTTL() int64 {
	return t.accessTTL
}
