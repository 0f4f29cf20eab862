// Copyright (c) 2025 Akiro Labs
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package blockchain

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/akiro-labs/backend/internal/exceptions"
)

const lamportsPerSol float64 = 1e9

type solanaTransactionMeta struct {
	Err          json.RawMessage `json:"err"`
	PreBalances  []int64         `json:"preBalances"`
	PostBalances []int64         `json:"postBalances"`
}

type solanaTransactionMessage struct {
	AccountKeys []string `json:"accountKeys"`
}

type solanaTransaction struct {
	Meta        *solanaTransactionMeta `json:"meta"`
	Transaction struct {
		Message solanaTransactionMessage `json:"message"`
	} `json:"transaction"`
}

func (v *Verifier) verifySolanaTransaction(
	ctx context.Context,
	logger *slog.Logger,
	txHash string,
) (float64, *exceptions.ServiceError) {
	result, err := v.rpcCall(ctx, v.rpcURLs[NetworkSolana], "getTransaction", []any{
		txHash,
		map[string]any{
			"encoding":                       "json",
			"commitment":                     "confirmed",
			"maxSupportedTransactionVersion": 0,
		},
	})
	if err != nil {
		logger.ErrorContext(ctx, "Failed to fetch transaction", "error", err)
		return 0, exceptions.NewValidationError("failed to verify transaction on-chain")
	}
	if len(result) == 0 || string(result) == "null" {
		logger.WarnContext(ctx, "Transaction not found", "txHash", txHash)
		return 0, exceptions.NewValidationError("transaction not found")
	}

	tx := solanaTransaction{}
	if err := json.Unmarshal(result, &tx); err != nil {
		logger.ErrorContext(ctx, "Failed to parse transaction", "error", err)
		return 0, exceptions.NewInternalServerError()
	}

	if tx.Meta == nil {
		logger.WarnContext(ctx, "Transaction has no metadata", "txHash", txHash)
		return 0, exceptions.NewValidationError("transaction is not confirmed yet")
	}
	if len(tx.Meta.Err) > 0 && string(tx.Meta.Err) != "null" {
		logger.WarnContext(ctx, "Transaction failed on-chain", "err", string(tx.Meta.Err))
		return 0, exceptions.NewValidationError("transaction failed on-chain")
	}

	walletIdx := -1
	for i, key := range tx.Transaction.Message.AccountKeys {
		if key == v.solanaWallet {
			walletIdx = i
			break
		}
	}
	if walletIdx < 0 {
		logger.WarnContext(ctx, "Payment wallet not found in transaction accounts")
		return 0, exceptions.NewValidationError("transaction was not sent to the payment wallet")
	}
	if walletIdx >= len(tx.Meta.PreBalances) || walletIdx >= len(tx.Meta.PostBalances) {
		logger.ErrorContext(ctx, "Balance arrays do not cover the wallet account")
		return 0, exceptions.NewInternalServerError()
	}

	lamports := tx.Meta.PostBalances[walletIdx] - tx.Meta.PreBalances[walletIdx]
	if lamports <= 0 {
		logger.WarnContext(ctx, "Payment wallet balance did not increase", "lamports", lamports)
		return 0, exceptions.NewValidationError("transaction did not transfer funds to the payment wallet")
	}

	return float64(lamports) / lamportsPerSol, nil
}
