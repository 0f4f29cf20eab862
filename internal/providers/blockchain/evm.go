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
	"math/big"
	"strings"

	"github.com/akiro-labs/backend/internal/exceptions"
	"github.com/akiro-labs/backend/internal/utils"
)

const (
	evmReceiptStatusSuccess string = "0x1"

	weiPerEther float64 = 1e18
)

type evmTransaction struct {
	To    string `json:"to"`
	Value string `json:"value"`
}

type evmReceipt struct {
	Status string `json:"status"`
}

func parseHexWei(value string) (*big.Int, bool) {
	return new(big.Int).SetString(strings.TrimPrefix(value, "0x"), 16)
}

func weiToEther(wei *big.Int) float64 {
	ether, _ := new(big.Float).Quo(
		new(big.Float).SetInt(wei),
		big.NewFloat(weiPerEther),
	).Float64()
	return ether
}

func (v *Verifier) verifyEVMTransaction(
	ctx context.Context,
	logger *slog.Logger,
	network Network,
	txHash string,
) (float64, *exceptions.ServiceError) {
	url := v.rpcURLs[network]

	result, err := v.rpcCall(ctx, url, "eth_getTransactionByHash", []any{txHash})
	if err != nil {
		logger.ErrorContext(ctx, "Failed to fetch transaction", "error", err)
		return 0, exceptions.NewValidationError("failed to verify transaction on-chain")
	}
	if len(result) == 0 || string(result) == "null" {
		logger.WarnContext(ctx, "Transaction not found", "txHash", txHash)
		return 0, exceptions.NewValidationError("transaction not found")
	}

	tx := evmTransaction{}
	if err := json.Unmarshal(result, &tx); err != nil {
		logger.ErrorContext(ctx, "Failed to parse transaction", "error", err)
		return 0, exceptions.NewInternalServerError()
	}

	if utils.Lowered(tx.To) != utils.Lowered(v.evmWallet) {
		logger.WarnContext(ctx, "Transaction recipient mismatch", "to", tx.To)
		return 0, exceptions.NewValidationError("transaction was not sent to the payment wallet")
	}

	wei, ok := parseHexWei(tx.Value)
	if !ok {
		logger.ErrorContext(ctx, "Failed to parse transaction value", "value", tx.Value)
		return 0, exceptions.NewInternalServerError()
	}

	result, err = v.rpcCall(ctx, url, "eth_getTransactionReceipt", []any{txHash})
	if err != nil {
		logger.ErrorContext(ctx, "Failed to fetch transaction receipt", "error", err)
		return 0, exceptions.NewValidationError("failed to verify transaction on-chain")
	}
	if len(result) == 0 || string(result) == "null" {
		logger.WarnContext(ctx, "Transaction receipt not found", "txHash", txHash)
		return 0, exceptions.NewValidationError("transaction is not confirmed yet")
	}

	receipt := evmReceipt{}
	if err := json.Unmarshal(result, &receipt); err != nil {
		logger.ErrorContext(ctx, "Failed to parse transaction receipt", "error", err)
		return 0, exceptions.NewInternalServerError()
	}
	if receipt.Status != evmReceiptStatusSuccess {
		logger.WarnContext(ctx, "Transaction failed on-chain", "status", receipt.Status)
		return 0, exceptions.NewValidationError("transaction failed on-chain")
	}

	return weiToEther(wei), nil
}
