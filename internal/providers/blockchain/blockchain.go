// Copyright (c) 2025 Akiro Labs
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package blockchain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/akiro-labs/backend/internal/config"
	"github.com/akiro-labs/backend/internal/exceptions"
	"github.com/akiro-labs/backend/internal/utils"
)

const logLayer string = utils.ProvidersLogLayer + "/blockchain"

type Network = string

const (
	NetworkEthereum Network = "ethereum"
	NetworkPolygon  Network = "polygon"
	NetworkArbitrum Network = "arbitrum"
	NetworkOptimism Network = "optimism"
	NetworkSolana   Network = "solana"
)

// Networks lists every supported payment network.
var Networks = []Network{
	NetworkEthereum,
	NetworkPolygon,
	NetworkArbitrum,
	NetworkOptimism,
	NetworkSolana,
}

// Verifier checks on-chain payment transactions against the configured
// receiving wallets. EVM networks share one wallet address, Solana has
// its own.
type Verifier struct {
	logger       *slog.Logger
	httpClient   *http.Client
	rpcURLs      map[Network]string
	evmWallet    string
	solanaWallet string
	strict       bool
}

func NewVerifier(logger *slog.Logger, cfg config.PaymentsConfig) *Verifier {
	return &Verifier{
		logger:     logger.With(utils.BaseLayer, logLayer),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		rpcURLs: map[Network]string{
			NetworkEthereum: cfg.EthereumRPCURL(),
			NetworkPolygon:  cfg.PolygonRPCURL(),
			NetworkArbitrum: cfg.ArbitrumRPCURL(),
			NetworkOptimism: cfg.OptimismRPCURL(),
			NetworkSolana:   cfg.SolanaRPCURL(),
		},
		evmWallet:    cfg.EVMWallet(),
		solanaWallet: cfg.SolanaWallet(),
		strict:       cfg.Strict(),
	}
}

func (v *Verifier) Strict() bool {
	return v.strict
}

func (v *Verifier) SupportedNetwork(network Network) bool {
	_, ok := v.rpcURLs[network]
	return ok
}

// Configured reports whether the network has both an RPC endpoint and a
// receiving wallet set up.
func (v *Verifier) Configured(network Network) bool {
	if v.rpcURLs[network] == "" {
		return false
	}
	if network == NetworkSolana {
		return v.solanaWallet != ""
	}
	return v.evmWallet != ""
}

// Wallet returns the receiving wallet address for the network.
func (v *Verifier) Wallet(network Network) string {
	if network == NetworkSolana {
		return v.solanaWallet
	}
	return v.evmWallet
}

type VerifyTransactionOptions struct {
	RequestID string
	Network   Network
	TxHash    string
}

// VerifyTransaction confirms the transaction succeeded on-chain and paid the
// configured wallet. It returns the received amount in the network's native
// unit (ETH for EVM chains, SOL for Solana).
func (v *Verifier) VerifyTransaction(
	ctx context.Context,
	opts VerifyTransactionOptions,
) (float64, *exceptions.ServiceError) {
	logger := utils.BuildLogger(v.logger, utils.LoggerOptions{
		Location:  "blockchain",
		Method:    "VerifyTransaction",
		RequestID: opts.RequestID,
	})
	logger.InfoContext(ctx, "Verifying transaction...", "network", opts.Network)

	switch opts.Network {
	case NetworkEthereum, NetworkPolygon, NetworkArbitrum, NetworkOptimism:
		return v.verifyEVMTransaction(ctx, logger, opts.Network, opts.TxHash)
	case NetworkSolana:
		return v.verifySolanaTransaction(ctx, logger, opts.TxHash)
	default:
		logger.WarnContext(ctx, "Unsupported network", "network", opts.Network)
		return 0, exceptions.NewValidationError("unsupported payment network")
	}
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

func (v *Verifier) rpcCall(ctx context.Context, url, method string, params []any) (json.RawMessage, error) {
	payload, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := v.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = res.Body.Close()
	}()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rpc endpoint responded with status %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	rpcRes := rpcResponse{}
	if err := json.Unmarshal(body, &rpcRes); err != nil {
		return nil, err
	}
	if rpcRes.Error != nil {
		return nil, fmt.Errorf("rpc error %d: %s", rpcRes.Error.Code, rpcRes.Error.Message)
	}

	return rpcRes.Result, nil
}
