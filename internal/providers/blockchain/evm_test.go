// Copyright (c) 2025 Akiro Labs
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package blockchain

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/akiro-labs/backend/internal/exceptions"
)

const testEVMWallet string = "0xAbC1111111111111111111111111111111111111"

func newTestVerifier(rpcURL, evmWallet, solanaWallet string) *Verifier {
	return &Verifier{
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		httpClient: &http.Client{Timeout: 5 * time.Second},
		rpcURLs: map[Network]string{
			NetworkEthereum: rpcURL,
			NetworkPolygon:  rpcURL,
			NetworkArbitrum: rpcURL,
			NetworkOptimism: rpcURL,
			NetworkSolana:   rpcURL,
		},
		evmWallet:    evmWallet,
		solanaWallet: solanaWallet,
	}
}

func newEVMRPCServer(t *testing.T, txResult, receiptResult string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Error("Failed to read RPC request", err)
		}

		req := rpcRequest{}
		if err := json.Unmarshal(body, &req); err != nil {
			t.Error("Failed to parse RPC request", err)
		}

		w.Header().Set("Content-Type", "application/json")
		switch req.Method {
		case "eth_getTransactionByHash":
			_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":` + txResult + `}`))
		case "eth_getTransactionReceipt":
			_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":` + receiptResult + `}`))
		default:
			t.Errorf("Unexpected RPC method: %s", req.Method)
		}
	}))
}

func TestVerifyEVMTransaction(t *testing.T) {
	// 1.5 ETH in wei is 0x14d1120d7b160000
	testCases := []struct {
		name          string
		txResult      string
		receiptResult string
		expAmount     float64
		expCode       string
	}{
		{
			name:          "Should return the paid amount for a confirmed transfer",
			txResult:      `{"to":"` + testEVMWallet + `","value":"0x14d1120d7b160000"}`,
			receiptResult: `{"status":"0x1"}`,
			expAmount:     1.5,
		},
		{
			name:          "Should accept a recipient with different casing",
			txResult:      `{"to":"0xabc1111111111111111111111111111111111111","value":"0xde0b6b3a7640000"}`,
			receiptResult: `{"status":"0x1"}`,
			expAmount:     1.0,
		},
		{
			name:     "Should reject a missing transaction",
			txResult: `null`,
			expCode:  exceptions.CodeValidation,
		},
		{
			name:     "Should reject a transfer to another wallet",
			txResult: `{"to":"0x2222222222222222222222222222222222222222","value":"0xde0b6b3a7640000"}`,
			expCode:  exceptions.CodeValidation,
		},
		{
			name:          "Should reject an unconfirmed transaction",
			txResult:      `{"to":"` + testEVMWallet + `","value":"0xde0b6b3a7640000"}`,
			receiptResult: `null`,
			expCode:       exceptions.CodeValidation,
		},
		{
			name:          "Should reject a reverted transaction",
			txResult:      `{"to":"` + testEVMWallet + `","value":"0xde0b6b3a7640000"}`,
			receiptResult: `{"status":"0x0"}`,
			expCode:       exceptions.CodeValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := newEVMRPCServer(t, tc.txResult, tc.receiptResult)
			defer server.Close()

			verifier := newTestVerifier(server.URL, testEVMWallet, "")
			amount, serviceErr := verifier.VerifyTransaction(context.Background(), VerifyTransactionOptions{
				RequestID: "test-request",
				Network:   NetworkEthereum,
				TxHash:    "0xabc",
			})

			if tc.expCode != "" {
				if serviceErr == nil {
					t.Fatal("Expected a service error")
				}
				if serviceErr.Code != tc.expCode {
					t.Fatalf("Actual: %s, Expected: %s", serviceErr.Code, tc.expCode)
				}
				return
			}

			if serviceErr != nil {
				t.Fatal("Failed to verify transaction", serviceErr)
			}
			if amount != tc.expAmount {
				t.Fatalf("Actual: %f, Expected: %f", amount, tc.expAmount)
			}
		})
	}
}

func TestVerifyTransactionUnsupportedNetwork(t *testing.T) {
	verifier := newTestVerifier("http://localhost:1", testEVMWallet, "")

	_, serviceErr := verifier.VerifyTransaction(context.Background(), VerifyTransactionOptions{
		RequestID: "test-request",
		Network:   "dogecoin",
		TxHash:    "0xabc",
	})
	if serviceErr == nil {
		t.Fatal("Expected a service error")
	}
	if serviceErr.Code != exceptions.CodeValidation {
		t.Fatalf("Actual: %s, Expected: %s", serviceErr.Code, exceptions.CodeValidation)
	}
}

func TestParseHexWei(t *testing.T) {
	wei, ok := parseHexWei("0xde0b6b3a7640000")
	if !ok {
		t.Fatal("Failed to parse hex value")
	}
	if wei.Cmp(big.NewInt(1_000_000_000_000_000_000)) != 0 {
		t.Fatalf("Actual: %s, Expected: 1000000000000000000", wei)
	}

	if _, ok := parseHexWei("0xzz"); ok {
		t.Fatal("Expected parsing to fail")
	}
}

func TestWeiToEther(t *testing.T) {
	ether := weiToEther(big.NewInt(1_500_000_000_000_000_000))
	if ether != 1.5 {
		t.Fatalf("Actual: %f, Expected: 1.5", ether)
	}
}
