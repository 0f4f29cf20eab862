// Copyright (c) 2025 Akiro Labs
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package blockchain

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/akiro-labs/backend/internal/exceptions"
)

const testSolanaWallet string = "7nYabs9dUhvxYwdTnrWVBL9MYviKSfrEbdWCUbcarwQj"

func newSolanaRPCServer(result string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":` + result + `}`))
	}))
}

func TestVerifySolanaTransaction(t *testing.T) {
	testCases := []struct {
		name      string
		result    string
		expAmount float64
		expCode   string
	}{
		{
			name: "Should return the received amount in SOL",
			result: `{
				"meta":{"err":null,"preBalances":[5000000000,1000000000],"postBalances":[3500000000,2500000000]},
				"transaction":{"message":{"accountKeys":["sender","` + testSolanaWallet + `"]}}
			}`,
			expAmount: 1.5,
		},
		{
			name:    "Should reject a missing transaction",
			result:  `null`,
			expCode: exceptions.CodeValidation,
		},
		{
			name: "Should reject a failed transaction",
			result: `{
				"meta":{"err":{"InstructionError":[0,"Custom"]},"preBalances":[0],"postBalances":[0]},
				"transaction":{"message":{"accountKeys":["` + testSolanaWallet + `"]}}
			}`,
			expCode: exceptions.CodeValidation,
		},
		{
			name: "Should reject when the wallet is not in the account keys",
			result: `{
				"meta":{"err":null,"preBalances":[1,2],"postBalances":[3,4]},
				"transaction":{"message":{"accountKeys":["sender","someone-else"]}}
			}`,
			expCode: exceptions.CodeValidation,
		},
		{
			name: "Should reject when the wallet balance did not increase",
			result: `{
				"meta":{"err":null,"preBalances":[5000000000,2500000000],"postBalances":[5000000000,2500000000]},
				"transaction":{"message":{"accountKeys":["sender","` + testSolanaWallet + `"]}}
			}`,
			expCode: exceptions.CodeValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := newSolanaRPCServer(tc.result)
			defer server.Close()

			verifier := newTestVerifier(server.URL, "", testSolanaWallet)
			amount, serviceErr := verifier.VerifyTransaction(context.Background(), VerifyTransactionOptions{
				RequestID: "test-request",
				Network:   NetworkSolana,
				TxHash:    "5sig",
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

func TestVerifierConfigured(t *testing.T) {
	testCases := []struct {
		name     string
		verifier *Verifier
		network  Network
		expected bool
	}{
		{
			name:     "Should be configured with an RPC URL and an EVM wallet",
			verifier: newTestVerifier("http://localhost:8545", testEVMWallet, ""),
			network:  NetworkEthereum,
			expected: true,
		},
		{
			name:     "Should not be configured without a wallet",
			verifier: newTestVerifier("http://localhost:8545", "", ""),
			network:  NetworkEthereum,
			expected: false,
		},
		{
			name:     "Should check the Solana wallet for the Solana network",
			verifier: newTestVerifier("http://localhost:8899", "", testSolanaWallet),
			network:  NetworkSolana,
			expected: true,
		},
		{
			name:     "Should not be configured without an RPC URL",
			verifier: newTestVerifier("", testEVMWallet, testSolanaWallet),
			network:  NetworkPolygon,
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if actual := tc.verifier.Configured(tc.network); actual != tc.expected {
				t.Fatalf("Actual: %v, Expected: %v", actual, tc.expected)
			}
		})
	}
}
