// Copyright (c) 2025 Akiro Labs
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/akiro-labs/backend/internal/config"
	"github.com/akiro-labs/backend/internal/exceptions"
	"github.com/akiro-labs/backend/internal/providers/blockchain"
)

func TestFindPlan(t *testing.T) {
	testCases := []struct {
		name     string
		code     string
		expDays  int
		expPrice float64
		expFound bool
	}{
		{"Should find the monthly plan", "month", 30, 15.0, true},
		{"Should find the quarterly plan", "quarter", 90, 35.0, true},
		{"Should find the yearly plan", "year", 365, 120.0, true},
		{"Should not find an unknown plan", "lifetime", 0, 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			plan, found := findPlan(tc.code)

			if found != tc.expFound {
				t.Fatalf("Actual: %v, Expected: %v", found, tc.expFound)
			}
			if !tc.expFound {
				return
			}
			if plan.Days != tc.expDays {
				t.Fatalf("Actual days: %d, Expected: %d", plan.Days, tc.expDays)
			}
			if plan.PriceUSD != tc.expPrice {
				t.Fatalf("Actual price: %f, Expected: %f", plan.PriceUSD, tc.expPrice)
			}
		})
	}
}

const testPaymentWallet string = "0xAbC1111111111111111111111111111111111111"

func newPaymentTestServices(rpcURL string, strict bool) *Services {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.NewPaymentsConfig(rpcURL, "", "", "", "", testPaymentWallet, "", strict)
	return &Services{
		logger:   logger,
		verifier: blockchain.NewVerifier(logger, cfg),
	}
}

func newPaymentRPCServer(t *testing.T, value string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Error("Failed to read RPC request", err)
		}

		req := struct {
			Method string `json:"method"`
		}{}
		if err := json.Unmarshal(body, &req); err != nil {
			t.Error("Failed to parse RPC request", err)
		}

		w.Header().Set("Content-Type", "application/json")
		switch req.Method {
		case "eth_getTransactionByHash":
			fmt.Fprintf(w, `{"jsonrpc":"2.0","id":1,"result":{"to":"%s","value":"%s"}}`, testPaymentWallet, value)
		case "eth_getTransactionReceipt":
			fmt.Fprint(w, `{"jsonrpc":"2.0","id":1,"result":{"status":"0x1"}}`)
		default:
			t.Errorf("Unexpected RPC method: %s", req.Method)
		}
	}))
}

func TestCheckTxHashReuse(t *testing.T) {
	testCases := []struct {
		name        string
		count       int64
		expConflict bool
	}{
		{"Should accept an unused transaction hash", 0, false},
		{"Should reject a reused transaction hash", 1, true},
		{"Should reject repeated reuse", 3, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			serviceErr := checkTxHashReuse(tc.count)

			if !tc.expConflict {
				if serviceErr != nil {
					t.Fatal("Expected no error", serviceErr)
				}
				return
			}
			if serviceErr == nil {
				t.Fatal("Expected a conflict error")
			}
			if serviceErr.Code != exceptions.CodeConflict {
				t.Fatalf("Actual: %s, Expected: %s", serviceErr.Code, exceptions.CodeConflict)
			}
		})
	}
}

func TestVerifyPaidAmount(t *testing.T) {
	plan, _ := findPlan("month")

	testCases := []struct {
		name      string
		value     string
		expAmount float64
		expErr    bool
	}{
		{
			// 20 ETH against a 15 USD plan price
			name:      "Should accept an on-chain payment covering the plan price",
			value:     "0x1158e460913d00000",
			expAmount: 20.0,
		},
		{
			// 10 ETH against a 15 USD plan price
			name:   "Should reject an on-chain payment below the plan price",
			value:  "0x8ac7230489e80000",
			expErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := newPaymentRPCServer(t, tc.value)
			defer server.Close()

			services := newPaymentTestServices(server.URL, true)
			amount, serviceErr := services.verifyPaidAmount(
				context.Background(),
				"test-request",
				blockchain.NetworkEthereum,
				"0xdeadbeef",
				plan,
			)

			if tc.expErr {
				if serviceErr == nil {
					t.Fatal("Expected a validation error")
				}
				if serviceErr.Code != exceptions.CodeValidation {
					t.Fatalf("Actual: %s, Expected: %s", serviceErr.Code, exceptions.CodeValidation)
				}
				return
			}
			if serviceErr != nil {
				t.Fatal("Failed to verify paid amount", serviceErr)
			}
			if amount != tc.expAmount {
				t.Fatalf("Actual: %f, Expected: %f", amount, tc.expAmount)
			}
		})
	}
}

func TestVerifyPaidAmountUnconfiguredNetwork(t *testing.T) {
	plan, _ := findPlan("quarter")

	t.Run("Should fall back to the plan price when not strict", func(t *testing.T) {
		services := newPaymentTestServices("", false)

		amount, serviceErr := services.verifyPaidAmount(
			context.Background(),
			"test-request",
			blockchain.NetworkEthereum,
			"0xdeadbeef",
			plan,
		)

		if serviceErr != nil {
			t.Fatal("Expected the unverified fallback to succeed", serviceErr)
		}
		if amount != plan.PriceUSD {
			t.Fatalf("Actual: %f, Expected: %f", amount, plan.PriceUSD)
		}
	})

	t.Run("Should reject in strict mode", func(t *testing.T) {
		services := newPaymentTestServices("", true)

		_, serviceErr := services.verifyPaidAmount(
			context.Background(),
			"test-request",
			blockchain.NetworkEthereum,
			"0xdeadbeef",
			plan,
		)

		if serviceErr == nil {
			t.Fatal("Expected a validation error")
		}
		if serviceErr.Code != exceptions.CodeValidation {
			t.Fatalf("Actual: %s, Expected: %s", serviceErr.Code, exceptions.CodeValidation)
		}
	})
}

func TestSubscriptionPlansCatalog(t *testing.T) {
	if len(SubscriptionPlans) != 3 {
		t.Fatalf("Actual: %d plans, Expected: 3", len(SubscriptionPlans))
	}

	seen := make(map[string]bool, len(SubscriptionPlans))
	for _, plan := range SubscriptionPlans {
		if seen[plan.Code] {
			t.Fatalf("Duplicate plan code: %s", plan.Code)
		}
		seen[plan.Code] = true

		if plan.Days <= 0 {
			t.Fatalf("Plan %s has non-positive duration", plan.Code)
		}
		if plan.PriceUSD <= 0 {
			t.Fatalf("Plan %s has non-positive price", plan.Code)
		}
		if plan.Title == "" {
			t.Fatalf("Plan %s has no title", plan.Code)
		}
	}
}
