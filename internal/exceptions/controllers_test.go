// Copyright (c) 2025 Akiro Labs
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package exceptions

import "testing"

func TestNewRequestErrorStatus(t *testing.T) {
	testCases := []struct {
		name      string
		code      string
		expStatus int
	}{
		{"Should map conflict to 409", CodeConflict, 409},
		{"Should map validation to 400", CodeValidation, 400},
		{"Should map invalid enum to 400", CodeInvalidEnum, 400},
		{"Should map not found to 404", CodeNotFound, 404},
		{"Should map forbidden to 403", CodeForbidden, 403},
		{"Should map unauthorized to 401", CodeUnauthorized, 401},
		{"Should map server error to 500", CodeServerError, 500},
		{"Should map unknown codes to 500", "SOMETHING_ELSE", 500},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if actual := NewRequestErrorStatus(tc.code); actual != tc.expStatus {
				t.Fatalf("Actual: %d, Expected: %d", actual, tc.expStatus)
			}
		})
	}
}

func TestToSnakeCase(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"Should convert camel case", "txHash", "tx_hash"},
		{"Should convert pascal case", "PlanCode", "plan_code"},
		{"Should lowercase acronyms", "URL", "url"},
		{"Should keep lowercase words", "network", "network"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if actual := toSnakeCase(tc.input); actual != tc.expected {
				t.Fatalf("Actual: %s, Expected: %s", actual, tc.expected)
			}
		})
	}
}
