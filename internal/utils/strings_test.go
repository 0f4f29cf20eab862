// Copyright (c) 2025 Akiro Labs
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package utils

import "testing"

func TestLowered(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"Should lowercase mixed case", "0xAbCd", "0xabcd"},
		{"Should trim surrounding whitespace", "  Value ", "value"},
		{"Should keep lowercase untouched", "already", "already"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if actual := Lowered(tc.input); actual != tc.expected {
				t.Fatalf("Actual: %s, Expected: %s", actual, tc.expected)
			}
		})
	}
}

func TestTruncated(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		length   int
		expected string
	}{
		{"Should truncate longer strings", "0123456789abcdef", 10, "0123456789"},
		{"Should keep shorter strings", "0x123", 10, "0x123"},
		{"Should keep strings at exact length", "0123456789", 10, "0123456789"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if actual := Truncated(tc.input, tc.length); actual != tc.expected {
				t.Fatalf("Actual: %s, Expected: %s", actual, tc.expected)
			}
		})
	}
}

func TestProcessURL(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"Should strip https scheme", "https://api.example.com", "api.example.com"},
		{"Should strip http scheme", "http://api.example.com", "api.example.com"},
		{"Should strip trailing slash", "https://api.example.com/", "api.example.com"},
		{"Should keep bare domains", "api.example.com", "api.example.com"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if actual := ProcessURL(tc.input); actual != tc.expected {
				t.Fatalf("Actual: %s, Expected: %s", actual, tc.expected)
			}
		})
	}
}
