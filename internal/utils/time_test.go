// Copyright (c) 2025 Akiro Labs
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package utils

import (
	"testing"
	"time"
)

func TestToSecondsDuration(t *testing.T) {
	testCases := []struct {
		name     string
		secs     int64
		expected time.Duration
	}{
		{"Should convert zero seconds", 0, 0},
		{"Should convert a token TTL", 900, 15 * time.Minute},
		{"Should convert a full hour", 3600, time.Hour},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if actual := ToSecondsDuration(tc.secs); actual != tc.expected {
				t.Fatalf("Actual: %v, Expected: %v", actual, tc.expected)
			}
		})
	}
}

func TestToDaysDuration(t *testing.T) {
	testCases := []struct {
		name     string
		days     int64
		expected time.Duration
	}{
		{"Should convert a single day", 1, 24 * time.Hour},
		{"Should convert a monthly plan", 30, 720 * time.Hour},
		{"Should convert a yearly plan", 365, 8760 * time.Hour},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if actual := ToDaysDuration(tc.days); actual != tc.expected {
				t.Fatalf("Actual: %v, Expected: %v", actual, tc.expected)
			}
		})
	}
}
