// Copyright (c) 2025 Akiro Labs
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package services

import (
	"errors"
	"testing"
)

func TestRoleSyncGrantNeeded(t *testing.T) {
	testCases := []struct {
		name     string
		enabled  bool
		hasRole  bool
		checkErr error
		expected bool
	}{
		{"Should grant when the member lacks the role", true, false, nil, true},
		{"Should skip a member that already has the role", true, true, nil, false},
		{"Should grant when the membership check failed", true, true, errors.New("api down"), true},
		{"Should never grant when role management is unconfigured", false, false, nil, false},
		{"Should never grant when unconfigured even after a failed check", false, false, errors.New("api down"), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if actual := roleSyncGrantNeeded(tc.enabled, tc.hasRole, tc.checkErr); actual != tc.expected {
				t.Fatalf("Actual: %v, Expected: %v", actual, tc.expected)
			}
		})
	}
}

func TestRoleSyncRevokeNeeded(t *testing.T) {
	testCases := []struct {
		name     string
		enabled  bool
		hasRole  bool
		checkErr error
		expected bool
	}{
		{"Should revoke when the member still has the role", true, true, nil, true},
		{"Should skip a member that already lost the role", true, false, nil, false},
		{"Should revoke when the membership check failed", true, false, errors.New("api down"), true},
		{"Should never revoke when role management is unconfigured", false, true, nil, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if actual := roleSyncRevokeNeeded(tc.enabled, tc.hasRole, tc.checkErr); actual != tc.expected {
				t.Fatalf("Actual: %v, Expected: %v", actual, tc.expected)
			}
		})
	}
}
