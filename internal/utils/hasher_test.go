// Copyright (c) 2025 Akiro Labs
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package utils

import (
	"strings"
	"testing"

	"github.com/go-faker/faker/v4"
)

func TestArgon2HashString(t *testing.T) {
	password := faker.Password()

	hash, err := Argon2HashString(password)
	if err != nil {
		t.Fatal("Failed to hash password", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Fatalf("Hash has unexpected format: %s", hash)
	}

	secondHash, err := Argon2HashString(password)
	if err != nil {
		t.Fatal("Failed to hash password", err)
	}
	if hash == secondHash {
		t.Fatal("Expected different salts to produce different hashes")
	}
}

func TestArgon2CompareHash(t *testing.T) {
	password := faker.Password()
	hash, err := Argon2HashString(password)
	if err != nil {
		t.Fatal("Failed to hash password", err)
	}

	testCases := []struct {
		name     string
		password string
		hash     string
		expMatch bool
		expErr   bool
	}{
		{
			name:     "Should match the original password",
			password: password,
			hash:     hash,
			expMatch: true,
		},
		{
			name:     "Should not match a different password",
			password: password + "x",
			hash:     hash,
		},
		{
			name:     "Should error on a malformed hash",
			password: password,
			hash:     "not-a-hash",
			expErr:   true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			match, err := Argon2CompareHash(tc.password, tc.hash)

			if tc.expErr {
				if err == nil {
					t.Fatal("Expected an error")
				}
				return
			}
			if err != nil {
				t.Fatal("Failed to compare hash", err)
			}
			if match != tc.expMatch {
				t.Fatalf("Actual: %v, Expected: %v", match, tc.expMatch)
			}
		})
	}
}
