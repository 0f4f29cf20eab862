// Copyright (c) 2025 Akiro Labs
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package validations

import (
	"io"
	"log/slog"
	"testing"
)

func TestPasswordValidator(t *testing.T) {
	validate := NewValidator(slog.New(slog.NewTextHandler(io.Discard, nil)))

	type passwordBody struct {
		Password string `validate:"password"`
	}

	testCases := []struct {
		name     string
		password string
		expValid bool
	}{
		{"Should accept a mixed case password with numbers", "Sup3rSecret", true},
		{"Should reject a password without uppercase", "sup3rsecret", false},
		{"Should reject a password without lowercase", "SUP3RSECRET", false},
		{"Should reject a password without numbers", "SuperSecret", false},
		{"Should reject a short password", "Sup3r", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validate.Struct(passwordBody{Password: tc.password})

			if tc.expValid && err != nil {
				t.Fatal("Expected password to be valid", err)
			}
			if !tc.expValid && err == nil {
				t.Fatal("Expected password to be invalid")
			}
		})
	}
}
