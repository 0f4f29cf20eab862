// Copyright (c) 2025 Akiro Labs
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package exceptions

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestFromDBError(t *testing.T) {
	testCases := []struct {
		name    string
		err     error
		expCode string
	}{
		{
			name:    "Should map no rows to not found",
			err:     pgx.ErrNoRows,
			expCode: CodeNotFound,
		},
		{
			name:    "Should map unique violations to conflict",
			err:     &pgconn.PgError{Code: "23505"},
			expCode: CodeConflict,
		},
		{
			name:    "Should map check violations to invalid enum",
			err:     &pgconn.PgError{Code: "23514", Message: "invalid role"},
			expCode: CodeInvalidEnum,
		},
		{
			name:    "Should map foreign key violations to not found",
			err:     &pgconn.PgError{Code: "23503"},
			expCode: CodeNotFound,
		},
		{
			name:    "Should map other pg errors to unknown",
			err:     &pgconn.PgError{Code: "57014"},
			expCode: CodeUnknown,
		},
		{
			name:    "Should map generic errors to unknown",
			err:     errors.New("boom"),
			expCode: CodeUnknown,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			serviceErr := FromDBError(tc.err)
			if serviceErr.Code != tc.expCode {
				t.Fatalf("Actual: %s, Expected: %s", serviceErr.Code, tc.expCode)
			}
		})
	}
}
