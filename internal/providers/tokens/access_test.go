// Copyright (c) 2025 Akiro Labs
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package tokens

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func newTestTokens(accessTTL int64) *Tokens {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewTokens(logger, "api.example.com", "super-secret-test-key", accessTTL)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	jwts := newTestTokens(900)
	publicID := uuid.New()

	token, err := jwts.CreateAccessToken(AccessTokenOptions{
		PublicID: publicID,
		Role:     "subscriber",
	})
	if err != nil {
		t.Fatal("Failed to create access token", err)
	}

	claims, err := jwts.VerifyAccessToken(token)
	if err != nil {
		t.Fatal("Failed to verify access token", err)
	}
	if claims.UserID != publicID {
		t.Fatalf("Actual: %s, Expected: %s", claims.UserID, publicID)
	}
	if claims.Role != "subscriber" {
		t.Fatalf("Actual: %s, Expected: subscriber", claims.Role)
	}
}

func TestVerifyAccessToken(t *testing.T) {
	jwts := newTestTokens(900)
	token, err := jwts.CreateAccessToken(AccessTokenOptions{
		PublicID: uuid.New(),
		Role:     "user",
	})
	if err != nil {
		t.Fatal("Failed to create access token", err)
	}

	testCases := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{
			name: "Should reject a tampered token",
			token: func(t *testing.T) string {
				parts := strings.Split(token, ".")
				if len(parts) != 3 {
					t.Fatal("Unexpected token format")
				}
				return parts[0] + "." + parts[1] + ".invalidsignature"
			},
		},
		{
			name: "Should reject a token signed with a different secret",
			token: func(t *testing.T) string {
				other := NewTokens(
					slog.New(slog.NewTextHandler(io.Discard, nil)),
					"api.example.com",
					"a-different-secret",
					900,
				)
				otherToken, err := other.CreateAccessToken(AccessTokenOptions{
					PublicID: uuid.New(),
					Role:     "user",
				})
				if err != nil {
					t.Fatal("Failed to create access token", err)
				}
				return otherToken
			},
		},
		{
			name: "Should reject an expired token",
			token: func(t *testing.T) string {
				expired := newTestTokens(-10)
				expiredToken, err := expired.CreateAccessToken(AccessTokenOptions{
					PublicID: uuid.New(),
					Role:     "user",
				})
				if err != nil {
					t.Fatal("Failed to create access token", err)
				}
				return expiredToken
			},
		},
		{
			name: "Should reject garbage input",
			token: func(_ *testing.T) string {
				return "not-a-jwt"
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := jwts.VerifyAccessToken(tc.token(t)); err == nil {
				t.Fatal("Expected verification to fail")
			}
		})
	}
}
