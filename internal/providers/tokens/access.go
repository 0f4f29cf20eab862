// Copyright (c) 2025 Akiro Labs
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package tokens

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/akiro-labs/backend/internal/utils"
)

type UserClaims struct {
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role"`
}

type accessTokenClaims struct {
	UserClaims
	jwt.RegisteredClaims
}

type AccessTokenOptions struct {
	PublicID uuid.UUID
	Role     string
}

func (t *Tokens) CreateAccessToken(opts AccessTokenOptions) (string, error) {
	now := time.Now()
	iat := jwt.NewNumericDate(now)
	exp := jwt.NewNumericDate(now.Add(utils.ToSecondsDuration(t.accessTTL)))
	issuer := fmt.Sprintf("https://%s", utils.ProcessURL(t.backendDomain))

	return jwt.NewWithClaims(jwt.SigningMethodHS256, accessTokenClaims{
		UserClaims: UserClaims{
			UserID: opts.PublicID,
			Role:   opts.Role,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Audience:  jwt.ClaimStrings{issuer},
			Subject:   opts.PublicID.String(),
			IssuedAt:  iat,
			NotBefore: iat,
			ExpiresAt: exp,
			ID:        uuid.NewString(),
		},
	}).SignedString(t.secret)
}

func (t *Tokens) VerifyAccessToken(token string) (UserClaims, error) {
	claims := new(accessTokenClaims)

	if _, err := jwt.ParseWithClaims(
		token,
		claims,
		func(_ *jwt.Token) (any, error) {
			return t.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	); err != nil {
		return UserClaims{}, err
	}

	return claims.UserClaims, nil
}
