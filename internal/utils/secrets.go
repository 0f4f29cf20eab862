// Copyright (c) 2025 Akiro Labs
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package utils

import (
	"crypto/rand"
	"encoding/hex"
)

func generateRandomBytes(byteLen int) ([]byte, error) {
	b := make([]byte, byteLen)

	_, err := rand.Read(b)
	if err != nil {
		return nil, err
	}

	return b, nil
}

func GenerateHexSecret(byteLen int) (string, error) {
	randomBytes, err := generateRandomBytes(byteLen)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(randomBytes), nil
}
