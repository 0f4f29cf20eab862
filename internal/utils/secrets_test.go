// Copyright (c) 2025 Akiro Labs
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package utils

import (
	"encoding/hex"
	"testing"
)

func TestGenerateHexSecret(t *testing.T) {
	secret, err := GenerateHexSecret(16)
	if err != nil {
		t.Fatal("Failed to generate secret", err)
	}
	if len(secret) != 32 {
		t.Fatalf("Actual length: %d, Expected: 32", len(secret))
	}
	if _, err := hex.DecodeString(secret); err != nil {
		t.Fatal("Secret is not valid hex", err)
	}

	other, err := GenerateHexSecret(16)
	if err != nil {
		t.Fatal("Failed to generate secret", err)
	}
	if secret == other {
		t.Fatal("Expected secrets to be random")
	}
}
