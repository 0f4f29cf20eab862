// Copyright (c) 2025 Akiro Labs
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package oauth

import "testing"

func TestDiscordUserResponseToUserData(t *testing.T) {
	testCases := []struct {
		name     string
		response DiscordUserResponse
		expected UserData
	}{
		{
			name: "Should map a modern account without a discriminator",
			response: DiscordUserResponse{
				ID:            "80351110224678912",
				Username:      "nelly",
				Discriminator: "0",
				Avatar:        "8342729096ea3675442027381ff50dfe",
			},
			expected: UserData{
				ID:        "80351110224678912",
				Username:  "nelly",
				AvatarURL: "https://cdn.discordapp.com/avatars/80351110224678912/8342729096ea3675442027381ff50dfe.png",
			},
		},
		{
			name: "Should append the discriminator for legacy accounts",
			response: DiscordUserResponse{
				ID:            "80351110224678912",
				Username:      "nelly",
				Discriminator: "1337",
			},
			expected: UserData{
				ID:       "80351110224678912",
				Username: "nelly#1337",
			},
		},
		{
			name: "Should leave the avatar URL empty without an avatar hash",
			response: DiscordUserResponse{
				ID:       "80351110224678912",
				Username: "nelly",
			},
			expected: UserData{
				ID:       "80351110224678912",
				Username: "nelly",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if actual := tc.response.ToUserData(); actual != tc.expected {
				t.Fatalf("Actual: %+v, Expected: %+v", actual, tc.expected)
			}
		})
	}
}
