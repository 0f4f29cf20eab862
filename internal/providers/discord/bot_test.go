// Copyright (c) 2025 Akiro Labs
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package discord

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestBot(apiBaseURL string) *Bot {
	return &Bot{
		logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
		httpClient:       &http.Client{Timeout: 5 * time.Second},
		apiBaseURL:       apiBaseURL,
		botToken:         "test-bot-token",
		guildID:          "123456789",
		subscriberRoleID: "987654321",
	}
}

func newUnconfiguredBot() *Bot {
	return &Bot{
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		httpClient: &http.Client{Timeout: 5 * time.Second},
		apiBaseURL: defaultAPIBaseURL,
	}
}

func newStatusServer(t *testing.T, expMethod string, status int) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != expMethod {
			t.Errorf("Actual method: %s, Expected: %s", r.Method, expMethod)
		}
		if r.Header.Get("Authorization") != "Bot test-bot-token" {
			t.Errorf("Unexpected authorization header: %s", r.Header.Get("Authorization"))
		}
		w.WriteHeader(status)
	}))
}

func TestIsGuildMember(t *testing.T) {
	testCases := []struct {
		name      string
		status    int
		expMember bool
		expErr    bool
	}{
		{"Should report membership on 200", http.StatusOK, true, false},
		{"Should report no membership on 404", http.StatusNotFound, false, false},
		{"Should error on unexpected status", http.StatusForbidden, false, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := newStatusServer(t, http.MethodGet, tc.status)
			defer server.Close()

			bot := newTestBot(server.URL)
			member, err := bot.IsGuildMember(context.Background(), "test-request", "42")

			if tc.expErr {
				if err == nil {
					t.Fatal("Expected an error")
				}
				return
			}
			if err != nil {
				t.Fatal("Failed to check guild membership", err)
			}
			if member != tc.expMember {
				t.Fatalf("Actual: %v, Expected: %v", member, tc.expMember)
			}
		})
	}
}

func TestIsGuildMemberUnconfigured(t *testing.T) {
	member, err := newUnconfiguredBot().IsGuildMember(context.Background(), "test-request", "42")
	if err != nil {
		t.Fatal("Expected no error for an unconfigured bot", err)
	}
	if !member {
		t.Fatal("Expected membership to default to true for an unconfigured bot")
	}
}

func newMemberServer(t *testing.T, status int, body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Actual method: %s, Expected: %s", r.Method, http.MethodGet)
		}
		if r.Header.Get("Authorization") != "Bot test-bot-token" {
			t.Errorf("Unexpected authorization header: %s", r.Header.Get("Authorization"))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if _, err := w.Write([]byte(body)); err != nil {
			t.Error("Failed to write member response", err)
		}
	}))
}

func TestHasSubscriberRole(t *testing.T) {
	testCases := []struct {
		name    string
		status  int
		body    string
		expHas  bool
		expErr  bool
	}{
		{
			name:   "Should detect the subscriber role",
			status: http.StatusOK,
			body:   `{"roles":["111","987654321","222"]}`,
			expHas: true,
		},
		{
			name:   "Should report a member without the role",
			status: http.StatusOK,
			body:   `{"roles":["111","222"]}`,
		},
		{
			name:   "Should report a missing member without the role",
			status: http.StatusNotFound,
			body:   `{"message":"Unknown Member","code":10007}`,
		},
		{
			name:   "Should error on unexpected status",
			status: http.StatusForbidden,
			body:   `{"message":"Missing Access","code":50001}`,
			expErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := newMemberServer(t, tc.status, tc.body)
			defer server.Close()

			bot := newTestBot(server.URL)
			hasRole, err := bot.HasSubscriberRole(context.Background(), "test-request", "42")

			if tc.expErr {
				if err == nil {
					t.Fatal("Expected an error")
				}
				return
			}
			if err != nil {
				t.Fatal("Failed to check subscriber role", err)
			}
			if hasRole != tc.expHas {
				t.Fatalf("Actual: %v, Expected: %v", hasRole, tc.expHas)
			}
		})
	}
}

func TestHasSubscriberRoleUnconfigured(t *testing.T) {
	hasRole, err := newUnconfiguredBot().HasSubscriberRole(context.Background(), "test-request", "42")
	if err != nil {
		t.Fatal("Expected no error for an unconfigured bot", err)
	}
	if hasRole {
		t.Fatal("Expected no subscriber role for an unconfigured bot")
	}
}

func TestAddSubscriberRole(t *testing.T) {
	testCases := []struct {
		name   string
		status int
		expErr bool
	}{
		{"Should grant the role on 204", http.StatusNoContent, false},
		{"Should tolerate a missing member", http.StatusNotFound, false},
		{"Should error on unexpected status", http.StatusForbidden, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := newStatusServer(t, http.MethodPut, tc.status)
			defer server.Close()

			bot := newTestBot(server.URL)
			err := bot.AddSubscriberRole(context.Background(), "test-request", "42")

			if tc.expErr && err == nil {
				t.Fatal("Expected an error")
			}
			if !tc.expErr && err != nil {
				t.Fatal("Failed to add subscriber role", err)
			}
		})
	}
}

func TestRemoveSubscriberRole(t *testing.T) {
	testCases := []struct {
		name   string
		status int
		expErr bool
	}{
		{"Should revoke the role on 204", http.StatusNoContent, false},
		{"Should tolerate a missing member", http.StatusNotFound, false},
		{"Should error on unexpected status", http.StatusForbidden, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := newStatusServer(t, http.MethodDelete, tc.status)
			defer server.Close()

			bot := newTestBot(server.URL)
			err := bot.RemoveSubscriberRole(context.Background(), "test-request", "42")

			if tc.expErr && err == nil {
				t.Fatal("Expected an error")
			}
			if !tc.expErr && err != nil {
				t.Fatal("Failed to remove subscriber role", err)
			}
		})
	}
}

func TestRoleManagementUnconfigured(t *testing.T) {
	bot := newUnconfiguredBot()

	if err := bot.AddSubscriberRole(context.Background(), "test-request", "42"); err != nil {
		t.Fatal("Expected role grant to be a no-op", err)
	}
	if err := bot.RemoveSubscriberRole(context.Background(), "test-request", "42"); err != nil {
		t.Fatal("Expected role revoke to be a no-op", err)
	}
}
