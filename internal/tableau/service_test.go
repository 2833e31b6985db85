// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package tableau

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
)

func TestAuthenticateStrategyOrder(t *testing.T) {
	t.Run("personal access token first", func(t *testing.T) {
		fake := newFakeTableau(t)
		cfg := fake.config()
		cfg.TokenName = "dash"
		cfg.PersonalToken = "secret"
		cfg.Username = "u"
		cfg.Password = "p"

		auth, err := NewService(NewClient(cfg), cfg).Authenticate(context.Background(), "ignored")
		if err != nil {
			t.Fatal(err)
		}
		resp := auth.Response(cfg.ServerURL)
		if resp.AuthType != AuthTypePAT || resp.Token != "tok-123" || resp.Ticket != "" {
			t.Errorf("response = %+v", resp)
		}
		got := fake.lastSignIn()
		if got.PersonalAccessTokenName != "dash" || got.PersonalAccessTokenSecret != "secret" || got.Name != "" {
			t.Errorf("credentials = %+v", got)
		}
		if got.Site == nil || got.Site.ContentURL != "" {
			t.Errorf("site = %+v, want default site block", got.Site)
		}
	})

	t.Run("credentials second", func(t *testing.T) {
		fake := newFakeTableau(t)
		cfg := fake.config()
		cfg.Username = "u"
		cfg.Password = "p"
		cfg.SiteID = "marine"

		auth, err := NewService(NewClient(cfg), cfg).Authenticate(context.Background(), "")
		if err != nil {
			t.Fatal(err)
		}
		if auth.Method != AuthTypeCredentials {
			t.Errorf("Method = %q", auth.Method)
		}
		got := fake.lastSignIn()
		if got.Name != "u" || got.Password != "p" || got.Site == nil || got.Site.ContentURL != "marine" {
			t.Errorf("credentials = %+v", got)
		}
	})

	t.Run("trusted ticket fallback", func(t *testing.T) {
		tests := []struct {
			name        string
			username    string
			trustedUser string
			want        string
		}{
			{"request username", "alice", "bob", "alice"},
			{"configured user", "", "bob", "bob"},
			{"guest", "", "", "guest"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				fake := newFakeTableau(t)
				cfg := fake.config()
				cfg.TrustedUser = tt.trustedUser

				auth, err := NewService(NewClient(cfg), cfg).Authenticate(context.Background(), tt.username)
				if err != nil {
					t.Fatal(err)
				}
				resp := auth.Response(cfg.ServerURL)
				if resp.AuthType != AuthTypeTrusted || resp.Ticket != "ticket-abc" || resp.Token != "" {
					t.Errorf("response = %+v", resp)
				}
				if got := fake.trustedForm.Get("username"); got != tt.want {
					t.Errorf("username = %q, want %q", got, tt.want)
				}
			})
		}
	})

	t.Run("password without username falls through", func(t *testing.T) {
		fake := newFakeTableau(t)
		cfg := fake.config()
		cfg.Password = "p"

		auth, err := NewService(NewClient(cfg), cfg).Authenticate(context.Background(), "")
		if err != nil {
			t.Fatal(err)
		}
		if auth.Method != AuthTypeTrusted {
			t.Errorf("Method = %q, want trusted", auth.Method)
		}
	})
}

func TestWorkbooks(t *testing.T) {
	fake := newFakeTableau(t)
	fake.workbooks = sampleWorkbooks(3)
	cfg := fake.config()
	cfg.Username = "u"
	cfg.Password = "p"

	svc := NewService(NewClient(cfg), cfg)
	got, err := svc.Workbooks(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Errorf("len(workbooks) = %d", len(got))
	}
	if fake.lastSignIn().Site != nil {
		t.Error("site block should be omitted without a site id")
	}
	if fake.signOutCount() != 1 {
		t.Errorf("sign-outs = %d, want 1", fake.signOutCount())
	}

	fake.workbooksStatus = http.StatusForbidden
	if _, err := svc.Workbooks(context.Background()); err == nil || errors.As(err, new(*AuthError)) {
		t.Errorf("listing failure should not be an AuthError: %v", err)
	}
	if fake.signOutCount() != 2 {
		t.Errorf("sign-out should still run after a listing failure")
	}

	fake.signInStatus = http.StatusUnauthorized
	_, err = svc.Workbooks(context.Background())
	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("Workbooks() error = %v, want *AuthError", err)
	}
	if authErr.Error() != "401 bad credentials" {
		t.Errorf("message = %q", authErr.Error())
	}
}

func TestTestConnection(t *testing.T) {
	fake := newFakeTableau(t)
	fake.workbooks = sampleWorkbooks(7)
	cfg := fake.config()
	cfg.Username = "u"
	cfg.Password = "p"
	svc := NewService(NewClient(cfg), cfg)

	res, err := svc.TestConnection(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !res.Success || res.Message != "Connected to Tableau Server 2023.3.0" {
		t.Errorf("result = %+v", res)
	}
	if res.WorkbooksCount != 7 || len(res.Workbooks) != 5 || res.Workbooks[4].ID != "wb-4" {
		t.Errorf("workbooks = %d/%+v", res.WorkbooksCount, res.Workbooks)
	}

	fake.workbooksStatus = http.StatusInternalServerError
	res, err = svc.TestConnection(context.Background())
	if err != nil || res.WorkbooksCount != 0 || res.Workbooks == nil {
		t.Errorf("listing errors should yield an empty list: %+v, %v", res, err)
	}

	fake.serverInfoStatus = http.StatusBadGateway
	_, err = svc.TestConnection(context.Background())
	var probeErr *ProbeError
	if !errors.As(err, &probeErr) || probeErr.Message != "Server not reachable: 502 Bad Gateway" {
		t.Errorf("TestConnection() error = %v", err)
	}
}

func TestTestConnectionTrustedHasNoWorkbooks(t *testing.T) {
	fake := newFakeTableau(t)
	fake.workbooks = sampleWorkbooks(2)
	cfg := fake.config()
	cfg.TrustedUser = "viewer"

	res, err := NewService(NewClient(cfg), cfg).TestConnection(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.WorkbooksCount != 0 {
		t.Errorf("WorkbooksCount = %d, want 0", res.WorkbooksCount)
	}
}

func TestDebugReport(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		fake := newFakeTableau(t)
		fake.workbooks = sampleWorkbooks(12)
		cfg := fake.config()
		cfg.Username = "u"
		cfg.Password = "hunter2"

		res := NewService(NewClient(cfg), cfg).Debug(context.Background())
		if !res.Success {
			t.Fatalf("Success = false:\n%s", res.Results)
		}
		for _, want := range []string{
			"Password: Set (length: 7)",
			"✓ Server reachable - Version: 2023.3.0",
			"✓ Authentication successful (default site)",
			"  User Name: analyst",
			"✓ Found 12 workbooks",
			"    - Workbook 9 (workbook9)",
			"✓ Signed out successfully",
		} {
			if !strings.Contains(res.Results, want) {
				t.Errorf("report missing %q:\n%s", want, res.Results)
			}
		}
		if strings.Contains(res.Results, "Workbook 10") || strings.Contains(res.Results, "hunter2") {
			t.Errorf("report leaks or overflows:\n%s", res.Results)
		}
	})

	t.Run("site retry", func(t *testing.T) {
		fake := newFakeTableau(t)
		fake.signInStatus = http.StatusUnauthorized
		cfg := fake.config()
		cfg.Username = "u"
		cfg.Password = "p"
		cfg.SiteID = "marine"

		res := NewService(NewClient(cfg), cfg).Debug(context.Background())
		if !strings.Contains(res.Results, "✗ Default site authentication failed: 401 bad credentials") ||
			!strings.Contains(res.Results, `3. Testing with site ID: "marine"...`) ||
			!strings.Contains(res.Results, "✗ Site ID authentication failed") {
			t.Errorf("report:\n%s", res.Results)
		}
		if got := fake.lastSignIn(); got.Site == nil || got.Site.ContentURL != "marine" {
			t.Errorf("retry credentials = %+v", got)
		}
	})

	t.Run("not configured", func(t *testing.T) {
		cfg := newFakeTableau(t).config()
		cfg.ServerURL = ""
		res := NewService(NewClient(cfg), cfg).Debug(context.Background())
		if res.Success || !strings.Contains(res.Results, "✗ Test failed") {
			t.Errorf("result = %+v", res)
		}
	})
}
