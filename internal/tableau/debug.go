// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package tableau

import (
	"context"
	"errors"
	"fmt"
	"strings"

	models "github.com/tomtom215/marinestats/internal/models/tableau"
)

// debugWorkbooks caps the workbooks listed in the debug report.
const debugWorkbooks = 10

// report accumulates debug report lines.
type report struct {
	lines []string
}

func (r *report) add(format string, args ...any) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

func (r *report) blank() {
	r.lines = append(r.lines, "")
}

// failed ends the report with err and marks it unsuccessful.
func (r *report) failed(err error) *models.DebugResponse {
	r.add("✗ Test failed: %v", err)
	return &models.DebugResponse{Success: false, Results: r.String()}
}

func (r *report) String() string {
	return strings.Join(r.lines, "\n")
}

// Debug walks through the Tableau integration step by step and returns a
// plain text report: configuration, server connectivity, default-site
// sign-in, workbook access and sign-out. When the default-site sign-in
// fails and a site is configured, sign-in is retried against that site.
//
// Success is false only when the server could not be contacted at all; a
// rejected sign-in is reported in the text.
func (s *Service) Debug(ctx context.Context) *models.DebugResponse {
	r := &report{}

	r.add("=== Tableau Configuration Debug ===")
	r.add("Server URL: %s", s.cfg.ServerURL)
	r.add("Username: %s", s.cfg.Username)
	if s.cfg.Password != "" {
		r.add("Password: Set (length: %d)", len(s.cfg.Password))
	} else {
		r.add("Password: Not set")
	}
	if s.cfg.SiteID != "" {
		r.add("Site ID: %q", s.cfg.SiteID)
	} else {
		r.add("Site ID: \"Empty (default site)\"")
	}
	r.blank()

	if !s.cfg.Configured() {
		return r.failed(ErrNotConfigured)
	}

	r.add("1. Testing server connectivity...")
	info, err := s.api.ServerInfo(ctx)
	if err != nil {
		var statusErr *StatusError
		if !errors.As(err, &statusErr) {
			return r.failed(err)
		}
		r.add("✗ Server not reachable: %d", statusErr.StatusCode)
		return &models.DebugResponse{Success: true, Results: r.String()}
	}
	r.add("✓ Server reachable - Version: %s", info.Version())
	r.blank()

	r.add("2. Testing authentication (default site)...")
	session, err := s.api.SignIn(ctx, s.passwordCredentials(nil))
	if err != nil {
		r.add("✗ Default site authentication failed: %v", err)
		if s.cfg.SiteID != "" {
			s.debugSiteSignIn(ctx, r)
		}
		return &models.DebugResponse{Success: true, Results: r.String()}
	}

	r.add("✓ Authentication successful (default site)")
	r.add("  Site ID: %s", session.Site.ID)
	r.add("  Site Content URL: %q", session.Site.ContentURL)
	r.add("  User ID: %s", session.User.ID)
	r.add("  User Name: %s", session.User.Name)
	r.blank()

	r.add("3. Testing workbooks access...")
	workbooks, err := s.api.ListWorkbooks(ctx, session)
	switch {
	case err != nil:
		r.add("✗ Failed to get workbooks: %v", err)
	case len(workbooks) == 0:
		r.add("✓ Found 0 workbooks")
		r.add("  No workbooks found. You may need to publish workbooks first.")
	default:
		r.add("✓ Found %d workbooks", len(workbooks))
		r.add("  Workbooks:")
		for i := range workbooks {
			if i == debugWorkbooks {
				break
			}
			r.add("    - %s (%s)", workbooks[i].Name, workbooks[i].ContentURL)
		}
	}
	r.blank()

	if err := s.api.SignOut(ctx, session.Token); err != nil {
		r.add("✗ Sign-out failed: %v", err)
	} else {
		r.add("✓ Signed out successfully")
	}

	return &models.DebugResponse{Success: true, Results: r.String()}
}

// debugSiteSignIn retries sign-in against the configured site.
func (s *Service) debugSiteSignIn(ctx context.Context, r *report) {
	r.blank()
	r.add("3. Testing with site ID: %q...", s.cfg.SiteID)

	session, err := s.api.SignIn(ctx, s.passwordCredentials(s.configuredSite()))
	if err != nil {
		r.add("✗ Site ID authentication failed: %v", err)
		return
	}
	defer s.signOut(ctx, session.Token)

	r.add("✓ Authentication with site ID successful")
	r.add("  Site ID: %s", session.Site.ID)
	r.add("  Site Content URL: %q", session.Site.ContentURL)
}
