// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package config

import "strings"

// MissingAuthMethod is reported when no Tableau sign-in method is configured.
const MissingAuthMethod = "Authentication method (TABLEAU_PERSONAL_ACCESS_TOKEN or TABLEAU_USERNAME or TABLEAU_TRUSTED_USER)"

// BaseURL returns ServerURL without a trailing slash.
func (t *TableauConfig) BaseURL() string {
	return strings.TrimRight(t.ServerURL, "/")
}

// HasPAT reports whether personal access token sign-in is possible.
func (t *TableauConfig) HasPAT() bool {
	return t.PersonalToken != ""
}

// HasCredentials reports whether username/password sign-in is possible.
func (t *TableauConfig) HasCredentials() bool {
	return t.Username != "" && t.Password != ""
}

// Configured reports whether the integration can be attempted at all.
func (t *TableauConfig) Configured() bool {
	return t.ServerURL != ""
}

// Missing lists the settings the embedded dashboard needs but does not have.
// An empty result means the configuration is complete.
func (t *TableauConfig) Missing() []string {
	missing := make([]string, 0, 3)
	if t.ServerURL == "" {
		missing = append(missing, "TABLEAU_SERVER_URL")
	}
	if t.PublicServerURL == "" {
		missing = append(missing, "NEXT_PUBLIC_TABLEAU_SERVER_URL")
	}
	if t.PersonalToken == "" && t.Username == "" && t.TrustedUser == "" {
		missing = append(missing, MissingAuthMethod)
	}
	return missing
}

// Configured reports whether Copernicus Marine credentials are present.
func (c *CopernicusConfig) Configured() bool {
	return c.Username != "" && c.Password != ""
}
