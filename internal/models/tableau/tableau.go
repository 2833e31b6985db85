// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

// Package tableau holds the Tableau REST API payloads used by the
// Marinestats Tableau client and the /api/tableau routes.
package tableau

import (
	"encoding/xml"

	"github.com/goccy/go-json"
)

// Site identifies a Tableau site by content URL (and, in responses, id).
type Site struct {
	ID         string `json:"id,omitempty" xml:"id,attr"`
	ContentURL string `json:"contentUrl" xml:"contentUrl,attr"`
}

// User is the signed-in user returned by auth/signin.
type User struct {
	ID   string `json:"id" xml:"id,attr"`
	Name string `json:"name,omitempty" xml:"name,attr"`
}

// Credentials is the body of a sign-in request. Exactly one of the
// name/password pair or the personal access token pair is set.
type Credentials struct {
	Name                      string `json:"name,omitempty"`
	Password                  string `json:"password,omitempty"`
	PersonalAccessTokenName   string `json:"personalAccessTokenName,omitempty"`
	PersonalAccessTokenSecret string `json:"personalAccessTokenSecret,omitempty"`
	Site                      *Site  `json:"site,omitempty"`
}

// SignInRequest wraps Credentials as Tableau expects.
type SignInRequest struct {
	Credentials Credentials `json:"credentials"`
}

// SignInCredentials is the credentials block of a sign-in response.
type SignInCredentials struct {
	Token string `json:"token" xml:"token,attr"`
	Site  Site   `json:"site" xml:"site"`
	User  User   `json:"user" xml:"user"`
}

// SignInResponse is the JSON sign-in response.
type SignInResponse struct {
	Credentials SignInCredentials `json:"credentials"`
}

// XMLSignInResponse is the XML sign-in response (tsResponse envelope).
type XMLSignInResponse struct {
	XMLName     xml.Name          `xml:"tsResponse"`
	Credentials SignInCredentials `xml:"credentials"`
}

// Session is an authenticated REST session.
type Session struct {
	Token  string `json:"token"`
	SiteID string `json:"siteId"`
	Site   Site   `json:"site"`
	User   User   `json:"user"`
}

// Workbook is a workbook as listed by sites/{id}/workbooks.
// Size and ShowTabs are passed through untouched since server versions
// disagree on their JSON types.
type Workbook struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	ContentURL string          `json:"contentUrl"`
	CreatedAt  string          `json:"createdAt,omitempty"`
	UpdatedAt  string          `json:"updatedAt,omitempty"`
	Size       json.RawMessage `json:"size,omitempty"`
	ShowTabs   json.RawMessage `json:"showTabs,omitempty"`
}

// WorkbooksResponse is the JSON body of a workbook listing.
type WorkbooksResponse struct {
	Workbooks struct {
		Workbook []Workbook `json:"workbook"`
	} `json:"workbooks"`
}

// WorkbookSummary is the short form used by the connection test.
type WorkbookSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ContentURL string `json:"contentUrl"`
}

// ServerInfo is the body of the serverinfo probe.
type ServerInfo struct {
	ServerInfo struct {
		ProductVersion json.RawMessage `json:"productVersion"`
		RestAPIVersion string          `json:"restApiVersion"`
	} `json:"serverInfo"`
}

// Version returns the product version. Newer servers send an object
// ({"value": "2023.1.0", "build": "..."}), older ones a bare string.
func (s *ServerInfo) Version() string {
	raw := s.ServerInfo.ProductVersion
	if len(raw) == 0 {
		return ""
	}
	var plain string
	if err := json.Unmarshal(raw, &plain); err == nil {
		return plain
	}
	var obj struct {
		Value string `json:"value"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj.Value
	}
	return string(raw)
}

// AuthRequest is the optional body of POST /api/tableau/auth.
type AuthRequest struct {
	Username string `json:"username" validate:"omitempty,max=255"`
}

// AuthResponse is returned by POST /api/tableau/auth. Token is set for
// PAT and credential sign-in, Ticket for trusted authentication.
type AuthResponse struct {
	Token     string `json:"token,omitempty"`
	Ticket    string `json:"ticket,omitempty"`
	ServerURL string `json:"serverUrl"`
	AuthType  string `json:"authType"`
}

// ConnectionTestResponse is returned by GET /api/tableau/test-connection
// when the configuration is incomplete or the server cannot be reached.
type ConnectionTestResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Missing []string `json:"missing,omitempty"`
}

// ConnectionTestSuccess is returned by GET /api/tableau/test-connection
// once the server answered the probe.
type ConnectionTestSuccess struct {
	Success        bool              `json:"success"`
	Message        string            `json:"message"`
	WorkbooksCount int               `json:"workbooksCount"`
	Workbooks      []WorkbookSummary `json:"workbooks"`
}

// DebugResponse is returned by GET /api/tableau/debug.
type DebugResponse struct {
	Success bool   `json:"success"`
	Results string `json:"results"`
}
