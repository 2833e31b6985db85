// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package tableau

import (
	"errors"
	"fmt"
)

var (
	// ErrTrustedTicketRejected is returned when the trusted endpoint answers -1.
	ErrTrustedTicketRejected = errors.New("trusted ticket generation failed")

	// ErrNoToken is returned when a sign-in response carries no token.
	ErrNoToken = errors.New("sign-in response contained no token")

	// ErrUnexpectedContentType is returned when a sign-in response is
	// neither JSON nor XML.
	ErrUnexpectedContentType = errors.New("unexpected response format")

	// ErrNotConfigured is returned when no server URL is set.
	ErrNotConfigured = errors.New("tableau server url is not configured")
)

// StatusError is a non-2xx reply from Tableau. Its message is the status
// code followed by the response body, which the dashboard shows verbatim.
type StatusError struct {
	Operation  string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%d %s", e.StatusCode, e.Body)
}

// IsClientError reports whether Tableau rejected the request itself
// (bad credentials, missing site) rather than failing.
func (e *StatusError) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// AuthError marks a failure to sign in, as opposed to a failure of the
// call made with the session afterwards.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// ProbeError describes why the serverinfo probe failed. Its message is
// returned to the dashboard as is.
type ProbeError struct {
	Message string
	Err     error
}

func (e *ProbeError) Error() string {
	return e.Message
}

func (e *ProbeError) Unwrap() error {
	return e.Err
}
