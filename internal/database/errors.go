// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package database

import (
	"errors"
	"io"

	"github.com/tomtom215/marinestats/internal/logging"
	"github.com/tomtom215/marinestats/internal/models"
)

var (
	// ErrUnknownField is returned when an aggregation names an attribute
	// that is not an occurrence column.
	ErrUnknownField = models.ErrUnknownField

	// ErrNoConnection is returned by Ping after Close or a failed New.
	ErrNoConnection = errors.New("database connection is nil")
)

// closeWithLog closes a resource and logs any error
func closeWithLog(closer io.Closer, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.Warn().Str("type", resourceType).Err(err).Msg("Failed to close resource")
	}
}

// closeQuietly closes a resource and explicitly ignores any error
// Use this for cleanup operations in error paths where Close() errors are not actionable
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close() // Explicitly ignore error - cleanup is best-effort
	}
}
