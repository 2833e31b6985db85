// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

/*
Package marine provides sea-surface conditions for the seas covered by the
occurrence data set.

Readings come from a Source. The only Source shipped today is MockSource,
which synthesizes plausible tropical values around fixed means so the
dashboard can render ocean panels before a Copernicus Marine subscription
is wired in. Service gates every call on configured Copernicus credentials.

Usage:

	svc := marine.NewService(&cfg.Copernicus, marine.NewMockSource())
	readings, err := svc.Readings(ctx)
	if errors.Is(err, marine.ErrCredentialsMissing) {
	    // 500 {"error": "Copernicus Marine credentials not configured"}
	}
*/
package marine
