// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

// Package testinfra provides container helpers for integration tests.
//
// Everything here is behind the integration build tag:
//
//	go test -tags integration ./...
//
// # MongoDB Container
//
// NewMongoContainer starts a disposable single-node MongoDB so the
// mongostore package can be tested against a real server:
//
//	func TestStore(t *testing.T) {
//	    testinfra.SkipIfNoDocker(t)
//	    ctx := context.Background()
//	    mongo, err := testinfra.NewMongoContainer(ctx)
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    defer testinfra.CleanupContainer(t, ctx, mongo.Container)
//	    // connect with mongo.URI
//	}
//
// Tests are skipped when no Docker daemon is reachable. The first run pulls
// the image; later runs use the local cache.
package testinfra
