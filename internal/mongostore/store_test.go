// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package mongostore

import (
	"context"
	"errors"
	"testing"

	"github.com/tomtom215/marinestats/internal/config"
	"github.com/tomtom215/marinestats/internal/models"
)

func TestDatabaseName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  config.DatabaseConfig
		want string
	}{
		{"explicit wins", config.DatabaseConfig{MongoURI: "mongodb://localhost/fromuri", MongoDatabase: "explicit"}, "explicit"},
		{"from uri path", config.DatabaseConfig{MongoURI: "mongodb://localhost:27017/marinedb?retryWrites=true"}, "marinedb"},
		{"default", config.DatabaseConfig{MongoURI: "mongodb://localhost:27017"}, defaultDatabase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := databaseName(&tt.cfg)
			if err != nil {
				t.Fatalf("databaseName() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("databaseName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDatabaseNameInvalidURI(t *testing.T) {
	t.Parallel()

	if _, err := databaseName(&config.DatabaseConfig{MongoURI: "postgres://nope"}); err == nil {
		t.Error("expected error for non-mongodb scheme")
	}
}

func TestNewRequiresURI(t *testing.T) {
	t.Parallel()

	if _, err := New(context.Background(), &config.DatabaseConfig{}); !errors.Is(err, ErrNoURI) {
		t.Errorf("New() error = %v, want ErrNoURI", err)
	}
}

func TestUnknownFieldRejectedBeforeQuery(t *testing.T) {
	t.Parallel()

	s := &Store{}
	if _, err := s.GroupCount(context.Background(), "$where", 10); !errors.Is(err, models.ErrUnknownField) {
		t.Errorf("GroupCount() error = %v, want ErrUnknownField", err)
	}
	if _, err := s.DistinctValues(context.Background(), "habitat.$x"); !errors.Is(err, models.ErrUnknownField) {
		t.Errorf("DistinctValues() error = %v, want ErrUnknownField", err)
	}
}
