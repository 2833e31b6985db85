// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/tomtom215/marinestats/internal/config"
	"github.com/tomtom215/marinestats/internal/logging"
	"github.com/tomtom215/marinestats/internal/metrics"
)

const (
	backendName = "mongodb"

	// defaultDatabase is used when neither the config nor the URI names one.
	defaultDatabase = "marine"

	defaultQueryTimeout = 30 * time.Second
)

// ErrNoURI is returned by New when no connection string is configured.
var ErrNoURI = errors.New("mongodb uri is empty")

// Store is an occurrence store backed by a MongoDB collection.
type Store struct {
	client       *mongo.Client
	coll         *mongo.Collection
	queryTimeout time.Duration
}

// New connects to MongoDB, verifies the connection and ensures the
// collection indexes exist.
func New(ctx context.Context, cfg *config.DatabaseConfig) (*Store, error) {
	if cfg.MongoURI == "" {
		return nil, ErrNoURI
	}

	dbName, err := databaseName(cfg)
	if err != nil {
		return nil, err
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI).SetRegistry(newRegistry()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	s := &Store{
		client:       client,
		coll:         client.Database(dbName).Collection(cfg.Collection),
		queryTimeout: cfg.QueryTimeout,
	}

	if err := s.Ping(ctx); err != nil {
		s.disconnect()
		return nil, fmt.Errorf("failed to reach mongodb: %w", err)
	}

	if err := s.ensureIndexes(ctx); err != nil {
		s.disconnect()
		return nil, err
	}

	logging.Info().
		Str("database", dbName).
		Str("collection", cfg.Collection).
		Msg("Connected to MongoDB occurrence store")

	return s, nil
}

// databaseName picks the configured database, then the one in the URI path.
func databaseName(cfg *config.DatabaseConfig) (string, error) {
	if cfg.MongoDatabase != "" {
		return cfg.MongoDatabase, nil
	}
	cs, err := connstring.ParseAndValidate(cfg.MongoURI)
	if err != nil {
		return "", fmt.Errorf("invalid mongodb uri: %w", err)
	}
	if cs.Database != "" {
		return cs.Database, nil
	}
	return defaultDatabase, nil
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	ctx, cancel := s.ensureContext(ctx)
	defer cancel()

	_, err := s.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "scientificName", Value: 1}}},
		{Keys: bson.D{{Key: "eventDate", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Backend returns the store backend name.
func (s *Store) Backend() string {
	return backendName
}

// Ping checks that the primary is reachable.
func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := s.ensureContext(ctx)
	defer cancel()
	return s.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

func (s *Store) disconnect() {
	if err := s.Close(); err != nil {
		logging.Warn().Err(err).Msg("Failed to disconnect from MongoDB")
	}
}

// ensureContext adds the configured query timeout when ctx has no deadline.
func (s *Store) ensureContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := s.queryTimeout
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

// observe records a store operation in Prometheus.
func (s *Store) observe(operation string, start time.Time, err *error) {
	metrics.RecordStoreQuery(backendName, operation, time.Since(start), *err)
}
