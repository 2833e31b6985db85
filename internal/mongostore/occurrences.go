// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package mongostore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tomtom215/marinestats/internal/logging"
	"github.com/tomtom215/marinestats/internal/models"
)

// document is an occurrence as stored, with the server-assigned id.
type document struct {
	ID                primitive.ObjectID `bson:"_id"`
	models.Occurrence `bson:",inline"`
}

// decodeOccurrences drains cur into records, using the document id as RecordID.
func decodeOccurrences(ctx context.Context, cur *mongo.Cursor) ([]models.Occurrence, error) {
	var docs []document
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	records := make([]models.Occurrence, len(docs))
	for i := range docs {
		records[i] = docs[i].Occurrence
		records[i].RecordID = docs[i].ID.Hex()
	}
	return records, nil
}

// ReplaceAll deletes every document and inserts records in ordered batches
// of batchSize. A non-positive batchSize inserts everything at once.
//
// MongoDB has no multi-document transaction on a standalone server, so a
// failure part way leaves the batches already written in place.
func (s *Store) ReplaceAll(ctx context.Context, records []models.Occurrence, batchSize int) (inserted int64, err error) {
	defer s.observe("replace_all", time.Now(), &err)

	if batchSize <= 0 || batchSize > len(records) {
		batchSize = len(records)
	}

	deleted, err := s.coll.DeleteMany(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("failed to clear occurrences: %w", err)
	}
	logging.Info().Int64("deleted", deleted.DeletedCount).Msg("Cleared occurrence collection")

	for start := 0; start < len(records); start += batchSize {
		end := min(start+batchSize, len(records))

		docs := make([]interface{}, 0, end-start)
		for i := start; i < end; i++ {
			docs = append(docs, &records[i])
		}

		res, err := s.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true))
		if err != nil {
			return inserted, fmt.Errorf("failed to insert occurrences %d-%d: %w", start, end-1, err)
		}
		inserted += int64(len(res.InsertedIDs))
		logging.Debug().Int("batch_end", end).Int("total", len(records)).Msg("Inserted occurrence batch")
	}

	return inserted, nil
}

// ExportOccurrences returns the documents matching filter in insertion order.
func (s *Store) ExportOccurrences(ctx context.Context, filter models.ExportFilter) (records []models.Occurrence, err error) {
	ctx, cancel := s.ensureContext(ctx)
	defer cancel()
	defer s.observe("export", time.Now(), &err)

	query := bson.D{}
	if filter.HasDateRange() {
		bounds := bson.D{}
		if filter.Start != "" {
			bounds = append(bounds, bson.E{Key: "$gte", Value: filter.Start})
		}
		if filter.End != "" {
			bounds = append(bounds, bson.E{Key: "$lte", Value: filter.End})
		}
		query = append(query, bson.E{Key: "eventDate", Value: bounds})
	}
	if filter.Species != "" {
		query = append(query, bson.E{Key: "scientificName", Value: primitive.Regex{Pattern: filter.Species, Options: "i"}})
	}

	cur, err := s.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to export occurrences: %w", err)
	}
	records, err = decodeOccurrences(ctx, cur)
	if err != nil {
		return nil, fmt.Errorf("failed to decode exported occurrences: %w", err)
	}
	return records, nil
}

// TopByIndividualCount returns the n documents with the largest individual
// counts. Numeric counts rank by their integer part. Text counts that do not
// start with an integer rank as 0.
func (s *Store) TopByIndividualCount(ctx context.Context, n int) (records []models.Occurrence, err error) {
	ctx, cancel := s.ensureContext(ctx)
	defer cancel()
	defer s.observe("top_individual_count", time.Now(), &err)

	leadingInt := bson.D{{Key: "$regexFind", Value: bson.D{
		{Key: "input", Value: trimmedOr("individualCount", "")},
		{Key: "regex", Value: "^[+-]?[0-9]+"},
	}}}

	textRank := bson.D{{Key: "$convert", Value: bson.D{
		{Key: "input", Value: bson.D{{Key: "$let", Value: bson.D{
			{Key: "vars", Value: bson.D{{Key: "m", Value: leadingInt}}},
			{Key: "in", Value: "$$m.match"},
		}}}},
		{Key: "to", Value: "long"},
		{Key: "onError", Value: 0},
		{Key: "onNull", Value: 0},
	}}}

	// Numeric counts truncate toward zero like their text form would.
	numericRank := bson.D{{Key: "$convert", Value: bson.D{
		{Key: "input", Value: bson.D{{Key: "$trunc", Value: "$individualCount"}}},
		{Key: "to", Value: "long"},
		{Key: "onError", Value: 0},
		{Key: "onNull", Value: 0},
	}}}

	pipeline := mongo.Pipeline{
		{{Key: "$addFields", Value: bson.D{{Key: "_rank", Value: bson.D{{Key: "$cond", Value: bson.A{
			bson.D{{Key: "$isNumber", Value: "$individualCount"}},
			numericRank,
			textRank,
		}}}}}}},
		{{Key: "$sort", Value: bson.D{{Key: "_rank", Value: -1}, {Key: "_id", Value: 1}}}},
		{{Key: "$limit", Value: n}},
		{{Key: "$project", Value: bson.D{{Key: "_rank", Value: 0}}}},
	}

	cur, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to rank occurrences by individual count: %w", err)
	}
	records, err = decodeOccurrences(ctx, cur)
	if err != nil {
		return nil, fmt.Errorf("failed to decode ranked occurrences: %w", err)
	}
	return records, nil
}
