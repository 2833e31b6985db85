// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package mongostore

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tomtom215/marinestats/internal/models"
)

// present matches documents where field holds a non-empty value.
func present(field string) bson.D {
	return bson.D{{Key: field, Value: bson.D{{Key: "$nin", Value: bson.A{nil, ""}}}}}
}

// isString tests the BSON type of a field expression.
func isString(expr interface{}) bson.D {
	return bson.D{{Key: "$eq", Value: bson.A{bson.D{{Key: "$type", Value: expr}}, "string"}}}
}

// trimmedOr trims field when it holds a string and yields other otherwise.
// $trim rejects non-string input, so numbers must not reach it.
func trimmedOr(field string, other interface{}) bson.D {
	return bson.D{{Key: "$cond", Value: bson.A{
		isString("$" + field),
		bson.D{{Key: "$trim", Value: bson.D{{Key: "input", Value: "$" + field}}}},
		other,
	}}}
}

// toDouble converts a field holding a number or numeric text to a double,
// yielding null when the value is missing or unparseable.
func toDouble(field string) bson.D {
	return bson.D{{Key: "$convert", Value: bson.D{
		{Key: "input", Value: trimmedOr(field, "$"+field)},
		{Key: "to", Value: "double"},
		{Key: "onError", Value: nil},
		{Key: "onNull", Value: nil},
	}}}
}

// finite matches numbers that are neither NaN nor infinite.
var finite = bson.D{
	{Key: "$gte", Value: -math.MaxFloat64},
	{Key: "$lte", Value: math.MaxFloat64},
}

func (s *Store) checkField(field string) error {
	if !models.IsOccurrenceField(field) {
		return fmt.Errorf("%w: %q", models.ErrUnknownField, field)
	}
	return nil
}

// aggregate runs pipeline and decodes every result into T.
func aggregate[T any](ctx context.Context, coll *mongo.Collection, pipeline mongo.Pipeline) ([]T, error) {
	cur, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	results := make([]T, 0)
	if err := cur.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// CountOccurrences returns the number of documents.
func (s *Store) CountOccurrences(ctx context.Context) (count int64, err error) {
	ctx, cancel := s.ensureContext(ctx)
	defer cancel()
	defer s.observe("count", time.Now(), &err)

	count, err = s.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("failed to count occurrences: %w", err)
	}
	return count, nil
}

// DistinctValues returns the distinct non-null string values of field.
func (s *Store) DistinctValues(ctx context.Context, field string) (values []string, err error) {
	if err := s.checkField(field); err != nil {
		return nil, err
	}

	ctx, cancel := s.ensureContext(ctx)
	defer cancel()
	defer s.observe("distinct", time.Now(), &err)

	raw, err := s.coll.Distinct(ctx, field, bson.D{{Key: field, Value: bson.D{{Key: "$ne", Value: nil}}}})
	if err != nil {
		return nil, fmt.Errorf("failed to list distinct %s: %w", field, err)
	}

	values = make([]string, 0, len(raw))
	for _, v := range raw {
		if str, ok := scalarString(v); ok && str != "" {
			values = append(values, str)
		}
	}
	return values, nil
}

// GroupCount counts documents per non-empty value of field, highest first.
func (s *Store) GroupCount(ctx context.Context, field string, limit int) (groups []models.GroupCount, err error) {
	if err := s.checkField(field); err != nil {
		return nil, err
	}

	ctx, cancel := s.ensureContext(ctx)
	defer cancel()
	defer s.observe("group_count", time.Now(), &err)

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: present(field)}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$" + field},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
		{{Key: "$limit", Value: limit}},
	}

	groups, err = aggregate[models.GroupCount](ctx, s.coll, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to group by %s: %w", field, err)
	}
	return groups, nil
}

// DepthSummary averages and bounds depths over documents where both the
// minimum and maximum depth convert to finite numbers. It returns nil when
// no document qualifies.
func (s *Store) DepthSummary(ctx context.Context) (agg *models.DepthAggregate, err error) {
	ctx, cancel := s.ensureContext(ctx)
	defer cancel()
	defer s.observe("depth_summary", time.Now(), &err)

	pipeline := mongo.Pipeline{
		{{Key: "$project", Value: bson.D{
			{Key: "lo", Value: toDouble("minimumDepthInMeters")},
			{Key: "hi", Value: toDouble("maximumDepthInMeters")},
		}}},
		{{Key: "$match", Value: bson.D{{Key: "lo", Value: finite}, {Key: "hi", Value: finite}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "records", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "avgMin", Value: bson.D{{Key: "$avg", Value: "$lo"}}},
			{Key: "avgMax", Value: bson.D{{Key: "$avg", Value: "$hi"}}},
			{Key: "min", Value: bson.D{{Key: "$min", Value: "$lo"}}},
			{Key: "max", Value: bson.D{{Key: "$max", Value: "$hi"}}},
		}}},
	}

	results, err := aggregate[models.DepthAggregate](ctx, s.coll, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize depths: %w", err)
	}
	if len(results) == 0 || results[0].Records == 0 {
		return nil, nil
	}
	return &results[0], nil
}

// SpeciesSummary returns the most observed species with the number of
// distinct non-empty localities each was seen at.
func (s *Store) SpeciesSummary(ctx context.Context, limit int) (species []models.SpeciesAggregate, err error) {
	ctx, cancel := s.ensureContext(ctx)
	defer cancel()
	defer s.observe("species_summary", time.Now(), &err)

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: present("scientificName")}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$scientificName"},
			{Key: "occurrences", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "localities", Value: bson.D{{Key: "$addToSet", Value: "$locality"}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "occurrences", Value: 1},
			{Key: "localities", Value: bson.D{{Key: "$size", Value: bson.D{{Key: "$filter", Value: bson.D{
				{Key: "input", Value: "$localities"},
				{Key: "cond", Value: bson.D{{Key: "$and", Value: bson.A{
					bson.D{{Key: "$ne", Value: bson.A{"$$this", nil}}},
					bson.D{{Key: "$ne", Value: bson.A{"$$this", ""}}},
				}}}},
			}}}}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "occurrences", Value: -1}, {Key: "_id", Value: 1}}}},
		{{Key: "$limit", Value: limit}},
	}

	species, err = aggregate[models.SpeciesAggregate](ctx, s.coll, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize species: %w", err)
	}
	return species, nil
}

// DailyActivity takes the sample most recent non-empty event dates and
// counts them per calendar day, newest first.
func (s *Store) DailyActivity(ctx context.Context, sample, limit int) (days []models.DateCount, err error) {
	ctx, cancel := s.ensureContext(ctx)
	defer cancel()
	defer s.observe("daily_activity", time.Now(), &err)

	opts := options.Find().
		SetSort(bson.D{{Key: "eventDate", Value: -1}}).
		SetLimit(int64(sample)).
		SetProjection(bson.D{{Key: "_id", Value: 0}, {Key: "eventDate", Value: 1}})

	cur, err := s.coll.Find(ctx, present("eventDate"), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent event dates: %w", err)
	}

	var docs []struct {
		EventDate string `bson:"eventDate"`
	}
	if err = cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode recent event dates: %w", err)
	}

	dates := make([]string, len(docs))
	for i, d := range docs {
		dates[i] = d.EventDate
	}
	return models.GroupByDay(dates, limit), nil
}
