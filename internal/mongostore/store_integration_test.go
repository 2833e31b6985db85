// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

//go:build integration

package mongostore

import (
	"context"
	"fmt"
	"reflect"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/tomtom215/marinestats/internal/config"
	"github.com/tomtom215/marinestats/internal/models"
	"github.com/tomtom215/marinestats/internal/stats"
	"github.com/tomtom215/marinestats/internal/testinfra"
)

func strPtr(s string) *string { return &s }

func setupStore(t *testing.T) *Store {
	t.Helper()
	testinfra.SkipIfNoDocker(t)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	t.Cleanup(cancel)

	container, err := testinfra.NewMongoContainer(ctx)
	if err != nil {
		t.Fatalf("Failed to start MongoDB container: %v", err)
	}
	t.Cleanup(func() { testinfra.CleanupContainer(t, context.Background(), container.Container) })

	store, err := New(ctx, &config.DatabaseConfig{
		MongoURI:   container.URI,
		Collection: "occurrences",
	})
	if err != nil {
		logs, _ := testinfra.ContainerLogs(ctx, container.Container)
		t.Fatalf("New() error = %v\nContainer logs:\n%s", err, logs)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStoreIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	store := setupStore(t)
	ctx := context.Background()

	records := []models.Occurrence{
		{
			ScientificName:       strPtr("Thunnus albacares"),
			Habitat:              strPtr("Reef"),
			Locality:             strPtr("Gulf"),
			MinimumDepthInMeters: strPtr("10"),
			MaximumDepthInMeters: strPtr("50"),
			EventDate:            strPtr("2023-05-02T08:00:00Z"),
			IndividualCount:      strPtr("3"),
		},
		{
			ScientificName:       strPtr("Thunnus albacares"),
			Habitat:              strPtr("Reef"),
			Locality:             strPtr("Gulf"),
			MinimumDepthInMeters: strPtr("bad"),
			MaximumDepthInMeters: strPtr("60"),
			EventDate:            strPtr("2023-05-02"),
			IndividualCount:      strPtr("12"),
		},
		{
			Habitat:              strPtr("Reef"),
			Locality:             strPtr("Bay"),
			MinimumDepthInMeters: strPtr(" 5 "),
			MaximumDepthInMeters: strPtr("20"),
			EventDate:            strPtr("2023-04-30"),
			IndividualCount:      strPtr("many"),
		},
	}

	n, err := store.ReplaceAll(ctx, records, 2)
	if err != nil || n != 3 {
		t.Fatalf("ReplaceAll() = %d, %v", n, err)
	}

	t.Run("statistics", func(t *testing.T) {
		snap, err := stats.New(store).Compute(ctx)
		if err != nil {
			t.Fatalf("Compute() error = %v", err)
		}
		if snap.Overview != (models.Overview{TotalOccurrences: 3, UniqueSpecies: 1, TotalLocations: 2, TotalHabitats: 1}) {
			t.Errorf("Overview = %+v", snap.Overview)
		}
		wantDepth := &models.DepthStatistics{AverageMinDepth: 7.5, AverageMaxDepth: 35, MinRecordedDepth: 5, MaxRecordedDepth: 50}
		if !reflect.DeepEqual(snap.DepthStatistics, wantDepth) {
			t.Errorf("DepthStatistics = %+v, want %+v", snap.DepthStatistics, wantDepth)
		}
		wantTop := []models.TopSpecies{{ScientificName: "Thunnus albacares", Name: "Thunnus", OccurrenceCount: 2, LocationCount: 1}}
		if !reflect.DeepEqual(snap.TopSpecies, wantTop) {
			t.Errorf("TopSpecies = %+v", snap.TopSpecies)
		}
		wantActivity := []models.ActivityCount{{Date: "2023-05-02", Occurrences: 2}, {Date: "2023-04-30", Occurrences: 1}}
		if !reflect.DeepEqual(snap.RecentActivity, wantActivity) {
			t.Errorf("RecentActivity = %+v", snap.RecentActivity)
		}
	})

	t.Run("export", func(t *testing.T) {
		got, err := store.ExportOccurrences(ctx, models.ExportFilter{Species: "^THUNNUS", Start: "2023-05-01"})
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 2 {
			t.Fatalf("ExportOccurrences() returned %d records, want 2", len(got))
		}
		if got[0].RecordID == "" || got[0].VernacularName != nil {
			t.Errorf("first record = %+v", got[0])
		}
	})

	t.Run("abnormalities", func(t *testing.T) {
		got, err := store.TopByIndividualCount(ctx, 5)
		if err != nil {
			t.Fatal(err)
		}
		counts := make([]string, len(got))
		for i := range got {
			counts[i] = models.Text(got[i].IndividualCount)
		}
		if want := []string{"12", "3", "many"}; !reflect.DeepEqual(counts, want) {
			t.Errorf("individual counts = %v, want %v", counts, want)
		}
	})

	t.Run("replace", func(t *testing.T) {
		if _, err := store.ReplaceAll(ctx, records[:1], 0); err != nil {
			t.Fatal(err)
		}
		if n, err := store.CountOccurrences(ctx); err != nil || n != 1 {
			t.Errorf("CountOccurrences() = %d, %v; want 1", n, err)
		}
	})
}

func TestStoreIntegrationNumericFields(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	store := setupStore(t)
	ctx := context.Background()

	// Shapes written by mongoimport: numbers stay numbers.
	_, err := store.coll.InsertMany(ctx, []interface{}{
		bson.D{
			{Key: "scientificName", Value: "Thunnus albacares"},
			{Key: "habitat", Value: "Reef"},
			{Key: "locality", Value: "Gulf"},
			{Key: "minimumDepthInMeters", Value: int32(10)},
			{Key: "maximumDepthInMeters", Value: 50.5},
			{Key: "individualCount", Value: int32(3)},
			{Key: "eventDate", Value: "2023-05-02"},
		},
		bson.D{
			{Key: "scientificName", Value: "Thunnus albacares"},
			{Key: "habitat", Value: "Reef"},
			{Key: "locality", Value: "Gulf"},
			{Key: "minimumDepthInMeters", Value: " 4 "},
			{Key: "maximumDepthInMeters", Value: "20"},
			{Key: "individualCount", Value: 12.9},
			{Key: "eventDate", Value: "2023-05-01"},
		},
		bson.D{
			{Key: "scientificName", Value: "Sardinella longiceps"},
			{Key: "minimumDepthInMeters", Value: "bad"},
			{Key: "maximumDepthInMeters", Value: int64(70)},
			{Key: "individualCount", Value: "7 schools"},
		},
	})
	if err != nil {
		t.Fatalf("InsertMany() error = %v", err)
	}

	t.Run("depth", func(t *testing.T) {
		got, err := store.DepthSummary(ctx)
		if err != nil {
			t.Fatalf("DepthSummary() error = %v", err)
		}
		want := &models.DepthAggregate{Records: 2, AvgMin: 7, AvgMax: 35.25, Min: 4, Max: 50.5}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("DepthSummary() = %+v, want %+v", got, want)
		}
	})

	t.Run("statistics", func(t *testing.T) {
		snap, err := stats.New(store).Compute(ctx)
		if err != nil {
			t.Fatalf("Compute() error = %v", err)
		}
		if snap.Overview.TotalOccurrences != 3 || snap.Overview.UniqueSpecies != 2 {
			t.Errorf("Overview = %+v", snap.Overview)
		}
	})

	t.Run("abnormalities", func(t *testing.T) {
		got, err := store.TopByIndividualCount(ctx, 5)
		if err != nil {
			t.Fatalf("TopByIndividualCount() error = %v", err)
		}
		counts := make([]string, len(got))
		for i := range got {
			counts[i] = models.Text(got[i].IndividualCount)
		}
		if want := []string{"12.9", "7 schools", "3"}; !reflect.DeepEqual(counts, want) {
			t.Errorf("individual counts = %v, want %v", counts, want)
		}
	})

	t.Run("export", func(t *testing.T) {
		got, err := store.ExportOccurrences(ctx, models.ExportFilter{Species: "thunnus"})
		if err != nil {
			t.Fatalf("ExportOccurrences() error = %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("ExportOccurrences() returned %d records, want 2", len(got))
		}
		if models.Text(got[0].MinimumDepthInMeters) != "10" || models.Text(got[0].MaximumDepthInMeters) != "50.5" {
			t.Errorf("depths = %q, %q", models.Text(got[0].MinimumDepthInMeters), models.Text(got[0].MaximumDepthInMeters))
		}
	})
}

func TestStoreIntegrationRecentActivitySample(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	store := setupStore(t)
	ctx := context.Background()

	// Newest 100 records on 20 days (5 each), the older 40 on the 20 days
	// before (2 each).
	latest := time.Date(2023, 6, 30, 0, 0, 0, 0, time.UTC)
	records := make([]models.Occurrence, 0, 140)
	var days []string
	for i := range 140 {
		offset := i / 5
		if i >= 100 {
			offset = 20 + (i-100)/2
		}
		day := latest.AddDate(0, 0, -offset).Format(models.DayLayout)
		if len(days) == 0 || days[len(days)-1] != day {
			days = append(days, day)
		}
		records = append(records, models.Occurrence{
			ScientificName: strPtr(fmt.Sprintf("Species %03d", i)),
			EventDate:      strPtr(day),
		})
	}
	if _, err := store.ReplaceAll(ctx, records, 50); err != nil {
		t.Fatalf("ReplaceAll() error = %v", err)
	}

	got, err := store.DailyActivity(ctx, stats.ActivitySampleSize, stats.ActivityDaysLimit)
	if err != nil {
		t.Fatal(err)
	}
	want := make([]models.DateCount, 0, 20)
	for _, day := range days[:20] {
		want = append(want, models.DateCount{Date: day, Count: 5})
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DailyActivity() = %+v, want %+v", got, want)
	}

	wide, err := store.DailyActivity(ctx, len(records), stats.ActivityDaysLimit)
	if err != nil {
		t.Fatal(err)
	}
	if len(wide) != stats.ActivityDaysLimit {
		t.Fatalf("DailyActivity(all) returned %d days, want %d", len(wide), stats.ActivityDaysLimit)
	}
	for i := 1; i < len(wide); i++ {
		if wide[i-1].Date <= wide[i].Date {
			t.Errorf("days not newest first at %d: %s then %s", i, wide[i-1].Date, wide[i].Date)
		}
	}
}
