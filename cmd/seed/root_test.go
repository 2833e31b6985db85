// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

func TestRootCommandHasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, name := range []string{"seed", "seed-local"} {
		if !names[name] {
			t.Errorf("expected subcommand %q", name)
		}
	}
}

func TestFlags(t *testing.T) {
	for _, name := range []string{"csv", "batch-size"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("missing persistent flag --%s", name)
		}
	}
	if seedLocalCmd.Flags().Lookup("output") == nil {
		t.Error("seed-local should have --output")
	}
}

func TestSeedLocalWritesJSON(t *testing.T) {
	dir := t.TempDir()
	csvFile := filepath.Join(dir, "occurrence.csv")
	outFile := filepath.Join(dir, "out", "occurrences.json")
	content := "id,scientificName,habitat\n" +
		"occ-1,Thunnus albacares,reef\n" +
		"occ-2,Sardinella longiceps,coastal\n"
	if err := os.WriteFile(csvFile, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DUCKDB_PATH", filepath.Join(dir, "unused.duckdb"))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"seed-local", "--csv", csvFile, "--output", outFile})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out.String(), "Wrote 2 occurrences") {
		t.Errorf("output = %q", out.String())
	}

	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatal(err)
	}
	var records []map[string]any
	if err := json.Unmarshal(data, &records); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0]["scientificName"] != "Thunnus albacares" {
		t.Errorf("first record = %v", records[0])
	}
}
