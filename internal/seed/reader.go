// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package seed

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tomtom215/marinestats/internal/logging"
	"github.com/tomtom215/marinestats/internal/models"
)

// ErrNoHeader is returned for an input without a header row.
var ErrNoHeader = errors.New("csv has no header row")

// headerAliases maps source column names to occurrence field names.
var headerAliases = map[string]string{
	"ImageLinks": "image_links",
}

// columnField resolves a header cell to a field name, or "".
func columnField(header string) string {
	name := strings.TrimSpace(strings.TrimPrefix(header, "\ufeff"))
	if alias, ok := headerAliases[name]; ok {
		name = alias
	}
	if !models.IsOccurrenceField(name) {
		return ""
	}
	return name
}

// ReadCSV parses occurrences from r. Rows whose cells are all blank are
// skipped. Short rows leave the trailing fields absent.
func ReadCSV(ctx context.Context, r io.Reader) ([]models.Occurrence, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	fields := make([]string, len(header))
	var ignored []string
	for i, h := range header {
		fields[i] = columnField(h)
		if fields[i] == "" {
			ignored = append(ignored, h)
		}
	}
	if len(ignored) > 0 {
		logging.Debug().Strs("columns", ignored).Msg("Ignoring unknown CSV columns")
	}

	var records []models.Occurrence
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}
		if blankRow(row) {
			continue
		}

		var o models.Occurrence
		for i, cell := range row {
			if i < len(fields) && fields[i] != "" {
				o.Set(fields[i], cell)
			}
		}
		records = append(records, o)
	}

	return records, nil
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
