package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"ratesync/internal/domain"
)

// Table files are CSVs with the columns:
// country, state, postcode, city, rate, name, priority, compound,
// shipping, class. A header row is skipped when present.
const expectedColumns = 10

// RateInserter is the slice of the rate store the importer needs.
type RateInserter interface {
	InsertBatch(ctx context.Context, rows []domain.RateRow) (int, error)
}

// CSVImporter parses a region's table file into rate rows and inserts
// them. Every imported row is marked shipping-taxable; the engine
// applies the region policy afterwards.
type CSVImporter struct {
	rates  RateInserter
	logger *slog.Logger
}

func New(rates RateInserter, logger *slog.Logger) *CSVImporter {
	return &CSVImporter{
		rates:  rates,
		logger: logger.With("component", "importer"),
	}
}

// Import reads the table at path and replaces nothing itself: the caller
// deletes the region's existing rows first. Returns the number of rows
// inserted.
func (i *CSVImporter) Import(ctx context.Context, path, regionID string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open table %s: %w", path, err)
	}
	defer f.Close()

	rows, err := i.parse(f, regionID)
	if err != nil {
		return 0, fmt.Errorf("parse table %s: %w", path, err)
	}

	count, err := i.rates.InsertBatch(ctx, rows)
	if err != nil {
		return 0, fmt.Errorf("insert rates: %w", err)
	}

	i.logger.Debug("imported table", "region", regionID, "rows", count)
	return count, nil
}

func (i *CSVImporter) parse(r io.Reader, regionID string) ([]domain.RateRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = expectedColumns

	var rows []domain.RateRow
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++

		rate, err := strconv.ParseFloat(strings.TrimSpace(record[4]), 64)
		if err != nil {
			if line == 1 && strings.EqualFold(strings.TrimSpace(record[4]), "rate") {
				// header row
				continue
			}
			return nil, fmt.Errorf("line %d: bad rate %q", line, record[4])
		}

		priority := 1
		if p, err := strconv.Atoi(strings.TrimSpace(record[6])); err == nil {
			priority = p
		}

		rows = append(rows, domain.RateRow{
			RegionID:        regionID,
			Postcode:        strings.TrimSpace(record[2]),
			City:            strings.TrimSpace(record[3]),
			Rate:            rate,
			Name:            strings.TrimSpace(record[5]),
			Priority:        priority,
			Compound:        parseBool(record[7]),
			ShippingTaxable: true,
			Class:           strings.TrimSpace(record[9]),
		})
	}

	return rows, nil
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "yes", "true":
		return true
	default:
		return false
	}
}
