package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"launchdash/internal/models"
)

// CSV header names. Columns are located by name, so order does not matter.
const (
	ColumnFlightNumber    = "Flight Number"
	ColumnSite            = "Launch Site"
	ColumnClass           = "class"
	ColumnPayloadMass     = "Payload Mass (kg)"
	ColumnBoosterVersion  = "Booster Version"
	ColumnBoosterCategory = "Booster Version Category"
)

var requiredColumns = []string{ColumnSite, ColumnPayloadMass, ColumnClass, ColumnBoosterCategory}

// LoadFile reads launch records from the CSV file at path.
func LoadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	return Load(f, path)
}

// Load reads launch records from CSV data. source names the data in errors
// and in the returned Dataset.
func Load(r io.Reader, source string) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s: %w", source, ErrEmptyDataset)
		}
		return nil, fmt.Errorf("%s: read header: %w", source, err)
	}

	cols := indexColumns(header)
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%s: %w: %q", source, ErrMissingColumn, name)
		}
	}

	var records []models.LaunchRecord
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", source, err)
		}

		line, _ := reader.FieldPos(0)
		rec, err := parseRecord(row, cols)
		if err != nil {
			return nil, fmt.Errorf("%s: line %d: %w", source, line, err)
		}
		records = append(records, rec)
	}

	ds, err := New(records, source)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return ds, nil
}

// indexColumns maps trimmed header names to their column index.
func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := cols[name]; !dup {
			cols[name] = i
		}
	}
	return cols
}

func parseRecord(row []string, cols map[string]int) (models.LaunchRecord, error) {
	field := func(name string) (string, bool) {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return "", false
		}
		return strings.TrimSpace(row[i]), true
	}

	var rec models.LaunchRecord

	site, ok := field(ColumnSite)
	if !ok || site == "" {
		return rec, fmt.Errorf("%w: missing launch site", ErrInvalidRecord)
	}
	rec.Site = site

	payload, _ := field(ColumnPayloadMass)
	mass, err := strconv.ParseFloat(payload, 64)
	if err != nil || math.IsNaN(mass) || math.IsInf(mass, 0) || mass < 0 {
		return rec, fmt.Errorf("%w: payload mass %q", ErrInvalidRecord, payload)
	}
	rec.PayloadMassKg = mass

	classStr, _ := field(ColumnClass)
	class, err := strconv.ParseFloat(classStr, 64)
	if err != nil || (class != models.OutcomeFailure && class != models.OutcomeSuccess) {
		return rec, fmt.Errorf("%w: class %q must be 0 or 1", ErrInvalidRecord, classStr)
	}
	rec.Class = int(class)

	category, ok := field(ColumnBoosterCategory)
	if !ok {
		return rec, fmt.Errorf("%w: missing booster version category", ErrInvalidRecord)
	}
	rec.BoosterCategory = category

	if v, ok := field(ColumnBoosterVersion); ok {
		rec.BoosterVersion = v
	}

	if v, ok := field(ColumnFlightNumber); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return rec, fmt.Errorf("%w: flight number %q", ErrInvalidRecord, v)
		}
		rec.FlightNumber = n
	}

	return rec, nil
}
