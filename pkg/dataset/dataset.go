// Package dataset ingests and validates appliance usage data at the
// boundary, so the analytics core only ever sees clean numeric records.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/energyadvisor/energyadvisor/pkg/types"
)

// Required CSV columns. Extra columns are ignored and order is free.
const (
	colAppliance   = "appliance"
	colWattage     = "wattage"
	colHoursPerDay = "hours_per_day"
	colQuantity    = "quantity"
)

// ParseCSV reads appliance records from CSV data with a header row.
// Every row is validated; the first malformed row fails the whole parse
// with a row-numbered error.
func ParseCSV(r io.Reader) ([]types.ApplianceRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("csv is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	var missing []string
	for _, required := range []string{colAppliance, colWattage, colHoursPerDay, colQuantity} {
		if _, ok := cols[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("csv is missing required column(s): %s", strings.Join(missing, ", "))
	}

	var records []types.ApplianceRecord
	for row := 1; ; row++ {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}

		wattage, err := strconv.ParseFloat(strings.TrimSpace(fields[cols[colWattage]]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: wattage must be numeric: %w", row, err)
		}
		hours, err := strconv.ParseFloat(strings.TrimSpace(fields[cols[colHoursPerDay]]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: hours_per_day must be numeric: %w", row, err)
		}
		quantity, err := strconv.Atoi(strings.TrimSpace(fields[cols[colQuantity]]))
		if err != nil {
			return nil, fmt.Errorf("row %d: quantity must be an integer: %w", row, err)
		}

		record := types.ApplianceRecord{
			Name:        strings.TrimSpace(fields[cols[colAppliance]]),
			Wattage:     wattage,
			HoursPerDay: hours,
			Quantity:    quantity,
		}
		if err := validateRecord(record); err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		records = append(records, record)
	}
	return records, nil
}

// Validate checks already-structured records (e.g. a JSON upload) against
// the same rules ParseCSV applies.
func Validate(records []types.ApplianceRecord) error {
	for i, r := range records {
		if err := validateRecord(r); err != nil {
			return fmt.Errorf("record %d: %w", i+1, err)
		}
	}
	return nil
}

func validateRecord(r types.ApplianceRecord) error {
	if r.Name == "" {
		return fmt.Errorf("appliance name is required")
	}
	if r.Wattage <= 0 {
		return fmt.Errorf("wattage must be positive, got %v", r.Wattage)
	}
	if r.HoursPerDay < 0 || r.HoursPerDay > 24 {
		return fmt.Errorf("hours_per_day must be between 0 and 24, got %v", r.HoursPerDay)
	}
	if r.Quantity < 1 {
		return fmt.Errorf("quantity must be at least 1, got %d", r.Quantity)
	}
	return nil
}

// Sample returns the template household used to explore the advisor
// without uploading data.
func Sample() []types.ApplianceRecord {
	return []types.ApplianceRecord{
		{Name: "Air Conditioner", Wattage: 1500, HoursPerDay: 8, Quantity: 1},
		{Name: "Refrigerator", Wattage: 150, HoursPerDay: 24, Quantity: 1},
		{Name: "Television", Wattage: 100, HoursPerDay: 5, Quantity: 2},
	}
}
