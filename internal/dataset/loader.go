package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"atlas.healthmap.org/internal/catalog"
)

// Loader errors are fatal at startup: a dashboard without its indicator
// table has nothing to serve. Missing per-cell values are not errors.

// missingTokens are cell contents treated as absent values.
var missingTokens = map[string]bool{
	"":     true,
	"na":   true,
	"n/a":  true,
	"nan":  true,
	"null": true,
}

// LoadTable reads the indicator CSV. Header matching is case-insensitive;
// Country, ISO3 and Year are required columns, indicator columns are
// optional per cell.
func LoadTable(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening indicator table: %w", err)
	}
	defer f.Close() // nolint

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading indicator table header: %w", err)
	}

	cols := headerIndex(header)
	countryCol, ok := cols["country"]
	if !ok {
		return nil, fmt.Errorf("indicator table %s: missing Country column", path)
	}
	isoCol, ok := cols["iso3"]
	if !ok {
		return nil, fmt.Errorf("indicator table %s: missing ISO3 column", path)
	}
	yearCol, ok := cols["year"]
	if !ok {
		return nil, fmt.Errorf("indicator table %s: missing Year column", path)
	}

	// Indicator columns are resolved once against the catalog; columns the
	// catalog does not know are ignored.
	indicatorCols := make(map[catalog.Key]int)
	for _, ind := range catalog.All() {
		if idx, ok := cols[strings.ToLower(ind.Column)]; ok {
			indicatorCols[ind.Key] = idx
		}
	}

	var rows []Record
	line := 1
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("indicator table %s: %w", path, err)
		}
		line++

		country := strings.TrimSpace(fields[countryCol])
		if country == "" {
			return nil, fmt.Errorf("indicator table %s line %d: empty country label", path, line)
		}

		year, err := strconv.Atoi(strings.TrimSpace(fields[yearCol]))
		if err != nil {
			return nil, fmt.Errorf("indicator table %s line %d: bad year %q", path, line, fields[yearCol])
		}

		rec := Record{
			Country: country,
			ISO3:    strings.ToUpper(strings.TrimSpace(fields[isoCol])),
			Year:    year,
			values:  make(map[catalog.Key]float64, len(indicatorCols)),
		}

		for key, idx := range indicatorCols {
			if idx >= len(fields) {
				continue
			}
			cell := strings.TrimSpace(fields[idx])
			if missingTokens[strings.ToLower(cell)] {
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				// Corrupt cells degrade to the missing-data sentinel.
				continue
			}
			rec.values[key] = v
		}

		rows = append(rows, rec)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("indicator table %s contains no rows", path)
	}
	return rows, nil
}

// LoadMismatches reads the map-layer-name to ISO3 lookup used by the
// identity resolver.
func LoadMismatches(path string) (map[string]string, error) {
	records, err := readLookupCSV(path, "map_name", "iso3")
	if err != nil {
		return nil, fmt.Errorf("loading name mismatches: %w", err)
	}
	out := make(map[string]string, len(records))
	for name, iso := range records {
		out[name] = strings.ToUpper(iso)
	}
	return out, nil
}

// LoadColors reads the ISO3 to hex display color lookup.
func LoadColors(path string) (map[string]string, error) {
	records, err := readLookupCSV(path, "iso3", "color")
	if err != nil {
		return nil, fmt.Errorf("loading country colors: %w", err)
	}
	out := make(map[string]string, len(records))
	for iso, color := range records {
		out[strings.ToUpper(iso)] = color
	}
	return out, nil
}

// readLookupCSV reads a two-column lookup file keyed by header names
// (case-insensitive).
func readLookupCSV(path, keyHeader, valueHeader string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close() // nolint

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	cols := headerIndex(header)
	keyCol, ok := cols[keyHeader]
	if !ok {
		return nil, fmt.Errorf("%s: missing %s column", path, keyHeader)
	}
	valueCol, ok := cols[valueHeader]
	if !ok {
		return nil, fmt.Errorf("%s: missing %s column", path, valueHeader)
	}

	out := make(map[string]string)
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		key := strings.TrimSpace(fields[keyCol])
		value := strings.TrimSpace(fields[valueCol])
		if key == "" || value == "" {
			continue
		}
		out[key] = value
	}
	return out, nil
}

func headerIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return cols
}
