// Package dataset loads the country indicator table and its auxiliary lookup
// files, applies the aggregate-row filter, and serves the result as a
// process-lifetime read-only snapshot.
package dataset

import "atlas.healthmap.org/internal/catalog"

// Record is one (country, year) row of the indicator table. Records are
// immutable once loaded; filtering produces derived copies, never in-place
// edits.
type Record struct {
	Country string
	ISO3    string
	Year    int
	values  map[catalog.Key]float64
}

// Value returns the indicator value and whether the row carries it. Missing
// values are presentation-level sentinels, never errors.
func (r Record) Value(key catalog.Key) (float64, bool) {
	v, ok := r.values[key]
	return v, ok
}

// ValuePtr returns the value as a pointer, nil when missing. This is the
// shape the formatter and the JSON payloads want.
func (r Record) ValuePtr(key catalog.Key) *float64 {
	if v, ok := r.values[key]; ok {
		return &v
	}
	return nil
}

// withCountry returns a copy of the record under a different display label.
func (r Record) withCountry(label string) Record {
	r.Country = label
	return r
}
