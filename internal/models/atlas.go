package models

import (
	"atlas.healthmap.org/internal/catalog"
	"atlas.healthmap.org/internal/dataset"
	"atlas.healthmap.org/internal/narrative"
)

// MetaData describes the loaded datasets.
type MetaData struct {
	MinYear     int    `json:"minYear"`
	MaxYear     int    `json:"maxYear"`
	Rows        int    `json:"rows"`
	Countries   int    `json:"countries"`
	GeoFeatures int    `json:"geoFeatures"`
	Indicators  int    `json:"indicators"`
	LoadedAt    string `json:"loadedAt"`
}

// IndicatorRef is the catalog entry shape the API exposes.
type IndicatorRef struct {
	Key      catalog.Key `json:"key"`
	Label    string      `json:"label"`
	Unit     string      `json:"unit"`
	Category string      `json:"category"`
}

// MapRow is one country of the choropleth layer for a (year, indicator)
// pair.
type MapRow struct {
	Key       string   `json:"key"`
	Label     string   `json:"label"`
	Value     *float64 `json:"value"`
	Formatted string   `json:"formatted"`
	Color     string   `json:"color"`
}

// MapData is the choropleth payload.
type MapData struct {
	Year      int          `json:"year"`
	Indicator IndicatorRef `json:"indicator"`
	Rows      []MapRow     `json:"rows"`
}

// CountriesData lists the selectable countries for a year.
type CountriesData struct {
	Year      int                  `json:"year"`
	Countries []dataset.CountryRef `json:"countries"`
}

// SnapshotData is the KPI panel plus the narrative report for one country
// and year. Year is the year actually served; ApproximateYear is set when
// the nearest-year fallback substituted a neighbor of the requested year.
type SnapshotData struct {
	Key             string           `json:"key"`
	Label           string           `json:"label"`
	Color           string           `json:"color"`
	RequestedYear   int              `json:"requestedYear"`
	Year            int              `json:"year"`
	ApproximateYear bool             `json:"approximateYear"`
	Report          narrative.Report `json:"report"`
}

// TrendPoint is one year of a trend series.
type TrendPoint struct {
	Year      int      `json:"year"`
	Value     *float64 `json:"value"`
	Formatted string   `json:"formatted"`
}

// TrendData is the per-country trend chart payload.
type TrendData struct {
	Key       string       `json:"key"`
	Label     string       `json:"label"`
	Indicator IndicatorRef `json:"indicator"`
	Range     TrendRange   `json:"range"`
	Points    []TrendPoint `json:"points"`
}

// CompareCountry is one country's series within the comparison view.
type CompareCountry struct {
	Key             string       `json:"key"`
	Label           string       `json:"label"`
	Color           string       `json:"color"`
	Points          []TrendPoint `json:"points"`
	Latest          *float64     `json:"latest"`
	LatestFormatted string       `json:"latestFormatted"`
}

// CompareData is the multi-country comparison payload.
type CompareData struct {
	Year      int              `json:"year"`
	Indicator IndicatorRef     `json:"indicator"`
	Chart     ChartType        `json:"chart"`
	Countries []CompareCountry `json:"countries"`
}

// LocateData is the identity-resolution payload. A miss is Found=false with
// empty key, never an error.
type LocateData struct {
	Found bool   `json:"found"`
	Key   string `json:"key,omitempty"`
	Label string `json:"label,omitempty"`
}

// NewIndicatorRef projects a catalog entry into its API shape.
func NewIndicatorRef(ind catalog.Indicator) IndicatorRef {
	return IndicatorRef{
		Key:      ind.Key,
		Label:    ind.Label,
		Unit:     ind.Unit,
		Category: string(ind.Category),
	}
}
