// Package geo loads the country-polygon GeoJSON layer and answers
// coordinate-to-country queries for the identity resolver.
package geo

import (
	"encoding/json"
	"fmt"
)

// FeatureCollection is the subset of GeoJSON the atlas consumes: a list of
// country features whose ids are ISO3-like codes.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

type Feature struct {
	ID         any            `json:"id"`
	Properties map[string]any `json:"properties"`
	Geometry   Geometry       `json:"geometry"`
}

// Geometry keeps coordinates raw until the type is known; world layers mix
// Polygon and MultiPolygon features.
type Geometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// ParseFeatureCollection decodes a GeoJSON document. A document without
// features is an error: the map layer is a required startup input.
func ParseFeatureCollection(data []byte) (*FeatureCollection, error) {
	var fc FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parsing geojson: %w", err)
	}
	if len(fc.Features) == 0 {
		return nil, fmt.Errorf("geojson contains no features")
	}
	return &fc, nil
}

// Key returns the ISO3-like identifier of a feature: the feature id when
// present, otherwise the ISO_A3 property.
func (f Feature) Key() string {
	if s := asString(f.ID); s != "" {
		return s
	}
	for _, prop := range []string{"ISO_A3", "iso_a3", "ISO3"} {
		if s := asString(f.Properties[prop]); s != "" {
			return s
		}
	}
	return ""
}

// Name returns the display name of a feature, if the layer carries one.
func (f Feature) Name() string {
	for _, prop := range []string{"name", "NAME", "ADMIN"} {
		if s := asString(f.Properties[prop]); s != "" {
			return s
		}
	}
	return ""
}

// rings returns every polygon of the feature as a list of lon/lat rings.
// Only the outer ring of each polygon is returned; interior holes do not
// matter for country-level containment.
func (f Feature) rings() ([][][]float64, error) {
	switch f.Geometry.Type {
	case "Polygon":
		var poly [][][]float64
		if err := json.Unmarshal(f.Geometry.Coordinates, &poly); err != nil {
			return nil, fmt.Errorf("feature %q: %w", f.Key(), err)
		}
		if len(poly) == 0 {
			return nil, nil
		}
		return [][][]float64{poly[0]}, nil
	case "MultiPolygon":
		var multi [][][][]float64
		if err := json.Unmarshal(f.Geometry.Coordinates, &multi); err != nil {
			return nil, fmt.Errorf("feature %q: %w", f.Key(), err)
		}
		var outers [][][]float64
		for _, poly := range multi {
			if len(poly) > 0 {
				outers = append(outers, poly[0])
			}
		}
		return outers, nil
	default:
		// Point/LineString features in a country layer carry no area.
		return nil, nil
	}
}

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
