package geo

import (
	"github.com/golang/geo/s2"
)

const earthRadiusKm = 6371.01

// nearestCentroidCutoffKm bounds the nearest-centroid fallback. A click in
// the open ocean should be a miss, not the nearest continent.
const nearestCentroidCutoffKm = 300.0

// Index answers point-in-country queries over the loaded GeoJSON layer.
// It is immutable after construction.
type Index struct {
	countries []country
}

type country struct {
	key      string
	name     string
	loops    []*s2.Loop
	centroid s2.LatLng
}

// NewIndex builds the containment index. Features without a usable key or
// without polygon geometry are skipped; a world layer always has enough of
// both for the dashboard's purposes.
func NewIndex(fc *FeatureCollection) *Index {
	ix := &Index{}

	for _, f := range fc.Features {
		key := f.Key()
		if key == "" {
			continue
		}

		rings, err := f.rings()
		if err != nil || len(rings) == 0 {
			continue
		}

		c := country{key: key, name: f.Name()}
		var latSum, lonSum float64
		var vertices int

		for _, ring := range rings {
			points := make([]s2.Point, 0, len(ring))
			for i, coord := range ring {
				if len(coord) < 2 {
					continue
				}
				// GeoJSON ring ordering is lon, lat.
				lon, lat := coord[0], coord[1]
				// Rings repeat the first vertex at the end; s2 loops must not.
				if i == len(ring)-1 && len(points) > 0 && coord[0] == ring[0][0] && coord[1] == ring[0][1] {
					continue
				}
				points = append(points, s2.PointFromLatLng(s2.LatLngFromDegrees(lat, lon)))
				latSum += lat
				lonSum += lon
				vertices++
			}
			if len(points) < 3 {
				continue
			}
			loop := s2.LoopFromPoints(points)
			// Normalize so the loop encloses the country, not the rest of
			// the sphere, regardless of the source's winding order.
			loop.Normalize()
			c.loops = append(c.loops, loop)
		}

		if len(c.loops) == 0 || vertices == 0 {
			continue
		}
		c.centroid = s2.LatLngFromDegrees(latSum/float64(vertices), lonSum/float64(vertices))
		ix.countries = append(ix.countries, c)
	}

	return ix
}

// Len reports the number of indexed countries.
func (ix *Index) Len() int {
	return len(ix.countries)
}

// Locate maps a coordinate to a country key and display name. Containment is
// tried first; on a miss the nearest vertex centroid within the cutoff wins,
// which tolerates clicks just offshore. A miss returns ok=false, never an
// error.
func (ix *Index) Locate(lat, lon float64) (key, name string, ok bool) {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return "", "", false
	}

	p := s2.PointFromLatLng(s2.LatLngFromDegrees(lat, lon))
	for _, c := range ix.countries {
		for _, loop := range c.loops {
			if loop.ContainsPoint(p) {
				return c.key, c.name, true
			}
		}
	}

	return ix.nearest(s2.LatLngFromDegrees(lat, lon))
}

func (ix *Index) nearest(ll s2.LatLng) (key, name string, ok bool) {
	best := nearestCentroidCutoffKm
	for _, c := range ix.countries {
		d := ll.Distance(c.centroid).Radians() * earthRadiusKm
		if d < best {
			best = d
			key = c.key
			name = c.name
			ok = true
		}
	}
	return key, name, ok
}
