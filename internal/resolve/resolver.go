// Package resolve maps user selections back to canonical row keys: a typed
// or dropdown country label, a clicked map feature, or a bare coordinate.
// Every lookup degrades to a silent miss; a click on the open ocean is not
// an error.
package resolve

import (
	"sort"
	"strings"
	"sync"

	geohash "github.com/TomiHiltunen/geohash-golang"

	"atlas.healthmap.org/internal/geo"
)

// memoPrecision is the geohash length for memoizing coordinate lookups.
// Five characters is a cell of roughly 5km, comfortably below country size,
// so a cached answer is safe to reuse.
const memoPrecision = 5

// Resolver is built once per dataset snapshot and is safe for concurrent
// use.
type Resolver struct {
	known      map[string]bool   // canonical row keys
	nameToKey  map[string]string // lowercased display label -> key
	mismatches map[string]string // map-layer display name -> ISO3

	index *geo.Index

	mu   sync.Mutex
	memo map[string]memoEntry
}

type memoEntry struct {
	key string
	ok  bool
}

// NewResolver builds a resolver over the filtered table's keys and labels,
// the name-mismatch lookup, and the polygon index.
func NewResolver(known map[string]bool, nameToKey, mismatches map[string]string, index *geo.Index) *Resolver {
	return &Resolver{
		known:      known,
		nameToKey:  nameToKey,
		mismatches: mismatches,
		index:      index,
		memo:       make(map[string]memoEntry),
	}
}

// ByName resolves a manually selected display label. The label itself is
// accepted when it is already a known key; otherwise a substring match
// against the known labels is the last resort.
func (r *Resolver) ByName(label string) (string, bool) {
	label = strings.TrimSpace(label)
	if label == "" {
		return "", false
	}

	if key, ok := r.nameToKey[strings.ToLower(label)]; ok {
		return key, true
	}
	if upper := strings.ToUpper(label); r.known[upper] {
		return upper, true
	}
	return r.bySubstring(label)
}

// ByFeature resolves a clicked map feature. The mismatch table wins over
// the raw feature id even when the raw id is itself a known key.
func (r *Resolver) ByFeature(id, name string) (string, bool) {
	if iso, ok := r.mismatches[name]; ok {
		return iso, true
	}
	if upper := strings.ToUpper(strings.TrimSpace(id)); r.known[upper] {
		return upper, true
	}
	return r.ByName(name)
}

// ByCoordinate resolves a latitude/longitude pair by locating the country
// polygon under it, then running the feature through the same mismatch
// fallback a map click uses. Results, including misses, are memoized per
// geohash cell.
func (r *Resolver) ByCoordinate(lat, lon float64) (string, bool) {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return "", false
	}

	cell := geohash.EncodeWithPrecision(lat, lon, memoPrecision)

	r.mu.Lock()
	if entry, ok := r.memo[cell]; ok {
		r.mu.Unlock()
		return entry.key, entry.ok
	}
	r.mu.Unlock()

	var key string
	var ok bool
	if featureKey, featureName, found := r.index.Locate(lat, lon); found {
		key, ok = r.ByFeature(featureKey, featureName)
	}

	r.mu.Lock()
	r.memo[cell] = memoEntry{key: key, ok: ok}
	r.mu.Unlock()

	return key, ok
}

// bySubstring matches a label against the known display names in either
// direction. Candidates are sorted so the answer does not depend on map
// iteration order.
func (r *Resolver) bySubstring(label string) (string, bool) {
	lower := strings.ToLower(label)

	var candidates []string
	for name := range r.nameToKey {
		if strings.Contains(name, lower) || strings.Contains(lower, name) {
			candidates = append(candidates, name)
		}
	}
	if len(candidates) == 0 {
		return "", false
	}

	sort.Strings(candidates)
	return r.nameToKey[candidates[0]], true
}
