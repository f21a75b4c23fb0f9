package dataset

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"atlas.healthmap.org/internal/geo"
	"atlas.healthmap.org/internal/resolve"
)

// Default file names under the data directory.
const (
	IndicatorFile = "indicators.csv"
	MismatchFile  = "name_mismatches.csv"
	ColorFile     = "country_colors.csv"
	GeoJSONFile   = "countries.geo.json"
)

// defaultHexColor is served for keys the color table does not cover.
const defaultHexColor = "#CCCCCC"

// nearestYearWindow bounds the nearest-year fallback for snapshot requests.
const nearestYearWindow = 2

// Config holds the dataset sources.
type Config struct {
	DataDir       string
	GeoJSONSource string // local path or http(s) URL; empty means DataDir/countries.geo.json
	Verbose       bool
}

// CountryRef is one selectable country: the canonical row key plus its
// display label.
type CountryRef struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Snapshot is one immutable load of every dataset plus its derived indexes.
// The manager swaps snapshots atomically; readers never see a partial load.
type Snapshot struct {
	Rows       []Record
	Mismatches map[string]string
	Colors     map[string]string
	GeoIndex   *geo.Index
	LoadedAt   time.Time

	byYear    map[string]map[int]Record
	series    map[string][]Record
	labels    map[string]string
	countries []CountryRef
	years     []int
	resolver  *resolve.Resolver
}

// Manager owns the loaded datasets and keeps them fresh: a remote GeoJSON
// source refreshes on a ticker, local data files reload on filesystem
// change. Everything served is a read-only snapshot.
type Manager struct {
	config       Config
	logger       *slog.Logger
	isRemoteGeo  bool
	mu           sync.RWMutex
	snapshot     *Snapshot
	shutdownChan chan struct{}
	wg           sync.WaitGroup
	shutdownOnce sync.Once
}

// InitManager loads every dataset and starts the background refreshers. Any
// load failure here is fatal; after startup, failed reloads keep the
// previous snapshot.
func InitManager(config Config, logger *slog.Logger) (*Manager, error) {
	if config.GeoJSONSource == "" {
		config.GeoJSONSource = filepath.Join(config.DataDir, GeoJSONFile)
	}

	manager := &Manager{
		config:       config,
		logger:       logger,
		isRemoteGeo:  strings.HasPrefix(config.GeoJSONSource, "http://") || strings.HasPrefix(config.GeoJSONSource, "https://"),
		shutdownChan: make(chan struct{}),
	}

	snapshot, err := manager.load()
	if err != nil {
		return nil, err
	}
	manager.setSnapshot(snapshot)

	if manager.isRemoteGeo {
		manager.wg.Add(1)
		go manager.refreshGeoPeriodically()
	}

	if err := manager.watchDataDir(); err != nil {
		// A broken watcher only disables hot reload; the loaded data stays
		// valid, so log and continue.
		logger.Warn("data directory watch disabled", "error", err)
	}

	return manager, nil
}

// Shutdown stops the background refreshers. Safe to call more than once.
func (m *Manager) Shutdown() {
	m.shutdownOnce.Do(func() {
		close(m.shutdownChan)
		m.wg.Wait()
	})
}

// Snapshot returns the current dataset snapshot.
func (m *Manager) Snapshot() *Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshot
}

func (m *Manager) setSnapshot(s *Snapshot) {
	m.mu.Lock()
	m.snapshot = s
	m.mu.Unlock()
}

// load reads every source file and builds a fresh snapshot.
func (m *Manager) load() (*Snapshot, error) {
	started := time.Now()

	raw, err := LoadTable(filepath.Join(m.config.DataDir, IndicatorFile))
	if err != nil {
		return nil, err
	}
	rows := FilterRows(raw)

	mismatches, err := LoadMismatches(filepath.Join(m.config.DataDir, MismatchFile))
	if err != nil {
		return nil, err
	}

	colors, err := LoadColors(filepath.Join(m.config.DataDir, ColorFile))
	if err != nil {
		return nil, err
	}

	geoData, err := rawGeoJSON(m.config.GeoJSONSource, m.isRemoteGeo)
	if err != nil {
		return nil, err
	}
	fc, err := geo.ParseFeatureCollection(geoData)
	if err != nil {
		return nil, err
	}

	snapshot := buildSnapshot(rows, mismatches, colors, geo.NewIndex(fc))

	if m.config.Verbose && m.logger != nil {
		m.logger.Info("datasets loaded",
			"rows", len(rows),
			"countries", len(snapshot.countries),
			"geo_features", snapshot.GeoIndex.Len(),
			"duration", time.Since(started))
	}
	return snapshot, nil
}

// rawGeoJSON fetches the country polygon layer from a local path or URL.
func rawGeoJSON(source string, isRemote bool) ([]byte, error) {
	if !isRemote {
		b, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("reading geojson file: %w", err)
		}
		return b, nil
	}

	resp, err := http.Get(source)
	if err != nil {
		return nil, fmt.Errorf("downloading geojson: %w", err)
	}
	defer resp.Body.Close() // nolint

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("downloading geojson: unexpected status %s", resp.Status)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading geojson response: %w", err)
	}
	return b, nil
}

func buildSnapshot(rows []Record, mismatches, colors map[string]string, index *geo.Index) *Snapshot {
	s := &Snapshot{
		Rows:       rows,
		Mismatches: mismatches,
		Colors:     colors,
		GeoIndex:   index,
		LoadedAt:   time.Now(),
		byYear:     make(map[string]map[int]Record),
		series:     make(map[string][]Record),
	}

	nameToKey := make(map[string]string)
	labels := make(map[string]string)
	s.labels = labels
	yearSet := make(map[int]bool)

	for _, r := range rows {
		byYear, ok := s.byYear[r.ISO3]
		if !ok {
			byYear = make(map[int]Record)
			s.byYear[r.ISO3] = byYear
		}
		byYear[r.Year] = r
		s.series[r.ISO3] = append(s.series[r.ISO3], r)
		nameToKey[strings.ToLower(r.Country)] = r.ISO3
		labels[r.ISO3] = r.Country
		yearSet[r.Year] = true
	}

	for _, recs := range s.series {
		sort.Slice(recs, func(i, j int) bool { return recs[i].Year < recs[j].Year })
	}

	for year := range yearSet {
		s.years = append(s.years, year)
	}
	sort.Ints(s.years)

	for key, label := range labels {
		s.countries = append(s.countries, CountryRef{Key: key, Label: label})
	}
	sort.Slice(s.countries, func(i, j int) bool { return s.countries[i].Label < s.countries[j].Label })

	known := make(map[string]bool, len(labels))
	for key := range labels {
		known[key] = true
	}
	s.resolver = resolve.NewResolver(known, nameToKey, mismatches, index)

	return s
}

// Resolver returns the identity resolver bound to this snapshot.
func (s *Snapshot) Resolver() *resolve.Resolver {
	return s.resolver
}

// Years returns every year present in the filtered table, ascending.
func (s *Snapshot) Years() []int {
	return s.years
}

// YearRange returns the bounds of the data. ok is false for an empty table,
// which the loader already rejects.
func (s *Snapshot) YearRange() (min, max int, ok bool) {
	if len(s.years) == 0 {
		return 0, 0, false
	}
	return s.years[0], s.years[len(s.years)-1], true
}

// Countries returns every selectable country sorted by label.
func (s *Snapshot) Countries() []CountryRef {
	return s.countries
}

// CountriesForYear returns the countries that have a row in the given year.
func (s *Snapshot) CountriesForYear(year int) []CountryRef {
	var out []CountryRef
	for _, c := range s.countries {
		if _, ok := s.byYear[c.Key][year]; ok {
			out = append(out, c)
		}
	}
	return out
}

// LabelFor returns the display label for a canonical key.
func (s *Snapshot) LabelFor(key string) (string, bool) {
	label, ok := s.labels[key]
	return label, ok
}

// HasKey reports whether a canonical key exists in the filtered table.
func (s *Snapshot) HasKey(key string) bool {
	_, ok := s.byYear[key]
	return ok
}

// RowFor returns the row for an exact (key, year) pair.
func (s *Snapshot) RowFor(key string, year int) (Record, bool) {
	rec, ok := s.byYear[key][year]
	return rec, ok
}

// RowNear returns the row for (key, year), falling back to the nearest year
// within the fallback window. Ties prefer the later year. The returned year
// is the one actually served; a miss is silent.
func (s *Snapshot) RowNear(key string, year int) (Record, int, bool) {
	if rec, ok := s.RowFor(key, year); ok {
		return rec, year, true
	}
	for delta := 1; delta <= nearestYearWindow; delta++ {
		if rec, ok := s.RowFor(key, year+delta); ok {
			return rec, year + delta, true
		}
		if rec, ok := s.RowFor(key, year-delta); ok {
			return rec, year - delta, true
		}
	}
	return Record{}, 0, false
}

// SeriesFor returns every row for a country, ascending by year.
func (s *Snapshot) SeriesFor(key string) []Record {
	return s.series[key]
}

// ColorFor returns the display color for a key, with a neutral default for
// keys the color table does not cover.
func (s *Snapshot) ColorFor(key string) string {
	if c, ok := s.Colors[key]; ok {
		return c
	}
	return defaultHexColor
}
