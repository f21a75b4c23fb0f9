package narrative

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atlas.healthmap.org/internal/catalog"
	"atlas.healthmap.org/internal/dataset"
	"atlas.healthmap.org/internal/format"
)

func loadRow(t *testing.T, iso3 string, year int) dataset.Record {
	t.Helper()
	rows, err := dataset.LoadTable(filepath.Join("../../testdata", dataset.IndicatorFile))
	require.NoError(t, err)
	for _, rec := range rows {
		if rec.ISO3 == iso3 && rec.Year == year {
			return rec
		}
	}
	t.Fatalf("no row for %s %d", iso3, year)
	return dataset.Record{}
}

func entryFor(t *testing.T, report Report, key catalog.Key) Entry {
	t.Helper()
	for _, section := range report.Sections {
		for _, entry := range section.Entries {
			if entry.Key == key {
				return entry
			}
		}
	}
	t.Fatalf("no entry for %q", key)
	return Entry{}
}

func TestBuildGroupsIndicatorsUnderFourHeadings(t *testing.T) {
	report := Build(loadRow(t, "NOR", 2021), 2021)

	assert.Equal(t, "Norway", report.Country)
	assert.Equal(t, 2021, report.Year)
	require.Len(t, report.Sections, 4)
	assert.Equal(t, "Economy & Development", report.Sections[0].Title)
	assert.Equal(t, "Health & Longevity", report.Sections[1].Title)
	assert.Equal(t, "Population & Environment", report.Sections[2].Title)
	assert.Equal(t, "Births, Deaths & COVID", report.Sections[3].Title)

	total := 0
	for _, section := range report.Sections {
		total += len(section.Entries)
	}
	assert.Equal(t, len(catalog.All()), total)
}

func TestBuildFormatsValues(t *testing.T) {
	report := Build(loadRow(t, "NOR", 2021), 2021)

	assert.Equal(t, "$89,154", entryFor(t, report, catalog.GDPPerCapita).Value)
	assert.Equal(t, "83.2 Yrs", entryFor(t, report, catalog.LifeExpectancy).Value)
	assert.Equal(t, "100.0%", entryFor(t, report, catalog.HealthInsurance).Value)
	assert.Equal(t, "5,408,320", entryFor(t, report, catalog.Population).Value)
}

func TestBuildNeverOmitsAnEntry(t *testing.T) {
	// India 2021 has an empty Gini cell; it still shows up, as the sentinel.
	report := Build(loadRow(t, "IND", 2021), 2021)

	entry := entryFor(t, report, catalog.GiniIndex)
	assert.Equal(t, format.NotAvailable, entry.Value)
	assert.NotEmpty(t, entry.Definition)
}

func TestBuildEmptyRowIsAllSentinels(t *testing.T) {
	report := Build(dataset.Record{Country: "Norway", ISO3: "NOR"}, 2021)

	for _, section := range report.Sections {
		for _, entry := range section.Entries {
			assert.Equal(t, format.NotAvailable, entry.Value, "entry %q", entry.Key)
		}
	}
}
