package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atlas.healthmap.org/internal/catalog"
)

const testdataDir = "../../testdata"

func TestLoadTableReadsCaseInsensitiveHeaders(t *testing.T) {
	// The fixture header mixes country/iso3/YEAR casings on purpose.
	rows, err := LoadTable(filepath.Join(testdataDir, IndicatorFile))
	require.NoError(t, err)
	require.NotEmpty(t, rows)

	var norway2021 *Record
	for i := range rows {
		if rows[i].ISO3 == "NOR" && rows[i].Year == 2021 {
			norway2021 = &rows[i]
		}
	}
	require.NotNil(t, norway2021)

	gdp, ok := norway2021.Value(catalog.GDPPerCapita)
	require.True(t, ok)
	assert.InDelta(t, 89154, gdp, 0.001)
}

func TestLoadTableTreatsEmptyAndNACellsAsMissing(t *testing.T) {
	rows, err := LoadTable(filepath.Join(testdataDir, IndicatorFile))
	require.NoError(t, err)

	for _, rec := range rows {
		if rec.ISO3 == "IND" && rec.Year == 2021 {
			_, ok := rec.Value(catalog.GiniIndex)
			assert.False(t, ok, "empty cell should be missing")
		}
		if rec.ISO3 == "BRA" && rec.Year == 2021 {
			_, ok := rec.Value(catalog.HealthInsurance)
			assert.False(t, ok, "NA cell should be missing")
		}
	}
}

func TestLoadTableMissingFileIsFatal(t *testing.T) {
	_, err := LoadTable(filepath.Join(testdataDir, "nope.csv"))
	assert.Error(t, err)
}

func TestLoadTableRejectsBadYear(t *testing.T) {
	path := writeTempCSV(t, "Country,ISO3,Year\nNorway,NOR,twenty-twenty\n")
	_, err := LoadTable(path)
	assert.ErrorContains(t, err, "bad year")
}

func TestLoadTableRejectsMissingRequiredColumns(t *testing.T) {
	path := writeTempCSV(t, "Country,Year\nNorway,2020\n")
	_, err := LoadTable(path)
	assert.ErrorContains(t, err, "ISO3")
}

func TestLoadTableRejectsEmptyCountryLabel(t *testing.T) {
	path := writeTempCSV(t, "Country,ISO3,Year\n,NOR,2020\n")
	_, err := LoadTable(path)
	assert.ErrorContains(t, err, "empty country label")
}

func TestLoadTableRejectsEmptyTable(t *testing.T) {
	path := writeTempCSV(t, "Country,ISO3,Year\n")
	_, err := LoadTable(path)
	assert.ErrorContains(t, err, "no rows")
}

func TestLoadMismatches(t *testing.T) {
	mismatches, err := LoadMismatches(filepath.Join(testdataDir, MismatchFile))
	require.NoError(t, err)
	assert.Equal(t, "IND", mismatches["India Rep."])
	assert.Equal(t, "NOR", mismatches["Norway Kingdom"])
}

func TestLoadColors(t *testing.T) {
	colors, err := LoadColors(filepath.Join(testdataDir, ColorFile))
	require.NoError(t, err)
	assert.Equal(t, "#1f77b4", colors["NOR"])
}

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "table.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
