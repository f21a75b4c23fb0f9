package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mapRows(t *testing.T, data any) map[string]map[string]any {
	t.Helper()
	rows, ok := data.([]any)
	require.True(t, ok)

	byKey := make(map[string]map[string]any, len(rows))
	for _, r := range rows {
		row, ok := r.(map[string]any)
		require.True(t, ok)
		byKey[row["key"].(string)] = row
	}
	return byKey
}

func TestMapEndpointDefaultsToHDIAndLatestYear(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/atlas/map.json?key=TEST")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(2021), dataField(t, model, "year"))

	indicator, ok := dataField(t, model, "indicator").(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "hdi", indicator["key"])

	rows := mapRows(t, dataField(t, model, "rows"))
	require.Contains(t, rows, "NOR")
	assert.Equal(t, 0.961, rows["NOR"]["value"])
	assert.Equal(t, "0.961", rows["NOR"]["formatted"])
	assert.Equal(t, "#1f77b4", rows["NOR"]["color"])

	// The color table does not cover the Americas proxy row.
	require.Contains(t, rows, "AME")
	assert.Equal(t, "#CCCCCC", rows["AME"]["color"])
}

func TestMapEndpointHonorsIndicatorSelection(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/atlas/map.json?key=TEST&indicator=gdp_per_capita&year=2019")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	rows := mapRows(t, dataField(t, model, "rows"))

	require.Contains(t, rows, "IND")
	assert.Equal(t, "$2,050", rows["IND"]["formatted"])

	// GRL has no 2019 row; the map layer only carries countries with data.
	assert.NotContains(t, rows, "GRL")
}

func TestMapEndpointRejectsUnknownIndicator(t *testing.T) {
	api := createTestApi(t)
	resp, _ := serveApiAndRetrieveEndpoint(t, api, "/api/atlas/map.json?key=TEST&indicator=happiness")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
