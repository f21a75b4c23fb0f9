package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountriesEndpointDefaultsToLatestYear(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/atlas/countries.json?key=TEST")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(2021), dataField(t, model, "year"))

	countries, ok := dataField(t, model, "countries").([]any)
	require.True(t, ok)

	var labels []string
	for _, c := range countries {
		entry, ok := c.(map[string]any)
		require.True(t, ok)
		labels = append(labels, entry["label"].(string))
	}

	// Proxy labels show up renamed; aggregates are gone.
	assert.Contains(t, labels, "Greenland")
	assert.Contains(t, labels, "Americas (USA Data Proxy)")
	assert.NotContains(t, labels, "World")
	assert.NotContains(t, labels, "Channel Islands")
}

func TestCountriesEndpointHonorsYearSelection(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/atlas/countries.json?key=TEST&year=2018")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	countries, ok := dataField(t, model, "countries").([]any)
	require.True(t, ok)
	require.Len(t, countries, 1)

	entry := countries[0].(map[string]any)
	assert.Equal(t, "NOR", entry["key"])
}

func TestCountriesEndpointRejectsBadYear(t *testing.T) {
	api := createTestApi(t)
	resp, _ := serveApiAndRetrieveEndpoint(t, api, "/api/atlas/countries.json?key=TEST&year=abc")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
