package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotEndpointByLabel(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/atlas/snapshot/Norway?key=TEST")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "NOR", dataField(t, model, "key"))
	assert.Equal(t, "Norway", dataField(t, model, "label"))
	assert.Equal(t, "#1f77b4", dataField(t, model, "color"))
	assert.Equal(t, float64(2021), dataField(t, model, "year"))
	assert.Equal(t, false, dataField(t, model, "approximateYear"))

	report, ok := dataField(t, model, "report").(map[string]any)
	require.True(t, ok)
	sections, ok := report["sections"].([]any)
	require.True(t, ok)
	require.Len(t, sections, 4)

	first := sections[0].(map[string]any)
	assert.Equal(t, "Economy & Development", first["title"])
}

func TestSnapshotEndpointNearestYearFallback(t *testing.T) {
	// Brazil has no 2020 row; 2021 is served and flagged as approximate.
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/atlas/snapshot/Brazil?key=TEST&year=2020")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(2020), dataField(t, model, "requestedYear"))
	assert.Equal(t, float64(2021), dataField(t, model, "year"))
	assert.Equal(t, true, dataField(t, model, "approximateYear"))
}

func TestSnapshotEndpointResolvesProxyLabels(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/atlas/snapshot/Greenland?key=TEST")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "GRL", dataField(t, model, "key"))
	assert.Equal(t, "Greenland", dataField(t, model, "label"))
}

func TestSnapshotEndpointUnknownCountryIs404(t *testing.T) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, "/api/atlas/snapshot/Atlantis?key=TEST")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "resource not found", model.Text)
}

func TestSnapshotEndpointRejectsBadViewState(t *testing.T) {
	api := createTestApi(t)
	resp, _ := serveApiAndRetrieveEndpoint(t, api, "/api/atlas/snapshot/Norway?key=TEST&year=abc")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
