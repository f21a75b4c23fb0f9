package restapi

import (
	"fmt"
	"net/http"

	"atlas.healthmap.org/internal/catalog"
	"atlas.healthmap.org/internal/format"
	"atlas.healthmap.org/internal/models"
)

// mapHandler serves the choropleth layer: one row per country holding a row
// for the selected year, under the selected indicator. The map colors by
// HDI when no indicator is chosen, matching the dashboard default.
func (api *RestAPI) mapHandler(w http.ResponseWriter, r *http.Request) {
	snapshot := api.Manager.Snapshot()
	minYear, maxYear, _ := snapshot.YearRange()

	state, fieldErrors := models.ParseViewState(r.URL.Query(), minYear, maxYear)
	if fieldErrors != nil {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	ind, fieldErrors := indicatorFromParams(r, catalog.HDI)
	if fieldErrors != nil {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	rows := make([]models.MapRow, 0, len(snapshot.Countries()))
	for _, country := range snapshot.CountriesForYear(state.Year) {
		rec, ok := snapshot.RowFor(country.Key, state.Year)
		if !ok {
			continue
		}
		value := rec.ValuePtr(ind.Key)
		rows = append(rows, models.MapRow{
			Key:       country.Key,
			Label:     country.Label,
			Value:     value,
			Formatted: format.Indicator(value, ind),
			Color:     snapshot.ColorFor(country.Key),
		})
	}

	data := models.MapData{
		Year:      state.Year,
		Indicator: models.NewIndicatorRef(ind),
		Rows:      rows,
	}

	api.sendResponse(w, r, models.NewOKResponse(data))
}

// indicatorFromParams resolves the indicator query parameter against the
// catalog, with a default for requests that do not choose one.
func indicatorFromParams(r *http.Request, fallback catalog.Key) (catalog.Indicator, map[string][]string) {
	raw := r.URL.Query().Get("indicator")
	key := fallback
	if raw != "" {
		key = catalog.Key(raw)
	}

	ind, ok := catalog.Lookup(key)
	if !ok {
		return catalog.Indicator{}, map[string][]string{
			"indicator": {fmt.Sprintf("Unknown indicator %q.", raw)},
		}
	}
	return ind, nil
}
