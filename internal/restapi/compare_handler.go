package restapi

import (
	"net/http"

	"atlas.healthmap.org/internal/catalog"
	"atlas.healthmap.org/internal/format"
	"atlas.healthmap.org/internal/models"
)

// compareHandler serves the multi-country comparison view: a trend series
// per selected country plus the latest value for the bar chart. Selections
// that do not resolve are dropped silently, in line with the resolver's
// degrade-gracefully contract.
func (api *RestAPI) compareHandler(w http.ResponseWriter, r *http.Request) {
	snapshot := api.Manager.Snapshot()
	minYear, maxYear, _ := snapshot.YearRange()

	state, fieldErrors := models.ParseViewState(r.URL.Query(), minYear, maxYear)
	if fieldErrors != nil {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	if len(state.Compare) == 0 {
		api.validationErrorResponse(w, r, map[string][]string{
			"countries": {"At least one country is required."},
		})
		return
	}

	ind, fieldErrors := indicatorFromParams(r, catalog.HDI)
	if fieldErrors != nil {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	resolver := snapshot.Resolver()
	seen := make(map[string]bool, len(state.Compare))
	countries := make([]models.CompareCountry, 0, len(state.Compare))

	for _, selection := range state.Compare {
		key, ok := resolver.ByName(selection)
		if !ok || seen[key] {
			continue
		}
		seen[key] = true

		label, _ := snapshot.LabelFor(key)

		var latest *float64
		if rec, _, found := snapshot.RowNear(key, state.Year); found {
			latest = rec.ValuePtr(ind.Key)
		}

		countries = append(countries, models.CompareCountry{
			Key:             key,
			Label:           label,
			Color:           snapshot.ColorFor(key),
			Points:          trendPoints(snapshot.SeriesFor(key), ind, state.Trend),
			Latest:          latest,
			LatestFormatted: format.Indicator(latest, ind),
		})
	}

	data := models.CompareData{
		Year:      state.Year,
		Indicator: models.NewIndicatorRef(ind),
		Chart:     state.Chart,
		Countries: countries,
	}

	api.sendResponse(w, r, models.NewOKResponse(data))
}
